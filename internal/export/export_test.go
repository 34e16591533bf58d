package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/akyairhashvil/multitimer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleHistory = testutil.NewHistory().
	Add("Tea", "10/19/2026, 3:04:05 PM").
	Add("Bread & <Butter>", "10/19/2026, 3:10:00 PM").
	Build()

func TestHistoryJSONExactBytes(t *testing.T) {
	got, err := HistoryJSON(sampleHistory)
	require.NoError(t, err)
	want := "[\n" +
		"  {\n" +
		"    \"name\": \"Tea\",\n" +
		"    \"completedAt\": \"10/19/2026, 3:04:05 PM\"\n" +
		"  },\n" +
		"  {\n" +
		"    \"name\": \"Bread & <Butter>\",\n" +
		"    \"completedAt\": \"10/19/2026, 3:10:00 PM\"\n" +
		"  }\n" +
		"]"
	assert.Equal(t, want, string(got))

	again, err := HistoryJSON(append([]models.HistoryEntry(nil), sampleHistory...))
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestHistoryJSONEmpty(t *testing.T) {
	got, err := HistoryJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestHistoryJSONLineSeparatorsRaw(t *testing.T) {
	history := testutil.NewHistory().
		Add("a\u2028b\u2029c", "10/19/2026, 3:04:05 PM").
		Add(`back\u2028slash<&>`, "10/19/2026, 3:04:06 PM").
		Build()
	got, err := HistoryJSON(history)
	require.NoError(t, err)

	want := "[\n" +
		"  {\n" +
		"    \"name\": \"a\u2028b\u2029c\",\n" +
		"    \"completedAt\": \"10/19/2026, 3:04:05 PM\"\n" +
		"  },\n" +
		"  {\n" +
		"    \"name\": \"back\\\\u2028slash<&>\",\n" +
		"    \"completedAt\": \"10/19/2026, 3:04:06 PM\"\n" +
		"  }\n" +
		"]"
	assert.Equal(t, want, string(got))

	var decoded []models.HistoryEntry
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, history, decoded)
}

func TestHistoryYAML(t *testing.T) {
	raw, err := HistoryYAML(sampleHistory)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "completedAt:")

	var decoded []models.HistoryEntry
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, sampleHistory, decoded)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
	assert.Equal(t, "timer_history.json", FormatJSON.FileName())
}

func TestWriteHistory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := WriteHistory(dir, sampleHistory, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "timer_history.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := HistoryJSON(sampleHistory)
	require.NoError(t, err)
	assert.Equal(t, want, raw)

	path, err = WriteHistory(dir, sampleHistory, FormatYAML)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "timer_history.yaml"))
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	timers := []models.Timer{
		models.NewTimer("Tea", 180, "Kitchen", false),
		models.NewTimer("Run", 3600, "", false).WithRemaining(0).WithStatus(models.StatusCompleted),
	}
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	path, err := WriteReport(dir, timers, sampleHistory, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "timer_report_20261019_150405.pdf"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF-"))
}

func TestWriteReportEmpty(t *testing.T) {
	_, err := WriteReport(t.TempDir(), nil, nil, time.Now())
	require.NoError(t, err)
}

func TestFormatSeconds(t *testing.T) {
	cases := map[int]string{0: "0:00", 5: "0:05", 65: "1:05", 3600: "1:00:00", 3725: "1:02:05", -3: "0:00"}
	for in, want := range cases {
		assert.Equal(t, want, FormatSeconds(in), "FormatSeconds(%d)", in)
	}
}
