// Package export writes the completion history and timer reports to files
// the user can keep.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects the history export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// FileName is the export file name for f, e.g. timer_history.json.
func (f Format) FileName() string {
	return config.HistoryExportName + "." + string(f)
}

// HistoryJSON renders history as 2-space indented JSON with no trailing
// newline and no HTML escaping. Identical history yields identical bytes.
func HistoryJSON(history []models.HistoryEntry) ([]byte, error) {
	if history == nil {
		history = []models.HistoryEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(history); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 raw, as JSON.stringify
// does. encoding/json always escapes them.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if i+5 < len(b) && b[i+1] == 'u' {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		// escape pairs are copied whole
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// HistoryYAML renders history as a YAML sequence.
func HistoryYAML(history []models.HistoryEntry) ([]byte, error) {
	if history == nil {
		history = []models.HistoryEntry{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(history); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHistory writes the history export into dir and returns its path.
func WriteHistory(dir string, history []models.HistoryEntry, format Format) (string, error) {
	var (
		raw []byte
		err error
	)
	switch format {
	case FormatYAML:
		raw, err = HistoryYAML(history)
	default:
		format = FormatJSON
		raw, err = HistoryJSON(history)
	}
	if err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure export directory: %w", err)
	}
	path := filepath.Join(dir, format.FileName())
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write history: %w", err)
	}
	return path, nil
}
