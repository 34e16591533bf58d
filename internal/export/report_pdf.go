package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/go-pdf/fpdf"
)

// WriteReport renders timers grouped by category plus the completion history
// as a PDF in dir and returns its path.
func WriteReport(dir string, timers []models.Timer, history []models.HistoryEntry, now time.Time) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Timer Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Timer Report: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	completed := 0
	for _, group := range models.GroupByCategory(timers) {
		name := models.CategoryLabel(group.Category)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("%s (%d)", name, len(group.Timers)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		for _, t := range group.Timers {
			if t.Status == models.StatusCompleted {
				completed++
			}
			line := fmt.Sprintf("    %s  %s / %s  [%s]  %3.0f%%",
				t.Name, FormatSeconds(t.RemainingTime), FormatSeconds(t.Duration), t.Status, t.Progress()*100)
			pdf.Cell(0, 8, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}
	if len(timers) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No timers defined.")
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Timers completed now: %d    Completions recorded: %d", completed, len(history)))
	pdf.Ln(10)

	if len(history) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "History")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, h := range history {
			pdf.MultiCell(0, 8, fmt.Sprintf("[%s] %s", h.CompletedAt, h.Name), "", "", false)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure export directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("timer_report_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// FormatSeconds renders a second count as m:ss, or h:mm:ss past an hour.
func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, (secs%3600)/60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
