package testutil

import (
	"github.com/akyairhashvil/multitimer/internal/models"
)

// TimerBuilder provides a fluent API for creating test timers.
type TimerBuilder struct {
	timer models.Timer
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{timer: models.NewTimer("Test Timer", 60, "", false)}
}

func (b *TimerBuilder) WithName(name string) *TimerBuilder {
	b.timer.Name = name
	return b
}

// WithDuration sets the duration and re-arms the remaining time to match.
func (b *TimerBuilder) WithDuration(secs int) *TimerBuilder {
	b.timer.Duration = secs
	b.timer.RemainingTime = secs
	return b
}

func (b *TimerBuilder) WithCategory(c string) *TimerBuilder {
	b.timer.Category = c
	return b
}

func (b *TimerBuilder) WithRemaining(secs int) *TimerBuilder {
	b.timer.RemainingTime = secs
	return b
}

func (b *TimerBuilder) WithStatus(s models.TimerStatus) *TimerBuilder {
	b.timer.Status = s
	return b
}

func (b *TimerBuilder) WithHalfwayAlert() *TimerBuilder {
	b.timer.HalfwayAlert = true
	return b
}

func (b *TimerBuilder) Build() models.Timer {
	return b.timer
}

// HistoryBuilder provides a fluent API for creating history sequences.
type HistoryBuilder struct {
	entries []models.HistoryEntry
}

func NewHistory() *HistoryBuilder {
	return &HistoryBuilder{}
}

func (b *HistoryBuilder) Add(name, completedAt string) *HistoryBuilder {
	b.entries = append(b.entries, models.HistoryEntry{Name: name, CompletedAt: completedAt})
	return b
}

func (b *HistoryBuilder) Build() []models.HistoryEntry {
	return append([]models.HistoryEntry(nil), b.entries...)
}
