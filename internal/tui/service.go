package tui

import (
	"context"

	"github.com/akyairhashvil/multitimer/internal/models"
)

// TimerService is the part of the timer registry the TUI drives.
type TimerService interface {
	Timers() []models.Timer
	History() []models.HistoryEntry
	AddFromInput(ctx context.Context, name, duration, category string, halfwayAlert bool) (models.Timer, error)
	Start(ctx context.Context, name string) bool
	Pause(ctx context.Context, name string) bool
	Reset(ctx context.Context, name string) bool
}
