package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/akyairhashvil/multitimer/internal/util"
)

// Adapter maps the timer and history sequences onto two store keys. Loads
// fail open: anything missing or unreadable comes back empty.
type Adapter struct {
	store  Store
	logger *slog.Logger
}

func NewAdapter(store Store, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = util.DiscardLogger()
	}
	return &Adapter{store: store, logger: logger}
}

// Load returns both sequences.
func (a *Adapter) Load(ctx context.Context) ([]models.Timer, []models.HistoryEntry) {
	return a.LoadTimers(ctx), a.LoadHistory(ctx)
}

func (a *Adapter) LoadTimers(ctx context.Context) []models.Timer {
	var stored []models.Timer
	if !a.decode(ctx, config.TimersKey, &stored) {
		return []models.Timer{}
	}
	timers, dropped := SanitizeTimers(stored)
	if dropped > 0 {
		a.logger.Warn("dropped malformed timers", "count", dropped)
	}
	return timers
}

func (a *Adapter) LoadHistory(ctx context.Context) []models.HistoryEntry {
	var history []models.HistoryEntry
	if !a.decode(ctx, config.HistoryKey, &history) || history == nil {
		return []models.HistoryEntry{}
	}
	return history
}

func (a *Adapter) SaveTimers(ctx context.Context, timers []models.Timer) error {
	if timers == nil {
		timers = []models.Timer{}
	}
	return a.encode(ctx, config.TimersKey, timers)
}

func (a *Adapter) SaveHistory(ctx context.Context, history []models.HistoryEntry) error {
	if history == nil {
		history = []models.HistoryEntry{}
	}
	return a.encode(ctx, config.HistoryKey, history)
}

func (a *Adapter) encode(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return wrapKeyErr("encode", key, err)
	}
	return a.store.Save(ctx, key, raw)
}

func (a *Adapter) decode(ctx context.Context, key string, v any) bool {
	raw, ok, err := a.store.Load(ctx, key)
	if err != nil {
		a.logger.Warn("storage read failed, starting empty", "key", key, "err", err)
		return false
	}
	if !ok || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		a.logger.Warn("storage value unparsable, starting empty", "key", key, "err", err)
		return false
	}
	return true
}

// SanitizeTimers drops records the registry could never have produced
// (blank or repeated names, non-positive durations) and repairs the rest:
// remaining time is clamped to [0, duration] and unknown statuses become
// Paused. It returns the kept timers and how many were dropped.
func SanitizeTimers(stored []models.Timer) ([]models.Timer, int) {
	out := make([]models.Timer, 0, len(stored))
	seen := make(map[string]bool, len(stored))
	for _, t := range stored {
		if strings.TrimSpace(t.Name) == "" || t.Duration <= 0 || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		t = t.WithRemaining(t.RemainingTime)
		if !t.Status.Valid() {
			t.Status = models.StatusPaused
		}
		out = append(out, t)
	}
	return out, len(stored) - len(out)
}
