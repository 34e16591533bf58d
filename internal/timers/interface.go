package timers

import (
	"context"

	"github.com/akyairhashvil/multitimer/internal/models"
)

// Notifier surfaces a completion to the user.
type Notifier interface {
	TimerCompleted(name string)
}

// Persister receives full snapshots of the timer and history sequences on
// every change.
//
//go:generate mockgen -source=interface.go -destination=mock_interface_test.go -package=timers
type Persister interface {
	SaveTimers(ctx context.Context, timers []models.Timer) error
	SaveHistory(ctx context.Context, history []models.HistoryEntry) error
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(name string)

func (f NotifierFunc) TimerCompleted(name string) { f(name) }

type nopNotifier struct{}

func (nopNotifier) TimerCompleted(string) {}

type nopPersister struct{}

func (nopPersister) SaveTimers(context.Context, []models.Timer) error { return nil }

func (nopPersister) SaveHistory(context.Context, []models.HistoryEntry) error { return nil }
