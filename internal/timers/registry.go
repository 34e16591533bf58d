// Package timers owns countdown timer state: creation, the
// Paused/Running/Completed lifecycle, the per-timer tick and the completion
// history. It is the only writer of timer state.
package timers

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/multitimer/internal/config"
	"github.com/akyairhashvil/multitimer/internal/models"
	"github.com/akyairhashvil/multitimer/internal/util"
)

// EventKind classifies registry change notifications.
type EventKind int

const (
	EventChanged EventKind = iota
	EventCompleted
)

// Event is published to subscribers after every state change.
type Event struct {
	Kind EventKind
	Name string
}

// Option configures a Registry.
type Option func(*Registry)

func WithNotifier(n Notifier) Option {
	return func(r *Registry) { r.notifier = n }
}

func WithPersister(p Persister) Option {
	return func(r *Registry) { r.persister = p }
}

func WithClock(c Clock) Option {
	return func(r *Registry) { r.clock = c }
}

func WithInterval(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithResumeOnLoad makes Restore re-arm timers stored as Running instead of
// leaving them frozen until the user acts.
func WithResumeOnLoad(resume bool) Option {
	return func(r *Registry) { r.resumeOnLoad = resume }
}

// tick is the registration backing one Running timer. handle identifies the
// registration so that callbacks from a cancelled task are ignored.
type tick struct {
	handle uint64
	task   Task
}

// Registry holds the ordered timer sequence and the history sequence.
type Registry struct {
	mu         sync.Mutex
	timers     []models.Timer
	history    []models.HistoryEntry
	ticks      map[string]tick
	nextHandle uint64
	subs       map[chan Event]struct{}
	closed     bool

	ctx          context.Context
	sched        Scheduler
	clock        Clock
	interval     time.Duration
	notifier     Notifier
	persister    Persister
	logger       *slog.Logger
	resumeOnLoad bool
}

// New builds an empty registry driven by sched.
func New(sched Scheduler, opts ...Option) *Registry {
	r := &Registry{
		ticks:     make(map[string]tick),
		subs:      make(map[chan Event]struct{}),
		ctx:       context.Background(),
		sched:     sched,
		clock:     SystemClock,
		interval:  config.TickInterval,
		notifier:  nopNotifier{},
		persister: nopPersister{},
		logger:    util.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Restore installs rehydrated state. No tick survives a restore: timers stored
// as Running stay frozen unless resume-on-load is enabled.
func (r *Registry) Restore(timers []models.Timer, history []models.HistoryEntry) {
	r.mu.Lock()
	r.cancelAll()
	r.timers = append([]models.Timer(nil), timers...)
	r.history = append([]models.HistoryEntry(nil), history...)
	if r.resumeOnLoad {
		for _, t := range r.timers {
			if t.Status == models.StatusRunning {
				r.arm(t.Name)
			}
		}
	}
	r.publish(Event{Kind: EventChanged})
	r.mu.Unlock()
	r.logger.Debug("registry restored", "timers", len(timers), "history", len(history), "resume", r.resumeOnLoad)
}

// Add appends a new paused timer. The name must be non-empty and unused and
// the duration positive.
func (r *Registry) Add(ctx context.Context, name string, duration int, category string, halfwayAlert bool) (models.Timer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Timer{}, invalid("name", "", ErrEmptyName)
	}
	if duration <= 0 {
		return models.Timer{}, invalid("duration", strconv.Itoa(duration), models.ErrInvalidDuration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(name) >= 0 {
		return models.Timer{}, invalid("name", name, ErrDuplicateName)
	}
	t := models.NewTimer(name, duration, strings.TrimSpace(category), halfwayAlert)
	r.timers = append(r.timers, t)
	r.saveTimers(ctx)
	r.publish(Event{Kind: EventChanged, Name: name})
	r.logger.Debug("timer added", "name", name, "duration", duration, "category", t.Category)
	return t, nil
}

// AddFromInput parses a textual duration before adding.
func (r *Registry) AddFromInput(ctx context.Context, name, duration, category string, halfwayAlert bool) (models.Timer, error) {
	secs, err := models.ParseDurationSeconds(duration)
	if err != nil {
		return models.Timer{}, invalid("duration", strings.TrimSpace(duration), err)
	}
	return r.Add(ctx, name, secs, category, halfwayAlert)
}

// Start moves a timer to Running and schedules its tick. Starting a timer
// that is already ticking, or one that has completed, changes nothing.
// It reports whether the timer exists.
func (r *Registry) Start(ctx context.Context, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	t := r.timers[i]
	if t.Status == models.StatusCompleted || r.closed {
		return true
	}
	if _, ticking := r.ticks[name]; ticking && t.Status == models.StatusRunning {
		return true
	}
	r.cancel(name)
	r.timers[i] = t.WithStatus(models.StatusRunning)
	r.arm(name)
	r.saveTimers(ctx)
	r.publish(Event{Kind: EventChanged, Name: name})
	return true
}

// Pause cancels the tick and keeps the remaining time.
func (r *Registry) Pause(ctx context.Context, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	r.cancel(name)
	if r.timers[i].Status == models.StatusCompleted {
		return true
	}
	r.timers[i] = r.timers[i].WithStatus(models.StatusPaused)
	r.saveTimers(ctx)
	r.publish(Event{Kind: EventChanged, Name: name})
	return true
}

// Reset cancels any tick and re-arms the timer at its full duration, paused.
// It is valid in every status.
func (r *Registry) Reset(ctx context.Context, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(name)
	if i < 0 {
		return false
	}
	r.cancel(name)
	r.timers[i] = r.timers[i].Rearmed()
	r.saveTimers(ctx)
	r.publish(Event{Kind: EventChanged, Name: name})
	return true
}

// onTick is the body of every scheduled tick.
func (r *Registry) onTick(name string, handle uint64) {
	r.mu.Lock()
	cur, ok := r.ticks[name]
	if !ok || cur.handle != handle {
		r.mu.Unlock()
		return
	}
	i := r.indexOf(name)
	if i < 0 || r.timers[i].Status != models.StatusRunning {
		r.cancel(name)
		r.mu.Unlock()
		return
	}

	t := r.timers[i]
	if t.RemainingTime > 0 {
		t = t.WithRemaining(t.RemainingTime - 1)
	}
	completed := t.RemainingTime == 0
	if completed {
		r.cancel(name)
		t = t.WithStatus(models.StatusCompleted)
		r.history = append(r.history, models.HistoryEntry{
			Name:        t.Name,
			CompletedAt: r.clock.Now().Format(config.HistoryTimeLayout),
		})
	}
	r.timers[i] = t
	r.saveTimers(r.ctx)
	if completed {
		r.saveHistory(r.ctx)
		r.publish(Event{Kind: EventCompleted, Name: name})
	} else {
		r.publish(Event{Kind: EventChanged, Name: name})
	}
	r.mu.Unlock()

	if completed {
		r.logger.Info("timer completed", "name", name)
		r.notifier.TimerCompleted(name)
	}
}

// Timers returns a snapshot of the timer sequence in creation order.
func (r *Registry) Timers() []models.Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Timer(nil), r.timers...)
}

// History returns a snapshot of the completion history, oldest first.
func (r *Registry) History() []models.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.HistoryEntry(nil), r.history...)
}

// Groups returns the timers partitioned by category.
func (r *Registry) Groups() []models.CategoryGroup {
	return models.GroupByCategory(r.Timers())
}

// Get looks a timer up by name.
func (r *Registry) Get(name string) (models.Timer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(name); i >= 0 {
		return r.timers[i], true
	}
	return models.Timer{}, false
}

// Active reports whether a tick is currently registered for name.
func (r *Registry) Active(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ticks[name]
	return ok
}

// Subscribe returns a channel receiving change events. Delivery never blocks
// the registry: events are dropped while the buffer is full.
func (r *Registry) Subscribe(buffer int) <-chan Event {
	ch := make(chan Event, buffer)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		close(ch)
		return ch
	}
	r.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe stops delivery to ch and closes it.
func (r *Registry) Unsubscribe(ch <-chan Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.subs {
		if (<-chan Event)(c) == ch {
			delete(r.subs, c)
			close(c)
			return
		}
	}
}

// Close cancels every tick and closes all subscriptions.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.cancelAll()
	for c := range r.subs {
		close(c)
	}
	r.subs = make(map[chan Event]struct{})
}

// arm registers a fresh tick for name. Caller holds r.mu and has released
// any previous registration.
func (r *Registry) arm(name string) {
	r.nextHandle++
	handle := r.nextHandle
	task := r.sched.Every(r.interval, func() { r.onTick(name, handle) })
	r.ticks[name] = tick{handle: handle, task: task}
}

func (r *Registry) cancel(name string) {
	if t, ok := r.ticks[name]; ok {
		t.task.Cancel()
		delete(r.ticks, name)
	}
}

func (r *Registry) cancelAll() {
	for name := range r.ticks {
		r.cancel(name)
	}
}

func (r *Registry) indexOf(name string) int {
	for i, t := range r.timers {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (r *Registry) saveTimers(ctx context.Context) {
	snapshot := append([]models.Timer(nil), r.timers...)
	util.LogError(r.logger, "save timers", r.persister.SaveTimers(ctx, snapshot))
}

func (r *Registry) saveHistory(ctx context.Context) {
	snapshot := append([]models.HistoryEntry(nil), r.history...)
	util.LogError(r.logger, "save history", r.persister.SaveHistory(ctx, snapshot))
}

func (r *Registry) publish(ev Event) {
	for c := range r.subs {
		select {
		case c <- ev:
		default:
		}
	}
}
