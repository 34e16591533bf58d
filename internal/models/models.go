package models

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TimerStatus enumerates the lifecycle states of a countdown timer.
type TimerStatus string

const (
	StatusPaused    TimerStatus = "Paused"
	StatusRunning   TimerStatus = "Running"
	StatusCompleted TimerStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s TimerStatus) Valid() bool {
	switch s {
	case StatusPaused, StatusRunning, StatusCompleted:
		return true
	}
	return false
}

var ErrInvalidDuration = errors.New("duration must be a positive whole number of seconds")

// Timer is one user-defined countdown. Values are treated as immutable:
// transitions build a new Timer and replace the old one.
type Timer struct {
	Name                  string      `json:"name"`
	Duration              int         `json:"duration"`
	Category              string      `json:"category"`
	HalfwayAlert          bool        `json:"halfwayAlert"`
	RemainingTime         int         `json:"remainingTime"`
	Status                TimerStatus `json:"status"`
	HalfwayAlertTriggered bool        `json:"halfwayAlertTriggered"`
}

// NewTimer returns a paused timer with the full duration remaining.
func NewTimer(name string, duration int, category string, halfwayAlert bool) Timer {
	return Timer{
		Name:          name,
		Duration:      duration,
		Category:      category,
		HalfwayAlert:  halfwayAlert,
		RemainingTime: duration,
		Status:        StatusPaused,
	}
}

// WithStatus returns a copy of t in status s.
func (t Timer) WithStatus(s TimerStatus) Timer {
	t.Status = s
	return t
}

// WithRemaining returns a copy of t with remaining clamped to [0, Duration].
func (t Timer) WithRemaining(remaining int) Timer {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > t.Duration {
		remaining = t.Duration
	}
	t.RemainingTime = remaining
	return t
}

// Rearmed returns a copy of t back at its full duration and paused.
func (t Timer) Rearmed() Timer {
	t.RemainingTime = t.Duration
	t.Status = StatusPaused
	return t
}

// Progress is the elapsed fraction of the countdown, in [0, 1].
func (t Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Duration-t.RemainingTime) / float64(t.Duration)
}

// HistoryEntry records one completion. CompletedAt is a display string.
type HistoryEntry struct {
	Name        string `json:"name" yaml:"name"`
	CompletedAt string `json:"completedAt" yaml:"completedAt"`
}

// CategoryGroup holds the timers sharing a category, in registry order.
type CategoryGroup struct {
	Category string
	Timers   []Timer
}

// CategoryLabel is the display name of a category; blank categories share
// one group.
func CategoryLabel(category string) string {
	if strings.TrimSpace(category) == "" {
		return "Uncategorized"
	}
	return category
}

// GroupByCategory partitions timers by category. Groups are ordered by the
// first appearance of their category.
func GroupByCategory(timers []Timer) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, t := range timers {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category})
		}
		groups[i].Timers = append(groups[i].Timers, t)
	}
	return groups
}

// ParseDurationSeconds parses user input as a positive number of seconds.
// Plain integers are seconds; Go duration strings such as "1m30s" are
// accepted when they are a whole number of seconds.
func ParseDurationSeconds(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrInvalidDuration
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return 0, ErrInvalidDuration
		}
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 || d%time.Second != 0 {
		return 0, ErrInvalidDuration
	}
	return int(d / time.Second), nil
}
