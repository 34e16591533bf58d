package models

import (
	"errors"
	"testing"
)

func TestTimerStatusConstants(t *testing.T) {
	if StatusPaused != "Paused" {
		t.Fatalf("StatusPaused = %q", StatusPaused)
	}
	if StatusRunning != "Running" {
		t.Fatalf("StatusRunning = %q", StatusRunning)
	}
	if StatusCompleted != "Completed" {
		t.Fatalf("StatusCompleted = %q", StatusCompleted)
	}
	if TimerStatus("running").Valid() {
		t.Fatalf("expected lowercase status to be invalid")
	}
}

func TestNewTimerStartsPausedAtFullDuration(t *testing.T) {
	tm := NewTimer("Tea", 3, "Kitchen", false)
	if tm.Status != StatusPaused {
		t.Fatalf("Status = %q, want Paused", tm.Status)
	}
	if tm.RemainingTime != 3 {
		t.Fatalf("RemainingTime = %d, want 3", tm.RemainingTime)
	}
	if tm.HalfwayAlertTriggered {
		t.Fatalf("expected halfway alert not triggered")
	}
}

func TestTimerTransitionsCopy(t *testing.T) {
	orig := NewTimer("Tea", 10, "Kitchen", false)
	next := orig.WithRemaining(4).WithStatus(StatusRunning)
	if orig.RemainingTime != 10 || orig.Status != StatusPaused {
		t.Fatalf("original mutated: %+v", orig)
	}
	if next.RemainingTime != 4 || next.Status != StatusRunning {
		t.Fatalf("unexpected copy: %+v", next)
	}
	if got := next.WithRemaining(-5).RemainingTime; got != 0 {
		t.Fatalf("WithRemaining(-5) = %d, want 0", got)
	}
	if got := next.WithRemaining(99).RemainingTime; got != 10 {
		t.Fatalf("WithRemaining(99) = %d, want 10", got)
	}
	if r := next.Rearmed(); r.RemainingTime != 10 || r.Status != StatusPaused {
		t.Fatalf("Rearmed() = %+v", r)
	}
}

func TestTimerProgress(t *testing.T) {
	tm := NewTimer("Tea", 4, "", false).WithRemaining(1)
	if got := tm.Progress(); got != 0.75 {
		t.Fatalf("Progress() = %v, want 0.75", got)
	}
	if got := (Timer{}).Progress(); got != 0 {
		t.Fatalf("zero timer Progress() = %v, want 0", got)
	}
}

func TestGroupByCategoryKeepsFirstAppearanceOrder(t *testing.T) {
	timers := []Timer{
		NewTimer("a", 1, "Work", false),
		NewTimer("b", 1, "Kitchen", false),
		NewTimer("c", 1, "Work", false),
	}
	groups := GroupByCategory(timers)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != "Work" || len(groups[0].Timers) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[0].Timers[1].Name != "c" {
		t.Fatalf("expected registry order inside group, got %q", groups[0].Timers[1].Name)
	}
	if groups[1].Category != "Kitchen" {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestParseDurationSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"3", 3, true},
		{" 90 ", 90, true},
		{"1m30s", 90, true},
		{"2h", 7200, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"abc", 0, false},
		{"10abc", 0, false},
		{"1.5s", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDurationSeconds(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseDurationSeconds(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("ParseDurationSeconds(%q) error = %v, want ErrInvalidDuration", tc.in, err)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel("  "); got != "Uncategorized" {
		t.Fatalf("CategoryLabel(blank) = %q", got)
	}
	if got := CategoryLabel("Kitchen"); got != "Kitchen" {
		t.Fatalf("CategoryLabel(Kitchen) = %q", got)
	}
}
