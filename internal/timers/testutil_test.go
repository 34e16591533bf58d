package timers

import (
	"testing"
	"time"
)

type fakeTask struct {
	fn        func()
	cancelled bool
}

func (t *fakeTask) Cancel() { t.cancelled = true }

// fakeScheduler records tasks and fires them only when the test says so.
type fakeScheduler struct {
	tasks []*fakeTask
}

func (s *fakeScheduler) Every(_ time.Duration, fn func()) Task {
	t := &fakeTask{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) active() []*fakeTask {
	var out []*fakeTask
	for _, t := range s.tasks {
		if !t.cancelled {
			out = append(out, t)
		}
	}
	return out
}

// tick fires every live task once, in registration order.
func (s *fakeScheduler) tick(n int) {
	for i := 0; i < n; i++ {
		for _, t := range s.active() {
			t.fn()
		}
	}
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

func setupRegistry(t *testing.T, opts ...Option) (*Registry, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	opts = append([]Option{WithClock(fixedClock{now: testNow})}, opts...)
	r := New(sched, opts...)
	t.Cleanup(r.Close)
	return r, sched
}
