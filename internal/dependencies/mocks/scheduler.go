package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/geofinder-go/internal/dependencies/scheduler"
)

// MockScheduler is a mock implementation of Scheduler for testing.
// Timers never fire on their own; tests fire them explicitly.
type MockScheduler struct {
	mu     sync.Mutex
	timers []*MockTimer
}

// MockTimer is a single scheduled callback held by a MockScheduler
type MockTimer struct {
	Duration time.Duration

	sched   *MockScheduler
	fn      func()
	stopped bool
	fired   bool
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// After records the timer and returns a stop function
func (s *MockScheduler) After(d time.Duration, fn func()) scheduler.StopFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &MockTimer{Duration: d, sched: s, fn: fn}
	s.timers = append(s.timers, t)
	return t.stop
}

// Timers returns all timers ever scheduled, in order
func (s *MockScheduler) Timers() []*MockTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*MockTimer(nil), s.timers...)
}

// Pending returns the number of timers that have neither fired nor been stopped
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// FireNext fires the oldest pending timer synchronously and reports
// whether one was found
func (s *MockScheduler) FireNext() bool {
	s.mu.Lock()
	var next *MockTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			next = t
			break
		}
	}
	if next != nil {
		next.fired = true
	}
	s.mu.Unlock()

	if next == nil {
		return false
	}
	next.fn()
	return true
}

// Fire runs the timer's callback even if it was stopped, simulating a
// firing that raced with cancellation
func (t *MockTimer) Fire() {
	t.sched.mu.Lock()
	t.fired = true
	t.sched.mu.Unlock()
	t.fn()
}

// Stopped reports whether the timer's stop function was called before firing
func (t *MockTimer) Stopped() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	return t.stopped
}

func (t *MockTimer) stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired {
		return false
	}
	t.stopped = true
	return true
}
