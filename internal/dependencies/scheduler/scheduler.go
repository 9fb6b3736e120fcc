package scheduler

import "time"

// StopFunc cancels a pending timer. It reports whether the timer was
// stopped before firing; a false return means the callback already ran
// or is running.
type StopFunc func() bool

// Scheduler provides single-shot cancellable timers that can be mocked
// for testing. Callbacks run on their own goroutine.
type Scheduler interface {
	// After schedules fn to run once after d and returns a stop function
	After(d time.Duration, fn func()) StopFunc
}

// RealScheduler implements Scheduler using time.AfterFunc
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// After schedules fn after d
func (s *RealScheduler) After(d time.Duration, fn func()) StopFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
