package utils

import "time"

// Timer measures elapsed wall-clock time from its creation until Stop.
type Timer struct {
	startTime time.Time
	duration  time.Duration
	stopped   bool
}

// NewTimer returns a running Timer.
func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Stop freezes the elapsed time and returns it. Later calls return the same
// duration.
func (t *Timer) Stop() time.Duration {
	if !t.stopped {
		t.duration = time.Since(t.startTime)
		t.stopped = true
	}
	return t.duration
}

// Milliseconds returns the elapsed time in fractional milliseconds, stopping
// the timer if it is still running.
func (t *Timer) Milliseconds() float64 {
	return float64(t.Stop().Microseconds()) / 1000
}
