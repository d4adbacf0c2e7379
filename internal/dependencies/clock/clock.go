package clock

import "time"

// Clock provides time operations that can be mocked for testing. Search timings
// and session timestamps both go through it.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Stopwatch measures elapsed time against a Clock
type Stopwatch struct {
	clock Clock
	start time.Time
}

// StartStopwatch begins timing on c
func StartStopwatch(c Clock) Stopwatch {
	return Stopwatch{clock: c, start: c.Now()}
}

// Elapsed returns the time since the stopwatch was started
func (s Stopwatch) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.start)
}
