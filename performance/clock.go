package performance

import "time"

// Clock is the time source a Measurer reads around each invocation.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// monotonicClock relies on the monotonic reading time.Now embeds.
type monotonicClock struct{}

func (monotonicClock) Now() time.Time {
	return time.Now()
}

func (monotonicClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// MonotonicClock returns the default wall clock.
func MonotonicClock() Clock {
	return monotonicClock{}
}
