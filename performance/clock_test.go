package performance

import (
	"time"
)

// scriptedClock reports the queued durations in order, one per Since call.
type scriptedClock struct {
	samples []time.Duration
	nows    int
	sinces  int
}

func (c *scriptedClock) Now() time.Time {
	c.nows++
	return time.Unix(0, 0)
}

func (c *scriptedClock) Since(time.Time) time.Duration {
	sample := c.samples[c.sinces%len(c.samples)]
	c.sinces++
	return sample
}

// recordingClock delegates to the real clock and keeps every sample it handed out.
type recordingClock struct {
	Clock
	samples []time.Duration
}

func (c *recordingClock) Since(t time.Time) time.Duration {
	elapsed := c.Clock.Since(t)
	c.samples = append(c.samples, elapsed)
	return elapsed
}
