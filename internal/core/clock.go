package core

import "time"

// Clock is a monotonic millisecond tick counter.
type Clock interface {
	Millis() int64
}

// SystemClock counts milliseconds since it was created. It relies on the
// monotonic reading carried by time.Time, so wall-clock jumps do not affect it.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the elapsed milliseconds since the clock was created.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a Clock advanced explicitly, for tests and replays.
type ManualClock struct {
	now int64
}

// Millis returns the current manual time.
func (c *ManualClock) Millis() int64 {
	return c.now
}

// Advance moves the clock forward by d milliseconds.
func (c *ManualClock) Advance(d int64) {
	c.now += d
}

// Set moves the clock to an absolute time.
func (c *ManualClock) Set(millis int64) {
	c.now = millis
}
