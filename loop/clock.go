package loop

import "time"

// Clock measures the time between consecutive frames.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewClock returns a clock reading the wall clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Delta returns the time since the previous Delta or Step.
func (c *Clock) Delta() time.Duration {
	return c.Step(c.now())
}

// Step records a frame at t and returns the time since the previous frame.
// The first frame after construction or Reset measures zero.
func (c *Clock) Step(t time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}

// Reset discards the pending interval so the next frame measures zero.
func (c *Clock) Reset() {
	c.started = false
}
