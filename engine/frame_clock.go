package engine

import "time"

// FrameClock turns successive readings of a TimeProvider into (now, dt) pairs
type FrameClock struct {
	source  TimeProvider
	last    time.Time
	started bool
}

func NewFrameClock(source TimeProvider) *FrameClock {
	return &FrameClock{source: source}
}

// Tick samples the source. The first tick and any tick where the source went
// backwards yield dt = 0.
func (c *FrameClock) Tick() (time.Time, time.Duration) {
	now := c.source.Now()
	if !c.started {
		c.started = true
		c.last = now
		return now, 0
	}
	dt := max(now.Sub(c.last), 0)
	c.last = now
	return now, dt
}

// Reset makes the next Tick behave like the first
func (c *FrameClock) Reset() {
	c.started = false
}
