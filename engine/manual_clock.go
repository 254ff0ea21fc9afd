package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/fireworks/constants"
)

// ManualClock is a TimeProvider driven by hand, one frame or one jump at a time.
// It replays a show frame-exactly in tests.
type ManualClock struct {
	mu       sync.Mutex
	start    time.Time
	now      time.Time
	interval time.Duration
}

// NewManualClock starts at t with the default frame interval
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{start: t, now: t, interval: constants.FrameUpdateInterval}
}

// WithInterval sets the duration of one Step; non-positive values are ignored
func (c *ManualClock) WithInterval(d time.Duration) *ManualClock {
	if d > 0 {
		c.mu.Lock()
		c.interval = d
		c.mu.Unlock()
	}
	return c
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Step advances one frame interval and returns the new time
func (c *ManualClock) Step() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.interval)
	return c.now
}

// Advance moves the clock by d; negative d steps backwards
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SetTime jumps to t
func (c *ManualClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Elapsed is the signed distance from the starting time
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.start)
}
