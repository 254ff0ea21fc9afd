package engine

import (
	"sync"
	"time"
)

// PausableClock is show time layered over a real TimeProvider. While paused, Now is
// frozen; after resume the paused span is skipped so nothing jumps forward.
type PausableClock struct {
	mu sync.RWMutex

	real TimeProvider

	paused      bool
	pauseStart  time.Time     // real time the current pause began
	totalPaused time.Duration // cumulative completed pauses
}

// NewPausableClock creates a running clock over source; nil uses the monotonic clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		real: source,
	}
}

// Now returns current show time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPaused)
	}
	return pc.real.Now().Add(-pc.totalPaused)
}

// RealTime returns the underlying clock, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.real.Now()
}

// Pause stops show time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.real.Now()
}

// Resume continues show time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.paused = false
	if d := pc.real.Now().Sub(pc.pauseStart); d > 0 {
		pc.totalPaused += d
	}
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new one
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += max(pc.real.Now().Sub(pc.pauseStart), 0)
	}
	return total
}
