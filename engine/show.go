package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/render"
)

// ErrIncompleteShow is returned by NewShow when a required collaborator is missing
var ErrIncompleteShow = errors.New("show needs a manager, compositor and display")

// Display receives one composited frame per step
type Display interface {
	Flush(g *core.Grid) error
}

// Feeder tops up a dynamic manager before each update. plotW and plotH are the
// logical plot extent.
type Feeder interface {
	Feed(m *firework.Manager, plotW, plotH int, now time.Time)
}

// ShowOptions wires a show together
type ShowOptions struct {
	Manager    *firework.Manager
	Compositor *render.Compositor
	Display    Display
	// Clock is the real time source; nil uses the monotonic clock
	Clock TimeProvider
	// Feeder is consulted only when the manager install is dynamic
	Feeder Feeder
}

// Show drives the frame cycle: tick, feed, update, render, flush
type Show struct {
	manager    *firework.Manager
	compositor *render.Compositor
	display    Display
	feeder     Feeder

	clock  *PausableClock
	frame  *FrameClock
	frames uint64
}

func NewShow(o ShowOptions) (*Show, error) {
	if o.Manager == nil || o.Compositor == nil || o.Display == nil {
		return nil, ErrIncompleteShow
	}
	clock := NewPausableClock(o.Clock)
	return &Show{
		manager:    o.Manager,
		compositor: o.Compositor,
		display:    o.Display,
		feeder:     o.Feeder,
		clock:      clock,
		frame:      NewFrameClock(clock),
	}, nil
}

// Step runs one frame. Display errors are returned to the driver.
func (s *Show) Step() error {
	now, dt := s.frame.Tick()

	if s.feeder != nil && s.manager.Install() == firework.DynamicInstall && !s.clock.IsPaused() {
		w, h := s.compositor.PlotSize()
		s.feeder.Feed(s.manager, w, h, now)
	}

	s.manager.Update(now, dt)
	s.compositor.Render(s.manager)
	if err := s.display.Flush(s.compositor.Grid()); err != nil {
		return fmt.Errorf("flush frame %d: %w", s.frames, err)
	}
	s.frames++
	return nil
}

// Resize adapts the compositor to new terminal dimensions and restarts the show
func (s *Show) Resize(width, height int) {
	log.Printf("show: resize %dx%d", width, height)
	s.compositor.Resize(width, height)
	s.manager.Reset(s.clock.Now())
}

// Restart rearms every firework at the current show time
func (s *Show) Restart() {
	log.Printf("show: restart after %d frames", s.frames)
	s.manager.Reset(s.clock.Now())
}

// TogglePause freezes or resumes show time and returns the new state
func (s *Show) TogglePause() bool {
	paused := s.clock.Toggle()
	log.Printf("show: paused=%v", paused)
	return paused
}

func (s *Show) Paused() bool {
	return s.clock.IsPaused()
}

// Frames returns how many frames have been flushed
func (s *Show) Frames() uint64 {
	return s.frames
}

func (s *Show) Manager() *firework.Manager {
	return s.manager
}

// Now returns current show time
func (s *Show) Now() time.Time {
	return s.clock.Now()
}
