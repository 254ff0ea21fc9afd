package terminal

import (
	"errors"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/core"
)

// ErrClosed is returned by Flush after Fini
var ErrClosed = errors.New("terminal screen closed")

// Screen presents composited grids on a tcell screen and forwards its events
type Screen struct {
	mu          sync.Mutex
	screen      tcell.Screen
	doubleWidth bool
	colorMode   ColorMode
	styles      map[core.RGB]tcell.Style

	started bool
	closed  bool
	events  chan Event
	done    chan struct{}
}

// NewScreen wraps s. In double-width mode grid column x is drawn at terminal
// column 2x.
func NewScreen(s tcell.Screen, doubleWidth bool) *Screen {
	return &Screen{
		screen:      s,
		doubleWidth: doubleWidth,
		colorMode:   DetectColorMode(),
		styles:      make(map[core.RGB]tcell.Style),
		events:      make(chan Event, constants.EventChannelSize),
		done:        make(chan struct{}),
	}
}

// Init initializes the tcell screen and starts the event poller
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.started = true

	log.Printf("terminal: init color=%s double-width=%v", s.colorMode, s.doubleWidth)

	Go(s.poll)
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	if s.started {
		s.screen.Fini()
	}
}

// SetColorMode overrides the detected color capability
func (s *Screen) SetColorMode(m ColorMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.colorMode = m
	clear(s.styles)
}

func (s *Screen) ColorMode() ColorMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorMode
}

func (s *Screen) DoubleWidth() bool {
	return s.doubleWidth
}

// Size returns the terminal size in columns and rows
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Events delivers translated key and resize events. The channel is never closed;
// EventClosed is sent when the poller stops.
func (s *Screen) Events() <-chan Event {
	return s.events
}

// Flush draws every painted cell of g and presents the frame
func (s *Screen) Flush(g *core.Grid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.screen.Clear()
	for y := 0; y < g.Height(); y++ {
		for x, cell := range g.Row(y) {
			if cell.Rune == core.Blank {
				continue
			}
			col, r := x, cell.Rune
			if s.doubleWidth {
				col = 2 * x
			} else if runewidth.RuneWidth(r) > 1 {
				r = constants.FallbackGlyph
			}
			s.screen.SetContent(col, y, r, nil, s.style(cell.Color))
		}
	}
	s.screen.Show()
	return nil
}

// style caches one style per color; palettes are small
func (s *Screen) style(c core.RGB) tcell.Style {
	st, ok := s.styles[c]
	if !ok {
		st = tcell.StyleDefault.Foreground(ToTcell(c, s.colorMode))
		s.styles[c] = st
	}
	return st
}

// poll forwards tcell events until the screen is finalized
func (s *Screen) poll() {
	defer s.send(Event{Kind: EventClosed})

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if e, ok := translate(ev); ok {
			if !s.send(e) {
				return
			}
		}
	}
}

func (s *Screen) send(e Event) bool {
	select {
	case s.events <- e:
		return true
	case <-s.done:
		// Best effort after Fini
		select {
		case s.events <- e:
		default:
		}
		return false
	}
}
