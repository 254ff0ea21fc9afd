package terminal

import "github.com/gdamore/tcell/v2"

// EventKind tags a translated terminal event
type EventKind uint8

const (
	EventKey EventKind = iota
	EventResize
	EventClosed
)

// Key identifies the non-printable keys the show reacts to
type Key uint8

const (
	KeyRune Key = iota
	KeyEscape
	KeyCtrlC
	KeyEnter
	KeyOther
)

// Event is a terminal event reduced to what the show needs
type Event struct {
	Kind   EventKind
	Key    Key
	Rune   rune // printable character for KeyRune
	Width  int  // new terminal size for EventResize
	Height int
}

// translate maps a tcell event, false when it is irrelevant
func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyEvent(ev.Key(), ev.Rune()), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Kind: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

func keyEvent(k tcell.Key, r rune) Event {
	ev := Event{Kind: EventKey}
	switch k {
	case tcell.KeyRune:
		ev.Key = KeyRune
		ev.Rune = r
	case tcell.KeyEscape:
		ev.Key = KeyEscape
	case tcell.KeyCtrlC:
		ev.Key = KeyCtrlC
	case tcell.KeyEnter:
		ev.Key = KeyEnter
	default:
		ev.Key = KeyOther
	}
	return ev
}
