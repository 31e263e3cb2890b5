package app

import (
	"time"
	"unicode"

	"github.com/rjkroege/inkshelf/draw"
	"github.com/rjkroege/inkshelf/internal/ui"
	"github.com/rjkroege/inkshelf/view"
)

// Mouse buttons as reported by the display.
const (
	buttonTouch     = 1
	buttonHold      = 4
	buttonWheelUp   = 8
	buttonWheelDown = 16
)

// Pointer turns mouse states into the events of a touch screen: the first
// button is the finger, the third a long press and the wheel turns pages.
type Pointer struct {
	tracker *ui.GestureTracker
	buttons int
}

// NewPointer returns a pointer ignoring moves of up to jitter pixels.
func NewPointer(jitter int) *Pointer {
	return &Pointer{tracker: ui.NewGestureTracker(jitter)}
}

// Events returns the events caused by the transition to m.
func (p *Pointer) Events(m draw.Mouse) []view.Event {
	at := time.UnixMilli(int64(m.Msec))
	pressed := m.Buttons &^ p.buttons
	released := p.buttons &^ m.Buttons
	p.buttons = m.Buttons

	var evts []view.Event
	if pressed&buttonTouch != 0 {
		p.tracker.Press(m.Point, at)
	}
	if released&buttonTouch != 0 {
		if evt, ok := GestureEvent(p.tracker.Release(m.Point, at)); ok {
			evts = append(evts, evt)
		}
	}
	if pressed&buttonHold != 0 {
		evts = append(evts, view.Hold{Point: m.Point})
	}
	if pressed&buttonWheelUp != 0 {
		evts = append(evts, view.Page{Dir: view.Previous})
	}
	if pressed&buttonWheelDown != 0 {
		evts = append(evts, view.Page{Dir: view.Next})
	}
	return evts
}

// GestureEvent converts a completed gesture into a positional event.
func GestureEvent(g ui.Gesture) (view.Event, bool) {
	switch g.Kind {
	case ui.Tap:
		return view.Tap{Point: g.Start}, true
	case ui.Hold:
		return view.Hold{Point: g.Start}, true
	case ui.Swipe:
		return view.Swipe{Dir: g.Dir, Start: g.Start, End: g.End}, true
	}
	return nil, false
}

// KeyEvent converts a key typed on the host keyboard. Page and arrow keys
// stand in for the physical buttons of the device and escape goes back.
func KeyEvent(r rune) (view.Event, bool) {
	switch r {
	case draw.KeyLeft:
		return view.Key{Kind: view.KeyLeft}, true
	case draw.KeyRight:
		return view.Key{Kind: view.KeyRight}, true
	case draw.KeyUp:
		return view.Arrow{Dir: ui.North}, true
	case draw.KeyDown:
		return view.Arrow{Dir: ui.South}, true
	case draw.KeyHome:
		return view.Arrow{Dir: ui.West}, true
	case draw.KeyEnd:
		return view.Arrow{Dir: ui.East}, true
	case draw.KeyPageUp:
		return view.Page{Dir: view.Previous}, true
	case draw.KeyPageDown:
		return view.Page{Dir: view.Next}, true
	case '\n', '\r':
		return view.Key{Kind: view.KeyReturn}, true
	case '\b', 0x7F:
		return view.Key{Kind: view.KeyBackspace}, true
	case 0x1B:
		return view.Back{}, true
	}
	if unicode.IsPrint(r) {
		return view.Key{Kind: view.KeyChar, Text: string(r)}, true
	}
	return nil, false
}
