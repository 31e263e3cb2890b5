package view

import (
	"image"

	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/internal/ui"
)

// Event is a value delivered through the view tree. The set of events is
// closed: only types in this package implement it.
type Event interface {
	isEvent()
}

// Toggle flips the named overlay.
type Toggle struct{ Tag Tag }

// Open forces the named overlay open.
type Open struct{ Tag Tag }

// Close forces the named overlay, menu or notification closed. A nonzero
// ID restricts the close to the floating view with that ID.
type Close struct {
	Tag Tag
	ID  ID
}

// ToggleNear flips the named menu, positioned next to Rect.
type ToggleNear struct {
	Tag  Tag
	Rect image.Rectangle
}

// ToggleInputHistory flips the history menu of the input Input.
type ToggleInputHistory struct {
	Input Tag
	Rect  image.Rectangle
}

// ToggleEntryMenu flips the context menu of a listing row.
type ToggleEntryMenu struct {
	EntryID string
	Rect    image.Rectangle
}

// Focus moves input focus to Target. NoTag clears it.
type Focus struct{ Target Tag }

// Submit carries the committed text of the input Tag.
type Submit struct {
	Tag  Tag
	Text string
}

// SubmitInput asks the input Tag to submit its current text.
type SubmitInput struct{ Tag Tag }

// SetInputText replaces the text of the input Tag.
type SetInputText struct {
	Tag  Tag
	Text string
}

// KeyKind distinguishes the keys of the on-screen keyboard.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyBackspace
	KeyReturn
	KeyLeft
	KeyRight
)

// Key is a key press aimed at the focused input.
type Key struct {
	Kind KeyKind
	Text string
}

// Tap is a short press at Point.
type Tap struct{ Point image.Point }

// Hold is a long stationary press at Point.
type Hold struct{ Point image.Point }

// Swipe is a drag from Start to End.
type Swipe struct {
	Dir        ui.Dir
	Start, End image.Point
}

// Arrow is a directional command that is not tied to a position.
type Arrow struct{ Dir ui.Dir }

// ButtonCode names a physical button.
type ButtonCode int

const (
	ButtonForward ButtonCode = iota
	ButtonBackward
	ButtonHome
	ButtonPower
)

// Button reports a physical button transition.
type Button struct {
	Code    ButtonCode
	Pressed bool
}

// CycleDir is a direction through an ordered sequence.
type CycleDir int

const (
	Next CycleDir = iota
	Previous
)

// Page turns one page of a listing.
type Page struct{ Dir CycleDir }

// GoTo jumps to the zero based page of a listing.
type GoTo struct{ Page int }

// LoadSearch asks for a listing of catalog entries matching Query.
type LoadSearch struct{ Query string }

// LoadIndex asks for the listing at Location.
type LoadIndex struct {
	Title    string
	Location string
}

// LoadHistory asks for a saved history list.
type LoadHistory struct {
	Title    string
	Location string
}

// Action names what a menu entry does.
type Action int

const (
	NoAction Action = iota
	About
	SystemInfo
	ToggleInverted
	Rotate
	TakeScreenshot
	Quit
	SetButtonScheme
	SetKeyboardLayout
	Sort
	ReverseOrder
	SearchAuthor
	MarkForLater
	GoHome
	RecallInput
)

// EntryID identifies the command of a menu entry. Arg and Text carry the
// parameter of parameterised actions such as Rotate or Sort.
type EntryID struct {
	Action Action
	Arg    int
	Text   string
	Tag    Tag
}

// Select reports the choice of a menu entry.
type Select struct{ Entry EntryID }

// MarkEntry asks for Entry to be saved to the marked for later list.
type MarkEntry struct{ Entry catalog.Entry }

// Back returns to the previous screen.
type Back struct{}

// Reseed asks every screen to refresh its chrome.
type Reseed struct{}

// ClockTick updates clocks.
type ClockTick struct{}

// BatteryTick updates battery gauges.
type BatteryTick struct{}

// Notify shows a transient message.
type Notify struct{ Text string }

// QuitApp terminates the application.
type QuitApp struct{}

func (Toggle) isEvent()             {}
func (Open) isEvent()               {}
func (Close) isEvent()              {}
func (ToggleNear) isEvent()         {}
func (ToggleInputHistory) isEvent() {}
func (ToggleEntryMenu) isEvent()    {}
func (Focus) isEvent()              {}
func (Submit) isEvent()             {}
func (SubmitInput) isEvent()        {}
func (SetInputText) isEvent()       {}
func (Key) isEvent()                {}
func (Tap) isEvent()                {}
func (Hold) isEvent()               {}
func (Swipe) isEvent()              {}
func (Arrow) isEvent()              {}
func (Button) isEvent()             {}
func (Page) isEvent()               {}
func (GoTo) isEvent()               {}
func (LoadSearch) isEvent()         {}
func (LoadIndex) isEvent()          {}
func (LoadHistory) isEvent()        {}
func (Select) isEvent()             {}
func (MarkEntry) isEvent()          {}
func (Back) isEvent()               {}
func (Reseed) isEvent()             {}
func (ClockTick) isEvent()          {}
func (BatteryTick) isEvent()        {}
func (Notify) isEvent()             {}
func (QuitApp) isEvent()            {}

// Position returns the screen point a positional event refers to.
func Position(evt Event) (image.Point, bool) {
	switch e := evt.(type) {
	case Tap:
		return e.Point, true
	case Hold:
		return e.Point, true
	case Swipe:
		return e.Start, true
	}
	return image.Point{}, false
}
