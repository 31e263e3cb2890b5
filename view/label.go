package view

import "image"

// Label shows a line of text. A label with an Event sends it when tapped.
type Label struct {
	Base
	text  string
	Align Align
	Ink   Ink
	Event Event
}

// NewLabel returns a label showing text in r.
func NewLabel(r image.Rectangle, text string, align Align) *Label {
	return &Label{Base: NewBase(NoTag, r), text: text, Align: align, Ink: InkText}
}

// Text returns the text shown.
func (l *Label) Text() string { return l.text }

// SetText changes the text and queues a repaint when it differs.
func (l *Label) SetText(text string, rq *RenderQueue) {
	if text == l.text {
		return
	}
	l.text = text
	rq.Add(NewRequest(l.ID(), l.Rect(), GUI))
}

func (l *Label) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	if e, ok := evt.(Tap); ok && l.Event != nil && e.Point.In(l.Rect()) {
		hub.Send(placed(l.Event, l.Rect()))
		return true
	}
	return false
}

func (l *Label) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	c.Text(padded(l.Rect()), l.text, c.Ink(l.Ink), l.Align)
}

// padded returns r with a horizontal margin of a quarter of its height.
func padded(r image.Rectangle) image.Rectangle {
	pad := r.Dy() / 4
	if 2*pad >= r.Dx() {
		return r
	}
	return image.Rect(r.Min.X+pad, r.Min.Y, r.Max.X-pad, r.Max.Y)
}

// placed fills in the rectangle of events that open something next to
// the view that sent them.
func placed(evt Event, r image.Rectangle) Event {
	switch e := evt.(type) {
	case ToggleNear:
		e.Rect = r
		return e
	case ToggleInputHistory:
		e.Rect = r
		return e
	case ToggleEntryMenu:
		e.Rect = r
		return e
	}
	return evt
}
