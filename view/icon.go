package view

import "image"

// Icon is a square button. Icons are drawn as their name in a box; the
// reader has no glyph font.
type Icon struct {
	Base
	name  string
	Event Event
	Hold  Event
}

// NewIcon returns an icon named name that sends evt when tapped.
func NewIcon(r image.Rectangle, name string, evt Event) *Icon {
	return &Icon{Base: NewBase(NoTag, r), name: name, Event: evt}
}

func (i *Icon) Name() string { return i.name }

// SetName switches the icon and queues a repaint when it changes.
func (i *Icon) SetName(name string, rq *RenderQueue) {
	if name == i.name {
		return
	}
	i.name = name
	rq.Add(NewRequest(i.ID(), i.Rect(), GUI))
}

func (i *Icon) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	switch e := evt.(type) {
	case Tap:
		if !e.Point.In(i.Rect()) {
			return false
		}
		if i.Event != nil {
			hub.Send(placed(i.Event, i.Rect()))
		}
		return true
	case Hold:
		if !e.Point.In(i.Rect()) || i.Hold == nil {
			return false
		}
		hub.Send(placed(i.Hold, i.Rect()))
		return true
	}
	return false
}

func (i *Icon) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	c.Text(i.Rect(), i.name, c.Ink(InkText), AlignCenter)
}
