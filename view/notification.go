package view

import (
	"image"
	"time"

	"github.com/rjkroege/inkshelf/geom"
)

// Notification is a transient message floating near the top of the screen.
// It closes itself after the configured delay or when tapped.
type Notification struct {
	Base
	text  string
	timer *time.Timer
}

// NewNotification returns a notification tagged tag showing text and
// queues its first paint. A zero notification delay keeps it up until it
// is tapped.
func NewNotification(tag Tag, text string, hub *Hub, rq *RenderQueue, ctx *Context) *Notification {
	n := &Notification{Base: NewBase(tag, image.Rectangle{}), text: text}
	n.place(ctx.Screen(), ctx)
	if d := ctx.Settings.NotificationDelay; d > 0 {
		id := n.ID()
		n.timer = time.AfterFunc(d, func() {
			hub.Send(Close{Tag: tag, ID: id})
		})
	}
	rq.Add(NewRequest(n.ID(), n.Rect(), GUI))
	return n
}

func (n *Notification) Text() string { return n.text }

// Dismiss stops the close timer.
func (n *Notification) Dismiss() {
	if n.timer != nil {
		n.timer.Stop()
	}
}

func (n *Notification) place(r image.Rectangle, ctx *Context) {
	m := ctx.Metrics()
	n.rect = geom.CenterIn(r, 2*r.Dx()/3, m.BigBar(), r.Min.Y+m.TopBarHeight()+m.BigBar()/2)
}

func (n *Notification) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	if e, ok := evt.(Tap); ok && e.Point.In(n.Rect()) {
		hub.Send(Close{Tag: n.Tag(), ID: n.ID()})
		return true
	}
	return false
}

// Resize centres the notification in the screen area r.
func (n *Notification) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	n.place(r, ctx)
}

func (n *Notification) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	c.Border(n.Rect(), 2, c.Ink(InkBorder))
	c.Text(padded(n.Rect()), n.text, c.Ink(InkText), AlignCenter)
}
