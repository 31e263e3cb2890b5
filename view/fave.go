package view

import (
	"image"
	"strings"

	"github.com/rjkroege/inkshelf/catalog"
)

// Fave is a row of the home screen opening a saved listing.
type Fave struct {
	Base
	Name     string
	Location string
}

// NewFave returns a favorite row in r.
func NewFave(r image.Rectangle, name, location string) *Fave {
	return &Fave{Base: NewBase(NoTag, r), Name: name, Location: location}
}

// Event returns the event asking for the listing of the favorite.
func (f *Fave) Event() Event {
	if strings.HasPrefix(f.Location, catalog.HistoryPrefix) {
		return LoadHistory{Title: f.Name, Location: f.Location}
	}
	return LoadIndex{Title: f.Name, Location: f.Location}
}

func (f *Fave) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	if e, ok := evt.(Tap); ok && e.Point.In(f.Rect()) {
		hub.Send(f.Event())
		return true
	}
	return false
}

func (f *Fave) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	c.Text(padded(f.Rect()), f.Name, c.Ink(InkText), AlignLeft)
}
