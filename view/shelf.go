package view

import (
	"fmt"
	"image"

	"github.com/rjkroege/inkshelf/catalog"
)

// EntryRow shows one catalog entry. Tapping or holding it opens the entry
// menu.
type EntryRow struct {
	Base
	Entry catalog.Entry
}

// NewEntryRow returns a row for e in r.
func NewEntryRow(r image.Rectangle, e catalog.Entry) *EntryRow {
	return &EntryRow{Base: NewBase(NoTag, r), Entry: e}
}

func (er *EntryRow) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	var pt image.Point
	switch e := evt.(type) {
	case Tap:
		pt = e.Point
	case Hold:
		pt = e.Point
	default:
		return false
	}
	if !pt.In(er.Rect()) {
		return false
	}
	hub.Send(ToggleEntryMenu{EntryID: er.Entry.ID, Rect: er.Rect()})
	return true
}

func (er *EntryRow) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	r := padded(er.Rect())
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+r.Dy()/2)
	bottom := image.Rect(r.Min.X, top.Max.Y, r.Max.X, r.Max.Y)
	c.Text(top, er.Entry.Title, c.Ink(InkText), AlignLeft)
	c.Text(bottom, er.Entry.Author, c.Ink(InkMuted), AlignLeft)
	if er.Entry.Year > 0 {
		c.Text(bottom, fmt.Sprint(er.Entry.Year), c.Ink(InkMuted), AlignRight)
	}
}

// Shelf is the paged listing of catalog entries. It shows as many rows as
// fit in its rectangle.
type Shelf struct {
	Base
	entries []catalog.Entry
	page    int
	perPage int
	rows    []View
}

// NewShelf returns an empty shelf in r.
func NewShelf(r image.Rectangle, ctx *Context) *Shelf {
	s := &Shelf{Base: NewBase(TagShelf, r)}
	s.layout(ctx)
	return s
}

func (s *Shelf) Children() []View { return s.rows }

func (s *Shelf) Entries() []catalog.Entry { return s.entries }

// Page returns the zero based page shown.
func (s *Shelf) Page() int { return s.page }

// PerPage returns the number of rows that fit.
func (s *Shelf) PerPage() int { return s.perPage }

// Pages returns the number of pages, at least one.
func (s *Shelf) Pages() int {
	if s.perPage == 0 || len(s.entries) == 0 {
		return 1
	}
	return (len(s.entries) + s.perPage - 1) / s.perPage
}

// Lookup returns the entry with the given ID.
func (s *Shelf) Lookup(id string) (catalog.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

// SetEntries replaces the listing and shows its first page.
func (s *Shelf) SetEntries(es []catalog.Entry, rq *RenderQueue, ctx *Context) {
	s.entries = es
	s.page = 0
	s.layout(ctx)
	rq.Add(NewRequest(s.ID(), s.Rect(), Partial))
}

// SetPage shows page n, clamped to the existing pages. It reports whether
// the page changed.
func (s *Shelf) SetPage(n int, rq *RenderQueue, ctx *Context) bool {
	n = max(0, min(n, s.Pages()-1))
	if n == s.page {
		return false
	}
	s.page = n
	s.layout(ctx)
	rq.Add(NewRequest(s.ID(), s.Rect(), Partial))
	return true
}

func (s *Shelf) layout(ctx *Context) {
	m := ctx.Metrics()
	r := s.Rect()
	s.perPage = m.RowsForHeight(r.Dy())
	s.page = max(0, min(s.page, s.Pages()-1))
	s.rows = s.rows[:0:0]
	if s.perPage == 0 {
		return
	}
	t := max(m.Thickness(), 1)
	first := s.page * s.perPage
	last := min(first+s.perPage, len(s.entries))
	y := r.Min.Y
	for i := first; i < last; i++ {
		y1 := min(y+m.BigBar()-t, r.Max.Y)
		s.rows = append(s.rows, NewEntryRow(image.Rect(r.Min.X, y, r.Max.X, y1), s.entries[i]))
		if i < last-1 {
			s.rows = append(s.rows, NewSeparator(image.Rect(r.Min.X, y1, r.Max.X, y1+t)))
		}
		y = y1 + t
	}
}

// Resize keeps the first visible entry on screen.
func (s *Shelf) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	first := s.page * s.perPage
	s.rect = r
	s.perPage = ctx.Metrics().RowsForHeight(r.Dy())
	if s.perPage > 0 {
		s.page = first / s.perPage
	}
	s.layout(ctx)
}

func (s *Shelf) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	if len(s.entries) == 0 {
		c.Text(s.Rect(), "No entries", c.Ink(InkMuted), AlignCenter)
	}
}
