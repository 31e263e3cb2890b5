package view

import (
	"image"

	"github.com/rjkroege/inkshelf/geom"
)

// EntryKind is the behaviour of a menu entry.
type EntryKind int

const (
	EntryCommand EntryKind = iota
	EntryCheckBox
	EntryRadio
	EntrySeparator
	EntryMessage
	EntrySubMenu
)

// MenuEntry is one row of a menu.
type MenuEntry struct {
	Kind    EntryKind
	Text    string
	ID      EntryID
	Checked bool
	Sub     []MenuEntry
}

func Command(text string, id EntryID) MenuEntry {
	return MenuEntry{Kind: EntryCommand, Text: text, ID: id}
}

func CheckBox(text string, id EntryID, checked bool) MenuEntry {
	return MenuEntry{Kind: EntryCheckBox, Text: text, ID: id, Checked: checked}
}

func Radio(text string, id EntryID, checked bool) MenuEntry {
	return MenuEntry{Kind: EntryRadio, Text: text, ID: id, Checked: checked}
}

func Separator() MenuEntry { return MenuEntry{Kind: EntrySeparator} }

func Message(text string) MenuEntry { return MenuEntry{Kind: EntryMessage, Text: text} }

func SubMenu(text string, entries []MenuEntry) MenuEntry {
	return MenuEntry{Kind: EntrySubMenu, Text: text, Sub: entries}
}

// Menu is a drop-down list of entries floating over a screen. Choosing an
// entry sends Select and then Close for the menu; tapping outside the menu
// closes it.
type Menu struct {
	Base
	entries []MenuEntry
	rows    []image.Rectangle
	sub     *Menu
	subRow  int
	nested  bool
}

// NewMenu returns a menu tagged tag placed next to anchor.
func NewMenu(anchor image.Rectangle, tag Tag, entries []MenuEntry, ctx *Context) *Menu {
	m := &Menu{Base: NewBase(tag, image.Rectangle{}), entries: entries, subRow: -1}
	m.place(anchor, ctx)
	return m
}

func (m *Menu) Entries() []MenuEntry { return m.entries }

// Modal reports that the menu wants taps outside its rectangle.
func (m *Menu) Modal() bool { return !m.nested }

func (m *Menu) Children() []View {
	if m.sub == nil {
		return nil
	}
	return []View{m.sub}
}

func (m *Menu) rowHeight(e MenuEntry, ctx *Context) int {
	if e.Kind == EntrySeparator {
		return max(ctx.Metrics().Thickness(), 1)
	}
	return ctx.Metrics().BigBar()
}

// place sizes the menu and puts it below anchor, or above it when there is
// no room below, keeping it on screen.
func (m *Menu) place(anchor image.Rectangle, ctx *Context) {
	screen := ctx.Screen()
	w := screen.Dx() / 2
	if m.nested {
		w = screen.Dx() / 3
	}
	h := 0
	for _, e := range m.entries {
		h += m.rowHeight(e, ctx)
	}
	h = min(h, screen.Dy())

	x := anchor.Min.X
	if x+w > screen.Max.X {
		x = anchor.Max.X - w
	}
	y := anchor.Max.Y
	if m.nested {
		x, y = anchor.Max.X, anchor.Min.Y
		if x+w > screen.Max.X {
			x = anchor.Min.X - w
		}
	} else if y+h > screen.Max.Y {
		y = anchor.Min.Y - h
	}
	x = geom.Clamp(x, screen.Min.X, screen.Max.X-w)
	y = geom.Clamp(y, screen.Min.Y, screen.Max.Y-h)
	m.rect = image.Rect(x, y, x+w, y+h)

	m.rows = make([]image.Rectangle, len(m.entries))
	y0 := y
	for i, e := range m.entries {
		y1 := min(y0+m.rowHeight(e, ctx), m.rect.Max.Y)
		m.rows[i] = image.Rect(x, y0, x+w, y1)
		y0 = y1
	}
}

func (m *Menu) rowAt(pt image.Point) int {
	for i, r := range m.rows {
		if pt.In(r) {
			return i
		}
	}
	return -1
}

func (m *Menu) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	var pt image.Point
	switch e := evt.(type) {
	case Tap:
		pt = e.Point
	case Hold:
		pt = e.Point
	case Swipe:
		pt = e.Start
	default:
		return false
	}
	i := m.rowAt(pt)
	if i < 0 {
		if m.nested {
			return false
		}
		hub.Send(Close{Tag: m.Tag()})
		return true
	}
	if _, ok := evt.(Tap); ok {
		m.choose(i, hub, rq, ctx)
	}
	return true
}

func (m *Menu) closeSub(rq *RenderQueue) {
	if m.sub == nil {
		return
	}
	rq.Add(ExposeRequest(Overlapping(m.sub), GUI))
	m.sub = nil
	m.subRow = -1
}

func (m *Menu) choose(i int, hub *Hub, rq *RenderQueue, ctx *Context) {
	e := &m.entries[i]
	if e.Kind == EntrySubMenu {
		open := m.subRow == i
		m.closeSub(rq)
		if open {
			return
		}
		sub := &Menu{Base: NewBase(m.Tag(), image.Rectangle{}), entries: e.Sub, subRow: -1, nested: true}
		sub.place(m.rows[i], ctx)
		m.sub, m.subRow = sub, i
		rq.Add(NewRequest(sub.ID(), sub.Rect(), GUI))
		return
	}
	switch e.Kind {
	case EntryCheckBox:
		e.Checked = !e.Checked
	case EntryRadio:
		e.Checked = true
	case EntryCommand:
	default:
		return
	}
	hub.Send(Select{Entry: e.ID})
	hub.Send(Close{Tag: m.Tag()})
}

func (m *Menu) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	for i, e := range m.entries {
		r := m.rows[i]
		if !r.Overlaps(rect) {
			continue
		}
		switch e.Kind {
		case EntrySeparator:
			c.Fill(r.Intersect(rect), c.Ink(InkSeparator))
		case EntryMessage:
			c.Text(padded(r), e.Text, c.Ink(InkText), AlignCenter)
		default:
			c.Text(padded(r), entryLabel(e), c.Ink(InkText), AlignLeft)
		}
	}
	c.Border(m.Rect(), 1, c.Ink(InkBorder))
}

func entryLabel(e MenuEntry) string {
	switch e.Kind {
	case EntryCheckBox:
		if e.Checked {
			return "[x] " + e.Text
		}
		return "[ ] " + e.Text
	case EntryRadio:
		if e.Checked {
			return "(*) " + e.Text
		}
		return "( ) " + e.Text
	case EntrySubMenu:
		return e.Text + " >"
	}
	return e.Text
}
