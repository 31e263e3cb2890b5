package view

import (
	"image"
	"math"

	"github.com/rjkroege/inkshelf/config"
)

// Keyboard is the on-screen keyboard. Tapping a key sends a Key event that
// the focused input consumes.
type Keyboard struct {
	Base
	layout  config.Layout
	shifted bool
	keys    [][]image.Rectangle
}

// NewKeyboard returns a keyboard laid out in r.
func NewKeyboard(r image.Rectangle, layout config.Layout) *Keyboard {
	kb := &Keyboard{Base: NewBase(TagKeyboard, r), layout: layout}
	kb.layoutKeys()
	return kb
}

func (kb *Keyboard) Layout() config.Layout { return kb.layout }
func (kb *Keyboard) Shifted() bool         { return kb.shifted }

// SetLayout switches to layout l.
func (kb *Keyboard) SetLayout(l config.Layout, rq *RenderQueue) {
	kb.layout = l
	kb.shifted = false
	kb.layoutKeys()
	rq.Add(NewRequest(kb.ID(), kb.Rect(), GUI))
}

// Key returns the rectangle of key (row, col).
func (kb *Keyboard) Key(row, col int) image.Rectangle {
	return kb.keys[row][col]
}

func (kb *Keyboard) layoutKeys() {
	r := kb.Rect()
	rows := kb.layout.Rows
	kb.keys = make([][]image.Rectangle, len(rows))
	if len(rows) == 0 {
		return
	}
	for i, row := range rows {
		y0 := r.Min.Y + i*r.Dy()/len(rows)
		y1 := r.Min.Y + (i+1)*r.Dy()/len(rows)
		total := 0.0
		for j := range row {
			total += kb.layout.Width(i, j)
		}
		kb.keys[i] = make([]image.Rectangle, len(row))
		acc := 0.0
		for j := range row {
			x0 := r.Min.X + int(math.Round(acc/total*float64(r.Dx())))
			acc += kb.layout.Width(i, j)
			x1 := r.Min.X + int(math.Round(acc/total*float64(r.Dx())))
			kb.keys[i][j] = image.Rect(x0, y0, x1, y1)
		}
	}
}

func (kb *Keyboard) keyAt(pt image.Point) (row, col int, ok bool) {
	for i, row := range kb.keys {
		for j, k := range row {
			if pt.In(k) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (kb *Keyboard) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	tap, ok := evt.(Tap)
	if !ok {
		if h, ok := evt.(Hold); ok {
			return h.Point.In(kb.Rect())
		}
		return false
	}
	if !tap.Point.In(kb.Rect()) {
		return false
	}
	i, j, ok := kb.keyAt(tap.Point)
	if !ok {
		return true
	}
	out := kb.layout.Output(i, j, kb.shifted)
	switch out {
	case config.KeyShift:
		kb.shifted = !kb.shifted
		rq.Add(NewRequest(kb.ID(), kb.Rect(), GUI))
		return true
	case config.KeyHide:
		hub.Send(Close{Tag: TagKeyboard})
	case config.KeyLayout:
		hub.Send(ToggleNear{Tag: TagKeyboardLayoutMenu, Rect: kb.keys[i][j]})
	case config.KeyBackspace:
		hub.Send(Key{Kind: KeyBackspace})
	case config.KeyReturn:
		hub.Send(Key{Kind: KeyReturn})
	case config.KeySpace:
		hub.Send(Key{Kind: KeyChar, Text: " "})
	default:
		hub.Send(Key{Kind: KeyChar, Text: out})
	}
	if kb.shifted {
		kb.shifted = false
		rq.Add(NewRequest(kb.ID(), kb.Rect(), GUI))
	}
	return true
}

func (kb *Keyboard) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	kb.rect = r
	kb.layoutKeys()
}

func (kb *Keyboard) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	for i, row := range kb.keys {
		for j, k := range row {
			if !k.Overlaps(rect) {
				continue
			}
			face := k.Inset(max(k.Dy()/16, 1))
			ink := InkKey
			label := kb.layout.Output(i, j, kb.shifted)
			if label == config.KeyShift && kb.shifted {
				ink = InkSelected
			}
			c.Fill(face.Intersect(rect), c.Ink(ink))
			c.Text(face, keyLabel(label), c.Ink(InkText), AlignCenter)
		}
	}
}

func keyLabel(key string) string {
	switch key {
	case config.KeyShift:
		return "shift"
	case config.KeyBackspace:
		return "del"
	case config.KeyReturn:
		return "ret"
	case config.KeySpace:
		return ""
	case config.KeyHide:
		return "hide"
	case config.KeyLayout:
		return "kbd"
	}
	return key
}
