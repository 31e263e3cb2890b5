package view

import (
	"image"

	"github.com/rjkroege/inkshelf/draw"
	"github.com/rjkroege/inkshelf/theme"
)

// Align positions text inside its box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Ink names a role in the palette so that views keep their meaning when
// the palette is inverted.
type Ink int

const (
	InkBackground Ink = iota
	InkText
	InkSeparator
	InkMuted
	InkSelected
	InkKey
	InkBorder
)

// Canvas is the surface views render into.
type Canvas struct {
	Dst     draw.Image
	Font    draw.Font
	Palette theme.Palette

	colors map[draw.Color]draw.Image
}

// NewCanvas returns a canvas painting into dst.
func NewCanvas(dst draw.Image, font draw.Font, p theme.Palette) *Canvas {
	return &Canvas{Dst: dst, Font: font, Palette: p, colors: make(map[draw.Color]draw.Image)}
}

// SetPalette switches palettes, dropping the cached color images.
func (c *Canvas) SetPalette(p theme.Palette) {
	c.Palette = p
	for _, img := range c.colors {
		img.Free()
	}
	c.colors = make(map[draw.Color]draw.Image)
}

// Color returns a replicated image of col, allocated once per color.
func (c *Canvas) Color(col draw.Color) draw.Image {
	if img, ok := c.colors[col]; ok {
		return img
	}
	img, err := c.Dst.Display().AllocImage(image.Rect(0, 0, 1, 1), draw.GREY8, true, col)
	if err != nil {
		if col == c.Palette.Text {
			return c.Dst.Display().Black()
		}
		return c.Dst.Display().White()
	}
	c.colors[col] = img
	return img
}

// Ink returns the color the palette assigns to role i.
func (c *Canvas) Ink(i Ink) draw.Color {
	switch i {
	case InkText:
		return c.Palette.Text
	case InkSeparator:
		return c.Palette.Separator
	case InkMuted:
		return c.Palette.Muted
	case InkSelected:
		return c.Palette.Selected
	case InkKey:
		return c.Palette.Key
	case InkBorder:
		return c.Palette.Border
	}
	return c.Palette.Background
}

// Fill paints r with col.
func (c *Canvas) Fill(r image.Rectangle, col draw.Color) {
	if r.Empty() {
		return
	}
	c.Dst.Draw(r, c.Color(col), nil, image.Point{})
}

// Border outlines r with a line n pixels wide.
func (c *Canvas) Border(r image.Rectangle, n int, col draw.Color) {
	if r.Empty() || n <= 0 {
		return
	}
	c.Dst.Border(r, n, c.Color(col), image.Point{})
}

// Text draws s in box, vertically centred, clipped to whole runes that fit.
func (c *Canvas) Text(box image.Rectangle, s string, col draw.Color, align Align) {
	if c.Font == nil || box.Empty() || s == "" {
		return
	}
	s = c.Fit(s, box.Dx())
	w := c.Font.StringWidth(s)
	x := box.Min.X
	switch align {
	case AlignCenter:
		x += (box.Dx() - w) / 2
	case AlignRight:
		x = box.Max.X - w
	}
	y := box.Min.Y + (box.Dy()-c.Font.Height())/2
	c.Dst.Bytes(image.Pt(x, y), c.Color(col), image.Point{}, c.Font, []byte(s))
}

// Fit shortens s until it is at most width pixels wide, marking the cut
// with an ellipsis.
func (c *Canvas) Fit(s string, width int) string {
	if c.Font == nil || c.Font.StringWidth(s) <= width {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		t := string(rs) + "…"
		if c.Font.StringWidth(t) <= width {
			return t
		}
	}
	return ""
}
