package view

import "image"

// Filler paints its rectangle with a single ink. Containers use fillers for
// their background, separators and empty space.
type Filler struct {
	Base
	Ink Ink
}

// NewFiller returns a filler painting r with ink.
func NewFiller(r image.Rectangle, ink Ink) *Filler {
	return &Filler{Base: NewBase(NoTag, r), Ink: ink}
}

// NewSeparator returns a separator line filling r.
func NewSeparator(r image.Rectangle) *Filler {
	return NewFiller(r, InkSeparator)
}

func (f *Filler) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(f.Ink))
}
