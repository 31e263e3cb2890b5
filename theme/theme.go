// Package theme holds the gray level palettes used to paint views on an
// e-ink panel.
package theme

import (
	"github.com/rjkroege/inkshelf/draw"
)

type Palette struct {
	Background draw.Color
	Text       draw.Color
	Separator  draw.Color
	Muted      draw.Color // placeholders, disabled entries
	Selected   draw.Color // pressed keys, checked entries
	Key        draw.Color // keyboard key faces
	Border     draw.Color
}

var normalPalette = Palette{
	Background: draw.White,
	Text:       draw.Black,
	Separator:  draw.Black,
	Muted:      draw.Gray(0x88),
	Selected:   draw.Gray(0x44),
	Key:        draw.Gray(0xEE),
	Border:     draw.Black,
}

// Normal returns the black on white palette.
func Normal() Palette { return normalPalette }

// Inverted returns the white on black palette.
func Inverted() Palette { return normalPalette.Invert() }

// For picks the palette matching the inverted display setting.
func For(inverted bool) Palette {
	if inverted {
		return Inverted()
	}
	return Normal()
}

// Invert maps every gray level of p to its complement.
func (p Palette) Invert() Palette {
	return Palette{
		Background: invert(p.Background),
		Text:       invert(p.Text),
		Separator:  invert(p.Separator),
		Muted:      invert(p.Muted),
		Selected:   invert(p.Selected),
		Key:        invert(p.Key),
		Border:     invert(p.Border),
	}
}

func invert(c draw.Color) draw.Color {
	return draw.Gray(0xFF - draw.Level(c))
}
