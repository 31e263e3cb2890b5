package inktest

import (
	"fmt"

	"github.com/rjkroege/inkshelf/draw"
)

// NiceColourName names the gray levels used by the palettes.
func NiceColourName(num draw.Color) string {
	switch num {
	case draw.White:
		return "white"
	case draw.Black:
		return "black"
	case draw.Notacolor:
		return "notacolor"
	}
	if num&0xFF == 0xFF && draw.Gray(draw.Level(num)) == num {
		return fmt.Sprintf("gray%02x", draw.Level(num))
	}
	return fmt.Sprintf("color(%x)", uint32(num))
}
