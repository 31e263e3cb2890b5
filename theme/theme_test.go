package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/inkshelf/draw"
)

func TestInverted(t *testing.T) {
	p := Inverted()
	if p.Background != draw.Black {
		t.Errorf("inverted Background = %#x; want black", uint32(p.Background))
	}
	if p.Text != draw.White {
		t.Errorf("inverted Text = %#x; want white", uint32(p.Text))
	}
	if p.Muted != draw.Gray(0x77) {
		t.Errorf("inverted Muted = %#x; want gray77", uint32(p.Muted))
	}
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	if diff := cmp.Diff(Normal(), Normal().Invert().Invert()); diff != "" {
		t.Errorf("double inversion mismatch (-want +got):\n%s", diff)
	}
}

func TestFor(t *testing.T) {
	if diff := cmp.Diff(Normal(), For(false)); diff != "" {
		t.Errorf("For(false) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Inverted(), For(true)); diff != "" {
		t.Errorf("For(true) mismatch (-want +got):\n%s", diff)
	}
}
