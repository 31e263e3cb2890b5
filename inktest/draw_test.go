package inktest

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/inkshelf/draw"
)

func TestMockImageImplementsInterface(t *testing.T) {
	var _ draw.Image = (*mockImage)(nil)
}

func TestDrawOpsRecorded(t *testing.T) {
	display := NewDisplay(image.Rect(0, 0, 600, 800))
	screen := display.ScreenImage()
	gray, err := display.AllocImage(image.Rect(0, 0, 1, 1), draw.GREY8, true, draw.Gray(0x80))
	if err != nil {
		t.Fatalf("AllocImage: %v", err)
	}
	font, err := display.OpenFont("any")
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}

	screen.Draw(image.Rect(0, 0, 600, 68), gray, nil, image.Point{})
	screen.Border(image.Rect(10, 10, 20, 20), 1, display.Black(), image.Point{})
	end := screen.Bytes(image.Pt(5, 5), display.Black(), image.Point{}, font, []byte("abc"))

	if want := image.Pt(35, 5); end != want {
		t.Errorf("Bytes returned %v; want %v", end, want)
	}
	want := []string{
		"screen <- fill (0,0)-(600,68) gray80,tiled",
		"screen <- border (10,10)-(20,20) thick: 1 black",
		`screen <- string "abc" at (5,5) black`,
	}
	got := display.(GettableDrawOps).DrawOps()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}

	if err := display.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := display.(GettableDrawOps).Flushes(); got != 1 {
		t.Errorf("Flushes() = %d; want 1", got)
	}
	display.(GettableDrawOps).Clear()
	if got := display.(GettableDrawOps).DrawOps(); len(got) != 0 {
		t.Errorf("DrawOps after Clear = %v", got)
	}
}

func TestNiceColourName(t *testing.T) {
	tests := []struct {
		c    draw.Color
		want string
	}{
		{draw.White, "white"},
		{draw.Black, "black"},
		{draw.Gray(0xAA), "grayaa"},
		{draw.Color(0xFF0000FF), "color(ff0000ff)"},
	}
	for _, tt := range tests {
		if got := NiceColourName(tt.c); got != tt.want {
			t.Errorf("NiceColourName(%#x) = %q; want %q", uint32(tt.c), got, tt.want)
		}
	}
}
