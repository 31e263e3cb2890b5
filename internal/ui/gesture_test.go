package ui

import (
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGestureTracker(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		start image.Point
		end   image.Point
		held  time.Duration
		want  Gesture
	}{
		{
			name:  "tap",
			start: image.Pt(10, 10),
			end:   image.Pt(12, 9),
			held:  50 * time.Millisecond,
			want:  Gesture{Kind: Tap, Start: image.Pt(10, 10), End: image.Pt(12, 9)},
		},
		{
			name:  "hold",
			start: image.Pt(10, 10),
			end:   image.Pt(10, 10),
			held:  HoldDelay,
			want:  Gesture{Kind: Hold, Start: image.Pt(10, 10), End: image.Pt(10, 10)},
		},
		{
			name:  "swipe west",
			start: image.Pt(300, 400),
			end:   image.Pt(100, 420),
			want:  Gesture{Kind: Swipe, Start: image.Pt(300, 400), End: image.Pt(100, 420), Dir: West},
		},
		{
			name:  "swipe east",
			start: image.Pt(100, 400),
			end:   image.Pt(300, 390),
			want:  Gesture{Kind: Swipe, Start: image.Pt(100, 400), End: image.Pt(300, 390), Dir: East},
		},
		{
			name:  "swipe north",
			start: image.Pt(100, 400),
			end:   image.Pt(110, 100),
			want:  Gesture{Kind: Swipe, Start: image.Pt(100, 400), End: image.Pt(110, 100), Dir: North},
		},
		{
			name:  "swipe south",
			start: image.Pt(100, 100),
			end:   image.Pt(90, 500),
			want:  Gesture{Kind: Swipe, Start: image.Pt(100, 100), End: image.Pt(90, 500), Dir: South},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureTracker(5)
			g.Press(tt.start, t0)
			if !g.Pressed() {
				t.Fatalf("Pressed() = false after Press")
			}
			got := g.Release(tt.end, t0.Add(tt.held))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Release mismatch (-want +got):\n%s", diff)
			}
			if g.Pressed() {
				t.Errorf("Pressed() = true after Release")
			}
		})
	}
}

func TestGestureTrackerUnmatchedRelease(t *testing.T) {
	g := NewGestureTracker(5)
	if got := g.Release(image.Pt(1, 1), time.Now()); got.Kind != NoGesture {
		t.Errorf("Release without Press kind = %v; want NoGesture", got.Kind)
	}
	g.Press(image.Pt(1, 1), time.Now())
	g.Cancel()
	if got := g.Release(image.Pt(1, 1), time.Now()); got.Kind != NoGesture {
		t.Errorf("Release after Cancel kind = %v; want NoGesture", got.Kind)
	}
}

func TestDirString(t *testing.T) {
	for d, want := range map[Dir]string{North: "north", East: "east", South: "south", West: "west", Dir(9): "unknown"} {
		if got := d.String(); got != want {
			t.Errorf("Dir(%d).String() = %q; want %q", int(d), got, want)
		}
	}
}
