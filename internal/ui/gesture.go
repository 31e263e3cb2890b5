package ui

import (
	"image"
	"time"
)

// GestureKind classifies a completed pointer interaction.
type GestureKind int

const (
	NoGesture GestureKind = iota
	Tap
	Hold
	Swipe
)

// Dir is a cardinal direction.
type Dir int

const (
	North Dir = iota
	East
	South
	West
)

func (d Dir) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Gesture is the result of a press/release pair.
type Gesture struct {
	Kind  GestureKind
	Start image.Point
	End   image.Point
	Dir   Dir
}

// HoldDelay is the press duration after which a stationary press counts as
// a hold rather than a tap.
const HoldDelay = 600 * time.Millisecond

// GestureTracker turns raw pointer button transitions into gestures. It
// keeps the press point between calls, replacing ad hoc press/release
// bookkeeping in the event loop.
type GestureTracker struct {
	jitter  int
	pressed bool
	start   image.Point
	at      time.Time
}

// NewGestureTracker creates a tracker that ignores movements of at most
// jitter pixels along both axes.
func NewGestureTracker(jitter int) *GestureTracker {
	return &GestureTracker{jitter: jitter}
}

// Press records the start of an interaction. A second press without a
// release restarts the interaction.
func (g *GestureTracker) Press(pt image.Point, at time.Time) {
	g.pressed = true
	g.start = pt
	g.at = at
}

// Pressed reports whether a press is outstanding.
func (g *GestureTracker) Pressed() bool {
	return g.pressed
}

// Release completes the interaction and classifies it. A release without a
// matching press yields NoGesture.
func (g *GestureTracker) Release(pt image.Point, at time.Time) Gesture {
	if !g.pressed {
		return Gesture{Kind: NoGesture, Start: pt, End: pt}
	}
	g.pressed = false
	d := pt.Sub(g.start)
	dx, dy := abs(d.X), abs(d.Y)
	gs := Gesture{Start: g.start, End: pt}
	switch {
	case dx <= g.jitter && dy <= g.jitter:
		if at.Sub(g.at) >= HoldDelay {
			gs.Kind = Hold
		} else {
			gs.Kind = Tap
		}
	case dx >= dy:
		gs.Kind = Swipe
		if d.X < 0 {
			gs.Dir = West
		} else {
			gs.Dir = East
		}
	default:
		gs.Kind = Swipe
		if d.Y < 0 {
			gs.Dir = North
		} else {
			gs.Dir = South
		}
	}
	return gs
}

// Cancel drops any outstanding press.
func (g *GestureTracker) Cancel() {
	g.pressed = false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
