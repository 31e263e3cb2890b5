// Package geom holds the rectangle arithmetic shared by layout and redraw
// code. Rectangles are image.Rectangle values: Min is inclusive, Max is
// exclusive, and an empty rectangle draws nothing.
package geom

import "image"

// Rect returns the canonical rectangle with the given corners.
func Rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}

// Absorb returns the smallest rectangle containing both a and b. Empty
// operands contribute nothing, so absorbing into the zero rectangle
// yields the other operand unchanged.
func Absorb(a, b image.Rectangle) image.Rectangle {
	switch {
	case a.Empty():
		return b
	case b.Empty():
		return a
	}
	return a.Union(b)
}

// AbsorbAll folds Absorb over rs.
func AbsorbAll(rs ...image.Rectangle) image.Rectangle {
	var u image.Rectangle
	for _, r := range rs {
		u = Absorb(u, r)
	}
	return u
}

// Includes reports whether p lies in r. Degenerate rectangles include
// nothing.
func Includes(r image.Rectangle, p image.Point) bool {
	return p.In(r)
}

// Shift translates r by d.
func Shift(r image.Rectangle, d image.Point) image.Rectangle {
	return r.Add(d)
}

// Halves splits n into two parts with the smaller one first. Separator
// lines use it to straddle a boundary.
func Halves(n int) (small, big int) {
	small = n / 2
	big = n - small
	return
}

// Band returns the horizontal slice of r between y0 and y1. The result is
// clamped so that it never extends outside r vertically and is never
// inverted.
func Band(r image.Rectangle, y0, y1 int) image.Rectangle {
	y0 = Clamp(y0, r.Min.Y, r.Max.Y)
	y1 = Clamp(y1, y0, r.Max.Y)
	return image.Rectangle{
		Min: image.Pt(r.Min.X, y0),
		Max: image.Pt(r.Max.X, y1),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Center returns the centre point of r.
func Center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// CenterIn returns a w×h rectangle centred horizontally in r with its top
// edge at y.
func CenterIn(r image.Rectangle, w, h, y int) image.Rectangle {
	w = min(w, r.Dx())
	x := r.Min.X + (r.Dx()-w)/2
	return image.Rect(x, y, x+w, y+h)
}
