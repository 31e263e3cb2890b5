package view

import (
	"fmt"
	"image"

	"github.com/rjkroege/inkshelf/geom"
)

// Locate returns the index of the first child of v whose dynamic type is T.
func Locate[T View](v View) (int, bool) {
	for i, c := range v.Children() {
		if _, ok := c.(T); ok {
			return i, true
		}
	}
	return -1, false
}

// RLocate returns the index of the last child of v whose dynamic type is T.
func RLocate[T View](v View) (int, bool) {
	cs := v.Children()
	for i := len(cs) - 1; i >= 0; i-- {
		if _, ok := cs[i].(T); ok {
			return i, true
		}
	}
	return -1, false
}

// LocateByTag returns the index of the first child of v tagged tag.
func LocateByTag(v View, tag Tag) (int, bool) {
	for i, c := range v.Children() {
		if c.Tag() == tag {
			return i, true
		}
	}
	return -1, false
}

// MustChild returns child i of v as a T. A missing child or one of another
// type means the tree does not have the shape the caller relies on, and
// MustChild panics.
func MustChild[T View](v View, i int) T {
	cs := v.Children()
	if i < 0 || i >= len(cs) {
		var zero T
		panic(fmt.Sprintf("view %d: child %d of %d: want %T, have nothing", v.ID(), i, len(cs), zero))
	}
	c, ok := cs[i].(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("view %d: child %d: want %T, have %T", v.ID(), i, zero, cs[i]))
	}
	return c
}

// Find returns the first child of v whose dynamic type is T.
func Find[T View](v View) (T, bool) {
	if i, ok := Locate[T](v); ok {
		return v.Children()[i].(T), true
	}
	var zero T
	return zero, false
}

// FindByID searches the subtree rooted at v for the view id.
func FindByID(v View, id ID) (View, bool) {
	if v.ID() == id {
		return v, true
	}
	for _, c := range v.Children() {
		if f, ok := FindByID(c, id); ok {
			return f, true
		}
	}
	return nil, false
}

// FindByTag searches the subtree rooted at v for the first view tagged tag.
func FindByTag(v View, tag Tag) (View, bool) {
	var found View
	Walk(v, func(w View) bool {
		if found == nil && w.Tag() == tag {
			found = w
		}
		return found == nil
	})
	return found, found != nil
}

// Walk calls fn for v and its descendants in paint order. Returning false
// skips the children of the current view.
func Walk(v View, fn func(View) bool) {
	if !fn(v) {
		return
	}
	for _, c := range v.Children() {
		Walk(c, fn)
	}
}

// Shift moves v and all of its descendants by d.
func Shift(v View, d image.Point) {
	v.SetRect(v.Rect().Add(d))
	for _, c := range v.Children() {
		Shift(c, d)
	}
}

// Overlapping returns the union of the rectangles of v and its
// descendants.
func Overlapping(v View) image.Rectangle {
	r := v.Rect()
	for _, c := range v.Children() {
		r = geom.Absorb(r, Overlapping(c))
	}
	return r
}
