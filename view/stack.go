package view

import "fmt"

// Layer names a slot of a container. Layers are painted in declaration
// order, so overlays declared after the anchor cover it and floating views
// cover everything.
type Layer int

const (
	LayerBackground Layer = iota
	LayerTopBar
	LayerContent
	LayerShelf // the anchor
	LayerKeyboard
	LayerSearch
	LayerBottomBar
	LayerFloating
	numLayers
)

var layerNames = [...]string{
	LayerBackground: "background",
	LayerTopBar:     "top-bar",
	LayerContent:    "content",
	LayerShelf:      "shelf",
	LayerKeyboard:   "keyboard",
	LayerSearch:     "search",
	LayerBottomBar:  "bottom-bar",
	LayerFloating:   "floating",
}

func (l Layer) String() string {
	if l >= 0 && l < numLayers {
		return layerNames[l]
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// Stack holds the children of a container in named slots. Opening an
// overlay sets a slot and closing it clears the same slot, so the views of
// other slots never move relative to each other.
type Stack struct {
	slots [numLayers][]View
	flat  []View
	stale bool
}

// Set replaces the views of slot l and returns the previous ones.
func (s *Stack) Set(l Layer, vs ...View) []View {
	old := s.slots[l]
	s.slots[l] = append([]View(nil), vs...)
	s.stale = true
	return old
}

// Clear empties slot l and returns what it held.
func (s *Stack) Clear(l Layer) []View {
	old := s.slots[l]
	s.slots[l] = nil
	if len(old) > 0 {
		s.stale = true
	}
	return old
}

// Slot returns the views of slot l.
func (s *Stack) Slot(l Layer) []View { return s.slots[l] }

// Has reports whether slot l holds any view.
func (s *Stack) Has(l Layer) bool { return len(s.slots[l]) > 0 }

// Push appends v to slot l.
func (s *Stack) Push(l Layer, v View) {
	s.slots[l] = append(s.slots[l], v)
	s.stale = true
}

// Index returns the position in Children of the first view of slot l.
func (s *Stack) Index(l Layer) (int, bool) {
	if !s.Has(l) {
		return -1, false
	}
	n := 0
	for i := Layer(0); i < l; i++ {
		n += len(s.slots[i])
	}
	return n, true
}

// Anchor returns the first view of the shelf slot. A container without an
// anchor is malformed and Anchor panics.
func (s *Stack) Anchor() View {
	if !s.Has(LayerShelf) {
		panic("view: stack has no anchor")
	}
	return s.slots[LayerShelf][0]
}

// RemoveAt removes and returns the view at position i of Children.
func (s *Stack) RemoveAt(i int) View {
	n := i
	for l := range s.slots {
		if n < len(s.slots[l]) {
			v := s.slots[l][n]
			s.slots[l] = append(s.slots[l][:n:n], s.slots[l][n+1:]...)
			s.stale = true
			return v
		}
		n -= len(s.slots[l])
	}
	panic(fmt.Sprintf("view: stack index %d out of range [0:%d]", i, s.Len()))
}

// Retain removes the views of slot l for which keep returns false and
// returns them.
func (s *Stack) Retain(l Layer, keep func(View) bool) []View {
	var kept, dropped []View
	for _, v := range s.slots[l] {
		if keep(v) {
			kept = append(kept, v)
		} else {
			dropped = append(dropped, v)
		}
	}
	if len(dropped) > 0 {
		s.slots[l] = kept
		s.stale = true
	}
	return dropped
}

// Children returns every view in paint order. The returned slice is not
// modified by later changes to the stack.
func (s *Stack) Children() []View {
	if s.stale || s.flat == nil {
		flat := make([]View, 0, s.Len())
		for _, vs := range s.slots {
			flat = append(flat, vs...)
		}
		s.flat = flat
		s.stale = false
	}
	return s.flat
}

// Len returns the number of views in all slots.
func (s *Stack) Len() int {
	n := 0
	for _, vs := range s.slots {
		n += len(vs)
	}
	return n
}
