package view

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(vs []View) []ID {
	var out []ID
	for _, v := range vs {
		out = append(out, v.ID())
	}
	return out
}

func TestStackPaintOrder(t *testing.T) {
	var s Stack
	bg := NewFiller(image.Rect(0, 0, 10, 10), InkBackground)
	anchor := NewFiller(image.Rect(0, 2, 10, 10), InkBackground)
	kb := NewFiller(image.Rect(0, 6, 10, 8), InkKey)
	search := NewFiller(image.Rect(0, 8, 10, 10), InkText)
	menu := NewFiller(image.Rect(2, 2, 8, 8), InkBorder)

	// Slots are set out of order on purpose.
	s.Set(LayerSearch, search)
	s.Push(LayerFloating, menu)
	s.Set(LayerShelf, anchor)
	s.Set(LayerKeyboard, kb)
	s.Set(LayerBackground, bg)

	want := []ID{bg.ID(), anchor.ID(), kb.ID(), search.ID(), menu.ID()}
	if diff := cmp.Diff(want, ids(s.Children())); diff != "" {
		t.Errorf("Children mismatch (-want +got):\n%s", diff)
	}
	if got := s.Anchor(); got != View(anchor) {
		t.Errorf("Anchor() = %v, want the shelf filler", got)
	}
	if i, ok := s.Index(LayerKeyboard); !ok || i != 2 {
		t.Errorf("Index(keyboard) = %d, %v, want 2, true", i, ok)
	}
	if _, ok := s.Index(LayerContent); ok {
		t.Errorf("Index(content) found an empty slot")
	}
}

func TestStackClearKeepsOtherSlots(t *testing.T) {
	var s Stack
	anchor := NewFiller(image.Rect(0, 0, 10, 10), InkBackground)
	kb := NewFiller(image.Rect(0, 6, 10, 8), InkKey)
	search := NewFiller(image.Rect(0, 8, 10, 10), InkText)
	s.Set(LayerShelf, anchor)
	s.Set(LayerKeyboard, kb)
	s.Set(LayerSearch, search)

	before := s.Children()
	s.Clear(LayerKeyboard)
	if diff := cmp.Diff([]ID{anchor.ID(), search.ID()}, ids(s.Children())); diff != "" {
		t.Errorf("Children after clear mismatch (-want +got):\n%s", diff)
	}
	if len(before) != 3 {
		t.Errorf("earlier Children result changed to %d views", len(before))
	}
	if old := s.Clear(LayerKeyboard); old != nil {
		t.Errorf("clearing an empty slot returned %d views", len(old))
	}
}

func TestStackRemoveAt(t *testing.T) {
	var s Stack
	a := NewFiller(image.Rect(0, 0, 1, 1), InkBackground)
	b := NewFiller(image.Rect(0, 0, 1, 1), InkBackground)
	c := NewFiller(image.Rect(0, 0, 1, 1), InkBackground)
	s.Set(LayerShelf, a)
	s.Push(LayerFloating, b)
	s.Push(LayerFloating, c)

	if got := s.RemoveAt(1); got != View(b) {
		t.Errorf("RemoveAt(1) removed the wrong view")
	}
	if diff := cmp.Diff([]ID{a.ID(), c.ID()}, ids(s.Children())); diff != "" {
		t.Errorf("Children mismatch (-want +got):\n%s", diff)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("RemoveAt out of range did not panic")
		}
	}()
	s.RemoveAt(5)
}

func TestStackRetain(t *testing.T) {
	var s Stack
	keep := NewFiller(image.Rect(0, 0, 1, 1), InkText)
	drop := NewFiller(image.Rect(0, 0, 1, 1), InkBorder)
	s.Push(LayerFloating, drop)
	s.Push(LayerFloating, keep)

	dropped := s.Retain(LayerFloating, func(v View) bool { return v.(*Filler).Ink == InkText })
	if diff := cmp.Diff([]ID{drop.ID()}, ids(dropped)); diff != "" {
		t.Errorf("dropped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ID{keep.ID()}, ids(s.Children())); diff != "" {
		t.Errorf("Children mismatch (-want +got):\n%s", diff)
	}
}

func TestStackAnchorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Anchor on an empty stack did not panic")
		}
	}()
	var s Stack
	s.Anchor()
}

func TestNextIDIsFresh(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NextID()
		if id == 0 || seen[id] {
			t.Fatalf("NextID() = %d repeats or is zero", id)
		}
		seen[id] = true
	}
}
