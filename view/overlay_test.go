package view

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/inkshelf/config"
)

func slotRects(s *Stack, l Layer) []image.Rectangle {
	var out []image.Rectangle
	for _, v := range s.Slot(l) {
		out = append(out, v.Rect())
	}
	return out
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func TestOverlaySearchThenKeyboard(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}
	anchor := s.stack.Anchor()

	if got, want := anchor.Rect(), image.Rect(0, 68, 600, 800); got != want {
		t.Fatalf("initial anchor = %v, want %v", got, want)
	}

	s.ov.ToggleSearch(Flip, true, hub, rq, ctx)
	if got := s.ov.State(); got != SearchOnly {
		t.Errorf("state = %v, want %v", got, SearchOnly)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 733, 600, 734), image.Rect(0, 734, 600, 800)}, slotRects(&s.stack, LayerSearch)); diff != "" {
		t.Errorf("search slot mismatch (-want +got):\n%s", diff)
	}
	if got, want := anchor.Rect(), image.Rect(0, 68, 600, 733); got != want {
		t.Errorf("anchor with search = %v, want %v", got, want)
	}
	wantReqs := []RenderRequest{
		NewRequest(anchor.ID(), image.Rect(0, 68, 600, 733), Partial),
		ExposeRequest(image.Rect(0, 733, 600, 800), GUI),
	}
	if diff := cmp.Diff(wantReqs, rq.Drain()); diff != "" {
		t.Errorf("render queue mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Event{Focus{Target: TagWorksSearchInput}}, hub.Drain()); diff != "" {
		t.Errorf("emitted events mismatch (-want +got):\n%s", diff)
	}

	s.ov.SetFocus(TagWorksSearchInput, hub, rq, ctx)
	if got := s.ov.State(); got != SearchWithKeyboard {
		t.Errorf("state = %v, want %v", got, SearchWithKeyboard)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 396, 600, 397), image.Rect(0, 397, 600, 733)}, slotRects(&s.stack, LayerKeyboard)); diff != "" {
		t.Errorf("keyboard slot mismatch (-want +got):\n%s", diff)
	}
	if got, want := anchor.Rect(), image.Rect(0, 68, 600, 396); got != want {
		t.Errorf("anchor with keyboard = %v, want %v", got, want)
	}
	if got, want := ctx.KeyboardRect, image.Rect(0, 397, 600, 733); got != want {
		t.Errorf("KeyboardRect = %v, want %v", got, want)
	}
	wantReqs = []RenderRequest{
		NewRequest(anchor.ID(), image.Rect(0, 68, 600, 396), Partial),
		ExposeRequest(image.Rect(0, 396, 600, 733), GUI),
	}
	if diff := cmp.Diff(wantReqs, rq.Drain()); diff != "" {
		t.Errorf("render queue mismatch (-want +got):\n%s", diff)
	}
	kb, ok := s.ov.Keyboard()
	if !ok || kb.Layout().Name != "English" {
		t.Errorf("keyboard layout = %v, want English", kb.Layout().Name)
	}

	// Closing the keyboard leaves the search bar where it was.
	s.ov.ToggleKeyboard(ForceClose, true, NoTag, hub, rq, ctx)
	if got := s.ov.State(); got != SearchOnly {
		t.Errorf("state = %v, want %v", got, SearchOnly)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 733, 600, 734), image.Rect(0, 734, 600, 800)}, slotRects(&s.stack, LayerSearch)); diff != "" {
		t.Errorf("search slot moved (-want +got):\n%s", diff)
	}
	if got, want := anchor.Rect(), image.Rect(0, 68, 600, 733); got != want {
		t.Errorf("anchor = %v, want %v", got, want)
	}
	if !ctx.KeyboardRect.Empty() {
		t.Errorf("KeyboardRect = %v after closing", ctx.KeyboardRect)
	}
	if diff := cmp.Diff([]RenderRequest{ExposeRequest(image.Rect(0, 396, 600, 733), GUI)}, rq.Drain()); diff != "" {
		t.Errorf("render queue mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Event{Focus{Target: NoTag}}, hub.Drain()); diff != "" {
		t.Errorf("emitted events mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlayCloseSearchClosesKeyboard(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}
	anchor := s.stack.Anchor()

	s.ov.SetFocus(TagWorksSearchInput, hub, rq, ctx)
	if got := s.ov.State(); got != SearchWithKeyboard {
		t.Fatalf("state = %v, want %v", got, SearchWithKeyboard)
	}
	rq.Drain()
	hub.Drain()

	s.ov.ToggleSearch(ForceClose, true, hub, rq, ctx)
	if got := s.ov.State(); got != Closed {
		t.Errorf("state = %v, want %v", got, Closed)
	}
	if got := s.ov.Focus(); got != NoTag {
		t.Errorf("focus = %v, want none", got)
	}
	if got, want := anchor.Rect(), image.Rect(0, 68, 600, 800); got != want {
		t.Errorf("anchor = %v, want %v", got, want)
	}
	wantReqs := []RenderRequest{
		ExposeRequest(image.Rect(0, 396, 600, 800), GUI),
		NewRequest(anchor.ID(), image.Rect(0, 68, 600, 800), GUI),
	}
	if diff := cmp.Diff(wantReqs, rq.Drain()); diff != "" {
		t.Errorf("render queue mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlayIdempotent(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}

	s.ov.ToggleSearch(ForceClose, true, hub, rq, ctx)
	s.ov.ToggleKeyboard(ForceClose, true, NoTag, hub, rq, ctx)
	if rq.Len() != 0 || hub.Len() != 0 {
		t.Errorf("closing closed overlays queued %d requests and %d events", rq.Len(), hub.Len())
	}

	s.ov.ToggleSearch(ForceOpen, true, hub, rq, ctx)
	children := ids(s.Children())
	rq.Drain()
	hub.Drain()
	s.ov.ToggleSearch(ForceOpen, true, hub, rq, ctx)
	if rq.Len() != 0 || hub.Len() != 0 {
		t.Errorf("opening an open search bar queued %d requests and %d events", rq.Len(), hub.Len())
	}
	if diff := cmp.Diff(children, ids(s.Children())); diff != "" {
		t.Errorf("children changed (-want +got):\n%s", diff)
	}
}

func TestOverlayRoundTrip(t *testing.T) {
	ctx := testContext(t)
	for _, steps := range [][]string{
		{"search"},
		{"keyboard"},
		{"search", "keyboard"},
	} {
		s := newTestScreen(ctx)
		hub := NewHub()
		rq := &RenderQueue{}
		before := ids(s.Children())
		anchor := s.stack.Anchor().Rect()

		for _, step := range steps {
			switch step {
			case "search":
				s.ov.ToggleSearch(Flip, true, hub, rq, ctx)
			case "keyboard":
				s.ov.ToggleKeyboard(Flip, true, NoTag, hub, rq, ctx)
			}
		}
		for i := len(steps) - 1; i >= 0; i-- {
			switch steps[i] {
			case "search":
				s.ov.ToggleSearch(Flip, true, hub, rq, ctx)
			case "keyboard":
				s.ov.ToggleKeyboard(Flip, true, NoTag, hub, rq, ctx)
			}
		}
		// A keyboard for the search input brings the search bar along.
		if s.ov.State() == SearchOnly {
			s.ov.ToggleSearch(ForceClose, true, hub, rq, ctx)
		}

		if got := s.ov.State(); got != Closed {
			t.Errorf("%v: state = %v, want %v", steps, got, Closed)
		}
		if diff := cmp.Diff(before, ids(s.Children())); diff != "" {
			t.Errorf("%v: children mismatch (-want +got):\n%s", steps, diff)
		}
		if got := s.stack.Anchor().Rect(); got != anchor {
			t.Errorf("%v: anchor = %v, want %v", steps, got, anchor)
		}
	}
}

func TestOverlayBandsTile(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}
	s.ov.SetFocus(TagWorksSearchInput, hub, rq, ctx)

	check := func(area image.Rectangle) {
		t.Helper()
		a := s.stack.Anchor().Rect()
		kb := slotRects(&s.stack, LayerKeyboard)
		sb := slotRects(&s.stack, LayerSearch)
		if a.Max.Y != kb[0].Min.Y || kb[1].Max.Y != sb[0].Min.Y || sb[1].Max.Y != area.Max.Y {
			t.Errorf("bands do not tile %v: anchor %v keyboard %v search %v", area, a, kb, sb)
		}
		if got := a.Dy() + kb[0].Dy() + kb[1].Dy() + sb[0].Dy() + sb[1].Dy(); got != area.Dy() {
			t.Errorf("heights add up to %d, want %d", got, area.Dy())
		}
	}
	check(s.ov.Area())

	// Landscape.
	area := image.Rect(0, 68, 800, 600)
	s.ov.Layout(area, 68, hub, rq, ctx)
	check(area)
	if got, want := ctx.KeyboardRect, image.Rect(0, 197, 800, 533); got != want {
		t.Errorf("KeyboardRect = %v, want %v", got, want)
	}
	if got := s.ov.State(); got != SearchWithKeyboard {
		t.Errorf("state = %v after layout, want %v", got, SearchWithKeyboard)
	}
}

func TestOverlayKeyboardOnlyForPageInput(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}

	s.ov.SetFocus(TagGoToPageInput, hub, rq, ctx)
	if got := s.ov.State(); got != KeyboardOnly {
		t.Fatalf("state = %v, want %v", got, KeyboardOnly)
	}
	kb, _ := s.ov.Keyboard()
	if got := kb.Layout().Name; got != config.NumericLayout {
		t.Errorf("layout = %q, want %q", got, config.NumericLayout)
	}
	if got, want := s.stack.Anchor().Rect(), image.Rect(0, 68, 600, 463); got != want {
		t.Errorf("anchor = %v, want %v", got, want)
	}

	// Moving the focus to the search input switches layouts in place and
	// brings up the search bar under the keyboard.
	s.ov.SetFocus(TagWorksSearchInput, hub, rq, ctx)
	if got := kb.Layout().Name; got != "English" {
		t.Errorf("layout = %q, want English", got)
	}
	if got := s.ov.Focus(); got != TagWorksSearchInput {
		t.Errorf("focus = %v, want %v", got, TagWorksSearchInput)
	}
	if got := s.ov.State(); got != SearchWithKeyboard {
		t.Errorf("state = %v, want %v", got, SearchWithKeyboard)
	}
	if k, _ := s.ov.Keyboard(); k != kb {
		t.Errorf("keyboard replaced instead of moved")
	}
	checkSearchUnderKeyboard(t, s, ctx)
	sb, _ := s.ov.SearchBar()
	if !sb.Input().Focused() {
		t.Errorf("search input not focused")
	}
}

// checkSearchUnderKeyboard checks the portrait layout with both overlays
// open.
func checkSearchUnderKeyboard(t *testing.T, s *testScreen, ctx *Context) {
	t.Helper()
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 733, 600, 734), image.Rect(0, 734, 600, 800)}, slotRects(&s.stack, LayerSearch)); diff != "" {
		t.Errorf("search slot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 396, 600, 397), image.Rect(0, 397, 600, 733)}, slotRects(&s.stack, LayerKeyboard)); diff != "" {
		t.Errorf("keyboard slot mismatch (-want +got):\n%s", diff)
	}
	if got, want := s.stack.Anchor().Rect(), image.Rect(0, 68, 600, 396); got != want {
		t.Errorf("anchor = %v, want %v", got, want)
	}
	if got, want := ctx.KeyboardRect, image.Rect(0, 397, 600, 733); got != want {
		t.Errorf("KeyboardRect = %v, want %v", got, want)
	}
}

func TestOverlaySearchUnderOpenKeyboard(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}
	s.ov.SetFocus(TagGoToPageInput, hub, rq, ctx)
	rq.Drain()
	hub.Drain()

	s.ov.ToggleSearch(ForceOpen, true, hub, rq, ctx)
	if got := s.ov.State(); got != SearchWithKeyboard {
		t.Fatalf("state = %v, want %v", got, SearchWithKeyboard)
	}
	checkSearchUnderKeyboard(t, s, ctx)
	want := []RenderRequest{
		NewRequest(s.stack.Anchor().ID(), image.Rect(0, 68, 600, 396), Partial),
		ExposeRequest(image.Rect(0, 396, 600, 800), GUI),
	}
	if diff := cmp.Diff(want, rq.Drain()); diff != "" {
		t.Errorf("render queue mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Event{Focus{Target: TagWorksSearchInput}}, hub.Drain()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlaySetQuery(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	hub := NewHub()
	rq := &RenderQueue{}

	s.ov.SetQuery("'a austen", rq)
	s.ov.ToggleSearch(ForceOpen, true, hub, rq, ctx)
	sb, ok := s.ov.SearchBar()
	if !ok {
		t.Fatal("no search bar")
	}
	if got := sb.Input().Text(); got != "'a austen" {
		t.Errorf("input text = %q, want the query", got)
	}
	if hub.Len() != 0 {
		t.Errorf("opening with a query moved the focus: %v", hub.Pending())
	}

	s.ov.ToggleSearch(ForceClose, true, hub, rq, ctx)
	if got := s.ov.Query(); got != "" {
		t.Errorf("query = %q after closing, want empty", got)
	}
}

func TestOverlayFocusCascade(t *testing.T) {
	ctx := testContext(t)
	s := newTestScreen(ctx)
	d := &Dispatcher{Root: s, Hub: NewHub(), Queue: &RenderQueue{}, Ctx: ctx}

	if got := d.Handle(Toggle{Tag: TagSearchBar}); got != 2 {
		t.Errorf("Handle(Toggle) handled %d events, want 2", got)
	}
	if got := s.ov.State(); got != SearchWithKeyboard {
		t.Fatalf("state = %v, want %v", got, SearchWithKeyboard)
	}
	sb, _ := s.ov.SearchBar()
	if !sb.Input().Focused() {
		t.Errorf("search input is not focused")
	}

	kb, _ := s.ov.Keyboard()
	for _, key := range [][2]int{{0, 0}, {1, 0}} {
		d.Handle(Tap{Point: center(kb.Key(key[0], key[1]))})
	}
	if got := sb.Input().Text(); got != "qa" {
		t.Errorf("input text = %q, want %q", got, "qa")
	}

	// The hide key sits at the start of the last row.
	d.Handle(Tap{Point: center(kb.Key(3, 0))})
	if got := s.ov.State(); got != SearchOnly {
		t.Errorf("state = %v after hide, want %v", got, SearchOnly)
	}
	if sb.Input().Focused() {
		t.Errorf("search input still focused after hide")
	}
	if got := sb.Input().Text(); got != "qa" {
		t.Errorf("input text = %q after hide, want %q", got, "qa")
	}
}
