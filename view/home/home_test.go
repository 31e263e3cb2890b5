package home

import (
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/device"
	"github.com/rjkroege/inkshelf/view"
)

func newContext(t *testing.T) *view.Context {
	t.Helper()
	p, err := device.Builtin().Lookup("kobo-touch")
	if err != nil {
		t.Fatal(err)
	}
	ls, err := config.BuiltinLayouts()
	if err != nil {
		t.Fatal(err)
	}
	s := config.Default()
	s.NotificationDelay = 0
	s.LoggedIn = true
	s.Faves = []config.Fave{
		{Name: "Fiction", Location: "tag:fiction"},
		{Name: "Poetry", Location: "tag:poetry"},
		{Name: "Essays", Location: "tag:essays"},
	}
	ctx := view.NewContext(p, s, ls)
	ctx.Now = func() time.Time { return time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC) }
	return ctx
}

// newHome returns a home screen and a dispatcher collecting the events
// the screen leaves to the application.
func newHome(t *testing.T) (*Home, *view.Dispatcher, *[]view.Event) {
	ctx := newContext(t)
	rq := &view.RenderQueue{}
	h := New(ctx.Screen(), rq, ctx)
	if diff := cmp.Diff([]view.RenderRequest{view.NewRequest(h.ID(), h.Rect(), view.Full)}, rq.Drain()); diff != "" {
		t.Errorf("first paint mismatch (-want +got):\n%s", diff)
	}
	var app []view.Event
	d := &view.Dispatcher{
		Root:  h,
		Hub:   view.NewHub(),
		Queue: rq,
		Ctx:   ctx,
		Fallback: func(evt view.Event) bool {
			app = append(app, evt)
			return true
		},
	}
	return h, d, &app
}

func TestHomeLayout(t *testing.T) {
	h, _, _ := newHome(t)

	if i, ok := view.Locate[*view.Filler](h); !ok || i != 0 {
		t.Errorf("background at %d, %v, want 0, true", i, ok)
	}
	var names []string
	var rects []image.Rectangle
	for _, c := range h.Children() {
		if f, ok := c.(*view.Fave); ok {
			names = append(names, f.Name)
			rects = append(rects, f.Rect())
		}
	}
	if diff := cmp.Diff([]string{"Marked For Later", "Fiction", "Poetry", "Essays"}, names); diff != "" {
		t.Errorf("faves mismatch (-want +got):\n%s", diff)
	}
	if got, want := rects[0], image.Rect(0, 68, 600, 125); got != want {
		t.Errorf("first fave at %v, want %v", got, want)
	}
	if i, ok := view.RLocate[*view.Fave](h); !ok || i != 5 {
		t.Errorf("last fave at %d, %v, want 5, true", i, ok)
	}
	// The anchor is the space below the last fave.
	if got, want := view.MustChild[*view.Filler](h, 6).Rect(), image.Rect(0, 296, 600, 733); got != want {
		t.Errorf("anchor at %v, want %v", got, want)
	}
	if got := h.bottomBar().Label().Text(); got != "Saturday, March 9, 2024" {
		t.Errorf("date = %q", got)
	}
}

func TestHomeFaveOpensListing(t *testing.T) {
	h, d, app := newHome(t)
	f := view.MustChild[*view.Fave](h, 3)
	r := f.Rect()

	d.Handle(view.Tap{Point: r.Min.Add(r.Size().Div(2))})
	want := []view.Event{view.LoadIndex{Title: "Fiction", Location: "tag:fiction"}}
	if diff := cmp.Diff(want, *app); diff != "" {
		t.Errorf("app events mismatch (-want +got):\n%s", diff)
	}

	*app = nil
	f = view.MustChild[*view.Fave](h, 2)
	r = f.Rect()
	d.Handle(view.Tap{Point: r.Min.Add(r.Size().Div(2))})
	want = []view.Event{view.LoadHistory{Title: "Marked For Later", Location: catalog.MarkedForLater}}
	if diff := cmp.Diff(want, *app); diff != "" {
		t.Errorf("app events mismatch (-want +got):\n%s", diff)
	}
}

func TestHomeSearch(t *testing.T) {
	h, d, app := newHome(t)
	anchor := h.stack.Anchor()

	d.Handle(view.Toggle{Tag: view.TagSearchBar})
	if got := h.Overlay().State(); got != view.SearchWithKeyboard {
		t.Fatalf("state = %v, want %v", got, view.SearchWithKeyboard)
	}
	if got, want := anchor.Rect(), image.Rect(0, 296, 600, 329); got != want {
		t.Errorf("anchor = %v, want %v", got, want)
	}
	sb, _ := h.Overlay().SearchBar()
	if got, want := sb.Rect(), image.Rect(0, 667, 600, 733); got != want {
		t.Errorf("search bar = %v, want %v", got, want)
	}

	// A blank query only complains.
	d.Handle(view.Key{Kind: view.KeyReturn})
	if _, ok := view.FindByTag(h, view.TagInvalidSearchQueryNotif); !ok {
		t.Errorf("no notification for a blank query")
	}
	if len(*app) != 0 {
		t.Errorf("blank query reached the app: %v", *app)
	}

	d.Handle(view.SetInputText{Tag: view.TagHomeSearchInput, Text: " 'a Brontë "})
	d.Handle(view.Key{Kind: view.KeyReturn})
	if diff := cmp.Diff([]view.Event{view.LoadSearch{Query: "'a Brontë"}}, *app); diff != "" {
		t.Errorf("app events mismatch (-want +got):\n%s", diff)
	}
	if got := h.Overlay().State(); got != view.Closed {
		t.Errorf("state after submit = %v, want %v", got, view.Closed)
	}
	if got, want := anchor.Rect(), image.Rect(0, 296, 600, 733); got != want {
		t.Errorf("anchor after submit = %v, want %v", got, want)
	}
}

func TestHomeResize(t *testing.T) {
	h, d, _ := newHome(t)
	d.Handle(view.Toggle{Tag: view.TagSearchBar})
	d.Handle(view.ToggleNear{Tag: view.TagMainMenu, Rect: image.Rect(540, 0, 600, 68)})
	d.Queue.Drain()

	r := image.Rect(0, 0, 800, 600)
	h.Resize(r, d.Hub, d.Queue, d.Ctx)

	if _, ok := view.FindByTag(h, view.TagMainMenu); ok {
		t.Errorf("menu survived the resize")
	}
	if got := h.Overlay().State(); got != view.SearchWithKeyboard {
		t.Errorf("state = %v after resize, want %v", got, view.SearchWithKeyboard)
	}
	if got, want := h.Overlay().Area(), image.Rect(0, 68, 800, 533); got != want {
		t.Errorf("overlay area = %v, want %v", got, want)
	}
	sb, _ := h.Overlay().SearchBar()
	if got := sb.Rect().Max.Y; got != 533 {
		t.Errorf("search bar ends at %d, want 533", got)
	}
	reqs := d.Queue.Drain()
	if last := reqs[len(reqs)-1]; last != view.NewRequest(h.ID(), r, view.Full) {
		t.Errorf("last request = %v, want a full refresh", last)
	}
}
