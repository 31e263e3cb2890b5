package view

import (
	"image"
	"testing"
	"time"

	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/device"
)

// testContext returns a context for a 167dpi 600x800 device with a fixed
// clock and no notification timers.
func testContext(t *testing.T) *Context {
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
	ctx := NewContext(p, s, ls)
	ctx.Now = func() time.Time { return time.Date(2024, time.March, 9, 10, 30, 0, 0, time.UTC) }
	return ctx
}

// testScreen is a minimal container: a background, a top bar strip and a
// shelf anchor, with the overlays cut from the bottom of the screen.
type testScreen struct {
	Base
	stack Stack
	ov    *Overlay
}

func newTestScreen(ctx *Context) *testScreen {
	r := ctx.Screen()
	top := r.Min.Y + ctx.Metrics().TopBarHeight()
	s := &testScreen{Base: NewBase(TagWorks, r)}
	s.stack.Set(LayerTopBar, NewFiller(image.Rect(r.Min.X, r.Min.Y, r.Max.X, top), InkBackground))
	s.stack.Set(LayerShelf, NewShelf(image.Rect(r.Min.X, top, r.Max.X, r.Max.Y), ctx))
	s.ov = NewOverlay(&s.stack, TagWorksSearchInput, "search", image.Rect(r.Min.X, top, r.Max.X, r.Max.Y))
	return s
}

func (s *testScreen) Children() []View      { return s.stack.Children() }
func (s *testScreen) AppendChild(v View)     { s.stack.Push(LayerFloating, v) }
func (s *testScreen) RemoveChild(i int) View { return s.stack.RemoveAt(i) }

func (s *testScreen) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	return HandleScreen(s, s.ov, evt, hub, rq, ctx)
}

// recorder claims the events accepted by claim and remembers every event
// offered to it.
type recorder struct {
	Base
	name  string
	log   *[]string
	claim func(Event) bool
	kids  []View
}

func (r *recorder) Children() []View { return r.kids }

func (r *recorder) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	*r.log = append(*r.log, r.name)
	return r.claim != nil && r.claim(evt)
}
