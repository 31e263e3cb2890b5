// Package home implements the home screen: the saved searches of the
// reader and a search bar over the whole catalog.
package home

import (
	"image"

	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/view"
)

const placeholder = "Title, author, year"

// Home is the first screen shown. Its anchor is the empty space below the
// favorites, which the search overlays shrink.
type Home struct {
	view.Base
	stack view.Stack
	ov    *view.Overlay
}

// New returns a home screen filling r and queues its first paint.
func New(r image.Rectangle, rq *view.RenderQueue, ctx *view.Context) *Home {
	h := &Home{Base: view.NewBase(view.TagHome, r)}
	m := ctx.Metrics()
	top := r.Min.Y + m.TopBarHeight()
	limit := r.Max.Y - m.BottomBarHeight()

	h.stack.Set(view.LayerBackground, view.NewFiller(r, view.InkBackground))
	h.stack.Set(view.LayerTopBar, view.NewTopBar(image.Rect(r.Min.X, r.Min.Y, r.Max.X, top),
		"search", view.Toggle{Tag: view.TagSearchBar}, "Favorite Tags", nil, ctx))
	y := h.layoutFaves(top, limit, ctx)
	h.stack.Set(view.LayerShelf, view.NewFiller(image.Rect(r.Min.X, y, r.Max.X, limit), view.InkBackground))
	h.stack.Set(view.LayerBottomBar, h.bottomChrome(r, ctx)...)
	h.ov = view.NewOverlay(&h.stack, view.TagHomeSearchInput, placeholder, image.Rect(r.Min.X, top, r.Max.X, limit))

	rq.Add(view.NewRequest(h.ID(), r, view.Full))
	return h
}

// layoutFaves fills the content slot with as many favorite rows as fit
// between top and limit and returns the bottom of the last one.
func (h *Home) layoutFaves(top, limit int, ctx *view.Context) int {
	r := h.Rect()
	row := ctx.Metrics().FaveRow()
	var faves []view.View
	add := func(name, location string) bool {
		if top+row > limit {
			return false
		}
		faves = append(faves, view.NewFave(image.Rect(r.Min.X, top, r.Max.X, top+row), name, location))
		top += row
		return true
	}
	if ctx.Settings.LoggedIn {
		add("Marked For Later", catalog.MarkedForLater)
	}
	for _, f := range ctx.Settings.Faves {
		if !add(f.Name, f.Location) {
			break
		}
	}
	h.stack.Set(view.LayerContent, faves...)
	return top
}

func (h *Home) bottomChrome(r image.Rectangle, ctx *view.Context) []view.View {
	m := ctx.Metrics()
	limit := r.Max.Y - m.BottomBarHeight()
	t := max(m.Thickness(), 1)
	return []view.View{
		view.NewSeparator(image.Rect(r.Min.X, limit, r.Max.X, limit+t)),
		view.NewBottomBar(image.Rect(r.Min.X, limit+t, r.Max.X, r.Max.Y),
			"keyboard", view.ToggleNear{Tag: view.TagKeyboardLayoutMenu},
			ctx.Now().Format(ctx.Settings.DateFormat),
			"marked", view.LoadHistory{Title: "Marked For Later", Location: catalog.MarkedForLater}),
	}
}

func (h *Home) Children() []view.View { return h.stack.Children() }

func (h *Home) AppendChild(v view.View) { h.stack.Push(view.LayerFloating, v) }

func (h *Home) RemoveChild(i int) view.View { return h.stack.RemoveAt(i) }

// Overlay returns the search overlay of the screen.
func (h *Home) Overlay() *view.Overlay { return h.ov }

func (h *Home) topBar() *view.TopBar {
	return view.MustChild[*view.TopBar](h, mustIndex(h.stack.Index(view.LayerTopBar)))
}

func (h *Home) bottomBar() *view.BottomBar {
	i := mustIndex(h.stack.Index(view.LayerBottomBar))
	return view.MustChild[*view.BottomBar](h, i+1)
}

func mustIndex(i int, ok bool) int {
	if !ok {
		panic("home: missing chrome")
	}
	return i
}

func (h *Home) updateDate(rq *view.RenderQueue, ctx *view.Context) {
	h.bottomBar().Label().SetText(ctx.Now().Format(ctx.Settings.DateFormat), rq)
}

func (h *Home) HandleEvent(evt view.Event, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) bool {
	switch e := evt.(type) {
	case view.Submit:
		if e.Tag != view.TagHomeSearchInput {
			return false
		}
		h.submit(e.Text, hub, rq, ctx)
		return true
	case view.Reseed:
		tb := h.topBar()
		tb.UpdateClock(rq, ctx)
		tb.UpdateBattery(rq, ctx)
		h.updateDate(rq, ctx)
		rq.Add(view.NewRequest(h.ID(), h.Rect(), view.GUI))
		return true
	case view.ClockTick:
		h.topBar().UpdateClock(rq, ctx)
		h.updateDate(rq, ctx)
		return true
	case view.BatteryTick:
		h.topBar().UpdateBattery(rq, ctx)
		return true
	}
	return view.HandleScreen(h, h.ov, evt, hub, rq, ctx)
}

// submit starts a catalog search for a valid query, tearing down the
// search overlays, and complains about an invalid one.
func (h *Home) submit(text string, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	q, ok := catalog.ParseQuery(text)
	if !ok {
		view.ShowNotification(h, view.TagInvalidSearchQueryNotif, "Invalid search query.", hub, rq, ctx)
		return
	}
	ctx.RecordInput(view.TagHomeSearchInput, text)
	h.ov.ToggleKeyboard(view.ForceClose, false, view.NoTag, hub, rq, ctx)
	h.ov.ToggleSearch(view.ForceClose, false, hub, rq, ctx)
	rq.Add(view.NewRequest(h.ID(), h.Rect(), view.GUI))
	hub.Send(view.LoadSearch{Query: q.String()})
}

// Resize lays the screen out again in r. Menus are dropped; notifications
// and open overlays are kept.
func (h *Home) Resize(r image.Rectangle, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	h.SetRect(r)
	m := ctx.Metrics()
	top := r.Min.Y + m.TopBarHeight()
	limit := r.Max.Y - m.BottomBarHeight()

	view.CloseMenus(h, &view.RenderQueue{})
	for _, v := range h.stack.Slot(view.LayerBackground) {
		v.Resize(r, hub, rq, ctx)
	}
	h.topBar().Resize(image.Rect(r.Min.X, r.Min.Y, r.Max.X, top), hub, rq, ctx)
	y := h.layoutFaves(top, limit, ctx)
	h.stack.Set(view.LayerBottomBar, h.bottomChrome(r, ctx)...)
	h.ov.Layout(image.Rect(r.Min.X, top, r.Max.X, limit), y, hub, rq, ctx)
	for _, v := range h.stack.Slot(view.LayerFloating) {
		v.Resize(r, hub, rq, ctx)
	}
	rq.Add(view.NewRequest(h.ID(), r, view.Full))
}
