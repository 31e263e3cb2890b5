// Package works implements the listing screen: a paged shelf of catalog
// entries that can be sorted and narrowed down with a search.
package works

import (
	"image"
	"strconv"

	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/internal/ui"
	"github.com/rjkroege/inkshelf/view"
)

const placeholder = "Title, author, year"

// Works lists the entries of one location. The shelf is the anchor of the
// search overlays.
type Works struct {
	view.Base
	stack view.Stack
	ov    *view.Overlay

	title    string
	location string
	all      []catalog.Entry
	filter   *catalog.Query
	sort     catalog.SortMethod
	reverse  bool
}

// New returns a listing of entries filling r and queues its first paint.
func New(r image.Rectangle, title, location string, entries []catalog.Entry, rq *view.RenderQueue, ctx *view.Context) *Works {
	w := &Works{
		Base:     view.NewBase(view.TagWorks, r),
		title:    title,
		location: location,
		all:      entries,
		sort:     catalog.SortAdded,
		reverse:  catalog.SortAdded.ReverseOrder(),
	}
	top := r.Min.Y + ctx.Metrics().TopBarHeight()
	w.stack.Set(view.LayerTopBar, view.NewTopBar(image.Rect(r.Min.X, r.Min.Y, r.Max.X, top),
		"search", view.Toggle{Tag: view.TagSearchBar}, w.sort.Title(), view.ToggleNear{Tag: view.TagSortMenu}, ctx))
	w.stack.Set(view.LayerShelf, view.NewShelf(image.Rect(r.Min.X, top, r.Max.X, r.Max.Y), ctx))
	w.ov = view.NewOverlay(&w.stack, view.TagWorksSearchInput, placeholder, image.Rect(r.Min.X, top, r.Max.X, r.Max.Y))
	w.refresh(&view.RenderQueue{}, ctx)

	rq.Add(view.NewRequest(w.ID(), r, view.Full))
	return w
}

func (w *Works) Children() []view.View { return w.stack.Children() }

func (w *Works) AppendChild(v view.View) { w.stack.Push(view.LayerFloating, v) }

func (w *Works) RemoveChild(i int) view.View { return w.stack.RemoveAt(i) }

// Title returns the name of the listed location.
func (w *Works) Title() string { return w.title }

// Location returns the listed location.
func (w *Works) Location() string { return w.location }

// Overlay returns the search overlay of the screen.
func (w *Works) Overlay() *view.Overlay { return w.ov }

// Shelf returns the listing.
func (w *Works) Shelf() *view.Shelf {
	return w.stack.Anchor().(*view.Shelf)
}

// SortMethod returns the order of the listing.
func (w *Works) SortMethod() (catalog.SortMethod, bool) { return w.sort, w.reverse }

func (w *Works) topBar() *view.TopBar {
	return w.stack.Slot(view.LayerTopBar)[0].(*view.TopBar)
}

// refresh lists the entries passing the filter in the current order.
func (w *Works) refresh(rq *view.RenderQueue, ctx *view.Context) {
	es := append([]catalog.Entry(nil), w.all...)
	if w.filter != nil {
		es = w.filter.Filter(es)
	}
	catalog.Sort(es, w.sort, w.reverse)
	w.Shelf().SetEntries(es, rq, ctx)
}

func (w *Works) updateTopBar(rq *view.RenderQueue) {
	name := "search"
	if w.ov.State() == view.SearchOnly || w.ov.State() == view.SearchWithKeyboard {
		name = "back"
	}
	tb := w.topBar()
	tb.SetRootIcon(name, rq)
	tb.SetTitle(w.sort.Title(), rq)
}

func (w *Works) goToPage(n int, rq *view.RenderQueue, ctx *view.Context) {
	w.Shelf().SetPage(n, rq, ctx)
}

func (w *Works) goToNeighbor(dir view.CycleDir, rq *view.RenderQueue, ctx *view.Context) {
	s := w.Shelf()
	switch dir {
	case view.Next:
		s.SetPage(s.Page()+1, rq, ctx)
	case view.Previous:
		s.SetPage(s.Page()-1, rq, ctx)
	}
}

// toggleSearch flips the search bar and resets the listing when it closes.
func (w *Works) toggleSearch(want view.Want, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	before := w.ov.State()
	w.ov.ToggleSearch(want, true, hub, rq, ctx)
	if w.ov.State() == before {
		return
	}
	if _, ok := w.ov.SearchBar(); !ok && w.filter != nil {
		w.filter = nil
		w.refresh(rq, ctx)
	}
	w.updateTopBar(rq)
}

func (w *Works) toggleGoToPage(want view.Want, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	if i, ok := view.LocateByTag(w, view.TagGoToPage); ok {
		if want == view.ForceOpen {
			return
		}
		rq.Add(view.ExposeRequest(w.RemoveChild(i).Rect(), view.GUI))
		if w.ov.Focus() == view.TagGoToPageInput {
			w.ov.ToggleKeyboard(view.ForceClose, true, view.NoTag, hub, rq, ctx)
		}
		return
	}
	if want == view.ForceClose || w.Shelf().Pages() < 2 {
		return
	}
	m := ctx.Metrics()
	r := w.Rect()
	bottom := r.Max.Y - m.KeyboardBand()
	if _, ok := w.ov.SearchBar(); ok {
		bottom -= m.SearchBand()
	}
	h := 2 * m.SmallBar()
	top := max(bottom-h-m.BigBar()/2, r.Min.Y)
	box := view.NewNamedInput(image.Rect(r.Min.X+r.Dx()/6, top, r.Max.X-r.Dx()/6, top+h),
		view.TagGoToPage, "Go to page", view.TagGoToPageInput)
	rq.Add(view.NewRequest(box.ID(), box.Rect(), view.GUI))
	w.AppendChild(box)
	hub.Send(view.Focus{Target: view.TagGoToPageInput})
}

func (w *Works) toggleSortMenu(rect image.Rectangle, want view.Want, rq *view.RenderQueue, ctx *view.Context) {
	if i, ok := view.LocateByTag(w, view.TagSortMenu); ok {
		if want == view.ForceOpen {
			return
		}
		rq.Add(view.ExposeRequest(view.Overlapping(w.RemoveChild(i)), view.GUI))
		return
	}
	if want == view.ForceClose {
		return
	}
	var entries []view.MenuEntry
	for _, m := range catalog.SortMethods {
		entries = append(entries, view.Radio(m.Title(), view.EntryID{Action: view.Sort, Arg: int(m)}, m == w.sort))
	}
	entries = append(entries, view.Separator(),
		view.CheckBox("Reverse Order", view.EntryID{Action: view.ReverseOrder}, w.reverse))
	menu := view.NewMenu(rect, view.TagSortMenu, entries, ctx)
	rq.Add(view.NewRequest(menu.ID(), menu.Rect(), view.GUI))
	w.AppendChild(menu)
}

func (w *Works) toggleEntryMenu(id string, rect image.Rectangle, rq *view.RenderQueue, ctx *view.Context) {
	if i, ok := view.LocateByTag(w, view.TagEntryMenu); ok {
		rq.Add(view.ExposeRequest(view.Overlapping(w.RemoveChild(i)), view.GUI))
		return
	}
	e, ok := w.Shelf().Lookup(id)
	if !ok {
		return
	}
	entries := []view.MenuEntry{
		view.Message(e.Title),
		view.Separator(),
		view.Command("Search Author", view.EntryID{Action: view.SearchAuthor, Text: e.Author}),
		view.Command("Mark For Later", view.EntryID{Action: view.MarkForLater, Text: e.ID}),
	}
	menu := view.NewMenu(rect, view.TagEntryMenu, entries, ctx)
	rq.Add(view.NewRequest(menu.ID(), menu.Rect(), view.GUI))
	w.AppendChild(menu)
}

// submit filters the listing by a valid query and keeps the search bar
// showing it.
func (w *Works) submit(text string, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	q, ok := catalog.ParseQuery(text)
	if !ok {
		view.ShowNotification(w, view.TagInvalidSearchQueryNotif, "Invalid search query.", hub, rq, ctx)
		return
	}
	ctx.RecordInput(view.TagWorksSearchInput, text)
	w.filter = &q
	w.ov.SetQuery(text, rq)
	w.ov.ToggleKeyboard(view.ForceClose, false, view.NoTag, hub, rq, ctx)
	w.requestSearchBar(rq)
	w.refresh(rq, ctx)
}

// requestSearchBar queues the search bar and its separator.
func (w *Works) requestSearchBar(rq *view.RenderQueue) {
	for _, v := range w.stack.Slot(view.LayerSearch) {
		rq.Add(view.NewRequest(v.ID(), v.Rect(), view.GUI))
	}
}

// searchAuthor lists the works of author with the query in the search bar.
func (w *Works) searchAuthor(author string, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	text := "'a " + author
	q, ok := catalog.ParseQuery(text)
	if !ok {
		return
	}
	w.filter = &q
	w.ov.SetQuery(text, rq)
	w.ov.ToggleSearch(view.ForceOpen, false, hub, rq, ctx)
	w.ov.ToggleKeyboard(view.ForceClose, false, view.NoTag, hub, rq, ctx)
	w.requestSearchBar(rq)
	w.refresh(rq, ctx)
	w.updateTopBar(rq)
}

// goToPageInput interprets the text of the page box: "(" and ")" are the
// first and last pages, "_" a random page, and a number a one based page.
func (w *Works) goToPageInput(text string, rq *view.RenderQueue, ctx *view.Context) {
	pages := w.Shelf().Pages()
	switch text {
	case "(":
		w.goToPage(0, rq, ctx)
	case ")":
		w.goToPage(pages-1, rq, ctx)
	case "_":
		w.goToPage(ctx.Rand.Intn(pages), rq, ctx)
	default:
		if n, err := strconv.Atoi(text); err == nil {
			w.goToPage(max(n, 1)-1, rq, ctx)
		}
	}
}

func (w *Works) HandleEvent(evt view.Event, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) bool {
	switch e := evt.(type) {
	case view.Swipe:
		switch e.Dir {
		case ui.West:
			w.goToNeighbor(view.Next, rq, ctx)
		case ui.East:
			w.goToNeighbor(view.Previous, rq, ctx)
		}
		return true
	case view.Arrow:
		switch e.Dir {
		case ui.West:
			w.goToPage(0, rq, ctx)
		case ui.East:
			w.goToPage(w.Shelf().Pages()-1, rq, ctx)
		case ui.South:
			w.toggleSearch(view.Flip, hub, rq, ctx)
		case ui.North:
			w.toggleGoToPage(view.Flip, hub, rq, ctx)
		}
		return true
	case view.Page:
		w.goToNeighbor(e.Dir, rq, ctx)
		return true
	case view.GoTo:
		w.goToPage(e.Page, rq, ctx)
		return true
	case view.Button:
		if !e.Pressed {
			return false
		}
		dir, ok := pageDir(e.Code, ctx.Settings.ButtonScheme)
		if !ok {
			return false
		}
		w.goToNeighbor(dir, rq, ctx)
		return true
	case view.Toggle, view.Open, view.Close:
		tag, want, _ := view.WantFor(e)
		switch tag {
		case view.TagSearchBar:
			w.toggleSearch(want, hub, rq, ctx)
			return true
		case view.TagGoToPage:
			w.toggleGoToPage(want, hub, rq, ctx)
			return true
		case view.TagSortMenu:
			w.toggleSortMenu(image.Rectangle{}, want, rq, ctx)
			return true
		case view.TagEntryMenu:
			if want == view.ForceClose {
				view.CloseFloating(w, view.TagEntryMenu, rq)
				return true
			}
		}
	case view.ToggleNear:
		if e.Tag == view.TagSortMenu {
			w.toggleSortMenu(e.Rect, view.Flip, rq, ctx)
			return true
		}
	case view.ToggleEntryMenu:
		w.toggleEntryMenu(e.EntryID, e.Rect, rq, ctx)
		return true
	case view.Select:
		switch e.Entry.Action {
		case view.Sort:
			w.sort = catalog.SortMethod(e.Entry.Arg)
			w.reverse = w.sort.ReverseOrder()
			w.refresh(rq, ctx)
			w.updateTopBar(rq)
			return true
		case view.ReverseOrder:
			w.reverse = !w.reverse
			w.refresh(rq, ctx)
			return true
		case view.SearchAuthor:
			w.searchAuthor(e.Entry.Text, hub, rq, ctx)
			return true
		case view.MarkForLater:
			if entry, ok := w.Shelf().Lookup(e.Entry.Text); ok {
				hub.Send(view.MarkEntry{Entry: entry})
			}
			return true
		}
	case view.Submit:
		switch e.Tag {
		case view.TagWorksSearchInput:
			w.submit(e.Text, hub, rq, ctx)
			return true
		case view.TagGoToPageInput:
			// Pages are counted once the keyboard is gone.
			w.toggleGoToPage(view.ForceClose, hub, rq, ctx)
			w.goToPageInput(e.Text, rq, ctx)
			return true
		}
	case view.Focus:
		// Another input taking the keyboard retires the page box.
		if e.Target != view.NoTag && e.Target != view.TagGoToPageInput {
			if i, ok := view.LocateByTag(w, view.TagGoToPage); ok {
				rq.Add(view.ExposeRequest(w.RemoveChild(i).Rect(), view.GUI))
			}
		}
	case view.Reseed:
		tb := w.topBar()
		tb.UpdateClock(rq, ctx)
		tb.UpdateBattery(rq, ctx)
		rq.Add(view.NewRequest(w.ID(), w.Rect(), view.GUI))
		return true
	case view.ClockTick:
		w.topBar().UpdateClock(rq, ctx)
		return true
	case view.BatteryTick:
		w.topBar().UpdateBattery(rq, ctx)
		return true
	}
	return view.HandleScreen(w, w.ov, evt, hub, rq, ctx)
}

// pageDir maps a page turn button to a direction under scheme.
func pageDir(code view.ButtonCode, scheme config.ButtonScheme) (view.CycleDir, bool) {
	var dir view.CycleDir
	switch code {
	case view.ButtonForward:
		dir = view.Next
	case view.ButtonBackward:
		dir = view.Previous
	default:
		return 0, false
	}
	if scheme == config.Inverted {
		dir = 1 - dir
	}
	return dir, true
}

// Resize lays the screen out again in r. Menus and the page box are
// dropped; notifications and the search overlays are kept.
func (w *Works) Resize(r image.Rectangle, hub *view.Hub, rq *view.RenderQueue, ctx *view.Context) {
	w.SetRect(r)
	top := r.Min.Y + ctx.Metrics().TopBarHeight()
	view.CloseMenus(w, &view.RenderQueue{})
	if i, ok := view.LocateByTag(w, view.TagGoToPage); ok {
		w.RemoveChild(i)
		if w.ov.Focus() == view.TagGoToPageInput {
			w.ov.ToggleKeyboard(view.ForceClose, false, view.NoTag, hub, rq, ctx)
		}
	}
	w.topBar().Resize(image.Rect(r.Min.X, r.Min.Y, r.Max.X, top), hub, rq, ctx)
	w.ov.Layout(image.Rect(r.Min.X, top, r.Max.X, r.Max.Y), top, hub, rq, ctx)
	for _, v := range w.stack.Slot(view.LayerFloating) {
		v.Resize(r, hub, rq, ctx)
	}
	rq.Add(view.NewRequest(w.ID(), r, view.Full))
}
