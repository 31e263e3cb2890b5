// Package app ties the screens of the reader together: it owns the screen
// history, handles the events no screen claims, and drives the display.
package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/view"
	"github.com/rjkroege/inkshelf/view/home"
	"github.com/rjkroege/inkshelf/view/works"
)

// Version is reported by the About entry of the main menu.
const Version = "0.3.0"

// App is the running reader. All of its methods must be called from the
// dispatch goroutine.
type App struct {
	Ctx    *view.Context
	Hub    *view.Hub
	Queue  *view.RenderQueue
	Source catalog.Source
	Store  *catalog.Store

	screens []view.Parent
	disp    *view.Dispatcher
	done    bool
}

// New returns an app showing the home screen. store may be nil, in which
// case entries cannot be marked and inputs are not remembered.
func New(ctx *view.Context, src catalog.Source, store *catalog.Store) *App {
	a := &App{
		Ctx:    ctx,
		Hub:    view.NewHub(),
		Queue:  &view.RenderQueue{},
		Source: src,
		Store:  store,
	}
	if store != nil && ctx.History == nil {
		ctx.History = NewStoreHistory(store, ctx.Settings.InputHistorySize, ctx.Logger)
	}
	root := home.New(ctx.Screen(), a.Queue, ctx)
	a.screens = []view.Parent{root}
	a.disp = &view.Dispatcher{Root: root, Hub: a.Hub, Queue: a.Queue, Ctx: ctx, Fallback: a.fallback}
	return a
}

// Current returns the screen on top of the history.
func (a *App) Current() view.Parent { return a.screens[len(a.screens)-1] }

// Depth returns the number of screens in the history.
func (a *App) Depth() int { return len(a.screens) }

// Done reports whether the user asked to quit.
func (a *App) Done() bool { return a.done }

// Handle dispatches evt and everything it causes.
func (a *App) Handle(evt view.Event) int { return a.disp.Handle(evt) }

// Drain dispatches the events posted to the hub from other goroutines.
func (a *App) Drain() int { return a.disp.Drain() }

func (a *App) push(s view.Parent) {
	view.CloseMenus(a.Current(), a.Queue)
	view.TransferNotifications(a.Current(), s, a.Hub, a.Queue, a.Ctx)
	a.screens = append(a.screens, s)
	a.disp.Root = s
}

// back returns to screen i of the history.
func (a *App) back(i int) {
	if i < 0 || i >= len(a.screens)-1 {
		return
	}
	cur := a.Current()
	a.screens = a.screens[:i+1]
	next := a.Current()
	if r := a.Ctx.Screen(); next.Rect() != r {
		next.Resize(r, a.Hub, a.Queue, a.Ctx)
	}
	view.TransferNotifications(cur, next, a.Hub, a.Queue, a.Ctx)
	a.disp.Root = next
	a.Queue.Add(view.NewRequest(next.ID(), next.Rect(), view.Full))
}

// resize lays the current screen out for the screen rectangle. Screens
// deeper in the history are laid out when they come back.
func (a *App) resize() {
	a.Current().Resize(a.Ctx.Screen(), a.Hub, a.Queue, a.Ctx)
}

func (a *App) notify(format string, args ...any) {
	a.Hub.Send(view.Notify{Text: fmt.Sprintf(format, args...)})
}

func (a *App) fallback(evt view.Event) bool {
	switch e := evt.(type) {
	case view.LoadIndex:
		a.openListing(e.Title, e.Location)
	case view.LoadHistory:
		a.openListing(e.Title, e.Location)
	case view.LoadSearch:
		a.openSearch(e.Query)
	case view.Back:
		a.back(len(a.screens) - 2)
	case view.MarkEntry:
		a.mark(e.Entry)
	case view.QuitApp:
		a.done = true
	case view.Select:
		return a.choose(e.Entry)
	default:
		return false
	}
	return true
}

func (a *App) openListing(title, location string) {
	if a.Source == nil {
		a.notify("No catalog.")
		return
	}
	es, err := a.Source.Entries(context.Background(), location)
	if err != nil {
		a.Ctx.Logger.Error("opening listing", "location", location, "err", err)
		a.notify("Can't open %s.", title)
		return
	}
	a.push(works.New(a.Ctx.Screen(), title, location, es, a.Queue, a.Ctx))
}

func (a *App) openSearch(text string) {
	q, ok := catalog.ParseQuery(text)
	if !ok || a.Source == nil {
		return
	}
	es, err := catalog.Search(context.Background(), a.Source, q)
	if err != nil {
		a.Ctx.Logger.Error("searching catalog", "query", text, "err", err)
		a.notify("Search failed.")
		return
	}
	a.Ctx.Logger.Debug("search", "query", text, "matches", len(es))
	a.push(works.New(a.Ctx.Screen(), q.String(), "search:"+q.String(), es, a.Queue, a.Ctx))
}

func (a *App) mark(e catalog.Entry) {
	if a.Store == nil {
		a.notify("Can't save entries.")
		return
	}
	if err := a.Store.Append(catalog.MarkedForLater, e); err != nil {
		a.Ctx.Logger.Error("marking entry", "id", e.ID, "err", err)
		a.notify("Can't save %s.", e.Title)
		return
	}
	a.notify("Added to Marked For Later.")
}

// choose carries out the menu entries that concern the whole application.
func (a *App) choose(id view.EntryID) bool {
	s := &a.Ctx.Settings
	switch id.Action {
	case view.About:
		a.notify("inkshelf %s", Version)
	case view.SystemInfo:
		d := a.Ctx.Device
		a.notify("%s, %d dpi, %dx%d, %s", d.Name, d.DPI, d.Width, d.Height, runtime.Version())
	case view.ToggleInverted:
		s.Inverted = !s.Inverted
		cur := a.Current()
		a.Queue.Add(view.NewRequest(cur.ID(), cur.Rect(), view.Full))
	case view.Rotate:
		if id.Arg == s.Rotation {
			return true
		}
		s.Rotation = id.Arg
		a.resize()
	case view.SetButtonScheme:
		s.ButtonScheme = config.ButtonScheme(id.Text)
	case view.TakeScreenshot:
		path, err := WriteSnapshot(a.Current(), s.ScreenshotDir, a.Ctx.Now())
		if err != nil {
			a.Ctx.Logger.Error("taking screenshot", "err", err)
			a.notify("Can't take screenshot.")
			return true
		}
		a.notify("Saved %s.", path)
	case view.GoHome:
		a.back(0)
	case view.Quit:
		a.done = true
	default:
		return false
	}
	return true
}

// Fit adapts the device to a w by h window and lays the current screen out
// again.
func (a *App) Fit(w, h int) {
	if a.Ctx.Settings.Rotation%2 != 0 {
		w, h = h, w
	}
	if w == a.Ctx.Device.Width && h == a.Ctx.Device.Height {
		return
	}
	a.Ctx.Device.Width, a.Ctx.Device.Height = w, h
	a.resize()
}

// Reload replaces the settings by the file at path. A broken file keeps
// the current settings.
func (a *App) Reload(path string) {
	s, err := config.Load(path)
	if err != nil {
		a.Ctx.Logger.Error("reloading settings", "path", path, "err", err)
		a.notify("Can't reload settings.")
		return
	}
	rotated := s.Rotation != a.Ctx.Settings.Rotation
	a.Ctx.Settings = s
	a.Ctx.Logger.Info("settings reloaded", "path", path)
	if rotated {
		a.resize()
	}
	a.Hub.Send(view.Reseed{})
}
