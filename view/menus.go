package view

import (
	"image"
	"strconv"

	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/device"
)

// toggleFloating removes the child of p tagged tag, or appends the view
// built by build when there is none. Closing exposes the area the view
// covered; opening queues the new view.
func toggleFloating(p Parent, tag Tag, want Want, rq *RenderQueue, build func() View) {
	if i, ok := LocateByTag(p, tag); ok {
		if want == ForceOpen {
			return
		}
		closeChild(p, i, rq)
		return
	}
	if want == ForceClose {
		return
	}
	v := build()
	if v == nil {
		return
	}
	rq.Add(NewRequest(v.ID(), v.Rect(), GUI))
	p.AppendChild(v)
}

func closeChild(p Parent, i int, rq *RenderQueue) {
	v := p.RemoveChild(i)
	if n, ok := v.(*Notification); ok {
		n.Dismiss()
	}
	rq.Add(ExposeRequest(Overlapping(v), GUI))
}

// ToggleMainMenu shows or hides the main menu next to rect.
func ToggleMainMenu(p Parent, rect image.Rectangle, want Want, rq *RenderQueue, ctx *Context) {
	toggleFloating(p, TagMainMenu, want, rq, func() View {
		return NewMenu(rect, TagMainMenu, mainMenuEntries(ctx), ctx)
	})
}

func mainMenuEntries(ctx *Context) []MenuEntry {
	rotate := make([]MenuEntry, 4)
	for n := range rotate {
		rotate[n] = Radio(strconv.Itoa(n*90), EntryID{Action: Rotate, Arg: n}, n == ctx.Settings.Rotation)
	}
	entries := []MenuEntry{
		Command("About", EntryID{Action: About}),
		Command("System Info", EntryID{Action: SystemInfo}),
		Separator(),
		CheckBox("Invert Colors", EntryID{Action: ToggleInverted}, ctx.Settings.Inverted),
		SubMenu("Keyboard Layout", keyboardLayoutEntries(ctx)),
		Separator(),
		SubMenu("Rotate", rotate),
	}
	if ctx.Device.HasPageTurnButtons() {
		scheme := ctx.Settings.ButtonScheme
		entries = append(entries, SubMenu("Button Scheme", []MenuEntry{
			Radio("Natural", EntryID{Action: SetButtonScheme, Text: string(config.Natural)}, scheme == config.Natural),
			Radio("Inverted", EntryID{Action: SetButtonScheme, Text: string(config.Inverted)}, scheme == config.Inverted),
		}))
	}
	return append(entries,
		Command("Take Screenshot", EntryID{Action: TakeScreenshot}),
		Command("Go Home", EntryID{Action: GoHome}),
		Separator(),
		Command("Quit", EntryID{Action: Quit}),
	)
}

func keyboardLayoutEntries(ctx *Context) []MenuEntry {
	var entries []MenuEntry
	for _, name := range ctx.Layouts.Names() {
		if name == config.NumericLayout {
			continue
		}
		entries = append(entries, Radio(name, EntryID{Action: SetKeyboardLayout, Text: name}, name == ctx.Settings.KeyboardLayout))
	}
	return entries
}

// ToggleBatteryMenu shows or hides the battery state next to rect.
func ToggleBatteryMenu(p Parent, rect image.Rectangle, want Want, rq *RenderQueue, ctx *Context) {
	toggleFloating(p, TagBatteryMenu, want, rq, func() View {
		return NewMenu(rect, TagBatteryMenu, []MenuEntry{Message(device.Describe(ctx.Battery))}, ctx)
	})
}

// ToggleClockMenu shows or hides today's date next to rect.
func ToggleClockMenu(p Parent, rect image.Rectangle, want Want, rq *RenderQueue, ctx *Context) {
	toggleFloating(p, TagClockMenu, want, rq, func() View {
		text := ctx.Now().Format(ctx.Settings.DateFormat)
		return NewMenu(rect, TagClockMenu, []MenuEntry{Message(text)}, ctx)
	})
}

// ToggleInputHistoryMenu shows or hides the texts previously submitted to
// input. Nothing opens when there is no history.
func ToggleInputHistoryMenu(p Parent, input Tag, rect image.Rectangle, want Want, rq *RenderQueue, ctx *Context) {
	toggleFloating(p, TagInputHistoryMenu, want, rq, func() View {
		texts := ctx.Inputs(input)
		if len(texts) == 0 {
			return nil
		}
		entries := make([]MenuEntry, len(texts))
		for i, t := range texts {
			entries[i] = Command(t, EntryID{Action: RecallInput, Text: t, Tag: input})
		}
		return NewMenu(rect, TagInputHistoryMenu, entries, ctx)
	})
}

// ToggleKeyboardLayoutMenu shows or hides the keyboard layout choices.
func ToggleKeyboardLayoutMenu(p Parent, rect image.Rectangle, want Want, rq *RenderQueue, ctx *Context) {
	toggleFloating(p, TagKeyboardLayoutMenu, want, rq, func() View {
		return NewMenu(rect, TagKeyboardLayoutMenu, keyboardLayoutEntries(ctx), ctx)
	})
}

// CloseFloating closes the child of p tagged tag if there is one. It
// reports whether a view was closed.
func CloseFloating(p Parent, tag Tag, rq *RenderQueue) bool {
	if _, ok := LocateByTag(p, tag); !ok {
		return false
	}
	toggleFloating(p, tag, ForceClose, rq, nil)
	return true
}

// CloseFloatingID closes the child of p with the given ID. A view that
// was replaced in the meantime stays up.
func CloseFloatingID(p Parent, id ID, rq *RenderQueue) bool {
	cs := p.Children()
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].ID() == id {
			closeChild(p, i, rq)
			return true
		}
	}
	return false
}

// CloseMenus closes every menu floating in p.
func CloseMenus(p Parent, rq *RenderQueue) {
	cs := p.Children()
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].Tag().IsMenu() {
			v := p.RemoveChild(i)
			rq.Add(ExposeRequest(Overlapping(v), GUI))
		}
	}
}

// ShowNotification floats a notification tagged tag over p, replacing an
// earlier one with the same tag.
func ShowNotification(p Parent, tag Tag, text string, hub *Hub, rq *RenderQueue, ctx *Context) {
	CloseFloating(p, tag, rq)
	p.AppendChild(NewNotification(tag, text, hub, rq, ctx))
}

// TransferNotifications moves the notifications of from to to, fitting
// them to the rectangle of to.
func TransferNotifications(from, to Parent, hub *Hub, rq *RenderQueue, ctx *Context) {
	cs := from.Children()
	var moved []View
	for i := len(cs) - 1; i >= 0; i-- {
		if _, ok := cs[i].(*Notification); ok {
			moved = append(moved, from.RemoveChild(i))
		}
	}
	for i := len(moved) - 1; i >= 0; i-- {
		n := moved[i]
		if from.Rect() != to.Rect() {
			n.Resize(to.Rect(), hub, rq, ctx)
		}
		to.AppendChild(n)
	}
}
