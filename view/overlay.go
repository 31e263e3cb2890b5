package view

import (
	"fmt"
	"image"

	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/geom"
)

// Want is the outcome asked of an overlay transition.
type Want int

const (
	Flip Want = iota
	ForceOpen
	ForceClose
)

func (w Want) String() string {
	switch w {
	case Flip:
		return "flip"
	case ForceOpen:
		return "force-open"
	case ForceClose:
		return "force-close"
	}
	return fmt.Sprintf("want(%d)", int(w))
}

// resolve returns whether the overlay should end up open.
func (w Want) resolve(open bool) bool {
	switch w {
	case ForceOpen:
		return true
	case ForceClose:
		return false
	}
	return !open
}

// OverlayState is the combination of overlays currently shown.
type OverlayState int

const (
	Closed OverlayState = iota
	SearchOnly
	SearchWithKeyboard
	KeyboardOnly // keyboard serving an input outside the search bar
)

func (s OverlayState) String() string {
	switch s {
	case Closed:
		return "closed"
	case SearchOnly:
		return "search"
	case SearchWithKeyboard:
		return "search+keyboard"
	case KeyboardOnly:
		return "keyboard"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Overlay threads the search bar and the keyboard between the anchor of a
// container and its bottom chrome, and tracks which input has the focus.
//
// Both overlays are bands cut from the bottom of the area given to the
// anchor: the search band rests on the bottom of that area and the
// keyboard band rests on the search band, or on the bottom when no search
// bar is shown. The anchor always keeps what is left above the topmost
// band.
type Overlay struct {
	stack       *Stack
	input       Tag
	placeholder string
	area        image.Rectangle
	focus       Tag
	query       string
}

// NewOverlay returns a closed overlay for the views in s. The search bar
// input is tagged input; area is the rectangle shared by the anchor and the
// overlays.
func NewOverlay(s *Stack, input Tag, placeholder string, area image.Rectangle) *Overlay {
	return &Overlay{stack: s, input: input, placeholder: placeholder, area: area}
}

// State returns which overlays are shown.
func (o *Overlay) State() OverlayState {
	switch s, k := o.stack.Has(LayerSearch), o.stack.Has(LayerKeyboard); {
	case s && k:
		return SearchWithKeyboard
	case s:
		return SearchOnly
	case k:
		return KeyboardOnly
	}
	return Closed
}

// Focus returns the input owning the focus, or NoTag.
func (o *Overlay) Focus() Tag { return o.focus }

// Query returns the pending search text.
func (o *Overlay) Query() string { return o.query }

// SetQuery records text as the pending search. An open search bar shows it.
func (o *Overlay) SetQuery(text string, rq *RenderQueue) {
	o.query = text
	if sb, ok := o.SearchBar(); ok {
		sb.Input().SetText(text, rq)
	}
}

// Area returns the rectangle shared by the anchor and the overlays.
func (o *Overlay) Area() image.Rectangle { return o.area }

// SearchBar returns the search bar when it is shown.
func (o *Overlay) SearchBar() (*SearchBar, bool) {
	if !o.stack.Has(LayerSearch) {
		return nil, false
	}
	vs := o.stack.Slot(LayerSearch)
	sb, ok := vs[len(vs)-1].(*SearchBar)
	if !ok {
		panic(fmt.Sprintf("view: search slot ends with %T, want *SearchBar", vs[len(vs)-1]))
	}
	return sb, true
}

// Keyboard returns the keyboard when it is shown.
func (o *Overlay) Keyboard() (*Keyboard, bool) {
	if !o.stack.Has(LayerKeyboard) {
		return nil, false
	}
	vs := o.stack.Slot(LayerKeyboard)
	kb, ok := vs[len(vs)-1].(*Keyboard)
	if !ok {
		panic(fmt.Sprintf("view: keyboard slot ends with %T, want *Keyboard", vs[len(vs)-1]))
	}
	return kb, true
}

// bands returns the rectangles of the search and keyboard bands for the
// overlays that are open, and the top of the topmost one.
func (o *Overlay) bands(search, keyboard bool, ctx *Context) (sr, kr image.Rectangle, top int) {
	m := ctx.Metrics()
	top = o.area.Max.Y
	if search {
		sr = geom.Band(o.area, top-m.SearchBand(), top)
		top = sr.Min.Y
	}
	if keyboard {
		kr = geom.Band(o.area, top-m.KeyboardBand(), top)
		top = kr.Min.Y
	}
	return sr, kr, top
}

// splitBand divides band into its leading separator and the rest.
func splitBand(band image.Rectangle, ctx *Context) (sep, body image.Rectangle) {
	t := min(max(ctx.Metrics().Thickness(), 1), band.Dy())
	sep = geom.Band(band, band.Min.Y, band.Min.Y+t)
	body = geom.Band(band, band.Min.Y+t, band.Max.Y)
	return sep, body
}

// fitAnchor gives the anchor the part of the area above the open bands.
func (o *Overlay) fitAnchor(hub *Hub, rq *RenderQueue, ctx *Context) View {
	_, _, top := o.bands(o.stack.Has(LayerSearch), o.stack.Has(LayerKeyboard), ctx)
	a := o.stack.Anchor()
	r := a.Rect()
	r.Min.X, r.Max.X = o.area.Min.X, o.area.Max.X
	r.Max.Y = max(top, r.Min.Y)
	if r != a.Rect() {
		a.Resize(r, hub, rq, ctx)
	}
	return a
}

func (o *Overlay) openSearch(ctx *Context) image.Rectangle {
	sr, _, _ := o.bands(true, o.stack.Has(LayerKeyboard), ctx)
	sep, body := splitBand(sr, ctx)
	sb := NewSearchBar(body, o.input, o.placeholder, o.query, ctx)
	sb.Input().focused = o.focus == o.input
	o.stack.Set(LayerSearch, NewSeparator(sep), sb)
	return sr
}

// moveKeyboard puts an open keyboard back on top of the search band and
// returns the band it occupies.
func (o *Overlay) moveKeyboard(hub *Hub, rq *RenderQueue, ctx *Context) image.Rectangle {
	vs := o.stack.Slot(LayerKeyboard)
	if len(vs) != 2 {
		return image.Rectangle{}
	}
	_, kr, _ := o.bands(o.stack.Has(LayerSearch), true, ctx)
	sep, body := splitBand(kr, ctx)
	vs[0].Resize(sep, hub, rq, ctx)
	vs[1].Resize(body, hub, rq, ctx)
	ctx.KeyboardRect = body
	return kr
}

// showSearch adds the search bar below an open keyboard, or alone.
func (o *Overlay) showSearch(update bool, hub *Hub, rq *RenderQueue, ctx *Context) {
	added := o.openSearch(ctx)
	if o.stack.Has(LayerKeyboard) {
		added = geom.Absorb(added, o.moveKeyboard(hub, rq, ctx))
	}
	a := o.fitAnchor(hub, rq, ctx)
	if update {
		rq.Add(NewRequest(a.ID(), a.Rect(), Partial))
		rq.Add(ExposeRequest(added, GUI))
	}
}

// ToggleSearch shows or hides the search bar. Opening it without a pending
// query moves the focus to its input, which brings up the keyboard.
// Closing it closes the keyboard too and forgets the query.
func (o *Overlay) ToggleSearch(want Want, update bool, hub *Hub, rq *RenderQueue, ctx *Context) {
	open := o.stack.Has(LayerSearch)
	if want.resolve(open) == open {
		return
	}
	if open {
		_, _, top := o.bands(true, o.stack.Has(LayerKeyboard), ctx)
		o.ToggleKeyboard(ForceClose, false, NoTag, hub, rq, ctx)
		o.stack.Clear(LayerSearch)
		o.query = ""
		if o.focus == o.input {
			o.focus = NoTag
		}
		a := o.fitAnchor(hub, rq, ctx)
		if update {
			rq.Add(ExposeRequest(geom.Band(o.area, top, o.area.Max.Y), GUI))
			rq.Add(NewRequest(a.ID(), a.Rect(), GUI))
		}
		return
	}
	o.showSearch(update, hub, rq, ctx)
	if o.query == "" {
		hub.Send(Focus{Target: o.input})
	}
}

// keyboardLayout picks the layout serving input.
func keyboardLayout(input Tag, ctx *Context) config.Layout {
	if input == TagGoToPageInput {
		return ctx.Layout(config.NumericLayout)
	}
	return ctx.Layout(ctx.Settings.KeyboardLayout)
}

// ToggleKeyboard shows or hides the keyboard serving target. A keyboard
// for the search input brings up the search bar first.
func (o *Overlay) ToggleKeyboard(want Want, update bool, target Tag, hub *Hub, rq *RenderQueue, ctx *Context) {
	open := o.stack.Has(LayerKeyboard)
	if want.resolve(open) == open {
		return
	}
	if open {
		var vacated image.Rectangle
		for _, v := range o.stack.Clear(LayerKeyboard) {
			vacated = geom.Absorb(vacated, v.Rect())
		}
		o.fitAnchor(hub, rq, ctx)
		ctx.KeyboardRect = image.Rectangle{}
		o.focus = NoTag
		hub.Send(Focus{Target: NoTag})
		if update {
			rq.Add(ExposeRequest(vacated, GUI))
		}
		return
	}
	if target == NoTag {
		target = o.input
	}
	var added image.Rectangle
	if target == o.input && !o.stack.Has(LayerSearch) {
		added = o.openSearch(ctx)
	}
	_, kr, _ := o.bands(o.stack.Has(LayerSearch), true, ctx)
	sep, body := splitBand(kr, ctx)
	kb := NewKeyboard(body, keyboardLayout(target, ctx))
	o.stack.Set(LayerKeyboard, NewSeparator(sep), kb)
	ctx.KeyboardRect = kb.Rect()
	added = geom.Absorb(added, kr)
	// The keyboard band is taken from the anchor as well, so the anchor
	// and the open bands still tile the area.
	a := o.fitAnchor(hub, rq, ctx)
	if update {
		rq.Add(NewRequest(a.ID(), a.Rect(), Partial))
		rq.Add(ExposeRequest(added, GUI))
	}
}

// SetFocus gives the focus to target. Focusing a text input brings up the
// keyboard, and the search bar with it for the search input, even when the
// keyboard was already up for another input. Clearing the focus closes
// nothing.
func (o *Overlay) SetFocus(target Tag, hub *Hub, rq *RenderQueue, ctx *Context) {
	if target == o.focus {
		return
	}
	o.focus = target
	if !target.IsTextInput() {
		return
	}
	if kb, ok := o.Keyboard(); ok {
		if l := keyboardLayout(target, ctx); l.Name != kb.Layout().Name {
			kb.SetLayout(l, rq)
		}
		if target == o.input && !o.stack.Has(LayerSearch) {
			o.showSearch(true, hub, rq, ctx)
		}
		return
	}
	o.ToggleKeyboard(ForceOpen, true, target, hub, rq, ctx)
}

// Layout moves the overlays into area after the container changed size
// and gives the anchor the band from anchorTop down to the topmost open
// overlay. Open overlays stay open.
func (o *Overlay) Layout(area image.Rectangle, anchorTop int, hub *Hub, rq *RenderQueue, ctx *Context) {
	o.area = area
	sr, kr, top := o.bands(o.stack.Has(LayerSearch), o.stack.Has(LayerKeyboard), ctx)
	if vs := o.stack.Slot(LayerSearch); len(vs) == 2 {
		sep, body := splitBand(sr, ctx)
		vs[0].Resize(sep, hub, rq, ctx)
		vs[1].Resize(body, hub, rq, ctx)
	}
	if vs := o.stack.Slot(LayerKeyboard); len(vs) == 2 {
		sep, body := splitBand(kr, ctx)
		vs[0].Resize(sep, hub, rq, ctx)
		vs[1].Resize(body, hub, rq, ctx)
		ctx.KeyboardRect = body
	}
	a := o.stack.Anchor()
	a.Resize(geom.Band(area, anchorTop, max(top, anchorTop)), hub, rq, ctx)
}
