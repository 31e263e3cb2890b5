package view

import (
	"fmt"
	"image"
)

// TopBar is the chrome at the top of a screen: a root icon, a title, the
// clock, the battery gauge and the main menu icon.
type TopBar struct {
	Group
	sep int // separator line along the bottom edge
}

const (
	topRoot = iota
	topTitle
	topClock
	topBattery
	topMenu
)

// NewTopBar returns a top bar in r. Tapping the root icon sends rootEvent
// and tapping the title sends titleEvent, which may be nil.
func NewTopBar(r image.Rectangle, rootIcon string, rootEvent Event, title string, titleEvent Event, ctx *Context) *TopBar {
	tb := &TopBar{Group: Group{Base: NewBase(TagTopBar, r)}}
	titleLabel := NewLabel(image.Rectangle{}, title, AlignCenter)
	titleLabel.Event = titleEvent
	clock := NewLabel(image.Rectangle{}, "", AlignCenter)
	clock.Event = ToggleNear{Tag: TagClockMenu}
	battery := NewLabel(image.Rectangle{}, "", AlignCenter)
	battery.Event = ToggleNear{Tag: TagBatteryMenu}
	tb.children = []View{
		NewIcon(image.Rectangle{}, rootIcon, rootEvent),
		titleLabel,
		clock,
		battery,
		NewIcon(image.Rectangle{}, "menu", ToggleNear{Tag: TagMainMenu}),
	}
	tb.layout(r, ctx)
	var rq RenderQueue
	tb.UpdateClock(&rq, ctx)
	tb.UpdateBattery(&rq, ctx)
	return tb
}

func (tb *TopBar) layout(r image.Rectangle, ctx *Context) {
	tb.rect = r
	_, tb.sep = ctx.Metrics().ThicknessHalves()
	r.Max.Y = max(r.Max.Y-tb.sep, r.Min.Y)
	side := min(r.Dy(), r.Dx()/6)
	x := []int{
		r.Min.X,
		r.Min.X + side,
		r.Max.X - 4*side,
		r.Max.X - 2*side,
		r.Max.X - side,
		r.Max.X,
	}
	for i, c := range tb.children {
		c.SetRect(image.Rect(x[i], r.Min.Y, x[i+1], r.Max.Y))
	}
}

func (tb *TopBar) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	tb.layout(r, ctx)
}

func (tb *TopBar) RootIcon() *Icon { return MustChild[*Icon](tb, topRoot) }
func (tb *TopBar) Title() *Label   { return MustChild[*Label](tb, topTitle) }

// SetRootIcon switches the root icon to name.
func (tb *TopBar) SetRootIcon(name string, rq *RenderQueue) {
	tb.RootIcon().SetName(name, rq)
}

// SetTitle changes the title.
func (tb *TopBar) SetTitle(title string, rq *RenderQueue) {
	tb.Title().SetText(title, rq)
}

// UpdateClock shows the current time.
func (tb *TopBar) UpdateClock(rq *RenderQueue, ctx *Context) {
	MustChild[*Label](tb, topClock).SetText(ctx.Now().Format(ctx.Settings.TimeFormat), rq)
}

// UpdateBattery shows the battery charge.
func (tb *TopBar) UpdateBattery(rq *RenderQueue, ctx *Context) {
	text := "?"
	if c, err := ctx.Battery.Capacity(); err == nil {
		text = fmt.Sprintf("%d%%", c)
	}
	MustChild[*Label](tb, topBattery).SetText(text, rq)
}

func (tb *TopBar) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	switch evt.(type) {
	case ClockTick:
		tb.UpdateClock(rq, ctx)
	case BatteryTick:
		tb.UpdateBattery(rq, ctx)
	}
	// Other views may show the time too; the screen claims ticks.
	return false
}

func (tb *TopBar) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	r := tb.Rect()
	line := image.Rect(r.Min.X, r.Max.Y-tb.sep, r.Max.X, r.Max.Y)
	c.Fill(line.Intersect(rect), c.Ink(InkSeparator))
}
