package view

import "image"

// BottomBar is the chrome at the bottom of a screen: a label between two
// icons.
type BottomBar struct {
	Group
}

// NewBottomBar returns a bottom bar in r.
func NewBottomBar(r image.Rectangle, leftIcon string, leftEvent Event, text string, rightIcon string, rightEvent Event) *BottomBar {
	bb := &BottomBar{Group: Group{Base: NewBase(TagBottomBar, r)}}
	bb.children = []View{
		NewIcon(image.Rectangle{}, leftIcon, leftEvent),
		NewLabel(image.Rectangle{}, text, AlignCenter),
		NewIcon(image.Rectangle{}, rightIcon, rightEvent),
	}
	bb.layout(r)
	return bb
}

func (bb *BottomBar) layout(r image.Rectangle) {
	bb.rect = r
	side := min(r.Dy(), r.Dx()/4)
	bb.children[0].SetRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+side, r.Max.Y))
	bb.children[1].SetRect(image.Rect(r.Min.X+side, r.Min.Y, r.Max.X-side, r.Max.Y))
	bb.children[2].SetRect(image.Rect(r.Max.X-side, r.Min.Y, r.Max.X, r.Max.Y))
}

func (bb *BottomBar) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	bb.layout(r)
}

// Label returns the label between the icons.
func (bb *BottomBar) Label() *Label { return MustChild[*Label](bb, 1) }

func (bb *BottomBar) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
}
