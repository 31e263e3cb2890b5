package view

import "image"

// NamedInput is a small floating box asking for one value: a label over an
// input field.
type NamedInput struct {
	Group
}

// NewNamedInput returns a box tagged tag in r whose input is tagged input.
func NewNamedInput(r image.Rectangle, tag Tag, text string, input Tag) *NamedInput {
	ni := &NamedInput{Group: Group{Base: NewBase(tag, r)}}
	ni.children = []View{
		NewLabel(image.Rectangle{}, text, AlignCenter),
		NewInputField(image.Rectangle{}, input, ""),
	}
	ni.layout(r)
	return ni
}

func (ni *NamedInput) layout(r image.Rectangle) {
	ni.rect = r
	mid := r.Min.Y + r.Dy()/2
	ni.children[0].SetRect(image.Rect(r.Min.X+2, r.Min.Y+2, r.Max.X-2, mid))
	ni.children[1].SetRect(image.Rect(r.Min.X+2, mid, r.Max.X-2, r.Max.Y-2))
}

func (ni *NamedInput) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	ni.layout(r)
}

// Input returns the input field of the box.
func (ni *NamedInput) Input() *InputField { return MustChild[*InputField](ni, 1) }

func (ni *NamedInput) Render(c *Canvas, rect image.Rectangle) {
	c.Fill(rect, c.Ink(InkBackground))
	c.Border(ni.Rect(), 2, c.Ink(InkBorder))
}
