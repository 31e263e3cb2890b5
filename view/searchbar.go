package view

import "image"

// SearchBar holds a search input between a submit icon and a close icon.
type SearchBar struct {
	Group
}

// NewSearchBar returns a search bar in r whose input is tagged input.
func NewSearchBar(r image.Rectangle, input Tag, placeholder, text string, ctx *Context) *SearchBar {
	sb := &SearchBar{Group: Group{Base: NewBase(TagSearchBar, r)}}
	field := NewInputField(image.Rectangle{}, input, placeholder)
	field.text = text
	field.cursor = len(text)
	sb.children = []View{
		NewIcon(image.Rectangle{}, "search", SubmitInput{Tag: input}),
		NewSeparator(image.Rectangle{}),
		field,
		NewSeparator(image.Rectangle{}),
		NewIcon(image.Rectangle{}, "close", Close{Tag: TagSearchBar}),
	}
	sb.layout(r, ctx)
	return sb
}

// Input returns the text input of the bar.
func (sb *SearchBar) Input() *InputField {
	return MustChild[*InputField](sb, 2)
}

func (sb *SearchBar) layout(r image.Rectangle, ctx *Context) {
	sb.rect = r
	t := max(ctx.Metrics().Thickness(), 1)
	side := min(r.Dy(), r.Dx()/4)
	x0, x1 := r.Min.X+side, r.Max.X-side
	sb.children[0].SetRect(image.Rect(r.Min.X, r.Min.Y, x0, r.Max.Y))
	sb.children[1].SetRect(image.Rect(x0, r.Min.Y, x0+t, r.Max.Y))
	sb.children[2].SetRect(image.Rect(x0+t, r.Min.Y, x1-t, r.Max.Y))
	sb.children[3].SetRect(image.Rect(x1-t, r.Min.Y, x1, r.Max.Y))
	sb.children[4].SetRect(image.Rect(x1, r.Min.Y, r.Max.X, r.Max.Y))
}

func (sb *SearchBar) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	sb.layout(r, ctx)
}
