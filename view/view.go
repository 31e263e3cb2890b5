// Package view implements the retained view tree of the reader: the view
// contract, event routing through the tree, the render queue handed to the
// display, and the search and keyboard overlays shared by the screens.
package view

import "image"

// View is a node of the view tree. A view owns its children; there are no
// back references. Views talk upwards only by sending events to the hub and
// by queueing render requests.
type View interface {
	// HandleEvent offers evt to the view. It reports whether the view
	// claimed the event, which stops routing at this level.
	HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool

	// Render paints the part of the view inside rect.
	Render(c *Canvas, rect image.Rectangle)

	// Resize lays the view and its children out in r.
	Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context)

	Rect() image.Rectangle
	SetRect(r image.Rectangle)

	// Children returns the children in paint order.
	Children() []View

	ID() ID
	Tag() Tag
}

// Parent is a view whose children can be added and removed from outside,
// used by the helpers that float menus and notifications over a screen.
type Parent interface {
	View
	AppendChild(v View)
	RemoveChild(i int) View
}

// Base provides the default behaviour of a leaf view.
type Base struct {
	id   ID
	tag  Tag
	rect image.Rectangle
}

// NewBase returns a Base with a fresh ID.
func NewBase(tag Tag, rect image.Rectangle) Base {
	return Base{id: NextID(), tag: tag, rect: rect}
}

func (b *Base) ID() ID                    { return b.id }
func (b *Base) Tag() Tag                  { return b.tag }
func (b *Base) Rect() image.Rectangle     { return b.rect }
func (b *Base) SetRect(r image.Rectangle) { b.rect = r }
func (b *Base) Children() []View          { return nil }

func (b *Base) HandleEvent(evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	return false
}

func (b *Base) Render(c *Canvas, rect image.Rectangle) {}

func (b *Base) Resize(r image.Rectangle, hub *Hub, rq *RenderQueue, ctx *Context) {
	b.rect = r
}

// Group is a Base holding a plain slice of children, for composite leaves
// such as bars whose layout never changes shape.
type Group struct {
	Base
	children []View
}

func (g *Group) Children() []View { return g.children }

func (g *Group) AppendChild(v View) { g.children = append(g.children, v) }

func (g *Group) RemoveChild(i int) View {
	v := g.children[i]
	g.children = append(g.children[:i], g.children[i+1:]...)
	return v
}
