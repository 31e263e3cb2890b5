package view

import "fmt"

// Dispatch offers evt to the subtree rooted at v. Children are tried in
// reverse paint order so that the topmost view wins; v itself is tried
// last. Positional events only reach views under the point.
func Dispatch(v View, evt Event, hub *Hub, rq *RenderQueue, ctx *Context) bool {
	if pt, ok := Position(evt); ok && !v.Rect().Empty() && !pt.In(v.Rect()) && !floats(v) {
		return false
	}
	cs := v.Children()
	for i := len(cs) - 1; i >= 0; i-- {
		// A handler may have shrunk the child list.
		if i >= len(v.Children()) {
			continue
		}
		if Dispatch(cs[i], evt, hub, rq, ctx) {
			return true
		}
	}
	return v.HandleEvent(evt, hub, rq, ctx)
}

// floats reports whether v wants positional events outside its rectangle,
// as menus do to close when the user taps elsewhere.
func floats(v View) bool {
	f, ok := v.(interface{ Modal() bool })
	return ok && f.Modal()
}

// MaxCycle bounds the number of events handled in one dispatch cycle.
// Exceeding it means handlers keep emitting events for each other.
const MaxCycle = 1024

// Dispatcher routes events into a tree and drains the events they emit.
type Dispatcher struct {
	Root  View
	Hub   *Hub
	Queue *RenderQueue
	Ctx   *Context

	// Fallback receives events no view claimed.
	Fallback func(evt Event) bool
}

// Handle dispatches evt and then every event emitted while handling it,
// in emission order, until the hub is empty. It returns the number of
// events handled.
func (d *Dispatcher) Handle(evt Event) int {
	n := 0
	for ; evt != nil; n++ {
		if n >= MaxCycle {
			dropped := d.Hub.Drain()
			d.Ctx.Logger.Error("dispatch cycle limit reached",
				"limit", MaxCycle, "dropped", len(dropped), "last", fmt.Sprintf("%T", evt))
			break
		}
		d.deliver(evt)
		next, ok := d.Hub.Next()
		if !ok {
			n++
			break
		}
		evt = next
	}
	return n
}

// Drain handles the events already pending in the hub.
func (d *Dispatcher) Drain() int {
	evt, ok := d.Hub.Next()
	if !ok {
		return 0
	}
	return d.Handle(evt)
}

func (d *Dispatcher) deliver(evt Event) {
	if Dispatch(d.Root, evt, d.Hub, d.Queue, d.Ctx) {
		return
	}
	if d.Fallback != nil && d.Fallback(evt) {
		return
	}
	d.Ctx.Logger.Debug("unhandled event", "event", fmt.Sprintf("%T%+v", evt, evt))
}
