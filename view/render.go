package view

import (
	"fmt"
	"image"
)

// RefreshMode selects how the display refreshes a region. E-ink panels
// trade speed against ghosting; the mode is independent of the region.
type RefreshMode int

const (
	Full    RefreshMode = iota // flashing refresh that clears ghosting
	Partial                    // fast refresh of changed pixels
	GUI                        // refresh tuned for chrome and overlays
	Fast                       // fastest monochrome refresh, for typing
	Clear                      // blank the region
)

func (m RefreshMode) String() string {
	switch m {
	case Full:
		return "full"
	case Partial:
		return "partial"
	case GUI:
		return "gui"
	case Fast:
		return "fast"
	case Clear:
		return "clear"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// RenderRequest asks for a region to be repainted. An expose request has no
// owning view: whatever is visible in Rect is repainted.
type RenderRequest struct {
	ID     ID
	Rect   image.Rectangle
	Mode   RefreshMode
	Expose bool
}

// NewRequest asks for view id to repaint rect.
func NewRequest(id ID, rect image.Rectangle, mode RefreshMode) RenderRequest {
	return RenderRequest{ID: id, Rect: rect, Mode: mode}
}

// ExposeRequest asks for whatever is visible in rect to be repainted.
func ExposeRequest(rect image.Rectangle, mode RefreshMode) RenderRequest {
	return RenderRequest{Rect: rect, Mode: mode, Expose: true}
}

func (r RenderRequest) String() string {
	if r.Expose {
		return fmt.Sprintf("expose %v %v", r.Rect, r.Mode)
	}
	return fmt.Sprintf("view %d %v %v", r.ID, r.Rect, r.Mode)
}

// RenderQueue is the ordered list of regions to repaint after the current
// dispatch cycle. Requests are not merged.
type RenderQueue struct {
	reqs []RenderRequest
}

// Add appends req.
func (q *RenderQueue) Add(req RenderRequest) {
	q.reqs = append(q.reqs, req)
}

// Len returns the number of queued requests.
func (q *RenderQueue) Len() int { return len(q.reqs) }

// Requests returns the queued requests in order.
func (q *RenderQueue) Requests() []RenderRequest { return q.reqs }

// Drain empties the queue and returns what it held.
func (q *RenderQueue) Drain() []RenderRequest {
	reqs := q.reqs
	q.reqs = nil
	return reqs
}
