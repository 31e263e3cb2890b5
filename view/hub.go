package view

import "sync"

// Hub collects events emitted while another event is being handled. Send
// never runs a handler: the dispatcher drains the hub after the current
// event has been handled, in emission order. Send may be called from any
// goroutine, so timers can post events.
type Hub struct {
	mu      sync.Mutex
	pending []Event
	ready   chan struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{ready: make(chan struct{}, 1)}
}

// Send appends evt to the pending events.
func (h *Hub) Send(evt Event) {
	h.mu.Lock()
	h.pending = append(h.pending, evt)
	h.mu.Unlock()
	select {
	case h.ready <- struct{}{}:
	default:
	}
}

// Ready is signalled after Send when events may be pending.
func (h *Hub) Ready() <-chan struct{} {
	return h.ready
}

// Next removes and returns the oldest pending event.
func (h *Hub) Next() (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pending) == 0 {
		return nil, false
	}
	evt := h.pending[0]
	h.pending[0] = nil
	h.pending = h.pending[1:]
	return evt, true
}

// Len returns the number of pending events.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Pending returns a copy of the pending events without removing them.
func (h *Hub) Pending() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.pending...)
}

// Drain discards and returns every pending event.
func (h *Hub) Drain() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	evts := h.pending
	h.pending = nil
	return evts
}
