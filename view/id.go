package view

import "sync/atomic"

// ID identifies a view for the lifetime of the process. IDs are never
// reused. The zero ID belongs to no view.
type ID uint64

var lastID atomic.Uint64

// NextID returns a fresh ID.
func NextID() ID {
	return ID(lastID.Add(1))
}
