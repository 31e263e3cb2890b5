package app

import (
	"log/slog"

	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/view"
)

// StoreHistory keeps the texts submitted to each input in the library
// database. Reads are served from memory after the first one.
type StoreHistory struct {
	store  *catalog.Store
	limit  int
	logger *slog.Logger
	cache  map[view.Tag][]string
}

// NewStoreHistory returns a history keeping at most limit texts per input.
func NewStoreHistory(store *catalog.Store, limit int, logger *slog.Logger) *StoreHistory {
	return &StoreHistory{store: store, limit: limit, logger: logger, cache: make(map[view.Tag][]string)}
}

// Inputs returns the texts submitted to input, most recent first.
func (h *StoreHistory) Inputs(input view.Tag) []string {
	if texts, ok := h.cache[input]; ok {
		return texts
	}
	texts, err := h.store.Inputs(input.String())
	if err != nil {
		h.logger.Error("reading input history", "input", input, "err", err)
		return nil
	}
	h.cache[input] = texts
	return texts
}

// Record remembers text as submitted to input.
func (h *StoreHistory) Record(input view.Tag, text string) {
	if err := h.store.AddInput(input.String(), text, h.limit); err != nil {
		h.logger.Error("recording input", "input", input, "err", err)
	}
	delete(h.cache, input)
}
