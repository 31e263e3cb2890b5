// Package catalog is the boundary to the reading list: the entries shown on
// the listing screen, where they come from, and how they are searched and
// ordered.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Entry is one work in the reading list.
type Entry struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Author   string   `yaml:"author" json:"author"`
	Year     int      `yaml:"year" json:"year"`
	Words    int      `yaml:"words" json:"words"`
	Tags     []string `yaml:"tags" json:"tags,omitempty"`
	Location string   `yaml:"location" json:"location"`
	Added    int      `yaml:"-" json:"added"`
}

// HistoryPrefix starts the locations of lists kept by the reader itself
// rather than by the catalog.
const HistoryPrefix = "history:"

// MarkedForLater is the location of the saved-for-later history list.
const MarkedForLater = HistoryPrefix + "marked-for-later"

// ErrUnknownLocation is returned for locations a source does not hold.
var ErrUnknownLocation = errors.New("unknown location")

// Source supplies entries. Implementations may block on I/O; views only
// see the result through an event.
type Source interface {
	Entries(ctx context.Context, location string) ([]Entry, error)
	Locations() []string
}

// Memory is a Source held in memory, seeded from a YAML file or by tests.
type Memory struct {
	mu    sync.RWMutex
	lists map[string][]Entry
}

// NewMemory returns an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{lists: make(map[string][]Entry)}
}

// Add appends entries to the list at location. Entries inherit location
// when they carry none and are numbered in insertion order.
func (m *Memory) Add(location string, entries ...Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.lists[location]
	for _, e := range entries {
		if e.Location == "" {
			e.Location = location
		}
		if e.ID == "" {
			e.ID = fmt.Sprintf("%s#%d", location, len(list))
		}
		e.Added = len(list)
		list = append(list, e)
	}
	m.lists[location] = list
}

func (m *Memory) Entries(ctx context.Context, location string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	list, ok := m.lists[location]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLocation, location)
	}
	return append([]Entry(nil), list...), nil
}

func (m *Memory) Locations() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	locs := make([]string, 0, len(m.lists))
	for l := range m.lists {
		locs = append(locs, l)
	}
	sort.Strings(locs)
	return locs
}

type seedFile struct {
	Lists []struct {
		Location string  `yaml:"location"`
		Entries  []Entry `yaml:"entries"`
	} `yaml:"lists"`
}

// ParseSeed decodes a YAML catalog seed into m.
func (m *Memory) ParseSeed(data []byte) error {
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing catalog: %w", err)
	}
	for _, l := range sf.Lists {
		if strings.TrimSpace(l.Location) == "" {
			return errors.New("catalog list without location")
		}
		m.Add(l.Location, l.Entries...)
	}
	return nil
}

// LoadSeed reads a YAML catalog seed from path into m.
func (m *Memory) LoadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}
	return m.ParseSeed(data)
}

// Search returns the entries of every location in src matching q.
func Search(ctx context.Context, src Source, q Query) ([]Entry, error) {
	var out []Entry
	seen := make(map[string]bool)
	for _, loc := range src.Locations() {
		entries, err := src.Entries(ctx, loc)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !seen[e.ID] && q.Match(e) {
				seen[e.ID] = true
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// Multi consults its sources in order; the first that knows a location
// answers for it.
type Multi []Source

func (m Multi) Entries(ctx context.Context, location string) ([]Entry, error) {
	for _, s := range m {
		es, err := s.Entries(ctx, location)
		if errors.Is(err, ErrUnknownLocation) {
			continue
		}
		return es, err
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownLocation, location)
}

func (m Multi) Locations() []string {
	seen := make(map[string]bool)
	var locs []string
	for _, s := range m {
		for _, l := range s.Locations() {
			if !seen[l] {
				seen[l] = true
				locs = append(locs, l)
			}
		}
	}
	sort.Strings(locs)
	return locs
}
