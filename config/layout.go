package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Special keys are written in angle brackets in a layout file.
const (
	KeyShift     = "<shift>"
	KeyBackspace = "<del>"
	KeyReturn    = "<ret>"
	KeySpace     = "<space>"
	KeyHide      = "<hide>"
	KeyLayout    = "<layout>"
)

// Layout describes the keys of an on-screen keyboard. Rows and Shifted
// must have the same shape; Shifted holds the output of each key while
// shift is engaged.
type Layout struct {
	Name    string      `yaml:"name"`
	Rows    [][]string  `yaml:"rows"`
	Shifted [][]string  `yaml:"shifted"`
	Widths  [][]float64 `yaml:"widths"`
}

// Validate checks that the key grids line up.
func (l Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("keyboard layout without name")
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("keyboard layout %q has no rows", l.Name)
	}
	if l.Shifted != nil && len(l.Shifted) != len(l.Rows) {
		return fmt.Errorf("keyboard layout %q: %d shifted rows for %d rows", l.Name, len(l.Shifted), len(l.Rows))
	}
	for i, row := range l.Rows {
		if len(row) == 0 {
			return fmt.Errorf("keyboard layout %q: row %d is empty", l.Name, i)
		}
		if l.Shifted != nil && len(l.Shifted[i]) != len(row) {
			return fmt.Errorf("keyboard layout %q: shifted row %d has %d keys, want %d", l.Name, i, len(l.Shifted[i]), len(row))
		}
		if l.Widths != nil && i < len(l.Widths) && len(l.Widths[i]) != len(row) {
			return fmt.Errorf("keyboard layout %q: widths row %d has %d entries, want %d", l.Name, i, len(l.Widths[i]), len(row))
		}
	}
	return nil
}

// Output returns what key (row, col) produces.
func (l Layout) Output(row, col int, shifted bool) string {
	if shifted && l.Shifted != nil {
		return l.Shifted[row][col]
	}
	return l.Rows[row][col]
}

// Width returns the relative width of key (row, col); 1 when unspecified.
func (l Layout) Width(row, col int) float64 {
	if row < len(l.Widths) && col < len(l.Widths[row]) && l.Widths[row][col] > 0 {
		return l.Widths[row][col]
	}
	return 1
}

// IsSpecial reports whether key names a special key.
func IsSpecial(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">")
}

// Layouts maps layout names to layouts.
type Layouts map[string]Layout

//go:embed layouts/*.yaml
var builtinLayouts embed.FS

// NumericLayout names the digits-only layout used by page inputs.
const NumericLayout = "Numeric"

// BuiltinLayouts returns the layouts compiled into the binary.
func BuiltinLayouts() (Layouts, error) {
	ls := make(Layouts)
	entries, err := builtinLayouts.ReadDir("layouts")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := builtinLayouts.ReadFile("layouts/" + e.Name())
		if err != nil {
			return nil, err
		}
		if err := ls.Parse(data); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
	}
	return ls, nil
}

// Parse decodes one YAML layout into ls.
func (ls Layouts) Parse(data []byte) error {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return fmt.Errorf("parsing keyboard layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return err
	}
	ls[l.Name] = l
	return nil
}

// LoadDir adds every *.yaml layout in dir to ls.
func (ls Layouts) LoadDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading keyboard layout: %w", err)
		}
		if err := ls.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Names returns the sorted layout names.
func (ls Layouts) Names() []string {
	names := make([]string, 0, len(ls))
	for n := range ls {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
