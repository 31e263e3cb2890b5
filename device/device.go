// Package device describes the e-reader hardware the views are laid out
// for. A Profile is threaded through construction explicitly; nothing in
// this package is process global.
package device

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the fixed capability set of one device model.
type Profile struct {
	Name            string `yaml:"name"`
	DPI             int    `yaml:"dpi"`
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	PageTurnButtons bool   `yaml:"page_turn_buttons"`
	Gyroscope       bool   `yaml:"gyroscope"`
}

// HasPageTurnButtons reports whether the device has physical page turn
// buttons.
func (p Profile) HasPageTurnButtons() bool { return p.PageTurnButtons }

// HasGyroscope reports whether the device can sense its orientation.
func (p Profile) HasGyroscope() bool { return p.Gyroscope }

// Bounds returns the screen rectangle for the given rotation in quarter
// turns. Odd rotations swap the dimensions.
func (p Profile) Bounds(rotation int) image.Rectangle {
	if rotation%2 != 0 {
		return image.Rect(0, 0, p.Height, p.Width)
	}
	return image.Rect(0, 0, p.Width, p.Height)
}

// Validate reports the first nonsensical field of p.
func (p Profile) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("device profile without name")
	case p.DPI <= 0:
		return fmt.Errorf("device %q: dpi %d must be positive", p.Name, p.DPI)
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("device %q: bad dimensions %dx%d", p.Name, p.Width, p.Height)
	}
	return nil
}

// DefaultName is the profile used when none is requested.
const DefaultName = "kobo-touch"

var builtin = []Profile{
	{Name: "kobo-touch", DPI: 167, Width: 600, Height: 800},
	{Name: "kobo-glo", DPI: 212, Width: 758, Height: 1024},
	{Name: "kobo-aura-h2o", DPI: 265, Width: 1080, Height: 1430},
	{Name: "kobo-clara-hd", DPI: 300, Width: 1072, Height: 1448},
	{Name: "kobo-libra-h2o", DPI: 300, Width: 1264, Height: 1680, PageTurnButtons: true, Gyroscope: true},
	{Name: "kobo-forma", DPI: 300, Width: 1440, Height: 1920, PageTurnButtons: true, Gyroscope: true},
	{Name: "kobo-sage", DPI: 300, Width: 1440, Height: 1920, PageTurnButtons: true, Gyroscope: true},
}

// Table maps profile names to profiles.
type Table map[string]Profile

// Builtin returns a fresh table holding the known device models.
func Builtin() Table {
	t := make(Table, len(builtin))
	for _, p := range builtin {
		t[p.Name] = p
	}
	return t
}

// Lookup finds the named profile. Names are case insensitive.
func (t Table) Lookup(name string) (Profile, error) {
	if p, ok := t[strings.ToLower(name)]; ok {
		return p, nil
	}
	return Profile{}, fmt.Errorf("unknown device %q (known: %s)", name, strings.Join(t.Names(), ", "))
}

// Names returns the sorted profile names.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type profileFile struct {
	Devices []Profile `yaml:"devices"`
}

// Parse decodes a YAML device list and adds its profiles to t, replacing
// profiles with the same name.
func (t Table) Parse(data []byte) error {
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing device profiles: %w", err)
	}
	for _, p := range pf.Devices {
		p.Name = strings.ToLower(p.Name)
		if err := p.Validate(); err != nil {
			return err
		}
		t[p.Name] = p
	}
	return nil
}

// Load reads the device profiles in path into t.
func (t Table) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading device profiles: %w", err)
	}
	return t.Parse(data)
}
