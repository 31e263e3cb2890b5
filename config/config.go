// Package config loads the reader settings and keyboard layouts.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Fave is a saved search shown on the home screen.
type Fave struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// ButtonScheme maps the physical page turn buttons to directions.
type ButtonScheme string

const (
	Natural  ButtonScheme = "natural"
	Inverted ButtonScheme = "inverted"
)

// Settings are the user adjustable knobs of the reader.
type Settings struct {
	Device            string        `yaml:"device"`
	KeyboardLayout    string        `yaml:"keyboard_layout"`
	TimeFormat        string        `yaml:"time_format"`
	DateFormat        string        `yaml:"date_format"`
	Inverted          bool          `yaml:"inverted"`
	Rotation          int           `yaml:"rotation"`
	Frontlight        bool          `yaml:"frontlight"`
	LoggedIn          bool          `yaml:"logged_in"`
	ButtonScheme      ButtonScheme  `yaml:"button_scheme"`
	NotificationDelay time.Duration `yaml:"notification_delay"`
	ClockInterval     time.Duration `yaml:"clock_interval"`
	BatteryInterval   time.Duration `yaml:"battery_interval"`
	Faves             []Fave        `yaml:"faves"`
	Library           string        `yaml:"library"`
	Catalog           string        `yaml:"catalog"`
	ScreenshotDir     string        `yaml:"screenshot_dir"`
	InputHistorySize  int           `yaml:"input_history_size"`
}

// Default returns the settings used when no file overrides them.
func Default() Settings {
	return Settings{
		Device:            "kobo-touch",
		KeyboardLayout:    "English",
		TimeFormat:        "15:04",
		DateFormat:        "Monday, January 2, 2006",
		ButtonScheme:      Natural,
		NotificationDelay: 4 * time.Second,
		ClockInterval:     time.Minute,
		BatteryInterval:   5 * time.Minute,
		ScreenshotDir:     ".",
		InputHistorySize:  16,
	}
}

// Parse overlays the YAML document data on top of base. Keys missing from
// data keep their value from base.
func Parse(base Settings, data []byte) (Settings, error) {
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// Load reads the settings file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(s, data)
}

// Validate rejects settings the views cannot honour.
func (s Settings) Validate() error {
	switch {
	case s.Rotation < 0 || s.Rotation > 3:
		return fmt.Errorf("rotation %d out of range 0..3", s.Rotation)
	case s.ButtonScheme != Natural && s.ButtonScheme != Inverted:
		return fmt.Errorf("unknown button scheme %q", s.ButtonScheme)
	case s.NotificationDelay < 0:
		return fmt.Errorf("negative notification delay %v", s.NotificationDelay)
	case s.InputHistorySize < 0:
		return fmt.Errorf("negative input history size %d", s.InputHistorySize)
	}
	for i, f := range s.Faves {
		if f.Name == "" {
			return fmt.Errorf("fave %d has no name", i)
		}
	}
	return nil
}
