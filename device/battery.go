package device

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Status is the charging state of a battery.
type Status int

const (
	Unknown Status = iota
	Discharging
	Charging
	Charged
)

func (s Status) String() string {
	switch s {
	case Discharging:
		return "Discharging"
	case Charging:
		return "Charging"
	case Charged:
		return "Charged"
	}
	return "Unknown"
}

// Battery reports the charge of the device battery.
type Battery interface {
	Capacity() (int, error)
	Status() (Status, error)
}

// FakeBattery is a battery with settable readings, used by the desktop
// emulator and tests.
type FakeBattery struct {
	Level int
	State Status
	Err   error
}

// NewFakeBattery returns a half charged, discharging battery.
func NewFakeBattery() *FakeBattery {
	return &FakeBattery{Level: 50, State: Discharging}
}

func (b *FakeBattery) Capacity() (int, error) {
	if b.Err != nil {
		return 0, b.Err
	}
	return b.Level, nil
}

func (b *FakeBattery) Status() (Status, error) {
	if b.Err != nil {
		return Unknown, b.Err
	}
	return b.State, nil
}

// SysfsBattery reads a Linux power supply directory such as
// /sys/class/power_supply/mc13892_bat.
type SysfsBattery struct {
	Dir string
}

func (b SysfsBattery) read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(b.Dir, name))
	if err != nil {
		return "", fmt.Errorf("battery %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (b SysfsBattery) Capacity() (int, error) {
	s, err := b.read("capacity")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("battery capacity %q: %w", s, err)
	}
	return n, nil
}

func (b SysfsBattery) Status() (Status, error) {
	s, err := b.read("status")
	if err != nil {
		return Unknown, err
	}
	switch s {
	case "Discharging", "Not charging":
		return Discharging, nil
	case "Charging":
		return Charging, nil
	case "Full":
		return Charged, nil
	}
	return Unknown, nil
}

// Describe formats the battery state the way the battery menu shows it.
func Describe(b Battery) string {
	status, serr := b.Status()
	capacity, cerr := b.Capacity()
	switch {
	case serr == nil && cerr == nil:
		return fmt.Sprintf("%v %d%%", status, capacity)
	case serr == nil:
		return status.String()
	case cerr == nil:
		return fmt.Sprintf("%d %%", capacity)
	}
	return "Unknown"
}
