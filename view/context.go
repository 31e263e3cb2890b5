package view

import (
	"image"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/device"
	"github.com/rjkroege/inkshelf/internal/ui"
)

// InputHistory remembers the text submitted to each input.
type InputHistory interface {
	Inputs(input Tag) []string
	Record(input Tag, text string)
}

// Context is the application state shared with every view. It is passed
// by reference into each call and is only touched from the dispatch
// goroutine.
type Context struct {
	Device   device.Profile
	Settings config.Settings
	Layouts  config.Layouts
	Battery  device.Battery
	History  InputHistory
	Rand     *rand.Rand
	Now      func() time.Time
	Logger   *slog.Logger

	// KeyboardRect is the area of the on-screen keyboard while it is
	// shown, and empty otherwise.
	KeyboardRect image.Rectangle

	metrics ui.Metrics
}

// NewContext returns a context for the device p with default collaborators
// that callers replace as needed.
func NewContext(p device.Profile, s config.Settings, layouts config.Layouts) *Context {
	return &Context{
		Device:   p,
		Settings: s,
		Layouts:  layouts,
		Battery:  device.NewFakeBattery(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:      time.Now,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:  ui.NewMetrics(p.DPI),
	}
}

// Metrics returns the layout metrics of the device.
func (ctx *Context) Metrics() ui.Metrics {
	if ctx.metrics.DPI() != ctx.Device.DPI {
		ctx.metrics = ui.NewMetrics(ctx.Device.DPI)
	}
	return ctx.metrics
}

// Screen returns the screen rectangle for the current rotation.
func (ctx *Context) Screen() image.Rectangle {
	return ctx.Device.Bounds(ctx.Settings.Rotation)
}

// Layout returns the keyboard layout with the given name, falling back to
// the configured layout and then to any layout at all.
func (ctx *Context) Layout(name string) config.Layout {
	if l, ok := ctx.Layouts[name]; ok {
		return l
	}
	if l, ok := ctx.Layouts[ctx.Settings.KeyboardLayout]; ok {
		return l
	}
	for _, n := range ctx.Layouts.Names() {
		return ctx.Layouts[n]
	}
	return config.Layout{Name: "empty", Rows: [][]string{{config.KeyHide}}}
}

// Inputs returns the remembered inputs of the input tag.
func (ctx *Context) Inputs(input Tag) []string {
	if ctx.History == nil {
		return nil
	}
	return ctx.History.Inputs(input)
}

// RecordInput remembers text as submitted to the input tag.
func (ctx *Context) RecordInput(input Tag, text string) {
	if ctx.History != nil {
		ctx.History.Record(input, text)
	}
}
