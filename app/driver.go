package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sanity-io/litter"

	"github.com/rjkroege/inkshelf/draw"
	"github.com/rjkroege/inkshelf/theme"
	"github.com/rjkroege/inkshelf/view"
)

// Driver carries render requests out on a display.
type Driver struct {
	Display  draw.Display
	Canvas   *view.Canvas
	Logger   *slog.Logger
	inverted bool
}

// NewDriver returns a driver painting on the screen image of d.
func NewDriver(d draw.Display, font draw.Font, inverted bool, logger *slog.Logger) *Driver {
	return &Driver{
		Display:  d,
		Canvas:   view.NewCanvas(d.ScreenImage(), font, theme.For(inverted)),
		Logger:   logger,
		inverted: inverted,
	}
}

// Attach follows the display to a new screen image after the window was
// resized.
func (d *Driver) Attach() error {
	if err := d.Display.Attach(draw.Refnone); err != nil {
		return fmt.Errorf("reattaching window: %w", err)
	}
	d.Canvas.Dst = d.Display.ScreenImage()
	return nil
}

// Flush paints reqs against root, in order, and flushes the display once
// if anything was painted. It reports the number of requests painted.
func (d *Driver) Flush(root view.View, reqs []view.RenderRequest, inverted bool) (int, error) {
	if len(reqs) == 0 {
		return 0, nil
	}
	if inverted != d.inverted {
		d.Canvas.SetPalette(theme.For(inverted))
		d.inverted = inverted
	}
	if d.Logger.Enabled(context.Background(), slog.LevelDebug) {
		d.Logger.Debug("render", "requests", litter.Sdump(reqs))
	}
	n := 0
	for _, r := range reqs {
		if view.Paint(d.Canvas, root, r) {
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	if err := d.Display.Flush(); err != nil {
		return n, fmt.Errorf("flushing display: %w", err)
	}
	return n, nil
}
