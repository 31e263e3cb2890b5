package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/draw"
	"github.com/rjkroege/inkshelf/view"
)

// Run drives a on drv until ctx is done or the user quits. Input, timers
// and changes to the files in watch are turned into events on their own
// goroutines; dispatch and painting happen on the calling one.
func (a *App) Run(ctx context.Context, drv *Driver, watch []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	mc := drv.Display.InitMouse()
	kc := drv.Display.InitKeyboard()
	reload := make(chan string, 1)

	g.Go(func() error {
		tick(ctx, a.Ctx.Settings.ClockInterval, a.Hub, view.ClockTick{})
		return nil
	})
	g.Go(func() error {
		tick(ctx, a.Ctx.Settings.BatteryInterval, a.Hub, view.BatteryTick{})
		return nil
	})
	if len(watch) > 0 {
		g.Go(func() error {
			return config.Watch(ctx, watch, func(path string) {
				select {
				case reload <- path:
				default:
				}
			})
		})
	}
	g.Go(func() error {
		defer cancel()
		return a.loop(ctx, drv, mc, kc, reload)
	})
	return g.Wait()
}

func (a *App) loop(ctx context.Context, drv *Driver, mc *draw.Mousectl, kc *draw.Keyboardctl, reload <-chan string) error {
	ptr := NewPointer(max(a.Ctx.Device.DPI/24, 2))
	if _, err := drv.Flush(a.Current(), a.Queue.Drain(), a.Ctx.Settings.Inverted); err != nil {
		return err
	}
	for !a.done {
		select {
		case <-ctx.Done():
			return nil
		case m := <-mc.C:
			for _, evt := range ptr.Events(m) {
				a.Handle(evt)
			}
		case r := <-kc.C:
			if evt, ok := KeyEvent(r); ok {
				a.Handle(evt)
			}
		case <-mc.Resize:
			if err := drv.Attach(); err != nil {
				return err
			}
			r := drv.Display.ScreenImage().R()
			a.Fit(r.Dx(), r.Dy())
		case <-a.Hub.Ready():
			a.Drain()
		case path := <-reload:
			a.Reload(path)
			a.Drain()
		}
		if _, err := drv.Flush(a.Current(), a.Queue.Drain(), a.Ctx.Settings.Inverted); err != nil {
			return err
		}
	}
	a.Ctx.Logger.Info("quitting")
	return nil
}

// tick sends evt to hub every d until ctx is done. A zero interval never
// ticks.
func tick(ctx context.Context, d time.Duration, hub *view.Hub, evt view.Event) {
	if d <= 0 {
		return
	}
	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			hub.Send(evt)
		}
	}
}
