// Command inkshelf runs the e-reader library screens in a window sized
// like the selected device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/rjkroege/inkshelf/app"
	"github.com/rjkroege/inkshelf/catalog"
	"github.com/rjkroege/inkshelf/config"
	"github.com/rjkroege/inkshelf/device"
	"github.com/rjkroege/inkshelf/draw"
	"github.com/rjkroege/inkshelf/view"
)

var configflag = flag.String("config", "", "Settings file, reloaded when it changes")
var deviceflag = flag.String("device", "", "Device profile name (overrides the settings)")
var devicesflag = flag.String("devices", "", "YAML file of extra device profiles")
var layoutsflag = flag.String("layouts", "", "Directory of extra keyboard layouts")
var catalogflag = flag.String("catalog", "", "YAML catalog seed (overrides the settings)")
var libraryflag = flag.String("library", "", "Library database (overrides the settings)")
var batteryflag = flag.String("battery", "", "sysfs power supply directory of the battery")
var fontflag = flag.String("font", os.Getenv("font"), "Font")
var debugflag = flag.Bool("debug", false, "Log every render request")

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debugflag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	settings, err := config.Load(*configflag)
	if err != nil {
		log.Fatalf("can't load settings: %v", err)
	}

	profiles := device.Builtin()
	if *devicesflag != "" {
		if err := profiles.Load(*devicesflag); err != nil {
			log.Fatalf("can't load device profiles: %v", err)
		}
	}
	name := settings.Device
	if *deviceflag != "" {
		name = *deviceflag
	}
	profile, err := profiles.Lookup(name)
	if err != nil {
		log.Fatalf("%v (known devices: %v)", err, profiles.Names())
	}

	layouts, err := config.BuiltinLayouts()
	if err != nil {
		log.Fatalf("can't load keyboard layouts: %v", err)
	}
	if *layoutsflag != "" {
		if err := layouts.LoadDir(*layoutsflag); err != nil {
			log.Fatalf("can't load keyboard layouts: %v", err)
		}
	}

	mem := catalog.NewMemory()
	if p := pick(*catalogflag, settings.Catalog); p != "" {
		if err := mem.LoadSeed(p); err != nil {
			log.Fatalf("can't load catalog: %v", err)
		}
	}
	var src catalog.Source = mem
	var store *catalog.Store
	if p := pick(*libraryflag, settings.Library); p != "" {
		store, err = catalog.OpenStore(p)
		if err != nil {
			log.Fatalf("can't open library: %v", err)
		}
		defer store.Close()
		src = catalog.Multi{store, mem}
	}

	ctx := view.NewContext(profile, settings, layouts)
	ctx.Logger = logger
	if *batteryflag != "" {
		ctx.Battery = device.SysfsBattery{Dir: *batteryflag}
	}
	a := app.New(ctx, src, store)

	var watch []string
	if *configflag != "" {
		watch = append(watch, *configflag)
	}

	draw.Main(func(dev *draw.Device) {
		r := ctx.Screen()
		display, err := dev.NewDisplay(nil, *fontflag, "inkshelf", fmt.Sprintf("%dx%d", r.Dx(), r.Dy()))
		if err != nil {
			log.Fatalf("can't open display: %v", err)
		}
		font, err := display.OpenFont(*fontflag)
		if err != nil {
			log.Fatalf("can't open font %q: %v", *fontflag, err)
		}
		drv := app.NewDriver(display, font, settings.Inverted, logger)
		if err := drv.Attach(); err != nil {
			log.Fatalf("can't attach to window: %v", err)
		}
		sr := display.ScreenImage().R()
		a.Fit(sr.Dx(), sr.Dy())

		sigctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		logger.Info("starting", "version", app.Version, "device", profile.Name, "screen", ctx.Screen())
		if err := a.Run(sigctx, drv, watch); err != nil {
			log.Fatalf("inkshelf: %v", err)
		}
	})
}

// pick returns the flag value when set and the setting otherwise.
func pick(flagval, setting string) string {
	if flagval != "" {
		return flagval
	}
	return setting
}
