package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rlapin92/ngext-resizable/internal/config"
	"github.com/rlapin92/ngext-resizable/internal/config/watcher"
	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config System
	var cfgOpts []config.Option
	if app.opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithFile(app.opts.ConfigPath))
	}
	app.config = config.New(cfgOpts...)
	if err := app.config.Load(context.Background()); err != nil {
		return initError("config", err)
	}

	// 2. Logger - settings come from the config unless overridden
	if err := app.initLogger(); err != nil {
		return err
	}

	// 3. Scene
	app.box = NewBox(app.config.Scene().Rect())

	// 4. Pointer dispatch and the resize controller
	app.dispatcher = mouse.NewDispatcher()
	app.arbiter = resize.NewArbiter(resize.CursorSinkFunc(app.setCursor))
	app.controller = resize.NewController(app.box, app.resizeOptions(),
		resize.WithArbiter(app.arbiter),
		resize.WithObserver(&sessionObserver{
			logger:  app.logger.WithComponent("resize"),
			metrics: app.metrics,
		}),
	)

	app.reportConfigErrors()

	if path := app.config.Path(); path != "" {
		app.logger.Info("configuration loaded from %s", path)
	} else {
		app.logger.Info("configuration loaded from defaults")
	}
	return nil
}

// initLogger creates the application logger.
func (app *Application) initLogger() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		return nil
	}

	lc := app.config.Logging()
	level, file := lc.Level, lc.File
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		file = app.opts.LogFile
	}

	w, closer, err := OpenLogFile(file)
	if err != nil {
		return initError("logger", err)
	}
	app.logCloser = closer

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(level)
	cfg.Output = w
	app.logger = NewLogger(cfg)
	return nil
}

// resizeOptions builds controller options from the current configuration.
// Handles are rebuilt against the box.
func (app *Application) resizeOptions() resize.Options {
	settings := app.config.Resize()

	app.handles = nil
	return settings.Options(func(h config.HandleSettings) resize.Target {
		t := newAnchorHandle(app.box, h.Anchor)
		app.handles = append(app.handles, t)
		return t
	})
}

// reportConfigErrors logs and clears settings that fell back to defaults.
func (app *Application) reportConfigErrors() {
	errs := app.config.ConfigErrors()
	if len(errs) == 0 {
		return
	}

	paths := make([]string, 0, len(errs))
	for path := range errs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	log := app.logger.WithComponent("config")
	for _, path := range paths {
		log.Warn("%s: %v; using default", path, errs[path])
	}
	app.config.ClearConfigErrors()
}

// reloadConfig re-reads the config file and reassigns the controller's
// configuration. The box keeps its current geometry.
func (app *Application) reloadConfig() {
	log := app.logger.WithComponent("config")

	app.messageErr = false
	if app.config.Path() == "" {
		app.message = "no config file"
		return
	}

	changed, err := app.config.Reload()
	app.metrics.RecordReload(err)
	if err != nil {
		log.Warn("%v", &ComponentError{Component: "config", Op: "reload", Err: err})
		app.message = "reload failed: " + err.Error()
		app.messageErr = true
		return
	}
	if len(changed) == 0 {
		log.Debug("reload: nothing changed")
		app.message = "config unchanged"
		return
	}

	app.controller.SetConfig(app.resizeOptions())
	if app.opts.Logger == nil && app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(app.config.Logging().Level))
	}
	app.reportConfigErrors()

	log.Info("reloaded: %s", strings.Join(changed, ", "))
	app.message = fmt.Sprintf("config reloaded (%d changed)", len(changed))
}

// startWatcher begins watching the config file.
func (app *Application) startWatcher() error {
	path := app.config.Path()
	if path == "" {
		return nil
	}

	var opts []watcher.Option
	if app.opts.WatchDebounce > 0 {
		opts = append(opts, watcher.WithDebounce(app.opts.WatchDebounce))
	}

	w, err := watcher.New(path, opts...)
	if err != nil {
		return &ComponentError{Component: "watcher", Op: "start", Err: err}
	}
	app.watcher = w
	app.logger.WithComponent("watcher").Debug("watching %s", w.Path())
	return nil
}

// stopWatcher stops the config watcher if running.
func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.WithComponent("watcher").Warn("close: %v", err)
	}
	app.watcher = nil
}
