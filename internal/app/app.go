// Package app provides the terminal host for the resize controller. It
// wires the configuration, the pointer dispatcher, the controller and the
// screen backend together and runs the event loop.
package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rlapin92/ngext-resizable/internal/config"
	"github.com/rlapin92/ngext-resizable/internal/config/watcher"
	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/renderer/backend"
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// Application owns the scene and everything that mutates it.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	config    *config.Config
	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics
	watcher   *watcher.Watcher

	// Pointer input and resizing
	dispatcher *mouse.Dispatcher
	arbiter    *resize.Arbiter
	controller *resize.Controller

	// Scene
	box        *Box
	handles    []*anchorHandle
	cursor     resize.Cursor
	message    string
	messageErr bool

	backend backend.Backend

	// State
	running atomic.Bool
	cancel  context.CancelFunc

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means
	// defaults and environment only.
	ConfigPath string

	// LogLevel overrides logging.level from the configuration.
	LogLevel string

	// LogFile overrides logging.file from the configuration.
	LogFile string

	// Logger is used as is when set; LogLevel and LogFile are ignored.
	Logger *Logger

	// Watch reloads the configuration when the file changes on disk.
	Watch bool

	// WatchDebounce overrides the watcher's debounce interval.
	WatchDebounce time.Duration
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		metrics: NewMetrics(),
		cursor:  resize.CursorDefault,
	}

	if err := app.bootstrap(); err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend, attaches the controller and runs the event
// loop until a quit key, Shutdown or ctx cancellation.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return initError("backend", err)
	}
	defer b.Shutdown()
	b.HideCursor()
	b.EnableMouse()

	ctx, cancel := context.WithCancel(ctx)
	app.mu.Lock()
	app.cancel = cancel
	app.mu.Unlock()
	defer cancel()

	app.controller.Setup(app.dispatcher)
	defer app.controller.Teardown()

	if app.opts.Watch {
		if err := app.startWatcher(); err != nil {
			app.logger.WithComponent("watcher").Warn("%v", err)
		}
		defer app.stopWatcher()
	}

	app.logger.Info("running")
	err := app.eventLoop(ctx, b)

	s := app.metrics.Snapshot()
	app.logger.WithFields(map[string]any{
		"events":   s.EventCount,
		"sessions": s.Sessions,
		"steps":    s.ResizeSteps,
		"reloads":  s.Reloads,
	}).Info("stopped")

	return err
}

// Shutdown stops a running event loop. It is safe to call at any time.
func (app *Application) Shutdown() {
	app.mu.Lock()
	cancel := app.cancel
	app.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Close releases resources held outside Run, such as the log file.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration system.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Box returns the resizable element. Only safe to read while the event
// loop is not running.
func (app *Application) Box() *Box {
	return app.box
}

// Controller returns the resize controller. Only safe to use while the
// event loop is not running.
func (app *Application) Controller() *resize.Controller {
	return app.controller
}

// Cursor returns the cursor last written by the arbiter.
func (app *Application) Cursor() resize.Cursor {
	return app.cursor
}

// Message returns the status message shown after the last reload.
func (app *Application) Message() string {
	return app.message
}

func (app *Application) setCursor(c resize.Cursor) {
	app.cursor = c
}
