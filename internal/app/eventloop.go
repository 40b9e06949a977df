package app

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/rlapin92/ngext-resizable/internal/config/watcher"
	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/renderer/backend"
)

// eventLoop is the main application loop. Backend events and config
// changes arrive over channels so that the controller, the scene and the
// config are only ever touched from this goroutine.
func (app *Application) eventLoop(ctx context.Context, b backend.Backend) error {
	events := make(chan backend.Event, 64)
	go readEvents(ctx, b, events)

	var (
		watchEvents <-chan watcher.Event
		watchErrors <-chan error
	)
	if app.watcher != nil {
		watchEvents = app.watcher.Events()
		watchErrors = app.watcher.Errors()
	}

	app.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			timer := StartTimer()
			err := app.dispatchEvent(ev)
			app.metrics.RecordEvent(timer.Elapsed())
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			app.render()

		case wev, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			app.logger.WithComponent("watcher").Debug("%s: %s", wev.Op, wev.Path)
			app.reloadConfig()
			app.render()

		case err, ok := <-watchErrors:
			if !ok {
				watchErrors = nil
				continue
			}
			app.logger.WithComponent("watcher").Warn("%v", err)
		}
	}
}

// readEvents forwards backend events until the backend shuts down or ctx
// is done.
func readEvents(ctx context.Context, b backend.Backend, out chan<- backend.Event) {
	defer close(out)
	for {
		ev := b.PollEvent()
		if ev.Type == backend.EventClosed {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// dispatchEvent handles ev, turning a panic into a logged error so one bad
// event does not take the terminal down in raw mode.
func (app *Application) dispatchEvent(ev backend.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			app.metrics.RecordPanic()
			app.logger.Error("%v", &PanicError{Value: r, Stack: debug.Stack()})
			err = nil
		}
	}()
	return app.handleBackendEvent(ev)
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		return app.handleMouseEvent(ev)
	default:
		return nil
	}
}

// handleResize processes terminal resize events.
func (app *Application) handleResize(ev backend.Event) error {
	app.logger.Debug("terminal resized to %dx%d", ev.Width, ev.Height)
	app.backend.Clear()
	return nil
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyCtrlR:
		app.reloadConfig()
	case backend.KeyCtrlL:
		app.backend.Clear()
	case backend.KeyRune:
		switch ev.Rune {
		case 'q', 'Q':
			return ErrQuit
		case 'r':
			app.reloadConfig()
		}
	}
	return nil
}

// handleMouseEvent feeds pointer events to the dispatcher the controller
// is subscribed to.
func (app *Application) handleMouseEvent(ev backend.Event) error {
	e := ev.Mouse
	if e.Action == mouse.ActionNone || e.Action == mouse.ActionScroll {
		return nil
	}
	app.dispatcher.Dispatch(&e)
	return nil
}
