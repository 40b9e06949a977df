package app

import (
	"errors"
	"fmt"
)

var (
	// ErrQuit is returned by key handling to end the event loop normally.
	ErrQuit = errors.New("quit requested")

	ErrAlreadyRunning = errors.New("application already running")
	ErrNoBackend      = errors.New("no backend configured")
)

// ComponentError ties a failure to the part of the host it came from, such
// as {Component: "config", Op: "reload"}. Startup failures use Op "init".
type ComponentError struct {
	Component string
	Op        string
	Err       error
}

func (e *ComponentError) Error() string {
	msg := e.Component
	if e.Op != "" {
		msg += " " + e.Op
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

func initError(component string, err error) error {
	return &ComponentError{Component: component, Op: "init", Err: err}
}

// PanicError is a panic recovered while handling a single event.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if len(e.Stack) == 0 {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}
