// Package mouse provides the pointer event model used by the resize
// controller.
//
// # Core Types
//
// Event represents a pointer input event with position, button, modifiers
// and action type:
//
//	event := &mouse.Event{
//	    Position:  mouse.Position{X: 100, Y: 50},
//	    Button:    mouse.ButtonLeft,
//	    Action:    mouse.ActionPress,
//	    Timestamp: time.Now(),
//	}
//
// # Dispatcher
//
// Dispatcher is the surface-wide pointer stream. Listeners subscribe per
// action, optionally scoped to a hit-testable Target:
//
//	d := mouse.NewDispatcher()
//	sub := d.Subscribe(mouse.ActionMove, func(e *mouse.Event) { ... })
//	defer sub.Unsubscribe()
//	d.Dispatch(event)
//
// Target-scoped listeners run before surface-wide ones, mirroring how an
// element's own listener fires before a window listener.
//
// # Tracker
//
// Terminal backends report the held button with each pointer report.
// Tracker derives press, move and release transitions from those reports.
package mouse
