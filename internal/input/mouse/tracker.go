package mouse

import "time"

// Tracker turns button-state reports into press, move and release events.
// Terminals report the set of buttons currently held with every pointer
// report rather than discrete transitions.
type Tracker struct {
	// held is the button currently held.
	held Button

	// lastPos is the last reported position.
	lastPos Position
}

// NewTracker creates a tracker with no button held.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update converts a report of the button held at pos into an event.
// Wheel buttons produce scroll events without changing the held state.
func (t *Tracker) Update(pos Position, button Button, mods Modifier, at time.Time) Event {
	ev := Event{
		Position:  pos,
		Modifiers: mods,
		Timestamp: at,
	}
	t.lastPos = pos

	switch {
	case button.IsScroll():
		ev.Action = ActionScroll
		ev.Button = button
	case t.held == ButtonNone && button != ButtonNone:
		t.held = button
		ev.Action = ActionPress
		ev.Button = button
	case t.held != ButtonNone && button == ButtonNone:
		ev.Action = ActionRelease
		ev.Button = t.held
		t.held = ButtonNone
	default:
		ev.Action = ActionMove
		ev.Button = t.held
	}
	return ev
}

// Held returns the button currently held.
func (t *Tracker) Held() Button {
	return t.held
}

// LastPosition returns the last reported position.
func (t *Tracker) LastPosition() Position {
	return t.lastPos
}

// Reset forgets the held button.
func (t *Tracker) Reset() {
	t.held = ButtonNone
}
