package mouse

import "time"

// Button is the button a pointer event concerns. Wheel ticks are reported
// as scroll buttons.
type Button uint8

// Pointer buttons.
const (
	// ButtonNone is reported for movement with no button held.
	ButtonNone Button = iota
	// ButtonLeft is the primary button. Only it starts a resize.
	ButtonLeft
	// ButtonMiddle is the wheel button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonScrollUp is a wheel tick away from the user.
	ButtonScrollUp
	// ButtonScrollDown is a wheel tick toward the user.
	ButtonScrollDown
	// ButtonScrollLeft is a horizontal wheel tick to the left.
	ButtonScrollLeft
	// ButtonScrollRight is a horizontal wheel tick to the right.
	ButtonScrollRight
)

var buttonNames = [...]string{
	"none", "left", "middle", "right",
	"scroll-up", "scroll-down", "scroll-left", "scroll-right",
}

// String returns the lower-case button name, or "none" for values out of
// range.
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "none"
}

// IsScroll reports whether b is one of the wheel directions.
func (b Button) IsScroll() bool {
	return b >= ButtonScrollUp && b <= ButtonScrollRight
}

// Action is what happened: pointer-down, pointer-up, movement or a wheel
// tick.
type Action uint8

// Pointer actions.
const (
	// ActionNone marks an event the backend could not classify.
	ActionNone Action = iota
	// ActionPress is a button going down.
	ActionPress
	// ActionRelease is a button coming up.
	ActionRelease
	// ActionMove is reported with or without a button held.
	ActionMove
	// ActionScroll is a wheel tick.
	ActionScroll
)

var actionNames = [...]string{"none", "press", "release", "move", "scroll"}

// String returns the lower-case action name, or "none" for values out of
// range.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "none"
}

// Modifier is a set of keyboard modifiers held during a pointer event.
// The zero value means no modifier.
type Modifier uint8

// Keyboard modifiers.
const (
	// ModShift is the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl is the Control key.
	ModCtrl
	// ModAlt is the Alt or Option key.
	ModAlt
	// ModMeta is the Meta or Command key.
	ModMeta
)

// Has reports whether any modifier in mod is set in m.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Position is a point in screen coordinates.
type Position struct {
	X, Y int
}

// Equal reports whether p and other are the same point.
func (p Position) Equal(other Position) bool {
	return p == other
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from d to p.
func (p Position) Sub(d Position) Position {
	return Position{X: p.X - d.X, Y: p.Y - d.Y}
}

// Event is one pointer event. Listeners receive a pointer so that any of
// them can call PreventDefault.
type Event struct {
	Position  Position
	Button    Button
	Modifiers Modifier
	Action    Action
	Timestamp time.Time

	defaultPrevented bool
}

// PreventDefault marks the event so the host skips its native handling,
// such as text selection.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
