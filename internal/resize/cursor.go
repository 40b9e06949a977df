package resize

// Cursor is a CSS cursor name applied to the root of the interactive surface.
type Cursor string

// Cursor names produced by the detector.
const (
	CursorDefault   Cursor = "inherit"
	CursorNorth     Cursor = "n-resize"
	CursorNorthEast Cursor = "ne-resize"
	CursorEast      Cursor = "e-resize"
	CursorSouthEast Cursor = "se-resize"
	CursorSouth     Cursor = "s-resize"
	CursorSouthWest Cursor = "sw-resize"
	CursorWest      Cursor = "w-resize"
	CursorNorthWest Cursor = "nw-resize"
)

// Cursor maps a direction to its hover cursor. Only single edges and
// adjacent corner pairs have a resize cursor; opposite pairs, three or more
// edges and None map to CursorDefault.
func (d Direction) Cursor() Cursor {
	switch d.Valid() {
	case Down:
		return CursorSouth
	case Down | Left:
		return CursorSouthWest
	case Down | Right:
		return CursorSouthEast
	case Up:
		return CursorNorth
	case Up | Left:
		return CursorNorthWest
	case Up | Right:
		return CursorNorthEast
	case Left:
		return CursorWest
	case Right:
		return CursorEast
	default:
		return CursorDefault
	}
}

// IsDefault returns true for the inherit cursor.
func (c Cursor) IsDefault() bool {
	return c == CursorDefault || c == ""
}

// CursorSink receives root cursor updates.
type CursorSink interface {
	SetCursor(c Cursor)
}

// CursorSinkFunc adapts a function to CursorSink.
type CursorSinkFunc func(c Cursor)

// SetCursor calls f(c).
func (f CursorSinkFunc) SetCursor(c Cursor) {
	f(c)
}

type nopCursorSink struct{}

func (nopCursorSink) SetCursor(Cursor) {}
