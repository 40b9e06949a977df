package resize

import "strings"

// Direction is a set of element edges involved in a resize.
type Direction uint8

const (
	// None is the empty set.
	None Direction = 0
	// Up is the top edge.
	Up Direction = 1 << 1
	// Left is the left edge.
	Left Direction = 1 << 2
	// Right is the right edge.
	Right Direction = 1 << 3
	// Down is the bottom edge.
	Down Direction = 1 << 4
	// All is the union of every edge.
	All = Up | Left | Right | Down
)

// Has returns true if every edge in other is also in d.
// Has(None) is always true.
func (d Direction) Has(other Direction) bool {
	return d&other == other
}

// Any returns true if d and other share at least one edge.
func (d Direction) Any(other Direction) bool {
	return d&other != 0
}

// Union returns the edges in either set.
func (d Direction) Union(other Direction) Direction {
	return d | other
}

// Intersect returns the edges present in both sets.
func (d Direction) Intersect(other Direction) Direction {
	return d & other
}

// Without returns d with the edges of other removed.
func (d Direction) Without(other Direction) Direction {
	return d &^ other
}

// IsNone returns true if no edge is set.
func (d Direction) IsNone() bool {
	return d.Valid() == None
}

// Valid strips bits that do not name an edge.
func (d Direction) Valid() Direction {
	return d & All
}

var directionNames = []struct {
	dir  Direction
	name string
}{
	{Up, "up"},
	{Left, "left"},
	{Right, "right"},
	{Down, "down"},
}

// String returns the edges joined by "|", "none" for the empty set and
// "all" for the full set.
func (d Direction) String() string {
	d = d.Valid()
	switch d {
	case None:
		return "none"
	case All:
		return "all"
	}

	parts := make([]string, 0, 4)
	for _, n := range directionNames {
		if d.Has(n.dir) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseDirection parses a direction expression such as "up|left",
// "down, right" or "all". Names are case-insensitive. The second return
// value is false if any name is unknown; known names are still applied.
func ParseDirection(s string) (Direction, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t'
	})

	var d Direction
	ok := true
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "up", "top", "north", "n":
			d |= Up
		case "left", "west", "w":
			d |= Left
		case "right", "east", "e":
			d |= Right
		case "down", "bottom", "south", "s":
			d |= Down
		case "all":
			d |= All
		case "none":
		default:
			ok = false
		}
	}
	return d, ok
}
