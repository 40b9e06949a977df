package resize

// Snapshot is the element geometry and scroll offset captured when a drag
// session starts. Every step of the session is computed against it.
type Snapshot struct {
	Rect   Rect
	Scroll Point
}

// StyleWrite is a single style property assignment.
type StyleWrite struct {
	Property string
	Value    int
}

// Patch is the ordered list of style writes produced by one drag step.
type Patch []StyleWrite

// Get returns the value written for property, if any.
func (p Patch) Get(property string) (int, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Property == property {
			return p[i].Value, true
		}
	}
	return 0, false
}

// Apply writes the patch to el as pixel strings.
func (p Patch) Apply(el StyleSink) {
	for _, w := range p {
		el.SetStyle(w.Property, Pixels(w.Value))
	}
}

// Session is an active drag session.
type Session struct {
	direction Direction
	snapshot  Snapshot
	steps     int
}

// NewSession starts a session in direction d against snapshot s.
func NewSession(d Direction, s Snapshot) *Session {
	return &Session{direction: d.Valid(), snapshot: s}
}

// Direction returns the direction locked in at session start.
func (s *Session) Direction() Direction {
	return s.direction
}

// Snapshot returns the geometry captured at session start.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot
}

// Steps returns the number of drag steps processed.
func (s *Session) Steps() int {
	return s.steps
}

// Step computes the style writes for a pointer at p with the given scroll
// offset. An axis whose new size would fall below min is left out of the
// patch entirely; it is not clamped.
func (s *Session) Step(p Point, scroll Point, min Size) Patch {
	s.steps++
	return step(s.direction, s.snapshot.Rect, p, scroll, min)
}

func step(d Direction, r Rect, p Point, scroll Point, min Size) Patch {
	var patch Patch
	if d.Has(Right) {
		w := p.X - scroll.X - r.Left
		if w >= min.Width {
			patch = append(patch, StyleWrite{PropWidth, w})
		}
	}
	if d.Has(Down) {
		h := p.Y + scroll.Y - r.Top
		if h >= min.Height {
			patch = append(patch, StyleWrite{PropHeight, h})
		}
	}
	if d.Has(Left) {
		w := r.Width + scroll.X + r.Left - p.X
		if w >= min.Width {
			patch = append(patch, StyleWrite{PropLeft, p.X}, StyleWrite{PropWidth, w})
		}
	}
	if d.Has(Up) {
		h := r.Height + scroll.Y + r.Top - p.Y
		if h >= min.Height {
			patch = append(patch, StyleWrite{PropTop, p.Y}, StyleWrite{PropHeight, h})
		}
	}
	return patch
}
