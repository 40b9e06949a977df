package resize

// Detect returns the edges of box that p is within edgeOffset of. Each edge
// is tested independently, so corners yield two adjacent edges.
//
// The box is half-open: the left and top edge lines belong to the box, the
// right and bottom ones do not. A pointer on the left edge line is therefore
// hovering Left, while one on the right edge line is outside.
func Detect(box Rect, p Point, edgeOffset int) Direction {
	var d Direction
	if box.Left <= p.X && p.X-box.Left < edgeOffset {
		d |= Left
	}
	if box.Right() > p.X && box.Right()-p.X < edgeOffset {
		d |= Right
	}
	if box.Top <= p.Y && p.Y-box.Top < edgeOffset {
		d |= Up
	}
	if box.Bottom() > p.Y && box.Bottom()-p.Y < edgeOffset {
		d |= Down
	}
	return d
}

// Detector applies the border settings to Detect.
type Detector struct {
	border BorderConfig
}

// NewDetector creates a detector for the given border settings.
func NewDetector(border BorderConfig) Detector {
	return Detector{border: border}
}

// Detect returns the hovered edges, None when border dragging is disabled.
func (d Detector) Detect(box Rect, p Point) Direction {
	if !d.border.Enabled {
		return None
	}
	return Detect(box, p, d.border.EdgeOffset).Intersect(d.border.AllowedDirections)
}
