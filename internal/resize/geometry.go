package resize

import "strconv"

// Size is a width and height pair.
type Size struct {
	Width  int
	Height int
}

// Rect is an element box. Left and Top are the position of the top-left
// corner; Right and Bottom are exclusive.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Size returns the width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains returns true if p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Style property names written by the controller.
const (
	PropWidth  = "width"
	PropHeight = "height"
	PropLeft   = "left"
	PropTop    = "top"
)

// Pixels formats v as a pixel-valued style string.
func Pixels(v int) string {
	return strconv.Itoa(v) + "px"
}

// ParsePixels parses a pixel-valued style string such as "250px". A bare
// integer is accepted too.
func ParsePixels(s string) (int, bool) {
	if len(s) > 2 && s[len(s)-2:] == "px" {
		s = s[:len(s)-2]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
