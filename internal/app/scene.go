package app

import (
	"github.com/rlapin92/ngext-resizable/internal/config"
	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// Box is the resizable element drawn on the screen. One terminal cell is
// one pixel of its geometry.
type Box struct {
	rect   resize.Rect
	writes int
}

// NewBox creates a box with the given geometry.
func NewBox(r resize.Rect) *Box {
	return &Box{rect: r}
}

// Rect returns the current geometry.
func (b *Box) Rect() resize.Rect {
	return b.rect
}

// Writes returns how many style writes the box has accepted.
func (b *Box) Writes() int {
	return b.writes
}

// SetStyle implements resize.StyleSink. Values that are not pixel strings
// and unknown properties are ignored.
func (b *Box) SetStyle(property, value string) {
	v, ok := resize.ParsePixels(value)
	if !ok {
		return
	}
	switch property {
	case resize.PropLeft:
		b.rect.Left = v
	case resize.PropTop:
		b.rect.Top = v
	case resize.PropWidth:
		b.rect.Width = v
	case resize.PropHeight:
		b.rect.Height = v
	default:
		return
	}
	b.writes++
}

// BoundingBox implements resize.Element. The screen does not scroll, so
// client and layout coordinates coincide.
func (b *Box) BoundingBox() resize.Rect {
	return b.rect
}

// Offset implements resize.Element.
func (b *Box) Offset() resize.Rect {
	return b.rect
}

// anchorHandle is a one-cell handle pinned to an edge or corner of the box.
// Its position follows the box as it is resized.
type anchorHandle struct {
	box    *Box
	anchor config.Anchor
}

func newAnchorHandle(box *Box, anchor config.Anchor) *anchorHandle {
	return &anchorHandle{box: box, anchor: anchor}
}

// Cell returns the screen cell the handle occupies.
func (h *anchorHandle) Cell() mouse.Position {
	r := h.box.Rect()
	d := h.anchor.Direction()

	x := r.Left + r.Width/2
	switch {
	case d.Has(resize.Left):
		x = r.Left
	case d.Has(resize.Right):
		x = max(r.Left, r.Right()-1)
	}

	y := r.Top + r.Height/2
	switch {
	case d.Has(resize.Up):
		y = r.Top
	case d.Has(resize.Down):
		y = max(r.Top, r.Bottom()-1)
	}

	return mouse.Position{X: x, Y: y}
}

// Contains implements mouse.Target.
func (h *anchorHandle) Contains(p mouse.Position) bool {
	return h.Cell().Equal(p)
}
