package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rlapin92/ngext-resizable/internal/config"
	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

func TestBox_SetStyle(t *testing.T) {
	tests := []struct {
		property string
		value    string
		want     resize.Rect
		writes   int
	}{
		{resize.PropWidth, "250px", resize.Rect{Left: 1, Top: 2, Width: 250, Height: 4}, 1},
		{resize.PropHeight, "7px", resize.Rect{Left: 1, Top: 2, Width: 3, Height: 7}, 1},
		{resize.PropLeft, "-5px", resize.Rect{Left: -5, Top: 2, Width: 3, Height: 4}, 1},
		{resize.PropTop, "9", resize.Rect{Left: 1, Top: 9, Width: 3, Height: 4}, 1},
		{resize.PropWidth, "wide", resize.Rect{Left: 1, Top: 2, Width: 3, Height: 4}, 0},
		{"color", "10px", resize.Rect{Left: 1, Top: 2, Width: 3, Height: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.property+"="+tt.value, func(t *testing.T) {
			box := NewBox(resize.Rect{Left: 1, Top: 2, Width: 3, Height: 4})
			box.SetStyle(tt.property, tt.value)

			if got := box.Rect(); got != tt.want {
				t.Errorf("Rect() = %+v, want %+v", got, tt.want)
			}
			if box.Writes() != tt.writes {
				t.Errorf("Writes() = %d, want %d", box.Writes(), tt.writes)
			}
			if box.BoundingBox() != box.Offset() {
				t.Error("BoundingBox and Offset differ on an unscrolled screen")
			}
		})
	}
}

func TestAnchorHandle_Cell(t *testing.T) {
	box := NewBox(resize.Rect{Left: 10, Top: 5, Width: 20, Height: 8})

	tests := []struct {
		anchor config.Anchor
		want   mouse.Position
	}{
		{config.AnchorTopLeft, mouse.Position{X: 10, Y: 5}},
		{config.AnchorTop, mouse.Position{X: 20, Y: 5}},
		{config.AnchorTopRight, mouse.Position{X: 29, Y: 5}},
		{config.AnchorLeft, mouse.Position{X: 10, Y: 9}},
		{config.AnchorRight, mouse.Position{X: 29, Y: 9}},
		{config.AnchorBottomLeft, mouse.Position{X: 10, Y: 12}},
		{config.AnchorBottom, mouse.Position{X: 20, Y: 12}},
		{config.AnchorBottomRight, mouse.Position{X: 29, Y: 12}},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			h := newAnchorHandle(box, tt.anchor)
			if got := h.Cell(); got != tt.want {
				t.Errorf("Cell() = %+v, want %+v", got, tt.want)
			}
			if !h.Contains(tt.want) {
				t.Error("Contains(Cell()) = false")
			}
			if h.Contains(tt.want.Add(mouse.Position{X: 1})) {
				t.Error("handle covers more than one cell")
			}
		})
	}
}

func TestAnchorHandle_FollowsBox(t *testing.T) {
	box := NewBox(resize.Rect{Left: 0, Top: 0, Width: 10, Height: 10})
	h := newAnchorHandle(box, config.AnchorBottomRight)

	box.SetStyle(resize.PropWidth, "20px")
	if got := h.Cell(); got != (mouse.Position{X: 19, Y: 9}) {
		t.Errorf("Cell() after resize = %+v, want 19,9", got)
	}

	box.SetStyle(resize.PropWidth, "0px")
	box.SetStyle(resize.PropHeight, "0px")
	if got := h.Cell(); got != (mouse.Position{X: 0, Y: 0}) {
		t.Errorf("Cell() of empty box = %+v, want 0,0", got)
	}
}

func TestSessionObserver(t *testing.T) {
	var buf bytes.Buffer
	metrics := NewMetrics()
	o := &sessionObserver{
		logger:  NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf}),
		metrics: metrics,
	}

	o.DragStarted(resize.None, resize.Snapshot{})
	o.DragEnded(resize.None)
	if buf.Len() != 0 || metrics.Snapshot().Sessions != 0 {
		t.Errorf("press without direction was recorded: %q", buf.String())
	}

	o.DragStarted(resize.Down|resize.Right, resize.Snapshot{Rect: resize.Rect{Left: 4, Top: 2, Width: 40, Height: 12}})
	o.Resized(resize.Patch{{Property: resize.PropWidth, Value: 46}})
	o.DragEnded(resize.Down | resize.Right)

	out := buf.String()
	for _, want := range []string{
		"drag started at 40x12+4+2",
		"direction=right|down",
		"resized: 1 writes, width=46",
		"drag ended",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}

	s := metrics.Snapshot()
	if s.Sessions != 1 || s.ResizeSteps != 1 {
		t.Errorf("metrics = %d sessions, %d steps; want 1, 1", s.Sessions, s.ResizeSteps)
	}
}
