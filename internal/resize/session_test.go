package resize

import "testing"

func TestStepRight(t *testing.T) {
	s := NewSession(Right, Snapshot{Rect: Rect{Left: 100, Top: 100, Width: 200, Height: 150}})

	patch := s.Step(Point{X: 350, Y: 0}, Point{}, Size{})

	if w, ok := patch.Get(PropWidth); !ok || w != 250 {
		t.Errorf("width = %d, %v; want 250, true", w, ok)
	}
	if len(patch) != 1 {
		t.Errorf("patch = %v, want a single width write", patch)
	}
}

func TestStepLeftBelowMinimum(t *testing.T) {
	s := NewSession(Left, Snapshot{Rect: Rect{Left: 100, Top: 100, Width: 200, Height: 150}})

	patch := s.Step(Point{X: 170, Y: 0}, Point{}, Size{Width: 150})

	if len(patch) != 0 {
		t.Errorf("patch = %v, want no writes", patch)
	}
}

func TestStepLeftWritesPosition(t *testing.T) {
	s := NewSession(Left, Snapshot{Rect: Rect{Left: 100, Top: 100, Width: 200, Height: 150}})

	patch := s.Step(Point{X: 80, Y: 0}, Point{}, Size{})

	want := Patch{{PropLeft, 80}, {PropWidth, 220}}
	if !patchEqual(patch, want) {
		t.Errorf("patch = %v, want %v", patch, want)
	}
}

func TestStepUpAndDown(t *testing.T) {
	r := Rect{Left: 100, Top: 100, Width: 200, Height: 150}

	down := NewSession(Down, Snapshot{Rect: r}).Step(Point{X: 0, Y: 300}, Point{Y: 5}, Size{})
	if h, _ := down.Get(PropHeight); h != 205 {
		t.Errorf("down height = %d, want 205", h)
	}

	up := NewSession(Up, Snapshot{Rect: r}).Step(Point{X: 0, Y: 90}, Point{}, Size{})
	want := Patch{{PropTop, 90}, {PropHeight, 160}}
	if !patchEqual(up, want) {
		t.Errorf("up patch = %v, want %v", up, want)
	}
}

func TestStepScrollOffsets(t *testing.T) {
	r := Rect{Left: 100, Top: 100, Width: 200, Height: 150}
	scroll := Point{X: 7, Y: 3}

	right := NewSession(Right, Snapshot{Rect: r}).Step(Point{X: 350, Y: 0}, scroll, Size{})
	if w, _ := right.Get(PropWidth); w != 243 {
		t.Errorf("right width = %d, want 243", w)
	}

	left := NewSession(Left, Snapshot{Rect: r}).Step(Point{X: 80, Y: 0}, scroll, Size{})
	if w, _ := left.Get(PropWidth); w != 227 {
		t.Errorf("left width = %d, want 227", w)
	}

	up := NewSession(Up, Snapshot{Rect: r}).Step(Point{X: 0, Y: 90}, scroll, Size{})
	if h, _ := up.Get(PropHeight); h != 163 {
		t.Errorf("up height = %d, want 163", h)
	}
}

func TestStepCornerAppliesBothAxes(t *testing.T) {
	s := NewSession(Down|Right, Snapshot{Rect: Rect{Left: 10, Top: 10, Width: 20, Height: 20}})

	patch := s.Step(Point{X: 50, Y: 45}, Point{}, Size{Width: 5, Height: 5})

	want := Patch{{PropWidth, 40}, {PropHeight, 35}}
	if !patchEqual(patch, want) {
		t.Errorf("patch = %v, want %v", patch, want)
	}
	if s.Steps() != 1 {
		t.Errorf("Steps() = %d, want 1", s.Steps())
	}
}

func TestStepMinimumPerAxis(t *testing.T) {
	s := NewSession(Down|Right, Snapshot{Rect: Rect{Left: 10, Top: 10, Width: 20, Height: 20}})

	// Width 5 is below the minimum and dropped, height 30 is applied.
	patch := s.Step(Point{X: 15, Y: 40}, Point{}, Size{Width: 10, Height: 10})

	want := Patch{{PropHeight, 30}}
	if !patchEqual(patch, want) {
		t.Errorf("patch = %v, want %v", patch, want)
	}
}

func TestStepMinimumIsInclusive(t *testing.T) {
	s := NewSession(Right, Snapshot{Rect: Rect{Left: 0, Width: 50}})

	patch := s.Step(Point{X: 10}, Point{}, Size{Width: 10})

	if w, ok := patch.Get(PropWidth); !ok || w != 10 {
		t.Errorf("width = %d, %v; want 10, true", w, ok)
	}
}

func TestStepNoneDirection(t *testing.T) {
	s := NewSession(None, Snapshot{Rect: Rect{Width: 10, Height: 10}})
	if patch := s.Step(Point{X: 100, Y: 100}, Point{}, Size{}); len(patch) != 0 {
		t.Errorf("patch = %v, want none", patch)
	}
}

func patchEqual(a, b Patch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
