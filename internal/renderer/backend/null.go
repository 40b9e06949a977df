package backend

import (
	"slices"
	"sync"

	"github.com/rlapin92/ngext-resizable/internal/renderer/core"
)

// NullBackend is an in-memory Backend. Events posted to it are returned by
// PollEvent in order; drawn cells can be read back with GetCell and Row.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         []core.Cell // row-major; nil before Init
	shows         int
	mouse         bool
	events        chan Event
	closed        bool
}

func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

// index returns the offset of x, y in the grid, or -1 when it lies outside
// the screen or nothing has been drawn yet. Callers hold b.mu.
func (b *NullBackend) index(x, y int) int {
	if b.cells == nil || x < 0 || y < 0 || x >= b.width || y >= b.height {
		return -1
	}
	return y*b.width + x
}

func (b *NullBackend) blank() {
	b.cells = slices.Repeat([]core.Cell{core.EmptyCell()}, b.width*b.height)
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blank()
	return nil
}

// Shutdown closes the event queue; a blocked PollEvent returns
// EventClosed. Drawn cells stay readable.
func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(x, y); i >= 0 {
		b.cells[i] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(x, y); i >= 0 {
		return b.cells[i]
	}
	return core.EmptyCell()
}

// Row returns the text of row y.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	start := b.index(0, y)
	if start < 0 {
		return ""
	}
	return core.StringFromCells(b.cells[start : start+b.width])
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	area := rect.Intersection(core.ScreenRect{Right: b.width, Bottom: b.height})
	for y := area.Top; y < area.Bottom; y++ {
		for x := area.Left; x < area.Right; x++ {
			if i := b.index(x, y); i >= 0 {
				b.cells[i] = cell
			}
		}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blank()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

// Shows returns how many frames were shown.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

func (b *NullBackend) HideCursor() {}

func (b *NullBackend) PollEvent() Event {
	if ev, ok := <-b.events; ok {
		return ev
	}
	return Event{Type: EventClosed}
}

// PostEvent queues event. It never blocks: when the queue is full or the
// backend is shut down the event is dropped.
func (b *NullBackend) PostEvent(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	select {
	case b.events <- event:
	default:
	}
}

func (b *NullBackend) EnableMouse()  { b.setMouse(true) }
func (b *NullBackend) DisableMouse() { b.setMouse(false) }

func (b *NullBackend) setMouse(on bool) {
	b.mu.Lock()
	b.mouse = on
	b.mu.Unlock()
}

// MouseEnabled reports whether mouse reporting is on.
func (b *NullBackend) MouseEnabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouse
}

// Resize changes the screen size, blanks it and queues an EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.blank()
	b.mu.Unlock()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
