package resize

import (
	"sync"

	"github.com/google/uuid"
)

// Arbiter serializes writes to the single root cursor shared by every
// controller attached to the same surface.
//
// The controller that last wrote a resize cursor owns it. A default cursor
// write from a controller that does not own the cursor is dropped, so an
// idle controller cannot reset the cursor shown for another one. A dragging
// controller locks the cursor until its session ends.
type Arbiter struct {
	mu      sync.Mutex
	sink    CursorSink
	owner   uuid.UUID
	locked  bool
	current Cursor
}

// NewArbiter creates an arbiter writing to sink.
func NewArbiter(sink CursorSink) *Arbiter {
	if sink == nil {
		sink = nopCursorSink{}
	}
	return &Arbiter{sink: sink, current: CursorDefault}
}

// Set writes c on behalf of id. It returns false if the write was dropped.
func (a *Arbiter) Set(id uuid.UUID, c Cursor) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.locked && a.owner != id {
		return false
	}
	if c.IsDefault() {
		if a.owner != uuid.Nil && a.owner != id {
			return false
		}
		a.owner = uuid.Nil
	} else {
		a.owner = id
	}

	a.current = c
	a.sink.SetCursor(c)
	return true
}

// Lock makes id the exclusive cursor owner until Unlock or Release.
// It returns false if another owner holds the lock.
func (a *Arbiter) Lock(id uuid.UUID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.locked && a.owner != id {
		return false
	}
	a.owner = id
	a.locked = true
	return true
}

// Unlock drops the lock held by id. Ownership is kept.
func (a *Arbiter) Unlock(id uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.owner == id {
		a.locked = false
	}
}

// Release gives up ownership held by id and restores the default cursor.
func (a *Arbiter) Release(id uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.owner != id {
		return
	}
	a.owner = uuid.Nil
	a.locked = false
	if !a.current.IsDefault() {
		a.current = CursorDefault
		a.sink.SetCursor(CursorDefault)
	}
}

// Owner returns the current owner, uuid.Nil if none.
func (a *Arbiter) Owner() uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.owner
}

// Cursor returns the cursor last written.
func (a *Arbiter) Cursor() Cursor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
