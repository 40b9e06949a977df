package resize

import (
	"github.com/google/uuid"

	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
)

// Point is a pointer position in client coordinates.
type Point = mouse.Position

// Target is anything that can be hit-tested, such as a handle element.
type Target = mouse.Target

// StyleSink receives style property writes.
type StyleSink interface {
	// SetStyle sets a style property. Geometry values are pixel strings
	// such as "250px".
	SetStyle(property, value string)
}

// Element is the resized element. Its geometry is owned by the host; the
// controller only reads it and writes through SetStyle.
type Element interface {
	StyleSink

	// BoundingBox returns the element box in client coordinates.
	BoundingBox() Rect

	// Offset returns the element's layout geometry: its left, top, width
	// and height as the style properties see them.
	Offset() Rect
}

// Viewport reports the scroll offset of the interactive surface.
type Viewport interface {
	ScrollOffset() Point
}

type zeroViewport struct{}

func (zeroViewport) ScrollOffset() Point { return Point{} }

// Observer is notified about drag session transitions.
type Observer interface {
	DragStarted(d Direction, s Snapshot)
	Resized(p Patch)
	DragEnded(d Direction)
}

// State is the controller state.
type State int

const (
	// StateIdle runs hover detection on every move.
	StateIdle State = iota
	// StateArmed is entered on press; the session snapshot is taken.
	StateArmed
	// StateDragging is entered on the first move after press.
	StateDragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithViewport sets the scroll offset source. Without one the offset is zero.
func WithViewport(v Viewport) Option {
	return func(c *Controller) {
		if v != nil {
			c.viewport = v
		}
	}
}

// WithCursorSink writes cursors to sink through a private Arbiter.
func WithCursorSink(sink CursorSink) Option {
	return func(c *Controller) {
		c.arbiter = NewArbiter(sink)
	}
}

// WithArbiter shares an Arbiter between controllers on the same surface.
func WithArbiter(a *Arbiter) Option {
	return func(c *Controller) {
		if a != nil {
			c.arbiter = a
		}
	}
}

// WithObserver registers an observer for drag transitions.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// Controller is the drag session state machine for one element.
type Controller struct {
	id       uuid.UUID
	element  Element
	viewport Viewport
	arbiter  *Arbiter
	observer Observer

	config   Config
	detector Detector

	state     State
	direction Direction
	session   *Session

	source     mouse.Source
	subs       []*mouse.Subscription
	handleSubs []*mouse.Subscription
}

// NewController creates a controller for el. opts is merged onto
// DefaultConfig.
func NewController(el Element, opts Options, options ...Option) *Controller {
	c := &Controller{
		id:       uuid.New(),
		element:  el,
		viewport: zeroViewport{},
	}
	for _, opt := range options {
		opt(c)
	}
	if c.arbiter == nil {
		c.arbiter = NewArbiter(nil)
	}
	c.applyConfig(opts)
	return c
}

// ID returns the controller identity used for cursor ownership.
func (c *Controller) ID() uuid.UUID {
	return c.id
}

// Config returns the resolved configuration.
func (c *Controller) Config() Config {
	return c.config
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Direction returns the hover direction while idle or the session
// direction while a drag is active.
func (c *Controller) Direction() Direction {
	if c.session != nil {
		return c.session.Direction()
	}
	return c.direction
}

// Session returns the active session, nil when idle.
func (c *Controller) Session() *Session {
	return c.session
}

// Attached returns true between Setup and Teardown.
func (c *Controller) Attached() bool {
	return c.source != nil
}

// SetConfig replaces the configuration, merging opts onto the defaults.
// Handle listeners are re-registered when attached. An active session
// keeps its direction and snapshot.
func (c *Controller) SetConfig(opts Options) {
	c.applyConfig(opts)
	if c.source != nil {
		c.unsubscribeHandles()
		c.subscribeHandles()
	}
}

func (c *Controller) applyConfig(opts Options) {
	c.config = DefaultConfig().Merge(opts)
	c.detector = NewDetector(c.config.Border)
}

// Setup attaches the controller to src. Calling it again while attached
// does nothing.
func (c *Controller) Setup(src mouse.Source) {
	if c.source != nil || src == nil {
		return
	}
	c.source = src
	c.subscribeHandles()
	c.subs = append(c.subs,
		src.Subscribe(mouse.ActionPress, c.onPress),
		src.Subscribe(mouse.ActionMove, c.onMove),
		src.Subscribe(mouse.ActionRelease, c.onRelease),
	)
}

// Teardown detaches the controller. Every listener is removed before it
// returns, so no style or cursor write can follow. Cursor ownership is
// released.
func (c *Controller) Teardown() {
	if c.source == nil {
		return
	}
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
	c.unsubscribeHandles()
	c.source = nil

	c.state = StateIdle
	c.session = nil
	c.direction = None
	c.arbiter.Release(c.id)
}

func (c *Controller) subscribeHandles() {
	for _, h := range c.config.Handles {
		if h.Target == nil {
			continue
		}
		d := h.Direction.Valid()
		c.handleSubs = append(c.handleSubs,
			c.source.SubscribeTarget(mouse.ActionPress, h.Target, func(e *mouse.Event) {
				if e.Button == mouse.ButtonLeft {
					c.direction = d
				}
			}))
	}
}

func (c *Controller) unsubscribeHandles() {
	for _, s := range c.handleSubs {
		s.Unsubscribe()
	}
	c.handleSubs = nil
}

func (c *Controller) onPress(e *mouse.Event) {
	if e.Button != mouse.ButtonLeft || c.state != StateIdle {
		return
	}

	snap := Snapshot{
		Rect:   c.element.Offset(),
		Scroll: c.viewport.ScrollOffset(),
	}
	c.session = NewSession(c.direction, snap)
	c.state = StateArmed
	if !c.direction.IsNone() {
		c.arbiter.Lock(c.id)
	}
	if c.observer != nil {
		c.observer.DragStarted(c.direction, snap)
	}
}

func (c *Controller) onMove(e *mouse.Event) {
	if c.state == StateIdle {
		c.direction = c.detector.Detect(c.element.BoundingBox(), e.Position)
		c.arbiter.Set(c.id, c.direction.Cursor())
		return
	}

	c.state = StateDragging
	e.PreventDefault()
	patch := c.session.Step(e.Position, c.viewport.ScrollOffset(), c.config.MinSize)
	if len(patch) == 0 {
		return
	}
	patch.Apply(c.element)
	if c.observer != nil {
		c.observer.Resized(patch)
	}
}

func (c *Controller) onRelease(_ *mouse.Event) {
	if c.state == StateIdle {
		return
	}
	d := c.session.Direction()
	c.state = StateIdle
	c.session = nil
	c.direction = None
	c.arbiter.Unlock(c.id)
	if c.observer != nil {
		c.observer.DragEnded(d)
	}
}
