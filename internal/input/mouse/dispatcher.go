package mouse

import "sync"

// Listener receives pointer events.
type Listener func(e *Event)

// Target is a hit-testable region, such as a handle element.
type Target interface {
	Contains(p Position) bool
}

// Source delivers pointer events to listeners.
type Source interface {
	// Subscribe registers a listener for every event with the given action,
	// wherever it happens on the surface.
	Subscribe(action Action, l Listener) *Subscription

	// SubscribeTarget registers a listener for events with the given action
	// whose position lies inside t. Target listeners run before
	// surface-wide listeners for the same event.
	SubscribeTarget(action Action, t Target, l Listener) *Subscription
}

// Subscription is an active listener registration.
type Subscription struct {
	id         uint64
	action     Action
	target     Target
	listener   Listener
	dispatcher *Dispatcher
}

// Unsubscribe removes the listener. Once it returns the listener is not
// called again, even by a dispatch already in progress.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.dispatcher != nil {
		s.dispatcher.unsubscribe(s.id)
	}
}

// Dispatcher fans pointer events out to subscribed listeners.
type Dispatcher struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []*Subscription
	active map[uint64]bool
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{active: make(map[uint64]bool)}
}

// Subscribe implements Source.
func (d *Dispatcher) Subscribe(action Action, l Listener) *Subscription {
	return d.add(action, nil, l)
}

// SubscribeTarget implements Source.
func (d *Dispatcher) SubscribeTarget(action Action, t Target, l Listener) *Subscription {
	return d.add(action, t, l)
}

func (d *Dispatcher) add(action Action, t Target, l Listener) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	s := &Subscription{
		id:         d.nextID,
		action:     action,
		target:     t,
		listener:   l,
		dispatcher: d,
	}
	d.subs = append(d.subs, s)
	d.active[s.id] = true
	return s
}

func (d *Dispatcher) unsubscribe(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.active[id] {
		return
	}
	delete(d.active, id)
	for i, s := range d.subs {
		if s.id == id {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			break
		}
	}
}

// Len returns the number of active subscriptions.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs)
}

// Dispatch delivers e synchronously: first to target listeners whose
// target contains the event position, then to surface-wide listeners, each
// group in registration order.
func (d *Dispatcher) Dispatch(e *Event) {
	d.mu.RLock()
	var targeted, global []*Subscription
	for _, s := range d.subs {
		if s.action != e.Action {
			continue
		}
		if s.target == nil {
			global = append(global, s)
		} else if s.target.Contains(e.Position) {
			targeted = append(targeted, s)
		}
	}
	d.mu.RUnlock()

	for _, s := range targeted {
		d.deliver(s, e)
	}
	for _, s := range global {
		d.deliver(s, e)
	}
}

func (d *Dispatcher) deliver(s *Subscription, e *Event) {
	d.mu.RLock()
	ok := d.active[s.id]
	d.mu.RUnlock()
	if ok {
		s.listener(e)
	}
}
