package layer

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownLayer is returned when a named layer is not in the stack.
var ErrUnknownLayer = errors.New("unknown layer")

// Stack holds layers ordered by source and merges them on demand. It is
// safe for concurrent use.
type Stack struct {
	mu     sync.Mutex
	layers []*Layer
	merged map[string]any // nil when stale
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Put adds l, replacing any layer with the same name. Layers from the
// same source keep the order they were put in.
func (s *Stack) Put(l *Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.layers = slices.DeleteFunc(s.layers, func(x *Layer) bool { return x.Name == l.Name })
	i := len(s.layers)
	for i > 0 && s.layers[i-1].Source > l.Source {
		i--
	}
	s.layers = slices.Insert(s.layers, i, l)
	s.merged = nil
}

// Replace swaps the data of the named layer.
func (s *Stack) Replace(name string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.find(name)
	if l == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, name)
	}
	l.Data = Clone(data)
	s.merged = nil
	return nil
}

// Layer returns the named layer, or nil.
func (s *Stack) Layer(name string) *Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(name)
}

// Layers returns the layers from lowest to highest precedence.
func (s *Stack) Layers() []*Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.layers)
}

// Merged returns a copy of all layers merged in order.
func (s *Stack) Merged() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.merged == nil {
		s.merged = make(map[string]any)
		for _, l := range s.layers {
			Merge(s.merged, l.Data)
		}
	}
	return Clone(s.merged)
}

// Origin returns the name of the topmost layer that sets path, or "".
func (s *Stack) Origin(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.layers) - 1; i >= 0; i-- {
		if _, ok := Lookup(s.layers[i].Data, path); ok {
			return s.layers[i].Name
		}
	}
	return ""
}

func (s *Stack) find(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}
