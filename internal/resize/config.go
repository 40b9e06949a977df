package resize

// Default border settings.
const (
	DefaultEdgeOffset = 10
)

// Handle binds a trigger target to a fixed direction. A press on the target
// starts a drag session in that direction regardless of hover state.
type Handle struct {
	Target    Target
	Direction Direction
}

// BorderConfig configures resizing by dragging the element's borders.
type BorderConfig struct {
	// Enabled turns hover detection on the borders on or off.
	Enabled bool

	// EdgeOffset is the maximum distance between an edge and the pointer
	// at which the edge is considered hovered.
	EdgeOffset int

	// AllowedDirections masks the edges the detector may report.
	AllowedDirections Direction
}

// Config is a fully resolved controller configuration.
type Config struct {
	Handles []Handle
	MinSize Size
	Border  BorderConfig
}

// DefaultConfig returns the built-in defaults: no handles, no minimum size
// and border dragging enabled on all edges with a 10 unit offset.
func DefaultConfig() Config {
	return Config{
		Border: BorderConfig{
			Enabled:           true,
			EdgeOffset:        DefaultEdgeOffset,
			AllowedDirections: All,
		},
	}
}

// SizeOptions is a partial Size.
type SizeOptions struct {
	Width  *int
	Height *int
}

// BorderOptions is a partial BorderConfig.
type BorderOptions struct {
	Enabled           *bool
	EdgeOffset        *int
	AllowedDirections *Direction
}

// Options is a caller-supplied partial configuration. Nil fields keep the
// value they are merged onto.
type Options struct {
	// Handles replaces the handle list when non-nil. An empty non-nil
	// slice clears it.
	Handles []Handle
	MinSize *SizeOptions
	Border  *BorderOptions
}

// Merge returns c with every field supplied in o applied. Nested objects are
// merged field by field; the handle slice is replaced wholesale.
func (c Config) Merge(o Options) Config {
	if o.Handles != nil {
		c.Handles = append([]Handle(nil), o.Handles...)
	}
	if o.MinSize != nil {
		if o.MinSize.Width != nil {
			c.MinSize.Width = *o.MinSize.Width
		}
		if o.MinSize.Height != nil {
			c.MinSize.Height = *o.MinSize.Height
		}
	}
	if o.Border != nil {
		if o.Border.Enabled != nil {
			c.Border.Enabled = *o.Border.Enabled
		}
		if o.Border.EdgeOffset != nil {
			c.Border.EdgeOffset = *o.Border.EdgeOffset
		}
		if o.Border.AllowedDirections != nil {
			c.Border.AllowedDirections = o.Border.AllowedDirections.Valid()
		}
	}
	return c
}

// Ptr returns a pointer to v, for building Options literals.
func Ptr[T any](v T) *T {
	return &v
}
