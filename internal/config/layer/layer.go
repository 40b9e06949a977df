// Package layer stacks configuration maps. A layer from a later source
// overrides one from an earlier source: maps merge key by key and any
// other value, arrays included, replaces what lies below it.
package layer

// Source is where a layer's values came from. Sources are ordered and a
// later source wins.
type Source uint8

const (
	SourceBuiltin Source = iota
	SourceFile
	SourceEnv
	SourceOverride
)

var sourceNames = [...]string{"builtin", "file", "environment", "override"}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "unknown"
}

// Layer is one named set of settings.
type Layer struct {
	Name   string
	Source Source
	Path   string // file the layer was read from, if any
	Data   map[string]any
}

// New returns a layer holding a deep copy of data.
func New(name string, source Source, data map[string]any) *Layer {
	return &Layer{Name: name, Source: source, Data: Clone(data)}
}
