package config

import (
	"fmt"
	"strings"

	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// Defaults for the terminal host. Cells are much coarser than pixels, so
// the edge offset is smaller than the controller's built-in one.
const (
	DefaultEdgeOffset  = 2
	DefaultSceneLeft   = 4
	DefaultSceneTop    = 2
	DefaultSceneWidth  = 40
	DefaultSceneHeight = 12
)

// Anchor names the edge or corner of the element a handle sits on.
type Anchor string

const (
	AnchorTopLeft     Anchor = "top-left"
	AnchorTop         Anchor = "top"
	AnchorTopRight    Anchor = "top-right"
	AnchorLeft        Anchor = "left"
	AnchorRight       Anchor = "right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottom      Anchor = "bottom"
	AnchorBottomRight Anchor = "bottom-right"
)

var anchorDirections = map[Anchor]resize.Direction{
	AnchorTopLeft:     resize.Up | resize.Left,
	AnchorTop:         resize.Up,
	AnchorTopRight:    resize.Up | resize.Right,
	AnchorLeft:        resize.Left,
	AnchorRight:       resize.Right,
	AnchorBottomLeft:  resize.Down | resize.Left,
	AnchorBottom:      resize.Down,
	AnchorBottomRight: resize.Down | resize.Right,
}

// ParseAnchor parses an anchor name, case-insensitively.
func ParseAnchor(s string) (Anchor, bool) {
	a := Anchor(strings.ToLower(strings.TrimSpace(s)))
	_, ok := anchorDirections[a]
	return a, ok
}

// Direction returns the resize direction natural to the anchor.
func (a Anchor) Direction() resize.Direction {
	return anchorDirections[a]
}

// HandleSettings is one configured handle.
type HandleSettings struct {
	Anchor    Anchor
	Direction resize.Direction
}

// ResizeSettings holds the resolved resize section.
type ResizeSettings struct {
	MinWidth          int
	MinHeight         int
	BorderEnabled     bool
	EdgeOffset        int
	AllowedDirections resize.Direction
	Handles           []HandleSettings
}

// Options converts the settings into controller options. resolve maps a
// handle to the target that triggers it; handles it returns nil for are
// dropped.
func (s ResizeSettings) Options(resolve func(HandleSettings) resize.Target) resize.Options {
	handles := make([]resize.Handle, 0, len(s.Handles))
	if resolve != nil {
		for _, h := range s.Handles {
			if target := resolve(h); target != nil {
				handles = append(handles, resize.Handle{Target: target, Direction: h.Direction})
			}
		}
	}
	return resize.Options{
		Handles: handles,
		MinSize: &resize.SizeOptions{
			Width:  resize.Ptr(s.MinWidth),
			Height: resize.Ptr(s.MinHeight),
		},
		Border: &resize.BorderOptions{
			Enabled:           resize.Ptr(s.BorderEnabled),
			EdgeOffset:        resize.Ptr(s.EdgeOffset),
			AllowedDirections: resize.Ptr(s.AllowedDirections),
		},
	}
}

// Resize returns the resize section. Invalid values fall back to their
// defaults and are recorded in ConfigErrors.
func (c *Config) Resize() ResizeSettings {
	return ResizeSettings{
		MinWidth:          c.getNonNegativeOr("resize.min_size.width", 0),
		MinHeight:         c.getNonNegativeOr("resize.min_size.height", 0),
		BorderEnabled:     c.getBoolOr("resize.border.enabled", true),
		EdgeOffset:        c.getNonNegativeOr("resize.border.edge_offset", DefaultEdgeOffset),
		AllowedDirections: c.getDirectionOr("resize.border.allowed_directions", resize.All),
		Handles:           c.handles("resize.handles"),
	}
}

// SceneConfig is the initial geometry of the demo element.
type SceneConfig struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Rect returns the scene geometry as a rectangle.
func (s SceneConfig) Rect() resize.Rect {
	return resize.Rect{Left: s.Left, Top: s.Top, Width: s.Width, Height: s.Height}
}

// Scene returns the scene section.
func (c *Config) Scene() SceneConfig {
	return SceneConfig{
		Left:   c.getNonNegativeOr("scene.left", DefaultSceneLeft),
		Top:    c.getNonNegativeOr("scene.top", DefaultSceneTop),
		Width:  c.getNonNegativeOr("scene.width", DefaultSceneWidth),
		Height: c.getNonNegativeOr("scene.height", DefaultSceneHeight),
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string
	File  string
}

// Logging returns the logging section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "info"),
		File:  c.getStringOr("logging.file", ""),
	}
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getNonNegativeOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	if v < 0 {
		c.recordConfigError(path, &ValidationError{Path: path, Message: "must not be negative", Value: v})
		return defaultValue
	}
	return v
}

// getDirectionOr reads a direction given either as a string ("up|left")
// or as a list of names.
func (c *Config) getDirectionOr(path string, defaultValue resize.Direction) resize.Direction {
	v, ok := c.Get(path)
	if !ok {
		return defaultValue
	}
	d, err := parseDirectionValue(path, v)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return d
}

func parseDirectionValue(path string, v any) (resize.Direction, error) {
	switch val := v.(type) {
	case string:
		d, ok := resize.ParseDirection(val)
		if !ok {
			return resize.None, &ValidationError{Path: path, Message: "unknown direction", Value: val}
		}
		return d, nil
	case []any:
		var d resize.Direction
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return resize.None, &TypeError{Path: path, Expected: "[]string", Actual: typeName(v)}
			}
			part, ok := resize.ParseDirection(s)
			if !ok {
				return resize.None, &ValidationError{Path: path, Message: "unknown direction", Value: s}
			}
			d = d.Union(part)
		}
		return d, nil
	default:
		return resize.None, &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
}

// handles reads the handle list. Entries with an unknown anchor or
// direction are skipped. A missing direction defaults to the anchor's.
func (c *Config) handles(path string) []HandleSettings {
	v, ok := c.Get(path)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		c.recordConfigError(path, &TypeError{Path: path, Expected: "[]any", Actual: typeName(v)})
		return nil
	}

	result := make([]HandleSettings, 0, len(list))
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		entry, ok := item.(map[string]any)
		if !ok {
			c.recordConfigError(itemPath, &TypeError{Path: itemPath, Expected: "map", Actual: typeName(item)})
			continue
		}

		name, _ := entry["anchor"].(string)
		anchor, ok := ParseAnchor(name)
		if !ok {
			c.recordConfigError(itemPath, &ValidationError{Path: itemPath + ".anchor", Message: "unknown anchor", Value: entry["anchor"]})
			continue
		}

		dir := anchor.Direction()
		if raw, ok := entry["direction"]; ok {
			d, err := parseDirectionValue(itemPath+".direction", raw)
			if err != nil {
				c.recordConfigError(itemPath, err)
				continue
			}
			dir = d
		}

		result = append(result, HandleSettings{Anchor: anchor, Direction: dir})
	}
	return result
}
