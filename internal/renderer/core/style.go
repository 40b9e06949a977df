package core

import "fmt"

type colorKind uint8

const (
	kindDefault colorKind = iota
	kindPalette
	kindRGB
)

// Color is the terminal's default color, a palette entry or a 24-bit RGB
// value. The zero value is the default color. Colors are comparable.
type Color struct {
	kind colorKind
	val  uint32 // palette index or 0xRRGGBB
}

// ColorDefault is the terminal's own foreground or background.
var ColorDefault = Color{}

// Palette colors used by the host.
var (
	ColorBlack  = ColorFromIndex(0)
	ColorRed    = ColorFromIndex(1)
	ColorGreen  = ColorFromIndex(2)
	ColorYellow = ColorFromIndex(3)
	ColorBlue   = ColorFromIndex(4)
	ColorCyan   = ColorFromIndex(6)
	ColorWhite  = ColorFromIndex(7)
	ColorGray   = ColorFromIndex(8)
)

func ColorFromIndex(index uint8) Color {
	return Color{kind: kindPalette, val: uint32(index)}
}

func ColorFromRGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, val: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

func (c Color) IsDefault() bool {
	return c.kind == kindDefault
}

// Index returns the palette index of a palette color.
func (c Color) Index() (uint8, bool) {
	return uint8(c.val), c.kind == kindPalette
}

// RGB returns the components of an RGB color.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return uint8(c.val >> 16), uint8(c.val >> 8), uint8(c.val), c.kind == kindRGB
}

func (c Color) Equals(other Color) bool {
	return c == other
}

func (c Color) String() string {
	switch c.kind {
	case kindPalette:
		return fmt.Sprintf("idx(%d)", c.val)
	case kindRGB:
		return fmt.Sprintf("#%06X", c.val)
	default:
		return "default"
	}
}

// Attribute is a set of text attributes.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrReverse
	AttrUnderline
)

func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Style is a foreground, background and attribute set. The zero value is
// the terminal's default style.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

func DefaultStyle() Style {
	return Style{}
}

// NewStyle returns fg on the default background.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg}
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

func (s Style) Equals(other Style) bool {
	return s == other
}
