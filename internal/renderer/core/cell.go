package core

import "github.com/mattn/go-runewidth"

// Cell is one terminal cell. A wide rune occupies two cells: the rune
// with Width 2, then a continuation cell with Rune 0 and Width 0.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell is a blank in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: runewidth.RuneWidth(r), Style: style}
}

// IsContinuation reports whether c is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

func (c Cell) Equals(other Cell) bool {
	return c == other
}

// CellsFromString lays s out as cells. Zero-width runes are dropped.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	for _, r := range s {
		switch w := runewidth.RuneWidth(r); w {
		case 0:
		case 2:
			cells = append(cells, Cell{Rune: r, Width: 2, Style: style}, Cell{Style: style})
		default:
			cells = append(cells, Cell{Rune: r, Width: w, Style: style})
		}
	}
	return cells
}

// StringFromCells is the inverse of CellsFromString.
func StringFromCells(cells []Cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if !c.IsContinuation() {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

// TruncateString shortens s to at most width columns, ending in tail when
// it had to cut.
func TruncateString(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, tail)
}
