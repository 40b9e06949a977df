// Package core holds the drawing vocabulary shared by the host renderer
// and its backends: colors, styles, cells and screen rectangles.
package core
