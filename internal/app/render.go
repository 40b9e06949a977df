package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rlapin92/ngext-resizable/internal/renderer/backend"
	"github.com/rlapin92/ngext-resizable/internal/renderer/core"
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// Scene styles.
var (
	boxStyle    = core.NewStyle(core.ColorWhite)
	hotStyle    = core.NewStyle(core.ColorYellow).Bold()
	handleStyle = core.NewStyle(core.ColorCyan).Bold()
	labelStyle  = core.NewStyle(core.ColorGray)
	statusStyle = core.DefaultStyle().Reverse()
	errorStyle  = core.NewStyle(core.ColorWhite).WithBackground(core.ColorRed).Bold()
)

// stateStyles colors the state badge at the start of the status line.
var stateStyles = map[resize.State]core.Style{
	resize.StateIdle:     core.NewStyle(core.ColorWhite).WithBackground(core.ColorBlue).Bold(),
	resize.StateArmed:    core.NewStyle(core.ColorBlack).WithBackground(core.ColorYellow).Bold(),
	resize.StateDragging: core.NewStyle(core.ColorBlack).WithBackground(core.ColorGreen).Bold(),
}

const (
	handleRune = '■'
	keyHints   = "q quit  ^R reload"
)

// render redraws the whole screen: the box, its handles and the status line.
func (app *Application) render() {
	timer := StartTimer()
	b := app.backend

	width, height := b.Size()
	b.Clear()

	scene := core.ScreenRect{Right: width, Bottom: height - 1}
	app.drawBox(b, scene)
	app.drawHandles(b, scene)
	app.drawStatus(b, width, height)

	b.Show()
	app.metrics.RecordRender(timer.Elapsed())
}

func (app *Application) drawBox(b backend.Backend, clip core.ScreenRect) {
	r := app.box.Rect()
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	hot := app.controller.Direction()

	area := core.RectFromSize(r.Top, r.Left, r.Height, r.Width).Intersection(clip)
	for y := area.Top; y < area.Bottom; y++ {
		for x := area.Left; x < area.Right; x++ {
			edges := edgesAt(r, x, y)
			if edges.IsNone() {
				continue
			}
			style := boxStyle
			if edges.Any(hot) {
				style = hotStyle
			}
			b.SetCell(x, y, core.NewStyledCell(borderRune(edges), style))
		}
	}

	label := fmt.Sprintf("%dx%d", r.Width, r.Height)
	if len(label) <= r.Width-2 && r.Height >= 3 {
		x := r.Left + (r.Width-len(label))/2
		drawText(b, clip, x, r.Top+r.Height/2, label, labelStyle)
	}
}

func (app *Application) drawHandles(b backend.Backend, clip core.ScreenRect) {
	for _, h := range app.handles {
		p := h.Cell()
		if p.X >= clip.Left && p.X < clip.Right && p.Y >= clip.Top && p.Y < clip.Bottom {
			b.SetCell(p.X, p.Y, core.NewStyledCell(handleRune, handleStyle))
		}
	}
}

func (app *Application) drawStatus(b backend.Backend, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	row := core.RectFromSize(y, 0, 1, width)
	b.Fill(row, core.NewStyledCell(' ', statusStyle))

	state := app.controller.State()
	x := drawText(b, row, 0, y, " "+state.String()+" ", stateStyles[state])

	r := app.box.Rect()
	parts := []string{
		fmt.Sprintf("%dx%d at %d,%d", r.Width, r.Height, r.Left, r.Top),
		"cursor " + string(app.cursor),
	}
	line := " " + strings.Join(parts, "  ") + "  "
	x = drawText(b, row, x, y, core.TruncateString(line, max(width-x, 0), "..."), statusStyle)

	if app.message != "" {
		style := statusStyle
		if app.messageErr {
			style = errorStyle
		}
		x = drawText(b, row, x, y, core.TruncateString(app.message, max(width-x, 0), "..."), style)
	}

	hint := "  " + keyHints + " "
	if w := runewidth.StringWidth(hint); x+w <= width {
		drawText(b, row, width-w, y, hint, statusStyle)
	}
}

// drawText writes s starting at x, y, clipped to clip, and returns the
// column after the last cell.
func drawText(b backend.Backend, clip core.ScreenRect, x, y int, s string, style core.Style) int {
	for _, c := range core.CellsFromString(s, style) {
		if y >= clip.Top && y < clip.Bottom && x >= clip.Left && x < clip.Right && !c.IsContinuation() {
			b.SetCell(x, y, c)
		}
		x++
	}
	return x
}

// edgesAt returns the box edges the cell at x, y lies on.
func edgesAt(r resize.Rect, x, y int) resize.Direction {
	var d resize.Direction
	if x == r.Left {
		d |= resize.Left
	}
	if x == r.Right()-1 {
		d |= resize.Right
	}
	if y == r.Top {
		d |= resize.Up
	}
	if y == r.Bottom()-1 {
		d |= resize.Down
	}
	return d
}

func borderRune(edges resize.Direction) rune {
	switch edges {
	case resize.Up | resize.Left:
		return '┌'
	case resize.Up | resize.Right:
		return '┐'
	case resize.Down | resize.Left:
		return '└'
	case resize.Down | resize.Right:
		return '┘'
	case resize.Up, resize.Down:
		return '─'
	case resize.Left, resize.Right:
		return '│'
	default:
		// Boxes one cell wide or tall.
		return '█'
	}
}
