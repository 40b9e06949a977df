package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// tracker is only touched by the goroutine calling PollEvent.
	tracker *mouse.Tracker
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, tracker: mouse.NewTracker()}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent returns the next event. Mouse reports are run through a
// tracker so button transitions arrive as press and release actions.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return t.convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // best-effort; event queue may be full
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse()
}

func (t *Terminal) DisableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
	t.tracker.Reset()
}

var attrTable = []struct {
	attr core.Attribute
	set  func(tcell.Style, bool) tcell.Style
}{
	{core.AttrBold, tcell.Style.Bold},
	{core.AttrDim, tcell.Style.Dim},
	{core.AttrUnderline, func(s tcell.Style, on bool) tcell.Style { return s.Underline(on) }},
	{core.AttrReverse, tcell.Style.Reverse},
}

func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))
	for _, a := range attrTable {
		if s.Attributes.Has(a.attr) {
			style = a.set(style, true)
		}
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	if i, ok := c.Index(); ok {
		return tcell.PaletteColor(int(i))
	}
	if r, g, b, ok := c.RGB(); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// convertEvent maps a tcell event onto the backend's event type.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		me := t.tracker.Update(
			mouse.Position{X: x, Y: y},
			convertMouseButton(e.Buttons()),
			convertMouseMod(e.Modifiers()),
			e.When(),
		)
		return Event{Type: EventMouse, Mouse: me}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// keyTable pairs the keys the host reacts to with their tcell codes.
var keyTable = []struct {
	key   Key
	tcell tcell.Key
}{
	{KeyEscape, tcell.KeyEscape},
	{KeyEnter, tcell.KeyEnter},
	{KeyCtrlC, tcell.KeyCtrlC},
	{KeyCtrlL, tcell.KeyCtrlL},
	{KeyCtrlR, tcell.KeyCtrlR},
}

func convertKey(k tcell.Key) Key {
	if k == tcell.KeyRune {
		return KeyRune
	}
	for _, e := range keyTable {
		if e.tcell == k {
			return e.key
		}
	}
	return KeyNone
}

func convertToTcellKey(k Key) tcell.Key {
	for _, e := range keyTable {
		if e.key == k {
			return e.tcell
		}
	}
	return tcell.KeyRune
}

var modTable = []struct {
	tcell tcell.ModMask
	key   ModMask
	mouse mouse.Modifier
}{
	{tcell.ModShift, ModShift, mouse.ModShift},
	{tcell.ModCtrl, ModCtrl, mouse.ModCtrl},
	{tcell.ModAlt, ModAlt, mouse.ModAlt},
	{tcell.ModMeta, ModMeta, mouse.ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, e := range modTable {
		if m&e.tcell != 0 {
			out |= e.key
		}
	}
	return out
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, e := range modTable {
		if m&e.key != 0 {
			out |= e.tcell
		}
	}
	return out
}

func convertMouseMod(m tcell.ModMask) mouse.Modifier {
	var out mouse.Modifier
	for _, e := range modTable {
		if m&e.tcell != 0 {
			out |= e.mouse
		}
	}
	return out
}

// buttonTable is checked in order; the first bit set in the mask wins.
// tcell numbers the right button 2 and the middle one 3.
var buttonTable = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button3, mouse.ButtonMiddle},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.WheelUp, mouse.ButtonScrollUp},
	{tcell.WheelDown, mouse.ButtonScrollDown},
	{tcell.WheelLeft, mouse.ButtonScrollLeft},
	{tcell.WheelRight, mouse.ButtonScrollRight},
}

// convertMouseButton reduces a tcell button mask to one button. Terminals
// report the buttons held, not transitions.
func convertMouseButton(b tcell.ButtonMask) mouse.Button {
	for _, e := range buttonTable {
		if b&e.mask != 0 {
			return e.button
		}
	}
	return mouse.ButtonNone
}
