package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rlapin92/ngext-resizable/internal/config"
	"github.com/rlapin92/ngext-resizable/internal/input/mouse"
	"github.com/rlapin92/ngext-resizable/internal/renderer/backend"
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// The default scene is a 40x12 box at 4,2; its right edge line is column
// 44 and its bottom edge line is row 14.
var defaultRect = resize.Rect{Left: 4, Top: 2, Width: 40, Height: 12}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func configPath(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resizable.toml")
	writeConfig(t, path, content)
	return path
}

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	b := backend.NewNullBackend(80, 24)
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() error = %v", err)
	}
	return app, b
}

// runEvents queues events followed by a quit key and runs the loop to
// completion.
func runEvents(t *testing.T, app *Application, b *backend.NullBackend, events ...backend.Event) {
	t.Helper()
	for _, ev := range events {
		b.PostEvent(ev)
	}
	b.PostEvent(runeKey('q'))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() did not reach the quit key")
	}
}

// shownCursor returns the cursor named in the last frame's status line.
// Run's teardown resets the arbiter after the final frame, so this is the
// cursor the loop left behind when the quit key arrived.
func shownCursor(t *testing.T, b *backend.NullBackend) resize.Cursor {
	t.Helper()
	_, h := b.Size()
	row := b.Row(h - 1)
	_, rest, ok := strings.Cut(row, "cursor ")
	if !ok {
		t.Fatalf("status line %q names no cursor", row)
	}
	name, _, _ := strings.Cut(rest, " ")
	return resize.Cursor(name)
}

func pointer(action mouse.Action, button mouse.Button, x, y int) backend.Event {
	return backend.Event{
		Type: backend.EventMouse,
		Mouse: mouse.Event{
			Action:   action,
			Button:   button,
			Position: mouse.Position{X: x, Y: y},
		},
	}
}

func hover(x, y int) backend.Event   { return pointer(mouse.ActionMove, mouse.ButtonNone, x, y) }
func press(x, y int) backend.Event   { return pointer(mouse.ActionPress, mouse.ButtonLeft, x, y) }
func drag(x, y int) backend.Event    { return pointer(mouse.ActionMove, mouse.ButtonLeft, x, y) }
func release(x, y int) backend.Event { return pointer(mouse.ActionRelease, mouse.ButtonLeft, x, y) }

func runeKey(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func key(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func TestNewApplication(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	if app.Config() == nil || app.Controller() == nil || app.Box() == nil || app.Metrics() == nil {
		t.Fatal("expected core components to be initialized")
	}
	if got := app.Box().Rect(); got != defaultRect {
		t.Errorf("Box().Rect() = %+v, want %+v", got, defaultRect)
	}
	if app.Cursor() != resize.CursorDefault {
		t.Errorf("Cursor() = %q, want %q", app.Cursor(), resize.CursorDefault)
	}
	if got := app.Controller().Config().Border.EdgeOffset; got != config.DefaultEdgeOffset {
		t.Errorf("EdgeOffset = %d, want %d", got, config.DefaultEdgeOffset)
	}
	if app.IsRunning() {
		t.Error("expected IsRunning() to be false before Run()")
	}
	if app.Controller().Attached() {
		t.Error("controller attached before Run()")
	}
}

func TestNewApplication_InvalidConfig(t *testing.T) {
	path := configPath(t, "[resize.border\nenabled = true\n")

	_, err := New(Options{ConfigPath: path, Logger: NullLogger})
	var ce *ComponentError
	if !errors.As(err, &ce) {
		t.Fatalf("New() error = %v, want *ComponentError", err)
	}
	if ce.Component != "config" || ce.Op != "init" {
		t.Errorf("error = %s %s, want config init", ce.Component, ce.Op)
	}
}

func TestNewApplication_LogOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "resizable.yaml")
	writeConfig(t, cfgPath, "logging:\n  level: error\n")
	logPath := filepath.Join(dir, "resizable.log")

	app, err := New(Options{ConfigPath: cfgPath, LogLevel: "debug", LogFile: logPath})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := app.Logger().Level(); got != LogLevelDebug {
		t.Errorf("Logger().Level() = %v, want DEBUG", got)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "configuration loaded from "+cfgPath) {
		t.Errorf("log = %q, want startup line", data)
	}
}

func TestNewApplication_ReportsBadSettings(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "resizable.toml")
	writeConfig(t, cfgPath, `
[logging]
level = "warn"

[resize.border]
edge_offset = -3
`)
	logPath := filepath.Join(dir, "resizable.log")

	app, err := New(Options{ConfigPath: cfgPath, LogFile: logPath})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_ = app.Close()

	if got := app.Controller().Config().Border.EdgeOffset; got != config.DefaultEdgeOffset {
		t.Errorf("EdgeOffset = %d, want default %d", got, config.DefaultEdgeOffset)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "resize.border.edge_offset") {
		t.Errorf("log = %q, want warning for edge_offset", data)
	}
}

func TestApplication_RunWithoutBackend(t *testing.T) {
	app, err := New(Options{Logger: NullLogger})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := app.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() error = %v, want ErrNoBackend", err)
	}
}

func TestApplication_RunCancelledContext(t *testing.T) {
	app, b := newTestApp(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if b.Shows() == 0 {
		t.Error("expected an initial render")
	}
	if !b.MouseEnabled() {
		t.Error("expected mouse reporting to be enabled")
	}
	if app.Controller().Attached() {
		t.Error("controller still attached after Run()")
	}
	app.Shutdown()
}

func TestApplication_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   backend.Event
	}{
		{"q", runeKey('q')},
		{"Q", runeKey('Q')},
		{"escape", key(backend.KeyEscape)},
		{"ctrl-c", key(backend.KeyCtrlC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, b := newTestApp(t, Options{})
			b.PostEvent(tt.ev)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.Run(ctx); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if ctx.Err() != nil {
				t.Fatal("quit key did not stop the loop")
			}
		})
	}
}

func TestApplication_DragCorner(t *testing.T) {
	app, b := newTestApp(t, Options{})

	runEvents(t, app, b,
		hover(43, 13),
		press(43, 13),
		drag(50, 16),
		release(50, 16),
		hover(0, 0),
	)

	want := resize.Rect{Left: 4, Top: 2, Width: 46, Height: 14}
	if got := app.Box().Rect(); got != want {
		t.Errorf("Box().Rect() = %+v, want %+v", got, want)
	}
	if got := shownCursor(t, b); got != resize.CursorDefault {
		t.Errorf("cursor after leaving = %q, want %q", got, resize.CursorDefault)
	}

	s := app.Metrics().Snapshot()
	if s.Sessions != 1 || s.ResizeSteps != 1 {
		t.Errorf("metrics = %d sessions, %d steps; want 1, 1", s.Sessions, s.ResizeSteps)
	}
	// Five pointer events plus the quit key.
	if s.EventCount != 6 {
		t.Errorf("EventCount = %d, want 6", s.EventCount)
	}
}

func TestApplication_DragLeftEdgeRespectsMinWidth(t *testing.T) {
	path := configPath(t, `
[resize.min_size]
width = 10
`)
	app, b := newTestApp(t, Options{ConfigPath: path})

	runEvents(t, app, b,
		hover(4, 5),
		press(4, 5),
		drag(40, 5), // width 4 is below the minimum
		drag(30, 5),
		release(30, 5),
	)

	want := resize.Rect{Left: 30, Top: 2, Width: 14, Height: 12}
	if got := app.Box().Rect(); got != want {
		t.Errorf("Box().Rect() = %+v, want %+v", got, want)
	}
	if got := app.Metrics().Snapshot().ResizeSteps; got != 1 {
		t.Errorf("ResizeSteps = %d, want 1", got)
	}
}

func TestApplication_HandleOverridesHover(t *testing.T) {
	path := configPath(t, `
[[resize.handles]]
anchor = "bottom"
direction = "right"
`)
	app, b := newTestApp(t, Options{ConfigPath: path})

	// The bottom handle sits at the middle of the bottom edge line, where
	// hovering alone would select Down.
	runEvents(t, app, b,
		hover(24, 13),
		press(24, 13),
		drag(60, 20),
		release(60, 20),
	)

	want := resize.Rect{Left: 4, Top: 2, Width: 56, Height: 12}
	if got := app.Box().Rect(); got != want {
		t.Errorf("Box().Rect() = %+v, want %+v", got, want)
	}
}

func TestApplication_BorderSettings(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   resize.Rect
		cursor resize.Cursor
	}{
		{
			name:   "disabled",
			config: "[resize.border]\nenabled = false\n",
			want:   defaultRect,
			cursor: resize.CursorDefault,
		},
		{
			name:   "allowed right only",
			config: "[resize.border]\nallowed_directions = \"right\"\n",
			want:   resize.Rect{Left: 4, Top: 2, Width: 46, Height: 12},
			cursor: resize.CursorEast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, b := newTestApp(t, Options{ConfigPath: configPath(t, tt.config)})

			runEvents(t, app, b,
				hover(43, 13),
				press(43, 13),
				drag(50, 16),
				release(50, 16),
			)

			if got := app.Box().Rect(); got != tt.want {
				t.Errorf("Box().Rect() = %+v, want %+v", got, tt.want)
			}
			if got := shownCursor(t, b); got != tt.cursor {
				t.Errorf("cursor before quit = %q, want %q", got, tt.cursor)
			}
			if app.Cursor() != resize.CursorDefault {
				t.Errorf("Cursor() after Run = %q, want %q", app.Cursor(), resize.CursorDefault)
			}
		})
	}
}

func TestApplication_ScrollIgnored(t *testing.T) {
	app, b := newTestApp(t, Options{})

	runEvents(t, app, b,
		pointer(mouse.ActionScroll, mouse.ButtonScrollDown, 43, 13),
		pointer(mouse.ActionNone, mouse.ButtonNone, 43, 13),
	)

	if got := app.Box().Rect(); got != defaultRect {
		t.Errorf("Box().Rect() = %+v, want unchanged", got)
	}
	if got := shownCursor(t, b); got != resize.CursorDefault {
		t.Errorf("cursor = %q, want default", got)
	}
}

func TestApplication_CursorFollowsHoverUntilTeardown(t *testing.T) {
	tests := []struct {
		name   string
		events []backend.Event
		shown  resize.Cursor
	}{
		{"corner", []backend.Event{hover(43, 13)}, resize.CursorSouthEast},
		{"kept after release", []backend.Event{hover(43, 13), press(43, 13), drag(50, 16), release(50, 16)}, resize.CursorSouthEast},
		{"left edge", []backend.Event{hover(4, 8)}, resize.CursorWest},
		{"inside", []backend.Event{hover(43, 13), hover(20, 8)}, resize.CursorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, b := newTestApp(t, Options{})

			runEvents(t, app, b, tt.events...)

			if got := shownCursor(t, b); got != tt.shown {
				t.Errorf("cursor before quit = %q, want %q", got, tt.shown)
			}
			// Teardown releases the arbiter and restores the default.
			if app.Cursor() != resize.CursorDefault {
				t.Errorf("Cursor() after Run = %q, want %q", app.Cursor(), resize.CursorDefault)
			}
		})
	}
}

func TestApplication_ReloadKey(t *testing.T) {
	path := configPath(t, "[resize.border]\nedge_offset = 2\n")
	app, b := newTestApp(t, Options{ConfigPath: path})

	writeConfig(t, path, "[resize.border]\nenabled = false\n")

	runEvents(t, app, b,
		key(backend.KeyCtrlR),
		hover(43, 13),
		press(43, 13),
		drag(50, 16),
		release(50, 16),
	)

	if got := app.Box().Rect(); got != defaultRect {
		t.Errorf("Box().Rect() = %+v, want unchanged with border disabled", got)
	}
	if app.Controller().Config().Border.Enabled {
		t.Error("Border.Enabled = true after reload, want false")
	}
	if got := app.Metrics().Snapshot().Reloads; got != 1 {
		t.Errorf("Reloads = %d, want 1", got)
	}
	if !strings.Contains(app.Message(), "reloaded") {
		t.Errorf("Message() = %q, want reload notice", app.Message())
	}
}

func TestApplication_ReloadHandles(t *testing.T) {
	path := configPath(t, "")
	app, b := newTestApp(t, Options{ConfigPath: path})

	writeConfig(t, path, `
[[resize.handles]]
anchor = "top-left"
`)

	runEvents(t, app, b, runeKey('r'))

	if got := len(app.Controller().Config().Handles); got != 1 {
		t.Fatalf("handles after reload = %d, want 1", got)
	}
	if got := app.Controller().Config().Handles[0].Direction; got != resize.Up|resize.Left {
		t.Errorf("handle direction = %v, want up|left", got)
	}
	if got := b.GetCell(4, 2).Rune; got != handleRune {
		t.Errorf("cell at top-left = %q, want handle", got)
	}
}

func TestApplication_ReloadFailureKeepsConfig(t *testing.T) {
	path := configPath(t, "[resize.border]\nallowed_directions = \"right\"\n")
	app, b := newTestApp(t, Options{ConfigPath: path})

	writeConfig(t, path, "[resize.border\n")

	runEvents(t, app, b,
		key(backend.KeyCtrlR),
		hover(43, 13),
		press(43, 13),
		drag(50, 16),
		release(50, 16),
	)

	want := resize.Rect{Left: 4, Top: 2, Width: 46, Height: 12}
	if got := app.Box().Rect(); got != want {
		t.Errorf("Box().Rect() = %+v, want %+v", got, want)
	}
	if !strings.HasPrefix(app.Message(), "reload failed") {
		t.Errorf("Message() = %q, want failure notice", app.Message())
	}
	if got := app.Metrics().Snapshot().ReloadErrors; got != 1 {
		t.Errorf("ReloadErrors = %d, want 1", got)
	}
}

func TestApplication_ReloadWithoutFile(t *testing.T) {
	app, b := newTestApp(t, Options{})

	runEvents(t, app, b, key(backend.KeyCtrlR))

	if app.Message() != "no config file" {
		t.Errorf("Message() = %q, want %q", app.Message(), "no config file")
	}
	if got := app.Metrics().Snapshot().Reloads; got != 0 {
		t.Errorf("Reloads = %d, want 0", got)
	}
}

func TestApplication_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resizable.toml")
	writeConfig(t, path, "[resize.border]\nedge_offset = 2\n")

	app, _ := newTestApp(t, Options{
		ConfigPath:    path,
		Watch:         true,
		WatchDebounce: 20 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	// Replace the file atomically until the loop has picked up a change; the
	// watcher may not be registered yet when the first write lands.
	deadline := time.Now().Add(5 * time.Second)
	for app.Metrics().Snapshot().Reloads == 0 {
		if time.Now().After(deadline) {
			t.Fatal("config change was not picked up")
		}
		tmp := filepath.Join(dir, "resizable.toml.tmp")
		writeConfig(t, tmp, "[resize.border]\nedge_offset = 5\n")
		if err := os.Rename(tmp, path); err != nil {
			t.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	if !app.IsRunning() {
		t.Error("expected IsRunning() while the loop runs")
	}
	if err := app.Run(ctx); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}
	if err := app.SetBackend(nil); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend() while running error = %v, want ErrAlreadyRunning", err)
	}

	app.Shutdown()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not exit after Shutdown")
	}

	if got := app.Controller().Config().Border.EdgeOffset; got != 5 {
		t.Errorf("EdgeOffset = %d, want 5 after live reload", got)
	}
}
