//go:build !nogpu

package windowed

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp/app"
)

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil, app.DefaultConfig()); !errors.Is(err, ErrNilProgram) {
		t.Errorf("New(nil) = %v, want ErrNilProgram", err)
	}
	if _, err := New(app.ProgramFuncs{}, app.DefaultConfig().WithSize(0, 10)); !errors.Is(err, app.ErrInvalidConfig) {
		t.Errorf("New(0x10) = %v, want ErrInvalidConfig", err)
	}
}

// Nothing below opens a window: New defers all gogpu work to Setup.

func TestNewIsCreated(t *testing.T) {
	cfg := app.DefaultConfig().WithTitle("demo")
	cfg.Window.HideCursor = true
	a, err := New(app.ProgramFuncs{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.State() != app.StateCreated {
		t.Errorf("State() = %v, want Created", a.State())
	}
	if a.WindowTitle() != "demo" {
		t.Errorf("WindowTitle() = %q, want demo", a.WindowTitle())
	}
	if a.CursorVisible() {
		t.Error("CursorVisible() = true with HideCursor")
	}
}

func TestLoopBeforeSetup(t *testing.T) {
	a, err := New(app.ProgramFuncs{}, app.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Loop(); !errors.Is(err, app.ErrNotInitialized) {
		t.Errorf("Loop() before Setup = %v, want ErrNotInitialized", err)
	}
}

func TestRequestsBeforeSetupAreKept(t *testing.T) {
	a, err := New(app.ProgramFuncs{}, app.DefaultConfig().WithPresentationMode(app.PresentationModeManual))
	if err != nil {
		t.Fatal(err)
	}
	a.RequestDraw()
	a.RequestDraw()
	if !a.Redraw().Pending() {
		t.Error("redraw requested before Setup was dropped")
	}
	a.SetPresentationMode(app.PresentationModeAutomatic)
	if a.PresentationMode() != app.PresentationModeAutomatic {
		t.Errorf("PresentationMode() = %v, want automatic", a.PresentationMode())
	}
}

func TestClipboardFallsBackToMemory(t *testing.T) {
	a, err := New(app.ProgramFuncs{}, app.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// No system clipboard is attached before Setup.
	if _, ok := a.ClipboardContents(); ok {
		t.Error("ClipboardContents() reported text on a fresh instance")
	}
	a.SetClipboardContents("hello")
	if got, ok := a.ClipboardContents(); !ok || got != "hello" {
		t.Errorf("ClipboardContents() = %q, %v; want hello, true", got, ok)
	}
	a.ClearClipboardContents()
	if _, ok := a.ClipboardContents(); ok {
		t.Error("ClipboardContents() after clear reported text")
	}
}

func TestWantsFrame(t *testing.T) {
	tests := []struct {
		name            string
		manual, pending bool
		want            bool
	}{
		{"automatic idle", false, false, true},
		{"automatic requested", false, true, true},
		{"manual idle", true, false, false},
		{"manual requested", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wantsFrame(tt.manual, tt.pending); got != tt.want {
				t.Errorf("wantsFrame(%v, %v) = %v, want %v", tt.manual, tt.pending, got, tt.want)
			}
		})
	}
}

func TestFinishFrame(t *testing.T) {
	tests := []struct {
		name                  string
		manual, pending, drew bool
		wantFrames            uint64
		wantPending           bool
	}{
		{"manual drawn", true, true, true, 1, false},
		{"manual not drawable keeps request", true, true, false, 0, true},
		{"automatic drawn", false, false, true, 1, false},
		{"automatic not drawable", false, false, false, 0, false},
		{"automatic not drawable keeps request", false, true, false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(app.ProgramFuncs{}, app.DefaultConfig())
			if err != nil {
				t.Fatal(err)
			}
			a.finishFrame(tt.manual, tt.pending, tt.drew)
			if a.Frames() != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", a.Frames(), tt.wantFrames)
			}
			if a.Redraw().Pending() != tt.wantPending {
				t.Errorf("redraw pending = %v, want %v", a.Redraw().Pending(), tt.wantPending)
			}
		})
	}
}

// A request made before Setup must survive an OnDraw that had no device
// and be served by the next one.
func TestRequestSurvivesUndrawableFrame(t *testing.T) {
	a, err := New(app.ProgramFuncs{}, app.DefaultConfig().WithPresentationMode(app.PresentationModeManual))
	if err != nil {
		t.Fatal(err)
	}
	a.RequestDraw()

	pending := a.Redraw().TryConsume()
	if !wantsFrame(true, pending) {
		t.Fatal("first OnDraw should attempt the requested frame")
	}
	a.finishFrame(true, pending, false)

	pending = a.Redraw().TryConsume()
	if !wantsFrame(true, pending) {
		t.Fatal("request lost after an undrawable OnDraw")
	}
	a.finishFrame(true, pending, true)

	if a.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", a.Frames())
	}
	if a.Redraw().Pending() {
		t.Error("request still pending after the frame was drawn")
	}
}

func TestMouseMoveTracksCursor(t *testing.T) {
	a, err := New(app.ProgramFuncs{}, app.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	a.onMouseMove(12.5, 40)
	if got := a.CursorPosition(); got != gg.Pt(12.5, 40) {
		t.Errorf("CursorPosition() = %v, want (12.5, 40)", got)
	}
	a.onMouseMove(0, 3)
	if got := a.CursorPosition(); got != gg.Pt(0, 3) {
		t.Errorf("CursorPosition() = %v, want (0, 3)", got)
	}
}
