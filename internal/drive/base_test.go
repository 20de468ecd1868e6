package drive

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp/app"
)

func TestBaseLifecycle(t *testing.T) {
	b := New("test", app.DefaultConfig())
	if b.State() != app.StateCreated {
		t.Fatalf("State() = %v, want Created", b.State())
	}

	if err := b.BeginLoop(); !errors.Is(err, app.ErrNotInitialized) {
		t.Errorf("BeginLoop() before setup = %v, want ErrNotInitialized", err)
	}

	if err := b.BeginSetup(); err != nil {
		t.Fatalf("BeginSetup() error = %v", err)
	}
	if err := b.BeginSetup(); !errors.Is(err, app.ErrAlreadySetUp) {
		t.Errorf("second BeginSetup() = %v, want ErrAlreadySetUp", err)
	}
	if b.State() != app.StateCreated {
		t.Errorf("State() during setup = %v, want Created", b.State())
	}

	b.FinishSetup()
	if b.State() != app.StateInitialized {
		t.Fatalf("State() = %v, want Initialized", b.State())
	}
	if err := b.BeginSetup(); !errors.Is(err, app.ErrAlreadySetUp) {
		t.Errorf("BeginSetup() after setup = %v, want ErrAlreadySetUp", err)
	}

	if err := b.BeginLoop(); err != nil {
		t.Fatalf("BeginLoop() error = %v", err)
	}
	if b.State() != app.StateRunning {
		t.Fatalf("State() = %v, want Running", b.State())
	}
	if err := b.BeginLoop(); !errors.Is(err, app.ErrRunning) {
		t.Errorf("second BeginLoop() = %v, want ErrRunning", err)
	}

	b.EndLoop()
	if b.State() != app.StateTerminated {
		t.Fatalf("State() = %v, want Terminated", b.State())
	}
	if err := b.BeginLoop(); !errors.Is(err, app.ErrTerminated) {
		t.Errorf("BeginLoop() after end = %v, want ErrTerminated", err)
	}
}

func TestBaseSecondsStartsWithLoop(t *testing.T) {
	b := New("test", app.DefaultConfig())
	_ = b.BeginSetup()
	b.FinishSetup()
	if got := b.Seconds(); got != 0 {
		t.Errorf("Seconds() before loop = %v, want 0", got)
	}
	_ = b.BeginLoop()
	if got := b.Seconds(); got < 0 {
		t.Errorf("Seconds() = %v, want >= 0", got)
	}
}

func TestBaseInitialProperties(t *testing.T) {
	cfg := app.DefaultConfig().
		WithTitle("hello").
		WithPresentationMode(app.PresentationModeManual)
	cfg.Window.Position = gg.Pt(5, 6)
	cfg.Window.HideCursor = true

	b := New("test", cfg)
	if b.WindowTitle() != "hello" {
		t.Errorf("WindowTitle() = %q", b.WindowTitle())
	}
	if b.WindowPosition() != gg.Pt(5, 6) {
		t.Errorf("WindowPosition() = %v", b.WindowPosition())
	}
	if b.CursorVisible() {
		t.Error("CursorVisible() = true with HideCursor set")
	}
	if b.PresentationMode() != app.PresentationModeManual {
		t.Errorf("PresentationMode() = %v, want manual", b.PresentationMode())
	}
	if _, ok := b.ClipboardContents(); ok {
		t.Error("clipboard should start empty")
	}
}

func TestBaseSetters(t *testing.T) {
	b := New("test", app.DefaultConfig())

	// "e" + combining acute accent normalizes to a single code point.
	b.SetWindowTitle("cafe\u0301")
	if got := b.WindowTitle(); got != "caf\u00e9" {
		t.Errorf("WindowTitle() = %q, want NFC form", got)
	}

	b.SetWindowPosition(gg.Pt(1, 2))
	b.SetCursorPosition(gg.Pt(3, 4))
	b.SetCursorVisible(false)
	if b.WindowPosition() != gg.Pt(1, 2) || b.CursorPosition() != gg.Pt(3, 4) || b.CursorVisible() {
		t.Error("setters not reflected by getters")
	}

	b.SetClipboardContents("")
	if text, ok := b.ClipboardContents(); !ok || text != "" {
		t.Errorf("ClipboardContents() = %q, %v; empty text is still set", text, ok)
	}
	b.SetClipboardContents("copy")
	if text, ok := b.ClipboardContents(); !ok || text != "copy" {
		t.Errorf("ClipboardContents() = %q, %v", text, ok)
	}
	b.ClearClipboardContents()
	if _, ok := b.ClipboardContents(); ok {
		t.Error("ClearClipboardContents() left text set")
	}
}

func TestBaseInvalidModeIgnored(t *testing.T) {
	b := New("test", app.DefaultConfig())
	b.SetPresentationMode(app.PresentationMode(5))
	if b.PresentationMode() != app.PresentationModeAutomatic {
		t.Errorf("PresentationMode() = %v, invalid value must be ignored", b.PresentationMode())
	}

	cfg := app.DefaultConfig().WithPresentationMode(app.PresentationMode(-1))
	if got := New("test", cfg).PresentationMode(); got != app.PresentationModeAutomatic {
		t.Errorf("invalid configured mode = %v, want automatic", got)
	}
}

func TestBaseNotify(t *testing.T) {
	b := New("test", app.DefaultConfig())
	var calls atomic.Int32
	b.SetNotify(func() { calls.Add(1) })

	b.RequestDraw()
	b.SetPresentationMode(app.PresentationModeManual)
	b.SetPresentationMode(app.PresentationModeManual) // unchanged, no notify
	b.Exit()
	b.Exit() // idempotent, no notify

	if got := calls.Load(); got != 3 {
		t.Errorf("notify called %d times, want 3", got)
	}
}

func TestBaseRequestDrawBeforeSetupPreserved(t *testing.T) {
	b := New("test", app.DefaultConfig())
	b.RequestDraw()
	_ = b.BeginSetup()
	b.FinishSetup()
	if !b.Redraw().Pending() {
		t.Error("redraw requested before setup was dropped")
	}
}

func TestBaseExitIdempotent(t *testing.T) {
	b := New("test", app.DefaultConfig())
	if b.Exiting() {
		t.Fatal("Exiting() = true before Exit")
	}
	b.Exit()
	b.Exit()
	if !b.Exiting() {
		t.Error("Exiting() = false after Exit")
	}
	select {
	case <-b.Context().Done():
	default:
		t.Error("Context() not canceled after Exit")
	}
}
