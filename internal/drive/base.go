// Package drive holds the backend-independent half of an Application:
// lifecycle state, the redraw signal, the clock, mutable window properties
// and the cycle loop that implements the presentation modes.
package drive

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggapp/app"
)

// Base implements every app.Application method except Setup and Loop.
// Backends embed it and use BeginSetup/FinishSetup/BeginLoop/EndLoop to
// move through the lifecycle.
type Base struct {
	name string

	mu            sync.RWMutex
	title         string
	windowPos     gg.Point
	cursorPos     gg.Point
	cursorVisible bool
	clip          string
	hasClip       bool
	mode          app.PresentationMode

	state        atomic.Int32
	setupStarted atomic.Bool
	frames       atomic.Uint64

	redraw *Signal
	wake   *Signal
	clock  *Clock

	ctx      context.Context
	cancel   context.CancelFunc
	exitOnce sync.Once

	notify func()
}

// New returns a Base in the Created state seeded from cfg.
// The name identifies the backend in log records.
func New(name string, cfg app.Configuration) *Base {
	return NewWithClock(name, cfg, nil)
}

// NewWithClock is like New with a custom time source for Seconds.
func NewWithClock(name string, cfg app.Configuration, now func() time.Time) *Base {
	ctx, cancel := context.WithCancel(context.Background())
	mode := cfg.PresentationMode
	if !mode.Valid() {
		mode = app.PresentationModeAutomatic
	}
	return &Base{
		name:          name,
		title:         norm.NFC.String(cfg.Window.Title),
		windowPos:     cfg.Window.Position,
		cursorVisible: !cfg.Window.HideCursor,
		mode:          mode,
		redraw:        NewSignal(),
		wake:          NewSignal(),
		clock:         NewClock(now),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// SetNotify installs fn to be called after RequestDraw, Exit and mode
// changes, so a backend that does not poll can wake its event loop.
// It must be called before the instance is shared.
func (b *Base) SetNotify(fn func()) {
	b.notify = fn
}

func (b *Base) poke() {
	if b.notify != nil {
		b.notify()
	}
}

// Log returns the shared logger tagged with the backend name.
func (b *Base) Log() *slog.Logger {
	return app.Logger().With("backend", b.name)
}

// Name returns the backend name.
func (b *Base) Name() string {
	return b.name
}

// State reports the lifecycle stage.
func (b *Base) State() app.State {
	return app.State(b.state.Load())
}

// BeginSetup claims the single Setup call.
func (b *Base) BeginSetup() error {
	if b.State() != app.StateCreated || !b.setupStarted.CompareAndSwap(false, true) {
		return app.ErrAlreadySetUp
	}
	return nil
}

// FinishSetup moves Created to Initialized.
func (b *Base) FinishSetup() {
	if b.state.CompareAndSwap(int32(app.StateCreated), int32(app.StateInitialized)) {
		b.Log().Info("ggapp: setup complete")
	}
}

// BeginLoop moves Initialized to Running and starts the clock.
func (b *Base) BeginLoop() error {
	if b.state.CompareAndSwap(int32(app.StateInitialized), int32(app.StateRunning)) {
		b.clock.Start()
		b.Log().Info("ggapp: loop started", "mode", b.PresentationMode())
		return nil
	}
	switch b.State() {
	case app.StateCreated:
		return app.ErrNotInitialized
	case app.StateRunning:
		return app.ErrRunning
	default:
		return app.ErrTerminated
	}
}

// EndLoop moves to Terminated and releases waiters.
func (b *Base) EndLoop() {
	b.state.Store(int32(app.StateTerminated))
	b.cancel()
	b.Log().Info("ggapp: loop exited", "frames", b.frames.Load())
}

// Context is canceled once Exit is requested or the loop ended.
func (b *Base) Context() context.Context {
	return b.ctx
}

// Exiting reports whether Exit has been requested.
func (b *Base) Exiting() bool {
	return b.ctx.Err() != nil
}

// Exit requests termination after the in-flight frame.
func (b *Base) Exit() {
	b.exitOnce.Do(func() {
		b.Log().Info("ggapp: exit requested")
		b.cancel()
		b.poke()
	})
}

// RequestDraw raises the redraw signal.
func (b *Base) RequestDraw() {
	if b.redraw.Raise() {
		b.Log().Debug("ggapp: redraw requested")
	}
	b.poke()
}

// Redraw exposes the redraw signal to the backend's drive goroutine.
func (b *Base) Redraw() *Signal {
	return b.redraw
}

// Frames returns the number of frames produced so far.
func (b *Base) Frames() uint64 {
	return b.frames.Load()
}

// CountFrame records a produced frame and returns the new total.
func (b *Base) CountFrame() uint64 {
	return b.frames.Add(1)
}

// Seconds returns the time since Loop started.
func (b *Base) Seconds() float64 {
	return b.clock.Seconds()
}

// PresentationMode returns the active mode.
func (b *Base) PresentationMode() app.PresentationMode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// SetPresentationMode switches modes from the next cycle on.
func (b *Base) SetPresentationMode(mode app.PresentationMode) {
	if !mode.Valid() {
		b.Log().Warn("ggapp: ignoring invalid presentation mode", "mode", int(mode))
		return
	}
	b.mu.Lock()
	changed := b.mode != mode
	b.mode = mode
	b.mu.Unlock()

	if changed {
		b.Log().Debug("ggapp: presentation mode changed", "mode", mode)
		b.wake.Raise()
		b.poke()
	}
}

// ClipboardContents returns the stored clipboard text.
func (b *Base) ClipboardContents() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clip, b.hasClip
}

// SetClipboardContents stores text in NFC form.
func (b *Base) SetClipboardContents(text string) {
	text = norm.NFC.String(text)
	b.mu.Lock()
	b.clip, b.hasClip = text, true
	b.mu.Unlock()
}

// ClearClipboardContents empties the clipboard.
func (b *Base) ClearClipboardContents() {
	b.mu.Lock()
	b.clip, b.hasClip = "", false
	b.mu.Unlock()
}

// WindowTitle returns the window title.
func (b *Base) WindowTitle() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.title
}

// SetWindowTitle stores title in NFC form.
func (b *Base) SetWindowTitle(title string) {
	title = norm.NFC.String(title)
	b.mu.Lock()
	b.title = title
	b.mu.Unlock()
}

// WindowPosition returns the stored window position.
func (b *Base) WindowPosition() gg.Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.windowPos
}

// SetWindowPosition stores the window position.
func (b *Base) SetWindowPosition(p gg.Point) {
	b.mu.Lock()
	b.windowPos = p
	b.mu.Unlock()
}

// CursorPosition returns the last known cursor position.
func (b *Base) CursorPosition() gg.Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorPos
}

// SetCursorPosition stores the cursor position.
func (b *Base) SetCursorPosition(p gg.Point) {
	b.mu.Lock()
	b.cursorPos = p
	b.mu.Unlock()
}

// CursorVisible reports whether the cursor is shown.
func (b *Base) CursorVisible() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorVisible
}

// SetCursorVisible shows or hides the cursor.
func (b *Base) SetCursorVisible(visible bool) {
	b.mu.Lock()
	b.cursorVisible = visible
	b.mu.Unlock()
}
