//go:build !nogpu

// Package windowed implements app.Application on a gogpu window.
//
// The gogpu App is created in event-driven mode (continuous rendering off).
// Frame production is controlled with animation tokens: AUTOMATIC keeps a
// token alive so gogpu draws at VSync, MANUAL starts a token only while a
// redraw is pending and drops it after the frame. Program output is drawn
// into a ggcanvas.Canvas and rendered to the window surface.
//
// gogpu must own the OS thread it was started on; the runner locks the
// drive goroutine to its thread before calling Setup.
package windowed

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // GPU accelerator for canvas drawing
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggapp/app"
	"github.com/gogpu/ggapp/internal/drive"
)

// Name identifies the backend in logs.
const Name = "windowed"

// ErrNilProgram is returned by New without a program.
var ErrNilProgram = errors.New("windowed: nil program")

// KeyHandler is implemented by programs that want key presses.
// It is called on the drive goroutine.
type KeyHandler interface {
	KeyPressed(key gpucontext.Key, mods gpucontext.Modifiers)
}

// Application is the windowed backend.
type Application struct {
	*drive.Base

	program app.Program
	cfg     app.Configuration
	clip    atomic.Pointer[systemClipboard]

	canvas  *ggcanvas.Canvas
	drawErr error

	// animMu guards gpu and anim, which kick reaches from other goroutines.
	animMu sync.Mutex
	gpu    *gogpu.App
	anim   *gogpu.AnimationToken
}

var _ app.Application = (*Application)(nil)

// New validates cfg and returns an Application in the Created state.
// No window is opened until Setup.
func New(program app.Program, cfg app.Configuration) (*Application, error) {
	if program == nil {
		return nil, ErrNilProgram
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Application{
		Base:    drive.New(Name, cfg),
		program: program,
		cfg:     cfg,
	}
	a.SetNotify(a.kick)
	return a, nil
}

// Setup creates the window and runs the program's Setup.
func (a *Application) Setup() error {
	if err := a.BeginSetup(); err != nil {
		return err
	}

	a.clip.Store(openSystemClipboard(a.Log()))

	gpu := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(a.WindowTitle()).
		WithSize(a.cfg.Window.Width, a.cfg.Window.Height).
		WithContinuousRender(false))
	a.animMu.Lock()
	a.gpu = gpu
	a.animMu.Unlock()

	a.gpu.OnDraw(a.onDraw)
	a.gpu.OnClose(a.onClose)
	a.gpu.EventSource().OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		if h, ok := a.program.(KeyHandler); ok {
			h.KeyPressed(key, mods)
		}
	})
	a.gpu.EventSource().OnMouseMove(a.onMouseMove)

	if err := a.program.Setup(a); err != nil {
		return fmt.Errorf("windowed: program setup: %w", err)
	}

	a.FinishSetup()
	return nil
}

// Loop runs the gogpu event loop until Exit or the window is closed.
func (a *Application) Loop() error {
	if err := a.BeginLoop(); err != nil {
		return err
	}
	defer a.EndLoop()
	if c, ok := a.program.(app.Closer); ok {
		defer c.Close()
	}

	// The first OnDraw decides what to keep running; make sure it happens.
	a.startAnimation()

	if err := a.gpu.Run(); err != nil {
		return fmt.Errorf("windowed: %w", err)
	}
	return a.drawErr
}

func (a *Application) onDraw(dc *gogpu.Context) {
	if a.Exiting() {
		a.stopAnimation()
		a.gpu.Quit()
		return
	}

	manual := a.PresentationMode() == app.PresentationModeManual
	pending := a.Redraw().TryConsume()
	if !wantsFrame(manual, pending) {
		// Woken by a mode change or a window event: show the last frame.
		a.settle()
		a.present(dc)
		return
	}

	drew, err := a.drawFrame(dc)
	if err != nil {
		a.drawErr = err
		a.Exit()
		return
	}
	a.finishFrame(manual, pending, drew)
}

// wantsFrame reports whether an OnDraw should run the program. MANUAL
// draws only for a consumed redraw request.
func wantsFrame(manual, pending bool) bool {
	return !manual || pending
}

// finishFrame counts a drawn frame. A request consumed by an OnDraw that
// could not draw (no device yet, minimized window) is raised again so the
// next OnDraw serves it.
func (a *Application) finishFrame(manual, pending, drew bool) {
	switch {
	case drew:
		a.CountFrame()
	case pending:
		a.Redraw().Raise()
	}
	if manual {
		a.settle()
	}
}

// onMouseMove tracks the pointer in window coordinates.
func (a *Application) onMouseMove(x, y float64) {
	a.Base.SetCursorPosition(gg.Pt(x, y))
}

// settle drops the animation token in MANUAL mode unless another redraw
// arrived meanwhile.
func (a *Application) settle() {
	a.stopAnimation()
	if a.Redraw().Pending() || a.Exiting() {
		a.startAnimation()
	}
}

// drawFrame runs the program into the canvas and presents it. It reports
// false without error when the window cannot be drawn into yet.
func (a *Application) drawFrame(dc *gogpu.Context) (bool, error) {
	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return false, nil
	}

	if a.canvas == nil {
		provider := a.gpu.GPUContextProvider()
		if provider == nil {
			return false, nil
		}
		canvas, err := ggcanvas.New(provider, w, h)
		if err != nil {
			return false, fmt.Errorf("windowed: create canvas: %w", err)
		}
		a.canvas = canvas
		a.Log().Debug("windowed: canvas created", "width", w, "height", h)
	}

	if cw, ch := a.canvas.Size(); cw != w || ch != h {
		if err := a.canvas.Resize(w, h); err != nil {
			return false, fmt.Errorf("windowed: resize canvas: %w", err)
		}
	}

	if err := a.canvas.Draw(func(cc *gg.Context) {
		a.program.Draw(cc)
	}); err != nil {
		return false, fmt.Errorf("windowed: draw: %w", err)
	}
	a.present(dc)
	return true, nil
}

func (a *Application) present(dc *gogpu.Context) {
	if a.canvas == nil {
		return
	}
	if err := a.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		a.Log().Warn("windowed: present failed", "err", err)
	}
}

func (a *Application) onClose() {
	a.Exit()
	a.stopAnimation()
	if a.canvas != nil {
		_ = a.canvas.Close()
		a.canvas = nil
	}
	// Drain the accelerator while the device is still alive.
	if acc := gg.Accelerator(); acc != nil {
		acc.Close()
	}
}

// kick makes sure gogpu calls OnDraw soon. It runs on whatever goroutine
// called RequestDraw, Exit or SetPresentationMode.
func (a *Application) kick() {
	if a.State() == app.StateTerminated {
		return
	}
	a.startAnimation()
}

func (a *Application) startAnimation() {
	a.animMu.Lock()
	defer a.animMu.Unlock()
	if a.anim == nil && a.gpu != nil {
		a.anim = a.gpu.StartAnimation()
	}
}

func (a *Application) stopAnimation() {
	a.animMu.Lock()
	defer a.animMu.Unlock()
	if a.anim != nil {
		a.anim.Stop()
		a.anim = nil
	}
}
