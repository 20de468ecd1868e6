// Package headless implements an offscreen app.Application.
//
// Frames are drawn into a gg.Context that is never shown. AUTOMATIC frames
// are paced by a token-bucket limiter at Configuration.FrameRate, and frames
// can be written to disk for batch rendering:
//
//	cfg := app.DefaultConfig().
//		WithHeadless(true).
//		WithMaxFrames(120).
//		WithCapture("out", "png")
//	a, err := headless.New(program, cfg)
package headless

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/time/rate"

	"github.com/gogpu/ggapp/app"
	"github.com/gogpu/ggapp/internal/capture"
	"github.com/gogpu/ggapp/internal/drive"
)

// Name identifies the backend in logs.
const Name = "headless"

// ErrNilProgram is returned by New without a program.
var ErrNilProgram = errors.New("headless: nil program")

// Application is the offscreen backend.
type Application struct {
	*drive.Base

	program app.Program
	cfg     app.Configuration
	format  capture.Format

	limiter *rate.Limiter
	capture *capture.Writer

	// imgMu guards dc against Image calls from other goroutines.
	imgMu sync.Mutex
	dc    *gg.Context
}

var _ app.Application = (*Application)(nil)

// New validates cfg and returns an Application in the Created state.
func New(program app.Program, cfg app.Configuration) (*Application, error) {
	if program == nil {
		return nil, ErrNilProgram
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := capture.ParseFormat(cfg.Capture.Format)
	if err != nil {
		return nil, err
	}

	a := &Application{
		Base:    drive.New(Name, cfg),
		program: program,
		cfg:     cfg,
		format:  format,
	}
	if cfg.FrameRate > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(cfg.FrameRate), 1)
	}
	return a, nil
}

// Setup allocates the drawing context, prepares capture and runs the
// program's Setup.
func (a *Application) Setup() error {
	if err := a.BeginSetup(); err != nil {
		return err
	}

	a.imgMu.Lock()
	a.dc = gg.NewContext(a.cfg.Window.Width, a.cfg.Window.Height)
	a.imgMu.Unlock()

	if a.cfg.Capture.Enabled() {
		w, err := capture.NewWriter(a.cfg.Capture.Dir, a.format, a.cfg.Capture.Every)
		if err != nil {
			return err
		}
		a.capture = w
	}

	if err := a.program.Setup(a); err != nil {
		return fmt.Errorf("headless: program setup: %w", err)
	}

	a.FinishSetup()
	return nil
}

// Loop drives frames until Exit or until MaxFrames frames were produced.
func (a *Application) Loop() error {
	if err := a.BeginLoop(); err != nil {
		return err
	}
	defer a.EndLoop()
	if c, ok := a.program.(app.Closer); ok {
		defer c.Close()
	}

	var pace drive.PaceFunc
	if a.limiter != nil {
		pace = a.limiter.Wait
	}
	return a.Run(a.frame, pace)
}

func (a *Application) frame() error {
	a.imgMu.Lock()
	a.program.Draw(a.dc)
	a.imgMu.Unlock()

	// Run counts the frame after we return.
	n := a.Frames() + 1

	if a.capture != nil {
		path, err := a.capture.Write(n, a.Image())
		if err != nil {
			return err
		}
		if path != "" {
			a.Log().Debug("headless: captured frame", "path", path)
		}
	}

	if a.cfg.MaxFrames > 0 && n >= a.cfg.MaxFrames {
		a.Exit()
	}
	return nil
}

// Image returns a copy of the last drawn frame, or nil before Setup.
func (a *Application) Image() image.Image {
	a.imgMu.Lock()
	defer a.imgMu.Unlock()
	if a.dc == nil {
		return nil
	}
	return cloneImage(a.dc.Image())
}

func cloneImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	xdraw.Copy(dst, b.Min, src, b, xdraw.Src, nil)
	return dst
}
