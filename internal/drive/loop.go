package drive

import (
	"context"

	"github.com/gogpu/ggapp/app"
)

// FrameFunc produces and presents one frame.
type FrameFunc func() error

// PaceFunc blocks until the next AUTOMATIC frame may start. It must return
// promptly with an error once ctx is canceled.
type PaceFunc func(ctx context.Context) error

// Run executes cycles on the calling goroutine until Exit is requested or
// frame fails. Each cycle reads the presentation mode afresh:
//
//   - AUTOMATIC waits for pace (if any), clears a pending redraw and
//     produces a frame.
//   - MANUAL idles until a redraw is pending, consumes it and produces
//     exactly one frame. A mode change wakes the idle wait so the new mode
//     applies to the next cycle.
//
// An in-flight frame always completes; Exit is checked between cycles.
func (b *Base) Run(frame FrameFunc, pace PaceFunc) error {
	for {
		if b.Exiting() {
			return nil
		}

		switch b.PresentationMode() {
		case app.PresentationModeManual:
			select {
			case <-b.redraw.C():
			case <-b.wake.C():
				continue
			case <-b.ctx.Done():
				return nil
			}
		default:
			if pace != nil {
				if err := pace(b.ctx); err != nil {
					if b.Exiting() {
						return nil
					}
					return err
				}
			}
			b.redraw.TryConsume()
			b.wake.TryConsume()
		}

		if b.Exiting() {
			return nil
		}
		if err := frame(); err != nil {
			return err
		}
		n := b.CountFrame()
		b.Log().Debug("ggapp: frame", "n", n)
	}
}
