// Package ggapp runs gg programs as interactive applications.
//
// ggapp picks a backend from the configuration, constructs it bound to a
// [Program], calls its Setup once and then drives its Loop until Exit is
// requested:
//
//	cfg := ggapp.DefaultConfig().WithTitle("hello")
//	err := ggapp.Run(ggapp.ProgramFuncs{
//		DrawFunc: func(dc *gg.Context) {
//			dc.ClearWithColor(gg.White)
//			dc.SetRGB(0.9, 0.2, 0.2)
//			dc.DrawCircle(320, 240, 100)
//			_ = dc.Fill()
//		},
//	}, cfg)
//
// # Backends
//
// Two backends form a closed set, see [Backend]:
//
//   - windowed: a gogpu window, paced by VSync (left out with -tags nogpu)
//   - headless: an offscreen gg.Context, paced by Configuration.FrameRate,
//     with optional frame capture to PNG, BMP or TIFF
//
// [SelectBackend] depends only on Configuration.Headless. There is no
// implicit fallback; a caller that wants one checks [ErrBackendUnavailable]
// and retries with WithHeadless(true).
//
// # Synchronous and asynchronous runs
//
// [Run] drives the backend on the calling goroutine and returns when the
// loop ends. [RunAsync] starts a new goroutine and returns a [Task] at once;
// Task.Wait joins the run and Task.Cancel requests exit.
//
// # Presentation modes
//
// In AUTOMATIC mode frames are produced continuously. In MANUAL mode a
// frame is produced only after Application.RequestDraw, and requests
// coalesce: a burst of calls while a frame is in flight produces one more
// frame, not one per call. Requests issued before Setup are kept.
//
// # Logging
//
// ggapp logs through log/slog and is silent by default; see [SetLogger].
package ggapp
