// Package app defines the contract between ggapp and its backends.
//
// An [Application] is one live backend instance. It is set up once, then
// driven by [Application.Loop] on a single goroutine until [Application.Exit]
// is requested. Backends live in the backend/ sub-packages and only depend on
// this package, so the runner in the root package can construct any of them
// without import cycles.
//
// # Presentation modes
//
// In [PresentationModeAutomatic] the loop produces frames back to back.
// In [PresentationModeManual] a frame is produced only after
// [Application.RequestDraw]; requests coalesce, so a burst of calls issued
// while a frame is in flight yields exactly one additional frame.
//
// # Configuration
//
// [Configuration] is a plain value. Build it with [DefaultConfig] and the
// With* methods, or load it from a TOML or YAML file with [LoadConfig]:
//
//	cfg := app.DefaultConfig().
//		WithTitle("particles").
//		WithSize(1280, 720).
//		WithPresentationMode(app.PresentationModeManual)
package app
