package ggapp

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggapp/app"
)

// Aliases so most programs only import this package.
type (
	Application      = app.Application
	Program          = app.Program
	ProgramFuncs     = app.ProgramFuncs
	Configuration    = app.Configuration
	PresentationMode = app.PresentationMode
	State            = app.State
)

// Presentation modes.
const (
	PresentationModeAutomatic = app.PresentationModeAutomatic
	PresentationModeManual    = app.PresentationModeManual
)

// DefaultConfig returns a 640x480 windowed configuration in AUTOMATIC mode.
func DefaultConfig() Configuration {
	return app.DefaultConfig()
}

// SetLogger configures the logger for ggapp, its backends and gg itself
// (including a registered GPU accelerator). By default nothing is logged;
// pass nil to restore that.
//
// Example:
//
//	ggapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	app.SetLogger(l)
	gg.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return app.Logger()
}
