package ggapp

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggapp/app"
	"github.com/gogpu/ggapp/backend/headless"
)

// Selection and construction errors.
var (
	// ErrBackendUnavailable is returned when the selected backend is not
	// compiled into this binary (for example the windowed backend under
	// the nogpu build tag).
	ErrBackendUnavailable = errors.New("ggapp: backend not available")

	// ErrInstantiation is returned when the selected backend fails to
	// construct.
	ErrInstantiation = errors.New("ggapp: backend instantiation failed")
)

// Backend identifies one of the built-in backends.
type Backend int

const (
	// BackendWindowed renders into a gogpu window.
	BackendWindowed Backend = iota
	// BackendHeadless renders offscreen.
	BackendHeadless

	backendCount
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendWindowed:
		return "windowed"
	case BackendHeadless:
		return "headless"
	default:
		return "unknown"
	}
}

// constructor builds a backend bound to a program and configuration.
type constructor func(program app.Program, cfg app.Configuration) (app.Application, error)

// constructors is the closed set of backends. A nil entry means the
// backend was left out of the build; the windowed entry is filled in by
// backends_windowed.go.
var constructors = [backendCount]constructor{
	BackendHeadless: func(p app.Program, cfg app.Configuration) (app.Application, error) {
		a, err := headless.New(p, cfg)
		if err != nil {
			return nil, err
		}
		return a, nil
	},
}

// SelectBackend picks the backend for cfg. The choice depends only on
// cfg.Headless; no instance is created.
func SelectBackend(cfg app.Configuration) (Backend, error) {
	b := BackendWindowed
	if cfg.Headless {
		b = BackendHeadless
	}
	if constructors[b] == nil {
		return b, fmt.Errorf("%w: %s", ErrBackendUnavailable, b)
	}
	return b, nil
}

// NewApplication selects and constructs the backend for cfg, bound to
// program. The result is in the Created state.
func NewApplication(program Program, cfg Configuration) (Application, error) {
	b, err := SelectBackend(cfg)
	if err != nil {
		return nil, err
	}

	a, err := constructors[b](program, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInstantiation, b, err)
	}

	Logger().Info("ggapp: backend selected", "backend", b.String(),
		"width", cfg.Window.Width, "height", cfg.Window.Height,
		"mode", cfg.PresentationMode)
	return a, nil
}
