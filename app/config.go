package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggapp/internal/capture"
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when a Configuration fails validation.
	ErrInvalidConfig = errors.New("app: invalid configuration")

	// ErrUnknownConfigFormat is returned by LoadConfig for unsupported
	// file extensions.
	ErrUnknownConfigFormat = errors.New("app: unknown configuration format")
)

// Configuration describes a run. It is passed by value and never mutated
// by the runner or the backends.
type Configuration struct {
	// Headless selects the offscreen backend instead of a window.
	Headless bool `toml:"headless" yaml:"headless"`

	// Window is forwarded to the backend uninterpreted by the selector.
	Window WindowConfig `toml:"window" yaml:"window"`

	// PresentationMode is the initial mode; it can be changed at runtime.
	PresentationMode PresentationMode `toml:"presentation_mode" yaml:"presentation_mode"`

	// FrameRate caps AUTOMATIC frame production of the headless backend,
	// in frames per second. Zero leaves it unpaced. The windowed backend
	// is paced by VSync.
	FrameRate float64 `toml:"frame_rate" yaml:"frame_rate"`

	// MaxFrames makes the headless backend exit after that many frames.
	// Zero means no limit.
	MaxFrames uint64 `toml:"max_frames" yaml:"max_frames"`

	// Capture writes headless frames to disk.
	Capture CaptureConfig `toml:"capture" yaml:"capture"`
}

// WindowConfig holds window parameters.
type WindowConfig struct {
	Title      string   `toml:"title" yaml:"title"`
	Width      int      `toml:"width" yaml:"width"`
	Height     int      `toml:"height" yaml:"height"`
	Position   gg.Point `toml:"position" yaml:"position"`
	HideCursor bool     `toml:"hide_cursor" yaml:"hide_cursor"`
}

// CaptureConfig controls frame capture. Capture is disabled when Dir is
// empty.
type CaptureConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
	// Format is one of "png", "bmp" or "tiff". Empty means png.
	Format string `toml:"format" yaml:"format"`
	// Every captures one frame out of Every. Zero or one captures all.
	Every uint64 `toml:"every" yaml:"every"`
}

// Enabled reports whether frames should be written.
func (c CaptureConfig) Enabled() bool {
	return c.Dir != ""
}

// DefaultConfig returns a 640x480 windowed configuration in AUTOMATIC mode.
func DefaultConfig() Configuration {
	return Configuration{
		Window: WindowConfig{
			Title:  "ggapp",
			Width:  640,
			Height: 480,
		},
		PresentationMode: PresentationModeAutomatic,
		FrameRate:        60,
	}
}

// WithTitle returns a copy with the window title set.
func (c Configuration) WithTitle(title string) Configuration {
	c.Window.Title = title
	return c
}

// WithSize returns a copy with the window size set.
func (c Configuration) WithSize(width, height int) Configuration {
	c.Window.Width = width
	c.Window.Height = height
	return c
}

// WithHeadless returns a copy selecting the headless backend.
func (c Configuration) WithHeadless(headless bool) Configuration {
	c.Headless = headless
	return c
}

// WithPresentationMode returns a copy with the initial mode set.
func (c Configuration) WithPresentationMode(mode PresentationMode) Configuration {
	c.PresentationMode = mode
	return c
}

// WithFrameRate returns a copy with the headless frame rate set.
func (c Configuration) WithFrameRate(fps float64) Configuration {
	c.FrameRate = fps
	return c
}

// WithMaxFrames returns a copy with the headless frame limit set.
func (c Configuration) WithMaxFrames(n uint64) Configuration {
	c.MaxFrames = n
	return c
}

// WithCapture returns a copy writing frames to dir in the given format.
func (c Configuration) WithCapture(dir, format string) Configuration {
	c.Capture.Dir = dir
	c.Capture.Format = format
	return c
}

// Validate checks the configuration for values no backend can honor.
func (c Configuration) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if !c.PresentationMode.Valid() {
		return fmt.Errorf("%w: presentation mode %d", ErrInvalidConfig, int(c.PresentationMode))
	}
	if math.IsNaN(c.FrameRate) || c.FrameRate < 0 {
		return fmt.Errorf("%w: frame rate %v", ErrInvalidConfig, c.FrameRate)
	}
	if _, err := capture.ParseFormat(c.Capture.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a configuration file on top of DefaultConfig.
// The format is chosen by extension: .toml, .yaml or .yml.
func LoadConfig(path string) (Configuration, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("app: read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("app: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("app: decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnknownConfigFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
