package app

import (
	"fmt"
	"strings"
)

// PresentationMode selects when the loop produces frames.
type PresentationMode int

const (
	// PresentationModeAutomatic presents frames at the highest rate the
	// backend's pacing allows.
	PresentationModeAutomatic PresentationMode = iota

	// PresentationModeManual presents a frame only after RequestDraw.
	PresentationModeManual
)

// String returns the presentation mode name.
func (m PresentationMode) String() string {
	switch m {
	case PresentationModeAutomatic:
		return "automatic"
	case PresentationModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m PresentationMode) Valid() bool {
	return m == PresentationModeAutomatic || m == PresentationModeManual
}

// ParsePresentationMode parses a mode name, ignoring case.
func ParsePresentationMode(s string) (PresentationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "automatic", "auto":
		return PresentationModeAutomatic, nil
	case "manual":
		return PresentationModeManual, nil
	default:
		return 0, fmt.Errorf("%w: unknown presentation mode %q", ErrInvalidConfig, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m PresentationMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: presentation mode %d", ErrInvalidConfig, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so TOML and YAML
// files can spell the mode by name.
func (m *PresentationMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePresentationMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
