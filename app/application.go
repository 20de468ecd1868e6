package app

import (
	"errors"

	"github.com/gogpu/gg"
)

// Lifecycle errors returned by backends.
var (
	// ErrAlreadySetUp is returned when Setup is called more than once.
	ErrAlreadySetUp = errors.New("app: already set up")

	// ErrNotInitialized is returned when Loop is called before Setup.
	ErrNotInitialized = errors.New("app: not initialized")

	// ErrRunning is returned when Loop is entered while already running.
	ErrRunning = errors.New("app: loop already running")

	// ErrTerminated is returned when Loop is called on a finished instance.
	ErrTerminated = errors.New("app: terminated")
)

// Application is the capability set every backend implements.
//
// Setup and Loop belong to the drive goroutine. Every other method may be
// called from any goroutine holding the instance, including while a frame
// is being produced; changes become visible no later than the next cycle.
type Application interface {
	// Setup acquires backend resources and runs Program.Setup.
	// It must be called exactly once, before Loop.
	Setup() error

	// Loop drives frames until Exit has been requested.
	Loop() error

	// RequestDraw schedules one more frame. Calls made before the pending
	// request is consumed coalesce into that single frame.
	RequestDraw()

	// Exit asks Loop to return after the in-flight frame, if any.
	// Repeated calls have no further effect.
	Exit()

	// ClipboardContents returns the clipboard text and whether any is set.
	ClipboardContents() (string, bool)
	SetClipboardContents(text string)
	ClearClipboardContents()

	WindowTitle() string
	SetWindowTitle(title string)

	WindowPosition() gg.Point
	SetWindowPosition(p gg.Point)

	CursorPosition() gg.Point
	SetCursorPosition(p gg.Point)

	CursorVisible() bool
	SetCursorVisible(visible bool)

	// Seconds is the time elapsed since Loop started. It is zero before
	// that and never decreases.
	Seconds() float64

	PresentationMode() PresentationMode
	// SetPresentationMode switches modes starting with the next cycle.
	// Values outside the defined set are ignored.
	SetPresentationMode(mode PresentationMode)

	// State reports the lifecycle stage.
	State() State
}
