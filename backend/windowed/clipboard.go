//go:build !nogpu

package windowed

import (
	"log/slog"

	"golang.design/x/clipboard"
)

// systemClipboard is the OS text clipboard.
type systemClipboard struct{}

// openSystemClipboard returns nil when the platform clipboard is not
// reachable (no display, CGO disabled); callers then keep clipboard text
// in memory.
func openSystemClipboard(log *slog.Logger) *systemClipboard {
	if err := clipboard.Init(); err != nil {
		log.Warn("windowed: system clipboard unavailable, using in-memory clipboard", "err", err)
		return nil
	}
	return &systemClipboard{}
}

func (systemClipboard) read() (string, bool) {
	data := clipboard.Read(clipboard.FmtText)
	if data == nil {
		return "", false
	}
	return string(data), true
}

func (systemClipboard) write(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// ClipboardContents reads the system clipboard when available.
func (a *Application) ClipboardContents() (string, bool) {
	if c := a.clip.Load(); c != nil {
		return c.read()
	}
	return a.Base.ClipboardContents()
}

// SetClipboardContents writes the system clipboard when available. The
// text is also kept in memory so it survives a clipboard that becomes
// unreachable later.
func (a *Application) SetClipboardContents(text string) {
	a.Base.SetClipboardContents(text)
	if c := a.clip.Load(); c != nil {
		text, _ = a.Base.ClipboardContents()
		c.write(text)
	}
}

// ClearClipboardContents empties the clipboard.
func (a *Application) ClearClipboardContents() {
	a.Base.ClearClipboardContents()
	if c := a.clip.Load(); c != nil {
		c.write("")
	}
}
