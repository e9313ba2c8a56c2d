package style

import (
	"github.com/lixenwraith/termstyle/screen"
)

// Backend abstracts platform-specific color output.
// Implementations translate a Color request into either escape sequence
// bytes or a native console attribute call against the shared screen.
// A backend holds no terminal state of its own; whatever the terminal
// currently displays lives behind the screen handle.
//
// Every operation performs exactly one serialized attribute change.
// The returned error is a best-effort result channel; the facade
// swallows it.
type Backend interface {
	// SetForeground applies c as the foreground color.
	SetForeground(c Color, s *screen.Screen) error

	// SetBackground applies c as the background color.
	SetBackground(c Color, s *screen.Screen) error

	// Reset restores the terminal's default attributes.
	Reset(s *screen.Screen) error
}

// selectBackend picks the backend variant for the current platform. Runs
// once per facade; the allocation of the chosen backend is its only side
// effect. Platforms with a native console attribute API prefer it, with
// escape sequences as the runtime fallback. Returns nil when the screen
// has no usable destination at all.
func selectBackend(s *screen.Screen, mode ColorMode) Backend {
	if b, ok := newConsoleBackend(s); ok {
		return b
	}
	if s.Writable() {
		return newAnsiBackend(mode)
	}
	return nil
}
