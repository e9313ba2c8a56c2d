package style

import (
	"github.com/lixenwraith/termstyle/screen"
)

// TerminalColor performs color related actions against the shared
// screen. The backend variant is selected once at construction and
// treated as immutable afterwards; each call is independent, later calls
// simply overwrite the previously requested attribute.
//
// Styling is best effort throughout: when no backend could be
// constructed for the platform, every call is a silent no-op.
type TerminalColor struct {
	backend Backend // nil in the degraded state
	screen  *screen.Screen
}

// New selects a backend for the current platform and binds it to s.
// Construction never fails and never blocks. The optional mode overrides
// the detected encoding for 24-bit requests on the escape path.
func New(s *screen.Screen, mode ...ColorMode) *TerminalColor {
	m := DetectColorMode()
	if len(mode) > 0 {
		m = mode[0]
	}
	return &TerminalColor{backend: selectBackend(s, m), screen: s}
}

// SetFg sets the foreground color of the font.
func (t *TerminalColor) SetFg(c Color) {
	if t.backend == nil {
		return
	}
	t.backend.SetForeground(c, t.screen)
}

// SetBg sets the background color.
func (t *TerminalColor) SetBg(c Color) {
	if t.backend == nil {
		return
	}
	t.backend.SetBackground(c, t.screen)
}

// Reset restores the terminal colors and attributes to default.
func (t *TerminalColor) Reset() {
	if t.backend == nil {
		return
	}
	t.backend.Reset(t.screen)
}

// AvailableColorCount reports the terminal's coarse color capability
// from $TERM: 256 when the terminal advertises a 256-color palette, 8
// for every other value including an unset TERM. Pure query, never
// mutates state.
func (t *TerminalColor) AvailableColorCount() int {
	return availableColorCount()
}
