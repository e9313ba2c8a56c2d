// Package termstyle provides cross-platform terminal styling on top of a
// shared, serialized screen handle. Callers obtain a TerminalColor
// through Color and never deal with the platform backend directly.
package termstyle

import (
	"github.com/lixenwraith/termstyle/screen"
	"github.com/lixenwraith/termstyle/style"
)

// Context carries the shared screen handle that all terminal subsystems
// write through. Create one per logical terminal and hand it to every
// module that styles, moves the cursor or reads input.
type Context struct {
	Screen *screen.Screen
}

// NewContext returns a Context bound to stdout.
func NewContext() *Context {
	return &Context{Screen: screen.New()}
}

// NewContextScreen wraps a screen already shared with other subsystems.
func NewContextScreen(s *screen.Screen) *Context {
	return &Context{Screen: s}
}

// Color returns a TerminalColor whereon color related actions can be
// performed. It never fails; on a platform without any usable backend
// the returned facade silently ignores styling calls.
func Color(ctx *Context) *style.TerminalColor {
	return style.New(ctx.Screen)
}
