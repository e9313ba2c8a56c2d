//go:build windows

package style

import (
	"golang.org/x/sys/windows"

	"github.com/lixenwraith/termstyle/screen"
)

// consoleBackend sets colors through the Windows console attribute API
// instead of emitting bytes. The attributes active at construction time
// are captured so Reset can restore them.
type consoleBackend struct {
	original uint16
}

// newConsoleBackend probes the screen's console handle. Screens without
// a real console (writer-backed, redirected output) fall through to the
// escape-sequence backend.
func newConsoleBackend(s *screen.Screen) (Backend, bool) {
	f := s.File()
	if f == nil {
		return nil, false
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info); err != nil {
		return nil, false
	}
	return &consoleBackend{original: uint16(info.Attributes)}, true
}

func (b *consoleBackend) SetForeground(c Color, s *screen.Screen) error {
	attr := consoleAttr(c, false)
	if c == Reset {
		attr = b.original & attrFgMask
	}
	return b.apply(s, attr, attrFgMask)
}

func (b *consoleBackend) SetBackground(c Color, s *screen.Screen) error {
	attr := consoleAttr(c, true)
	if c == Reset {
		attr = b.original & attrBgMask
	}
	return b.apply(s, attr, attrBgMask)
}

func (b *consoleBackend) Reset(s *screen.Screen) error {
	f := s.File()
	if f == nil {
		return nil
	}
	var err error
	s.Exclusive(func() {
		err = windows.SetConsoleTextAttribute(windows.Handle(f.Fd()), b.original)
	})
	return err
}

// apply rewrites the masked portion of the current attribute word under
// the screen lock, leaving the other half untouched.
func (b *consoleBackend) apply(s *screen.Screen, attr, mask uint16) error {
	f := s.File()
	if f == nil {
		return nil
	}
	var err error
	s.Exclusive(func() {
		h := windows.Handle(f.Fd())
		var info windows.ConsoleScreenBufferInfo
		if err = windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
			return
		}
		next := uint16(info.Attributes)&^mask | attr
		err = windows.SetConsoleTextAttribute(h, next)
	})
	return err
}
