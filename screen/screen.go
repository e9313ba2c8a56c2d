// @focus: #sys { screen }
package screen

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Screen is the shared output target every styling subsystem writes
// through. Multiple logical owners (color, cursor, input) hold the same
// *Screen for the lifetime of the longest-lived holder; all mutation is
// serialized through its mutex.
type Screen struct {
	mu   sync.Mutex
	file *os.File  // native console object, nil when writer-backed
	out  io.Writer // emission destination, equals file when file-backed
}

// New returns a Screen bound to stdout. It never fails.
func New() *Screen {
	return &Screen{file: os.Stdout, out: os.Stdout}
}

// NewFile returns a Screen bound to an arbitrary file, e.g. /dev/tty or
// stderr.
func NewFile(f *os.File) *Screen {
	return &Screen{file: f, out: f}
}

// NewWriter returns a Screen bound to a plain writer. No native console
// object is available through it; File returns nil. A nil writer yields a
// screen that swallows all output.
func NewWriter(w io.Writer) *Screen {
	return &Screen{out: w}
}

// WriteRaw emits one raw byte sequence to the output target. The
// exclusive lock is held only for the duration of this single write and
// released on every exit path.
func (s *Screen) WriteRaw(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out == nil {
		return 0, nil
	}
	return s.out.Write(p)
}

// Exclusive runs fn while holding the screen lock. Backends that mutate
// terminal state through a native handle instead of the byte stream use
// this to get the same serialization as WriteRaw.
func (s *Screen) Exclusive(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// File returns the native console object, or nil when the screen is
// writer-backed.
func (s *Screen) File() *os.File {
	return s.file
}

// Writable reports whether the screen has a byte-emission destination.
func (s *Screen) Writable() bool {
	return s.out != nil
}

// IsTerminal reports whether the output target is an interactive
// terminal. Writer-backed screens are never terminals.
func (s *Screen) IsTerminal() bool {
	if s.file == nil {
		return false
	}
	return term.IsTerminal(int(s.file.Fd()))
}
