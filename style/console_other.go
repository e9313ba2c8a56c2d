//go:build !windows

package style

import (
	"github.com/lixenwraith/termstyle/screen"
)

// Non-Windows platforms have no native console attribute API; selection
// falls through to the escape-sequence backend.
func newConsoleBackend(_ *screen.Screen) (Backend, bool) {
	return nil, false
}
