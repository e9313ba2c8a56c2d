// @focus: #style { ansi }
package style

import (
	"io"
	"os"

	"github.com/lixenwraith/termstyle/screen"
)

// Pre-allocated ANSI sequence fragments (avoid allocations on the hot path)
var (
	// CSI sequences
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// sgrBase maps named colors to their foreground SGR code.
// Dark variants use the classic 30-37 range, bright variants 90-97.
// Background codes are the same plus 10.
var sgrBase = [...]int{
	nameBlack:       30,
	nameDarkRed:     31,
	nameDarkGreen:   32,
	nameDarkYellow:  33,
	nameDarkBlue:    34,
	nameDarkMagenta: 35,
	nameDarkCyan:    36,
	nameGrey:        37,
	nameRed:         91,
	nameGreen:       92,
	nameYellow:      93,
	nameBlue:        94,
	nameMagenta:     95,
	nameCyan:        96,
	nameWhite:       97,
}

// ansiBackend emits standard terminal control sequences through the
// shared screen handle. The color mode decides whether 24-bit requests
// go out as 38;2 sequences or degrade to the nearest palette entry.
type ansiBackend struct {
	mode ColorMode
}

func newAnsiBackend(mode ColorMode) *ansiBackend {
	return &ansiBackend{mode: mode}
}

func (a *ansiBackend) SetForeground(c Color, s *screen.Screen) error {
	_, err := s.WriteRaw(a.appendSGR(make([]byte, 0, 24), c, false))
	return err
}

func (a *ansiBackend) SetBackground(c Color, s *screen.Screen) error {
	_, err := s.WriteRaw(a.appendSGR(make([]byte, 0, 24), c, true))
	return err
}

func (a *ansiBackend) Reset(s *screen.Screen) error {
	_, err := s.WriteRaw(csiSGR0)
	return err
}

// appendSGR composes the escape sequence for one attribute change so the
// whole change goes out in a single serialized write.
func (a *ansiBackend) appendSGR(buf []byte, c Color, bg bool) []byte {
	switch c.kind {
	case kindAnsi:
		if bg {
			buf = append(buf, csiBg256...)
		} else {
			buf = append(buf, csiFg256...)
		}
		buf = appendInt(buf, int(c.ansi))
		return append(buf, 'm')

	case kindRGB:
		if a.mode != ColorModeTrueColor {
			if bg {
				buf = append(buf, csiBg256...)
			} else {
				buf = append(buf, csiFg256...)
			}
			buf = appendInt(buf, int(rgbTo256(c.rgb)))
			return append(buf, 'm')
		}
		if bg {
			buf = append(buf, csiBgRGB...)
		} else {
			buf = append(buf, csiFgRGB...)
		}
		buf = appendInt(buf, int(c.rgb.R))
		buf = append(buf, ';')
		buf = appendInt(buf, int(c.rgb.G))
		buf = append(buf, ';')
		buf = appendInt(buf, int(c.rgb.B))
		return append(buf, 'm')

	default:
		if c.name == nameReset {
			if bg {
				return append(buf, csiDefaultBg...)
			}
			return append(buf, csiDefaultFg...)
		}
		code := sgrBase[c.name]
		if bg {
			code += 10
		}
		buf = append(buf, csi...)
		buf = appendInt(buf, code)
		return append(buf, 'm')
	}
}

// appendInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	if n < 100 {
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(buf, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var tmp [5]byte
	i := 4
	for n > 0 {
		tmp[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(buf, tmp[i+1:]...)
}

// EmergencyReset restores default terminal attributes directly on w,
// bypassing the screen lock. Crash paths only; errors ignored.
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
