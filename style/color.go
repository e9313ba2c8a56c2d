package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// colorKind discriminates Color variants
type colorKind uint8

const (
	kindNamed colorKind = iota
	kindAnsi
	kindRGB
)

// named identifies one of the closed set of symbolic colors
type named uint8

const (
	nameBlack named = iota
	nameDarkRed
	nameDarkGreen
	nameDarkYellow
	nameDarkBlue
	nameDarkMagenta
	nameDarkCyan
	nameGrey
	nameRed
	nameGreen
	nameYellow
	nameBlue
	nameMagenta
	nameCyan
	nameWhite
	nameReset
)

// Color is an immutable color request. Backends translate it into their
// own representation (escape code vs. console attribute word); the value
// itself carries no platform knowledge. Equality is structural, so Color
// values compare with ==.
type Color struct {
	kind colorKind
	name named // kindNamed only
	ansi uint8 // kindAnsi only
	rgb  RGB   // kindRGB only
}

// The closed set of named colors. Dark variants map to the classic
// 8-color range, the plain names to their bright counterparts. Reset
// requests the terminal's default color for the targeted attribute.
var (
	Black       = Color{kind: kindNamed, name: nameBlack}
	DarkRed     = Color{kind: kindNamed, name: nameDarkRed}
	DarkGreen   = Color{kind: kindNamed, name: nameDarkGreen}
	DarkYellow  = Color{kind: kindNamed, name: nameDarkYellow}
	DarkBlue    = Color{kind: kindNamed, name: nameDarkBlue}
	DarkMagenta = Color{kind: kindNamed, name: nameDarkMagenta}
	DarkCyan    = Color{kind: kindNamed, name: nameDarkCyan}
	Grey        = Color{kind: kindNamed, name: nameGrey}
	Red         = Color{kind: kindNamed, name: nameRed}
	Green       = Color{kind: kindNamed, name: nameGreen}
	Yellow      = Color{kind: kindNamed, name: nameYellow}
	Blue        = Color{kind: kindNamed, name: nameBlue}
	Magenta     = Color{kind: kindNamed, name: nameMagenta}
	Cyan        = Color{kind: kindNamed, name: nameCyan}
	White       = Color{kind: kindNamed, name: nameWhite}
	Reset       = Color{kind: kindNamed, name: nameReset}
)

// Ansi returns the extension color for an xterm 256-palette index.
func Ansi(n uint8) Color {
	return Color{kind: kindAnsi, ansi: n}
}

// FromRGB returns the extension color for a 24-bit RGB value. Terminals
// limited to the 256 palette receive the nearest palette entry instead.
func FromRGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, rgb: RGB{r, g, b}}
}

var colorNames = map[string]Color{
	"black":        Black,
	"dark_red":     DarkRed,
	"darkred":      DarkRed,
	"dark_green":   DarkGreen,
	"darkgreen":    DarkGreen,
	"dark_yellow":  DarkYellow,
	"darkyellow":   DarkYellow,
	"dark_blue":    DarkBlue,
	"darkblue":     DarkBlue,
	"dark_magenta": DarkMagenta,
	"darkmagenta":  DarkMagenta,
	"dark_cyan":    DarkCyan,
	"darkcyan":     DarkCyan,
	"grey":         Grey,
	"gray":         Grey,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"white":        White,
	"reset":        Reset,
}

// Parse maps text to a Color. Matching is case-insensitive and ignores
// surrounding whitespace; "#rrggbb" hex notation is accepted for 24-bit
// requests. Parse is total: anything unrecognized resolves to White, it
// never signals an error.
func Parse(s string) Color {
	t := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(t, "#") {
		if c, err := colorful.Hex(t); err == nil {
			r, g, b := c.RGB255()
			return FromRGB(r, g, b)
		}
		return White
	}
	if c, ok := colorNames[t]; ok {
		return c
	}
	return White
}

var namedStrings = [...]string{
	nameBlack:       "black",
	nameDarkRed:     "dark_red",
	nameDarkGreen:   "dark_green",
	nameDarkYellow:  "dark_yellow",
	nameDarkBlue:    "dark_blue",
	nameDarkMagenta: "dark_magenta",
	nameDarkCyan:    "dark_cyan",
	nameGrey:        "grey",
	nameRed:         "red",
	nameGreen:       "green",
	nameYellow:      "yellow",
	nameBlue:        "blue",
	nameMagenta:     "magenta",
	nameCyan:        "cyan",
	nameWhite:       "white",
	nameReset:       "reset",
}

// String returns the canonical parseable form of c.
func (c Color) String() string {
	switch c.kind {
	case kindAnsi:
		return fmt.Sprintf("ansi(%d)", c.ansi)
	case kindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.rgb.R, c.rgb.G, c.rgb.B)
	default:
		return namedStrings[c.name]
	}
}
