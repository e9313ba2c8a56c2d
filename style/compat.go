package style

import (
	"github.com/gdamore/tcell/v2"
)

// ansiIndex maps named colors to their standard 16-palette index.
// Dark variants occupy 0-7, bright variants 9-15.
var ansiIndex = [...]uint8{
	nameBlack:       0,
	nameDarkRed:     1,
	nameDarkGreen:   2,
	nameDarkYellow:  3,
	nameDarkBlue:    4,
	nameDarkMagenta: 5,
	nameDarkCyan:    6,
	nameGrey:        7,
	nameRed:         9,
	nameGreen:       10,
	nameYellow:      11,
	nameBlue:        12,
	nameMagenta:     13,
	nameCyan:        14,
	nameWhite:       15,
}

// indexNamed is the reverse of ansiIndex for the entries that have a
// symbolic name. Index 8 (bright black) folds into Grey.
var indexNamed = map[int]Color{
	0: Black, 1: DarkRed, 2: DarkGreen, 3: DarkYellow,
	4: DarkBlue, 5: DarkMagenta, 6: DarkCyan, 7: Grey,
	8: Grey, 9: Red, 10: Green, 11: Yellow,
	12: Blue, 13: Magenta, 14: Cyan, 15: White,
}

// Tcell converts c to the equivalent tcell color for code migrating
// between this package and gdamore/tcell. Remove after full migration.
func (c Color) Tcell() tcell.Color {
	switch c.kind {
	case kindAnsi:
		return tcell.PaletteColor(int(c.ansi))
	case kindRGB:
		return tcell.NewRGBColor(int32(c.rgb.R), int32(c.rgb.G), int32(c.rgb.B))
	default:
		if c.name == nameReset {
			return tcell.ColorDefault
		}
		return tcell.PaletteColor(int(ansiIndex[c.name]))
	}
}

// FromTcell converts a tcell color to the nearest Color value.
func FromTcell(tc tcell.Color) Color {
	if tc == tcell.ColorDefault || !tc.Valid() {
		return Reset
	}
	if tc.IsRGB() {
		r, g, b := tc.RGB()
		return FromRGB(uint8(r), uint8(g), uint8(b))
	}
	idx := int(tc &^ tcell.ColorValid)
	if c, ok := indexNamed[idx]; ok {
		return c
	}
	if idx < 256 {
		return Ansi(uint8(idx))
	}
	// W3C named colors beyond the palette resolve through their RGB value
	r, g, b := tc.RGB()
	return FromRGB(uint8(r), uint8(g), uint8(b))
}
