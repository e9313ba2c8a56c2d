package style

// Console attribute bits, mirroring wincon.h. Kept out of the
// build-tagged file so the Color translation stays testable on every
// platform.
const (
	attrFgBlue      uint16 = 0x0001
	attrFgGreen     uint16 = 0x0002
	attrFgRed       uint16 = 0x0004
	attrFgIntensity uint16 = 0x0008

	attrFgMask uint16 = 0x000F
	attrBgMask uint16 = 0x00F0
)

// consoleBase maps named colors to a foreground attribute nibble.
var consoleBase = [...]uint16{
	nameBlack:       0,
	nameDarkRed:     attrFgRed,
	nameDarkGreen:   attrFgGreen,
	nameDarkYellow:  attrFgRed | attrFgGreen,
	nameDarkBlue:    attrFgBlue,
	nameDarkMagenta: attrFgRed | attrFgBlue,
	nameDarkCyan:    attrFgGreen | attrFgBlue,
	nameGrey:        attrFgRed | attrFgGreen | attrFgBlue,
	nameRed:         attrFgRed | attrFgIntensity,
	nameGreen:       attrFgGreen | attrFgIntensity,
	nameYellow:      attrFgRed | attrFgGreen | attrFgIntensity,
	nameBlue:        attrFgBlue | attrFgIntensity,
	nameMagenta:     attrFgRed | attrFgBlue | attrFgIntensity,
	nameCyan:        attrFgGreen | attrFgBlue | attrFgIntensity,
	nameWhite:       attrFgRed | attrFgGreen | attrFgBlue | attrFgIntensity,
}

// ansiConsole maps the 16 standard palette indices to attribute nibbles.
// ANSI channel order is RGB, console bit order is BGR.
var ansiConsole = [16]uint16{
	0,
	attrFgRed,
	attrFgGreen,
	attrFgRed | attrFgGreen,
	attrFgBlue,
	attrFgRed | attrFgBlue,
	attrFgGreen | attrFgBlue,
	attrFgRed | attrFgGreen | attrFgBlue,
	attrFgIntensity,
	attrFgRed | attrFgIntensity,
	attrFgGreen | attrFgIntensity,
	attrFgRed | attrFgGreen | attrFgIntensity,
	attrFgBlue | attrFgIntensity,
	attrFgRed | attrFgBlue | attrFgIntensity,
	attrFgGreen | attrFgBlue | attrFgIntensity,
	attrFgRed | attrFgGreen | attrFgBlue | attrFgIntensity,
}

// rgbConsole approximates a 24-bit value with a 16-color attribute
// nibble: one bit per channel above mid level, intensity when the
// channels run hot overall.
func rgbConsole(c RGB) uint16 {
	var attr uint16
	if c.R >= 128 {
		attr |= attrFgRed
	}
	if c.G >= 128 {
		attr |= attrFgGreen
	}
	if c.B >= 128 {
		attr |= attrFgBlue
	}
	if int(c.R)+int(c.G)+int(c.B) >= 576 {
		attr |= attrFgIntensity
	}
	return attr
}

// consoleAttr translates a Color into a console attribute nibble,
// shifted into the background position when bg is set. Reset is resolved
// by the caller against the attributes captured at construction.
func consoleAttr(c Color, bg bool) uint16 {
	var attr uint16
	switch c.kind {
	case kindNamed:
		if c.name == nameReset {
			// Caller substitutes the attributes captured at construction
			return 0
		}
		attr = consoleBase[c.name]
	case kindAnsi:
		if c.ansi < 16 {
			attr = ansiConsole[c.ansi]
		} else {
			attr = rgbConsole(palette256RGB(c.ansi))
		}
	case kindRGB:
		attr = rgbConsole(c.rgb)
	}
	if bg {
		return attr << 4
	}
	return attr
}
