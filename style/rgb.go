package style

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearestCube maps a 0-255 channel value to the nearest cube level 0-5
func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// rgbTo256 finds the nearest 256-color palette index for an RGB value.
// The grayscale ramp (232-255, levels 8-238) wins over the color cube
// when the channels are close to equal and it is the closer match.
func rgbTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := uint8(232 + (gray-8)/10)

		grayLevel := 8 + int(grayIdx-grayscaleStart)*10
		grayDist := abs(int(c.R)-grayLevel) + abs(int(c.G)-grayLevel) + abs(int(c.B)-grayLevel)

		cr, cg, cb := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
		cubeDist := abs(int(c.R)-int(cubeValues[cr])) +
			abs(int(c.G)-int(cubeValues[cg])) +
			abs(int(c.B)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return 16 + 36*nearestCube(c.R) + 6*nearestCube(c.G) + nearestCube(c.B)
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return grayscaleStart + step
}

// ansi16RGB holds nominal RGB values for the 16 standard palette entries,
// used when a palette color has to be approximated on a native console.
var ansi16RGB = [16]RGB{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// palette256RGB returns the nominal RGB value of an xterm palette index.
func palette256RGB(n uint8) RGB {
	switch {
	case n < 16:
		return ansi16RGB[n]
	case n < grayscaleStart:
		i := n - 16
		return RGB{
			cubeValues[i/36],
			cubeValues[(i%36)/6],
			cubeValues[i%6],
		}
	default:
		level := 8 + 10*uint8(n-grayscaleStart)
		return RGB{level, level, level}
	}
}
