package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termstyle"
	"github.com/lixenwraith/termstyle/style"
)

var colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")

func main() {
	// Panic recovery: restore default attributes even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			style.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMSTYLE-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	var mode style.ColorMode
	switch *colorModeFlag {
	case "256":
		mode = style.ColorMode256
	case "truecolor", "true", "24bit":
		mode = style.ColorModeTrueColor
	default:
		mode = style.DetectColorMode()
	}

	ctx := termstyle.NewContext()
	ct := style.New(ctx.Screen, mode)
	defer ct.Reset()

	fmt.Printf("available colors: %d\n\n", ct.AvailableColorCount())

	named := []style.Color{
		style.Black, style.DarkRed, style.DarkGreen, style.DarkYellow,
		style.DarkBlue, style.DarkMagenta, style.DarkCyan, style.Grey,
		style.Red, style.Green, style.Yellow, style.Blue,
		style.Magenta, style.Cyan, style.White,
	}
	for _, c := range named {
		ct.SetFg(c)
		fmt.Printf("%-14s", c)
		ct.Reset()
		fmt.Println()
	}
	fmt.Println()

	// Parsed colors behave exactly like their constants
	ct.SetFg(style.Parse("red"))
	fmt.Print("parsed \"red\"")
	ct.Reset()
	fmt.Println()
	ct.SetFg(style.Parse("#3c8cf0"))
	fmt.Print("parsed \"#3c8cf0\"")
	ct.Reset()
	fmt.Print("\n\n")

	// 6x6x6 color cube
	for g := uint8(0); g < 6; g++ {
		for r := uint8(0); r < 6; r++ {
			for b := uint8(0); b < 6; b++ {
				ct.SetBg(style.Ansi(style.Cube256(r, g, b)))
				fmt.Print("  ")
			}
			ct.Reset()
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println()

	// Grayscale ramp
	for step := uint8(0); step < 24; step++ {
		ct.SetBg(style.Ansi(style.Gray256(step)))
		fmt.Print("  ")
	}
	ct.Reset()
	fmt.Println()

	// Truecolor ramp, downconverted automatically in 256 mode
	for i := 0; i < 48; i++ {
		ct.SetBg(style.FromRGB(uint8(255-i*5), uint8(i*3), uint8(i*5)))
		fmt.Print(" ")
	}
	ct.Reset()
	fmt.Println()
}
