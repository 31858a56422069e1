package draw

import "fmt"

// Color is a 24-bit RGB color for ANSI truecolor output.
type Color struct {
	R, G, B uint8
}

// HUD palette.
var (
	ColorRed      = Color{R: 230, G: 41, B: 55}
	ColorGreen    = Color{R: 0, G: 228, B: 48}
	ColorWhite    = Color{R: 245, G: 245, B: 245}
	ColorDarkGray = Color{R: 80, G: 80, B: 80}
)

// Lerp blends a toward b by ratio in [0, 1], per channel.
func Lerp(a, b Color, ratio float64) Color {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return Color{
		R: uint8((1-ratio)*float64(a.R) + ratio*float64(b.R)),
		G: uint8((1-ratio)*float64(a.G) + ratio*float64(b.G)),
		B: uint8((1-ratio)*float64(a.B) + ratio*float64(b.B)),
	}
}

// Foreground returns the ANSI truecolor foreground sequence for c.
func (c Color) Foreground() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}
