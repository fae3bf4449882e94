package core

// Color is a 24-bit RGB color. The platform decides how to approximate it
// on the actual terminal.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}
