package canvas

// Color is a single RGBA pixel value with 8 bits per channel.
// Alpha only matters as blit input; the canvas itself stays opaque.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// Predefined colors for scenes and tests.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = Color{}
)
