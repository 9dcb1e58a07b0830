package engine

// Viewport describes how the canvas maps onto a larger display surface:
// an integer nearest-neighbor scale factor, the scaled draw size, and a
// centered offset. Integer scaling keeps pixels crisp; the leftover
// margin is split evenly and rounded down.
type Viewport struct {
	Scale            int
	OffsetX, OffsetY int
	DrawW, DrawH     int
}

// FitViewport computes the largest integer upscale of a canvasW x canvasH
// canvas that fits a displayW x displayH surface, clamped to at least 1.
// When the display is smaller than the canvas the offsets go negative
// (floored), centering the overflowing image.
func FitViewport(displayW, displayH, canvasW, canvasH int) Viewport {
	scale := displayW / canvasW
	if sy := displayH / canvasH; sy < scale {
		scale = sy
	}
	if scale < 1 {
		scale = 1
	}
	drawW := canvasW * scale
	drawH := canvasH * scale
	return Viewport{
		Scale:   scale,
		OffsetX: floorDiv(displayW-drawW, 2),
		OffsetY: floorDiv(displayH-drawH, 2),
		DrawW:   drawW,
		DrawH:   drawH,
	}
}

// floorDiv divides rounding toward negative infinity; Go's integer
// division truncates toward zero, which differs for negative margins.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
