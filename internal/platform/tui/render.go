package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/engine"
)

// letterbox is the color of display area outside the upscaled canvas.
var letterbox = canvas.RGB(18, 18, 22)

// RenderFrame draws an engine frame into a cols x rows terminal grid
// using '▀' half-blocks: each cell carries two vertically stacked pixels
// via its foreground (top) and background (bottom) colors, giving square
// pixels at one canvas pixel per column. The frame's integer-upscale
// viewport, computed in the (cols, rows*2) pixel space, keeps the image
// centered and crisp.
//
// Adjacent cells sharing the same color pair are grouped into one styled
// run to keep the ANSI escape overhead down.
func RenderFrame(frame engine.Frame, cols, rows int) string {
	if frame.Canvas == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(cols*rows*8 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			top := samplePixel(frame, x, row*2)
			bot := samplePixel(frame, x, row*2+1)

			// Collect the run of cells with the same color pair
			run := 0
			for x+run < cols {
				t := samplePixel(frame, x+run, row*2)
				b := samplePixel(frame, x+run, row*2+1)
				if t != top || b != bot {
					break
				}
				run++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bot)))
			sb.WriteString(style.Render(strings.Repeat("▀", run)))
			x += run
		}
	}
	return sb.String()
}

// samplePixel maps a display-space pixel back through the upscale
// viewport onto the canvas, returning the letterbox color outside it.
func samplePixel(frame engine.Frame, dx, dy int) canvas.Color {
	vp := frame.Viewport
	cx := (dx - vp.OffsetX) / vp.Scale
	cy := (dy - vp.OffsetY) / vp.Scale
	if dx < vp.OffsetX || dy < vp.OffsetY ||
		cx >= frame.Canvas.Width() || cy >= frame.Canvas.Height() {
		return letterbox
	}
	return frame.Canvas.At(cx, cy)
}

func hexColor(c canvas.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
