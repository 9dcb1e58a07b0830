// Package canvas provides the fixed-size CPU-side RGBA pixel buffer that
// scenes draw into, along with its drawing primitives: bulk clear, point
// plot, Bresenham lines, and alpha-composited sprite blits. All primitives
// clip silently at the buffer edges; out-of-bounds plotting is a no-op,
// never an error, so callers need no bounds pre-checks.
package canvas

import (
	"fmt"

	"github.com/vovakirdan/retropix/internal/camera"
)

// Canvas is a dense row-major RGBA pixel buffer with dimensions fixed at
// construction. It is created once at engine start, mutated in place every
// frame, and never resized.
type Canvas struct {
	w, h int
	pix  []byte // always exactly w*h*4 bytes, RGBA order
}

// New creates a canvas of the given size filled with opaque black.
// Non-positive dimensions are rejected.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: invalid dimensions %dx%d (must be positive)", w, h)
	}
	c := &Canvas{w: w, h: h, pix: make([]byte, w*h*4)}
	c.Clear(Black)
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Pix exposes the raw RGBA buffer for the presentation collaborator.
// The slice stays valid for the canvas lifetime; treat it as read-only.
func (c *Canvas) Pix() []byte { return c.pix }

// Clear fills every pixel with the given color. The stored alpha channel
// is forced to 255 regardless of col.A: after any bulk clear the canvas
// is a fully opaque surface.
func (c *Canvas) Clear(col Color) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = 255
	}
}

// Put overwrites one pixel. Coordinates outside [0,w)x[0,h) are silently
// ignored.
func (c *Canvas) Put(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	i := (y*c.w + x) * 4
	c.pix[i] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// At returns the stored pixel at (x, y). Out-of-bounds reads return the
// zero Color.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Color{}
	}
	i := (y*c.w + x) * 4
	return Color{c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3]}
}

// Line draws an 8-connected Bresenham line from (x0,y0) to (x1,y1), both
// endpoints included, using integer arithmetic only. Segments leaving the
// canvas are clipped per pixel by Put. Note that Bresenham is not
// perfectly direction-symmetric in every octant; swapping the endpoints
// may shift individual interior pixels by one.
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Put(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// BlitRGBA composites sp onto the canvas with its top-left corner at
// (sx, sy) using a standard source-over blend. Source pixels with zero
// alpha are skipped, and destination alpha is written as 255 regardless
// of the blend inputs, matching the Clear policy. Pixels falling outside
// the canvas are skipped individually. No allocation occurs.
func (c *Canvas) BlitRGBA(sx, sy int, sp *Sprite) {
	for j := 0; j < sp.H; j++ {
		py := j + sy
		if py < 0 || py >= c.h {
			continue
		}
		for i := 0; i < sp.W; i++ {
			px := i + sx
			if px < 0 || px >= c.w {
				continue
			}
			s := sp.Pix[j*sp.W+i]
			if s.A == 0 {
				continue
			}
			a := float64(s.A) / 255.0
			d := (py*c.w + px) * 4
			c.pix[d] = uint8(float64(s.R)*a + float64(c.pix[d])*(1-a))
			c.pix[d+1] = uint8(float64(s.G)*a + float64(c.pix[d+1])*(1-a))
			c.pix[d+2] = uint8(float64(s.B)*a + float64(c.pix[d+2])*(1-a))
			c.pix[d+3] = 255
		}
	}
}

// BlitToCamera projects a world-space sprite position through cam and
// composites the sprite only if its bounding box intersects the viewport,
// so fully off-screen sprites cost a single rectangle test. The box used
// for the visibility test scales with cam.Zoom, but the pixel data itself
// is blitted unscaled: zoom affects culling only, not resampling.
func (c *Canvas) BlitToCamera(cam *camera.Camera, sp *Sprite, wx, wy float64) {
	sx, sy := cam.WorldToScreen(wx, wy)
	box := Rect{
		X: sx,
		Y: sy,
		W: int(float64(sp.W) * cam.Zoom),
		H: int(float64(sp.H) * cam.Zoom),
	}
	view := Rect{W: cam.ViewportW, H: cam.ViewportH}
	if !box.Intersects(view) {
		return
	}
	c.BlitRGBA(sx, sy, sp)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
