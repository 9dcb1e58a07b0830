// Package camera maps between an unbounded 2D world coordinate space and
// canvas pixel coordinates, and decides which world content is currently
// visible.
package camera

import (
	"fmt"
	"math"
)

// Camera holds a world-space position, a fixed viewport size and a zoom
// factor. Position and zoom are mutated by the simulation each frame; the
// viewport dimensions match the canvas and never change.
type Camera struct {
	// Position is the world coordinate mapped to the viewport's top-left
	// pixel. Unbounded in either sign.
	X, Y float64

	// Zoom level (1.0 = one world unit per pixel). Always positive.
	Zoom float64

	// Viewport dimensions in pixels, fixed at construction.
	ViewportW, ViewportH int
}

// New creates a camera at the world origin with 1:1 zoom.
func New(viewportW, viewportH int) (*Camera, error) {
	if viewportW <= 0 || viewportH <= 0 {
		return nil, fmt.Errorf("camera: invalid viewport %dx%d (must be positive)", viewportW, viewportH)
	}
	return &Camera{Zoom: 1.0, ViewportW: viewportW, ViewportH: viewportH}, nil
}

// SetZoom sets the zoom level. Non-positive values are rejected, never
// silently coerced.
func (c *Camera) SetZoom(zoom float64) error {
	if zoom <= 0 {
		return fmt.Errorf("camera: zoom must be positive, got %g", zoom)
	}
	c.Zoom = zoom
	return nil
}

// WorldToScreen converts a world position to canvas pixel coordinates.
// The result floors toward negative infinity rather than truncating
// toward zero, so world positions left of or above the camera map to
// correctly negative screen coordinates instead of collapsing onto
// pixel zero.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int) {
	sx = int(math.Floor((wx - c.X) * c.Zoom))
	sy = int(math.Floor((wy - c.Y) * c.Zoom))
	return sx, sy
}

// ScreenToWorld converts canvas pixel coordinates back to a world
// position. It is the exact inverse of WorldToScreen up to the floor
// rounding the forward mapping applies.
func (c *Camera) ScreenToWorld(sx, sy int) (wx, wy float64) {
	wx = float64(sx)/c.Zoom + c.X
	wy = float64(sy)/c.Zoom + c.Y
	return wx, wy
}

// VisibleTiles returns the half-open tile-index rectangle [x0,x1) x
// [y0,y1) covering the viewport for a grid of square tiles with the
// given edge length. The range includes one extra tile of margin on the
// far edges (viewport/tileSize + 2 per axis) so tiles partially visible
// at the viewport boundary are always included while panning, at the
// cost of occasionally drawing one extra tile. A non-positive tile size
// yields an empty range.
func (c *Camera) VisibleTiles(tileSize int) (x0, y0, x1, y1 int) {
	if tileSize <= 0 {
		return 0, 0, 0, 0
	}
	x0 = int(math.Floor(c.X / float64(tileSize)))
	y0 = int(math.Floor(c.Y / float64(tileSize)))
	x1 = x0 + c.ViewportW/tileSize + 2
	y1 = y0 + c.ViewportH/tileSize + 2
	return x0, y0, x1, y1
}
