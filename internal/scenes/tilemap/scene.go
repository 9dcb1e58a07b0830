// Package tilemap renders an endless checkered tile grid through the
// camera's visibility query. It exists to exercise tile culling: arrow
// keys pan, '+'/'-' zoom, and only tiles the camera reports visible are
// ever touched.
package tilemap

import (
	"github.com/vovakirdan/retropix/internal/camera"
	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/engine"
	"github.com/vovakirdan/retropix/internal/input"
	"github.com/vovakirdan/retropix/internal/registry"
)

const (
	tileSize = 16
	camSpeed = 60.0 // world units per second while a pan key is held
	zoomStep = 1.25
	minZoom  = 0.25
	maxZoom  = 4.0
)

func init() {
	registry.Register("tilemap", func() engine.Scene { return New() })
}

// Scene draws the visible portion of an infinite tile grid.
type Scene struct {
	engine.BaseScene

	cam  *camera.Camera
	held map[input.Key]bool
}

// New creates the scene in its initial state.
func New() *Scene {
	return &Scene{held: make(map[input.Key]bool)}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "tilemap" }

// Title returns the display name.
func (s *Scene) Title() string { return "Tile Grid" }

// Update pans and zooms the camera for held keys.
func (s *Scene) Update(dt float64, fb *canvas.Canvas) {
	s.ensureCamera(fb)

	if s.held["left"] {
		s.cam.X -= camSpeed * dt
	}
	if s.held["right"] {
		s.cam.X += camSpeed * dt
	}
	if s.held["up"] {
		s.cam.Y -= camSpeed * dt
	}
	if s.held["down"] {
		s.cam.Y += camSpeed * dt
	}
}

// Draw fills every visible tile, shading by tile parity and outlining the
// tile borders. Tiles outside the camera's visible range are never
// touched.
func (s *Scene) Draw(fb *canvas.Canvas) {
	s.ensureCamera(fb)

	fb.Clear(canvas.RGB(12, 12, 16))

	shadeA := canvas.RGB(36, 44, 40)
	shadeB := canvas.RGB(24, 30, 28)
	border := canvas.RGB(16, 20, 18)

	x0, y0, x1, y1 := s.cam.VisibleTiles(tileSize)

	// Zoomed out, the viewport spans viewport/zoom world units, more than
	// the zoom-free visibility query covers; widen the far edges so every
	// pixel still has a tile under it.
	if z := s.cam.Zoom; z < 1 {
		x1 = x0 + int(float64(s.cam.ViewportW)/(z*tileSize)) + 2
		y1 = y0 + int(float64(s.cam.ViewportH)/(z*tileSize)) + 2
	}

	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			shade := shadeA
			if (tx+ty)%2 != 0 {
				shade = shadeB
			}
			s.drawTile(fb, tx, ty, shade, border)
		}
	}
}

// KeyEvent tracks pan keys and applies zoom steps.
func (s *Scene) KeyEvent(key input.Key, down bool) {
	switch key {
	case "left", "right", "up", "down":
		if down {
			s.held[key] = true
		} else {
			delete(s.held, key)
		}
	case "+", "=":
		if down && s.cam != nil {
			s.setZoom(s.cam.Zoom * zoomStep)
		}
	case "-", "_":
		if down && s.cam != nil {
			s.setZoom(s.cam.Zoom / zoomStep)
		}
	}
}

// FocusChanged forgets held keys on blur; no key-up events follow a
// focus loss.
func (s *Scene) FocusChanged(focused bool) {
	if !focused {
		clear(s.held)
	}
}

// Camera exposes the scene camera for tests.
func (s *Scene) Camera() *camera.Camera { return s.cam }

func (s *Scene) setZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	// Clamped into a positive range above, so this cannot fail.
	_ = s.cam.SetZoom(zoom)
}

// drawTile fills one tile's on-screen footprint. The footprint is the
// span between the projected corners, so it stays consistent at any zoom.
func (s *Scene) drawTile(fb *canvas.Canvas, tx, ty int, shade, border canvas.Color) {
	px0, py0 := s.cam.WorldToScreen(float64(tx*tileSize), float64(ty*tileSize))
	px1, py1 := s.cam.WorldToScreen(float64((tx+1)*tileSize), float64((ty+1)*tileSize))

	for y := py0; y < py1; y++ {
		for x := px0; x < px1; x++ {
			col := shade
			if x == px0 || y == py0 {
				col = border
			}
			fb.Put(x, y, col)
		}
	}
}

func (s *Scene) ensureCamera(fb *canvas.Canvas) {
	if s.cam != nil {
		return
	}
	cam, err := camera.New(fb.Width(), fb.Height())
	if err != nil {
		panic(err) // unreachable: the engine validated the canvas size
	}
	s.cam = cam
}
