// Package bounce is the built-in demo scene: a small checker sprite
// bouncing around the world over crosshair guide lines, viewed through a
// pannable camera.
package bounce

import (
	"math"

	"github.com/vovakirdan/retropix/internal/camera"
	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/engine"
	"github.com/vovakirdan/retropix/internal/input"
	"github.com/vovakirdan/retropix/internal/registry"
)

const (
	spriteSize = 8
	camSpeed   = 40.0 // world units per second while a pan key is held
)

func init() {
	registry.Register("bounce", func() engine.Scene { return New() })
}

// Scene bounces a sprite inside a world rectangle matching the canvas,
// with a slight sine wobble on the vertical axis. Arrow keys pan the
// camera; space pauses. Losing display focus pauses and drops all held
// keys, since no key-up events follow a focus loss.
type Scene struct {
	t, x, y float64
	vx, vy  float64

	sprite *canvas.Sprite
	cam    *camera.Camera
	held   map[input.Key]bool
	paused bool
}

// New creates the scene in its initial state.
func New() *Scene {
	return &Scene{
		x:  10,
		y:  20,
		vx: 32,
		vy: 20,
		sprite: canvas.Checker(spriteSize, spriteSize,
			canvas.RGBA(230, 120, 255, 255),
			canvas.RGBA(40, 10, 60, 255)),
		held: make(map[input.Key]bool),
	}
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "bounce" }

// Title returns the display name.
func (s *Scene) Title() string { return "Bouncing Sprite" }

// Load swaps the procedural checker for a user-supplied sprite when one
// is available; the built-in sprite is kept otherwise.
func (s *Scene) Load(assets engine.AssetSource) error {
	if assets == nil {
		return nil
	}
	if sp, err := assets.Sprite("bounce.png"); err == nil {
		s.sprite = sp
	}
	return nil
}

// Update advances the bounce physics by one fixed step and applies
// camera panning for held keys.
func (s *Scene) Update(dt float64, fb *canvas.Canvas) {
	s.ensureCamera(fb)
	if s.paused {
		return
	}

	s.t += dt
	s.x += s.vx * dt
	s.y += s.vy*dt + math.Sin(s.t*2)*8*dt

	if s.x < 0 || s.x > float64(fb.Width()-s.sprite.W) {
		s.vx = -s.vx
	}
	if s.y < 0 || s.y > float64(fb.Height()-s.sprite.H) {
		s.vy = -s.vy
	}

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

// Draw renders the frame: dark clear, crosshair guides, then the sprite
// composited through the camera.
func (s *Scene) Draw(fb *canvas.Canvas) {
	s.ensureCamera(fb)

	fb.Clear(canvas.RGB(8, 8, 10))

	guide := canvas.RGB(30, 30, 50)
	fb.Line(0, fb.Height()/2, fb.Width()-1, fb.Height()/2, guide)
	fb.Line(fb.Width()/2, 0, fb.Width()/2, fb.Height()-1, guide)

	fb.BlitToCamera(s.cam, s.sprite, s.x, s.y)
}

// KeyEvent tracks pan keys and toggles pause on space.
func (s *Scene) KeyEvent(key input.Key, down bool) {
	switch key {
	case "left", "right", "up", "down":
		if down {
			s.held[key] = true
		} else {
			delete(s.held, key)
		}
	case " ":
		if down {
			s.paused = !s.paused
		}
	}
}

// FocusChanged pauses on blur and forgets held keys; the engine never
// delivers key-up events for keys held across a focus loss.
func (s *Scene) FocusChanged(focused bool) {
	if !focused {
		clear(s.held)
		s.paused = true
	}
}

// Camera exposes the scene camera for tests.
func (s *Scene) Camera() *camera.Camera { return s.cam }

// Paused reports whether the simulation is paused.
func (s *Scene) Paused() bool { return s.paused }

// Position returns the sprite's current world position.
func (s *Scene) Position() (x, y float64) { return s.x, s.y }

func (s *Scene) ensureCamera(fb *canvas.Canvas) {
	if s.cam != nil {
		return
	}
	// Viewport dimensions are fixed to the canvas dimensions.
	cam, err := camera.New(fb.Width(), fb.Height())
	if err != nil {
		panic(err) // unreachable: the engine validated the canvas size
	}
	s.cam = cam
}
