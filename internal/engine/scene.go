package engine

import (
	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/input"
)

// AssetSource supplies decoded sprite pixel data to scenes. The engine
// never parses image files itself; implementations live outside the core
// (see internal/assets).
type AssetSource interface {
	// Sprite returns the decoded sprite stored under name.
	Sprite(name string) (*canvas.Sprite, error)
}

// Scene is the simulation unit driven by the engine loop. The loop
// exclusively owns one scene instance for its lifetime; no scene method
// is ever invoked concurrently.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g. "bounce").
	// Used for CLI commands and registry lookup.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Load performs one-time setup. Called exactly once, before the loop
	// starts ticking.
	Load(assets AssetSource) error

	// Update advances the simulation by one fixed timestep. Called zero
	// or more times per external tick; dt is always the configured
	// constant step.
	Update(dt float64, fb *canvas.Canvas)

	// Draw emits the final frame content into the canvas. Called exactly
	// once per external tick, after all updates.
	Draw(fb *canvas.Canvas)

	// KeyEvent receives one deduplicated key transition.
	KeyEvent(key input.Key, down bool)

	// FocusChanged reports display focus changes. After a focus loss the
	// scene must assume every key is up; no synthetic key-up events are
	// delivered for keys that were held.
	FocusChanged(focused bool)
}

// BaseScene provides no-op implementations of the optional Scene hooks.
// Embed it so a scene only has to implement the methods it cares about.
type BaseScene struct{}

// Load is a no-op for scenes without assets.
func (BaseScene) Load(AssetSource) error { return nil }

// KeyEvent ignores key transitions.
func (BaseScene) KeyEvent(input.Key, bool) {}

// FocusChanged ignores focus changes.
func (BaseScene) FocusChanged(bool) {}
