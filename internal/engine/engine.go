// Package engine implements the fixed-timestep driver loop at the heart
// of retropix. The engine owns one canvas and one scene; each external
// tick it drains queued input signals through the key latch, converts
// accumulated wall-clock time into zero or more constant-dt update calls,
// draws exactly once, and hands back the canvas together with an
// integer-upscale viewport for presentation.
//
// Everything runs on the caller's goroutine: no engine method blocks,
// and no locking is needed because there is no parallelism inside the
// core.
package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retropix/internal/canvas"
	"github.com/vovakirdan/retropix/internal/input"
)

type eventKind uint8

const (
	eventKeyDown eventKind = iota
	eventKeyUp
	eventFocus
)

// rawEvent is a queued input signal awaiting the next tick.
type rawEvent struct {
	kind    eventKind
	key     input.Key
	focused bool
}

// Frame is handed to the presentation collaborator once per tick. The
// canvas reference stays valid (and is rewritten) until the next Tick.
type Frame struct {
	// Canvas is the engine-owned pixel buffer after this tick's draw.
	Canvas *canvas.Canvas

	// Viewport is the integer-upscale rect for the current display size.
	Viewport Viewport

	// Updates is the number of fixed steps drained this tick.
	Updates int

	// Dropped is the accumulated simulation time, in seconds, discarded
	// by the catch-up cap this tick. Zero at steady state.
	Dropped float64
}

// Engine drives one scene at a fixed logical rate decoupled from the
// external tick rate.
type Engine struct {
	cfg   Config
	fb    *canvas.Canvas
	scene Scene
	latch *input.Latch

	acc    float64
	events []rawEvent
	loaded bool

	displayW, displayH int
}

// New creates an engine for the given scene. The configuration is
// validated up front; pixel operations themselves have no failure mode.
func New(cfg Config, scene Scene) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scene == nil {
		return nil, fmt.Errorf("engine: scene must not be nil")
	}
	fb, err := canvas.New(cfg.CanvasW, cfg.CanvasH)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		fb:       fb,
		scene:    scene,
		latch:    input.NewLatch(),
		displayW: cfg.CanvasW,
		displayH: cfg.CanvasH,
	}, nil
}

// Scene returns the scene the engine drives.
func (e *Engine) Scene() Scene { return e.scene }

// Canvas returns the engine-owned pixel buffer.
func (e *Engine) Canvas() *canvas.Canvas { return e.fb }

// Config returns the engine's construction-time configuration.
func (e *Engine) Config() Config { return e.cfg }

// Load runs the scene's one-time setup. It must be called exactly once
// before the first Tick.
func (e *Engine) Load(assets AssetSource) error {
	if e.loaded {
		return fmt.Errorf("engine: scene %q already loaded", e.scene.ID())
	}
	if err := e.scene.Load(assets); err != nil {
		return fmt.Errorf("engine: loading scene %q: %w", e.scene.ID(), err)
	}
	e.loaded = true
	return nil
}

// KeyDown queues a raw key-press signal. Repeat presses for a held key
// are deduplicated by the latch when the queue drains.
func (e *Engine) KeyDown(k input.Key) {
	e.events = append(e.events, rawEvent{kind: eventKeyDown, key: k})
}

// KeyUp queues a raw key-release signal.
func (e *Engine) KeyUp(k input.Key) {
	e.events = append(e.events, rawEvent{kind: eventKeyUp, key: k})
}

// SetFocus queues a focus-change signal. Losing focus clears the held-key
// set without emitting key-up transitions.
func (e *Engine) SetFocus(focused bool) {
	e.events = append(e.events, rawEvent{kind: eventFocus, focused: focused})
}

// SetDisplaySize records the presentation surface size used to compute
// each frame's upscale viewport. Defaults to the canvas size (1:1).
// Non-positive values are ignored.
func (e *Engine) SetDisplaySize(w, h int) {
	if w > 0 {
		e.displayW = w
	}
	if h > 0 {
		e.displayH = h
	}
}

// Tick processes one external tick carrying dtWall seconds of elapsed
// wall-clock time: pending input first, then the fixed-step update
// drain, then exactly one draw. The update count depends only on the
// total accumulated time, never on how deltas are chunked across ticks.
// After every Tick the internal accumulator is strictly less than one
// fixed step.
//
// Tick panics if Load has not run; the scene contract promises one-time
// setup before the loop starts, so ticking an unloaded engine is a
// caller bug, not a runtime condition.
func (e *Engine) Tick(dtWall float64) Frame {
	if !e.loaded {
		panic(fmt.Sprintf("engine: Tick on scene %q before Load", e.scene.ID()))
	}

	e.drainInput()

	if dtWall > 0 {
		e.acc += dtWall
	}

	updates := 0
	var dropped float64
	for e.acc >= e.cfg.FixedDT {
		if updates >= e.cfg.MaxCatchUp {
			// Stalled: discard the backlog instead of spiraling into an
			// unbounded catch-up loop. Keeps the sub-step remainder.
			excess := e.acc - math.Mod(e.acc, e.cfg.FixedDT)
			e.acc -= excess
			dropped = excess
			break
		}
		e.scene.Update(e.cfg.FixedDT, e.fb)
		e.acc -= e.cfg.FixedDT
		updates++
	}

	e.scene.Draw(e.fb)

	return Frame{
		Canvas:   e.fb,
		Viewport: FitViewport(e.displayW, e.displayH, e.cfg.CanvasW, e.cfg.CanvasH),
		Updates:  updates,
		Dropped:  dropped,
	}
}

// drainInput forwards queued signals through the latch so the scene sees
// each transition exactly once, and before the next update step.
func (e *Engine) drainInput() {
	for _, ev := range e.events {
		switch ev.kind {
		case eventKeyDown:
			if e.latch.Press(ev.key) {
				e.scene.KeyEvent(ev.key, true)
			}
		case eventKeyUp:
			if e.latch.Release(ev.key) {
				e.scene.KeyEvent(ev.key, false)
			}
		case eventFocus:
			if !ev.focused {
				e.latch.FocusLost()
			}
			e.scene.FocusChanged(ev.focused)
		}
	}
	e.events = e.events[:0]
}
