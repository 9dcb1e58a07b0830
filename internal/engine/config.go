package engine

import "fmt"

// Config holds the construction-time constants of the driver loop.
// Canvas dimensions and the fixed timestep are fixed for the engine's
// lifetime; modeling them as explicit configuration (rather than
// package-level constants) lets tests and multiple instances vary them.
type Config struct {
	// CanvasW and CanvasH are the pixel canvas dimensions.
	CanvasW, CanvasH int

	// FixedDT is the constant simulation step in seconds. The scene only
	// ever observes this value, decoupling physics from display refresh.
	FixedDT float64

	// MaxCatchUp caps the number of update steps drained per tick.
	// Accumulated time beyond the cap is discarded, keeping per-tick
	// latency bounded after a stall.
	MaxCatchUp int
}

// DefaultConfig returns the stock configuration: a 320x180 canvas
// stepped at 1/60 s with a 5-step catch-up cap.
func DefaultConfig() Config {
	return Config{
		CanvasW:    320,
		CanvasH:    180,
		FixedDT:    1.0 / 60.0,
		MaxCatchUp: 5,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.CanvasW <= 0 || c.CanvasH <= 0 {
		return fmt.Errorf("engine: invalid canvas dimensions %dx%d (must be positive)", c.CanvasW, c.CanvasH)
	}
	if c.FixedDT <= 0 {
		return fmt.Errorf("engine: invalid fixed timestep %g (must be positive)", c.FixedDT)
	}
	if c.MaxCatchUp < 1 {
		return fmt.Errorf("engine: invalid catch-up cap %d (must be at least 1)", c.MaxCatchUp)
	}
	return nil
}
