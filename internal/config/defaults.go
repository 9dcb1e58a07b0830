package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the built-in configuration: a 320x180
// canvas stepped 60 times per second with a 5-step catch-up cap, ticked
// at 60 Hz.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Canvas: CanvasConfig{
			Width:  320,
			Height: 180,
		},
		Timestep: TimestepConfig{
			Rate:       60,
			MaxCatchUp: 5,
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
	}
}
