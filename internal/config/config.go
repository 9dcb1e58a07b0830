// Package config provides YAML-based engine configuration loading with
// embedded defaults.
package config

import "github.com/vovakirdan/retropix/internal/engine"

// EngineConfig mirrors the engine's construction-time constants in YAML
// form, plus the presentation tick rate.
type EngineConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Timestep TimestepConfig `yaml:"timestep"`
	Display  DisplayConfig  `yaml:"display"`
}

// CanvasConfig holds the pixel canvas dimensions.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimestepConfig controls the fixed-step drain loop.
type TimestepConfig struct {
	Rate       int `yaml:"rate"`         // fixed simulation steps per second
	MaxCatchUp int `yaml:"max_catch_up"` // update steps drained per tick before dropping time
}

// DisplayConfig controls the presentation loop.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // external ticks per second
}

// Engine converts the YAML form into the engine's Config. A non-positive
// step rate yields a zero FixedDT, which engine.Config.Validate rejects.
func (c EngineConfig) Engine() engine.Config {
	cfg := engine.Config{
		CanvasW:    c.Canvas.Width,
		CanvasH:    c.Canvas.Height,
		MaxCatchUp: c.Timestep.MaxCatchUp,
	}
	if c.Timestep.Rate > 0 {
		cfg.FixedDT = 1.0 / float64(c.Timestep.Rate)
	}
	return cfg
}
