// retropix is a retro-style pixel rendering and simulation core with a
// terminal front end: a low-resolution RGBA canvas advanced at a fixed
// logical rate and upscaled to the display with integer-ratio
// nearest-neighbor scaling.
//
// Usage:
//
//	retropix list              - List available scenes
//	retropix play <scene>      - Run a scene
//	retropix menu              - Pick a scene interactively
//
// Global flags:
//
//	--fps <rate>      - Override the external tick rate
//	--config <path>   - Path to a custom engine config YAML
//	--assets <dir>    - Directory to load sprite images from
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/retropix/internal/scenes/bounce"
	_ "github.com/vovakirdan/retropix/internal/scenes/tilemap"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagAssets string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "retropix",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "retropix",
	Short: "A retro pixel-canvas engine for your terminal",
	Long: `retropix runs low-resolution pixel scenes on a fixed-timestep
simulation core and upscales them to your terminal with crisp
integer-ratio scaling.

Available commands:
  list  - Show all available scenes
  play  - Run a specific scene
  menu  - Interactive scene picker

Examples:
  retropix list
  retropix play bounce
  retropix play tilemap --fps 30
  retropix menu`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "External tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML (empty = defaults)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory to load sprite images from")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}
