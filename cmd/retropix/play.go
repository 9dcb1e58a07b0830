package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retropix/internal/assets"
	"github.com/vovakirdan/retropix/internal/config"
	"github.com/vovakirdan/retropix/internal/engine"
	"github.com/vovakirdan/retropix/internal/platform/tui"
	"github.com/vovakirdan/retropix/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene",
	Long: `Run the specified scene in the terminal.

Controls:
  Arrow keys - Pan the camera (in scenes that support it)
  Space      - Pause (in scenes that support it)
  Q/Ctrl+C   - Quit

Examples:
  retropix play bounce
  retropix play tilemap --fps 30
  retropix play bounce --config ./my-engine.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		logger.Error("unknown scene", "scene", sceneID)
		logger.Print("Run 'retropix list' to see available scenes.")
		os.Exit(1)
	}

	if err := playScene(sceneID); err != nil {
		logger.Error("scene failed", "scene", sceneID, "error", err)
		os.Exit(1)
	}
}

// playScene builds an engine for the scene and runs it until quit.
func playScene(sceneID string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.Engine(), scene)
	if err != nil {
		return err
	}

	// Size the display before the first frame so the upscale rect is
	// right from the start; a WindowSizeMsg corrects it on resize.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		eng.SetDisplaySize(w, h*2)
	}

	if err := eng.Load(assets.NewDir(flagAssets)); err != nil {
		return err
	}

	tickRate := cfg.Display.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	return tui.Run(eng, tickRate, logger)
}
