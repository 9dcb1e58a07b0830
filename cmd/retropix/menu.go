package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retropix/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scene interactively",
	Long:  `Shows an interactive menu of all registered scenes and runs the selected one.`,
	Run:   runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	sceneID, err := tui.RunMenu()
	if err != nil {
		logger.Error("menu failed", "error", err)
		os.Exit(1)
	}
	if sceneID == "" {
		return // user backed out
	}

	if err := playScene(sceneID); err != nil {
		logger.Error("scene failed", "scene", sceneID, "error", err)
		os.Exit(1)
	}
}
