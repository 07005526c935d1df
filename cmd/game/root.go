package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/viewloop/internal/application/game"
	"github.com/younwookim/viewloop/internal/infrastructure/config"
)

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "A two-view color switcher on the ebiten game loop",
	Long: `game runs two interchangeable screens that swap on space and quit on
escape or the window close button. Sessions can be recorded and played back.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadDisplayConfig loads the embedded display configuration.
func loadDisplayConfig() (*config.DisplayConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}

	loader := config.NewFSLoader(fsys, "configs")
	return loader.LoadDisplay()
}

// runWindow sets up the ebiten window and runs the game until termination.
func runWindow(g *game.Game, cfg *config.DisplayConfig) error {
	ebiten.SetWindowSize(cfg.ScreenWidth*cfg.Scale, cfg.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(cfg.Framerate)

	// Let the views decide termination on a close request.
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(g)
}
