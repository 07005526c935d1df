package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/younwookim/viewloop/internal/application/game"
	"github.com/younwookim/viewloop/internal/application/system"
	"github.com/younwookim/viewloop/internal/application/view"
)

var (
	playStart  string
	playRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the view switcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func init() {
	playCmd.Flags().StringVar(&playStart, "start", "a", "Initial view (a or b)")
	playCmd.Flags().StringVar(&playRecord, "record", "", "Record input to file (e.g. --record session.json)")
	rootCmd.AddCommand(playCmd)
}

func runPlay() error {
	cfg, err := loadDisplayConfig()
	if err != nil {
		return err
	}

	initial, err := view.FromName(playStart)
	if err != nil {
		return err
	}

	g := game.New(initial, system.NewInputSystem(), cfg.ScreenWidth, cfg.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Framerate))

	if playRecord != "" {
		g.EnableRecording(playRecord, playStart)
		log.Printf("Recording enabled: %s", playRecord)
	}

	return runWindow(g, cfg)
}
