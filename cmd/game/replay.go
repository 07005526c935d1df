package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/younwookim/viewloop/internal/application/game"
	"github.com/younwookim/viewloop/internal/application/replay"
	"github.com/younwookim/viewloop/internal/application/view"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Play back a recorded session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(args[0])
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(filename string) error {
	cfg, err := loadDisplayConfig()
	if err != nil {
		return err
	}

	session, err := replay.LoadSession(filename)
	if err != nil {
		return err
	}

	initial, err := view.FromName(session.StartView)
	if err != nil {
		return err
	}

	r := replay.NewReplayer(*session)
	log.Printf("Replaying %s (%d frames)", filename, r.TotalFrames())

	g := game.New(initial, r, cfg.ScreenWidth, cfg.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Framerate))

	return runWindow(g, cfg)
}
