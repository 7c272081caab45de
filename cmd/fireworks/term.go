package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fireworks"
	"github.com/phanxgames/fireworks/term"
)

var (
	termFPS     int
	termPadRows int
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the show in the terminal",
	RunE:  runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)
	termCmd.Flags().IntVar(&termFPS, "tps", 60, "simulation steps per second")
	termCmd.Flags().IntVar(&termPadRows, "pad-rows", 8, "terminal rows for the sketch pad")
}

func runTerm(cmd *cobra.Command, args []string) error {
	src, _ := opts.source()
	sw, sh := opts.showSize()
	studio, err := fireworks.NewStudio(opts.config(), sw, sh, opts.width, opts.padHeight, src)
	if err != nil {
		return err
	}

	player := startAudio()
	defer player.Close()
	studio.Show.SetEventSink(player)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return term.Run(ctx, studio, term.Options{FPS: termFPS, PadRows: termPadRows})
}
