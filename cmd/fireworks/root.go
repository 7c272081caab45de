package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fireworks"
	"github.com/phanxgames/fireworks/audio"
)

var showFPS bool

var rootCmd = &cobra.Command{
	Use:   "fireworks",
	Short: "Particle fireworks with sketched burst shapes",
	Long: `Opens a window with a firework show on top and a sketch pad along the
bottom. Draw on the pad and press S to make every following burst take the
shape of the drawing; press C to clear it and go back to round bursts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadEnv()
		if err := applyEnv(cmd, &opts); err != nil {
			return err
		}
		return opts.validate()
	},
	RunE: runWindow,
}

func init() {
	bindSettingsFlags(rootCmd)
	rootCmd.Flags().BoolVar(&showFPS, "fps", false, "show frame rate and population counts")
}

func runWindow(cmd *cobra.Command, args []string) error {
	src, seed := opts.source()
	log.Printf("Starting show (seed %d)", seed)

	rc := fireworks.RunConfig{
		Title:     "Fireworks",
		Width:     opts.width,
		Height:    opts.height,
		PadHeight: opts.padHeight,
		ShowFPS:   showFPS,
		Debug:     opts.debug,
	}
	studio, err := fireworks.NewStudioFor(opts.config(), rc, src)
	if err != nil {
		return err
	}

	player := startAudio()
	defer player.Close()
	studio.Show.SetEventSink(player)

	return fireworks.Run(studio, rc)
}

// startAudio opens the speaker. Failure is logged; the show runs silent.
func startAudio() *audio.Player {
	cfg := audio.LoadConfig()
	if opts.mute {
		cfg.Enabled = false
	}
	player := audio.NewPlayer(cfg)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	return player
}
