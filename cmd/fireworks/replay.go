package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fireworks"
)

var (
	replayOut       string
	replayMaxFrames int
	replayTail      int
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Run a test script headless and write its screenshots",
	Long: `Replays a JSON test script without opening a window. Strokes, saves,
launches and waits run frame by frame on a CPU raster, and every screenshot
step is written as a PNG into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "screenshots", "directory for screenshots")
	replayCmd.Flags().IntVar(&replayMaxFrames, "max-frames", 100000, "give up after this many frames")
	replayCmd.Flags().IntVar(&replayTail, "tail", 0, "extra frames to run after the script ends")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := fireworks.LoadTestScript(data)
	if err != nil {
		return err
	}

	src, seed := opts.source()
	sw, sh := opts.showSize()
	studio, err := fireworks.NewStudio(opts.config(), sw, sh, opts.width, opts.padHeight, src)
	if err != nil {
		return err
	}
	studio.ScreenshotDir = replayOut
	studio.Show.SetDebugMode(opts.debug)
	studio.SetTestRunner(runner)

	frames, err := replay(studio, fireworks.NewRasterSurface(sw, sh, fireworks.Color{A: 1}), replayMaxFrames, replayTail)
	if err != nil {
		return err
	}
	st := studio.Show.Stats()
	log.Printf("Replayed %s in %d frames (seed %d): %d fireworks, %d particles, shape %t",
		args[0], frames, seed, st.Fireworks, st.Particles, st.ShapeMode)
	return nil
}

// replay steps studio until its runner finishes, then tail more frames. It
// returns the number of frames run.
func replay(studio *fireworks.Studio, dst fireworks.Surface, maxFrames, tail int) (int, error) {
	runner := studio.TestRunner()
	frames := 0
	for !runner.Done() {
		if frames >= maxFrames {
			return frames, fmt.Errorf("script still running after %d frames", maxFrames)
		}
		studio.Frame(dst)
		frames++
	}
	for i := 0; i < tail; i++ {
		studio.Frame(dst)
		frames++
	}
	return frames, nil
}
