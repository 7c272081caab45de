package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/phanxgames/fireworks"
)

// settings collects everything the subcommands share. Flags win over
// FIREWORKS_* environment variables, which win over the defaults.
type settings struct {
	width, height int
	padHeight     int
	seed          uint64
	debug         bool
	spawnChance   float64
	burst         int
	stride        int
	mute          bool
}

var opts settings

func bindSettingsFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.IntVar(&opts.width, "width", 1024, "window width in pixels")
	f.IntVar(&opts.height, "height", 768, "window height in pixels, including the pad")
	f.IntVar(&opts.padHeight, "pad-height", 200, "sketch pad height in pixels")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	f.BoolVar(&opts.debug, "debug", false, "log per-step statistics to stderr")
	f.Float64Var(&opts.spawnChance, "spawn-chance", 0.015, "per-step launch probability (0 or negative disables)")
	f.IntVar(&opts.burst, "burst", 350, "particles in a round burst")
	f.IntVar(&opts.stride, "stride", 2, "pixel stride when sampling the sketch")
	f.BoolVar(&opts.mute, "mute", false, "disable sound")
}

// loadEnv reads an optional .env file into the process environment.
func loadEnv() {
	err := godotenv.Load()
	switch {
	case err == nil:
		log.Println("Loaded environment variables from .env")
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Printf("Failed to load .env: %v", err)
	}
}

// getEnvVariable returns the value of v, or an error when it is unset or
// empty.
func getEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

// applyEnv overrides every setting whose flag was not given on the command
// line with its FIREWORKS_* variable.
func applyEnv(cmd *cobra.Command, s *settings) error {
	flags := cmd.Flags()
	ints := []struct {
		flag, env string
		dst       *int
	}{
		{"width", "FIREWORKS_WIDTH", &s.width},
		{"height", "FIREWORKS_HEIGHT", &s.height},
		{"pad-height", "FIREWORKS_PAD_HEIGHT", &s.padHeight},
		{"burst", "FIREWORKS_BURST", &s.burst},
		{"stride", "FIREWORKS_STRIDE", &s.stride},
	}
	for _, it := range ints {
		if flags.Changed(it.flag) {
			continue
		}
		v, err := getEnvVariable(it.env)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", it.env, err)
		}
		*it.dst = n
	}

	if v, err := getEnvVariable("FIREWORKS_SEED"); err == nil && !flags.Changed("seed") {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FIREWORKS_SEED: %w", err)
		}
		s.seed = n
	}
	if v, err := getEnvVariable("FIREWORKS_SPAWN_CHANCE"); err == nil && !flags.Changed("spawn-chance") {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FIREWORKS_SPAWN_CHANCE: %w", err)
		}
		s.spawnChance = f
	}
	if v, err := getEnvVariable("FIREWORKS_DEBUG"); err == nil && !flags.Changed("debug") {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FIREWORKS_DEBUG: %w", err)
		}
		s.debug = b
	}
	return nil
}

// config builds the simulation config from s.
func (s *settings) config() fireworks.Config {
	cfg := fireworks.DefaultConfig()
	cfg.SpawnChance = s.spawnChance
	if s.spawnChance == 0 {
		cfg.SpawnChance = -1
	}
	cfg.BurstCount = s.burst
	cfg.SampleStride = s.stride
	return cfg
}

// source returns a seeded random source and the seed it used.
func (s *settings) source() (fireworks.Source, uint64) {
	seed := s.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return fireworks.NewSeededSource(seed), seed
}

// showSize is the fireworks area above the pad.
func (s *settings) showSize() (int, int) {
	return s.width, s.height - s.padHeight
}

func (s *settings) validate() error {
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.width, s.height)
	}
	if s.padHeight <= 0 || s.padHeight >= s.height {
		return fmt.Errorf("pad height %d must be within (0, %d)", s.padHeight, s.height)
	}
	return s.config().Validate()
}
