// Package fireworks is a particle firework display for [Ebitengine] whose
// bursts can take the shape of a sketch drawn by the user.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window with the
// fireworks area on top and a sketch pad along the bottom:
//
//	rc := fireworks.RunConfig{Title: "Fireworks", Width: 1024, Height: 768}
//	studio, err := fireworks.NewStudioFor(fireworks.DefaultConfig(), rc, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(fireworks.Run(studio, rc))
//
// Draw on the pad, press S to use the drawing as the burst shape, and C to
// clear it and go back to round bursts.
//
// # Simulation
//
// A [Show] owns the live [Firework] values. Each call to [Show.Step] clears
// the target [Surface], updates and draws every firework in launch order,
// retires spent ones and, with a small per-step probability, launches a new
// shell from the bottom edge. A shell rises for [Config.Lifespan] steps and
// then detonates exactly once into [Config.BurstCount] particles, or into
// one particle per point of the captured [EmissionShape]. Particles slow
// down by [Config.Friction] and fade by [Config.FadeStep] each step; a
// firework is removed once its countdown is over and every particle has
// faded out.
//
// Physics is counted in steps, not seconds: hosts call Step once per
// displayed frame.
//
// # Shapes
//
// [SketchPad] rasterizes pointer strokes on the CPU. [Show.Capture] scans
// the raster once: the occupied bounding box is computed over pixels with
// nonzero alpha and sampled every [Config.SampleStride] pixels. A raster
// without ink switches shape mode off and detonations fall back to round
// bursts.
//
// # Testing and headless use
//
// All randomness goes through a [Source]; pass [NewSeededSource] for
// reproducible runs. [RasterSurface] renders without a GPU, and
// [LoadTestScript] replays strokes, triggers and screenshots frame by frame.
//
// Other hosts live in sub-packages: fireworks/term renders into a terminal
// with tcell, fireworks/audio plays detonation sounds with beep, and the
// fireworks/ecs module forwards show events into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
package fireworks
