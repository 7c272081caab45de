package fireworks

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("fireworks: invalid config")

// Config holds every tunable constant of the simulation. The zero value of a
// field means "use the default"; see DefaultConfig.
type Config struct {
	// Friction is the per-step velocity multiplier applied to particles.
	Friction float64
	// FadeStep is subtracted from particle opacity on every update.
	FadeStep float64
	// ParticleRadius is the drawn radius of a particle.
	ParticleRadius float64
	// ShellRadius is the drawn radius of an ascending shell.
	ShellRadius float64
	// ParticleSpeed is the signed speed range of a freshly spawned particle.
	ParticleSpeed Range
	// LaunchSpeed is the vertical velocity range of a new shell. Negative is up.
	LaunchSpeed Range
	// Lifespan is the number of steps a shell ascends before it detonates.
	Lifespan int
	// BurstCount is the particle count of a radial (non-shaped) detonation.
	BurstCount int
	// SampleStride is the pixel step used when sampling a sketched shape.
	SampleStride int
	// SpawnChance is the per-step probability of launching a new shell.
	// Negative disables automatic launches.
	SpawnChance float64
	// Saturation and Lightness fix the HSL components of random shell colors.
	// Zero means the default 0.5; use a negative value for a literal 0.
	Saturation float64
	Lightness  float64
	// FlashFrames is the duration of the detonation flash. Negative disables it.
	FlashFrames int
	// FlashRadius is the final radius of the detonation flash.
	FlashRadius float64
	// StrokeWidth is the sketch pad pen width in pixels.
	StrokeWidth float64
	// StrokeColor is the sketch pad pen color.
	StrokeColor Color
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Friction:       0.99,
		FadeStep:       0.01,
		ParticleRadius: 2.3,
		ShellRadius:    4,
		ParticleSpeed:  Range{Min: -6, Max: 6},
		LaunchSpeed:    Range{Min: -8, Max: -2},
		Lifespan:       90,
		BurstCount:     350,
		SampleStride:   2,
		SpawnChance:    0.015,
		Saturation:     0.5,
		Lightness:      0.5,
		FlashFrames:    12,
		FlashRadius:    16,
		StrokeWidth:    5,
		StrokeColor:    ColorGray,
	}
}

// withDefaults returns a copy of c with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Friction == 0 {
		c.Friction = d.Friction
	}
	if c.FadeStep == 0 {
		c.FadeStep = d.FadeStep
	}
	if c.ParticleRadius == 0 {
		c.ParticleRadius = d.ParticleRadius
	}
	if c.ShellRadius == 0 {
		c.ShellRadius = d.ShellRadius
	}
	if c.ParticleSpeed == (Range{}) {
		c.ParticleSpeed = d.ParticleSpeed
	}
	if c.LaunchSpeed == (Range{}) {
		c.LaunchSpeed = d.LaunchSpeed
	}
	if c.Lifespan == 0 {
		c.Lifespan = d.Lifespan
	}
	if c.BurstCount == 0 {
		c.BurstCount = d.BurstCount
	}
	if c.SampleStride == 0 {
		c.SampleStride = d.SampleStride
	}
	if c.SpawnChance == 0 {
		c.SpawnChance = d.SpawnChance
	}
	switch {
	case c.Saturation == 0:
		c.Saturation = d.Saturation
	case c.Saturation < 0:
		c.Saturation = 0
	}
	switch {
	case c.Lightness == 0:
		c.Lightness = d.Lightness
	case c.Lightness < 0:
		c.Lightness = 0
	}
	if c.FlashFrames == 0 {
		c.FlashFrames = d.FlashFrames
	}
	if c.FlashRadius == 0 {
		c.FlashRadius = d.FlashRadius
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = d.StrokeWidth
	}
	if c.StrokeColor == (Color{}) {
		c.StrokeColor = d.StrokeColor
	}
	return c
}

// Validate reports the first impossible value in c after defaults are
// applied. The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	c = c.withDefaults()
	switch {
	case c.Friction <= 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction %v outside (0, 1]", ErrInvalidConfig, c.Friction)
	case c.FadeStep < 0:
		return fmt.Errorf("%w: fade step %v is negative", ErrInvalidConfig, c.FadeStep)
	case c.ParticleRadius < 0 || c.ShellRadius < 0 || c.FlashRadius < 0:
		return fmt.Errorf("%w: negative radius", ErrInvalidConfig)
	case c.ParticleSpeed.Min > c.ParticleSpeed.Max:
		return fmt.Errorf("%w: particle speed range %v inverted", ErrInvalidConfig, c.ParticleSpeed)
	case c.LaunchSpeed.Min > c.LaunchSpeed.Max:
		return fmt.Errorf("%w: launch speed range %v inverted", ErrInvalidConfig, c.LaunchSpeed)
	case c.Lifespan < 1:
		return fmt.Errorf("%w: lifespan %d must be at least 1", ErrInvalidConfig, c.Lifespan)
	case c.BurstCount < 1:
		return fmt.Errorf("%w: burst count %d must be at least 1", ErrInvalidConfig, c.BurstCount)
	case c.SampleStride < 1:
		return fmt.Errorf("%w: sample stride %d must be at least 1", ErrInvalidConfig, c.SampleStride)
	case c.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %v above 1", ErrInvalidConfig, c.SpawnChance)
	case c.Saturation < 0 || c.Saturation > 1 || c.Lightness < 0 || c.Lightness > 1:
		return fmt.Errorf("%w: saturation/lightness outside [0, 1]", ErrInvalidConfig)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("%w: stroke width %v must be positive", ErrInvalidConfig, c.StrokeWidth)
	}
	return nil
}
