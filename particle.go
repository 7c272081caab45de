package fireworks

import "math"

// Particle is a single decaying point mass spawned by a detonation. It is
// never removed on its own; it lives until its Firework is retired.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    Color
	Alpha    float64 // starts at 1, may go negative
	Friction float64

	fade   float64
	radius float64
}

// newParticle creates a particle at (x, y) with a random direction in
// [0, 2π) and a signed speed drawn from cfg.ParticleSpeed. The angle is drawn
// before the speed.
func newParticle(x, y float64, c Color, cfg *Config, src Source) Particle {
	angle := src.Float64() * 2 * math.Pi
	speed := cfg.ParticleSpeed.Random(src)
	return Particle{
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Color:    c,
		Alpha:    1,
		Friction: cfg.Friction,
		fade:     cfg.FadeStep,
		radius:   cfg.ParticleRadius,
	}
}

// Update damps velocity, integrates position and fades opacity by one step.
// There are no bounds checks: opacity keeps falling below zero.
func (p *Particle) Update() {
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= p.fade
}

// Visible reports whether the particle still has positive opacity.
func (p *Particle) Visible() bool {
	return p.Alpha > 0
}

// Draw renders the particle as a disc. Opacity is clamped to [0, 1] and
// invisible particles issue no draw call.
func (p *Particle) Draw(s Surface) {
	if p.Alpha <= 0 {
		return
	}
	s.FillCircle(p.X, p.Y, p.radius, p.Color, clamp01(p.Alpha))
}
