package fireworks

// Firework is a shell that rises for a fixed number of steps and then
// detonates exactly once into a population of particles.
type Firework struct {
	ID       uint64
	X, Y     float64
	VX, VY   float64
	Color    Color
	Lifespan int

	state     State
	particles []Particle
	shaped    bool
	flash     *flash
	cfg       *Config
	src       Source
}

// newFirework creates an ascending shell at (x, y). vy is drawn from
// cfg.LaunchSpeed; vx is always zero.
func newFirework(id uint64, x, y float64, c Color, cfg *Config, src Source) *Firework {
	return &Firework{
		ID:       id,
		X:        x,
		Y:        y,
		VY:       cfg.LaunchSpeed.Random(src),
		Color:    c,
		Lifespan: cfg.Lifespan,
		state:    StateAscending,
		cfg:      cfg,
		src:      src,
	}
}

// State returns the current lifecycle stage.
func (f *Firework) State() State {
	return f.state
}

// Detonated reports whether the shell has exploded.
func (f *Firework) Detonated() bool {
	return f.state == StateDetonated
}

// Shaped reports whether the detonation used a sketched emission shape.
func (f *Firework) Shaped() bool {
	return f.shaped
}

// Particles returns the owned particles. The returned slice MUST NOT be
// appended to.
func (f *Firework) Particles() []Particle {
	return f.particles
}

// Update advances the shell by one step. When the countdown runs out while
// still ascending the shell detonates using shape (nil or empty means a
// radial burst). Owned particles are updated in the same call.
func (f *Firework) Update(shape *EmissionShape) {
	f.Lifespan--
	if f.Lifespan <= 0 && f.state == StateAscending {
		f.Detonate(shape)
	} else if f.Lifespan > 0 {
		f.Y += f.VY
	}
	for i := range f.particles {
		f.particles[i].Update()
	}
	f.flash.step()
}

// Detonate performs the Ascending → Detonated transition: it spawns the
// particle population at the current position and freezes the shell. It
// reports whether the transition happened; later calls are no-ops.
func (f *Firework) Detonate(shape *EmissionShape) bool {
	if f.state != StateAscending {
		return false
	}
	f.state = StateDetonated
	f.VX, f.VY = 0, 0

	var points []Vec2
	if !shape.Empty() {
		points = shape.Points(f.X, f.Y)
	}
	if len(points) > 0 {
		f.shaped = true
		f.particles = make([]Particle, len(points))
		for i, p := range points {
			f.particles[i] = newParticle(p.X, p.Y, f.Color, f.cfg, f.src)
		}
	} else {
		f.particles = make([]Particle, f.cfg.BurstCount)
		for i := range f.particles {
			f.particles[i] = newParticle(f.X, f.Y, f.Color, f.cfg, f.src)
		}
	}

	f.flash = newFlash(f.X, f.Y, f.Color, f.cfg.FlashFrames, f.cfg.ShellRadius, f.cfg.FlashRadius)
	return true
}

// Draw renders the rising shell, or after detonation the flash and the
// particles.
func (f *Firework) Draw(s Surface) {
	if f.state == StateAscending {
		s.FillCircle(f.X, f.Y, f.cfg.ShellRadius, f.Color, 1)
		return
	}
	f.flash.draw(s)
	for i := range f.particles {
		f.particles[i].Draw(s)
	}
}

// Spent reports whether the shell may be retired: the countdown is over and
// no particle is visible.
func (f *Firework) Spent() bool {
	if f.Lifespan > 0 {
		return false
	}
	for i := range f.particles {
		if f.particles[i].Alpha > 0 {
			return false
		}
	}
	return true
}

// VisibleParticles counts particles with positive opacity.
func (f *Firework) VisibleParticles() int {
	n := 0
	for i := range f.particles {
		if f.particles[i].Alpha > 0 {
			n++
		}
	}
	return n
}
