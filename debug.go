package fireworks

import (
	"fmt"
	"time"
)

// Stats is a snapshot of the show population.
type Stats struct {
	Step             uint64
	Fireworks        int
	Ascending        int
	Particles        int
	VisibleParticles int
	ShapeMode        bool
	StepTime         time.Duration
}

// Stats returns the current population counts. StepTime is zero.
func (s *Show) Stats() Stats {
	return s.collectStats(0)
}

func (s *Show) collectStats(elapsed time.Duration) Stats {
	st := Stats{
		Step:      s.steps,
		Fireworks: len(s.fireworks),
		ShapeMode: s.ShapeMode(),
		StepTime:  elapsed,
	}
	for _, f := range s.fireworks {
		if f.state == StateAscending {
			st.Ascending++
		}
		st.Particles += len(f.particles)
		st.VisibleParticles += f.VisibleParticles()
	}
	return st
}

// debugLog prints per-step stats. Only called when debug mode is on.
func (s *Show) debugLog(st Stats) {
	if !s.debug || s.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut,
		"[fireworks] step %d: %v | fireworks: %d (%d rising) | particles: %d (%d visible) | shape: %t\n",
		st.Step, st.StepTime, st.Fireworks, st.Ascending, st.Particles, st.VisibleParticles, st.ShapeMode)
}
