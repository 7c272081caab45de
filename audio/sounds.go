package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	launchDuration  = 350 * time.Millisecond
	crackDuration   = 400 * time.Millisecond
	thumpDuration   = 250 * time.Millisecond
	chimeDuration   = 600 * time.Millisecond
	envelopeAttack  = 5 * time.Millisecond
	thumpFreq       = 70.0
	chimeFreq       = 1318.51 // E6
	whistleLowFreq  = 900.0
	whistleHighFreq = 2200.0
)

// noise generates white noise for a fixed number of samples.
type noise struct {
	remaining int
	rng       *rand.Rand
}

func newNoise(d time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &noise{remaining: rate.N(d), rng: rng}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	if n.remaining <= 0 {
		return 0, false
	}
	count := min(len(samples), n.remaining)
	for i := 0; i < count; i++ {
		v := n.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	n.remaining -= count
	return count, true
}

func (n *noise) Err() error { return nil }

// sweep is a sine whose frequency moves linearly from one value to another.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and an exponential-looking release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if len(samples) > e.total-e.pos {
		samples = samples[:e.total-e.pos]
	}
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var vol float64
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else {
			rest := 1 - float64(e.pos-e.attack)/float64(e.total-e.attack)
			vol = rest * rest
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a sine of freq Hz cut to d, or nil if the generator rejects
// the frequency.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(rate.N(d), s)
}

// launchSound is a short rising whistle.
func launchSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := newSweep(whistleLowFreq, whistleHighFreq, launchDuration, rate)
	return newVolume(newEnvelope(s, launchDuration, envelopeAttack, rate), 0.15*cfg.MasterVolume)
}

// detonationSound is a noise crack over a low thump. Larger bursts are
// louder; shaped bursts add a chime on top.
func detonationSound(cfg *Config, particles int, shaped bool, rng *rand.Rand) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	crack := newEnvelope(newNoise(crackDuration, rate, rng), crackDuration, envelopeAttack, rate)
	parts := []beep.Streamer{newVolume(crack, 0.6)}
	if th := tone(thumpFreq, thumpDuration, rate); th != nil {
		parts = append(parts, newVolume(newEnvelope(th, thumpDuration, envelopeAttack, rate), 0.8))
	}
	if shaped {
		if ch := tone(chimeFreq, chimeDuration, rate); ch != nil {
			parts = append(parts, newVolume(newEnvelope(ch, chimeDuration, envelopeAttack, rate), 0.3))
		}
	}

	loudness := 0.3 + 0.7*math.Min(float64(particles)/float64(cfg.FullBurst), 1)
	return newVolume(beep.Mix(parts...), loudness*cfg.MasterVolume)
}
