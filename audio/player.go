// Package audio plays synthesized launch and detonation sounds for a
// firework show. A Player is an EventSink: install it with
// Show.SetEventSink and it reacts to show events as they happen.
//
// Audio is optional. When the speaker cannot be opened the Player stays
// silent and every call remains safe.
package audio

import (
	"math/rand/v2"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/fireworks"
)

// Config tunes the Player.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
	// Launches plays a whistle for every launch.
	Launches bool
	// FullBurst is the particle count at which detonations reach full volume.
	FullBurst int
	// MaxVoices caps concurrently playing sounds; extra events are dropped.
	MaxVoices int
}

// DefaultConfig returns audio enabled at 50% volume.
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Launches:     true,
		FullBurst:    350,
		MaxVoices:    16,
	}
}

// LoadConfig reads FIREWORKS_AUDIO (bool) and FIREWORKS_VOLUME (0-100)
// on top of DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("FIREWORKS_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("FIREWORKS_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100, 0), 1)
		}
	}
	return cfg
}

// Player mixes show sounds into the speaker.
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewPlayer creates a Player. Call Initialize before sounds are audible.
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.FullBurst <= 0 {
		cfg.FullBurst = 350
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
}

// Initialize opens the speaker. It is a no-op when audio is disabled or
// already initialized.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// EmitEvent implements fireworks.EventSink.
func (p *Player) EmitEvent(e fireworks.ShowEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.soundFor(e)
	if s == nil {
		return
	}
	speaker.Lock()
	if p.cfg.MaxVoices <= 0 || p.mixer.Len() < p.cfg.MaxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

// soundFor returns the streamer for e, or nil when e is silent.
func (p *Player) soundFor(e fireworks.ShowEvent) beep.Streamer {
	switch e.Type {
	case fireworks.EventLaunch:
		if !p.cfg.Launches {
			return nil
		}
		return launchSound(p.cfg)
	case fireworks.EventDetonate:
		return detonationSound(p.cfg, e.Particles, e.Shaped, p.rng)
	default:
		return nil
	}
}
