package audio

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/fireworks"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -2 || buf[j][0] > 2 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return total
}

// TestPlayerGracefulDegradation verifies events are safe without a speaker.
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()
	p.EmitEvent(fireworks.ShowEvent{Type: fireworks.EventLaunch})
	p.EmitEvent(fireworks.ShowEvent{Type: fireworks.EventDetonate, Particles: 350})
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Initialize", p.mixer.Len())
	}
}

func TestPlayerDisabledSkipsSpeaker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize with audio disabled: %v", err)
	}
	if p.initialized {
		t.Error("disabled player should not open the speaker")
	}
}

func TestSoundFor(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	if p.soundFor(fireworks.ShowEvent{Type: fireworks.EventRetire}) != nil {
		t.Error("retire should be silent")
	}
	if p.soundFor(fireworks.ShowEvent{Type: fireworks.EventLaunch}) == nil {
		t.Error("launch should whistle")
	}
	p.cfg.Launches = false
	if p.soundFor(fireworks.ShowEvent{Type: fireworks.EventLaunch}) != nil {
		t.Error("launch whistle not disabled")
	}
	if p.soundFor(fireworks.ShowEvent{Type: fireworks.EventDetonate, Particles: 10}) == nil {
		t.Error("detonation should make a sound")
	}
}

func TestLaunchSoundLength(t *testing.T) {
	cfg := DefaultConfig()
	got := drain(t, launchSound(cfg))
	want := beep.SampleRate(cfg.SampleRate).N(launchDuration)
	if got != want {
		t.Errorf("launch samples = %d, want %d", got, want)
	}
}

func TestDetonationSoundLength(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(1, 2))
	rate := beep.SampleRate(cfg.SampleRate)

	// The mix lasts as long as its longest part.
	radial := drain(t, detonationSound(cfg, 350, false, rng))
	if want := rate.N(crackDuration); radial < want || radial > want+512 {
		t.Errorf("radial samples = %d, want about %d", radial, want)
	}
	shaped := drain(t, detonationSound(cfg, 120, true, rng))
	if want := rate.N(chimeDuration); shaped < want || shaped > want+512 {
		t.Errorf("shaped samples = %d, want about %d", shaped, want)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	rng := rand.New(rand.NewPCG(3, 4))
	env := newEnvelope(newNoise(time.Second, rate, rng), 100*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("envelope streamed %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want silence at attack start", buf[0][0])
	}
	if _, ok := env.Stream(buf); ok {
		t.Error("envelope should end after its duration")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FIREWORKS_AUDIO", "false")
	t.Setenv("FIREWORKS_VOLUME", "150")
	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("FIREWORKS_AUDIO=false not applied")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %v, want clamped 1", cfg.MasterVolume)
	}
}
