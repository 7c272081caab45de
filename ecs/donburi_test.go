package ecs

import (
	"testing"

	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []fireworks.ShowEvent
	ShowEventType.Subscribe(world, func(w donburi.World, e fireworks.ShowEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(fireworks.ShowEvent{
		Type:       fireworks.EventLaunch,
		FireworkID: 42,
		X:          100,
		Y:          200,
	})

	sink.EmitEvent(fireworks.ShowEvent{
		Type:      fireworks.EventDetonate,
		Particles: 350,
		Shaped:    true,
	})

	// Events are queued until processed.
	ShowEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != fireworks.EventLaunch || e0.FireworkID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}

	e1 := received[1]
	if e1.Type != fireworks.EventDetonate || e1.Particles != 350 || !e1.Shaped {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_FromShow(t *testing.T) {
	world := donburi.NewWorld()
	cfg := fireworks.DefaultConfig()
	cfg.SpawnChance = -1
	show, err := fireworks.NewShow(cfg, 800, 600, fireworks.NewSeededSource(1))
	if err != nil {
		t.Fatal(err)
	}
	show.SetEventSink(NewDonburiSink(world))

	var detonations int
	ShowEventType.Subscribe(world, func(w donburi.World, e fireworks.ShowEvent) {
		if e.Type == fireworks.EventDetonate {
			detonations++
		}
	})

	f := show.Launch(400, 600, fireworks.ColorWhite)
	f.Lifespan = 1
	show.Step(fireworks.NewRasterSurface(800, 600, fireworks.Color{}))
	events.ProcessAllEvents(world)

	if detonations != 1 {
		t.Errorf("detonations = %d, want 1", detonations)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ShowEventType.Subscribe(world, func(w donburi.World, e fireworks.ShowEvent) {
		count1++
	})
	ShowEventType.Subscribe(world, func(w donburi.World, e fireworks.ShowEvent) {
		count2++
	})

	sink.EmitEvent(fireworks.ShowEvent{Type: fireworks.EventRetire})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
