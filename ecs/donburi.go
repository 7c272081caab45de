// Package ecs provides ECS adapters for fireworks.
package ecs

import (
	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShowEventType is the Donburi event type for firework show events.
// Subscribe to this in your ECS systems to receive launch, detonation,
// retire and shape events.
var ShowEventType = events.NewEventType[fireworks.ShowEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Show events are published to ShowEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) fireworks.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event fireworks.ShowEvent) {
	ShowEventType.Publish(s.world, event)
}
