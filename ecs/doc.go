// Package ecs provides ECS adapters for the firework show event stream.
//
// The primary adapter is [NewDonburiSink], which bridges show events
// (launch, detonate, retire, shape captured/cleared) into a [Donburi] world
// as typed events. Subscribe to [ShowEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	show.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
