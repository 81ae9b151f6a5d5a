// Package ecs provides ECS adapters for paopao's expansion event.
//
// The primary adapter is [NewDonburiStore], which bridges bubble expansion
// events (pop, melt, evaporate removals) into a [Donburi] world as typed
// events. Subscribe to [ExpansionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sim.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
