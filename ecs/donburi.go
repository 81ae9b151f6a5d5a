package ecs

import (
	"github.com/chengxiangming9-boop/paopao"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ExpansionEventType is the Donburi event type for universe expansion
// events. Subscribe to this in your ECS systems to react to bubbles being
// popped, melted, or evaporated.
var ExpansionEventType = events.NewEventType[paopao.ExpansionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Expansion events are published to ExpansionEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) paopao.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitExpansion(event paopao.ExpansionEvent) {
	ExpansionEventType.Publish(s.world, event)
}
