package ecs

import (
	"github.com/phanxgames/dragplan"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for dragplan gesture events.
// Subscribe to this in your ECS systems to receive drag, zone, and drop events.
var GestureEventType = events.NewEventType[dragplan.GestureEvent]()

// ViewComponent holds the engine's observable state on a singleton entity.
var ViewComponent = donburi.NewComponentType[dragplan.View]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gesture events are published to GestureEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) dragplan.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event dragplan.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}

// SyncView copies e's view into the world, creating the view entity on first
// use. Call it once per frame after Engine.Update.
func SyncView(world donburi.World, e *dragplan.Engine) {
	entry, ok := ViewComponent.First(world)
	if !ok {
		entry = world.Entry(world.Create(ViewComponent))
	}
	ViewComponent.SetValue(entry, e.View())
}
