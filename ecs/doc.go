// Package ecs provides ECS adapters for dragplan's gesture events.
//
// The primary adapter is [NewDonburiSink], which bridges gesture events
// (drag start/move/end, zone enter/leave, drop, cancel, return) into a
// [Donburi] world as typed events. Subscribe to [GestureEventType] in your
// ECS systems to receive them. [SyncView] mirrors the engine's observable
// state into a singleton [ViewComponent] for render systems.
//
// Usage:
//
//	engine.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
