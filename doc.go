// Package dragplan is a drag-and-drop engine for calendar and content
// planning surfaces.
//
// It tracks one pointer or keyboard gesture at a time, hit-tests it against
// registered drop zones, snaps the tracked position to a grid, nudges a scroll
// container near its edges, and animates the preview back to its origin when
// a drop is rejected or cancelled. It owns no visual element: the UI layer
// renders whatever the engine reports through [Config.OnPreview] and
// [Config.OnFeedback].
//
// # Quick start
//
//	opts := dragplan.DefaultOptions()
//	opts.SnapToGrid = true
//	engine, err := dragplan.NewEngine(dragplan.Config{
//		Options: opts,
//		ValidateDrop: func(item dragplan.DraggedItem, zone dragplan.DropZone) bool {
//			return zone.Kind == dragplan.ZoneTimeSlot
//		},
//		OnDrop: func(ctx context.Context, item dragplan.DraggedItem, zone dragplan.DropZone) (bool, error) {
//			return store.Reschedule(ctx, item.ID, zone.Data)
//		},
//	})
//
// Register targets as they mount, start a gesture on pointer-down, and feed
// the pointer stream:
//
//	engine.Zones().Register(dragplan.DropZone{ID: "mon-09", Kind: dragplan.ZoneTimeSlot, Rect: r})
//	engine.StartDrag("post-42", dragplan.ItemScheduled, post, dragplan.Origin{Pointer: p, Bounds: cardRect})
//	engine.PointerMove(x, y)
//	res := engine.PointerUp(x, y)
//
// Call [Engine.Update] once per frame; it drives auto-scroll, the return
// animation, and injected or scripted input.
//
// # Zones
//
// The zone registry is snapshotted once when a gesture starts. Zones added
// during a gesture are not visible to it. When zones overlap, the one
// registered first wins.
//
// # Keyboard
//
// [Engine.KeyDown] maps arrows to [Engine.MoveByKeyboard], Enter to
// [Engine.CommitDrop], Escape to [Engine.CancelDrag], and Shift to the
// multi-select modifier. Keyboard moves use the same pipeline as pointer
// moves.
//
// # Input
//
// [InputRouter] turns raw pointer samples and key transitions into engine
// calls, with a drag dead zone and click-to-select. The ebitendrag and
// termdrag packages feed it from Ebitengine and tcell. The ecs sub-module
// bridges gesture events into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package dragplan
