package dragplan

// GestureEvent describes one step of a gesture. It is delivered to OnEvent
// handlers and to the optional EventSink.
type GestureEvent struct {
	Type      EventType
	GestureID string
	ItemID    string
	ItemKind  ItemKind
	// Zone fields are set for zone-enter/leave, drop, and drop-failed events.
	ZoneID   string
	ZoneKind ZoneKind
	// X and Y are the tracked item position at the time of the event.
	X, Y    float64
	Outcome Outcome
}

// EventSink receives every gesture event. The ecs sub-module provides a
// Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event GestureEvent)
}

type eventHandler struct {
	id uint32
	fn func(GestureEvent)
}

type handlerRegistry struct {
	handlers []eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered event callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.handlers = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(fn func(GestureEvent)) CallbackHandle {
	r.nextID++
	r.handlers = append(r.handlers, eventHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r}
}

// OnEvent registers a callback for every gesture event.
func (e *Engine) OnEvent(fn func(GestureEvent)) CallbackHandle {
	return e.handlers.add(fn)
}

// SetEventSink sets the optional event bridge.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

func (e *Engine) emit(t EventType, zone *DropZone, outcome Outcome) {
	ev := GestureEvent{
		Type:      t,
		GestureID: e.gestureID,
		X:         e.position.X,
		Y:         e.position.Y,
		Outcome:   outcome,
	}
	if e.item != nil {
		ev.ItemID = e.item.ID
		ev.ItemKind = e.item.Kind
	}
	if zone != nil {
		ev.ZoneID = zone.ID
		ev.ZoneKind = zone.Kind
	}
	e.dispatch(ev)
}

// dispatch delivers ev to every handler and the sink.
func (e *Engine) dispatch(ev GestureEvent) {
	// Handlers may remove themselves; iterate over a stable copy.
	hs := append([]eventHandler(nil), e.handlers.handlers...)
	for _, h := range hs {
		h.fn(ev)
	}
	if e.sink != nil {
		e.sink.EmitEvent(ev)
	}
}
