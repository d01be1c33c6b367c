package dragplan

// DropZone is a candidate destination. Rect is in screen space as of the
// moment the zone was measured.
type DropZone struct {
	ID   string
	Kind ZoneKind
	// Data is an opaque target descriptor (a date, a slot, a column ID) that
	// the drop handler interprets.
	Data any
	Rect Rect
}

type registeredZone struct {
	handle  uint32
	zone    DropZone
	measure func() Rect
}

// ZoneRegistry holds the drop targets the UI layer has mounted. The UI calls
// Register as targets mount and Remove/Unregister as they unmount; the engine
// snapshots the registry once per gesture.
type ZoneRegistry struct {
	zones  []registeredZone
	nextID uint32
}

// ZoneHandle allows removing a registered zone.
type ZoneHandle struct {
	id  uint32
	reg *ZoneRegistry
}

// Remove unregisters the zone this handle was returned for. Safe to call more
// than once.
func (h ZoneHandle) Remove() {
	if h.reg == nil {
		return
	}
	for i := range h.reg.zones {
		if h.reg.zones[i].handle == h.id {
			h.reg.removeAt(i)
			return
		}
	}
}

// NewZoneRegistry returns an empty registry.
func NewZoneRegistry() *ZoneRegistry {
	return &ZoneRegistry{}
}

// Register adds z. Registering an ID that is already present replaces the
// existing zone in place, keeping its registration position.
func (r *ZoneRegistry) Register(z DropZone) ZoneHandle {
	return r.register(z, nil)
}

// RegisterMeasured adds z with a measure function that is called at snapshot
// time to obtain the zone's current rectangle. Use this for targets whose
// layout can change between gestures.
func (r *ZoneRegistry) RegisterMeasured(z DropZone, measure func() Rect) ZoneHandle {
	return r.register(z, measure)
}

func (r *ZoneRegistry) register(z DropZone, measure func() Rect) ZoneHandle {
	for i := range r.zones {
		if r.zones[i].zone.ID == z.ID {
			r.zones[i].zone = z
			r.zones[i].measure = measure
			return ZoneHandle{id: r.zones[i].handle, reg: r}
		}
	}
	r.nextID++
	r.zones = append(r.zones, registeredZone{handle: r.nextID, zone: z, measure: measure})
	return ZoneHandle{id: r.nextID, reg: r}
}

// Unregister removes the zone with the given ID and reports whether it existed.
func (r *ZoneRegistry) Unregister(id string) bool {
	for i := range r.zones {
		if r.zones[i].zone.ID == id {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// Move updates the stored rectangle of a zone registered without a measure
// function.
func (r *ZoneRegistry) Move(id string, rect Rect) bool {
	for i := range r.zones {
		if r.zones[i].zone.ID == id {
			r.zones[i].zone.Rect = rect
			return true
		}
	}
	return false
}

// Len returns the number of registered zones.
func (r *ZoneRegistry) Len() int {
	return len(r.zones)
}

func (r *ZoneRegistry) removeAt(i int) {
	copy(r.zones[i:], r.zones[i+1:])
	r.zones[len(r.zones)-1] = registeredZone{}
	r.zones = r.zones[:len(r.zones)-1]
}

// Snapshot measures every registered zone and returns them frozen in
// registration order. Later registry changes do not affect the snapshot.
func (r *ZoneRegistry) Snapshot() ZoneSnapshot {
	zones := make([]DropZone, len(r.zones))
	for i, rz := range r.zones {
		z := rz.zone
		if rz.measure != nil {
			z.Rect = rz.measure()
		}
		zones[i] = z
	}
	return ZoneSnapshot{zones: zones}
}

// ZoneSnapshot is the frozen zone list for one gesture.
type ZoneSnapshot struct {
	zones []DropZone
}

// HitTest returns the first-registered zone containing (x, y).
func (s ZoneSnapshot) HitTest(x, y float64) (DropZone, bool) {
	return HitTest(s.zones, x, y)
}

// Len returns the number of zones captured.
func (s ZoneSnapshot) Len() int {
	return len(s.zones)
}

// Zones returns the captured zones. The returned slice MUST NOT be mutated.
func (s ZoneSnapshot) Zones() []DropZone {
	return s.zones
}
