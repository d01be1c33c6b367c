package dragplan

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout the
// API. Coordinates are screen-space logical pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// ItemKind tags what is being dragged. Downstream code uses it to decide how a
// successful drop is interpreted.
type ItemKind uint8

const (
	ItemScheduled ItemKind = iota // an already scheduled post or appointment
	ItemTemplate                  // a reusable content template
	ItemIdea                      // an unscheduled idea from the backlog
)

var itemKindNames = [...]string{"scheduled-item", "template", "idea"}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "unknown"
}

// ParseItemKind maps a name such as "template" back to its ItemKind.
func ParseItemKind(name string) (ItemKind, bool) {
	for i, n := range itemKindNames {
		if n == name {
			return ItemKind(i), true
		}
	}
	return 0, false
}

// ZoneKind tags a drop target.
type ZoneKind uint8

const (
	ZoneDateCell        ZoneKind = iota // a whole day in a month or week view
	ZoneTimeSlot                        // a time slot within a day
	ZoneContainerSwitch                 // a list or board column that re-parents the item
)

var zoneKindNames = [...]string{"date-cell", "time-slot", "container-switch"}

func (k ZoneKind) String() string {
	if int(k) < len(zoneKindNames) {
		return zoneKindNames[k]
	}
	return "unknown"
}

// ParseZoneKind maps a name such as "time-slot" back to its ZoneKind.
func ParseZoneKind(name string) (ZoneKind, bool) {
	for i, n := range zoneKindNames {
		if n == name {
			return ZoneKind(i), true
		}
	}
	return 0, false
}

// State is the drag state machine's phase.
type State uint8

const (
	StateIdle       State = iota // no gesture in flight
	StateDragging                // pointer or keyboard gesture is moving an item
	StateDropping                // drop accepted, waiting on OnDrop
	StateCancelling              // gesture is being rolled back
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDropping:
		return "dropping"
	case StateCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// Direction is an arrow-key direction for keyboard moves.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// delta returns the unit step for d.
func (d Direction) delta() Vec2 {
	switch d {
	case DirUp:
		return Vec2{0, -1}
	case DirDown:
		return Vec2{0, 1}
	case DirLeft:
		return Vec2{-1, 0}
	case DirRight:
		return Vec2{1, 0}
	}
	return Vec2{}
}

// Key identifies a key the engine reacts to. Adapters translate their native
// key codes to these values.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyShift
)

var keyNames = [...]string{"unknown", "up", "down", "left", "right", "enter", "escape", "shift"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey maps a key name used in gesture scripts to a Key.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if i > 0 && n == name {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

// EventType identifies a gesture event.
type EventType uint8

const (
	EventDragStart      EventType = iota // gesture began
	EventDragMove                        // tracked position changed
	EventZoneEnter                       // hovered zone changed to a zone
	EventZoneLeave                       // previously hovered zone is no longer hovered
	EventDrop                            // drop committed successfully
	EventDropFailed                      // OnDrop returned false, an error, or panicked
	EventCancel                          // gesture routed to rollback
	EventDragEnd                         // teardown finished, engine is idle
	EventReturnComplete                  // return animation reached the origin
)

var eventTypeNames = [...]string{
	"drag-start", "drag-move", "zone-enter", "zone-leave", "drop",
	"drop-failed", "cancel", "drag-end", "return-complete",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Outcome summarizes how a gesture ended.
type Outcome uint8

const (
	OutcomeNone      Outcome = iota // no gesture was active
	OutcomeDropped                  // drop committed
	OutcomeNoTarget                 // released outside every zone
	OutcomeRejected                 // ValidateDrop refused the zone
	OutcomeFailed                   // OnDrop failed
	OutcomeCancelled                // CancelDrag or Escape
)

var outcomeNames = [...]string{"none", "dropped", "no-target", "rejected", "failed", "cancelled"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}
