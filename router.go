package dragplan

import "math"

// DefaultDragDeadZone is the pointer travel, in pixels, before a press on a
// draggable becomes a gesture.
const DefaultDragDeadZone = 4.0

// Pick is a draggable element found under the pointer or holding focus.
type Pick struct {
	ID      string
	Kind    ItemKind
	Payload any
	Bounds  Rect
}

// PickFunc returns the draggable under (x, y), if any.
type PickFunc func(x, y float64) (Pick, bool)

// FocusFunc returns the element holding keyboard focus, if any.
type FocusFunc func() (Pick, bool)

// InputRouter turns raw per-frame pointer samples and key transitions into
// engine calls. A press that travels past the dead zone starts a gesture; a
// press released in place is a click and updates the selection. Device
// adapters (ebitendrag, termdrag) feed it.
type InputRouter struct {
	engine   *Engine
	pick     PickFunc
	focus    FocusFunc
	deadZone float64

	down     bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hit      *Pick
}

// NewInputRouter returns a router feeding e. pick may be nil, in which case
// pointer presses never start a gesture.
func NewInputRouter(e *Engine, pick PickFunc) *InputRouter {
	return &InputRouter{engine: e, pick: pick, deadZone: DefaultDragDeadZone}
}

// Engine returns the engine the router feeds.
func (r *InputRouter) Engine() *Engine { return r.engine }

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (r *InputRouter) SetDragDeadZone(pixels float64) {
	r.deadZone = pixels
}

// SetFocus sets the focus lookup used when Enter is pressed with no gesture
// in flight, which starts a keyboard drag of the focused element.
func (r *InputRouter) SetFocus(fn FocusFunc) {
	r.focus = fn
}

// Pressed reports whether the pointer is held.
func (r *InputRouter) Pressed() bool { return r.down }

// Pointer feeds the pointer position and primary button state for one frame.
func (r *InputRouter) Pointer(x, y float64, pressed bool) {
	switch {
	case pressed && !r.down:
		r.down = true
		r.dragging = false
		r.startX, r.startY = x, y
		r.lastX, r.lastY = x, y
		r.hit = nil
		if r.pick != nil {
			if p, ok := r.pick(x, y); ok {
				r.hit = &p
			}
		}

	case !pressed && r.down:
		if r.dragging {
			r.engine.PointerUp(x, y)
		} else if r.hit != nil {
			r.engine.Selection().Pick(r.hit.ID)
		}
		r.down = false
		r.dragging = false
		r.hit = nil
		r.lastX, r.lastY = x, y

	case pressed && r.down:
		if x == r.lastX && y == r.lastY {
			return
		}
		if !r.dragging && r.hit != nil {
			dx := x - r.startX
			dy := y - r.startY
			if math.Sqrt(dx*dx+dy*dy) > r.deadZone {
				origin := Origin{Pointer: Vec2{r.startX, r.startY}, Bounds: r.hit.Bounds}
				r.dragging = r.engine.StartDrag(r.hit.ID, r.hit.Kind, r.hit.Payload, origin)
				if !r.dragging {
					// Engine busy or disabled; treat the rest of the press as a no-op.
					r.hit = nil
				}
			}
		}
		if r.dragging {
			r.engine.PointerMove(x, y)
		}
		r.lastX, r.lastY = x, y

	default:
		r.lastX, r.lastY = x, y
	}
}

// Key feeds a key transition.
func (r *InputRouter) Key(k Key, down bool) {
	if !down {
		r.engine.KeyUp(k)
		return
	}
	if k == KeyEnter && !r.engine.IsDragging() && r.focus != nil {
		if p, ok := r.focus(); ok {
			r.engine.StartKeyboardDrag(p.ID, p.Kind, p.Payload, p.Bounds)
			return
		}
	}
	r.engine.KeyDown(k)
}
