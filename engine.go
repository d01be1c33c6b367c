package dragplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

var (
	// ErrDropDeclined is reported when OnDrop returns false without an error.
	ErrDropDeclined = errors.New("drop declined")
	// ErrDropPanicked wraps a panic recovered from OnDrop.
	ErrDropPanicked = errors.New("drop handler panicked")
)

// DraggedItem is the subject of a gesture. It is created at drag start and
// does not change until the gesture ends.
type DraggedItem struct {
	ID      string
	Kind    ItemKind
	Payload any
	// Origin is the top-left of the grabbed element when the gesture began.
	// Rollback animates back to it.
	Origin Vec2
	// GrabOffset is the pointer's offset inside the grabbed element, so the
	// preview tracks the pointer instead of snapping to its corner.
	GrabOffset Vec2
}

// Label returns the preview text: the payload's String method if it has one,
// otherwise the item ID.
func (d DraggedItem) Label() string {
	if s, ok := d.Payload.(fmt.Stringer); ok {
		return s.String()
	}
	return d.ID
}

// Origin describes the event that starts a gesture: the pointer position and
// the screen rectangle of the element under it.
type Origin struct {
	Pointer Vec2
	Bounds  Rect
}

// DropResult reports how a release or commit was resolved.
type DropResult struct {
	Outcome Outcome
	// Zone is the zone under the release point, if any.
	Zone *DropZone
	Err  error
}

// Engine is the drag state machine. It owns the gesture state, the zone
// snapshot, and the hovered zone; the auto-scroller and return animation only
// read what the engine passes them.
//
// Engine is not safe for concurrent use. All methods must be called from the
// thread that runs the UI loop.
type Engine struct {
	cfg       Config
	log       *slog.Logger
	zones     *ZoneRegistry
	selection *Selection
	scroll    *AutoScroller

	state     State
	item      *DraggedItem
	gestureID string
	snapshot  ZoneSnapshot
	hovered   *DropZone
	pointer   Vec2
	position  Vec2
	listening bool
	anim      *returnAnim

	handlers    handlerRegistry
	sink        EventSink
	injectQueue []syntheticEvent
	runner      *ScriptRunner
}

// NewEngine validates cfg and returns an idle engine. A zero Config yields a
// disabled engine; start from DefaultOptions for usable settings.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	zones := cfg.Zones
	if zones == nil {
		zones = NewZoneRegistry()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e := &Engine{
		cfg:       cfg,
		log:       logger,
		zones:     zones,
		selection: NewSelection(),
	}
	if cfg.Scroller != nil {
		e.scroll = newAutoScroller(cfg.Scroller, cfg.ScrollThreshold, cfg.ScrollStep, cfg.ScrollInterval.Seconds())
	}
	return e, nil
}

// Zones returns the registry the UI layer registers drop targets with.
func (e *Engine) Zones() *ZoneRegistry { return e.zones }

// Selection returns the multi-selection manager.
func (e *Engine) Selection() *Selection { return e.selection }

// State returns the current state machine phase.
func (e *Engine) State() State { return e.state }

// IsDragging reports whether a gesture is in flight, including while a drop
// is settling. A new gesture cannot start until this returns false.
func (e *Engine) IsDragging() bool { return e.state != StateIdle }

// DraggedItem returns the active gesture's item.
func (e *Engine) DraggedItem() (DraggedItem, bool) {
	if e.item == nil {
		return DraggedItem{}, false
	}
	return *e.item, true
}

// CurrentPosition returns the tracked item position. During a return
// animation it follows the animated preview.
func (e *Engine) CurrentPosition() Vec2 { return e.position }

// ActiveDropZone returns the zone currently under the pointer.
func (e *Engine) ActiveDropZone() (DropZone, bool) {
	if e.hovered == nil {
		return DropZone{}, false
	}
	return *e.hovered, true
}

// SelectedItemIDs returns the selected IDs in selection order.
func (e *Engine) SelectedItemIDs() []string { return e.selection.IDs() }

// IsMultiSelecting reports whether the multi-select modifier is held.
func (e *Engine) IsMultiSelecting() bool { return e.selection.MultiSelecting() }

// Returning reports whether a return animation is running.
func (e *Engine) Returning() bool { return e.anim != nil }

// View is a copy of the engine's observable state.
type View struct {
	State          State
	Item           *DraggedItem
	Position       Vec2
	ActiveZone     *DropZone
	SelectedIDs    []string
	MultiSelecting bool
	Returning      bool
}

// View returns a copy of the observable state.
func (e *Engine) View() View {
	v := View{
		State:          e.state,
		Position:       e.position,
		SelectedIDs:    e.selection.IDs(),
		MultiSelecting: e.selection.MultiSelecting(),
		Returning:      e.anim != nil,
	}
	if e.item != nil {
		item := *e.item
		v.Item = &item
	}
	if e.hovered != nil {
		z := *e.hovered
		v.ActiveZone = &z
	}
	return v
}

// StartDrag begins a gesture for the item identified by id. It returns false,
// with no state change, when the engine is disabled or another gesture is
// still in flight.
func (e *Engine) StartDrag(id string, kind ItemKind, payload any, origin Origin) bool {
	if !e.cfg.Enabled || e.state != StateIdle {
		e.log.Debug("drag start rejected", "item", id, "state", e.state, "enabled", e.cfg.Enabled)
		return false
	}

	// A rollback from the previous gesture is abandoned, not raced.
	e.anim = nil

	item := DraggedItem{
		ID:         id,
		Kind:       kind,
		Payload:    payload,
		Origin:     origin.Bounds.Min(),
		GrabOffset: origin.Pointer.Sub(origin.Bounds.Min()),
	}
	e.item = &item
	e.gestureID = uuid.NewString()
	e.snapshot = e.zones.Snapshot()
	e.hovered = nil
	e.pointer = origin.Pointer
	e.position = item.Origin
	e.state = StateDragging
	e.listening = true

	e.log.Debug("drag start", e.gestureAttrs("zones", e.snapshot.Len())...)
	e.emit(EventDragStart, nil, OutcomeNone)
	if e.cfg.OnDragStart != nil {
		e.cfg.OnDragStart(item)
	}
	if e.state == StateDragging {
		e.showPreview(item.Label(), false)
	}
	return true
}

// PointerMove feeds a pointer position to the active gesture. Ignored when no
// gesture is listening.
func (e *Engine) PointerMove(x, y float64) {
	if !e.listening || e.state != StateDragging {
		return
	}
	e.pointer = Vec2{x, y}
	e.track()
}

// PointerUp resolves the gesture at (x, y). The zone is looked up fresh at
// the release point rather than reusing the last hovered zone.
func (e *Engine) PointerUp(x, y float64) DropResult {
	if !e.listening || e.state != StateDragging {
		return DropResult{}
	}
	e.pointer = Vec2{x, y}
	e.position = e.positionFor(e.pointer)
	return e.resolve()
}

// CancelDrag routes the active gesture to rollback regardless of the hovered
// zone. Returns false when there is nothing to cancel.
func (e *Engine) CancelDrag() bool {
	if e.state != StateDragging {
		return false
	}
	e.rollback(OutcomeCancelled, nil, nil)
	return true
}

// EndDragForTesting tears down any gesture immediately, skipping the return
// animation, and hides the preview. Called while a gesture is already being
// torn down, it only drops the animation and preview.
func (e *Engine) EndDragForTesting() {
	e.anim = nil
	if e.item != nil && e.listening {
		e.teardown(nil, OutcomeCancelled)
	}
	e.hidePreview()
}

// Update advances frame-driven work by dt seconds: scripted and injected
// input, auto-scroll ticks, and the return animation.
func (e *Engine) Update(dt float64) {
	if e.runner != nil {
		e.runner.step(e)
	}
	e.processInjectedInput()

	if e.state == StateDragging && e.cfg.AutoScroll && e.scroll != nil {
		e.scroll.Update(dt)
	}

	if e.anim != nil {
		pos, done := e.anim.Update(float32(dt))
		e.position = pos
		if done {
			e.finishReturn()
		} else {
			e.showPreview(e.anim.label, true)
		}
	}
}

// positionFor converts a pointer position into the tracked item position.
// Snapping happens here once, before any consumer sees the value.
func (e *Engine) positionFor(pointer Vec2) Vec2 {
	pos := pointer.Sub(e.item.GrabOffset)
	if e.cfg.SnapToGrid {
		pos = SnapToGrid(pos, e.cfg.GridSize)
	}
	return pos
}

// track runs the move pipeline shared by pointer and keyboard input.
func (e *Engine) track() {
	item := *e.item
	e.position = e.positionFor(e.pointer)

	zone, ok := e.snapshot.HitTest(e.pointer.X, e.pointer.Y)
	e.setHovered(zone, ok)
	if e.state != StateDragging {
		return
	}

	if e.cfg.AutoScroll && e.scroll != nil {
		e.scroll.Track(e.pointer.X, e.pointer.Y)
	}

	e.emit(EventDragMove, e.hovered, OutcomeNone)
	if e.state != StateDragging {
		return
	}
	if e.cfg.OnDragMove != nil {
		e.cfg.OnDragMove(item, e.position)
	}
	if e.state == StateDragging {
		e.showPreview(item.Label(), false)
	}
}

func (e *Engine) setHovered(zone DropZone, ok bool) {
	if ok && e.hovered != nil && e.hovered.ID == zone.ID {
		return
	}
	if !ok && e.hovered == nil {
		return
	}
	if e.hovered != nil {
		prev := *e.hovered
		e.hovered = nil
		e.emit(EventZoneLeave, &prev, OutcomeNone)
	}
	if ok && e.state == StateDragging {
		z := zone
		e.hovered = &z
		e.emit(EventZoneEnter, &z, OutcomeNone)
	}
}

// resolve decides the fate of the gesture at the current pointer.
func (e *Engine) resolve() DropResult {
	item := *e.item
	zone, ok := e.snapshot.HitTest(e.pointer.X, e.pointer.Y)
	if !ok {
		e.log.Debug("release outside drop zones", e.gestureAttrs()...)
		return e.rollback(OutcomeNoTarget, nil, nil)
	}
	if e.cfg.ValidateDrop != nil {
		valid := e.cfg.ValidateDrop(item, zone)
		if e.state != StateDragging {
			return DropResult{Outcome: OutcomeCancelled, Zone: &zone}
		}
		if !valid {
			e.log.Debug("drop rejected", e.gestureAttrs("zone", zone.ID)...)
			return e.rollback(OutcomeRejected, &zone, nil)
		}
	}

	e.state = StateDropping
	success, err := e.commit(item, zone)
	if e.ended() {
		return DropResult{Outcome: OutcomeCancelled, Zone: &zone}
	}
	if e.cfg.OnFeedback != nil {
		e.cfg.OnFeedback(Feedback{Item: item, Zone: zone, Success: success, Err: err})
		if e.ended() {
			return DropResult{Outcome: OutcomeCancelled, Zone: &zone}
		}
	}
	if !success {
		e.log.Warn("drop failed", e.gestureAttrs("zone", zone.ID, "err", err)...)
		e.emit(EventDropFailed, &zone, OutcomeFailed)
		return e.rollback(OutcomeFailed, &zone, err)
	}

	e.log.Debug("drop committed", e.gestureAttrs("zone", zone.ID)...)
	e.emit(EventDrop, &zone, OutcomeDropped)
	if e.ended() {
		return DropResult{Outcome: OutcomeCancelled, Zone: &zone}
	}
	e.teardown(&zone, OutcomeDropped)
	e.hidePreview()
	return DropResult{Outcome: OutcomeDropped, Zone: &zone}
}

// commit calls OnDrop, converting false, errors, deadline overruns, and
// panics into a failed result.
func (e *Engine) commit(item DraggedItem, zone DropZone) (ok bool, err error) {
	if e.cfg.OnDrop == nil {
		return true, nil
	}
	ctx := context.Background()
	if e.cfg.DropTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.DropTimeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("%w: %v", ErrDropPanicked, r)
		}
	}()

	ok, err = e.cfg.OnDrop(ctx, item, zone)
	switch {
	case err != nil:
		return false, err
	case !ok:
		return false, ErrDropDeclined
	case ctx.Err() != nil:
		return false, fmt.Errorf("drop commit: %w", ctx.Err())
	}
	return true, nil
}

// rollback is the single cancelling path: no target, rejection, failed
// commit, CancelDrag, and Escape all end here.
func (e *Engine) rollback(outcome Outcome, zone *DropZone, err error) DropResult {
	res := DropResult{Outcome: outcome, Zone: zone, Err: err}
	if e.ended() {
		res.Outcome = OutcomeCancelled
		return res
	}
	e.state = StateCancelling
	e.emit(EventCancel, zone, outcome)
	if e.ended() {
		return res
	}
	e.startReturn()
	if e.ended() {
		return res
	}
	e.teardown(nil, outcome)
	return res
}

// ended reports whether a callback tore the gesture down mid-resolution.
func (e *Engine) ended() bool {
	return e.item == nil
}

func (e *Engine) startReturn() {
	item := *e.item
	d := float32(e.cfg.ReturnDuration.Seconds())
	if d <= 0 {
		e.position = item.Origin
		e.anim = nil
		e.hidePreview()
		e.dispatch(GestureEvent{
			Type: EventReturnComplete, GestureID: e.gestureID,
			ItemID: item.ID, ItemKind: item.Kind,
			X: item.Origin.X, Y: item.Origin.Y,
		})
		return
	}
	e.anim = newReturnAnim(e.position, item.Origin, d, item.Label())
	e.anim.gestureID = e.gestureID
	e.anim.itemID = item.ID
	e.anim.itemKind = item.Kind
}

func (e *Engine) finishReturn() {
	a := e.anim
	e.anim = nil
	e.hidePreview()
	e.dispatch(GestureEvent{
		Type: EventReturnComplete, GestureID: a.gestureID,
		ItemID: a.itemID, ItemKind: a.itemKind,
		X: a.target.X, Y: a.target.Y,
	})
}

// teardown releases everything tied to the gesture and returns to idle. Every
// way a gesture can end goes through here exactly once.
func (e *Engine) teardown(zone *DropZone, outcome Outcome) {
	item := *e.item
	e.hovered = nil
	if e.scroll != nil {
		e.scroll.Stop()
	}
	e.listening = false

	if e.cfg.OnDragEnd != nil {
		e.cfg.OnDragEnd(item, zone)
	}
	e.emit(EventDragEnd, zone, outcome)
	e.log.Debug("drag end", e.gestureAttrs("outcome", outcome)...)

	e.item = nil
	e.state = StateIdle
}

func (e *Engine) showPreview(label string, returning bool) {
	if e.cfg.OnPreview == nil {
		return
	}
	e.cfg.OnPreview(Preview{Visible: true, Position: e.position, Label: label, Returning: returning})
}

func (e *Engine) hidePreview() {
	if e.cfg.OnPreview == nil {
		return
	}
	e.cfg.OnPreview(Preview{Position: e.position})
}
