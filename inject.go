package dragplan

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticRelease
	syntheticKeyDown
	syntheticKeyUp
)

// syntheticEvent represents a single injected input event.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	key  Key
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Update.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticRelease, x: x, y: y})
}

// InjectKey queues a key press.
func (e *Engine) InjectKey(k Key) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticKeyDown, key: k})
}

// InjectKeyUp queues a key release.
func (e *Engine) InjectKeyUp(k Key) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: syntheticKeyUp, key: k})
}

// InjectDrag queues moves from (fromX, fromY) toward (toX, toY), linearly
// interpolated over frames-1 frames, followed by a release at (toX, toY).
// The gesture itself must already have been started. Minimum frames is 2.
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectMove(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		e.InjectMove(x, y)
	}
	e.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (e *Engine) PendingInput() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same entry points as real input.
func (e *Engine) processInjectedInput() {
	if len(e.injectQueue) == 0 {
		return
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		e.PointerMove(evt.x, evt.y)
	case syntheticRelease:
		e.PointerUp(evt.x, evt.y)
	case syntheticKeyDown:
		e.KeyDown(evt.key)
	case syntheticKeyUp:
		e.KeyUp(evt.key)
	}
}
