package dragplan

// directionForKey maps arrow keys to directions.
func directionForKey(k Key) (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return 0, false
}

// StartKeyboardDrag begins a gesture without a pointer. The virtual pointer
// starts at the center of bounds and is moved by MoveByKeyboard.
func (e *Engine) StartKeyboardDrag(id string, kind ItemKind, payload any, bounds Rect) bool {
	return e.StartDrag(id, kind, payload, Origin{Pointer: bounds.Center(), Bounds: bounds})
}

// MoveByKeyboard moves the active item one grid step in dir. The step goes
// through the same pipeline as a pointer move, so snapping, hover, and
// auto-scroll behave identically. Returns false if id is not being dragged.
func (e *Engine) MoveByKeyboard(id string, dir Direction) bool {
	if !e.listening || e.state != StateDragging || e.item.ID != id {
		return false
	}
	step := e.cfg.GridSize
	if step <= 0 {
		step = DefaultGridSize
	}
	d := dir.delta()
	e.pointer = e.pointer.Add(Vec2{d.X * step, d.Y * step})
	e.track()
	return true
}

// CommitDrop resolves the active gesture at the current virtual pointer,
// exactly as a pointer release there would.
func (e *Engine) CommitDrop() DropResult {
	if !e.listening || e.state != StateDragging {
		return DropResult{}
	}
	return e.resolve()
}

// KeyDown handles a key press: Shift enters multi-select, arrows move the
// dragged item, Enter commits, Escape cancels.
func (e *Engine) KeyDown(k Key) {
	switch k {
	case KeyShift:
		e.selection.SetMultiSelecting(true)
	case KeyEscape:
		e.CancelDrag()
	case KeyEnter:
		e.CommitDrop()
	default:
		if dir, ok := directionForKey(k); ok && e.item != nil {
			e.MoveByKeyboard(e.item.ID, dir)
		}
	}
}

// KeyUp handles a key release.
func (e *Engine) KeyUp(k Key) {
	if k == KeyShift {
		e.selection.SetMultiSelecting(false)
	}
}
