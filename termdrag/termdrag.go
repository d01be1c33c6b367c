// Package termdrag feeds tcell terminal events into a dragplan engine.
//
// Terminals report positions in cells. By default one cell is one logical
// unit, so zones and bounds are registered in cell coordinates and the
// engine's GridSize should be 1 for keyboard moves of one cell. SetCellSize
// scales cells into a larger logical space instead.
//
// Terminals do not report key releases. The multi-select modifier is taken
// from the Shift state carried on mouse events.
package termdrag

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragplan"
)

// Input translates tcell events.
type Input struct {
	router *dragplan.InputRouter
	cellW  float64
	cellH  float64
}

// New returns an Input routing events to e. pick receives logical
// coordinates.
func New(e *dragplan.Engine, pick dragplan.PickFunc) *Input {
	return &Input{router: dragplan.NewInputRouter(e, pick), cellW: 1, cellH: 1}
}

// Router exposes the underlying router for dead-zone and focus settings.
func (in *Input) Router() *dragplan.InputRouter { return in.router }

// SetCellSize sets the logical size of one terminal cell.
func (in *Input) SetCellSize(w, h float64) {
	if w > 0 {
		in.cellW = w
	}
	if h > 0 {
		in.cellH = h
	}
}

// HandleEvent routes ev and reports whether it was consumed.
func (in *Input) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		in.syncShift(e.Modifiers())
		x, y := e.Position()
		pressed := e.Buttons()&tcell.Button1 != 0
		in.router.Pointer(float64(x)*in.cellW, float64(y)*in.cellH, pressed)
		return true

	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return false
		}
		in.router.Key(k, true)
		return true
	}
	return false
}

func (in *Input) syncShift(mod tcell.ModMask) {
	shift := mod&tcell.ModShift != 0
	if shift != in.router.Engine().IsMultiSelecting() {
		in.router.Key(dragplan.KeyShift, shift)
	}
}

// convertKey maps the tcell keys the engine understands.
func convertKey(e *tcell.EventKey) (dragplan.Key, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return dragplan.KeyUp, true
	case tcell.KeyDown:
		return dragplan.KeyDown, true
	case tcell.KeyLeft:
		return dragplan.KeyLeft, true
	case tcell.KeyRight:
		return dragplan.KeyRight, true
	case tcell.KeyEnter:
		return dragplan.KeyEnter, true
	case tcell.KeyEscape:
		return dragplan.KeyEscape, true
	case tcell.KeyRune:
		// vi-style movement for terminals without arrow keys.
		switch e.Rune() {
		case 'k':
			return dragplan.KeyUp, true
		case 'j':
			return dragplan.KeyDown, true
		case 'h':
			return dragplan.KeyLeft, true
		case 'l':
			return dragplan.KeyRight, true
		}
	}
	return dragplan.KeyUnknown, false
}
