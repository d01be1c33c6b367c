// Package ebitendrag feeds Ebitengine mouse and keyboard input into a
// dragplan engine and draws the drag preview.
//
// Call Input.Update from Game.Update before Engine.Update:
//
//	func (g *Game) Update() error {
//		g.input.Update()
//		g.engine.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
package ebitendrag

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/dragplan"
)

// Device reads raw input for the current frame.
type Device interface {
	CursorPosition() (x, y int)
	PrimaryPressed() bool
	KeyJustPressed(k dragplan.Key) bool
	KeyJustReleased(k dragplan.Key) bool
}

// keyMap lists the ebiten keys that produce each engine key.
var keyMap = map[dragplan.Key][]ebiten.Key{
	dragplan.KeyUp:     {ebiten.KeyArrowUp},
	dragplan.KeyDown:   {ebiten.KeyArrowDown},
	dragplan.KeyLeft:   {ebiten.KeyArrowLeft},
	dragplan.KeyRight:  {ebiten.KeyArrowRight},
	dragplan.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	dragplan.KeyEscape: {ebiten.KeyEscape},
	dragplan.KeyShift:  {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
}

// routedKeys is the order keys are polled in each frame. Shift comes first so
// a modifier pressed on the same frame as an arrow applies to it.
var routedKeys = []dragplan.Key{
	dragplan.KeyShift,
	dragplan.KeyUp, dragplan.KeyDown, dragplan.KeyLeft, dragplan.KeyRight,
	dragplan.KeyEnter, dragplan.KeyEscape,
}

type ebitenDevice struct{}

func (ebitenDevice) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenDevice) PrimaryPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenDevice) KeyJustPressed(k dragplan.Key) bool {
	for _, ek := range keyMap[k] {
		if inpututil.IsKeyJustPressed(ek) {
			return true
		}
	}
	return false
}

func (ebitenDevice) KeyJustReleased(k dragplan.Key) bool {
	for _, ek := range keyMap[k] {
		if inpututil.IsKeyJustReleased(ek) {
			return true
		}
	}
	return false
}

// Input polls a Device once per frame and routes it to the engine.
type Input struct {
	router *dragplan.InputRouter
	dev    Device
}

// New returns an Input reading the live Ebitengine input state.
func New(e *dragplan.Engine, pick dragplan.PickFunc) *Input {
	return NewWithDevice(e, pick, ebitenDevice{})
}

// NewWithDevice returns an Input reading dev.
func NewWithDevice(e *dragplan.Engine, pick dragplan.PickFunc, dev Device) *Input {
	return &Input{router: dragplan.NewInputRouter(e, pick), dev: dev}
}

// Router exposes the underlying router for dead-zone and focus settings.
func (in *Input) Router() *dragplan.InputRouter { return in.router }

// Update reads one frame of input.
func (in *Input) Update() {
	for _, k := range routedKeys {
		if in.dev.KeyJustPressed(k) {
			in.router.Key(k, true)
		}
		if in.dev.KeyJustReleased(k) {
			in.router.Key(k, false)
		}
	}
	x, y := in.dev.CursorPosition()
	in.router.Pointer(float64(x), float64(y), in.dev.PrimaryPressed())
}
