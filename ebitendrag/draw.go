package ebitendrag

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/dragplan"
)

// Style controls how DrawPreview and DrawZone paint.
type Style struct {
	Size        dragplan.Vec2
	Fill        color.Color
	ReturnFill  color.Color
	Border      color.Color
	ZoneHover   color.Color
	ZoneOK      color.Color
	ZoneFailed  color.Color
	BorderWidth float32
}

// DefaultStyle is a neutral blue preview with green/red drop feedback.
func DefaultStyle() Style {
	return Style{
		Size:        dragplan.Vec2{X: 120, Y: 32},
		Fill:        color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xd0},
		ReturnFill:  color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xa0},
		Border:      color.White,
		ZoneHover:   color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0x60},
		ZoneOK:      color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0x80},
		ZoneFailed:  color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0x80},
		BorderWidth: 1,
	}
}

// DrawPreview paints p onto dst. Hidden previews draw nothing.
func DrawPreview(dst *ebiten.Image, p dragplan.Preview, s Style) {
	if !p.Visible {
		return
	}
	x, y := float32(p.Position.X), float32(p.Position.Y)
	w, h := float32(s.Size.X), float32(s.Size.Y)
	fill := s.Fill
	if p.Returning {
		fill = s.ReturnFill
	}
	vector.FillRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, s.BorderWidth, s.Border, false)
	ebitenutil.DebugPrintAt(dst, p.Label, int(x)+4, int(y)+4)
}

// ZoneState selects the highlight DrawZone uses.
type ZoneState uint8

const (
	ZoneIdle ZoneState = iota
	ZoneHovered
	ZoneAccepted
	ZoneFailed
)

// DrawZone paints a zone highlight. ZoneIdle draws only the outline.
func DrawZone(dst *ebiten.Image, r dragplan.Rect, state ZoneState, s Style) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	switch state {
	case ZoneHovered:
		vector.FillRect(dst, x, y, w, h, s.ZoneHover, false)
	case ZoneAccepted:
		vector.FillRect(dst, x, y, w, h, s.ZoneOK, false)
	case ZoneFailed:
		vector.FillRect(dst, x, y, w, h, s.ZoneFailed, false)
	}
	vector.StrokeRect(dst, x, y, w, h, s.BorderWidth, s.Border, false)
}
