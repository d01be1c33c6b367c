package dragplan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultReturnDuration is the rollback animation length in seconds.
const DefaultReturnDuration = 0.3

// EaseOutCubic returns 1 - (1-t)^3 with t clamped to [0, 1]. It is the
// reference form of the return curve; the animation itself runs on gween's
// ease.OutCubic, which follows the same progression.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

// returnAnim moves the preview from where the gesture ended back to the item's
// origin. It holds its own copy of the label so it can outlive the gesture.
type returnAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	label  string
	target Vec2
	done   bool

	gestureID string
	itemID    string
	itemKind  ItemKind
}

func newReturnAnim(from, to Vec2, duration float32, label string) *returnAnim {
	return &returnAnim{
		tweenX: gween.New(float32(from.X), float32(to.X), duration, ease.OutCubic),
		tweenY: gween.New(float32(from.Y), float32(to.Y), duration, ease.OutCubic),
		label:  label,
		target: to,
	}
}

// Update advances the animation by dt seconds and returns the new position
// and whether the animation has finished. The final step lands exactly on the
// target.
func (a *returnAnim) Update(dt float32) (Vec2, bool) {
	if a.done {
		return a.target, true
	}
	x, doneX := a.tweenX.Update(dt)
	y, doneY := a.tweenY.Update(dt)
	if doneX && doneY {
		a.done = true
		return a.target, true
	}
	return Vec2{float64(x), float64(y)}, false
}
