package dragplan

import "math"

// SnapToGrid rounds each axis of p to the nearest multiple of grid.
// A non-positive grid returns p unchanged.
func SnapToGrid(p Vec2, grid float64) Vec2 {
	if grid <= 0 {
		return p
	}
	return Vec2{
		X: math.Round(p.X/grid) * grid,
		Y: math.Round(p.Y/grid) * grid,
	}
}

// HitTest returns the first zone whose rectangle contains (x, y).
// Overlapping zones resolve to slice order, so callers that need priority
// must place more specific zones first.
func HitTest(zones []DropZone, x, y float64) (DropZone, bool) {
	for i := range zones {
		if zones[i].Rect.Contains(x, y) {
			return zones[i], true
		}
	}
	return DropZone{}, false
}
