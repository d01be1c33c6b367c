package dragplan

// Scroller is the scroll container the engine nudges while a gesture is near
// its edges.
type Scroller interface {
	// ScrollBy scrolls the container content by (dx, dy) logical pixels.
	ScrollBy(dx, dy float64)
	// Bounds returns the container's visible rectangle in screen space.
	Bounds() Rect
}

// scrollTimer is a frame-driven repeating timer. It fires once per interval of
// accumulated dt while running.
type scrollTimer struct {
	interval float64
	elapsed  float64
	running  bool
	dirX     int
	dirY     int
}

// start runs the timer in the given direction. Starting in the direction it is
// already running in is a no-op; any other start clears the previous cycle.
func (t *scrollTimer) start(dirX, dirY int) {
	if t.running && t.dirX == dirX && t.dirY == dirY {
		return
	}
	t.stop()
	t.running = true
	t.dirX = dirX
	t.dirY = dirY
}

func (t *scrollTimer) stop() {
	t.running = false
	t.elapsed = 0
	t.dirX = 0
	t.dirY = 0
}

// advance adds dt and returns how many ticks fired.
func (t *scrollTimer) advance(dt float64) int {
	if !t.running || t.interval <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		n++
	}
	return n
}

// AutoScroller nudges a Scroller while the pointer sits within a threshold of
// one of its edges. It only reads pointer coordinates; the engine owns it and
// stops it on every teardown.
type AutoScroller struct {
	target    Scroller
	threshold float64
	step      float64
	timer     scrollTimer
}

func newAutoScroller(target Scroller, threshold, step, interval float64) *AutoScroller {
	return &AutoScroller{
		target:    target,
		threshold: threshold,
		step:      step,
		timer:     scrollTimer{interval: interval},
	}
}

// edgeDirection returns -1 near the low edge, +1 near the high edge, else 0.
func edgeDirection(p, lo, size, threshold float64) int {
	if p-lo < threshold {
		return -1
	}
	if lo+size-p < threshold {
		return 1
	}
	return 0
}

// Track updates the scroll direction from the pointer position.
func (a *AutoScroller) Track(x, y float64) {
	if a.target == nil {
		return
	}
	b := a.target.Bounds()
	dx := edgeDirection(x, b.X, b.Width, a.threshold)
	dy := edgeDirection(y, b.Y, b.Height, a.threshold)
	if dx == 0 && dy == 0 {
		a.timer.stop()
		return
	}
	a.timer.start(dx, dy)
}

// Update advances the timer by dt seconds and scrolls once per fired tick.
func (a *AutoScroller) Update(dt float64) {
	n := a.timer.advance(dt)
	for i := 0; i < n; i++ {
		a.target.ScrollBy(float64(a.timer.dirX)*a.step, float64(a.timer.dirY)*a.step)
	}
}

// Stop halts scrolling. Safe to call when already stopped.
func (a *AutoScroller) Stop() {
	a.timer.stop()
}

// Active reports whether a scroll timer is running.
func (a *AutoScroller) Active() bool {
	return a.timer.running
}

// Direction returns the current per-axis scroll direction (-1, 0, or +1).
func (a *AutoScroller) Direction() (int, int) {
	return a.timer.dirX, a.timer.dirY
}
