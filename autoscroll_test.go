package dragplan

import "testing"

type fakeScroller struct {
	bounds Rect
	calls  int
	dx, dy float64
}

func (f *fakeScroller) ScrollBy(dx, dy float64) {
	f.calls++
	f.dx += dx
	f.dy += dy
}

func (f *fakeScroller) Bounds() Rect { return f.bounds }

func TestAutoScroller_EdgeDirections(t *testing.T) {
	fs := &fakeScroller{bounds: Rect{0, 0, 800, 600}}
	a := newAutoScroller(fs, 50, 10, 0.01)

	tests := []struct {
		name       string
		x, y       float64
		wantX      int
		wantY      int
		wantActive bool
	}{
		{"center", 400, 300, 0, 0, false},
		{"near top", 400, 20, 0, -1, true},
		{"near bottom", 400, 580, 0, 1, true},
		{"near left", 10, 300, -1, 0, true},
		{"near right", 790, 300, 1, 0, true},
		{"corner", 5, 595, -1, 1, true},
		{"just outside threshold", 400, 50, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Track(tt.x, tt.y)
			dx, dy := a.Direction()
			if dx != tt.wantX || dy != tt.wantY {
				t.Errorf("Direction = (%d,%d), want (%d,%d)", dx, dy, tt.wantX, tt.wantY)
			}
			if a.Active() != tt.wantActive {
				t.Errorf("Active = %v, want %v", a.Active(), tt.wantActive)
			}
		})
	}
}

func TestAutoScroller_TicksAtInterval(t *testing.T) {
	fs := &fakeScroller{bounds: Rect{0, 0, 800, 600}}
	a := newAutoScroller(fs, 50, 10, 0.25)

	a.Track(400, 590)
	a.Update(0.125)
	if fs.calls != 0 {
		t.Fatalf("no tick expected before one interval, got %d", fs.calls)
	}
	a.Update(0.125)
	if fs.calls != 1 || fs.dy != 10 {
		t.Fatalf("after one interval: calls=%d dy=%v, want 1 and 10", fs.calls, fs.dy)
	}
	a.Update(0.5)
	if fs.calls != 3 || fs.dy != 30 {
		t.Errorf("after two more intervals: calls=%d dy=%v, want 3 and 30", fs.calls, fs.dy)
	}
}

func TestAutoScroller_StartIsIdempotent(t *testing.T) {
	fs := &fakeScroller{bounds: Rect{0, 0, 800, 600}}
	a := newAutoScroller(fs, 50, 10, 0.25)

	a.Track(400, 590)
	a.Update(0.125)
	// Same direction again must not reset or stack the timer.
	a.Track(400, 595)
	a.Track(400, 585)
	a.Update(0.125)
	if fs.calls != 1 {
		t.Fatalf("calls = %d, want exactly 1", fs.calls)
	}

	// Changing direction restarts the cycle from zero.
	a.Update(0.125)
	a.Track(400, 10)
	a.Update(0.125)
	if fs.calls != 1 {
		t.Errorf("restart should clear accumulated time, calls = %d", fs.calls)
	}
	a.Update(0.125)
	if fs.calls != 2 || fs.dy != 0 {
		t.Errorf("calls=%d dy=%v, want 2 and 0 (one down, one up)", fs.calls, fs.dy)
	}
}

func TestAutoScroller_StopHaltsTicks(t *testing.T) {
	fs := &fakeScroller{bounds: Rect{0, 0, 800, 600}}
	a := newAutoScroller(fs, 50, 10, 0.1)

	a.Track(5, 300)
	a.Stop()
	a.Stop()
	a.Update(1)
	if fs.calls != 0 {
		t.Errorf("stopped scroller ticked %d times", fs.calls)
	}
	if a.Active() {
		t.Error("expected inactive after Stop")
	}
}
