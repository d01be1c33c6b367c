package dragplan

import "testing"

func pickIn(r Rect, id string) PickFunc {
	return func(x, y float64) (Pick, bool) {
		if r.Contains(x, y) {
			return Pick{ID: id, Kind: ItemScheduled, Bounds: r}, true
		}
		return Pick{}, false
	}
}

func TestInputRouter_ClickSelects(t *testing.T) {
	e := newTestEngine(t, nil)
	r := NewInputRouter(e, pickIn(Rect{0, 0, 50, 50}, "evt-1"))

	r.Pointer(10, 10, true)
	r.Pointer(12, 11, true) // within dead zone
	r.Pointer(12, 11, false)

	if e.IsDragging() {
		t.Error("movement inside the dead zone should not start a gesture")
	}
	if got := e.SelectedItemIDs(); len(got) != 1 || got[0] != "evt-1" {
		t.Errorf("selection = %v, want [evt-1]", got)
	}
}

func TestInputRouter_DragPastDeadZone(t *testing.T) {
	var dropped string
	e := newTestEngine(t, func(c *Config) {
		c.OnDragEnd = func(_ DraggedItem, z *DropZone) {
			if z != nil {
				dropped = z.ID
			}
		}
	})
	e.Zones().Register(DropZone{ID: "slot", Rect: Rect{200, 0, 50, 50}})
	r := NewInputRouter(e, pickIn(Rect{0, 0, 50, 50}, "evt-1"))

	r.Pointer(10, 10, true)
	r.Pointer(20, 10, true)
	if !e.IsDragging() {
		t.Fatal("expected gesture after leaving the dead zone")
	}
	item, _ := e.DraggedItem()
	if item.GrabOffset != (Vec2{10, 10}) {
		t.Errorf("grab offset = %v, want press point inside bounds", item.GrabOffset)
	}
	if e.CurrentPosition() != (Vec2{10, 0}) {
		t.Errorf("position = %v, want (10,0)", e.CurrentPosition())
	}

	r.Pointer(210, 10, true)
	r.Pointer(210, 10, false)
	if dropped != "slot" {
		t.Errorf("dropped on %q, want slot", dropped)
	}
	if e.Selection().Len() != 0 {
		t.Error("a drag should not change the selection")
	}
}

func TestInputRouter_PressOnEmptySpace(t *testing.T) {
	e := newTestEngine(t, nil)
	r := NewInputRouter(e, pickIn(Rect{0, 0, 50, 50}, "evt-1"))

	r.Pointer(100, 100, true)
	r.Pointer(200, 200, true)
	r.Pointer(200, 200, false)
	if e.IsDragging() || e.Selection().Len() != 0 {
		t.Error("press outside draggables should do nothing")
	}
}

func TestInputRouter_CustomDeadZone(t *testing.T) {
	e := newTestEngine(t, nil)
	r := NewInputRouter(e, pickIn(Rect{0, 0, 50, 50}, "evt-1"))
	r.SetDragDeadZone(20)

	r.Pointer(10, 10, true)
	r.Pointer(25, 10, true)
	if e.IsDragging() {
		t.Error("15px should be inside a 20px dead zone")
	}
	r.Pointer(35, 10, true)
	if !e.IsDragging() {
		t.Error("25px should leave a 20px dead zone")
	}
}

func TestInputRouter_ShiftClickAddsToSelection(t *testing.T) {
	e := newTestEngine(t, nil)
	pick := func(x, y float64) (Pick, bool) {
		if x < 50 {
			return Pick{ID: "a"}, true
		}
		return Pick{ID: "b"}, true
	}
	r := NewInputRouter(e, pick)

	r.Pointer(10, 10, true)
	r.Pointer(10, 10, false)
	r.Key(KeyShift, true)
	r.Pointer(60, 10, true)
	r.Pointer(60, 10, false)
	r.Key(KeyShift, false)

	if got := e.SelectedItemIDs(); len(got) != 2 {
		t.Errorf("selection = %v, want [a b]", got)
	}
	if e.IsMultiSelecting() {
		t.Error("modifier should clear on key up")
	}
}

func TestInputRouter_EnterStartsKeyboardDrag(t *testing.T) {
	e := newTestEngine(t, nil)
	e.Zones().Register(DropZone{ID: "below", Rect: Rect{0, 20, 20, 20}})
	r := NewInputRouter(e, nil)
	r.SetFocus(func() (Pick, bool) {
		return Pick{ID: "focused", Kind: ItemTemplate, Bounds: Rect{0, 0, 20, 20}}, true
	})

	r.Key(KeyEnter, true)
	item, ok := e.DraggedItem()
	if !ok || item.ID != "focused" {
		t.Fatalf("Enter should start a keyboard drag, got %+v %v", item, ok)
	}
	r.Key(KeyDown, true)
	r.Key(KeyEnter, true)
	if e.IsDragging() || e.Returning() {
		t.Errorf("second Enter should commit onto below; state=%v", e.State())
	}
}
