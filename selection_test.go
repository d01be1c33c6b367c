package dragplan

import "testing"

func TestSelection_AddRemoveToggle(t *testing.T) {
	s := NewSelection()
	if !s.Add("a") || s.Add("a") {
		t.Fatal("Add should report true once, then false")
	}
	s.Add("b")
	if s.Len() != 2 || !s.Contains("b") {
		t.Fatalf("Len=%d Contains(b)=%v", s.Len(), s.Contains("b"))
	}
	if s.Toggle("a") {
		t.Error("Toggle of a selected id should report false")
	}
	if !s.Toggle("c") {
		t.Error("Toggle of an unselected id should report true")
	}
	got := s.IDs()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("IDs = %v, want [b c]", got)
	}
	if s.Remove("zzz") {
		t.Error("Remove of unknown id should report false")
	}
}

func TestSelection_IDsIsACopy(t *testing.T) {
	s := NewSelection()
	s.Add("a")
	ids := s.IDs()
	ids[0] = "mutated"
	if !s.Contains("a") || s.IDs()[0] != "a" {
		t.Error("mutating IDs() result changed the selection")
	}
}

func TestSelection_PickHonorsModifier(t *testing.T) {
	s := NewSelection()
	s.Pick("a")
	s.Pick("b")
	if got := s.IDs(); len(got) != 1 || got[0] != "b" {
		t.Fatalf("single pick should replace, got %v", got)
	}

	s.SetMultiSelecting(true)
	s.Pick("c")
	s.Pick("b")
	if got := s.IDs(); len(got) != 1 || got[0] != "c" {
		t.Fatalf("multi pick should toggle, got %v", got)
	}
	s.SetMultiSelecting(false)
	if s.MultiSelecting() {
		t.Error("modifier flag should clear")
	}
}

func TestSelection_SelectAllAndClear(t *testing.T) {
	s := NewSelection()
	s.SelectAll([]string{"x", "y", "x", "z"})
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3 after collapsing duplicates", s.Len())
	}
	s.Clear()
	if s.Len() != 0 || s.Contains("x") {
		t.Error("Clear should empty the selection")
	}
	s.Add("x")
	if s.Len() != 1 {
		t.Error("selection unusable after Clear")
	}
}
