package dragplan

// Selection tracks selected item IDs. It has its own lifecycle: gestures never
// modify it, and callers decide whether to clear it around a drag.
type Selection struct {
	ids   map[string]struct{}
	order []string
	multi bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Add selects id. Returns false if it was already selected.
func (s *Selection) Add(id string) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove deselects id. Returns false if it was not selected.
func (s *Selection) Remove(id string) bool {
	if _, ok := s.ids[id]; !ok {
		return false
	}
	delete(s.ids, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips id and reports whether it is selected afterwards.
func (s *Selection) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Clear deselects everything.
func (s *Selection) Clear() {
	clear(s.ids)
	s.order = s.order[:0]
}

// SelectAll replaces the selection with ids. Duplicates are collapsed.
func (s *Selection) SelectAll(ids []string) {
	s.Clear()
	for _, id := range ids {
		s.Add(id)
	}
}

// Pick applies a click on id: additive toggle while multi-selecting,
// otherwise the selection becomes exactly {id}.
func (s *Selection) Pick(id string) {
	if s.multi {
		s.Toggle(id)
		return
	}
	s.Clear()
	s.Add(id)
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected IDs in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected IDs.
func (s *Selection) Len() int {
	return len(s.order)
}

// SetMultiSelecting records whether the multi-select modifier is held.
func (s *Selection) SetMultiSelecting(on bool) {
	s.multi = on
}

// MultiSelecting reports whether the multi-select modifier is held.
func (s *Selection) MultiSelecting() bool {
	return s.multi
}
