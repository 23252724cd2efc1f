package textarea

import "github.com/bethropolis/tabmate/internal/types"

// selection holds the anchor of a shift-selection. The other end is
// always the caret, which the Textarea passes in.
type selection struct {
	active bool
	anchor types.Position
	head   types.Position
}

func newSelection() *selection {
	return &selection{}
}

// Extend starts a selection at from if none is active and moves its head
// to to.
func (s *selection) Extend(from, to types.Position) {
	if !s.active {
		s.anchor = from
		s.active = true
	}
	s.head = to
}

// Set replaces the selection with [start, end).
func (s *selection) Set(start, end types.Position) {
	s.anchor = start
	s.head = end
	s.active = start != end
}

func (s *selection) Clear() {
	s.active = false
}

// Range returns the normalised selection. ok is false for no selection or
// an empty one.
func (s *selection) Range() (start, end types.Position, ok bool) {
	if !s.active || s.anchor == s.head {
		return types.Position{}, types.Position{}, false
	}
	start, end = s.anchor, s.head
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}
