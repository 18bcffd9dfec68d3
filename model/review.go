package model

// ReviewSet tracks which record IDs are flagged reviewed in the current
// session. Membership reflects the most recent Mark/Unmark calls; there is
// no persistence beyond the session.
type ReviewSet struct {
	ids map[int]struct{}
}

func NewReviewSet() *ReviewSet {
	return &ReviewSet{ids: map[int]struct{}{}}
}

// Mark flags a record ID as reviewed. Idempotent.
func (s *ReviewSet) Mark(id int) {
	s.ids[id] = struct{}{}
}

// Unmark removes a record ID from the set if present. Idempotent.
func (s *ReviewSet) Unmark(id int) {
	delete(s.ids, id)
}

func (s *ReviewSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Clear empties the set entirely.
func (s *ReviewSet) Clear() {
	s.ids = map[int]struct{}{}
}

func (s *ReviewSet) Len() int {
	return len(s.ids)
}

// IDs returns the flagged record IDs in no particular order.
func (s *ReviewSet) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids
}
