package engine

import "github.com/verdant-labs/garden/pkg/types"

// TodaySet is the set of habit IDs completed on a given day, built from a
// point-in-time snapshot of completion records. It is the predicate the
// workflow consults before submitting; the store's unique index remains the
// real uniqueness authority.
type TodaySet map[string]struct{}

// NewTodaySet builds a TodaySet from a day's completion records.
func NewTodaySet(records []*types.Completion) TodaySet {
	s := make(TodaySet, len(records))
	for _, r := range records {
		s[r.HabitID] = struct{}{}
	}
	return s
}

// Has reports whether the habit was completed on the snapshot's day.
func (s TodaySet) Has(habitID string) bool {
	_, ok := s[habitID]
	return ok
}
