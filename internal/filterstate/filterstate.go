// Package filterstate holds the ephemeral, per-session filter selections:
// a priority filter per column and one board-wide subject filter. None of
// this is part of the persisted board; it resets with the session.
package filterstate

import "github.com/plaisio/plaisio/internal/models"

// State tracks the active filter selections for one session.
type State struct {
	columnFilters map[models.Status][]models.Priority
	subject       string
}

// New returns a State with no active filters.
func New() *State {
	return &State{
		columnFilters: make(map[models.Status][]models.Priority),
	}
}

// TogglePriority flips the selection of a priority in a column's filter.
// Selecting nothing means the column is unfiltered.
func (s *State) TogglePriority(column models.Status, priority models.Priority) {
	current := s.columnFilters[column]
	for i, p := range current {
		if p == priority {
			s.columnFilters[column] = append(current[:i], current[i+1:]...)
			return
		}
	}
	s.columnFilters[column] = append(current, priority)
}

// ClearColumn removes every priority selection from a column.
func (s *State) ClearColumn(column models.Status) {
	delete(s.columnFilters, column)
}

// IsPrioritySelected reports whether a priority is part of a column's
// active filter.
func (s *State) IsPrioritySelected(column models.Status, priority models.Priority) bool {
	for _, p := range s.columnFilters[column] {
		if p == priority {
			return true
		}
	}
	return false
}

// HasActiveFilter reports whether a column has any priority selected.
func (s *State) HasActiveFilter(column models.Status) bool {
	return len(s.columnFilters[column]) > 0
}

// Allowed returns the column's selected priorities. Empty means unfiltered;
// the caller passes the result straight to taskview.FilterByPriority, whose
// empty-set semantics match.
func (s *State) Allowed(column models.Status) []models.Priority {
	selected := s.columnFilters[column]
	out := make([]models.Priority, len(selected))
	copy(out, selected)
	return out
}

// SetSubject sets the board-wide subject filter.
func (s *State) SetSubject(subject string) {
	s.subject = subject
}

// ClearSubject removes the subject filter.
func (s *State) ClearSubject() {
	s.subject = ""
}

// Subject returns the active subject filter, or "" when unfiltered.
func (s *State) Subject() string {
	return s.subject
}
