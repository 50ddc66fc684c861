// Package history implements the board's linear undo/redo model: a bounded
// past, a present head, and a future stack that only undo builds. It stores
// and returns snapshots; applying them to the board is the caller's job.
package history

import "github.com/plaisio/plaisio/internal/models"

// Manager tracks committed board states. The zero value is not usable;
// construct with NewManager.
type Manager struct {
	past    []models.Snapshot // oldest first
	present *models.Snapshot  // nil until the first save
	future  []models.Snapshot // most recent undo first
	limit   int
}

// NewManager returns a Manager retaining at most limit past entries.
// A non-positive limit falls back to models.DefaultHistoryLimit.
func NewManager(limit int) *Manager {
	if limit <= 0 {
		limit = models.DefaultHistoryLimit
	}
	return &Manager{limit: limit}
}

// SaveState records the state after a committed mutation. A snapshot
// structurally equal to the present head is discarded, so no-op mutations
// never produce duplicate entries. Any previously available redo path is
// cleared: committing a new action discards the abandoned branch.
func (m *Manager) SaveState(snap models.Snapshot) {
	if m.present != nil && m.present.Equal(snap) {
		return
	}

	if m.present != nil {
		m.past = append(m.past, *m.present)
		if len(m.past) > m.limit {
			// FIFO eviction: the oldest entry goes first.
			m.past = m.past[len(m.past)-m.limit:]
		}
	}

	stored := snap.Clone()
	m.present = &stored
	m.future = nil
}

// Undo steps back one committed state. It returns the snapshot to apply and
// false when there is nothing to undo.
func (m *Manager) Undo() (models.Snapshot, bool) {
	if len(m.past) == 0 || m.present == nil {
		return models.Snapshot{}, false
	}

	previous := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = append([]models.Snapshot{*m.present}, m.future...)
	m.present = &previous

	return previous.Clone(), true
}

// Redo steps forward along the undo trail. It returns the snapshot to apply
// and false when there is nothing to redo.
func (m *Manager) Redo() (models.Snapshot, bool) {
	if len(m.future) == 0 || m.present == nil {
		return models.Snapshot{}, false
	}

	next := m.future[0]
	m.future = m.future[1:]
	m.past = append(m.past, *m.present)
	m.present = &next

	return next.Clone(), true
}

// CanUndo reports whether an undo step is available.
func (m *Manager) CanUndo() bool {
	return len(m.past) > 0
}

// CanRedo reports whether a redo step is available.
func (m *Manager) CanRedo() bool {
	return len(m.future) > 0
}

// Clear resets the history to empty. Used when the board gets a fresh
// baseline, such as a full data import.
func (m *Manager) Clear() {
	m.past = nil
	m.present = nil
	m.future = nil
}

// Depth returns the number of retained past entries.
func (m *Manager) Depth() int {
	return len(m.past)
}

// State is the serializable form of a Manager, used to carry undo history
// between process runs.
type State struct {
	Past    []models.Snapshot `json:"past"`
	Present *models.Snapshot  `json:"present"`
	Future  []models.Snapshot `json:"future"`
}

// Export returns a deep copy of the manager's current state.
func (m *Manager) Export() State {
	st := State{
		Past:   make([]models.Snapshot, 0, len(m.past)),
		Future: make([]models.Snapshot, 0, len(m.future)),
	}
	for _, snap := range m.past {
		st.Past = append(st.Past, snap.Clone())
	}
	if m.present != nil {
		present := m.present.Clone()
		st.Present = &present
	}
	for _, snap := range m.future {
		st.Future = append(st.Future, snap.Clone())
	}
	return st
}

// Restore replaces the manager's state with st, trimming the past to the
// manager's limit.
func (m *Manager) Restore(st State) {
	m.past = nil
	m.present = nil
	m.future = nil

	for _, snap := range st.Past {
		m.past = append(m.past, snap.Clone())
	}
	if len(m.past) > m.limit {
		m.past = m.past[len(m.past)-m.limit:]
	}
	if st.Present != nil {
		present := st.Present.Clone()
		m.present = &present
	}
	for _, snap := range st.Future {
		m.future = append(m.future, snap.Clone())
	}
}
