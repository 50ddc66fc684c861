package history

import (
	"fmt"
	"testing"

	"github.com/plaisio/plaisio/internal/models"
)

// boardState builds a one-task snapshot whose identity is the task title.
func boardState(label string) models.Snapshot {
	return models.Snapshot{
		Columns: []models.Column{
			{ID: models.StatusTodo, Title: "To Do", Tasks: []models.Task{
				{ID: "t1", Title: label, Status: models.StatusTodo, Priority: models.PriorityMedium},
			}},
			{ID: models.StatusInProgress, Title: "In Progress", Tasks: []models.Task{}},
			{ID: models.StatusDone, Title: "Done", Tasks: []models.Task{}},
		},
		MonthStartDate: "2025-03-01",
		MonthEndDate:   "2025-03-31",
	}
}

func TestSaveStateDiscardsDuplicates(t *testing.T) {
	m := NewManager(0)

	m.SaveState(boardState("v1"))
	m.SaveState(boardState("v1")) // structurally identical

	if m.CanUndo() {
		t.Error("duplicate save must not create an undo entry")
	}

	m.SaveState(boardState("v2"))
	if !m.CanUndo() {
		t.Error("distinct save must create an undo entry")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := NewManager(0)

	const n = 7
	var states []models.Snapshot
	for i := 0; i <= n; i++ {
		s := boardState(fmt.Sprintf("v%d", i))
		states = append(states, s)
		m.SaveState(s)
	}

	// Walk all the way back.
	for i := n - 1; i >= 0; i-- {
		snap, ok := m.Undo()
		if !ok {
			t.Fatalf("undo to v%d failed", i)
		}
		if !snap.Equal(states[i]) {
			t.Fatalf("undo landed on wrong state at v%d", i)
		}
	}
	if m.CanUndo() {
		t.Error("undo should be exhausted at the first state")
	}

	// And all the way forward again.
	for i := 1; i <= n; i++ {
		snap, ok := m.Redo()
		if !ok {
			t.Fatalf("redo to v%d failed", i)
		}
		if !snap.Equal(states[i]) {
			t.Fatalf("redo landed on wrong state at v%d", i)
		}
	}
	if m.CanRedo() {
		t.Error("redo should be exhausted at the final state")
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	m := NewManager(0)

	if _, ok := m.Undo(); ok {
		t.Error("undo with no history should report nothing to undo")
	}

	m.SaveState(boardState("only"))
	if _, ok := m.Undo(); ok {
		t.Error("undo with a lone present state should report nothing to undo")
	}
}

func TestNewActionDiscardsRedoBranch(t *testing.T) {
	m := NewManager(0)

	m.SaveState(boardState("v1"))
	m.SaveState(boardState("v2"))
	m.SaveState(boardState("v3"))

	if _, ok := m.Undo(); !ok {
		t.Fatal("undo failed")
	}
	if !m.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	m.SaveState(boardState("v2b"))

	if m.CanRedo() {
		t.Error("a committed action must clear the redo stack")
	}
	if _, ok := m.Redo(); ok {
		t.Error("redo after a new action should report nothing to redo")
	}
}

func TestHistoryCapEvictsOldestFirst(t *testing.T) {
	m := NewManager(50)

	for i := 1; i <= 60; i++ {
		m.SaveState(boardState(fmt.Sprintf("v%d", i)))
	}

	if m.Depth() != 50 {
		t.Fatalf("retained %d past entries, want 50", m.Depth())
	}

	// Undo to the oldest retained entry.
	var last models.Snapshot
	for m.CanUndo() {
		last, _ = m.Undo()
	}

	// 60 saves with a cap of 50: v10 is the oldest survivor, v9 and earlier
	// were evicted.
	if !last.Equal(boardState("v10")) {
		t.Errorf("oldest retained state is wrong; eviction order broken")
	}
}

func TestClear(t *testing.T) {
	m := NewManager(0)
	m.SaveState(boardState("v1"))
	m.SaveState(boardState("v2"))
	m.Undo()

	m.Clear()

	if m.CanUndo() || m.CanRedo() {
		t.Error("cleared history must have no undo or redo available")
	}
	if _, ok := m.Undo(); ok {
		t.Error("undo after clear should report nothing to undo")
	}
}

func TestSavedSnapshotIsIsolatedFromCaller(t *testing.T) {
	m := NewManager(0)

	s := boardState("v1")
	m.SaveState(s)
	s.Columns[0].Tasks[0].Title = "mutated after save"
	m.SaveState(boardState("v2"))

	snap, ok := m.Undo()
	if !ok {
		t.Fatal("undo failed")
	}
	if snap.Columns[0].Tasks[0].Title != "v1" {
		t.Error("history entry aliased the caller's slice and was mutated")
	}
}

func TestExportRestoreRoundTrip(t *testing.T) {
	m := NewManager(0)
	m.SaveState(boardState("v1"))
	m.SaveState(boardState("v2"))
	m.SaveState(boardState("v3"))
	m.Undo() // present v2, future v3

	restored := NewManager(0)
	restored.Restore(m.Export())

	if restored.Depth() != 1 {
		t.Fatalf("restored depth = %d, want 1", restored.Depth())
	}
	snap, ok := restored.Undo()
	if !ok || !snap.Equal(boardState("v1")) {
		t.Error("restored manager lost its past")
	}
	snap, ok = restored.Redo()
	if !ok || !snap.Equal(boardState("v2")) {
		t.Error("restored manager lost its redo trail")
	}
	snap, ok = restored.Redo()
	if !ok || !snap.Equal(boardState("v3")) {
		t.Error("restored manager lost its future")
	}
}

func TestRestoreTrimsPastToLimit(t *testing.T) {
	big := NewManager(100)
	for i := 1; i <= 30; i++ {
		big.SaveState(boardState(fmt.Sprintf("v%d", i)))
	}

	small := NewManager(5)
	small.Restore(big.Export())

	if small.Depth() != 5 {
		t.Fatalf("restored depth = %d, want 5", small.Depth())
	}
	var last models.Snapshot
	for small.CanUndo() {
		last, _ = small.Undo()
	}
	if !last.Equal(boardState("v25")) {
		t.Error("trim must drop the oldest entries first")
	}
}
