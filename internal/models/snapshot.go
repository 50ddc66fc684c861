package models

// Snapshot is an immutable copy of the board's persistent state: the three
// columns plus the currently viewed period. History entries and the snapshot
// store both use this shape.
type Snapshot struct {
	Columns        []Column `json:"columns"`
	MonthStartDate string   `json:"monthStartDate"`
	MonthEndDate   string   `json:"monthEndDate"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	columns := make([]Column, len(s.Columns))
	for i, c := range s.Columns {
		columns[i] = c.Clone()
	}
	return Snapshot{
		Columns:        columns,
		MonthStartDate: s.MonthStartDate,
		MonthEndDate:   s.MonthEndDate,
	}
}

// Equal reports deep structural equality between two snapshots.
// The history manager uses this to discard no-op saves.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.MonthStartDate != other.MonthStartDate || s.MonthEndDate != other.MonthEndDate {
		return false
	}
	if len(s.Columns) != len(other.Columns) {
		return false
	}
	for i := range s.Columns {
		if !s.Columns[i].Equal(other.Columns[i]) {
			return false
		}
	}
	return true
}

// TaskCount returns the total number of tasks across all columns.
func (s Snapshot) TaskCount() int {
	n := 0
	for _, c := range s.Columns {
		n += len(c.Tasks)
	}
	return n
}

// AllTasks returns every task on the board in column order.
func (s Snapshot) AllTasks() []Task {
	tasks := make([]Task, 0, s.TaskCount())
	for _, c := range s.Columns {
		tasks = append(tasks, c.Tasks...)
	}
	return tasks
}

// FindTask returns the task with the given id and the column holding it.
func (s Snapshot) FindTask(id string) (*Task, Status, bool) {
	for i := range s.Columns {
		for j := range s.Columns[i].Tasks {
			if s.Columns[i].Tasks[j].ID == id {
				return &s.Columns[i].Tasks[j], s.Columns[i].ID, true
			}
		}
	}
	return nil, "", false
}
