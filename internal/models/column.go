package models

// Column is an ordered bucket of tasks corresponding to one status.
// Task order is the manual ranking within the column: it is the source order
// for persistence and reorder operations, even when a display layer re-sorts.
type Column struct {
	ID    Status `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	tasks := make([]Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	return Column{ID: c.ID, Title: c.Title, Tasks: tasks}
}

// Equal reports whether two columns hold the same tasks in the same order.
func (c Column) Equal(other Column) bool {
	if c.ID != other.ID || c.Title != other.Title || len(c.Tasks) != len(other.Tasks) {
		return false
	}
	for i := range c.Tasks {
		if !c.Tasks[i].Equal(other.Tasks[i]) {
			return false
		}
	}
	return true
}

// DefaultColumns returns the three empty columns of a fresh board.
func DefaultColumns() []Column {
	columns := make([]Column, 0, len(Statuses))
	for _, s := range Statuses {
		columns = append(columns, Column{ID: s, Title: s.Label(), Tasks: []Task{}})
	}
	return columns
}
