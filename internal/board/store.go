// Package board owns the task-board aggregate: three fixed status columns,
// the tasks inside them, and the currently viewed period. The Store is the
// sole mutator; read-side consumers work on snapshot copies.
//
// Column membership is the single source of truth for a task's status.
// Every commit restamps Task.Status from the owning column, so moving a
// task is the only way its status changes.
package board

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/plaisio/plaisio/internal/dates"
	"github.com/plaisio/plaisio/internal/models"
)

// HistorySink receives a snapshot after every committed mutation. The board
// depends only on this interface, never on a concrete history manager.
type HistorySink interface {
	SaveState(models.Snapshot)
}

// Store is the system of record for the board. All mutators are synchronous
// and atomic: a mutation either fully applies or the board is unchanged.
// The Store is not safe for concurrent use; callers own the serialization.
type Store struct {
	snap    models.Snapshot
	history HistorySink
	now     func() time.Time
	newID   func() string
}

// New creates a Store with empty default columns viewing the current month.
func New(opts ...Option) *Store {
	start, end := dates.CurrentMonth()
	s := &Store{
		snap: models.Snapshot{
			Columns:        models.DefaultColumns(),
			MonthStartDate: start,
			MonthEndDate:   end,
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TaskInput carries the caller-provided fields for a new task.
type TaskInput struct {
	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
	Subject     string
	DueDate     string
}

// TaskChanges carries a partial update. Nil fields are left untouched.
// Status is deliberately absent: column membership is authoritative and
// only MoveTask changes it.
type TaskChanges struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Subject     *string
	DueDate     *string
}

// AddTask validates input, constructs a task with a fresh ID and timestamps,
// and appends it to the column matching input.Status. Commits history.
func (s *Store) AddTask(input TaskInput) (models.Task, error) {
	if err := validateInput(input); err != nil {
		return models.Task{}, err
	}

	idx, ok := s.columnIndex(input.Status)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %q", ErrUnknownColumn, input.Status)
	}

	now := s.now()
	task := models.Task{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Subject:     input.Subject,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	col := s.snap.Columns[idx].Clone()
	col.Tasks = append(col.Tasks, task)
	s.snap.Columns[idx] = col

	s.commit()
	return task, nil
}

// UpdateTask merges changes into the task with the given id and refreshes
// its UpdatedAt. An unknown id is a silent no-op: deletes racing an undo are
// routine, not errors. Commits history.
func (s *Store) UpdateTask(id string, changes TaskChanges) error {
	if err := validateChanges(changes); err != nil {
		return err
	}

	colIdx, taskIdx, ok := s.locate(id)
	if !ok {
		slog.Debug("update ignored, task not found", "task_id", id)
		return nil
	}

	col := s.snap.Columns[colIdx].Clone()
	task := &col.Tasks[taskIdx]
	if changes.Title != nil {
		task.Title = *changes.Title
	}
	if changes.Description != nil {
		task.Description = *changes.Description
	}
	if changes.Priority != nil {
		task.Priority = *changes.Priority
	}
	if changes.Subject != nil {
		task.Subject = *changes.Subject
	}
	if changes.DueDate != nil {
		task.DueDate = *changes.DueDate
	}
	task.UpdatedAt = s.now()
	s.snap.Columns[colIdx] = col

	s.commit()
	return nil
}

// DeleteTask removes the task with the given id from whichever column holds
// it. An unknown id is a silent no-op. Commits history.
func (s *Store) DeleteTask(id string) {
	colIdx, taskIdx, ok := s.locate(id)
	if !ok {
		slog.Debug("delete ignored, task not found", "task_id", id)
		return
	}

	col := s.snap.Columns[colIdx].Clone()
	col.Tasks = append(col.Tasks[:taskIdx], col.Tasks[taskIdx+1:]...)
	s.snap.Columns[colIdx] = col

	s.commit()
}

// MoveTask removes the task from the source column and inserts it into the
// destination column at destIndex, clamped to [0, len]. The moved task gets
// the destination's status stamped on it. A task missing from the source is
// a silent no-op. Commits history.
func (s *Store) MoveTask(id string, source, dest models.Status, destIndex int) error {
	srcIdx, ok := s.columnIndex(source)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, source)
	}
	dstIdx, ok := s.columnIndex(dest)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, dest)
	}

	srcCol := s.snap.Columns[srcIdx].Clone()
	taskIdx := -1
	for i := range srcCol.Tasks {
		if srcCol.Tasks[i].ID == id {
			taskIdx = i
			break
		}
	}
	if taskIdx < 0 {
		slog.Debug("move ignored, task not in source column",
			"task_id", id, "source", source)
		return nil
	}

	task := srcCol.Tasks[taskIdx]
	srcCol.Tasks = append(srcCol.Tasks[:taskIdx], srcCol.Tasks[taskIdx+1:]...)
	s.snap.Columns[srcIdx] = srcCol

	dstCol := s.snap.Columns[dstIdx].Clone()
	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(dstCol.Tasks) {
		destIndex = len(dstCol.Tasks)
	}
	task.Status = dest
	task.UpdatedAt = s.now()
	dstCol.Tasks = append(dstCol.Tasks[:destIndex],
		append([]models.Task{task}, dstCol.Tasks[destIndex:]...)...)
	s.snap.Columns[dstIdx] = dstCol

	s.commit()
	return nil
}

// ReorderTasks moves the task at fromIndex to toIndex within one column.
// A reorder that nets to the same id order is a no-op and does not commit
// history. Out-of-range indices are a caller contract violation.
func (s *Store) ReorderTasks(column models.Status, fromIndex, toIndex int) error {
	idx, ok := s.columnIndex(column)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	n := len(s.snap.Columns[idx].Tasks)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return fmt.Errorf("%w: from=%d to=%d len=%d", ErrInvalidIndex, fromIndex, toIndex, n)
	}
	if fromIndex == toIndex {
		return nil
	}

	col := s.snap.Columns[idx].Clone()
	task := col.Tasks[fromIndex]
	col.Tasks = append(col.Tasks[:fromIndex], col.Tasks[fromIndex+1:]...)
	col.Tasks = append(col.Tasks[:toIndex],
		append([]models.Task{task}, col.Tasks[toIndex:]...)...)
	s.snap.Columns[idx] = col

	s.commit()
	return nil
}

// SetPeriod replaces the viewed period. Pure navigation: never committed to
// history.
func (s *Store) SetPeriod(startDate, endDate string) error {
	if _, err := dates.ParseDay(startDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}
	if _, err := dates.ParseDay(endDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}
	if endDate < startDate {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidPeriod, endDate, startDate)
	}
	s.snap.MonthStartDate = startDate
	s.snap.MonthEndDate = endDate
	return nil
}

// Restore replaces the whole board with the given snapshot. This is how
// undo/redo results and imports are applied, so it does not commit history
// itself. Task statuses are restamped from their columns on the way in.
func (s *Store) Restore(snap models.Snapshot) {
	s.snap = snap.Clone()
	normalize(&s.snap)
}

// Snapshot returns a deep copy of the current board state.
func (s *Store) Snapshot() models.Snapshot {
	return s.snap.Clone()
}

// Columns returns a deep copy of the columns.
func (s *Store) Columns() []models.Column {
	return s.snap.Clone().Columns
}

// Period returns the currently viewed period bounds.
func (s *Store) Period() (startDate, endDate string) {
	return s.snap.MonthStartDate, s.snap.MonthEndDate
}

// FindTask returns a copy of the task with the given id.
func (s *Store) FindTask(id string) (models.Task, bool) {
	task, _, ok := s.snap.FindTask(id)
	if !ok {
		return models.Task{}, false
	}
	return *task, true
}

// commit restamps statuses from column membership and hands the resulting
// snapshot to the history sink.
func (s *Store) commit() {
	normalize(&s.snap)
	if s.history != nil {
		s.history.SaveState(s.snap.Clone())
	}
}

// normalize enforces the single-source-of-truth rule: every task's status
// equals the id of the column holding it.
func normalize(snap *models.Snapshot) {
	for i := range snap.Columns {
		for j := range snap.Columns[i].Tasks {
			snap.Columns[i].Tasks[j].Status = snap.Columns[i].ID
		}
	}
}

func (s *Store) columnIndex(status models.Status) (int, bool) {
	for i := range s.snap.Columns {
		if s.snap.Columns[i].ID == status {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) locate(id string) (colIdx, taskIdx int, ok bool) {
	for i := range s.snap.Columns {
		for j := range s.snap.Columns[i].Tasks {
			if s.snap.Columns[i].Tasks[j].ID == id {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func validateInput(input TaskInput) error {
	if input.Title == "" {
		return ErrEmptyTitle
	}
	if len(input.Title) > 255 {
		return ErrTitleTooLong
	}
	if !input.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, input.Status)
	}
	if !input.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, input.Priority)
	}
	if input.DueDate != "" {
		if _, err := dates.ParseDay(input.DueDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDueDate, err)
		}
	}
	return nil
}

func validateChanges(changes TaskChanges) error {
	if changes.Title != nil && *changes.Title == "" {
		return ErrEmptyTitle
	}
	if changes.Title != nil && len(*changes.Title) > 255 {
		return ErrTitleTooLong
	}
	if changes.Priority != nil && !changes.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, *changes.Priority)
	}
	if changes.DueDate != nil && *changes.DueDate != "" {
		if _, err := dates.ParseDay(*changes.DueDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDueDate, err)
		}
	}
	return nil
}
