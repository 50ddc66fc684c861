// Package backup serializes the board for durability and interchange. JSON
// is the round-trip format; CSV is a flat reporting export and is not meant
// to be imported back.
package backup

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/plaisio/plaisio/internal/models"
)

// Import format errors. Wrapped with detail describing the violation.
var (
	ErrInvalidFormat = errors.New("invalid backup format")
	ErrNoTasks       = errors.New("no tasks to export")
)

// Export is the JSON backup payload. ExportedAt and Version are stamped on
// the way out and ignored on import.
type Export struct {
	Columns        []models.Column `json:"columns"`
	MonthStartDate string          `json:"monthStartDate"`
	MonthEndDate   string          `json:"monthEndDate"`
	ExportedAt     time.Time       `json:"exportedAt"`
	Version        string          `json:"version"`
}

// MarshalJSON renders a snapshot as an indented backup payload.
func MarshalJSON(snap models.Snapshot) ([]byte, error) {
	payload := Export{
		Columns:        snap.Columns,
		MonthStartDate: snap.MonthStartDate,
		MonthEndDate:   snap.MonthEndDate,
		ExportedAt:     time.Now().UTC(),
		Version:        models.ExportVersion,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup: %w", err)
	}
	return data, nil
}

// UnmarshalJSON validates a backup payload and returns the snapshot it
// describes. Any structural violation yields a descriptive error wrapping
// ErrInvalidFormat; the caller's board is never partially replaced because
// nothing is applied here.
func UnmarshalJSON(data []byte) (models.Snapshot, error) {
	var payload Export
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if payload.Columns == nil {
		return models.Snapshot{}, fmt.Errorf("%w: columns not found", ErrInvalidFormat)
	}
	for i, col := range payload.Columns {
		if col.ID == "" {
			return models.Snapshot{}, fmt.Errorf("%w: column %d has no id", ErrInvalidFormat, i)
		}
		if col.Title == "" {
			return models.Snapshot{}, fmt.Errorf("%w: column %q has no title", ErrInvalidFormat, col.ID)
		}
		if col.Tasks == nil {
			return models.Snapshot{}, fmt.Errorf("%w: column %q has no task list", ErrInvalidFormat, col.ID)
		}
		for j, task := range col.Tasks {
			if task.ID == "" || task.Title == "" || task.Status == "" || task.Priority == "" {
				return models.Snapshot{}, fmt.Errorf(
					"%w: column %q task %d is incomplete (id, title, status and priority are required)",
					ErrInvalidFormat, col.ID, j)
			}
		}
	}

	return models.Snapshot{
		Columns:        payload.Columns,
		MonthStartDate: payload.MonthStartDate,
		MonthEndDate:   payload.MonthEndDate,
	}, nil
}

// csvHeader labels the columns of the CSV export.
var csvHeader = []string{
	"Title", "Description", "Status", "Priority",
	"Subject", "Due Date", "Created At", "Updated At",
}

// MarshalCSV flattens every task across all columns into delimited rows with
// human-readable status and priority labels. Returns ErrNoTasks for an
// empty board.
func MarshalCSV(snap models.Snapshot) ([]byte, error) {
	tasks := snap.AllTasks()
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			t.Title,
			t.Description,
			t.Status.Label(),
			t.Priority.Label(),
			t.Subject,
			t.DueDate,
			t.CreatedAt.Format(time.DateTime),
			t.UpdatedAt.Format(time.DateTime),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
