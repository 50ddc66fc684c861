package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plaisio/plaisio/internal/backup"
	"github.com/plaisio/plaisio/internal/board"
	"github.com/plaisio/plaisio/internal/models"
)

// ExitCodeFor maps a domain error to the exit code its category calls for.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrTitleTooLong),
		errors.Is(err, board.ErrInvalidPriority),
		errors.Is(err, board.ErrInvalidDueDate),
		errors.Is(err, board.ErrInvalidPeriod):
		return ExitValidation
	case errors.Is(err, board.ErrUnknownColumn),
		errors.Is(err, board.ErrInvalidIndex):
		return ExitUsage
	case errors.Is(err, backup.ErrInvalidFormat):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ParseStatus maps a column name to its Status
func ParseStatus(s string) (models.Status, error) {
	status := models.Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("invalid column '%s' (must be: todo, in-progress, done)", s)
	}
	return status, nil
}

// ParsePriority maps a priority name to its Priority
func ParsePriority(s string) (models.Priority, error) {
	priority := models.Priority(strings.ToLower(strings.TrimSpace(s)))
	if !priority.Valid() {
		return "", fmt.Errorf("invalid priority '%s' (must be: low, medium, high)", s)
	}
	return priority, nil
}

// FormatTaskLine renders a task as a one-line summary for list output.
func FormatTaskLine(t models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", t.Priority.Label(), t.Title)
	if t.Subject != "" {
		fmt.Fprintf(&b, " (%s)", t.Subject)
	}
	if t.DueDate != "" {
		fmt.Fprintf(&b, " due %s", t.DueDate)
	}
	fmt.Fprintf(&b, "  %s", t.ID)
	return b.String()
}
