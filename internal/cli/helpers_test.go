package cli

import (
	"fmt"
	"testing"
	"time"

	"github.com/plaisio/plaisio/internal/backup"
	"github.com/plaisio/plaisio/internal/board"
	"github.com/plaisio/plaisio/internal/models"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Status
		wantErr bool
	}{
		{"todo", models.StatusTodo, false},
		{"in-progress", models.StatusInProgress, false},
		{"done", models.StatusDone, false},
		{"DONE", models.StatusDone, false},
		{"  todo  ", models.StatusTodo, false},
		{"doing", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Priority
		wantErr bool
	}{
		{"low", models.PriorityLow, false},
		{"medium", models.PriorityMedium, false},
		{"high", models.PriorityHigh, false},
		{"High", models.PriorityHigh, false},
		{"critical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{board.ErrEmptyTitle, ExitValidation},
		{fmt.Errorf("wrap: %w", board.ErrInvalidDueDate), ExitValidation},
		{board.ErrUnknownColumn, ExitUsage},
		{board.ErrInvalidIndex, ExitUsage},
		{backup.ErrInvalidFormat, ExitDataErr},
		{fmt.Errorf("something else"), ExitError},
	}

	for _, tt := range tests {
		if got := ExitCodeFor(tt.err); got != tt.want {
			t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestFormatTaskLine(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	full := models.Task{
		ID: "abc", Title: "Essay draft", Priority: models.PriorityHigh,
		Subject: "English", DueDate: "2026-03-10",
		CreatedAt: now, UpdatedAt: now,
	}
	if got, want := FormatTaskLine(full), "[High] Essay draft (English) due 2026-03-10  abc"; got != want {
		t.Errorf("FormatTaskLine = %q, want %q", got, want)
	}

	bare := models.Task{ID: "xyz", Title: "Tidy desk", Priority: models.PriorityLow}
	if got, want := FormatTaskLine(bare), "[Low] Tidy desk  xyz"; got != want {
		t.Errorf("FormatTaskLine = %q, want %q", got, want)
	}
}
