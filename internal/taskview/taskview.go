// Package taskview holds the pure read-side of the board: sorting, priority
// and subject filtering, free-text search, and the per-period derived views.
// Nothing here mutates board state; every function returns fresh slices.
package taskview

import (
	"sort"
	"strings"

	"github.com/plaisio/plaisio/internal/dates"
	"github.com/plaisio/plaisio/internal/models"
)

// SortByDueThenPriority orders tasks for display: dated tasks before undated
// ones, dated tasks ascending by due date with ties broken by descending
// priority, undated tasks by descending priority alone.
//
// The sort is stable so equal-key tasks keep their manual ranking and the
// board does not jitter between renders.
func SortByDueThenPriority(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.DueDate != "" && b.DueDate == "":
			return true
		case a.DueDate == "" && b.DueDate != "":
			return false
		case a.DueDate != b.DueDate:
			return a.DueDate < b.DueDate
		default:
			return a.Priority.Rank() > b.Priority.Rank()
		}
	})
	return sorted
}

// FilterByPriority keeps only tasks whose priority is in allowed. An empty
// selection means "no filter": all tasks pass, not none.
func FilterByPriority(tasks []models.Task, allowed []models.Priority) []models.Task {
	if len(allowed) == 0 {
		return tasks
	}
	keep := make(map[models.Priority]bool, len(allowed))
	for _, p := range allowed {
		keep[p] = true
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep[t.Priority] {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterBySubject keeps only tasks with the given subject. An empty subject
// means "no filter".
func FilterBySubject(tasks []models.Task, subject string) []models.Task {
	if subject == "" {
		return tasks
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Subject == subject {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Search returns tasks whose title, description or subject contains the
// query, case-insensitively, in original order and capped at
// models.SearchResultLimit. A blank query deactivates search and yields no
// results rather than matching everything.
func Search(tasks []models.Task, query string) []models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []models.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) ||
			strings.Contains(strings.ToLower(t.Subject), query) {
			matches = append(matches, t)
			if len(matches) == models.SearchResultLimit {
				break
			}
		}
	}
	return matches
}

// VisibleInPeriod keeps tasks belonging to the viewed period. The done
// column gets a rolling two-period window: when the viewed period is the
// real current month, completed tasks from the immediately preceding month
// stay visible too. Navigated past or future views show only their own
// month.
func VisibleInPeriod(column models.Column, periodStart, periodEnd string) []models.Task {
	var prevStart, prevEnd string
	if column.ID == models.StatusDone {
		if start, end := dates.CurrentMonth(); start == periodStart && end == periodEnd {
			prevStart, prevEnd, _ = dates.ShiftMonth(periodStart, -1)
		}
	}

	visible := make([]models.Task, 0, len(column.Tasks))
	for _, t := range column.Tasks {
		if dates.InPeriod(t.DueDate, periodStart, periodEnd) {
			visible = append(visible, t)
			continue
		}
		if prevStart != "" && t.DueDate != "" && prevStart <= t.DueDate && t.DueDate <= prevEnd {
			visible = append(visible, t)
		}
	}
	return visible
}

// Stats summarizes the viewed period for the board header.
type Stats struct {
	Total    int `json:"total"`
	Done     int `json:"done"`
	Overdue  int `json:"overdue"`
	Progress int `json:"progress"` // percent of period tasks completed
}

// PeriodStats computes completion statistics over all tasks in the period.
func PeriodStats(columns []models.Column, periodStart, periodEnd string) Stats {
	var stats Stats
	for _, col := range columns {
		for _, t := range col.Tasks {
			if !dates.InPeriod(t.DueDate, periodStart, periodEnd) {
				continue
			}
			stats.Total++
			if t.Status == models.StatusDone {
				stats.Done++
			}
			if dates.IsOverdue(t.DueDate) {
				stats.Overdue++
			}
		}
	}
	if stats.Total > 0 {
		stats.Progress = stats.Done * 100 / stats.Total
	}
	return stats
}

// SubjectCount pairs a subject label with how many tasks carry it.
type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

// Subjects lists the distinct subject labels on the board, sorted, with
// per-subject task counts. Tasks without a subject are skipped.
func Subjects(columns []models.Column) []SubjectCount {
	counts := make(map[string]int)
	for _, col := range columns {
		for _, t := range col.Tasks {
			if t.Subject != "" {
				counts[t.Subject]++
			}
		}
	}

	subjects := make([]SubjectCount, 0, len(counts))
	for subject, count := range counts {
		subjects = append(subjects, SubjectCount{Subject: subject, Count: count})
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].Subject < subjects[j].Subject
	})
	return subjects
}
