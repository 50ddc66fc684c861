package taskview

import (
	"testing"
	"time"

	"github.com/plaisio/plaisio/internal/dates"
	"github.com/plaisio/plaisio/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setToday(t *testing.T, day string) {
	t.Helper()
	parsed, err := time.Parse(models.DateLayout, day)
	if err != nil {
		t.Fatalf("bad test date %q: %v", day, err)
	}
	dates.Now = func() time.Time { return parsed.Add(9 * time.Hour) }
	t.Cleanup(func() { dates.Now = time.Now })
}

func task(id string, priority models.Priority) models.Task {
	return models.Task{
		ID:       id,
		Title:    "task " + id,
		Status:   models.StatusTodo,
		Priority: priority,
	}
}

func datedTask(id, due string, priority models.Priority) models.Task {
	t := task(id, priority)
	t.DueDate = due
	return t
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ============================================================================
// SORTING
// ============================================================================

func TestSortByDueThenPriority(t *testing.T) {
	tests := []struct {
		name  string
		input []models.Task
		want  []string
	}{
		{
			name: "same date ties broken by priority, undated last",
			input: []models.Task{
				datedTask("A", "2025-03-10", models.PriorityLow),
				datedTask("B", "2025-03-10", models.PriorityHigh),
				task("C", models.PriorityHigh),
			},
			want: []string{"B", "A", "C"},
		},
		{
			name: "dated ascending by date",
			input: []models.Task{
				datedTask("A", "2025-03-20", models.PriorityHigh),
				datedTask("B", "2025-03-05", models.PriorityLow),
				datedTask("C", "2025-03-12", models.PriorityMedium),
			},
			want: []string{"B", "C", "A"},
		},
		{
			name: "undated ordered by descending priority",
			input: []models.Task{
				task("A", models.PriorityLow),
				task("B", models.PriorityHigh),
				task("C", models.PriorityMedium),
			},
			want: []string{"B", "C", "A"},
		},
		{
			name: "stable on full ties",
			input: []models.Task{
				datedTask("A", "2025-03-10", models.PriorityMedium),
				datedTask("B", "2025-03-10", models.PriorityMedium),
				datedTask("C", "2025-03-10", models.PriorityMedium),
			},
			want: []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortByDueThenPriority(tt.input))
			if !equalIDs(got, tt.want) {
				t.Errorf("got order %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	input := []models.Task{
		task("A", models.PriorityLow),
		datedTask("B", "2025-03-10", models.PriorityHigh),
	}
	SortByDueThenPriority(input)
	if input[0].ID != "A" || input[1].ID != "B" {
		t.Error("sort reordered the caller's slice")
	}
}

// ============================================================================
// FILTERING
// ============================================================================

func TestFilterByPriority(t *testing.T) {
	tasks := []models.Task{
		task("A", models.PriorityLow),
		task("B", models.PriorityHigh),
		task("C", models.PriorityMedium),
		task("D", models.PriorityHigh),
	}

	t.Run("empty selection means no filter", func(t *testing.T) {
		got := FilterByPriority(tasks, nil)
		if len(got) != len(tasks) {
			t.Errorf("got %d tasks, want all %d", len(got), len(tasks))
		}
	})

	t.Run("single priority", func(t *testing.T) {
		got := ids(FilterByPriority(tasks, []models.Priority{models.PriorityHigh}))
		if !equalIDs(got, []string{"B", "D"}) {
			t.Errorf("got %v, want [B D]", got)
		}
	})

	t.Run("multiple priorities", func(t *testing.T) {
		got := FilterByPriority(tasks, []models.Priority{models.PriorityLow, models.PriorityMedium})
		if !equalIDs(ids(got), []string{"A", "C"}) {
			t.Errorf("got %v, want [A C]", ids(got))
		}
	})
}

func TestFilterBySubject(t *testing.T) {
	tasks := []models.Task{
		{ID: "A", Subject: "math"},
		{ID: "B", Subject: "history"},
		{ID: "C", Subject: "math"},
		{ID: "D"},
	}

	if got := FilterBySubject(tasks, ""); len(got) != 4 {
		t.Errorf("empty subject should pass all tasks, got %d", len(got))
	}
	if got := ids(FilterBySubject(tasks, "math")); !equalIDs(got, []string{"A", "C"}) {
		t.Errorf("got %v, want [A C]", got)
	}
}

// ============================================================================
// SEARCH
// ============================================================================

func TestSearch(t *testing.T) {
	tasks := []models.Task{
		{ID: "A", Title: "Study calculus"},
		{ID: "B", Title: "Laundry", Description: "Wash the CALCULUS shirt"},
		{ID: "C", Title: "Groceries", Subject: "Errands"},
		{ID: "D", Title: "Essay draft", Subject: "calculus II"},
	}

	t.Run("matches title description and subject", func(t *testing.T) {
		got := ids(Search(tasks, "calculus"))
		if !equalIDs(got, []string{"A", "B", "D"}) {
			t.Errorf("got %v, want [A B D]", got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		if got := Search(tasks, "ERRANDS"); len(got) != 1 || got[0].ID != "C" {
			t.Errorf("got %v, want [C]", ids(got))
		}
	})

	t.Run("blank query is inactive", func(t *testing.T) {
		if got := Search(tasks, "   "); len(got) != 0 {
			t.Errorf("blank query returned %d results, want 0", len(got))
		}
	})

	t.Run("results capped", func(t *testing.T) {
		var many []models.Task
		for i := 0; i < 25; i++ {
			many = append(many, models.Task{ID: string(rune('a' + i)), Title: "recurring chore"})
		}
		if got := Search(many, "chore"); len(got) != models.SearchResultLimit {
			t.Errorf("got %d results, want %d", len(got), models.SearchResultLimit)
		}
	})

	t.Run("results keep original order", func(t *testing.T) {
		got := ids(Search(tasks, "a"))
		for i := 1; i < len(got); i++ {
			if got[i-1] > got[i] {
				t.Errorf("results out of input order: %v", got)
			}
		}
	})
}

// ============================================================================
// PERIOD VIEWS
// ============================================================================

func TestVisibleInPeriodDoneWindow(t *testing.T) {
	setToday(t, "2025-03-15")

	done := models.Column{
		ID: models.StatusDone,
		Tasks: []models.Task{
			datedTask("feb", "2025-02-10", models.PriorityLow),
			datedTask("mar", "2025-03-10", models.PriorityLow),
			datedTask("jan", "2025-01-10", models.PriorityLow),
		},
	}

	t.Run("current month shows trailing month too", func(t *testing.T) {
		got := ids(VisibleInPeriod(done, "2025-03-01", "2025-03-31"))
		if !equalIDs(got, []string{"feb", "mar"}) {
			t.Errorf("got %v, want [feb mar]", got)
		}
	})

	t.Run("navigated month shows only itself", func(t *testing.T) {
		got := ids(VisibleInPeriod(done, "2025-02-01", "2025-02-28"))
		if !equalIDs(got, []string{"feb"}) {
			t.Errorf("got %v, want [feb]", got)
		}
	})

	t.Run("non-done column has no trailing window", func(t *testing.T) {
		todo := models.Column{ID: models.StatusTodo, Tasks: done.Tasks}
		got := ids(VisibleInPeriod(todo, "2025-03-01", "2025-03-31"))
		if !equalIDs(got, []string{"mar"}) {
			t.Errorf("got %v, want [mar]", got)
		}
	})
}

func TestPeriodStats(t *testing.T) {
	setToday(t, "2025-03-15")

	columns := []models.Column{
		{ID: models.StatusTodo, Tasks: []models.Task{
			datedTask("a", "2025-03-10", models.PriorityLow), // overdue
			datedTask("b", "2025-03-20", models.PriorityLow),
			datedTask("x", "2025-04-02", models.PriorityLow), // out of period
		}},
		{ID: models.StatusInProgress, Tasks: []models.Task{
			task("c", models.PriorityLow), // undated, tagged to current month
		}},
		{ID: models.StatusDone, Tasks: []models.Task{
			func() models.Task {
				d := datedTask("d", "2025-03-05", models.PriorityLow)
				d.Status = models.StatusDone
				return d
			}(),
		}},
	}

	stats := PeriodStats(columns, "2025-03-01", "2025-03-31")
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Done != 1 {
		t.Errorf("Done = %d, want 1", stats.Done)
	}
	if stats.Overdue != 2 { // "a" and the already-finished "d"
		t.Errorf("Overdue = %d, want 2", stats.Overdue)
	}
	if stats.Progress != 25 {
		t.Errorf("Progress = %d, want 25", stats.Progress)
	}
}

func TestSubjects(t *testing.T) {
	columns := []models.Column{
		{ID: models.StatusTodo, Tasks: []models.Task{
			{ID: "a", Subject: "math"},
			{ID: "b", Subject: "art"},
			{ID: "c"},
		}},
		{ID: models.StatusDone, Tasks: []models.Task{
			{ID: "d", Subject: "math"},
		}},
	}

	got := Subjects(columns)
	want := []SubjectCount{{Subject: "art", Count: 1}, {Subject: "math", Count: 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d subjects, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subjects[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
