package dates

import (
	"testing"
	"time"

	"github.com/plaisio/plaisio/internal/models"
)

// setToday pins the package clock to mid-afternoon on the given civil day.
func setToday(t *testing.T, day string) {
	t.Helper()
	parsed, err := time.Parse(models.DateLayout, day)
	if err != nil {
		t.Fatalf("bad test date %q: %v", day, err)
	}
	Now = func() time.Time { return parsed.Add(14 * time.Hour) }
	t.Cleanup(func() { Now = time.Now })
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"mid month", "2025-03-15", "2025-03-01", "2025-03-31"},
		{"first day", "2025-04-01", "2025-04-01", "2025-04-30"},
		{"last day", "2025-04-30", "2025-04-01", "2025-04-30"},
		{"february leap year", "2024-02-10", "2024-02-01", "2024-02-29"},
		{"february common year", "2025-02-10", "2025-02-01", "2025-02-28"},
		{"december", "2025-12-25", "2025-12-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDay(tt.date)
			if err != nil {
				t.Fatalf("ParseDay(%q): %v", tt.date, err)
			}
			start, end := MonthBounds(parsed)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("MonthBounds(%s) = (%s, %s), want (%s, %s)",
					tt.date, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"wednesday", "2025-03-12", "2025-03-10", "2025-03-16"},
		{"monday is its own start", "2025-03-10", "2025-03-10", "2025-03-16"},
		{"sunday belongs to previous monday", "2025-03-16", "2025-03-10", "2025-03-16"},
		{"week spanning months", "2025-03-31", "2025-03-31", "2025-04-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDay(tt.date)
			if err != nil {
				t.Fatalf("ParseDay(%q): %v", tt.date, err)
			}
			start, end := WeekBounds(parsed)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("WeekBounds(%s) = (%s, %s), want (%s, %s)",
					tt.date, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		delta     int
		wantStart string
		wantEnd   string
	}{
		{"forward", "2025-03-01", 1, "2025-04-01", "2025-04-30"},
		{"backward", "2025-03-01", -1, "2025-02-01", "2025-02-28"},
		{"across year end", "2025-12-01", 1, "2026-01-01", "2026-01-31"},
		{"across year start", "2025-01-01", -1, "2024-12-01", "2024-12-31"},
		{"zero delta", "2025-06-01", 0, "2025-06-01", "2025-06-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ShiftMonth(tt.start, tt.delta)
			if err != nil {
				t.Fatalf("ShiftMonth(%s, %d): %v", tt.start, tt.delta, err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ShiftMonth(%s, %d) = (%s, %s), want (%s, %s)",
					tt.start, tt.delta, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}

	if _, _, err := ShiftMonth("not-a-date", 1); err == nil {
		t.Error("ShiftMonth with malformed date should fail")
	}
}

func TestShiftWeek(t *testing.T) {
	start, end, err := ShiftWeek("2025-03-10", 1)
	if err != nil {
		t.Fatalf("ShiftWeek: %v", err)
	}
	if start != "2025-03-17" || end != "2025-03-23" {
		t.Errorf("ShiftWeek(+1) = (%s, %s), want (2025-03-17, 2025-03-23)", start, end)
	}

	start, end, err = ShiftWeek("2025-03-10", -2)
	if err != nil {
		t.Fatalf("ShiftWeek: %v", err)
	}
	if start != "2025-02-24" || end != "2025-03-02" {
		t.Errorf("ShiftWeek(-2) = (%s, %s), want (2025-02-24, 2025-03-02)", start, end)
	}
}

func TestInPeriod(t *testing.T) {
	setToday(t, "2025-03-15")

	tests := []struct {
		name    string
		dueDate string
		start   string
		end     string
		want    bool
	}{
		{"inside range", "2025-03-10", "2025-03-01", "2025-03-31", true},
		{"on start boundary", "2025-03-01", "2025-03-01", "2025-03-31", true},
		{"on end boundary", "2025-03-31", "2025-03-01", "2025-03-31", true},
		{"day after range", "2025-04-01", "2025-03-01", "2025-03-31", false},
		{"day before range", "2025-02-28", "2025-03-01", "2025-03-31", false},
		{"undated in current month", "", "2025-03-01", "2025-03-31", true},
		{"undated in past month", "", "2025-02-01", "2025-02-28", false},
		{"undated in future month", "", "2025-04-01", "2025-04-30", false},
		{"undated in current week view", "", "2025-03-10", "2025-03-16", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InPeriod(tt.dueDate, tt.start, tt.end); got != tt.want {
				t.Errorf("InPeriod(%q, %s, %s) = %v, want %v",
					tt.dueDate, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestOverdueAndDueToday(t *testing.T) {
	setToday(t, "2025-03-15")

	if IsOverdue("2025-03-15") {
		t.Error("task due today must not be overdue")
	}
	if !IsDueToday("2025-03-15") {
		t.Error("task due today must be due today")
	}
	if !IsOverdue("2025-03-14") {
		t.Error("task due yesterday must be overdue")
	}
	if IsDueToday("2025-03-14") {
		t.Error("task due yesterday must not be due today")
	}
	if IsOverdue("2025-03-16") {
		t.Error("task due tomorrow must not be overdue")
	}
	if IsOverdue("") {
		t.Error("undated task must never be overdue")
	}
	if IsDueToday("") {
		t.Error("undated task must never be due today")
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"full month", "2025-03-01", "2025-03-31", "March 2025"},
		{"week within year", "2025-03-10", "2025-03-16", "Mar 10 - Mar 16, 2025"},
		{"range across years", "2025-12-29", "2026-01-04", "Dec 29, 2025 - Jan 4, 2026"},
		{"malformed falls back to raw", "garbage", "2025-03-31", "garbage - 2025-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatRange(%s, %s) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
