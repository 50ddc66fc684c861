// Package dates provides the calendar arithmetic behind the board's period
// navigation and due-date classification. All functions operate on civil
// dates (YYYY-MM-DD strings or day-truncated time.Time values) so results
// never drift with the time of day or timezone offsets.
package dates

import (
	"fmt"
	"time"

	"github.com/plaisio/plaisio/internal/models"
)

// Now returns the wall clock time and is swapped out by tests to pin
// "today". Everything in this package derives the current day from it.
var Now = time.Now

// ParseDay parses a YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Today returns the current civil date as YYYY-MM-DD.
func Today() string {
	return Now().Format(models.DateLayout)
}

// MonthBounds returns the first and last calendar day of the month
// containing t.
func MonthBounds(t time.Time) (start, end string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(models.DateLayout), last.Format(models.DateLayout)
}

// WeekBounds returns the Monday and Sunday of the week containing t.
func WeekBounds(t time.Time) (start, end string) {
	offset := (int(t.Weekday()) + 6) % 7 // Monday-start week
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(models.DateLayout), sunday.Format(models.DateLayout)
}

// CurrentMonth returns the bounds of the real current month.
func CurrentMonth() (start, end string) {
	return MonthBounds(Now())
}

// CurrentWeek returns the bounds of the real current week.
func CurrentWeek() (start, end string) {
	return WeekBounds(Now())
}

// ShiftMonth returns the bounds of the month delta months away from the
// month containing startDate. Negative delta moves backwards.
func ShiftMonth(startDate string, delta int) (start, end string, err error) {
	t, err := ParseDay(startDate)
	if err != nil {
		return "", "", err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	start, end = MonthBounds(first.AddDate(0, delta, 0))
	return start, end, nil
}

// ShiftWeek returns the bounds of the week delta*7 days away from the week
// containing startDate.
func ShiftWeek(startDate string, delta int) (start, end string, err error) {
	t, err := ParseDay(startDate)
	if err != nil {
		return "", "", err
	}
	start, end = WeekBounds(t.AddDate(0, 0, delta*7))
	return start, end, nil
}

// InPeriod reports whether a task with the given due date belongs to the
// period [periodStart, periodEnd], inclusive.
//
// A task with no due date is tagged to "now": it is in-period only when the
// queried period is the real current month, never a navigated past or
// future view.
func InPeriod(dueDate, periodStart, periodEnd string) bool {
	if dueDate == "" {
		start, end := CurrentMonth()
		return periodStart == start && periodEnd == end
	}
	// Lexicographic comparison is equivalent to calendar order for
	// zero-padded YYYY-MM-DD strings.
	return periodStart <= dueDate && dueDate <= periodEnd
}

// IsOverdue reports whether dueDate falls strictly before today's civil day.
// Undated tasks are never overdue.
func IsOverdue(dueDate string) bool {
	return dueDate != "" && dueDate < Today()
}

// IsDueToday reports whether dueDate is today's civil day.
func IsDueToday(dueDate string) bool {
	return dueDate != "" && dueDate == Today()
}

// FormatRange renders a period for display. A full calendar month collapses
// to "January 2006"; anything else prints both endpoints.
func FormatRange(startDate, endDate string) string {
	start, err := ParseDay(startDate)
	if err != nil {
		return startDate + " - " + endDate
	}
	end, err := ParseDay(endDate)
	if err != nil {
		return startDate + " - " + endDate
	}
	if ms, me := MonthBounds(start); ms == startDate && me == endDate {
		return start.Format("January 2006")
	}
	if start.Year() == end.Year() {
		return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
}
