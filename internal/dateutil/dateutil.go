// Package dateutil parses the fixed-width date tokens used across the
// textual input formats: YYYYMMDD calendar days and YYYYMM year-months.
package dateutil

import (
	"fmt"
	"time"

	"github.com/awesomegic/gicbank/internal/model"
)

const (
	DayFormat   = "20060102"
	MonthFormat = "200601"
)

// ParseDay parses a YYYYMMDD calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: incorrect format of time %q", model.ErrFormat, s)
	}
	return t, nil
}

// ParseMonth parses a YYYYMM token. The returned time is the first day of
// the month.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: incorrect format of month %q", model.ErrFormat, s)
	}
	return t, nil
}

// FormatDay renders a day back to YYYYMMDD.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// MonthEnd returns the last calendar day of t's month.
func MonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, -1)
}

// SameMonth reports whether day falls in month's year and month.
func SameMonth(day, month time.Time) bool {
	return day.Year() == month.Year() && day.Month() == month.Month()
}
