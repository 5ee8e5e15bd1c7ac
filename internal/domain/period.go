package domain

import (
	"fmt"
	"time"
)

// Period is an aggregation window: the week, month or year containing a
// reference date.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod converts a raw string into a Period.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown period %q", ErrValidation, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := CalendarDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in the range, both ends included.
func (r DateRange) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Range resolves the period around ref:
//   - week: Monday through Sunday (ISO week) containing ref
//   - month: first through last day of ref's month
//   - year: January 1 through December 31 of ref's year
func (p Period) Range(ref time.Time) (DateRange, error) {
	day := CalendarDay(ref)
	switch p {
	case PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start := day.AddDate(0, 0, -offset)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case PeriodYear:
		return DateRange{
			Start: time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
		}, nil
	default:
		return DateRange{}, fmt.Errorf("%w: unknown period %q", ErrValidation, string(p))
	}
}
