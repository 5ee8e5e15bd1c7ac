// Package domain contains the core data types for the workout tracker:
// workout records, workout type definitions, weight entries, aggregation
// periods and the shapes of computed statistics.
// It is imported by every other internal package (repo, service, catalog).
package domain

import "time"

// CalendarDay returns the calendar date of t (in t's own location) as
// midnight UTC. All stored dates are normalized this way, so two dates are
// the same calendar day exactly when they are Equal.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayIn returns the calendar day the instant t falls on in loc, as midnight
// UTC. A nil loc means UTC.
func DayIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return CalendarDay(t.In(loc))
}

// Today returns the calendar day the instant now falls on in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return DayIn(now, loc)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return CalendarDay(a).Equal(CalendarDay(b))
}

// DaysBetween returns the number of calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(CalendarDay(b).Sub(CalendarDay(a)) / (24 * time.Hour))
}
