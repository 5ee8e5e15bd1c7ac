package domain

import "time"

const (
	// NoWorkoutType is reported as the most frequent type of an empty period.
	NoWorkoutType = "None"
	// OtherWorkoutType names records whose workout type no longer exists.
	OtherWorkoutType = "Other"

	FallbackIcon  = "⚡"
	FallbackColor = "hsl(0, 0%, 60%)"
)

// Stats summarizes the workouts of one period.
type Stats struct {
	Period Period
	Range  DateRange
	// EffectiveEnd is the earlier of the range end and today; days after it
	// do not count as elapsed.
	EffectiveEnd time.Time

	TotalWorkouts int
	// WorkoutDays is the number of distinct calendar days with a workout.
	WorkoutDays int
	// TotalDays is the number of elapsed days in the period.
	TotalDays int
	// LostDays is TotalDays - WorkoutDays, floored at zero.
	LostDays int
	// RestDays is the raw TotalDays - WorkoutDays difference.
	RestDays         int
	MostFrequentType string
	// Streak is the longest run of consecutive workout days in the period.
	Streak int
	// Percentage is WorkoutDays / TotalDays rounded to a whole percent.
	Percentage int
}

// DistributionEntry is one bucket of a distribution chart.
// Color and Icon are only set for type distributions.
type DistributionEntry struct {
	Name  string
	Value int
	Color string
	Icon  string
}
