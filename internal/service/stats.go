package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
)

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StatsService computes period statistics and distributions over the stored
// workouts. It never mutates anything.
type StatsService struct {
	workouts repo.WorkoutRepo
	types    repo.WorkoutTypeRepo
	now      func() time.Time
	loc      *time.Location
}

// NewStatsService constructs a StatsService. now and loc decide what
// "today" is, and loc also decides which day a reference date falls on;
// nil values mean time.Now and UTC.
func NewStatsService(workouts repo.WorkoutRepo, types repo.WorkoutTypeRepo, now func() time.Time, loc *time.Location) *StatsService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{workouts: workouts, types: types, now: now, loc: loc}
}

// Stats summarizes the period around ref. Days after today do not count as
// elapsed, so a running week only reports the days seen so far.
func (s *StatsService) Stats(ctx context.Context, p domain.Period, ref time.Time) (domain.Stats, error) {
	dr, records, err := s.periodRecords(ctx, p, ref)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Stats: %w", err)
	}
	types, err := s.typeIndex(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.StatsService.Stats: %w", err)
	}

	effectiveEnd := dr.End
	if today := domain.Today(s.now(), s.loc); today.Before(effectiveEnd) {
		effectiveEnd = today
	}
	totalDays := max(0, domain.DateRange{Start: dr.Start, End: effectiveEnd}.Days())
	workoutDays := distinctDays(records)

	st := domain.Stats{
		Period:           p,
		Range:            dr,
		EffectiveEnd:     effectiveEnd,
		TotalWorkouts:    len(records),
		WorkoutDays:      workoutDays,
		TotalDays:        totalDays,
		RestDays:         totalDays - workoutDays,
		LostDays:         max(0, totalDays-workoutDays),
		MostFrequentType: mostFrequentType(records, types),
		Streak:           maxConsecutiveStreak(records),
		Percentage:       percentage(workoutDays, totalDays),
	}
	return st, nil
}

// Workouts returns the records of the period around ref, ordered by date.
func (s *StatsService) Workouts(ctx context.Context, p domain.Period, ref time.Time) ([]domain.WorkoutRecord, error) {
	_, records, err := s.periodRecords(ctx, p, ref)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.Workouts: %w", err)
	}
	return sortByDate(records), nil
}

// TypeDistribution counts the period's workouts per resolved type name, in
// the order each name first appears. Custom labels and deleted types get
// the fallback icon and color; deleted types are named "Other".
func (s *StatsService) TypeDistribution(ctx context.Context, p domain.Period, ref time.Time) ([]domain.DistributionEntry, error) {
	_, records, err := s.periodRecords(ctx, p, ref)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.TypeDistribution: %w", err)
	}
	types, err := s.typeIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.TypeDistribution: %w", err)
	}

	out := []domain.DistributionEntry{}
	index := make(map[string]int)
	for _, rec := range records {
		entry := resolveType(rec.Kind, types)
		if i, ok := index[entry.Name]; ok {
			out[i].Value++
			continue
		}
		entry.Value = 1
		index[entry.Name] = len(out)
		out = append(out, entry)
	}
	return out, nil
}

// WeekdayDistribution returns seven buckets, Monday first, counting the
// period's workouts per weekday.
func (s *StatsService) WeekdayDistribution(ctx context.Context, p domain.Period, ref time.Time) ([]domain.DistributionEntry, error) {
	_, records, err := s.periodRecords(ctx, p, ref)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.WeekdayDistribution: %w", err)
	}

	out := make([]domain.DistributionEntry, 7)
	for i, name := range weekdayNames {
		out[i].Name = name
	}
	for _, rec := range records {
		out[(int(rec.Date.Weekday())+6)%7].Value++
	}
	return out, nil
}

// MonthDistribution returns twelve buckets, January first, counting the
// workouts of ref's calendar year.
func (s *StatsService) MonthDistribution(ctx context.Context, ref time.Time) ([]domain.DistributionEntry, error) {
	_, records, err := s.periodRecords(ctx, domain.PeriodYear, ref)
	if err != nil {
		return nil, fmt.Errorf("service.StatsService.MonthDistribution: %w", err)
	}

	out := make([]domain.DistributionEntry, 12)
	for i := range out {
		out[i].Name = time.Month(i + 1).String()[:3]
	}
	for _, rec := range records {
		out[rec.Date.Month()-1].Value++
	}
	return out, nil
}

func (s *StatsService) periodRecords(ctx context.Context, p domain.Period, ref time.Time) (domain.DateRange, []domain.WorkoutRecord, error) {
	dr, err := p.Range(domain.DayIn(ref, s.loc))
	if err != nil {
		return domain.DateRange{}, nil, err
	}
	records, err := s.workouts.ListBetween(ctx, dr)
	if err != nil {
		return domain.DateRange{}, nil, err
	}
	return dr, records, nil
}

func (s *StatsService) typeIndex(ctx context.Context) (map[string]domain.WorkoutType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.WorkoutType, len(types))
	for _, wt := range types {
		index[wt.ID] = wt
	}
	return index, nil
}

// resolveType maps a kind to the name, icon and color shown for it.
func resolveType(k domain.WorkoutKind, types map[string]domain.WorkoutType) domain.DistributionEntry {
	if k.IsCustom() {
		return domain.DistributionEntry{Name: k.Label(), Icon: domain.FallbackIcon, Color: domain.FallbackColor}
	}
	if wt, ok := types[k.TypeID()]; ok {
		return domain.DistributionEntry{Name: wt.Name, Icon: wt.Icon, Color: wt.Color}
	}
	return domain.DistributionEntry{Name: domain.OtherWorkoutType, Icon: domain.FallbackIcon, Color: domain.FallbackColor}
}

// mostFrequentType returns the resolved name with the highest count.
// Ties go to the name encountered first; an empty slice yields "None".
func mostFrequentType(records []domain.WorkoutRecord, types map[string]domain.WorkoutType) string {
	if len(records) == 0 {
		return domain.NoWorkoutType
	}
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		name := resolveType(rec.Kind, types).Name
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	best := order[0]
	for _, name := range order[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return best
}

// maxConsecutiveStreak returns the longest run of records on consecutive
// calendar days. Records are expected to be one per day.
func maxConsecutiveStreak(records []domain.WorkoutRecord) int {
	if len(records) == 0 {
		return 0
	}
	sorted := sortByDate(records)
	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		if domain.DaysBetween(sorted[i-1].Date, sorted[i].Date) == 1 {
			current++
			continue
		}
		longest = max(longest, current)
		current = 1
	}
	return max(longest, current)
}

func distinctDays(records []domain.WorkoutRecord) int {
	days := make([]time.Time, 0, len(records))
	for _, rec := range records {
		days = append(days, domain.CalendarDay(rec.Date))
	}
	slices.SortFunc(days, time.Time.Compare)
	return len(slices.CompactFunc(days, time.Time.Equal))
}

// percentage is workoutDays/totalDays as a whole percent, held within [0, 100].
// Workouts logged on future days of the period cannot push it past 100.
func percentage(workoutDays, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	p := int(math.Round(float64(workoutDays) / float64(totalDays) * 100))
	return min(max(p, 0), 100)
}
