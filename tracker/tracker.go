// Package tracker is the entry point presentation code talks to. A Tracker
// owns the in-memory workout, workout type and weight collections and
// exposes the mutations and the statistics queries over them.
// Nothing is persisted: a new Tracker starts from the default workout types.
package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/catalog"
	"github.com/pkordes/workout-tracker/internal/config"
	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/logging"
	"github.com/pkordes/workout-tracker/internal/repo"
	"github.com/pkordes/workout-tracker/internal/service"
)

type (
	WorkoutRecord     = domain.WorkoutRecord
	WorkoutKind       = domain.WorkoutKind
	WorkoutType       = domain.WorkoutType
	Exercise          = domain.Exercise
	WeightEntry       = domain.WeightEntry
	Period            = domain.Period
	Stats             = domain.Stats
	DistributionEntry = domain.DistributionEntry
)

const (
	PeriodWeek  = domain.PeriodWeek
	PeriodMonth = domain.PeriodMonth
	PeriodYear  = domain.PeriodYear
)

var (
	ErrValidation = domain.ErrValidation
	ErrProtected  = domain.ErrProtected
	ErrNotFound   = domain.ErrNotFound
	ErrConflict   = domain.ErrConflict
)

// ParsePeriod converts "week", "month" or "year" into a Period; anything
// else fails with ErrValidation.
func ParsePeriod(s string) (Period, error) { return domain.ParsePeriod(s) }

// Predefined returns a kind referencing an existing workout type.
func Predefined(typeID string) WorkoutKind { return domain.Predefined(typeID) }

// Custom returns a kind carrying a free-text label.
func Custom(label string) WorkoutKind { return domain.Custom(label) }

// Options configure a Tracker. The zero value is usable.
type Options struct {
	// Now reports the current time; nil means time.Now.
	Now func() time.Time
	// Location decides which calendar day an instant falls on, both for
	// "today" and for the dates passed in; nil means UTC.
	Location *time.Location
	// WorkoutTypesFile replaces the built-in default types when set.
	WorkoutTypesFile string
	// Logger receives mutation logs; nil discards them.
	Logger *slog.Logger
}

// Tracker is the explicit store object. It is safe for concurrent use.
type Tracker struct {
	log      *slog.Logger
	workouts *service.WorkoutService
	types    *service.WorkoutTypeService
	weights  *service.WeightService
	stats    *service.StatsService
}

// New builds a Tracker seeded with the workout type catalog.
func New(opts Options) (*Tracker, error) {
	cat, err := catalog.Load(opts.WorkoutTypesFile)
	if err != nil {
		return nil, fmt.Errorf("tracker.New: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var protected []string
	for _, wt := range cat.Types {
		if cat.IsProtected(wt.ID) {
			protected = append(protected, wt.ID)
		}
	}

	workoutRepo := repo.NewWorkoutRepo(opts.Now)
	typeRepo := repo.NewWorkoutTypeRepo(cat.Types)
	weightRepo := repo.NewWeightRepo(opts.Now)

	return &Tracker{
		log:      log,
		workouts: service.NewWorkoutService(workoutRepo, typeRepo, opts.Location),
		types:    service.NewWorkoutTypeService(typeRepo, protected),
		weights:  service.NewWeightService(weightRepo, opts.Location),
		stats:    service.NewStatsService(workoutRepo, typeRepo, opts.Now, opts.Location),
	}, nil
}

// NewFromEnv builds a Tracker from environment configuration (LOG_LEVEL,
// LOG_FORMAT, LOG_FILE, LOG_TO_STDOUT, TIMEZONE, WORKOUT_TYPES_FILE).
// The returned Closer releases the log output.
func NewFromEnv() (*Tracker, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("tracker.NewFromEnv: %w", err)
	}
	logger, closer := logging.New(cfg)

	t, err := New(Options{
		Location:         cfg.Location,
		WorkoutTypesFile: cfg.WorkoutTypesFile,
		Logger:           logger,
	})
	if err != nil {
		logger.Error("tracker setup failed", "error", err)
		_ = closer.Close()
		return nil, nil, err
	}
	logger.Info("tracker ready", "timezone", cfg.Location.String(), "workout_types_file", cfg.WorkoutTypesFile)
	return t, closer, nil
}

// logMutation writes one line per mutation: debug when it succeeded, warn
// with the error when it was rejected.
func (t *Tracker) logMutation(ctx context.Context, op string, err error, attrs ...any) {
	if err != nil {
		t.log.WarnContext(ctx, "mutation rejected", append([]any{"op", op, "error", err}, attrs...)...)
		return
	}
	t.log.DebugContext(ctx, "mutation applied", append([]any{"op", op}, attrs...)...)
}

// ---- workouts --------------------------------------------------------------

// SaveWorkout marks date as a workout day of the given kind. A day that
// already has a workout is updated rather than duplicated.
func (t *Tracker) SaveWorkout(ctx context.Context, date time.Time, kind WorkoutKind, notes string) (WorkoutRecord, error) {
	rec, err := t.workouts.Save(ctx, domain.WorkoutRecord{Date: date, Kind: kind, Notes: notes})
	t.logMutation(ctx, "save_workout", err, "date", date.Format(time.DateOnly), "type_id", kind.TypeID())
	return rec, err
}

// UpdateWorkout edits an existing workout, possibly moving it to another day.
func (t *Tracker) UpdateWorkout(ctx context.Context, rec WorkoutRecord) (WorkoutRecord, error) {
	out, err := t.workouts.Update(ctx, rec)
	t.logMutation(ctx, "update_workout", err, "id", rec.ID)
	return out, err
}

// DeleteWorkout removes a workout.
func (t *Tracker) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	err := t.workouts.Delete(ctx, id)
	t.logMutation(ctx, "delete_workout", err, "id", id)
	return err
}

// Workout returns a workout by ID, or ErrNotFound.
func (t *Tracker) Workout(ctx context.Context, id uuid.UUID) (WorkoutRecord, error) {
	return t.workouts.GetByID(ctx, id)
}

// WorkoutOn returns the workout on date's calendar day, or ErrNotFound.
func (t *Tracker) WorkoutOn(ctx context.Context, date time.Time) (WorkoutRecord, error) {
	return t.workouts.GetByDate(ctx, date)
}

// Workouts returns every workout ordered by date.
func (t *Tracker) Workouts(ctx context.Context) ([]WorkoutRecord, error) {
	return t.workouts.List(ctx)
}

// WorkoutsByPeriod returns the workouts dated within [start, end], inclusive.
func (t *Tracker) WorkoutsByPeriod(ctx context.Context, start, end time.Time) ([]WorkoutRecord, error) {
	return t.workouts.ListBetween(ctx, start, end)
}

// ---- workout types ---------------------------------------------------------

// AddWorkoutType stores a new workout type under a generated ID.
func (t *Tracker) AddWorkoutType(ctx context.Context, wt WorkoutType) (WorkoutType, error) {
	out, err := t.types.Add(ctx, wt)
	t.logMutation(ctx, "add_workout_type", err, "id", out.ID, "name", wt.Name)
	return out, err
}

// UpdateWorkoutType replaces an existing workout type.
func (t *Tracker) UpdateWorkoutType(ctx context.Context, wt WorkoutType) (WorkoutType, error) {
	out, err := t.types.Update(ctx, wt)
	t.logMutation(ctx, "update_workout_type", err, "id", wt.ID)
	return out, err
}

// RemoveWorkoutType deletes a workout type. Protected defaults fail with
// ErrProtected.
func (t *Tracker) RemoveWorkoutType(ctx context.Context, id string) error {
	err := t.types.Remove(ctx, id)
	t.logMutation(ctx, "remove_workout_type", err, "id", id)
	return err
}

// WorkoutType returns a workout type by ID, or ErrNotFound.
func (t *Tracker) WorkoutType(ctx context.Context, id string) (WorkoutType, error) {
	return t.types.GetByID(ctx, id)
}

// WorkoutTypes returns all workout types.
func (t *Tracker) WorkoutTypes(ctx context.Context) ([]WorkoutType, error) {
	return t.types.List(ctx)
}

// IsProtected reports whether a workout type id can not be deleted.
func (t *Tracker) IsProtected(id string) bool {
	return t.types.IsProtected(id)
}

// ---- statistics ------------------------------------------------------------

// Stats summarizes the period around ref.
func (t *Tracker) Stats(ctx context.Context, p Period, ref time.Time) (Stats, error) {
	return t.stats.Stats(ctx, p, ref)
}

// PeriodWorkouts returns the workouts of the period around ref, ordered by
// date.
func (t *Tracker) PeriodWorkouts(ctx context.Context, p Period, ref time.Time) ([]WorkoutRecord, error) {
	return t.stats.Workouts(ctx, p, ref)
}

// TypeDistribution counts the period's workouts per workout type.
func (t *Tracker) TypeDistribution(ctx context.Context, p Period, ref time.Time) ([]DistributionEntry, error) {
	return t.stats.TypeDistribution(ctx, p, ref)
}

// WeekdayDistribution counts the period's workouts per weekday, Monday first.
func (t *Tracker) WeekdayDistribution(ctx context.Context, p Period, ref time.Time) ([]DistributionEntry, error) {
	return t.stats.WeekdayDistribution(ctx, p, ref)
}

// MonthDistribution counts the workouts of ref's year per month.
func (t *Tracker) MonthDistribution(ctx context.Context, ref time.Time) ([]DistributionEntry, error) {
	return t.stats.MonthDistribution(ctx, ref)
}

// ---- weight ----------------------------------------------------------------

// SaveWeight logs weight for date's calendar day, replacing any entry
// already logged that day.
func (t *Tracker) SaveWeight(ctx context.Context, weight float64, date time.Time) (WeightEntry, error) {
	e, err := t.weights.Save(ctx, weight, date)
	t.logMutation(ctx, "save_weight", err, "date", date.Format(time.DateOnly), "weight", weight)
	return e, err
}

// DeleteWeight removes a weight entry.
func (t *Tracker) DeleteWeight(ctx context.Context, id uuid.UUID) error {
	err := t.weights.Delete(ctx, id)
	t.logMutation(ctx, "delete_weight", err, "id", id)
	return err
}

// Weights returns every weight entry ordered by date.
func (t *Tracker) Weights(ctx context.Context) ([]WeightEntry, error) {
	return t.weights.List(ctx)
}

// LatestWeight returns the most recent entry, or ErrNotFound.
func (t *Tracker) LatestWeight(ctx context.Context) (WeightEntry, error) {
	return t.weights.Latest(ctx)
}

// WeightSeries returns the period's entries ordered by date.
func (t *Tracker) WeightSeries(ctx context.Context, p Period, ref time.Time) ([]WeightEntry, error) {
	return t.weights.Series(ctx, p, ref)
}

// WeightChange returns latest minus oldest weight in the period, or nil
// when fewer than two entries exist there.
func (t *Tracker) WeightChange(ctx context.Context, p Period, ref time.Time) (*float64, error) {
	return t.weights.Change(ctx, p, ref)
}
