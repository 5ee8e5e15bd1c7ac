// Package service contains the business logic of the workout tracker.
// Services validate inputs, enforce the one-workout-per-day rule, protect
// default workout types and compute statistics. They depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
)

// WorkoutService implements business logic for WorkoutRecord operations.
// It holds the types repo because a predefined kind must reference an
// existing workout type.
type WorkoutService struct {
	workouts repo.WorkoutRepo
	types    repo.WorkoutTypeRepo
	loc      *time.Location
}

// NewWorkoutService constructs a WorkoutService backed by the provided repos.
// Dates are bucketed into calendar days in loc; nil means UTC.
func NewWorkoutService(workouts repo.WorkoutRepo, types repo.WorkoutTypeRepo, loc *time.Location) *WorkoutService {
	if loc == nil {
		loc = time.UTC
	}
	return &WorkoutService{workouts: workouts, types: types, loc: loc}
}

// Save records a workout on rec.Date. If the day already holds a workout
// that record is updated in place (keeping its ID) instead of adding a
// second one. Returns domain.ErrValidation for invalid input.
func (s *WorkoutService) Save(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	rec = s.normalizeRecord(rec)
	if err := s.check(ctx, rec); err != nil {
		return domain.WorkoutRecord{}, err
	}

	existing, err := s.workouts.GetByDate(ctx, rec.Date)
	switch {
	case err == nil:
		rec.ID = existing.ID
		result, err := s.workouts.Update(ctx, rec)
		if err != nil {
			return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Save: %w", err)
		}
		return result, nil
	case errors.Is(err, domain.ErrNotFound):
		rec.ID = uuid.Nil
		result, err := s.workouts.Create(ctx, rec)
		if err != nil {
			return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Save: %w", err)
		}
		return result, nil
	default:
		return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Save: %w", err)
	}
}

// Update edits an existing record, which may also move it to another day.
// Returns domain.ErrNotFound if the record does not exist and
// domain.ErrConflict if the target day already holds a different record.
func (s *WorkoutService) Update(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	current, err := s.workouts.GetByID(ctx, rec.ID)
	if err != nil {
		return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Update: %w", err)
	}
	// A record read back from the store already carries its day; only a
	// new date is bucketed in s.loc.
	unmoved := rec.Date.Equal(current.Date)
	rec = s.normalizeRecord(rec)
	if unmoved {
		rec.Date = current.Date
	}
	if err := s.check(ctx, rec); err != nil {
		return domain.WorkoutRecord{}, err
	}
	if !current.Date.Equal(rec.Date) {
		other, err := s.workouts.GetByDate(ctx, rec.Date)
		switch {
		case err == nil && other.ID != rec.ID:
			return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Update: %w: a workout already exists on %s",
				domain.ErrConflict, rec.Date.Format(time.DateOnly))
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Update: %w", err)
		}
	}

	result, err := s.workouts.Update(ctx, rec)
	if err != nil {
		return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a record by ID.
func (s *WorkoutService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.workouts.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.WorkoutService.Delete: %w", err)
	}
	return nil
}

// GetByID returns a single record by ID.
func (s *WorkoutService) GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutRecord, error) {
	result, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.GetByID: %w", err)
	}
	return result, nil
}

// GetByDate returns the record on the calendar day of date.
// Returns domain.ErrNotFound when it was not a workout day.
func (s *WorkoutService) GetByDate(ctx context.Context, date time.Time) (domain.WorkoutRecord, error) {
	result, err := s.workouts.GetByDate(ctx, domain.DayIn(date, s.loc))
	if err != nil {
		return domain.WorkoutRecord{}, fmt.Errorf("service.WorkoutService.GetByDate: %w", err)
	}
	return result, nil
}

// List returns every record ordered by date ascending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *WorkoutService) List(ctx context.Context) ([]domain.WorkoutRecord, error) {
	records, err := s.workouts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WorkoutService.List: %w", err)
	}
	return sortByDate(records), nil
}

// ListBetween returns the records dated within [start, end], both calendar
// days included, ordered by date ascending.
func (s *WorkoutService) ListBetween(ctx context.Context, start, end time.Time) ([]domain.WorkoutRecord, error) {
	dr := domain.DateRange{Start: domain.DayIn(start, s.loc), End: domain.DayIn(end, s.loc)}
	records, err := s.workouts.ListBetween(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("service.WorkoutService.ListBetween: %w", err)
	}
	return sortByDate(records), nil
}

// check validates rec and, for predefined kinds, that the type exists.
func (s *WorkoutService) check(ctx context.Context, rec domain.WorkoutRecord) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	if rec.Kind.IsCustom() {
		return nil
	}
	if _, err := s.types.GetByID(ctx, rec.Kind.TypeID()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invalid("unknown workout type %q", rec.Kind.TypeID())
		}
		return fmt.Errorf("service.WorkoutService: look up type: %w", err)
	}
	return nil
}

// normalizeRecord truncates the date to its calendar day in s.loc and trims
// a custom label.
func (s *WorkoutService) normalizeRecord(rec domain.WorkoutRecord) domain.WorkoutRecord {
	if !rec.Date.IsZero() {
		rec.Date = domain.DayIn(rec.Date, s.loc)
	}
	if rec.Kind.IsCustom() {
		rec.Kind = domain.Custom(strings.TrimSpace(rec.Kind.Label()))
	}
	return rec
}

// sortByDate returns a date-ascending copy; never nil.
func sortByDate(records []domain.WorkoutRecord) []domain.WorkoutRecord {
	out := make([]domain.WorkoutRecord, len(records))
	copy(out, records)
	slices.SortStableFunc(out, func(a, b domain.WorkoutRecord) int {
		return a.Date.Compare(b.Date)
	})
	return out
}
