package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
)

// WeightService implements business logic for body-weight tracking.
type WeightService struct {
	weights repo.WeightRepo
	loc     *time.Location
}

// NewWeightService constructs a WeightService backed by the provided WeightRepo.
// Dates are bucketed into calendar days in loc; nil means UTC.
func NewWeightService(weights repo.WeightRepo, loc *time.Location) *WeightService {
	if loc == nil {
		loc = time.UTC
	}
	return &WeightService{weights: weights, loc: loc}
}

// Save logs weight for the calendar day of date. An existing entry on that
// day is overwritten instead of adding a second one.
func (s *WeightService) Save(ctx context.Context, weight float64, date time.Time) (domain.WeightEntry, error) {
	e := domain.WeightEntry{Weight: weight, Date: date}
	if err := validateWeight(e); err != nil {
		return domain.WeightEntry{}, err
	}
	e.Date = domain.DayIn(date, s.loc)

	existing, err := s.weights.GetByDate(ctx, e.Date)
	switch {
	case err == nil:
		existing.Weight = e.Weight
		result, err := s.weights.Update(ctx, existing)
		if err != nil {
			return domain.WeightEntry{}, fmt.Errorf("service.WeightService.Save: %w", err)
		}
		return result, nil
	case errors.Is(err, domain.ErrNotFound):
		result, err := s.weights.Create(ctx, e)
		if err != nil {
			return domain.WeightEntry{}, fmt.Errorf("service.WeightService.Save: %w", err)
		}
		return result, nil
	default:
		return domain.WeightEntry{}, fmt.Errorf("service.WeightService.Save: %w", err)
	}
}

// Delete removes an entry by ID.
func (s *WeightService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.weights.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.WeightService.Delete: %w", err)
	}
	return nil
}

// List returns all entries ordered by date ascending.
func (s *WeightService) List(ctx context.Context) ([]domain.WeightEntry, error) {
	entries, err := s.weights.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WeightService.List: %w", err)
	}
	return entries, nil
}

// Latest returns the most recent entry, or domain.ErrNotFound when nothing
// has been logged yet.
func (s *WeightService) Latest(ctx context.Context) (domain.WeightEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return domain.WeightEntry{}, err
	}
	if len(entries) == 0 {
		return domain.WeightEntry{}, fmt.Errorf("service.WeightService.Latest: %w", domain.ErrNotFound)
	}
	return entries[len(entries)-1], nil
}

// Series returns the entries inside the period around ref, ordered by date
// ascending, ready for a trend chart.
func (s *WeightService) Series(ctx context.Context, p domain.Period, ref time.Time) ([]domain.WeightEntry, error) {
	dr, err := p.Range(domain.DayIn(ref, s.loc))
	if err != nil {
		return nil, fmt.Errorf("service.WeightService.Series: %w", err)
	}
	entries, err := s.weights.ListBetween(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("service.WeightService.Series: %w", err)
	}
	return entries, nil
}

// Change returns latest minus oldest weight within the period around ref.
// It returns nil when the window holds fewer than two entries.
func (s *WeightService) Change(ctx context.Context, p domain.Period, ref time.Time) (*float64, error) {
	entries, err := s.Series(ctx, p, ref)
	if err != nil {
		return nil, err
	}
	if len(entries) < 2 {
		return nil, nil
	}
	diff := entries[len(entries)-1].Weight - entries[0].Weight
	return &diff, nil
}
