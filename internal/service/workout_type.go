package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
)

// WorkoutTypeService implements business logic for WorkoutType operations.
// Records keep pointing at a removed type; they are reported as "Other".
type WorkoutTypeService struct {
	types     repo.WorkoutTypeRepo
	protected map[string]bool
}

// NewWorkoutTypeService constructs a WorkoutTypeService. Types whose id is
// in protected can be edited but never removed.
func NewWorkoutTypeService(types repo.WorkoutTypeRepo, protected []string) *WorkoutTypeService {
	p := make(map[string]bool, len(protected))
	for _, id := range protected {
		p[id] = true
	}
	return &WorkoutTypeService{types: types, protected: p}
}

// Add validates and stores a new workout type with a generated ID.
// Blank icon and color fall back to domain.FallbackIcon and domain.FallbackColor.
func (s *WorkoutTypeService) Add(ctx context.Context, wt domain.WorkoutType) (domain.WorkoutType, error) {
	wt = normalizeType(wt)
	wt.ID = ""
	if err := validateWorkoutType(wt); err != nil {
		return domain.WorkoutType{}, err
	}
	result, err := s.types.Create(ctx, wt)
	if err != nil {
		return domain.WorkoutType{}, fmt.Errorf("service.WorkoutTypeService.Add: %w", err)
	}
	return result, nil
}

// Update validates and replaces an existing workout type.
// Returns domain.ErrNotFound if no type with that ID exists.
func (s *WorkoutTypeService) Update(ctx context.Context, wt domain.WorkoutType) (domain.WorkoutType, error) {
	wt = normalizeType(wt)
	if err := validateWorkoutType(wt); err != nil {
		return domain.WorkoutType{}, err
	}
	result, err := s.types.Update(ctx, wt)
	if err != nil {
		return domain.WorkoutType{}, fmt.Errorf("service.WorkoutTypeService.Update: %w", err)
	}
	return result, nil
}

// Remove deletes a workout type. Returns domain.ErrProtected for the
// protected defaults and domain.ErrNotFound for unknown ids.
func (s *WorkoutTypeService) Remove(ctx context.Context, id string) error {
	if s.protected[id] {
		return fmt.Errorf("service.WorkoutTypeService.Remove: %w: workout type %q is a default and cannot be deleted",
			domain.ErrProtected, id)
	}
	if err := s.types.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.WorkoutTypeService.Remove: %w", err)
	}
	return nil
}

// IsProtected reports whether the type id is a protected default.
func (s *WorkoutTypeService) IsProtected(id string) bool {
	return s.protected[id]
}

// GetByID returns a single workout type.
func (s *WorkoutTypeService) GetByID(ctx context.Context, id string) (domain.WorkoutType, error) {
	result, err := s.types.GetByID(ctx, id)
	if err != nil {
		return domain.WorkoutType{}, fmt.Errorf("service.WorkoutTypeService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all workout types in the order they were added.
// Always returns a non-nil slice.
func (s *WorkoutTypeService) List(ctx context.Context) ([]domain.WorkoutType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.WorkoutTypeService.List: %w", err)
	}
	if types == nil {
		return []domain.WorkoutType{}, nil
	}
	return types, nil
}

func normalizeType(wt domain.WorkoutType) domain.WorkoutType {
	wt.Name = strings.TrimSpace(wt.Name)
	if strings.TrimSpace(wt.Icon) == "" {
		wt.Icon = domain.FallbackIcon
	}
	if strings.TrimSpace(wt.Color) == "" {
		wt.Color = domain.FallbackColor
	}
	exercises := make([]domain.Exercise, len(wt.Exercises))
	for i, ex := range wt.Exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		ex.Reps = strings.TrimSpace(ex.Reps)
		if ex.ID == "" {
			ex.ID = uuid.NewString()
		}
		exercises[i] = ex
	}
	wt.Exercises = exercises
	return wt
}
