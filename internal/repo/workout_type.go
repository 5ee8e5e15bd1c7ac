package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
)

// WorkoutTypeRepo defines the storage operations for WorkoutTypes.
type WorkoutTypeRepo interface {
	// Create stores a new type. A blank ID is replaced by a generated one.
	// Returns domain.ErrConflict if the ID is already taken.
	Create(ctx context.Context, wt domain.WorkoutType) (domain.WorkoutType, error)

	// GetByID returns domain.ErrNotFound if no type with that ID exists.
	GetByID(ctx context.Context, id string) (domain.WorkoutType, error)

	// List returns all types in insertion order.
	List(ctx context.Context) ([]domain.WorkoutType, error)

	// Update replaces name, icon, color and exercises of an existing type.
	// Returns domain.ErrNotFound if no type with that ID exists.
	Update(ctx context.Context, wt domain.WorkoutType) (domain.WorkoutType, error)

	// Delete removes a type by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

type memWorkoutTypeRepo struct {
	mu    sync.RWMutex
	types []domain.WorkoutType
}

// NewWorkoutTypeRepo constructs an in-memory WorkoutTypeRepo preloaded with seed.
func NewWorkoutTypeRepo(seed []domain.WorkoutType) WorkoutTypeRepo {
	r := &memWorkoutTypeRepo{types: make([]domain.WorkoutType, 0, len(seed))}
	for _, wt := range seed {
		r.types = append(r.types, cloneType(wt))
	}
	return r
}

func (r *memWorkoutTypeRepo) Create(_ context.Context, wt domain.WorkoutType) (domain.WorkoutType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if wt.ID == "" {
		wt.ID = uuid.NewString()
	}
	if r.indexOf(wt.ID) >= 0 {
		return domain.WorkoutType{}, fmt.Errorf("repo.WorkoutTypeRepo.Create: id %q: %w", wt.ID, domain.ErrConflict)
	}
	r.types = append(r.types, cloneType(wt))
	return cloneType(wt), nil
}

func (r *memWorkoutTypeRepo) GetByID(_ context.Context, id string) (domain.WorkoutType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.WorkoutType{}, fmt.Errorf("repo.WorkoutTypeRepo.GetByID: %w", domain.ErrNotFound)
	}
	return cloneType(r.types[i]), nil
}

func (r *memWorkoutTypeRepo) List(_ context.Context) ([]domain.WorkoutType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.WorkoutType, 0, len(r.types))
	for _, wt := range r.types {
		out = append(out, cloneType(wt))
	}
	return out, nil
}

func (r *memWorkoutTypeRepo) Update(_ context.Context, wt domain.WorkoutType) (domain.WorkoutType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(wt.ID)
	if i < 0 {
		return domain.WorkoutType{}, fmt.Errorf("repo.WorkoutTypeRepo.Update: %w", domain.ErrNotFound)
	}
	r.types[i] = cloneType(wt)
	return cloneType(wt), nil
}

func (r *memWorkoutTypeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("repo.WorkoutTypeRepo.Delete: %w", domain.ErrNotFound)
	}
	r.types = append(r.types[:i], r.types[i+1:]...)
	return nil
}

func (r *memWorkoutTypeRepo) indexOf(id string) int {
	return slices.IndexFunc(r.types, func(wt domain.WorkoutType) bool { return wt.ID == id })
}

// cloneType copies the exercise slice so callers cannot mutate stored state.
func cloneType(wt domain.WorkoutType) domain.WorkoutType {
	wt.Exercises = slices.Clone(wt.Exercises)
	return wt
}
