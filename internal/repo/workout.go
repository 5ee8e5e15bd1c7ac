package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
)

// WorkoutRepo defines the storage operations for WorkoutRecords.
// The service layer depends on this interface, not the in-memory
// implementation, which allows the service to be unit-tested with a mock.
type WorkoutRepo interface {
	// Create stores a new record and returns it with ID (when blank),
	// CreatedAt and UpdatedAt populated.
	Create(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error)

	// GetByID returns domain.ErrNotFound if no record with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutRecord, error)

	// GetByDate returns the record on the given calendar day, or
	// domain.ErrNotFound.
	GetByDate(ctx context.Context, day time.Time) (domain.WorkoutRecord, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]domain.WorkoutRecord, error)

	// ListBetween returns the records whose date lies in r, in insertion order.
	ListBetween(ctx context.Context, r domain.DateRange) ([]domain.WorkoutRecord, error)

	// Update overwrites the mutable fields of an existing record and bumps
	// UpdatedAt. Returns domain.ErrNotFound if no record with that ID exists.
	Update(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error)

	// Delete removes a record by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memWorkoutRepo keeps records in a slice so that insertion order survives;
// the aggregation core breaks ties by it.
type memWorkoutRepo struct {
	mu      sync.RWMutex
	now     func() time.Time
	records []domain.WorkoutRecord
}

// NewWorkoutRepo constructs an empty in-memory WorkoutRepo.
// now stamps CreatedAt/UpdatedAt; nil means time.Now.
func NewWorkoutRepo(now func() time.Time) WorkoutRepo {
	return &memWorkoutRepo{now: clock(now)}
}

func (r *memWorkoutRepo) Create(_ context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if r.indexOf(rec.ID) >= 0 {
		return domain.WorkoutRecord{}, fmt.Errorf("repo.WorkoutRepo.Create: id %s: %w", rec.ID, domain.ErrConflict)
	}
	ts := r.now()
	rec.CreatedAt, rec.UpdatedAt = ts, ts
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *memWorkoutRepo) GetByID(_ context.Context, id uuid.UUID) (domain.WorkoutRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.WorkoutRecord{}, fmt.Errorf("repo.WorkoutRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.records[i], nil
}

func (r *memWorkoutRepo) GetByDate(_ context.Context, day time.Time) (domain.WorkoutRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if domain.SameDay(rec.Date, day) {
			return rec, nil
		}
	}
	return domain.WorkoutRecord{}, fmt.Errorf("repo.WorkoutRepo.GetByDate: %w", domain.ErrNotFound)
}

func (r *memWorkoutRepo) List(_ context.Context) ([]domain.WorkoutRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.WorkoutRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memWorkoutRepo) ListBetween(_ context.Context, dr domain.DateRange) ([]domain.WorkoutRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.WorkoutRecord{}
	for _, rec := range r.records {
		if dr.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memWorkoutRepo) Update(_ context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(rec.ID)
	if i < 0 {
		return domain.WorkoutRecord{}, fmt.Errorf("repo.WorkoutRepo.Update: %w", domain.ErrNotFound)
	}
	stored := r.records[i]
	stored.Date = rec.Date
	stored.Kind = rec.Kind
	stored.Notes = rec.Notes
	stored.UpdatedAt = r.now()
	r.records[i] = stored
	return stored, nil
}

func (r *memWorkoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("repo.WorkoutRepo.Delete: %w", domain.ErrNotFound)
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (r *memWorkoutRepo) indexOf(id uuid.UUID) int {
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
