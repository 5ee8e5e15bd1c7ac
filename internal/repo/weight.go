package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
)

// WeightRepo defines the storage operations for WeightEntries.
type WeightRepo interface {
	// Create stores a new entry with ID (when blank) and CreatedAt populated.
	Create(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error)

	// GetByDate returns the entry on the given calendar day, or domain.ErrNotFound.
	GetByDate(ctx context.Context, day time.Time) (domain.WeightEntry, error)

	// List returns all entries ordered by date ascending.
	List(ctx context.Context) ([]domain.WeightEntry, error)

	// ListBetween returns the entries whose date lies in r, ordered by date ascending.
	ListBetween(ctx context.Context, r domain.DateRange) ([]domain.WeightEntry, error)

	// Update overwrites weight and date of an existing entry.
	// Returns domain.ErrNotFound if no entry with that ID exists.
	Update(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error)

	// Delete removes an entry by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type memWeightRepo struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries []domain.WeightEntry
}

// NewWeightRepo constructs an empty in-memory WeightRepo.
// now stamps CreatedAt; nil means time.Now.
func NewWeightRepo(now func() time.Time) WeightRepo {
	return &memWeightRepo{now: clock(now)}
}

func (r *memWeightRepo) Create(_ context.Context, e domain.WeightEntry) (domain.WeightEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if r.indexOf(e.ID) >= 0 {
		return domain.WeightEntry{}, fmt.Errorf("repo.WeightRepo.Create: id %s: %w", e.ID, domain.ErrConflict)
	}
	e.CreatedAt = r.now()
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *memWeightRepo) GetByDate(_ context.Context, day time.Time) (domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if domain.SameDay(e.Date, day) {
			return e, nil
		}
	}
	return domain.WeightEntry{}, fmt.Errorf("repo.WeightRepo.GetByDate: %w", domain.ErrNotFound)
}

func (r *memWeightRepo) List(_ context.Context) ([]domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedByDate(r.entries), nil
}

func (r *memWeightRepo) ListBetween(_ context.Context, dr domain.DateRange) ([]domain.WeightEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var in []domain.WeightEntry
	for _, e := range r.entries {
		if dr.Contains(e.Date) {
			in = append(in, e)
		}
	}
	return sortedByDate(in), nil
}

func (r *memWeightRepo) Update(_ context.Context, e domain.WeightEntry) (domain.WeightEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(e.ID)
	if i < 0 {
		return domain.WeightEntry{}, fmt.Errorf("repo.WeightRepo.Update: %w", domain.ErrNotFound)
	}
	r.entries[i].Weight = e.Weight
	r.entries[i].Date = e.Date
	return r.entries[i], nil
}

func (r *memWeightRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("repo.WeightRepo.Delete: %w", domain.ErrNotFound)
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return nil
}

func (r *memWeightRepo) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.entries, func(e domain.WeightEntry) bool { return e.ID == id })
}

// sortedByDate returns a date-ascending copy; never nil.
func sortedByDate(entries []domain.WeightEntry) []domain.WeightEntry {
	out := make([]domain.WeightEntry, len(entries))
	copy(out, entries)
	slices.SortStableFunc(out, func(a, b domain.WeightEntry) int {
		return a.Date.Compare(b.Date)
	})
	return out
}
