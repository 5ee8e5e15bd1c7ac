package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
)

// mockWorkoutRepo is a hand-written test double for repo.WorkoutRepo.
// Each method is a function field; set only the ones your test needs.
type mockWorkoutRepo struct {
	create      func(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.WorkoutRecord, error)
	getByDate   func(ctx context.Context, day time.Time) (domain.WorkoutRecord, error)
	list        func(ctx context.Context) ([]domain.WorkoutRecord, error)
	listBetween func(ctx context.Context, r domain.DateRange) ([]domain.WorkoutRecord, error)
	update      func(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockWorkoutRepo) Create(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	return m.create(ctx, rec)
}
func (m *mockWorkoutRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.WorkoutRecord, error) {
	return m.getByID(ctx, id)
}
func (m *mockWorkoutRepo) GetByDate(ctx context.Context, day time.Time) (domain.WorkoutRecord, error) {
	return m.getByDate(ctx, day)
}
func (m *mockWorkoutRepo) List(ctx context.Context) ([]domain.WorkoutRecord, error) {
	return m.list(ctx)
}
func (m *mockWorkoutRepo) ListBetween(ctx context.Context, r domain.DateRange) ([]domain.WorkoutRecord, error) {
	return m.listBetween(ctx, r)
}
func (m *mockWorkoutRepo) Update(ctx context.Context, rec domain.WorkoutRecord) (domain.WorkoutRecord, error) {
	return m.update(ctx, rec)
}
func (m *mockWorkoutRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockWorkoutRepo must satisfy repo.WorkoutRepo.
var _ repo.WorkoutRepo = (*mockWorkoutRepo)(nil)

// mockWeightRepo is a hand-written test double for repo.WeightRepo.
type mockWeightRepo struct {
	create      func(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error)
	getByDate   func(ctx context.Context, day time.Time) (domain.WeightEntry, error)
	list        func(ctx context.Context) ([]domain.WeightEntry, error)
	listBetween func(ctx context.Context, r domain.DateRange) ([]domain.WeightEntry, error)
	update      func(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockWeightRepo) Create(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error) {
	return m.create(ctx, e)
}
func (m *mockWeightRepo) GetByDate(ctx context.Context, day time.Time) (domain.WeightEntry, error) {
	return m.getByDate(ctx, day)
}
func (m *mockWeightRepo) List(ctx context.Context) ([]domain.WeightEntry, error) {
	return m.list(ctx)
}
func (m *mockWeightRepo) ListBetween(ctx context.Context, r domain.DateRange) ([]domain.WeightEntry, error) {
	return m.listBetween(ctx, r)
}
func (m *mockWeightRepo) Update(ctx context.Context, e domain.WeightEntry) (domain.WeightEntry, error) {
	return m.update(ctx, e)
}
func (m *mockWeightRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.WeightRepo = (*mockWeightRepo)(nil)

// ---- shared fixtures -------------------------------------------------------

// today is the fixed "now" used by every stats test: Wednesday 2025-10-15.
var today = time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func defaultTypes() []domain.WorkoutType {
	return []domain.WorkoutType{
		{ID: "1", Name: "Push", Icon: "💪", Color: "hsl(4, 78%, 57%)"},
		{ID: "2", Name: "Pull", Icon: "🏋️", Color: "hsl(210, 79%, 54%)"},
		{ID: "3", Name: "Legs", Icon: "🦵", Color: "hsl(145, 63%, 42%)"},
		{ID: "5", Name: "Yoga", Icon: "🧘", Color: "hsl(270, 60%, 60%)"},
	}
}
