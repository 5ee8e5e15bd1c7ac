package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
)

func seedTypes() []domain.WorkoutType {
	return []domain.WorkoutType{
		{ID: "1", Name: "Push", Icon: "💪", Exercises: []domain.Exercise{{ID: "1-1", Name: "Bench Press", Sets: 4, Reps: "6-8"}}},
		{ID: "2", Name: "Pull", Icon: "🏋️"},
	}
}

func TestWorkoutTypeRepo_SeedAndList(t *testing.T) {
	r := repo.NewWorkoutTypeRepo(seedTypes())

	got, err := r.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Push", got[0].Name)
	assert.Equal(t, "Pull", got[1].Name)
}

func TestWorkoutTypeRepo_Create_GeneratesID(t *testing.T) {
	r := repo.NewWorkoutTypeRepo(nil)

	got, err := r.Create(context.Background(), domain.WorkoutType{Name: "Swim"})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestWorkoutTypeRepo_Create_Conflict(t *testing.T) {
	r := repo.NewWorkoutTypeRepo(seedTypes())

	_, err := r.Create(context.Background(), domain.WorkoutType{ID: "1", Name: "Other Push"})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWorkoutTypeRepo_ReturnedExercisesAreCopies(t *testing.T) {
	r := repo.NewWorkoutTypeRepo(seedTypes())
	ctx := context.Background()

	got, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	got.Exercises[0].Name = "mutated"

	again, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", again.Exercises[0].Name)
}

func TestWorkoutTypeRepo_Update(t *testing.T) {
	r := repo.NewWorkoutTypeRepo(seedTypes())
	ctx := context.Background()

	_, err := r.Update(ctx, domain.WorkoutType{ID: "2", Name: "Back Day", Icon: "🚣"})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Back Day", got.Name)

	_, err = r.Update(ctx, domain.WorkoutType{ID: "nope", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkoutTypeRepo_Delete(t *testing.T) {
	r := repo.NewWorkoutTypeRepo(seedTypes())
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "2"))

	_, err := r.GetByID(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "2"), domain.ErrNotFound)
}
