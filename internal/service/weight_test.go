package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/workout-tracker/internal/domain"
	"github.com/pkordes/workout-tracker/internal/repo"
	"github.com/pkordes/workout-tracker/internal/service"
)

func newWeightService() *service.WeightService {
	return service.NewWeightService(repo.NewWeightRepo(func() time.Time { return today }), time.UTC)
}

func TestWeightService_Save_UpsertsByDay(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()

	first, err := svc.Save(ctx, 82.4, time.Date(2025, 10, 1, 7, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := svc.Save(ctx, 81.9, time.Date(2025, 10, 1, 21, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.InDelta(t, 81.9, all[0].Weight, 1e-9)
	assert.Equal(t, day(2025, 10, 1), all[0].Date)
}

func TestWeightService_Save_Invalid(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()

	for _, w := range []float64{0, -70, math.NaN(), math.Inf(1)} {
		_, err := svc.Save(ctx, w, day(2025, 10, 1))
		assert.ErrorIs(t, err, domain.ErrValidation, "weight %v", w)
	}

	_, err := svc.Save(ctx, 80, time.Time{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWeightService_Save_RepoError(t *testing.T) {
	repoErr := errors.New("store exploded")
	svc := service.NewWeightService(&mockWeightRepo{
		getByDate: func(_ context.Context, _ time.Time) (domain.WeightEntry, error) {
			return domain.WeightEntry{}, repoErr
		},
	}, time.UTC)

	_, err := svc.Save(context.Background(), 80, day(2025, 10, 1))

	assert.ErrorIs(t, err, repoErr)
}

func TestWeightService_Change(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()
	// Logged out of order on purpose: change is by date, not insertion.
	_, err := svc.Save(ctx, 80.1, day(2025, 10, 20))
	require.NoError(t, err)
	_, err = svc.Save(ctx, 82.5, day(2025, 10, 2))
	require.NoError(t, err)
	_, err = svc.Save(ctx, 81.0, day(2025, 10, 11))
	require.NoError(t, err)
	_, err = svc.Save(ctx, 90.0, day(2025, 9, 30)) // outside the month
	require.NoError(t, err)

	got, err := svc.Change(ctx, domain.PeriodMonth, day(2025, 10, 15))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, -2.4, *got, 1e-9)
}

func TestWeightService_Change_NotRounded(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()
	_, err := svc.Save(ctx, 80.0, day(2025, 10, 13))
	require.NoError(t, err)
	_, err = svc.Save(ctx, 80.125, day(2025, 10, 14))
	require.NoError(t, err)

	got, err := svc.Change(ctx, domain.PeriodWeek, day(2025, 10, 15))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 0.125, *got, 1e-9)
}

func TestWeightService_Save_UsesServiceZone(t *testing.T) {
	svc := service.NewWeightService(repo.NewWeightRepo(func() time.Time { return today }), time.FixedZone("JST", 9*60*60))
	ctx := context.Background()
	// 23:30 UTC on the 15th is the 16th in Tokyo.
	late := time.Date(2025, 10, 15, 23, 30, 0, 0, time.UTC)

	got, err := svc.Save(ctx, 80, late)

	require.NoError(t, err)
	assert.Equal(t, day(2025, 10, 16), got.Date)
}

func TestWeightService_Change_FewerThanTwoEntries(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()

	got, err := svc.Change(ctx, domain.PeriodWeek, day(2025, 10, 15))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.Save(ctx, 80, day(2025, 10, 14))
	require.NoError(t, err)

	got, err = svc.Change(ctx, domain.PeriodWeek, day(2025, 10, 15))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeightService_Series(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()
	for d, w := range map[int]float64{13: 81, 19: 80.5, 20: 80.2} {
		_, err := svc.Save(ctx, w, day(2025, 10, d))
		require.NoError(t, err)
	}

	got, err := svc.Series(ctx, domain.PeriodWeek, day(2025, 10, 15))

	require.NoError(t, err)
	require.Len(t, got, 2) // the 20th is the following Monday
	assert.Equal(t, day(2025, 10, 13), got[0].Date)
	assert.Equal(t, day(2025, 10, 19), got[1].Date)
}

func TestWeightService_Latest(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()

	_, err := svc.Latest(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Save(ctx, 81, day(2025, 10, 13))
	require.NoError(t, err)
	_, err = svc.Save(ctx, 79, day(2025, 9, 1))
	require.NoError(t, err)

	got, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 81.0, got.Weight, 1e-9)
}

func TestWeightService_Delete(t *testing.T) {
	svc := newWeightService()
	ctx := context.Background()
	e, err := svc.Save(ctx, 81, day(2025, 10, 13))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e.ID))
	assert.ErrorIs(t, svc.Delete(ctx, e.ID), domain.ErrNotFound)
}
