package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyansh/etransport-api/internal/application/dto"
	"github.com/devyansh/etransport-api/internal/application/stats"
	"github.com/devyansh/etransport-api/internal/domain"
	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

type mockStatsRepo struct {
	aggregateFn func(ctx context.Context, filter repository.ChallanFilter) (repository.ChallanAggregates, error)
	byOwnerFn   func(ctx context.Context, userID string) (repository.OwnerAggregates, error)
	countFn     func(ctx context.Context, userID string, status entity.ChallanStatus) (int, error)
}

func (m *mockStatsRepo) Aggregate(ctx context.Context, filter repository.ChallanFilter) (repository.ChallanAggregates, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, filter)
	}
	return repository.ChallanAggregates{TotalAmount: decimal.Zero}, nil
}

func (m *mockStatsRepo) AggregateByOwner(ctx context.Context, userID string) (repository.OwnerAggregates, error) {
	if m.byOwnerFn != nil {
		return m.byOwnerFn(ctx, userID)
	}
	return repository.OwnerAggregates{}, nil
}

func (m *mockStatsRepo) CountByOwnerAndStatus(ctx context.Context, userID string, status entity.ChallanStatus) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID, status)
	}
	return 0, nil
}

func TestSummary_BuildsFilterFromRequest(t *testing.T) {
	var got repository.ChallanFilter
	repo := &mockStatsRepo{
		aggregateFn: func(ctx context.Context, filter repository.ChallanFilter) (repository.ChallanAggregates, error) {
			got = filter
			return repository.ChallanAggregates{
				TotalChallans:   3,
				PendingChallans: 1,
				ActiveChallans:  2,
				TotalAmount:     decimal.NewFromInt(1500),
			}, nil
		},
	}
	uc := stats.NewStatsUseCase(repo)

	out, err := uc.Summary(context.Background(), dto.SummaryRequest{
		StartDate:     "2026-01-01",
		EndDate:       "2026-06-30",
		StateCode:     "DL",
		ChallanStatus: "active",
	})
	require.NoError(t, err)

	require.NotNil(t, got.StartDate)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), *got.EndDate)
	require.NotNil(t, got.StateCode)
	assert.Equal(t, "DL", *got.StateCode)
	require.NotNil(t, got.Status)
	assert.Equal(t, entity.StatusActive, *got.Status)
	assert.Nil(t, got.RTOID, "omitted filters impose no constraint")
	assert.Nil(t, got.Department)

	assert.Equal(t, 3, out.TotalChallans)
	assert.Equal(t, 2, out.ActiveChallans)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(1500)))
}

func TestSummary_MalformedDateRejected(t *testing.T) {
	called := false
	repo := &mockStatsRepo{
		aggregateFn: func(ctx context.Context, filter repository.ChallanFilter) (repository.ChallanAggregates, error) {
			called = true
			return repository.ChallanAggregates{}, nil
		},
	}
	uc := stats.NewStatsUseCase(repo)

	cases := []dto.SummaryRequest{
		{StartDate: "01-01-2026"},
		{StartDate: "2026/01/01"},
		{EndDate: "2026-13-40"},
		{EndDate: "yesterday"},
	}
	for _, in := range cases {
		out, err := uc.Summary(context.Background(), in)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.False(t, called, "no query runs when a filter fails validation")
}

func TestSummary_UnknownStatusFilterRejected(t *testing.T) {
	uc := stats.NewStatsUseCase(&mockStatsRepo{})

	out, err := uc.Summary(context.Background(), dto.SummaryRequest{ChallanStatus: "closed"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_EmptySubsetYieldsZeros(t *testing.T) {
	uc := stats.NewStatsUseCase(&mockStatsRepo{})

	out, err := uc.Summary(context.Background(), dto.SummaryRequest{StateCode: "ZZ"})
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalChallans)
	assert.Equal(t, 0, out.PendingChallans)
	assert.Equal(t, 0, out.DisposedChallans)
	assert.Equal(t, 0, out.ActiveChallans)
	assert.True(t, out.TotalAmount.IsZero(), "amount sum over nothing is zero, not null")
}

func TestDashboard_IncludesRevenue(t *testing.T) {
	repo := &mockStatsRepo{
		byOwnerFn: func(ctx context.Context, userID string) (repository.OwnerAggregates, error) {
			assert.Equal(t, "user-1", userID)
			return repository.OwnerAggregates{
				ChallanAggregates: repository.ChallanAggregates{
					TotalChallans:    5,
					PendingChallans:  2,
					DisposedChallans: 2,
					ActiveChallans:   1,
					TotalAmount:      decimal.NewFromInt(2500),
				},
				RevenueCollected: decimal.NewFromInt(1000),
			}, nil
		},
	}
	uc := stats.NewStatsUseCase(repo)

	out, err := uc.Dashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalChallans)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(2500)))
	assert.True(t, out.RevenueCollected.Equal(decimal.NewFromInt(1000)), "revenue covers the disposed subset only")
}

func TestCountByStatus_Passthrough(t *testing.T) {
	repo := &mockStatsRepo{
		countFn: func(ctx context.Context, userID string, status entity.ChallanStatus) (int, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, entity.StatusDisposed, status)
			return 7, nil
		},
	}
	uc := stats.NewStatsUseCase(repo)

	count, err := uc.CountByStatus(context.Background(), "user-1", entity.StatusDisposed)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
