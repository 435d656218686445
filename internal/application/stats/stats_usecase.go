// Package stats contains the read-only reporting use cases: the ad-hoc
// multi-filter summary and the per-user dashboard snapshot.
package stats

import (
	"context"
	"time"

	"github.com/devyansh/etransport-api/internal/application/dto"
	"github.com/devyansh/etransport-api/internal/domain"
	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

// dateLayout is the exact calendar-date pattern accepted by the summary
// filters. Anything else is rejected as invalid input.
const dateLayout = "2006-01-02"

// StatsUseCase computes filtered aggregates over the challan set.
//
// Data source: StatsRepository (read-only queries). The use case owns input
// validation; all arithmetic happens in the database.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// Summary applies the caller's filter set once and reports the subset's
// cardinality, per-status cardinalities and amount sum. The per-status counts
// re-apply the full filter set plus a status equality, so a caller-supplied
// challan_status leaves at most one of them non-zero. An empty subset yields
// zeros, never an error.
//
// Dates must match YYYY-MM-DD exactly; both bounds are inclusive and compare
// at midnight, so end_date excludes later times on that day.
func (uc *StatsUseCase) Summary(ctx context.Context, in dto.SummaryRequest) (*dto.SummaryResponse, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	agg, err := uc.statsRepo.Aggregate(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		TotalChallans:    agg.TotalChallans,
		PendingChallans:  agg.PendingChallans,
		DisposedChallans: agg.DisposedChallans,
		ActiveChallans:   agg.ActiveChallans,
		TotalAmount:      agg.TotalAmount,
	}, nil
}

// Dashboard reports the caller-scoped aggregates plus recognized revenue:
// the amount sum over the caller's disposed challans only.
func (uc *StatsUseCase) Dashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	agg, err := uc.statsRepo.AggregateByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalChallans:    agg.TotalChallans,
		PendingChallans:  agg.PendingChallans,
		DisposedChallans: agg.DisposedChallans,
		ActiveChallans:   agg.ActiveChallans,
		TotalAmount:      agg.TotalAmount,
		RevenueCollected: agg.RevenueCollected,
	}, nil
}

// CountByStatus returns the caller's challan count in one status.
func (uc *StatsUseCase) CountByStatus(ctx context.Context, userID string, status entity.ChallanStatus) (int, error) {
	return uc.statsRepo.CountByOwnerAndStatus(ctx, userID, status)
}

// buildFilter converts the wire filter set into the repository predicate
// struct. Empty strings impose no constraint.
func buildFilter(in dto.SummaryRequest) (repository.ChallanFilter, error) {
	var filter repository.ChallanFilter

	if in.StartDate != "" {
		t, err := time.Parse(dateLayout, in.StartDate)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.StartDate = &t
	}
	if in.EndDate != "" {
		t, err := time.Parse(dateLayout, in.EndDate)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.EndDate = &t
	}
	if in.ChallanStatus != "" {
		status, ok := entity.ParseChallanStatus(in.ChallanStatus)
		if !ok {
			return filter, domain.ErrInvalidInput
		}
		filter.Status = &status
	}
	filter.StateCode = optional(in.StateCode)
	filter.RTOID = optional(in.RTOID)
	filter.AreaID = optional(in.AreaID)
	filter.DistrictID = optional(in.DistrictID)
	filter.Department = optional(in.Department)
	filter.ChallanSource = optional(in.ChallanSource)

	return filter, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
