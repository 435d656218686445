package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devyansh/etransport-api/internal/domain/entity"
)

// ChallanFilter is the conjunction of optional predicates applied to the
// challan set before aggregating. Nil fields impose no constraint; every
// non-nil field narrows the subset (logical AND).
//
// StartDate/EndDate bound issue_date inclusively. Date-only bounds compare at
// midnight, so EndDate excludes any time of day after 00:00:00 on that date.
type ChallanFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	StateCode     *string
	RTOID         *string
	AreaID        *string
	DistrictID    *string
	Department    *string
	ChallanSource *string
	Status        *entity.ChallanStatus
}

// ChallanAggregates holds the counts and amount sum over a filtered subset.
// The per-status counts apply the full filter set plus a status equality, so a
// filter that already fixes the status leaves at most one of them non-zero.
type ChallanAggregates struct {
	TotalChallans    int
	PendingChallans  int
	DisposedChallans int
	ActiveChallans   int
	TotalAmount      decimal.Decimal
}

// OwnerAggregates extends ChallanAggregates with the revenue recognized for an
// owner: the amount sum over the disposed subset only.
type OwnerAggregates struct {
	ChallanAggregates
	RevenueCollected decimal.Decimal
}

// StatsRepository defines the read-only aggregate queries behind reports.
// Implementations never modify data; empty subsets yield zero values.
type StatsRepository interface {
	// Aggregate computes the summary aggregates over the filtered challan set.
	Aggregate(ctx context.Context, filter ChallanFilter) (ChallanAggregates, error)

	// AggregateByOwner computes the dashboard aggregates for one owner,
	// including recognized revenue.
	AggregateByOwner(ctx context.Context, userID string) (OwnerAggregates, error)

	// CountByOwnerAndStatus counts one owner's challans in a given status.
	CountByOwnerAndStatus(ctx context.Context, userID string, status entity.ChallanStatus) (int, error)
}
