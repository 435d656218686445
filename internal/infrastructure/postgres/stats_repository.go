package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only aggregate queries over the challans table.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the reporting adapter.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Aggregate computes the summary aggregates in one pass. The FILTER clauses
// re-apply a status equality on top of the caller's full filter set, so the
// per-status counts behave exactly like re-running the filtered query with an
// extra status predicate — including the degenerate case where the caller
// already fixed the status.
func (r *StatsRepo) Aggregate(ctx context.Context, filter repository.ChallanFilter) (repository.ChallanAggregates, error) {
	where, args := buildWhere(filter)
	query := `
	SELECT
	    COUNT(*)                                        AS total_challans,
	    COUNT(*) FILTER (WHERE status = 'pending')      AS pending_challans,
	    COUNT(*) FILTER (WHERE status = 'disposed')     AS disposed_challans,
	    COUNT(*) FILTER (WHERE status = 'active')       AS active_challans,
	    COALESCE(SUM(amount), 0)                        AS total_amount
	FROM challans` + where

	var agg repository.ChallanAggregates
	var total, pending, disposed, active int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&total, &pending, &disposed, &active, &agg.TotalAmount,
	)
	if err != nil {
		return repository.ChallanAggregates{}, fmt.Errorf("stats.Aggregate: %w", err)
	}
	agg.TotalChallans = int(total)
	agg.PendingChallans = int(pending)
	agg.DisposedChallans = int(disposed)
	agg.ActiveChallans = int(active)
	return agg, nil
}

// AggregateByOwner computes the dashboard aggregates for one owner. Revenue is
// recognized only from disposed challans; COALESCE keeps empty sets at zero.
func (r *StatsRepo) AggregateByOwner(ctx context.Context, userID string) (repository.OwnerAggregates, error) {
	const query = `
	SELECT
	    COUNT(*)                                                      AS total_challans,
	    COUNT(*) FILTER (WHERE status = 'pending')                    AS pending_challans,
	    COUNT(*) FILTER (WHERE status = 'disposed')                   AS disposed_challans,
	    COUNT(*) FILTER (WHERE status = 'active')                     AS active_challans,
	    COALESCE(SUM(amount), 0)                                      AS total_amount,
	    COALESCE(SUM(amount) FILTER (WHERE status = 'disposed'), 0)   AS revenue_collected
	FROM challans
	WHERE user_id = $1`

	var agg repository.OwnerAggregates
	var total, pending, disposed, active int64
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&total, &pending, &disposed, &active, &agg.TotalAmount, &agg.RevenueCollected,
	)
	if err != nil {
		return repository.OwnerAggregates{}, fmt.Errorf("stats.AggregateByOwner: %w", err)
	}
	agg.TotalChallans = int(total)
	agg.PendingChallans = int(pending)
	agg.DisposedChallans = int(disposed)
	agg.ActiveChallans = int(active)
	return agg, nil
}

// CountByOwnerAndStatus counts one owner's challans in a given status.
func (r *StatsRepo) CountByOwnerAndStatus(ctx context.Context, userID string, status entity.ChallanStatus) (int, error) {
	const query = `SELECT COUNT(*) FROM challans WHERE user_id = $1 AND status = $2`
	var count int64
	err := r.pool.QueryRow(ctx, query, userID, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("stats.CountByOwnerAndStatus: %w", err)
	}
	return int(count), nil
}

// buildWhere assembles the conjunctive WHERE clause for a filter set. Absent
// predicates contribute nothing; both date bounds are inclusive.
func buildWhere(filter repository.ChallanFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.StartDate != nil {
		add("issue_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("issue_date <= $%d", *filter.EndDate)
	}
	if filter.StateCode != nil {
		add("state_code = $%d", *filter.StateCode)
	}
	if filter.RTOID != nil {
		add("rto_id = $%d", *filter.RTOID)
	}
	if filter.AreaID != nil {
		add("area_id = $%d", *filter.AreaID)
	}
	if filter.DistrictID != nil {
		add("district_id = $%d", *filter.DistrictID)
	}
	if filter.Department != nil {
		add("department = $%d", *filter.Department)
	}
	if filter.ChallanSource != nil {
		add("challan_source = $%d", *filter.ChallanSource)
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "\n\tWHERE " + strings.Join(conds, " AND "), args
}
