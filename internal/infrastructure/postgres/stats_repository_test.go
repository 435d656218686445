package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

func TestBuildWhere_EmptyFilter(t *testing.T) {
	where, args := buildWhere(repository.ChallanFilter{})
	assert.Empty(t, where, "no predicates means no WHERE clause")
	assert.Nil(t, args)
}

func TestBuildWhere_AllPredicates(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	state := "DL"
	rto := "DL-01"
	area := "A-12"
	district := "ND-3"
	department := "Traffic Police"
	source := "camera"
	status := entity.StatusDisposed

	where, args := buildWhere(repository.ChallanFilter{
		StartDate:     &start,
		EndDate:       &end,
		StateCode:     &state,
		RTOID:         &rto,
		AreaID:        &area,
		DistrictID:    &district,
		Department:    &department,
		ChallanSource: &source,
		Status:        &status,
	})

	assert.Equal(t, "\n\tWHERE issue_date >= $1 AND issue_date <= $2"+
		" AND state_code = $3 AND rto_id = $4 AND area_id = $5 AND district_id = $6"+
		" AND department = $7 AND challan_source = $8 AND status = $9", where)
	assert.Equal(t, []any{start, end, state, rto, area, district, department, source, "disposed"}, args)
}

func TestBuildWhere_DateBoundsInclusive(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	where, args := buildWhere(repository.ChallanFilter{StartDate: &start, EndDate: &end})

	assert.Contains(t, where, "issue_date >= $1", "lower bound keeps challans issued on the start date")
	assert.Contains(t, where, "issue_date <= $2", "upper bound compares at midnight of the end date")
	assert.Equal(t, []any{start, end}, args)
}

func TestBuildWhere_SparseFilterRenumbersPlaceholders(t *testing.T) {
	district := "ND-3"
	status := entity.StatusPending

	where, args := buildWhere(repository.ChallanFilter{DistrictID: &district, Status: &status})

	assert.Equal(t, "\n\tWHERE district_id = $1 AND status = $2", where)
	require.Len(t, args, 2)
	assert.Equal(t, "ND-3", args[0])
	assert.Equal(t, "pending", args[1], "placeholder numbering follows the args slice, not the field position")
}
