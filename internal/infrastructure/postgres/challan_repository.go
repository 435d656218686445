package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devyansh/etransport-api/internal/domain"
	"github.com/devyansh/etransport-api/internal/domain/entity"
	"github.com/devyansh/etransport-api/internal/domain/repository"
)

var _ repository.ChallanRepository = (*ChallanRepo)(nil)

const challanColumns = `
	id, challan_number, vehicle_number, driver_name, amount, status,
	challan_source, department, state_code, rto_id, area_id, district_id,
	issue_date, disposal_date, user_id`

// ChallanRepo implements the ChallanRepository port over PostgreSQL.
type ChallanRepo struct {
	pool *pgxpool.Pool
}

// NewChallanRepository builds the challan persistence adapter.
func NewChallanRepository(pool *pgxpool.Pool) *ChallanRepo {
	return &ChallanRepo{pool: pool}
}

// Create persists a new challan. A challan_number collision surfaces as
// domain.ErrDuplicate.
func (r *ChallanRepo) Create(ch *entity.Challan) error {
	query := `
		INSERT INTO challans (` + challanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(context.Background(), query,
		ch.ID, ch.ChallanNumber, ch.VehicleNumber, ch.DriverName, ch.Amount, string(ch.Status),
		ch.ChallanSource, ch.Department, ch.StateCode, ch.RTOID, ch.AreaID, ch.DistrictID,
		ch.IssueDate, ch.DisposalDate, ch.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert challan: %w", err)
	}
	return nil
}

// GetByID fetches a challan by id; (nil, nil) when absent.
func (r *ChallanRepo) GetByID(id string) (*entity.Challan, error) {
	query := `SELECT ` + challanColumns + ` FROM challans WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	ch, err := scanChallan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get challan by id: %w", err)
	}
	return ch, nil
}

// Update rewrites the mutable columns of a challan. The issue date, challan
// number and owner never change after creation and are not part of the SET.
func (r *ChallanRepo) Update(ch *entity.Challan) error {
	query := `
		UPDATE challans
		SET vehicle_number = $2, driver_name = $3, amount = $4, status = $5,
		    challan_source = $6, department = $7, state_code = $8, rto_id = $9,
		    area_id = $10, district_id = $11, disposal_date = $12
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		ch.ID, ch.VehicleNumber, ch.DriverName, ch.Amount, string(ch.Status),
		ch.ChallanSource, ch.Department, ch.StateCode, ch.RTOID,
		ch.AreaID, ch.DistrictID, ch.DisposalDate,
	)
	if err != nil {
		return fmt.Errorf("update challan: %w", err)
	}
	return nil
}

// Delete removes a challan permanently.
func (r *ChallanRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM challans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete challan: %w", err)
	}
	return nil
}

// List returns challans in issue order with offset/limit pagination. An empty
// userID lists across all owners.
func (r *ChallanRepo) List(userID string, limit, offset int) ([]*entity.Challan, error) {
	query := `SELECT ` + challanColumns + ` FROM challans`
	args := []any{}
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += fmt.Sprintf(` ORDER BY issue_date, id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list challans: %w", err)
	}
	defer rows.Close()

	var list []*entity.Challan
	for rows.Next() {
		ch, err := scanChallan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challan: %w", err)
		}
		list = append(list, ch)
	}
	return list, rows.Err()
}

// scanChallan reads one challan row from a pgx row or rows cursor.
func scanChallan(row pgx.Row) (*entity.Challan, error) {
	var ch entity.Challan
	var status string
	err := row.Scan(
		&ch.ID, &ch.ChallanNumber, &ch.VehicleNumber, &ch.DriverName, &ch.Amount, &status,
		&ch.ChallanSource, &ch.Department, &ch.StateCode, &ch.RTOID, &ch.AreaID, &ch.DistrictID,
		&ch.IssueDate, &ch.DisposalDate, &ch.UserID,
	)
	if err != nil {
		return nil, err
	}
	ch.Status = entity.ChallanStatus(status)
	return &ch, nil
}
