package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateChallanRequest input for issuing a challan. All fields are required and
// copied verbatim; the owner comes from the authenticated caller, never the body.
// Amount is a pointer so an absent field is distinguishable from a zero fine.
type CreateChallanRequest struct {
	ChallanNumber string           `json:"challan_number" validate:"required"`
	VehicleNumber string           `json:"vehicle_number" validate:"required"`
	DriverName    string           `json:"driver_name" validate:"required"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	ChallanSource string          `json:"challan_source" validate:"required"`
	Department    string          `json:"department" validate:"required"`
	StateCode     string          `json:"state_code" validate:"required"`
	RTOID         string          `json:"rto_id" validate:"required"`
	AreaID        string          `json:"area_id" validate:"required"`
	DistrictID    string          `json:"district_id" validate:"required"`
}

// UpdateChallanRequest partial update: only non-nil fields are applied.
// Each mutable field is an explicit optional; there is no catch-all merge.
type UpdateChallanRequest struct {
	Status *string          `json:"status"`
	Amount *decimal.Decimal `json:"amount"`
}

// ChallanResponse challan output shape.
type ChallanResponse struct {
	ID            string          `json:"id"`
	ChallanNumber string          `json:"challan_number"`
	VehicleNumber string          `json:"vehicle_number"`
	DriverName    string          `json:"driver_name"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	ChallanSource string          `json:"challan_source"`
	Department    string          `json:"department"`
	StateCode     string          `json:"state_code"`
	RTOID         string          `json:"rto_id"`
	AreaID        string          `json:"area_id"`
	DistrictID    string          `json:"district_id"`
	IssueDate     time.Time       `json:"issue_date"`
	DisposalDate  *time.Time      `json:"disposal_date,omitempty"`
	UserID        string          `json:"user_id"`
}
