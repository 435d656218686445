package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChallanStatus is the closed set of lifecycle states for a challan.
type ChallanStatus string

const (
	StatusPending  ChallanStatus = "pending"
	StatusActive   ChallanStatus = "active"
	StatusDisposed ChallanStatus = "disposed"
)

// ParseChallanStatus validates a raw status string against the closed set.
// Unknown values are rejected instead of being stored verbatim.
func ParseChallanStatus(s string) (ChallanStatus, bool) {
	switch ChallanStatus(s) {
	case StatusPending, StatusActive, StatusDisposed:
		return ChallanStatus(s), true
	}
	return "", false
}

// Challan is a traffic-violation notice. Each challan belongs to exactly one
// department user (the issuer); ownership is set at creation and never changes.
//
// DisposalDate is set whenever an update marks the challan disposed and is never
// cleared afterwards, even if the status later moves away from disposed.
type Challan struct {
	ID            string
	ChallanNumber string // globally unique
	VehicleNumber string
	DriverName    string
	Amount        decimal.Decimal
	Status        ChallanStatus
	ChallanSource string
	Department    string
	StateCode     string
	RTOID         string
	AreaID        string
	DistrictID    string
	IssueDate     time.Time  // set at creation, immutable
	DisposalDate  *time.Time // nil until first disposed
	UserID        string     // owning user
}

// ChallanSummary mirrors the challan_summaries aggregate table. The table is
// created by the schema migrations but no operation currently populates or
// reads it; reports are computed live from the challans table.
type ChallanSummary struct {
	ID               string
	Date             time.Time
	TotalChallans    int
	PendingChallans  int
	DisposedChallans int
	ActiveChallans   int
	TotalAmount      decimal.Decimal
	Department       string
	StateCode        string
}
