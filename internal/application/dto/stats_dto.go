package dto

import "github.com/shopspring/decimal"

// SummaryRequest filter set for the ad-hoc summary report. Every field is
// optional; supplied filters are conjoined. Dates use the exact pattern
// YYYY-MM-DD and bound issue_date inclusively.
type SummaryRequest struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StateCode     string `json:"state_code"`
	RTOID         string `json:"rto_id"`
	AreaID        string `json:"area_id"`
	DistrictID    string `json:"district_id"`
	Department    string `json:"department"`
	ChallanSource string `json:"challan_source"`
	ChallanStatus string `json:"challan_status"`
}

// SummaryResponse aggregate counts plus amount sum for the filtered subset.
type SummaryResponse struct {
	TotalChallans    int             `json:"total_challans"`
	PendingChallans  int             `json:"pending_challans"`
	DisposedChallans int             `json:"disposed_challans"`
	ActiveChallans   int             `json:"active_challans"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// DashboardResponse per-user snapshot: the summary aggregates over the caller's
// challans plus the revenue recognized from disposed ones.
type DashboardResponse struct {
	TotalChallans    int             `json:"total_challans"`
	PendingChallans  int             `json:"pending_challans"`
	DisposedChallans int             `json:"disposed_challans"`
	ActiveChallans   int             `json:"active_challans"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	RevenueCollected decimal.Decimal `json:"revenue_collected"`
}
