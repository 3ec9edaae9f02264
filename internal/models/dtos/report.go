package dtos

// DailyReport summarizes one day of raid activity.
type DailyReport struct {
	Date             string  `json:"date" db:"-"`
	TotalRaiders     int     `json:"total_raiders" db:"total_raiders"`
	VerifiedAccounts int     `json:"verified_accounts" db:"verified_accounts"`
	ConnectedRaiders int     `json:"connected_raiders" db:"connected_raiders"`
	Submissions      int     `json:"submissions" db:"submissions"`
	KPIMet           int     `json:"kpi_met" db:"kpi_met"`
	PaidCount        int     `json:"paid_count" db:"paid_count"`
	PaidTotal        int     `json:"paid_total" db:"paid_total"`
	SuccessRate      float64 `json:"success_rate"`
	VerificationRate float64 `json:"verification_rate"`
}
