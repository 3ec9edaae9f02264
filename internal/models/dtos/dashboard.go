package dtos

import "raidcrew/raidtracker/internal/constants"

// RaiderRow is one roster entry. TotalEarned is nil while payments are hidden.
type RaiderRow struct {
	ID          uint   `json:"id"`
	Handle      string `json:"handle"`
	Verified    bool   `json:"verified"`
	TotalEarned *int   `json:"totalEarned,omitempty"`
	ActiveDays  int    `json:"activeDays"`
	Avatar      string `json:"avatar"`
	ConnectedX  bool   `json:"connectedX"`
	LastActive  string `json:"lastActive"`
}

// RecordRow is one performance record as a dashboard shows it. PaymentStatus and Earnings
// are blanked on the admin view while payments are hidden.
type RecordRow struct {
	ID            uint                    `json:"id"`
	Date          string                  `json:"date"`
	RaiderHandle  string                  `json:"raiderHandle,omitempty"`
	PostURL       string                  `json:"postUrl"`
	Impressions   int                     `json:"impressions"`
	Likes         int                     `json:"likes"`
	Retweets      int                     `json:"retweets"`
	Replies       int                     `json:"replies"`
	KPIMet        bool                    `json:"kpiMet"`
	Status        constants.ReviewStatus  `json:"status,omitempty"`
	PaymentStatus constants.PaymentStatus `json:"paymentStatus,omitempty"`
	Earnings      *int                    `json:"earnings,omitempty"`
}

type AdminStats struct {
	TotalRaiders      int `json:"totalRaiders"`
	ConnectedRaiders  int `json:"connectedRaiders"`
	SubmissionsToday  int `json:"submissionsToday"`
	KPIMetToday       int `json:"kpiMetToday"`
	PaymentsToday     int `json:"paymentsToday"`
	PaymentsMadeToday int `json:"paymentsMadeToday"`
	SuccessRateToday  int `json:"successRateToday"`
}

type AdminDashboard struct {
	Today        string      `json:"today"`
	Search       string      `json:"search"`
	ShowPayments bool        `json:"showPayments"`
	Stats        AdminStats  `json:"stats"`
	Raiders      []RaiderRow `json:"raiders"`
	Records      []RecordRow `json:"records"`
}

type RaiderStats struct {
	ThisMonth     int  `json:"thisMonth"`
	SuccessRate   int  `json:"successRate"`
	TotalEarnings int  `json:"totalEarnings"`
	ConnectedX    bool `json:"connectedX"`
}

type RaiderDashboard struct {
	Handle  string      `json:"handle"`
	Stats   RaiderStats `json:"stats"`
	Records []RecordRow `json:"records"`
}

// DelegatedRedirect tells the client where to navigate once the delay elapses.
type DelegatedRedirect struct {
	RedirectURL string `json:"redirectUrl"`
	DelayMs     int64  `json:"delayMs"`
}
