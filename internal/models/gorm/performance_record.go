package gorm

import (
	"time"

	"raidcrew/raidtracker/internal/constants"
)

// PerformanceRecord is one day's post submitted for a raid.
// Status is set on raider submissions, PaymentStatus once an admin settles the record;
// either may be empty.
type PerformanceRecord struct {
	ID            uint                    `gorm:"column:id;primaryKey;autoIncrement"`
	Date          string                  `gorm:"column:date;index"`
	RaiderHandle  string                  `gorm:"column:raider_handle;index"`
	PostURL       string                  `gorm:"column:post_url"`
	Impressions   int                     `gorm:"column:impressions"`
	Likes         int                     `gorm:"column:likes;default:0"`
	Retweets      int                     `gorm:"column:retweets;default:0"`
	Replies       int                     `gorm:"column:replies;default:0"`
	KPIMet        bool                    `gorm:"column:kpi_met"`
	Status        constants.ReviewStatus  `gorm:"column:status"`
	PaymentStatus constants.PaymentStatus `gorm:"column:payment_status"`
	Earnings      int                     `gorm:"column:earnings;default:0"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (PerformanceRecord) TableName() string {
	return "performance_records"
}

// IsPaid reports whether an admin marked the record paid.
func (r PerformanceRecord) IsPaid() bool {
	return r.PaymentStatus == constants.PaymentPaid
}
