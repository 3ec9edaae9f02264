package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

// SeedRaiders is the sample roster the dashboard starts with.
func SeedRaiders() []gormModels.RaiderProfile {
	return []gormModels.RaiderProfile{
		{Handle: "@raider1", Verified: true, TotalEarned: 300, ActiveDays: 30, Avatar: common.AvatarURL("raider1"), ConnectedX: true, LastActive: "2025-09-13"},
		{Handle: "@raider2", Verified: true, TotalEarned: 280, ActiveDays: 28, Avatar: common.AvatarURL("raider2"), ConnectedX: true, LastActive: "2025-09-13"},
		{Handle: "@raider3", Verified: false, TotalEarned: 0, ActiveDays: 0, Avatar: common.AvatarURL("raider3"), ConnectedX: false, LastActive: "Never"},
	}
}

// SeedRecords is the settled sample history shown to admins. Both records carry a payment
// status; review statuses only appear on raider submissions.
func SeedRecords() []gormModels.PerformanceRecord {
	return []gormModels.PerformanceRecord{
		{
			Date: "2025-09-13", RaiderHandle: "@raider1", PostURL: "https://x.com/user/status/123",
			Impressions: 1500, Likes: 12, Retweets: 8, Replies: 3, KPIMet: true,
			PaymentStatus: constants.PaymentPaid, Earnings: 10,
		},
		{
			Date: "2025-09-13", RaiderHandle: "@raider2", PostURL: "https://x.com/user/status/123",
			Impressions: 800, Likes: 5, Retweets: 2, Replies: 1, KPIMet: false,
			PaymentStatus: constants.PaymentUnpaid, Earnings: 0,
		},
	}
}

// Seed loads the sample data into empty tables. Tables that already hold rows are left alone.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var raiders int64
		if err := tx.Model(&gormModels.RaiderProfile{}).Count(&raiders).Error; err != nil {
			return fmt.Errorf("failed to count raiders: %w", err)
		}
		if raiders == 0 {
			seed := SeedRaiders()
			if err := tx.Create(&seed).Error; err != nil {
				return fmt.Errorf("failed to seed raiders: %w", err)
			}
		}

		var records int64
		if err := tx.Model(&gormModels.PerformanceRecord{}).Count(&records).Error; err != nil {
			return fmt.Errorf("failed to count records: %w", err)
		}
		if records == 0 {
			seed := SeedRecords()
			if err := tx.Create(&seed).Error; err != nil {
				return fmt.Errorf("failed to seed records: %w", err)
			}
		}
		return nil
	})
}
