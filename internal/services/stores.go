package services

import (
	"context"

	"raidcrew/raidtracker/internal/models/dtos"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

// RaiderSource lists the roster.
type RaiderSource interface {
	List(ctx context.Context) ([]gormModels.RaiderProfile, error)
}

// RecordStore appends and lists performance records.
type RecordStore interface {
	Create(ctx context.Context, record *gormModels.PerformanceRecord) error
	ListAll(ctx context.Context) ([]gormModels.PerformanceRecord, error)
	ListByOwner(ctx context.Context, handle string) ([]gormModels.PerformanceRecord, error)
}

// DailySummarizer computes the raw report aggregates.
type DailySummarizer interface {
	DailySummary(ctx context.Context, date string) (*dtos.DailyReport, error)
}
