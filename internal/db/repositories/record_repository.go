package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

// RecordRepository stores performance records. Records are append-only.
type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create appends record and fills in its ID.
func (r *RecordRepository) Create(ctx context.Context, record *gormModels.PerformanceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// ListAll returns every record, oldest first.
func (r *RecordRepository) ListAll(ctx context.Context) ([]gormModels.PerformanceRecord, error) {
	var records []gormModels.PerformanceRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// ListByOwner returns the records filed under handle, oldest first.
func (r *RecordRepository) ListByOwner(ctx context.Context, handle string) ([]gormModels.PerformanceRecord, error) {
	var records []gormModels.PerformanceRecord
	err := r.db.WithContext(ctx).
		Where("raider_handle = ?", handle).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records for %s: %w", handle, err)
	}
	return records, nil
}
