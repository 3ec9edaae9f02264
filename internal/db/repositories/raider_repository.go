package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

type RaiderRepository struct {
	db *gorm.DB
}

func NewRaiderRepository(db *gorm.DB) *RaiderRepository {
	return &RaiderRepository{db: db}
}

// List returns the whole roster in insertion order.
func (r *RaiderRepository) List(ctx context.Context) ([]gormModels.RaiderProfile, error) {
	var raiders []gormModels.RaiderProfile
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&raiders).Error; err != nil {
		return nil, fmt.Errorf("failed to list raiders: %w", err)
	}
	return raiders, nil
}

// GetByHandle retrieves one raider by @-handle, or nil if the handle is not on the roster.
func (r *RaiderRepository) GetByHandle(ctx context.Context, handle string) (*gormModels.RaiderProfile, error) {
	var raider gormModels.RaiderProfile
	err := r.db.WithContext(ctx).
		Where("handle = ?", handle).
		First(&raider).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch raider: %w", err)
	}
	return &raider, nil
}
