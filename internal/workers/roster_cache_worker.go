package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"raidcrew/raidtracker/internal/logging"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

const rosterKey = "roster"

type RaiderLister interface {
	List(ctx context.Context) ([]gormModels.RaiderProfile, error)
}

// RosterCache keeps the raider roster in memory and reloads it from the source on expiry
// or on each refresh tick.
type RosterCache struct {
	source RaiderLister
	cache  *cache.Cache
	ttl    time.Duration
}

func NewRosterCache(source RaiderLister, ttl time.Duration) *RosterCache {
	return &RosterCache{
		source: source,
		cache:  cache.New(ttl, 2*ttl),
		ttl:    ttl,
	}
}

// List returns a copy of the cached roster, loading it on a miss.
func (c *RosterCache) List(ctx context.Context) ([]gormModels.RaiderProfile, error) {
	if v, ok := c.cache.Get(rosterKey); ok {
		cached := v.([]gormModels.RaiderProfile)
		out := make([]gormModels.RaiderProfile, len(cached))
		copy(out, cached)
		return out, nil
	}
	return c.Refresh(ctx)
}

// Refresh reloads the roster from the source.
func (c *RosterCache) Refresh(ctx context.Context) ([]gormModels.RaiderProfile, error) {
	raiders, err := c.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	stored := make([]gormModels.RaiderProfile, len(raiders))
	copy(stored, raiders)
	c.cache.Set(rosterKey, stored, c.ttl)
	return raiders, nil
}

// Invalidate drops the cached roster.
func (c *RosterCache) Invalidate() {
	c.cache.Delete(rosterKey)
}

// Start refreshes the roster every interval until ctx is cancelled.
func (c *RosterCache) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Roster cache worker stopped")
			return
		case <-ticker.C:
			raiders, err := c.Refresh(ctx)
			if err != nil {
				logging.Warn("Roster refresh failed", "error", err.Error())
				continue
			}
			logging.Debug("Roster refreshed", "raiders", len(raiders))
		}
	}
}
