package workers

import (
	"context"
	"time"

	"raidcrew/raidtracker/internal/logging"
)

type WorkersContainer struct {
	Roster *RosterCache
}

// InitWorkers starts the background refreshers. A non-positive interval leaves the roster
// cache to reload lazily on expiry.
func InitWorkers(ctx context.Context, roster *RosterCache, interval time.Duration) *WorkersContainer {
	if interval > 0 {
		go roster.Start(ctx, interval)
		logging.Info("Roster cache worker started", "interval", interval.String())
	}

	return &WorkersContainer{
		Roster: roster,
	}
}
