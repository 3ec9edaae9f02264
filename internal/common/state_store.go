package common

import (
	"context"
	"time"
)

// StateStore holds the per-client state a browser tab would otherwise keep in
// localStorage and sessionStorage.
type StateStore interface {
	// Set stores value under key. A zero ttl keeps the value until it is deleted.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value and true if found, "" and false otherwise
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
