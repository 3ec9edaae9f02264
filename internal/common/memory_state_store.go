package common

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStateStore keeps client state in process memory; it is lost on restart.
type MemoryStateStore struct {
	cache *cache.Cache
}

// Ensure MemoryStateStore implements StateStore
var _ StateStore = (*MemoryStateStore)(nil)

func NewMemoryStateStore(cleanUpInterval time.Duration) *MemoryStateStore {
	return &MemoryStateStore{cache: cache.New(cache.NoExpiration, cleanUpInterval)}
}

func (s *MemoryStateStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	s.cache.Set(key, value, expiration)
	return nil
}

func (s *MemoryStateStore) Get(_ context.Context, key string) (string, bool, error) {
	val, found := s.cache.Get(key)
	if !found {
		return "", false, nil
	}
	str, ok := val.(string)
	if !ok {
		return "", false, nil
	}
	return str, true, nil
}

func (s *MemoryStateStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *MemoryStateStore) Ping(context.Context) error { return nil }

// Close is a no-op for the in-memory store
func (s *MemoryStateStore) Close() error { return nil }
