package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. Implementations
// must treat a miss as (false, nil), leaving dest untouched.
type Cache interface {
	// Get looks up key and unmarshals the stored value into dest.
	// Returns true on a hit.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the backing connection.
	Ping(ctx context.Context) error
}
