package interfaces

import (
	"context"
	"time"
)

// Cache is a generic key-value store with per-entry TTL. It is advisory:
// a stale or missing read triggers a rebuild, never incorrect state.
type Cache interface {
	// Get returns the cached value for key, or nil when absent or expired
	Get(ctx context.Context, key string) (any, error)

	// Set stores value under key for the given TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key from the cache
	Delete(ctx context.Context, key string) error
}
