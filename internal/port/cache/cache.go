package cache

import (
	"context"
	"time"
)

// Cache is a TTL byte cache for read-mostly data. Assignment and workload
// state must never pass through here — decisions read the authoritative
// store.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
