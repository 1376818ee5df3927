package domain

import (
	"context"
	"time"
)

// CacheRepository defines the generic caching operations used by the services.
// Get returns ErrCacheMiss when the key is absent or expired.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
