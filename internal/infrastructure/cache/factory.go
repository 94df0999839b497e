package cache

import (
	"context"
	"fmt"
	"io"

	"github.com/storefront/backend/internal/domain"
)

// Cache types accepted by New
const (
	TypeNone   = "none"
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

// Cache is a cache repository that owns resources
type Cache interface {
	domain.CacheRepository
	io.Closer
}

// New builds the cache selected by cacheType. TypeNone returns nil.
func New(ctx context.Context, cacheType, redisURL string) (Cache, error) {
	switch cacheType {
	case TypeNone, "":
		return nil, nil
	case TypeMemory:
		return NewMemoryCache(0), nil
	case TypeRedis:
		c, err := NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cacheType)
	}
}
