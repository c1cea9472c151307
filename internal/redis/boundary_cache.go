package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// BoundaryCache keeps the raw service-area GeoJSON document so restarts
// and sibling instances skip re-reading the boundary source.
type BoundaryCache struct {
	client *goredis.Client
	key    string
}

func NewBoundaryCache(r *Redis) *BoundaryCache {
	return &BoundaryCache{
		client: r.Client,
		key:    "boundary:service_area",
	}
}

// Get returns nil bytes (not an error) on cache miss.
func (c *BoundaryCache) Get(ctx context.Context) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (c *BoundaryCache) Set(ctx context.Context, geojson []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.key, geojson, ttl).Err()
}
