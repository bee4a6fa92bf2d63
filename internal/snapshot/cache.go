package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"galaxy-kernel/internal/shared/errors"
)

const cacheKeyPrefix = "galaxy:snapshot:"

// Cache holds the latest stream per save name in redis. Entries expire
// after ttl; zero keeps them forever.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Name() string { return "redis" }

func cacheKey(name string) string {
	return cacheKeyPrefix + name
}

func (c *Cache) Save(ctx context.Context, name string, turn int, data []byte) error {
	logger := slog.With("component", "snapshot_cache", "operation", "save", "name", name, "turn", turn)

	if err := c.client.Set(ctx, cacheKey(name), data, c.ttl).Err(); err != nil {
		logger.Error("Failed to cache snapshot", "error", err)
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}

	logger.Debug("Snapshot cached", "ttl", c.ttl)
	return nil
}

func (c *Cache) Load(ctx context.Context, name string) ([]byte, error) {
	logger := slog.With("component", "snapshot_cache", "operation", "load", "name", name)

	data, err := c.client.Get(ctx, cacheKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Debug("Snapshot not cached")
			return nil, errors.NotFoundf("snapshot %q not cached", name)
		}
		logger.Error("Failed to read cached snapshot", "error", err)
		return nil, fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	logger.Debug("Cached snapshot hit", "size_bytes", len(data))
	return data, nil
}
