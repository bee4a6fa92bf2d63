package redis

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"galaxy-kernel/internal/shared/config"

	"github.com/redis/go-redis/v9"
)

// Client is the connection backing the snapshot cache.
type Client struct {
	*redis.Client
}

// Connect returns a pinged client, or nil without error when the cache is
// disabled.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	logger := slog.With("component", "redis", "operation", "connect")

	if !cfg.Enabled {
		logger.Info("Redis disabled, snapshot cache off")
		return nil, nil
	}

	opts, err := clientOptions(cfg)
	if err != nil {
		logger.Error("Invalid Redis settings", "error", err)
		return nil, err
	}
	logger.Debug("Dialing Redis", "addr", opts.Addr, "db", opts.DB)

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("Failed to ping Redis", "error", err)
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	logger.Info("Redis snapshot cache connected", "addr", opts.Addr)
	return &Client{rdb}, nil
}

// clientOptions prefers REDIS_URL and falls back to host and port.
func clientOptions(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     4,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
