// Copyright (c) 2026 Staffdeck. All rights reserved.

/*
Package redis provides a managed client for volatile data storage.

It backs the read paths that tolerate staleness, such as the employee
listing cache, and the readiness probe. Nothing authoritative lives here:
every key carries a TTL and the system stays correct if Redis is flushed.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conservative timeouts; cache lookups sit on the request path, so a slow
// Redis must fail fast rather than stall the response.
const (
	dialTimeout  = 3 * time.Second
	opTimeout    = 2 * time.Second
	pingTimeout  = 2 * time.Second
	poolSize     = 10
	minIdleConns = 2
	maxIdleConns = 5
)

/*
NewClient parses a Redis URL, tunes the connection pool and verifies
connectivity with an immediate ping.

Parameters:
  - ctx: Context bounding the startup ping.
  - redisURL: Redis connection URL (redis:// or rediss://).
  - logger: Structured logger for connection events.
*/
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.MaxIdleConns = maxIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = opTimeout
	options.WriteTimeout = opTimeout

	client := redis.NewClient(options)

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
