// Copyright (c) 2026 Staffdeck. All rights reserved.

package employees

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/staffdeck/staffdeck/internal/platform/constants"
)

// RedisListCache implements [ListCache] using Redis with a short TTL.
//
// # Degradation
//
// Every method swallows Redis errors after logging them. The listing
// endpoint must keep working from the database when the cache is down.
type RedisListCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisListCache creates a new Redis-backed [ListCache].
func NewRedisListCache(client *redis.Client, logger *slog.Logger) *RedisListCache {
	return &RedisListCache{client: client, logger: logger}
}

/*
Get returns the cached employee listing.

Parameters:
  - context: context.Context

Returns:
  - []*Employee: Cached records
  - bool: false on cache miss, stale data, or any Redis failure
*/
func (cache *RedisListCache) Get(context context.Context) ([]*Employee, bool) {
	payload, err := cache.client.Get(context, constants.RedisKeyEmployeeList).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.WarnContext(context, "employee_cache_get_failed", slog.Any("error", err))
		}
		return nil, false
	}

	var employees []*Employee
	if err := json.Unmarshal(payload, &employees); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		cache.logger.WarnContext(context, "employee_cache_decode_failed", slog.Any("error", err))
		cache.Invalidate(context)
		return nil, false
	}

	return employees, true
}

/*
Set replaces the cached listing with a bounded TTL.

Parameters:
  - context: context.Context
  - employees: []*Employee
*/
func (cache *RedisListCache) Set(context context.Context, employees []*Employee) {
	payload, err := json.Marshal(employees)
	if err != nil {
		cache.logger.WarnContext(context, "employee_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, constants.RedisKeyEmployeeList, payload, constants.EmployeeListCacheTTL).Err(); err != nil {
		cache.logger.WarnContext(context, "employee_cache_set_failed", slog.Any("error", err))
	}
}

/*
Invalidate drops the cached listing.

Parameters:
  - context: context.Context
*/
func (cache *RedisListCache) Invalidate(context context.Context) {
	if err := cache.client.Del(context, constants.RedisKeyEmployeeList).Err(); err != nil {
		cache.logger.WarnContext(context, "employee_cache_invalidate_failed", slog.Any("error", err))
	}
}
