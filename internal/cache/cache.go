// Package cache keeps a short-lived copy of the public combined
// contributions aggregate in Redis. The cache is optional: when no
// REDIS_ADDR is configured every call is a no-op and handlers recompute.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/config"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/logger"
)

const (
	combinedKey = "portfolio:coding:combined"
	combinedTTL = 10 * time.Minute
)

var client *redis.Client

// Connect initializes the Redis client when configured. A nil client
// leaves the cache disabled.
func Connect(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, aggregate cache disabled")
		return
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warning("redis unreachable, aggregate cache disabled: %v", err)
		client = nil
		return
	}
	logger.Success("Connected to Redis at %s", cfg.RedisAddr)
}

// GetCombined loads the cached aggregate into dest, reporting a hit.
func GetCombined(ctx context.Context, dest interface{}) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, combinedKey).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetCombined stores the aggregate with a TTL. Failures only cost the cache.
func SetCombined(ctx context.Context, value interface{}) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := client.Set(ctx, combinedKey, raw, combinedTTL).Err(); err != nil {
		logger.Warning("could not cache combined contributions: %v", err)
	}
}

// InvalidateCombined drops the cached aggregate after any profile write.
func InvalidateCombined(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, combinedKey).Err(); err != nil {
		logger.Warning("could not invalidate combined cache: %v", err)
	}
}
