package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"billing-service/internal/config"

	"go.uber.org/zap"
)

// ErrCacheMiss is returned by Get when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores serialized read views and idempotency records.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// DeleteByPattern removes an exact key, or every key sharing a prefix
	// when pattern ends in '*'.
	DeleteByPattern(ctx context.Context, pattern string) error
	Close() error
}

// NewCache connects to Redis and falls back to an in-process cache when
// Redis does not answer.
func NewCache(cfg *config.Config, logger *zap.Logger) Cache {
	c, err := NewRedisCache(cfg, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, using in-memory cache",
			zap.String("host", cfg.RedisHost),
			zap.String("port", cfg.RedisPort),
			zap.Error(err),
		)
		return NewInMemoryCache(logger)
	}
	return c
}

// GetJSON decodes the value stored under key into dest.
func GetJSON(ctx context.Context, c Cache, key string, dest interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON stores value under key as JSON.
func SetJSON(ctx context.Context, c Cache, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}

// TTL converts a CACHE_TTL style value in seconds.
func TTL(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
