package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"billing-service/internal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// scanBatch bounds the keys fetched and deleted per SCAN round trip.
const scanBatch = 100

// RedisCache implements Cache on a Redis shared by every instance.
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCache connects to the configured Redis and pings it.
func NewRedisCache(cfg *config.Config, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password:        cfg.RedisPassword,
		DB:              cfg.RedisDB,
		PoolSize:        10,
		MinIdleConns:    2,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("Redis cache initialized successfully",
		zap.String("host", cfg.RedisHost),
		zap.String("port", cfg.RedisPort),
		zap.Int("db", cfg.RedisDB),
	)
	return &RedisCache{client: client, logger: logger}, nil
}

// fail logs a Redis error and wraps it with the operation name.
func (c *RedisCache) fail(op, key string, err error) error {
	c.logger.Warn("Redis "+op+" failed", zap.String("key", key), zap.Error(err))
	return fmt.Errorf("redis %s %s: %w", op, key, err)
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, ErrCacheMiss
	case err != nil:
		return nil, c.fail("get", key, err)
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return c.fail("set", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return c.fail("del", key, err)
	}
	return nil
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, c.fail("exists", key, err)
	}
	return n > 0, nil
}

// DeleteByPattern deletes matching keys one SCAN page at a time.
func (c *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return c.fail("scan", pattern, err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return c.fail("del", pattern, err)
			}
			deleted += len(keys)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	if deleted > 0 {
		c.logger.Debug("Invalidated cached views", zap.String("pattern", pattern), zap.Int("count", deleted))
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
