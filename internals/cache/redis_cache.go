package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrDisabled is returned by a nil cache; callers treat it as a miss.
var ErrDisabled = errors.New("cache disabled")

// Key prefix shared by every cached report. Booking writes drop the whole prefix.
const ReportPrefix = "dancebook:reports:"

// RedisCache is safe to use as a nil pointer: every method degrades to a miss / no-op.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(ctx context.Context, redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	zap.L().Info("✅ Redis connection established")
	return &RedisCache{client: client}, nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) *RedisCache {
	if client == nil {
		return nil
	}
	return &RedisCache{client: client}
}

func (c *RedisCache) Enabled() bool { return c != nil && c.client != nil }

func (c *RedisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return sonic.Unmarshal(data, dest)
}

// GetOrSet returns the cached value for key or computes, stores and returns it.
// Cache failures never fail the call.
func GetOrSet[T any](c *RedisCache, ctx context.Context, key string, expiration time.Duration, fn func() (T, error)) (T, error) {
	var result T
	if err := c.Get(ctx, key, &result); err == nil {
		return result, nil
	}

	result, err := fn()
	if err != nil {
		return result, err
	}
	if c.Enabled() {
		if err := c.Set(ctx, key, result, expiration); err != nil {
			zap.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// DeletePrefix removes every key starting with prefix using SCAN.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	if !c.Enabled() {
		return nil
	}
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) >= 100 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Del(ctx, batch...).Err()
	}
	return nil
}

// InvalidateReports is called after any booking mutation.
func (c *RedisCache) InvalidateReports(ctx context.Context) {
	if err := c.DeletePrefix(ctx, ReportPrefix); err != nil {
		zap.L().Warn("report cache invalidation failed", zap.Error(err))
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
