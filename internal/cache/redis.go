package cache

import (
	"context"
	"time"

	"github.com/lakshya-prep/lakshya/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisClient is a thin wrapper used as a read-through cache for question
// records. The cache is optional: when no address is configured, or the
// server is unreachable at startup, NewRedisClient returns nil and callers
// fall back to direct storage reads.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.Config) *RedisClient {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, question cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, question cache disabled")
		_ = client.Close()
		return nil
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis question cache connected")
	return &RedisClient{client: client}
}

func (c *RedisClient) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// MGet returns the cached values for keys; misses come back as empty strings
// in the same positions.
func (c *RedisClient) MGet(ctx context.Context, keys ...string) ([]string, error) {
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	return out, nil
}

// SetAll writes the given key/value pairs with a shared TTL in one round trip.
func (c *RedisClient) SetAll(ctx context.Context, pairs map[string]string, ttl time.Duration) error {
	pipe := c.client.Pipeline()
	for k, v := range pairs {
		pipe.Set(ctx, k, v, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
