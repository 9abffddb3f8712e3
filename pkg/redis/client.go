package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/config"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/errors"
)

//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=redis_mock

// Client defines the interface for the Redis operations used by the
// book view cache.
type Client interface {
	Connect(ctx context.Context) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Close() error
}

type client struct {
	config  config.RedisConfig
	cmdable *redis.Client
}

// NewClient creates a new Redis client with the provided configuration.
func NewClient(cfg config.RedisConfig) Client {
	return &client{
		config: cfg,
	}
}

// Connect establishes and verifies the Redis connection.
func (c *client) Connect(ctx context.Context) error {
	if c.config.Addr == "" {
		return errors.NewTracer("redis address is empty")
	}

	c.cmdable = redis.NewClient(&redis.Options{
		Addr:     c.config.Addr,
		Username: c.config.Username,
		Password: c.config.Password,
		DB:       c.config.DB,
	})

	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewTracer("failed to ping redis").Wrap(err)
	}
	return nil
}

// Set stores a value under key with the given expiration.
func (c *client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return c.cmdable.Set(ctx, key, value, expiration).Err()
}

// Get returns the value stored under key, or empty string when the key
// does not exist.
func (c *client) Get(ctx context.Context, key string) (string, error) {
	value, err := c.cmdable.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}

// Close closes the underlying Redis connection.
func (c *client) Close() error {
	if c.cmdable == nil {
		return nil
	}
	return c.cmdable.Close()
}
