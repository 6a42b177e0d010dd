package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ayto/budgetledger/internal/infrastructure/metrics"
)

// Cache implements usecase.Cache using Redis. Stats responses are the main
// tenant; keys are invalidated on every modification state change.
type Cache struct {
	client  *redis.Client
	prefix  string
	metrics *metrics.Metrics
}

// NewCache creates a new Cache. The metrics parameter may be nil.
func NewCache(client *redis.Client, m *metrics.Metrics) *Cache {
	return &Cache{
		client:  client,
		prefix:  "cache:",
		metrics: m,
	}
}

// Get retrieves a value by key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.recordOp("get")

	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			if c.metrics != nil {
				c.metrics.CacheMisses.Inc()
			}
		} else {
			c.recordErr("get")
		}

		return "", err
	}

	if c.metrics != nil {
		c.metrics.CacheHits.Inc()
	}

	return val, nil
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.recordOp("set")

	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		c.recordErr("set")

		return err
	}

	return nil
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.recordOp("del")

	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.recordErr("del")

		return err
	}

	return nil
}

func (c *Cache) recordOp(op string) {
	if c.metrics != nil {
		c.metrics.RedisOperations.WithLabelValues(op).Inc()
	}
}

func (c *Cache) recordErr(op string) {
	if c.metrics != nil {
		c.metrics.RedisErrors.WithLabelValues(op).Inc()
	}
}
