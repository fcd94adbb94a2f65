package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const rateKey = "rates:BTC"

// RateCache implements ports.RateCache using Redis, sharing the satoshi
// rate between daemon instances and bounding backend reads with a TTL.
type RateCache struct {
	client *goredis.Client
}

// NewRateCache creates a Redis-backed rate cache.
func NewRateCache(client *goredis.Client) *RateCache {
	return &RateCache{client: client}
}

// Get retrieves the cached rate. The second return is false when no rate
// is cached.
func (c *RateCache) Get(ctx context.Context) (float64, bool, error) {
	val, err := c.client.Get(ctx, rateKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis rate get: %w", err)
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parsing cached rate %q: %w", val, err)
	}
	return rate, true, nil
}

// Set stores the rate with a TTL.
func (c *RateCache) Set(ctx context.Context, rate float64, ttl time.Duration) error {
	val := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := c.client.Set(ctx, rateKey, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis rate set: %w", err)
	}
	return nil
}
