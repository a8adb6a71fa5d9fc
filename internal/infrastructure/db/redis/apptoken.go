package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	appTokenKey = "facebook:app_access_token"
	appTokenTTL = time.Hour
)

// AppTokenCache caches the Facebook app access token obtained through
// the client-credentials exchange, so each social login does not pay for
// an extra round trip to the provider.
type AppTokenCache struct {
	client *redis.Client
}

// NewAppTokenCache creates an AppTokenCache wrapping the given Redis client.
func NewAppTokenCache(client *redis.Client) *AppTokenCache {
	return &AppTokenCache{client: client}
}

// Get returns the cached app token, or "" when absent.
func (c *AppTokenCache) Get(ctx context.Context) (string, error) {
	token, err := c.client.Get(ctx, appTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Set stores the app token (expires after appTokenTTL).
func (c *AppTokenCache) Set(ctx context.Context, token string) error {
	return c.client.Set(ctx, appTokenKey, token, appTokenTTL).Err()
}
