package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoleCache persists last-known roles keyed per user id. The TTL is the
// staleness window: an out-of-band role change converges once the entry
// expires. Keys are never shared between users, so a cached role cannot
// leak into another user's session.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role, or ("", nil) when none is cached.
func (c *RoleCache) Get(ctx context.Context, userID string) (string, error) {
	role, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("role cache get: %w", err)
	}
	return role, nil
}

func (c *RoleCache) Set(ctx context.Context, userID, role string) error {
	return c.client.Set(ctx, c.key(userID), role, c.ttl).Err()
}

func (c *RoleCache) Del(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *RoleCache) key(userID string) string {
	return "role:" + userID
}
