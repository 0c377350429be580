package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mobile-order-be/internal/constant"
	"mobile-order-be/pkg/recommend/behavior"
)

// ProfileCache is a read-through cache for behavior profiles. Rebuilding a
// profile walks the full order history, so hot users are served from Redis.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

// Get returns (nil, nil) on a cache miss. Connection failures surface as
// ErrCollaboratorUnavailable so the caller can fall back to a rebuild.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*behavior.Profile, error) {
	data, err := c.rdb.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get: %v", constant.ErrCollaboratorUnavailable, err)
	}

	var p behavior.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		// Treat a corrupt entry like a miss and let the caller overwrite it.
		return nil, nil
	}
	return &p, nil
}

func (c *ProfileCache) Set(ctx context.Context, p *behavior.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := c.rdb.Set(ctx, profileKey(p.UserID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", constant.ErrCollaboratorUnavailable, err)
	}
	return nil
}

func (c *ProfileCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.rdb.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: redis del: %v", constant.ErrCollaboratorUnavailable, err)
	}
	return nil
}
