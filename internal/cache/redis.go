package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// InvalidationChannel carries the id of every team whose views were dropped,
// so other replicas and live dashboards can refresh
const InvalidationChannel = "mailops:invalidations"

const keyPrefix = "mailops:view:"

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisViewCache is the Redis-backed ViewCache
type RedisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisViewCache creates a view cache whose entries expire after ttl
func NewRedisViewCache(client *redis.Client, ttl time.Duration) *RedisViewCache {
	return &RedisViewCache{client: client, ttl: ttl}
}

// Ping reports whether Redis is reachable
func (c *RedisViewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get loads a cached view into dest
func (c *RedisViewCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry is treated as a miss and overwritten by the next Set
		return false, nil
	}
	return true, nil
}

// Set stores a view
func (c *RedisViewCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode view %s: %w", key, err)
	}
	return c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

// InvalidateTeam deletes the team's views and the global views, then announces the team id
func (c *RedisViewCache) InvalidateTeam(ctx context.Context, teamID uuid.UUID) error {
	patterns := []string{
		keyPrefix + fmt.Sprintf("team:%s:*", teamID),
		keyPrefix + GlobalKey("*"),
	}
	for _, pattern := range patterns {
		if err := c.deleteMatching(ctx, pattern); err != nil {
			return err
		}
	}
	return c.client.Publish(ctx, InvalidationChannel, teamID.String()).Err()
}

func (c *RedisViewCache) deleteMatching(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
