package counter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const followersKeyPrefix = "tounesna:followers:"

func followersKey(orgID string) string {
	return followersKeyPrefix + orgID
}

// incrIfPresent bumps a counter only when it is already cached, so a miss is
// always refilled from the record store instead of starting from zero.
var incrIfPresent = redis.NewScript(`
local key = KEYS[1]
if redis.call("EXISTS", key) == 1 then
  return redis.call("INCR", key)
end
return 0
`)

// decrIfPresent lowers a cached counter, never below zero.
var decrIfPresent = redis.NewScript(`
local key = KEYS[1]
if redis.call("EXISTS", key) == 1 then
  local val = tonumber(redis.call("GET", key))
  if val and val > 0 then
    return redis.call("DECR", key)
  end
end
return 0
`)

// RedisFollowerCounter keeps follower counts in Redis.
type RedisFollowerCounter struct {
	client *redis.Client
}

func NewRedisFollowerCounter(ctx context.Context, addr, password string, db int) (*RedisFollowerCounter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisFollowerCounter{client: client}, nil
}

func (c *RedisFollowerCounter) Get(ctx context.Context, orgID string) (int64, bool, error) {
	val, err := c.client.Get(ctx, followersKey(orgID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis get followers: %w", err)
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse followers count: %w", err)
	}
	return count, true, nil
}

func (c *RedisFollowerCounter) Set(ctx context.Context, orgID string, count int64) error {
	if err := c.client.Set(ctx, followersKey(orgID), count, 0).Err(); err != nil {
		return fmt.Errorf("redis set followers: %w", err)
	}
	return nil
}

func (c *RedisFollowerCounter) Incr(ctx context.Context, orgID string) error {
	err := incrIfPresent.Run(ctx, c.client, []string{followersKey(orgID)}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis incr followers: %w", err)
	}
	return nil
}

func (c *RedisFollowerCounter) Decr(ctx context.Context, orgID string) error {
	err := decrIfPresent.Run(ctx, c.client, []string{followersKey(orgID)}).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis decr followers: %w", err)
	}
	return nil
}

func (c *RedisFollowerCounter) Close() error {
	return c.client.Close()
}

var _ FollowerCounter = (*RedisFollowerCounter)(nil)
