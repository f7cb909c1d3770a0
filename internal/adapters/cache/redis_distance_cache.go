package cache

import (
	"context"
	"drayage-quote-service/internal/platform/obs"
	"drayage-quote-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "distance:"

// RedisDistanceCache stores origin->destination results in Redis with a TTL,
// for deployments where several service instances share one cache.
type RedisDistanceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, TTL: ttl}
}

var _ ports.DistanceCache = (*RedisDistanceCache)(nil)

type redisEntry struct {
	Meters  int `json:"m"`
	Seconds int `json:"s"`
}

func redisKey(origin, destination string) string {
	return redisKeyPrefix + origin + "|" + destination
}

func (c *RedisDistanceCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.DistanceResult, _ bool, err error) {
	defer obs.Time(ctx, "distance.redis.Get")(&err)

	if c.Client == nil {
		return ports.DistanceResult{}, false, errors.New("redis distance cache: client is nil")
	}
	if origin == "" || destination == "" {
		return ports.DistanceResult{}, false, errors.New("get redis distance cache: origin and destination must not be empty")
	}

	raw, err := c.Client.Get(ctx, redisKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.DistanceResult{}, false, nil
	}
	if err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get redis distance cache: %w", err)
	}

	var e redisEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get redis distance cache: decode entry: %w", err)
	}

	return ports.DistanceResult{DistanceMeters: e.Meters, DurationSeconds: e.Seconds}, true, nil
}

// Put stores the result; a zero TTL keeps it until evicted.
func (c *RedisDistanceCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	r ports.DistanceResult,
) error {
	if c.Client == nil {
		return errors.New("redis distance cache: client is nil")
	}
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert redis distance cache: origin and destination must not be empty")
	}

	b, err := json.Marshal(redisEntry{Meters: r.DistanceMeters, Seconds: r.DurationSeconds})
	if err != nil {
		return fmt.Errorf("insert redis distance cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, redisKey(origin, destination), b, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert redis distance cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
