package cache

import (
	"context"
	"drayage-quote-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisDistanceCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisDistanceCache(client, ttl), mr
}

func TestRedisDistanceCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "a", "b"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := ports.DistanceResult{DistanceMeters: 115873, DurationSeconds: 5400}
	if err := c.Put(ctx, "a", "b", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "a", "b")
	if err != nil || !ok || got != want {
		t.Fatalf("get = %+v ok=%v err=%v, want %+v", got, ok, err, want)
	}
	if _, ok, _ := c.Get(ctx, "b", "a"); ok {
		t.Fatalf("reverse pair must miss")
	}
}

func TestRedisDistanceCacheExpires(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "a", "b", ports.DistanceResult{DistanceMeters: 1, DurationSeconds: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "a", "b"); err != nil || ok {
		t.Fatalf("after ttl: ok=%v err=%v, want miss", ok, err)
	}
}

func TestRedisDistanceCacheCorruptEntry(t *testing.T) {
	c, mr := newTestRedisCache(t, 0)

	if err := mr.Set(redisKey("a", "b"), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, _, err := c.Get(context.Background(), "a", "b"); err == nil {
		t.Fatalf("expected decode error")
	}
}
