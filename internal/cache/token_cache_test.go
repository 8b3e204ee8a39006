package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*TokenCache, *miniredis.Miniredis) {
	t.Helper()
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &TokenCache{client: rdb}, mr
}

func TestTokenCache_GetSet(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	// 1) miss
	_, ok, err := c.GetUserID(ctx, "some-token")
	if err != nil {
		t.Fatalf("GetUserID miss: %v", err)
	}
	if ok {
		t.Error("expected a miss on an empty cache")
	}

	// 2) set + get
	id := db.NewUUID()
	c.SetUserID(ctx, "some-token", id)

	got, ok, err := c.GetUserID(ctx, "some-token")
	if err != nil {
		t.Fatalf("GetUserID hit: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after SetUserID")
	}
	if got != id {
		t.Errorf("got %s; want %s", got, id)
	}

	// TTL in Redis ≈ 2m
	if ttl := mr.TTL(cacheKey("some-token")); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~2m", ttl)
	}

	// 3) expiry
	mr.FastForward(3 * time.Minute)
	_, ok, err = c.GetUserID(ctx, "some-token")
	if err != nil {
		t.Fatalf("GetUserID after expiry: %v", err)
	}
	if ok {
		t.Error("expected a miss after TTL expiry")
	}
}

func TestTokenCache_KeyHidesToken(t *testing.T) {
	c, mr := makeTestCache(t)
	c.SetUserID(context.Background(), "very-secret-token", db.NewUUID())

	for _, key := range mr.Keys() {
		if key == "very-secret-token" || len(key) < len("token:")+64 {
			t.Errorf("cache key %q leaks or truncates the token hash", key)
		}
	}
}
