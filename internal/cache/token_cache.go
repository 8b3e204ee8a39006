package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// tokenTTL keeps verified tokens for a short window only, so a revoked
// credential does not stay usable for long.
const tokenTTL = 2 * time.Minute

type TokenCache struct {
	client *redis.Client
}

// compile-time check: *TokenCache must satisfy port.TokenCache
var _ port.TokenCache = (*TokenCache)(nil)

func NewTokenCache(addr, password string) *TokenCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &TokenCache{client: rdb}
}

func (c *TokenCache) GetUserID(ctx context.Context, token string) (db.UUID, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return db.UUID{}, false, nil // cache miss
	}
	if err != nil {
		return db.UUID{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var id db.UUID
	if err := id.UnmarshalText([]byte(val)); err != nil {
		return db.UUID{}, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return id, true, nil
}

func (c *TokenCache) SetUserID(ctx context.Context, token string, id db.UUID) {
	if err := c.client.Set(ctx, cacheKey(token), id.String(), tokenTTL).Err(); err != nil {
		// caching is an optimisation only
		log.Printf("failed to cache token resolution: %v", err)
	}
}

// cacheKey hashes the token: raw credentials never land in redis.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:])
}
