package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// DefaultCacheTTL matches the lifetime of hosted image URLs.
const DefaultCacheTTL = time.Hour

var _ ports.GenerationCache = (*GenerationCache)(nil)

// GenerationCache stores generated artifacts keyed by kind and prompt.
// Key format: gen:<kind>:<sha256(prompt)>
type GenerationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGenerationCache wraps client. A non-positive ttl means DefaultCacheTTL.
func NewGenerationCache(client *redis.Client, ttl time.Duration) *GenerationCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &GenerationCache{client: client, ttl: ttl}
}

// Get returns the cached value for prompt, if any.
func (c *GenerationCache) Get(ctx context.Context, kind, prompt string) (string, bool, error) {
	v, err := c.client.Get(ctx, c.key(kind, prompt)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("generation cache get: %w", err)
	}
	return v, true, nil
}

// Set records value for prompt; it expires after the configured TTL.
func (c *GenerationCache) Set(ctx context.Context, kind, prompt, value string) error {
	if err := c.client.Set(ctx, c.key(kind, prompt), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("generation cache set: %w", err)
	}
	return nil
}

func (c *GenerationCache) key(kind, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("gen:%s:%s", kind, hex.EncodeToString(sum[:]))
}
