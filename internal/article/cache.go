package article

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// Cache is a Redis read-through cache for single-article reads. A miss or
// any Redis error falls back to the store; writes invalidate.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func articleKey(id uuid.UUID) string {
	return fmt.Sprintf("article:%s", id.String())
}

// Get returns the cached article, or nil on miss.
func (c *Cache) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	data, err := c.client.Get(ctx, articleKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached article: %w", err)
	}

	var a Article
	if err := json.Unmarshal(data, &a); err != nil {
		// A corrupt entry is treated as a miss
		return nil, nil
	}

	return &a, nil
}

// Set stores the article with the cache TTL.
func (c *Cache) Set(ctx context.Context, a *Article) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	if err := c.client.Set(ctx, articleKey(a.ID), data, cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache article: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry after a write.
func (c *Cache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, articleKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached article: %w", err)
	}

	return nil
}
