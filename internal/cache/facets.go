package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"
)

const (
	KeyCategories = "task_facets:categories"
	KeySkills     = "task_facets:skills"
)

// FacetCache keeps the distinct category and skill lists for task
// discovery in redis. A nil cache or nil client degrades to always-miss
// so tests and redis-less deployments run against the database alone.
type FacetCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewFacetCache(client rueidis.Client, ttl time.Duration) *FacetCache {
	return &FacetCache{client: client, ttl: ttl}
}

func (c *FacetCache) Get(ctx context.Context, key string) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	result := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
	if err := result.Error(); err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("facet cache: get %s failed: %v", key, err)
		}
		return nil, false
	}

	raw, err := result.AsBytes()
	if err != nil {
		return nil, false
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false
	}
	return values, true
}

func (c *FacetCache) Set(ctx context.Context, key string, values []string) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().Key(key).Value(string(raw)).
		Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("facet cache: set %s failed: %v", key, err)
	}
}

// Invalidate drops the facet keys; called whenever a task mutation may
// introduce a new category or skill.
func (c *FacetCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	cmd := c.client.B().Del().Key(keys...).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("facet cache: invalidate failed: %v", err)
	}
}
