// Package cache holds Redis-backed read caches.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	"github.com/oksasatya/go-job-board/pkg/helpers"
)

const suggestionPrefix = "jobs:suggest:"

// SuggestionCache stores typeahead results keyed by the normalised query.
type SuggestionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSuggestionCache(rdb *redis.Client, ttl time.Duration) *SuggestionCache {
	return &SuggestionCache{rdb: rdb, ttl: ttl}
}

func suggestionKey(q string) string {
	return suggestionPrefix + strings.ToLower(strings.TrimSpace(q))
}

func (c *SuggestionCache) Get(ctx context.Context, q string) ([]entity.JobSuggestion, bool, error) {
	var out []entity.JobSuggestion
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, suggestionKey(q), &out)
	if err != nil || !ok {
		return nil, false, err
	}
	return out, true, nil
}

func (c *SuggestionCache) Set(ctx context.Context, q string, v []entity.JobSuggestion) error {
	return helpers.RedisSetJSON(ctx, c.rdb, suggestionKey(q), v, c.ttl)
}
