// Package cache provides a short-TTL result cache for flight searches.
// Searches against the provider are slow and rate-limited, so identical
// queries within the TTL window are served from Redis. When Redis is not
// configured the no-op implementation keeps the pipeline working without it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// SearchCache stores normalized search results keyed by query.
type SearchCache interface {
	Get(ctx context.Context, query domain.SearchQuery) ([]domain.CanonicalOffer, bool)
	Set(ctx context.Context, query domain.SearchQuery, offers []domain.CanonicalOffer)
}

// Key renders a deterministic cache key for a search query.
func Key(q domain.SearchQuery) string {
	return fmt.Sprintf("search:%s:%s:%s:%s:%s:%d:%d:%d:%s",
		q.TripType, q.Origin, q.Destination, q.DepartureDate, q.ReturnDate,
		q.Adults, q.Children, q.Infants, q.CabinClass)
}

// RedisCache is the Redis-backed SearchCache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ SearchCache = (*RedisCache)(nil)

// NewRedisCache builds a SearchCache over an existing Redis client. A zero
// TTL defaults to five minutes.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached offers for the query. Any Redis or decode failure
// is treated as a miss.
func (c *RedisCache) Get(ctx context.Context, query domain.SearchQuery) ([]domain.CanonicalOffer, bool) {
	raw, err := c.client.Get(ctx, Key(query)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "search cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var offers []domain.CanonicalOffer
	if err := json.Unmarshal(raw, &offers); err != nil {
		c.logger.WarnContext(ctx, "search cache entry corrupt, ignoring", slog.String("error", err.Error()))
		return nil, false
	}
	return offers, true
}

// Set stores the offers under the query key. Failures are logged and ignored.
func (c *RedisCache) Set(ctx context.Context, query domain.SearchQuery, offers []domain.CanonicalOffer) {
	raw, err := json.Marshal(offers)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to encode search cache entry", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, Key(query), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "search cache write failed", slog.String("error", err.Error()))
	}
}

// NoOpCache always misses. Used when no Redis address is configured.
type NoOpCache struct{}

var _ SearchCache = NoOpCache{}

func (NoOpCache) Get(context.Context, domain.SearchQuery) ([]domain.CanonicalOffer, bool) {
	return nil, false
}

func (NoOpCache) Set(context.Context, domain.SearchQuery, []domain.CanonicalOffer) {}
