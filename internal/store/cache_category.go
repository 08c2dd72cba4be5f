package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-tube/internal/config"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/models"
	"github.com/redis/go-redis/v9"
)

const categoriesCacheKey = "go-tube:categories"

// categoryCache keeps the category list in Redis. The list only changes
// through migrations, so entries simply expire after ttl. Any Redis
// failure falls through to the wrapped repository.
type categoryCache struct {
	next   CategoryRepository
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCategoryCache wraps next with a Redis cache. next is returned as is
// when no Redis address is configured.
func NewCategoryCache(next CategoryRepository, cfg config.Cache, log *logger.Logger) CategoryRepository {
	if cfg.Addr == "" {
		return next
	}

	log.Debug().Str("addr", cfg.Addr).Msg("creating category cache")
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return newCategoryCache(next, client, cfg.TTL, log)
}

func newCategoryCache(next CategoryRepository, client *redis.Client, ttl time.Duration, log *logger.Logger) *categoryCache {
	return &categoryCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *categoryCache) GetMany(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	cached, err := c.client.Get(ctx, categoriesCacheKey).Bytes()
	switch {
	case err == nil:
		var categories []models.Category
		if err = json.Unmarshal(cached, &categories); err == nil {
			return categories, nil
		}
		log.Warn().Err(err).Str("func", "*categoryCache.GetMany").Msg("dropping malformed cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "*categoryCache.GetMany").Msg("cache read failed")
	}

	categories, err := c.next.GetMany(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return categories, nil
	}
	if err = c.client.Set(ctx, categoriesCacheKey, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("func", "*categoryCache.GetMany").Msg("cache write failed")
	}

	return categories, nil
}

// Close releases the Redis connection pool.
func (c *categoryCache) Close() error {
	return c.client.Close()
}
