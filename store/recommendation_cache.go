package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catdogeats/models"

	"github.com/go-redis/redis/v8"
)

// RecommendationCache holds per-user up-sell lists
type RecommendationCache interface {
	Get(ctx context.Context, userID string) ([]models.Recommendation, bool, error)
	Set(ctx context.Context, userID string, recs []models.Recommendation, ttl time.Duration) error
}

// RedisRecommendationCache stores recommendations as JSON strings with a TTL
type RedisRecommendationCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRecommendationCache creates a cache using keys "<keyPrefix>:recs:<userID>"
func NewRedisRecommendationCache(client *redis.Client, keyPrefix string) *RedisRecommendationCache {
	if keyPrefix == "" {
		keyPrefix = "catdogeats"
	}
	return &RedisRecommendationCache{client: client, keyPrefix: keyPrefix}
}

func (c *RedisRecommendationCache) key(userID string) string {
	return c.keyPrefix + ":recs:" + userID
}

// Get returns the cached list; ok is false on a miss
func (c *RedisRecommendationCache) Get(ctx context.Context, userID string) ([]models.Recommendation, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var recs []models.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, false, err
	}
	return recs, true, nil
}

// Set writes the list with the given TTL
func (c *RedisRecommendationCache) Set(ctx context.Context, userID string, recs []models.Recommendation, ttl time.Duration) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), raw, ttl).Err()
}
