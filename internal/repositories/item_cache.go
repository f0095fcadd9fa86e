package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ItemCacheRepository caches item detail documents in Redis
type ItemCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached items
}

// NewItemCacheRepository creates a new repository instance with the given TTL
func NewItemCacheRepository(client *redis.Client, expiration time.Duration) *ItemCacheRepository {
	return &ItemCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func itemCacheKey(itemID uuid.UUID) string {
	return fmt.Sprintf("item:%s", itemID)
}

// Get returns the cached item, or nil on a cache miss
func (r *ItemCacheRepository) Get(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error) {
	key := itemCacheKey(itemID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var item models.ItemDB
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &item, nil
}

// Set caches an item document with the repository's expiration
func (r *ItemCacheRepository) Set(ctx context.Context, item *models.ItemDB) error {
	key := itemCacheKey(item.ItemID)

	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops a cached item, used after comment mutations
func (r *ItemCacheRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	key := itemCacheKey(itemID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
