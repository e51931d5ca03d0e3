package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agrosmart/agrofarm/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// GetClimate retrieves a cached climate entry. A missing or expired key is a
// cache miss, returned as (nil, nil).
func (r *FarmerRepo) GetClimate(ctx context.Context, key string) (*models.Climate, error) {
	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read climate cache: %w", err)
	}

	var climate models.Climate
	if err := json.Unmarshal([]byte(val), &climate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal climate entry: %w", err)
	}

	return &climate, nil
}

// SetClimate stores a climate entry with the given TTL. Entries are assumed
// fresh for their full TTL; expiry is carried by Redis, not checked on read.
func (r *FarmerRepo) SetClimate(ctx context.Context, key string, climate *models.Climate, ttl time.Duration) error {
	data, err := json.Marshal(climate)
	if err != nil {
		return fmt.Errorf("failed to marshal climate entry: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store climate entry in Redis: %w", err)
	}

	return nil
}
