package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sbilibin2017/sleep-tracker/internal/models"
)

// SleepCacheRepository caches per-owner sleep lists in Redis
type SleepCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached lists
	log    *zap.SugaredLogger
}

// NewSleepCacheRepository creates a new repository instance with the given TTL
func NewSleepCacheRepository(client *redis.Client, expiration time.Duration, log *zap.SugaredLogger) *SleepCacheRepository {
	return &SleepCacheRepository{
		client: client,
		exp:    expiration,
		log:    log,
	}
}

func sleepListKey(userID uuid.UUID) string {
	return fmt.Sprintf("sleeps:%s", userID)
}

// GetByUserID fetches the cached sleep list for a user
func (r *SleepCacheRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.SleepDB, error) {
	key := sleepListKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		r.log.Infow("cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("sleep list not found in cache for user %s", userID)
		}
		return nil, err
	}

	var sleeps []models.SleepDB
	if err := json.Unmarshal([]byte(val), &sleeps); err != nil {
		r.log.Infow("cache get",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	r.log.Infow("cache get",
		"key", key,
		"rows", len(sleeps),
		"error", nil,
	)

	return sleeps, nil
}

// SetByUserID caches the sleep list for a user with expiration
func (r *SleepCacheRepository) SetByUserID(ctx context.Context, userID uuid.UUID, sleeps []models.SleepDB) error {
	key := sleepListKey(userID)

	data, err := json.Marshal(sleeps)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	r.log.Infow("cache set",
		"key", key,
		"rows", len(sleeps),
		"error", err,
	)

	return err
}

// DeleteByUserID drops the cached sleep list for a user after a mutation
func (r *SleepCacheRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	key := sleepListKey(userID)
	err := r.client.Del(ctx, key).Err()

	r.log.Infow("cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
