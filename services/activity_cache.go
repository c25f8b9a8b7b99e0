package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tonotes/model"
)

// ActivityCache caches ActivityRecords by user in Redis. Entries carry the
// record version, so a stale entry can only ever cause a version conflict
// on save, never a lost update.
type ActivityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewActivityCache connects to redisURL and verifies the connection.
func NewActivityCache(redisURL string, ttl time.Duration) (*ActivityCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ActivityCache{client: client, ttl: ttl}, nil
}

func activityKey(userID string) string {
	return fmt.Sprintf("activity:%s", userID)
}

// GetActivity returns nil, nil on a cache miss.
func (ac *ActivityCache) GetActivity(ctx context.Context, userID string) (*model.ActivityRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	data, err := ac.client.Get(ctx, activityKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from cache: %w", err)
	}

	var rec model.ActivityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity: %w", err)
	}
	return &rec, nil
}

func (ac *ActivityCache) SetActivity(ctx context.Context, rec *model.ActivityRecord) error {
	if rec == nil {
		return fmt.Errorf("cannot cache nil activity")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	if err := ac.client.Set(ctx, activityKey(rec.UserID), data, ac.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache activity: %w", err)
	}
	return nil
}

func (ac *ActivityCache) DeleteActivity(ctx context.Context, userID string) error {
	if err := ac.client.Del(ctx, activityKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete activity from cache: %w", err)
	}
	return nil
}

func (ac *ActivityCache) Ping(ctx context.Context) error {
	if ac == nil || ac.client == nil {
		return fmt.Errorf("cache not configured")
	}
	return ac.client.Ping(ctx).Err()
}

func (ac *ActivityCache) Close() error {
	return ac.client.Close()
}
