package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaitori/backend/internal/domain"
)

// RedisStore keeps shop snapshots in Redis, one JSON value per shop key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using the given URL
// (redis://[user:pass@]host:port/db). A zero TTL means snapshots never expire.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

func snapshotKey(shopID string) string {
	return "snapshot:" + shopID
}

// Load returns the shop's last snapshot, or ErrCacheMiss when the key is
// absent or the payload is unreadable.
func (s *RedisStore) Load(ctx context.Context, shopID string) ([]domain.Observation, error) {
	val, err := s.client.Get(ctx, snapshotKey(shopID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}

	var observations []domain.Observation
	if err := json.Unmarshal([]byte(val), &observations); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return observations, nil
}

// Save replaces the shop's snapshot.
func (s *RedisStore) Save(ctx context.Context, shopID string, observations []domain.Observation) error {
	payload, err := json.Marshal(observations)
	if err != nil {
		return fmt.Errorf("marshal snapshot for %s: %w", shopID, err)
	}
	if err := s.client.Set(ctx, snapshotKey(shopID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
