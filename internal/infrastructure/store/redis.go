package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portfolio:"

// RedisStore keeps one JSON blob per user under portfolio:<userID>.
// Records have no TTL; they persist until the next overwrite.
type RedisStore struct {
	Client *redis.Client
}

var _ application.PortfolioStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(ctx context.Context, userID string) (domain.Holdings, error) {
	data, err := s.Client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Holdings{}, application.ErrNotFound
	}
	if err != nil {
		return domain.Holdings{}, fmt.Errorf("redis store: get: %w", err)
	}
	var h domain.Holdings
	if err := json.Unmarshal(data, &h); err != nil {
		return domain.Holdings{}, fmt.Errorf("redis store: decode: %w", err)
	}
	return h, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, h domain.Holdings) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("redis store: encode: %w", err)
	}
	if err := s.Client.Set(ctx, redisKeyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("redis store: set: %w", err)
	}
	return nil
}
