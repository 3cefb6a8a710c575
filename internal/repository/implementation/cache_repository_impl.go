package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"yoloeats-be/internal/pkg/cachestore"
	"yoloeats-be/internal/repository/contract"
)

type CacheRepositoryImpl struct {
	client *redis.Client
}

func NewCacheRepository(client *redis.Client) contract.CacheRepository {
	return &CacheRepositoryImpl{client: client}
}

// Get translates redis.Nil into cachestore.ErrCacheMiss so the cache-aside
// layer can tell an absent key apart from a broken transport.
func (r *CacheRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", cachestore.ErrCacheMiss
		}
		return "", err
	}
	return value, nil
}

func (r *CacheRepositoryImpl) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *CacheRepositoryImpl) Delete(ctx context.Context, keys ...string) (int64, error) {
	return r.client.Del(ctx, keys...).Result()
}
