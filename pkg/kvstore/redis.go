package kvstore

import (
	"context"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/waypace/waypace/pkg/redis_client"
)

// RedisStore persists shared state in Redis via gocache. The default
// expiration keeps abandoned keys from accumulating; writers can override it
// per key.
type RedisStore struct {
	cache *cache.Cache[string]
}

func NewRedisStore(defaultExpiration time.Duration) *RedisStore {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(defaultExpiration))

	return &RedisStore{
		cache: cache.New[string](redisStore),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return "", ErrNotFound
		}

		return "", err
	}

	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if expiration == 0 {
		return s.cache.Set(ctx, key, value)
	}

	return s.cache.Set(ctx, key, value, store.WithExpiration(expiration))
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, key)
}
