// Package cachestore implements the cache-aside protocol shared by the
// services: reads check the cache and fall back to the system of record,
// writes invalidate instead of updating. Every cache failure downgrades to
// a miss or a warning; the backing store stays authoritative.
package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"yoloeats-be/internal/pkg/logger"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the key-value backend. Implementations return ErrCacheMiss for
// absent keys and real errors only for transport problems.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (int64, error)
}

// Store is a typed cache-aside wrapper for one entity kind.
type Store[T any] struct {
	cache  Cache
	logger logger.ILogger
	entity string
}

func New[T any](cache Cache, log logger.ILogger, entity string) *Store[T] {
	return &Store[T]{
		cache:  cache,
		logger: log,
		entity: entity,
	}
}

// Get returns the cached value for key, or false on any miss. Transport
// errors and undecodable entries count as misses so a broken cache never
// breaks reads.
func (s *Store[T]) Get(ctx context.Context, key string) (*T, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			CacheErrors.WithLabelValues(s.entity, "get").Inc()
			s.logger.Warn("cache_store", "Cache read failed, treating as miss", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		} else {
			CacheMisses.WithLabelValues(s.entity).Inc()
		}
		return nil, false
	}
	if raw == "" {
		CacheMisses.WithLabelValues(s.entity).Inc()
		return nil, false
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		CacheMisses.WithLabelValues(s.entity).Inc()
		s.logger.Warn("cache_store", "Failed to deserialize cached value, treating as miss", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}

	CacheHits.WithLabelValues(s.entity).Inc()
	return &value, true
}

// Put serializes value and writes it back with the given TTL. Failures are
// logged and swallowed; caching is advisory.
func (s *Store[T]) Put(ctx context.Context, key string, value *T, ttl time.Duration) {
	if value == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		CacheErrors.WithLabelValues(s.entity, "set").Inc()
		s.logger.Warn("cache_store", "Failed to serialize value for caching", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := s.cache.SetWithTTL(ctx, key, string(raw), ttl); err != nil {
		CacheErrors.WithLabelValues(s.entity, "set").Inc()
		s.logger.Warn("cache_store", "Cache write-back failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Invalidate removes every key that could reference a record after a write.
// It returns the number of keys removed; failures are logged, never
// surfaced, because the record in the store of truth is already correct.
func (s *Store[T]) Invalidate(ctx context.Context, keys ...string) int64 {
	if len(keys) == 0 {
		return 0
	}

	count, err := s.cache.Delete(ctx, keys...)
	if err != nil {
		CacheErrors.WithLabelValues(s.entity, "delete").Inc()
		s.logger.Warn("cache_store", "Cache invalidation failed", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
		return 0
	}

	s.logger.Debug("cache_store", "Invalidated cache keys", map[string]interface{}{
		"keys":  keys,
		"count": count,
	})
	return count
}

// GetOrLoad is the read-through path: cache first, then the loader against
// the system of record, then a best-effort write-back. Loader errors pass
// through untouched; nothing is cached for them.
func (s *Store[T]) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) (*T, error)) (*T, error) {
	if cached, ok := s.Get(ctx, key); ok {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.Put(ctx, key, value, ttl)
	return value, nil
}
