// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/tounesna/internal/cache"
	"github.com/dangerclosesec/tounesna/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CacheService caches read-mostly records such as organization profiles.
// Values are stored JSON encoded so callers never share memory with the cache.
type CacheService struct {
	cache *cache.InMemoryCache
	group singleflight.Group
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL  time.Duration
	Size int
}

func NewCacheService(config CacheConfig) *CacheService {
	return &CacheService{
		cache: cache.NewInMemoryCache(config.Size, config.TTL),
	}
}

func organizationKey(id string) string {
	return "organization:" + id
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cache value: %w", err)
	}
	s.cache.Set(ctx, key, data)
	return nil
}

// Get decodes the cached value for key into result
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

// GetOrSet retrieves a value from cache or loads it with fetchFunc.
// Concurrent misses on the same key share one fetch.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetchFunc func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("getting from cache: %w", err)
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		value, err := fetchFunc()
		if err != nil {
			return nil, err
		}
		if err := s.Set(ctx, key, value); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling fetched value: %w", err)
	}
	return json.Unmarshal(data, result)
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Delete(ctx, key)
	return nil
}

// Close drops every cached entry
func (s *CacheService) Close() {
	s.cache.Purge()
}
