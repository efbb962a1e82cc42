// Package cache is a size-bounded in-process cache whose entries expire.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// InMemoryCache keeps encoded values in an expirable LRU.
type InMemoryCache struct {
	lru *expirable.LRU[string, []byte]
}

func NewInMemoryCache(size int, ttl time.Duration) *InMemoryCache {
	if size <= 0 {
		size = 1024
	}
	return &InMemoryCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *InMemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	return c.lru.Get(key)
}

func (c *InMemoryCache) Set(_ context.Context, key string, value []byte) {
	c.lru.Add(key, value)
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.lru.Remove(key)
}

// Len reports the number of live entries.
func (c *InMemoryCache) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *InMemoryCache) Purge() {
	c.lru.Purge()
}
