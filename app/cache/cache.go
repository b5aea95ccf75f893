// Package cache keeps fetched collections for a stale time and lets writers
// invalidate them by key prefix.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultStaleTime = 5 * time.Minute
	GoalsStaleTime   = 2 * time.Minute
)

func GoalsPrefix(userID string) string {
	return "goals/" + userID + "/"
}

func GoalsKey(userID string) string {
	return GoalsPrefix(userID) + "list"
}

func ChallengesPrefix(userID string) string {
	return "challenges/" + userID + "/"
}

func ChallengesKey(userID string) string {
	return ChallengesPrefix(userID) + "mine"
}

type entry struct {
	value     any
	fetchedAt time.Time
	staleTime time.Duration
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Fetch returns the cached value for key while it is fresh. Otherwise fn runs,
// retried once on error, and its result replaces the entry. Concurrent
// fetches of one key share a single call.
func Fetch[T any](ctx context.Context, c *Cache, key string, staleTime time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	if value, ok := c.lookup(key); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil && ctx.Err() == nil {
			value, err = fn(ctx)
		}
		if err != nil {
			return nil, err
		}
		c.store(key, value, staleTime)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: entry %s holds %T", key, result)
	}
	return typed, nil
}

func (c *Cache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= e.staleTime {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key string, value any, staleTime time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, fetchedAt: c.now(), staleTime: staleTime}
	c.mu.Unlock()
}

// Invalidate drops every entry whose key starts with one of prefixes.
func (c *Cache) Invalidate(prefixes ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				dropped++
				break
			}
		}
	}
	return dropped
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
