// Package cache provides a size-bounded LRU with per-entry expiry.
// Each owner creates its own instance; there is no process-wide cache.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTL[K comparable, V any] struct {
	items *lru.Cache[K, entry[V]]
	ttl   time.Duration
	now   func() time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewTTL[K comparable, V any](size int, ttl time.Duration, opts ...Option) (*TTL[K, V], error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if size <= 0 {
		size = 1024
	}
	items, err := lru.New[K, entry[V]](size)
	if err != nil {
		return nil, err
	}
	return &TTL[K, V]{items: items, ttl: ttl, now: o.now}, nil
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	var zero V
	e, ok := c.items.Get(key)
	if !ok {
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		c.items.Remove(key)
		return zero, false
	}
	return e.value, true
}

func (c *TTL[K, V]) Set(key K, value V) {
	c.items.Add(key, entry[V]{value: value, expiresAt: c.now().Add(c.ttl)})
}

func (c *TTL[K, V]) Delete(key K) {
	c.items.Remove(key)
}

func (c *TTL[K, V]) Len() int {
	return c.items.Len()
}
