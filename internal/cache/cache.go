package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"cardapio-be/internal/logger"
	"cardapio-be/internal/metrics"

	"go.uber.org/zap"
)

// Entities with cached lists.
const (
	EntityBusiness = "business"
	EntityCategory = "category"
	EntityProduct  = "product"
	EntityOrder    = "order"
	EntityDriver   = "driver"
	EntityCoupon   = "coupon"
)

// Cache keeps list reads as encoded JSON, so callers never share the cached value.
type Cache struct {
	data   map[string][]byte
	expiry map[string]time.Time
	gen    map[string]uint64 // bumped per entity on every invalidation
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time

	hits   *metrics.Counter
	misses *metrics.Counter
	evicts *metrics.Counter
}

// New returns a cache whose entries live for ttl. A ttl <= 0 disables caching.
func New(ttl time.Duration, reg *metrics.Registry) *Cache {
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Cache{
		data:   make(map[string][]byte),
		expiry: make(map[string]time.Time),
		gen:    make(map[string]uint64),
		ttl:    ttl,
		now:    time.Now,
		hits:   reg.Counter("cache_hits"),
		misses: reg.Counter("cache_misses"),
		evicts: reg.Counter("cache_invalidations"),
	}
}

func Key(entity, parentID string) string {
	return entity + ":" + parentID
}

func (c *Cache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, exists := c.data[key]
	if !exists {
		return nil, false
	}
	if c.now().After(c.expiry[key]) {
		delete(c.data, key)
		delete(c.expiry, key)
		return nil, false
	}
	return data, true
}

func (c *Cache) generation(entity string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[entity]
}

// set stores data unless entity was invalidated after the load began at gen.
func (c *Cache) set(entity, key string, gen uint64, data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen[entity] != gen {
		return false
	}
	c.data[key] = data
	c.expiry[key] = c.now().Add(c.ttl)
	return true
}

// InvalidateEntity drops every cached list of entity, whatever the parent.
func (c *Cache) InvalidateEntity(ctx context.Context, entity string) {
	if c == nil {
		return
	}
	prefix := entity + ":"

	c.mu.Lock()
	c.gen[entity]++
	removed := 0
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
			delete(c.expiry, key)
			removed++
		}
	}
	c.mu.Unlock()

	c.evicts.Inc()
	logger.FromCtx(ctx).Debug("cache invalidated",
		zap.String("entity", entity),
		zap.Int("removed", removed),
	)
}

// Len counts live and expired entries not yet evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// GetOrLoad serves entity:parentID from the cache, calling load on a miss.
// Load errors are returned as-is and never cached.
func GetOrLoad[T any](ctx context.Context, c *Cache, entity, parentID string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.ttl <= 0 {
		return load(ctx)
	}

	key := Key(entity, parentID)
	if data, ok := c.get(key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			c.hits.Inc()
			return v, nil
		}
	}
	c.misses.Inc()

	gen := c.generation(entity)
	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.FromCtx(ctx).Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	if !c.set(entity, key, gen, data) {
		logger.FromCtx(ctx).Debug("cache store skipped, invalidated during load", zap.String("key", key))
	}
	return v, nil
}
