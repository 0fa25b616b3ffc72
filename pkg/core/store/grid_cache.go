// Package store provides explicit caches that sit outside the pure
// calculation engine.
package store

import (
	"sync"

	"land_valuation/pkg/core/valuation"
)

// GridKey identifies a sensitivity grid. The key is exactly the 4-tuple the
// grid depends on; it must never include mutable global state.
type GridKey struct {
	LandArea         float64
	FloorFactor      float64
	MarketPrice      float64
	ConstructionCost float64
}

// GridCache memoizes BuildGrid results so interactive callers don't recompute
// an unchanged grid. Safe for concurrent use. Entries are tiny (24 floats),
// so there is no eviction.
type GridCache struct {
	mu      sync.RWMutex
	entries map[GridKey]valuation.Matrix
}

func NewGridCache() *GridCache {
	return &GridCache{entries: make(map[GridKey]valuation.Matrix)}
}

// Get returns the cached matrix for key, if present. Callers must treat the
// returned matrix as read-only.
func (c *GridCache) Get(key GridKey) (valuation.Matrix, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[key]
	return m, ok
}

// Put stores a matrix under key, replacing any previous entry.
func (c *GridCache) Put(key GridKey, m valuation.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = m
}

// GetOrBuild returns the cached matrix for key, building and caching it on a
// miss. The second return reports whether this was a cache hit.
func (c *GridCache) GetOrBuild(key GridKey) (valuation.Matrix, bool) {
	if m, ok := c.Get(key); ok {
		return m, true
	}
	m := valuation.BuildGrid(key.LandArea, key.FloorFactor, key.MarketPrice, key.ConstructionCost)
	c.Put(key, m)
	return m, false
}

// Len reports the number of cached grids.
func (c *GridCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge drops all cached grids.
func (c *GridCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[GridKey]valuation.Matrix)
}
