package algosht

import (
	"sort"
	"sync"
)

// WeightCache stores quadrature weight tables keyed by bandwidth.
//
// Tables are computed once and shared: callers must treat the returned
// slices as read-only. WeightCache is safe for concurrent use.
type WeightCache struct {
	mu      sync.RWMutex
	entries map[int][]float64
}

// NewWeightCache creates an empty weight cache.
func NewWeightCache() *WeightCache {
	return &WeightCache{entries: make(map[int][]float64)}
}

// DefaultWeights is the cache used by transformers created without one.
var DefaultWeights = NewWeightCache()

// Weights returns the weight table for bandwidth b, computing and storing
// it on first use.
func (c *WeightCache) Weights(b int) ([]float64, error) {
	if w, ok := c.Lookup(b); ok {
		return w, nil
	}

	w, err := MakeWeights(b)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have stored it first; keep a single table.
	if existing, ok := c.entries[b]; ok {
		return existing, nil
	}

	c.entries[b] = w

	return w, nil
}

// Lookup returns the stored table for b without computing it.
func (c *WeightCache) Lookup(b int) ([]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	w, ok := c.entries[b]

	return w, ok
}

// Bandwidths lists the cached bandwidths in ascending order.
func (c *WeightCache) Bandwidths() []int {
	c.mu.RLock()
	out := make([]int, 0, len(c.entries))
	for b := range c.entries {
		out = append(out, b)
	}
	c.mu.RUnlock()

	sort.Ints(out)

	return out
}

// Len returns the number of cached tables.
func (c *WeightCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear removes every cached table.
func (c *WeightCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int][]float64)
}
