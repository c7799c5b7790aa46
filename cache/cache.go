// Package cache memoizes solve results keyed by puzzle hash, so repeated
// puzzles in a batch are solved once. The solver itself is stateless; the
// cache sits in front of it.
package cache

import (
	"crypto/sha256"
	"sync"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

// Cache stores solve results keyed by a hash of the puzzle string.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]solver.Result
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// New creates a cache with the specified maximum size. When the cache is
// full, an arbitrary entry is evicted. Set maxSize to 0 for an unbounded
// cache.
func New(maxSize int) *Cache {
	return &Cache{
		entries: make(map[string]solver.Result),
		maxSize: maxSize,
	}
}

// hashGrid creates a deterministic key for a puzzle.
func hashGrid(g grid.Grid) string {
	h := sha256.Sum256([]byte(g.String()))
	return string(h[:])
}

// Get retrieves a cached result for the given puzzle.
func (c *Cache) Get(g grid.Grid) (solver.Result, bool) {
	key := hashGrid(g)

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.entries[key]; ok {
		c.hits++
		return res, true
	}
	c.misses++
	return solver.Result{}, false
}

// Put stores a result.
func (c *Cache) Put(g grid.Grid, res solver.Result) {
	key := hashGrid(g)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			c.evictions++
			break
		}
	}

	c.entries[key] = res
}

// GetOrCompute retrieves from the cache or computes and caches the result.
func (c *Cache) GetOrCompute(g grid.Grid, compute func() solver.Result) solver.Result {
	if res, ok := c.Get(g); ok {
		return res
	}

	res := compute()
	c.Put(g, res)
	return res
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]solver.Result)
}

// Size returns the current number of cached entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats holds cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}

// CachedSolver wraps the solver with a result cache.
type CachedSolver struct {
	cache *Cache
}

// NewCachedSolver creates a solver with built-in caching.
func NewCachedSolver(cacheSize int) *CachedSolver {
	return &CachedSolver{cache: New(cacheSize)}
}

// Solve solves a puzzle, reusing a cached result when the same puzzle was
// seen before. Results are deterministic, so a cache hit is
// indistinguishable from a fresh solve.
func (cs *CachedSolver) Solve(g grid.Grid) solver.Result {
	return cs.cache.GetOrCompute(g, func() solver.Result {
		return solver.Solve(g)
	})
}

// Cache returns the underlying cache for inspection.
func (cs *CachedSolver) Cache() *Cache {
	return cs.cache
}
