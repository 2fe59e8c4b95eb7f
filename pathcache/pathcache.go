// Package pathcache memoizes (start, goal) PathResults with a TTL and a
// bounded size, evicting the least-used entry (the oldest among equal hit
// counts) on overflow.
package pathcache

import (
	"sync"
	"time"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/pathcore"
)

type key[N comparable] struct {
	start, goal N
}

type entry[N comparable] struct {
	result  pathcore.PathResult[N]
	created time.Time
	hits    uint32
}

// Cache memoizes search results keyed by (start, goal). Safe for
// concurrent use: reads and writes are guarded by a single RWMutex, since
// get/insert/evict all touch the same underlying map.
type Cache[N comparable] struct {
	mu         sync.RWMutex
	entries    map[key[N]]*entry[N]
	maxEntries int
	maxAge     time.Duration
}

// New creates a cache holding at most maxEntries entries, each valid for
// maxAge before being treated as a miss.
func New[N comparable](maxEntries int, maxAge time.Duration) *Cache[N] {
	return &Cache[N]{
		entries:    make(map[key[N]]*entry[N]),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// Get returns the cached result for (start, goal) and true if present and
// not yet expired, bumping its hit counter. A miss (absent or expired)
// returns the zero PathResult and false.
func (c *Cache[N]) Get(start, goal N) (pathcore.PathResult[N], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key[N]{start, goal}]
	if !ok || time.Since(e.created) >= c.maxAge {
		return pathcore.PathResult[N]{}, false
	}
	e.hits++

	return e.result, true
}

// Insert stores result under (start, goal). Non-Found results are ignored:
// only successful searches are worth memoizing. If the cache is already at
// capacity, one entry is evicted first.
func (c *Cache[N]) Insert(start, goal N, result pathcore.PathResult[N]) {
	if result.Status != pathcore.Found {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictOneLocked()
	}
	c.entries[key[N]{start, goal}] = &entry[N]{result: result, created: time.Now()}
}

// evictOneLocked removes the entry with the smallest (hits, created)
// tuple, i.e. the least-used, then-oldest entry. Caller must hold c.mu.
func (c *Cache[N]) evictOneLocked() {
	var victim key[N]
	var victimEntry *entry[N]
	for k, e := range c.entries {
		if victimEntry == nil ||
			e.hits < victimEntry.hits ||
			(e.hits == victimEntry.hits && e.created.Before(victimEntry.created)) {
			victim, victimEntry = k, e
		}
	}
	if victimEntry != nil {
		delete(c.entries, victim)
	}
}

// InvalidateRegion drops every entry whose start, goal, or any path node
// satisfies predicate.
func (c *Cache[N]) InvalidateRegion(predicate func(N) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if predicate(k.start) || predicate(k.goal) {
			delete(c.entries, k)
			continue
		}
		for _, n := range e.result.Path {
			if predicate(n) {
				delete(c.entries, k)
				break
			}
		}
	}
}

// Clear removes every entry.
func (c *Cache[N]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[key[N]]*entry[N])
}

// Len returns the number of entries currently stored, expired or not.
func (c *Cache[N]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// AStarWithCache runs astar.Search, but returns a cached result when one
// is fresh, and inserts a Found result back into cache for future calls.
func AStarWithCache[N comparable](
	graph pathcore.Graph[N],
	heuristic pathcore.Heuristic[N],
	start, goal N,
	cache *Cache[N],
	opts ...astar.Option,
) pathcore.PathResult[N] {
	if hit, ok := cache.Get(start, goal); ok {
		return hit
	}

	result := astar.Search[N](graph, heuristic, start, goal, opts...)
	cache.Insert(start, goal, result)

	return result
}
