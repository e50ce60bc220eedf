// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"runtime"
	"sync"
	"weak"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// Inputs below both thresholds are cheaper to recompute than to
	// look up, so they bypass the cache.
	bypassLength   = 1000
	bypassSegments = 100

	// maxCountsPerSource bounds how many distinct segment counts are
	// kept per source. The oldest inserted entry is evicted first.
	maxCountsPerSource = 20

	// maxSources bounds the number of live sources tracked at once.
	maxSources = 64
)

// Cache memoizes Reduce results per (source identity, segment count).
//
// Identity is the *Sequence pointer: sequences with equal values are
// still distinct entries. A hit returns the identical slice computed
// before, so consumers can compare by reference to skip downstream
// work.
//
// Entries do not keep their source alive. The key holds the Sequence
// weakly, and a GC cleanup drops the source's entries once the Sequence
// becomes unreachable. Live sources are additionally bounded by an LRU,
// and each source keeps at most 20 segment counts with insertion-order
// eviction.
//
// Small inputs (length below 1000 and segment count below 100) bypass
// the cache entirely.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mtx     sync.Mutex
	sources *lru.Cache[weak.Pointer[Sequence], *sourceEntry]
}

// sourceEntry holds the reductions cached for a single source sequence.
type sourceEntry struct {
	order   []int             // segment counts in insertion order
	results map[int][]float64 // segment count -> reduced values
	cleanup runtime.Cleanup
}

// NewCache returns an empty reduction cache.
func NewCache() *Cache {
	sources, err := lru.New[weak.Pointer[Sequence], *sourceEntry](maxSources)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	return &Cache{sources: sources}
}

// Reduced returns Reduce(segments, src), memoized when caching applies.
func (c *Cache) Reduced(segments int, src *Sequence) []float64 {
	if src == nil || (src.Len() < bypassLength && segments < bypassSegments) {
		return Reduce(segments, src)
	}

	key := weak.Make(src)

	c.mtx.Lock()
	entry, ok := c.sources.Get(key)
	if !ok {
		entry = &sourceEntry{results: make(map[int][]float64)}
		entry.cleanup = runtime.AddCleanup(src, c.drop, key)
		c.sources.Add(key, entry)
	}

	if reduced, hit := entry.results[segments]; hit {
		c.mtx.Unlock()
		return reduced
	}
	c.mtx.Unlock()

	// Reduction over a large source is the expensive part; keep it
	// outside the lock.
	reduced := Reduce(segments, src)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	// A concurrent call may have filled the slot meanwhile. Keeping the
	// first stored slice preserves the reference identity of hits.
	if prior, hit := entry.results[segments]; hit {
		return prior
	}

	if len(entry.order) >= maxCountsPerSource {
		oldest := entry.order[0]
		entry.order = entry.order[1:]
		delete(entry.results, oldest)
	}

	entry.order = append(entry.order, segments)
	entry.results[segments] = reduced

	return reduced
}

// Invalidate drops every cached reduction for src. It is the manual hook
// for callers that replace a sequence's backing data while the Sequence
// is still reachable.
func (c *Cache) Invalidate(src *Sequence) {
	if src == nil {
		return
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	key := weak.Make(src)
	if entry, ok := c.sources.Get(key); ok {
		entry.cleanup.Stop()
		c.sources.Remove(key)
	}
}

// Len reports the number of source sequences currently tracked.
func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.sources.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.sources.Purge()
}

// drop is the GC cleanup hook for a collected source sequence.
func (c *Cache) drop(key weak.Pointer[Sequence]) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.sources.Remove(key)
}
