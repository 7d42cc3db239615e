package distance

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/tracepad/internal/model"
)

// DefaultCacheSize is the entry bound used when none is configured.
const DefaultCacheSize = 1000

// Key identifies one memoized query. Path is the fingerprint of the queried
// path and Len its point count; two paths are treated as equal when both
// match.
type Key struct {
	Point model.Point
	Path  uint64
	Len   int
}

// Cache memoizes distance results. Implementations may drop entries at any
// time; results never depend on what is cached.
type Cache interface {
	Get(key Key) (float64, bool)
	Add(key Key, d float64)
	Purge()
	Len() int
}

// ClearingCache empties itself wholesale once it grows past its bound.
type ClearingCache struct {
	max     int
	entries map[Key]float64
}

// NewClearingCache returns a ClearingCache holding at most max entries before
// it is cleared.
func NewClearingCache(max int) *ClearingCache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &ClearingCache{max: max, entries: make(map[Key]float64)}
}

// Get implements Cache.
func (c *ClearingCache) Get(key Key) (float64, bool) {
	d, ok := c.entries[key]
	return d, ok
}

// Add implements Cache.
func (c *ClearingCache) Add(key Key, d float64) {
	if len(c.entries) > c.max {
		clear(c.entries)
	}
	c.entries[key] = d
}

// Purge implements Cache.
func (c *ClearingCache) Purge() {
	clear(c.entries)
}

// Len implements Cache.
func (c *ClearingCache) Len() int {
	return len(c.entries)
}

// LRUCache evicts the least recently used entry once full.
type LRUCache struct {
	inner *lru.Cache[Key, float64]
}

// NewLRUCache returns an LRU cache of the given size.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	inner, err := lru.New[Key, float64](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{inner: inner}, nil
}

// Get implements Cache.
func (c *LRUCache) Get(key Key) (float64, bool) {
	return c.inner.Get(key)
}

// Add implements Cache.
func (c *LRUCache) Add(key Key, d float64) {
	c.inner.Add(key, d)
}

// Purge implements Cache.
func (c *LRUCache) Purge() {
	c.inner.Purge()
}

// Len implements Cache.
func (c *LRUCache) Len() int {
	return c.inner.Len()
}

// NewCache builds a cache by policy name: "lru" or "clear" (default).
func NewCache(policy string, size int) (Cache, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "lru":
		return NewLRUCache(size)
	case "", "clear":
		return NewClearingCache(size), nil
	case "none", "off":
		return nil, nil
	default:
		return NewClearingCache(size), nil
	}
}

// Fingerprint hashes the coordinates of a path with 64-bit FNV-1a. Cache keys
// pair it with the path length, so a stale hit needs a hash collision between
// equally long paths.
func Fingerprint(path model.Path) uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for _, p := range path {
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
