package graphfile

import (
	"github.com/golang/groupcache/lru"

	"github.com/katalvlaran/cortexgraph/record"
)

// keyKind tags which lookup path produced a cache key.
type keyKind uint8

const (
	byIndex keyKind = iota
	byKmer
)

// cacheKey is one key space for both lookup paths, so index-keyed and
// k-mer-keyed entries share a single eviction budget.
type cacheKey struct {
	kind  keyKind
	index int64
	kmer  string
}

// CacheStats reports decode cache activity for diagnostics.
type CacheStats struct {
	IndexHits uint64
	KmerHits  uint64
	Misses    uint64
	Entries   int
}

// recordCache memoizes decoded records. It is not synchronized; a Graph is
// used from one goroutine at a time.
type recordCache struct {
	lru   *lru.Cache
	stats CacheStats
}

func newRecordCache(capacity int) *recordCache {
	return &recordCache{lru: lru.New(capacity)}
}

func (c *recordCache) index(i int64) (record.Record, bool) {
	if v, ok := c.lru.Get(cacheKey{kind: byIndex, index: i}); ok {
		c.stats.IndexHits++
		return v.(record.Record), true
	}
	c.stats.Misses++

	return record.Record{}, false
}

func (c *recordCache) kmer(key string) (record.Record, bool) {
	if v, ok := c.lru.Get(cacheKey{kind: byKmer, kmer: key}); ok {
		c.stats.KmerHits++
		return v.(record.Record), true
	}
	c.stats.Misses++

	return record.Record{}, false
}

func (c *recordCache) add(i int64, r record.Record) {
	c.lru.Add(cacheKey{kind: byIndex, index: i}, r)
	c.lru.Add(cacheKey{kind: byKmer, kmer: r.Key()}, r)
}

func (c *recordCache) snapshot() CacheStats {
	s := c.stats
	s.Entries = c.lru.Len()

	return s
}

func (c *recordCache) clear() {
	c.lru.Clear()
}
