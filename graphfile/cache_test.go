package graphfile_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/record"
)

// TestCache_Transparent checks that results do not depend on cache capacity
// or on whether the cache is warm.
func TestCache_Transparent(t *testing.T) {
	recs, _ := randomRecords(t, rand.New(rand.NewSource(11)), K21, 2, NLarge)
	path := writeGraph(t, graphfile.NewHeader(K21, testColors(2)...), recs)

	for _, capacity := range []int{1, 2, 16, graphfile.DefaultCacheSize} {
		g := openGraph(t, path, graphfile.WithCacheSize(capacity))
		for pass := 0; pass < 2; pass++ {
			for i := len(recs) - 1; i >= 0; i -= 7 {
				got, found, err := g.FindRecord(recs[i].Kmer(K21))
				require.NoError(t, err)
				require.True(t, found)
				assert.True(t, recs[i].Equal(got), "capacity %d pass %d record %d", capacity, pass, i)

				at, err := g.RecordAt(int64(i))
				require.NoError(t, err)
				assert.True(t, recs[i].Equal(at))
			}
		}
		assert.LessOrEqual(t, g.CacheStats().Entries, capacity)
	}
}

func TestCache_Stats(t *testing.T) {
	recs, _ := randomRecords(t, rand.New(rand.NewSource(12)), K21, 1, NSmall)
	g := openGraph(t, writeGraph(t, graphfile.NewHeader(K21, testColors(1)...), recs))

	_, err := g.RecordAt(2)
	require.NoError(t, err)
	before := g.CacheStats()
	assert.Equal(t, uint64(0), before.IndexHits)
	assert.Equal(t, uint64(1), before.Misses)
	assert.Equal(t, 2, before.Entries, "one index key and one k-mer key")

	_, err = g.RecordAt(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), g.CacheStats().IndexHits)

	// A record decoded by index is then found by k-mer without a search.
	_, found, err := g.FindRecord(recs[2].Kmer(K21))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(1), g.CacheStats().KmerHits)
}

func TestCache_IterationFillsKmerKeys(t *testing.T) {
	recs, _ := randomRecords(t, rand.New(rand.NewSource(13)), K21, 1, NSmall)
	g := openGraph(t, writeGraph(t, graphfile.NewHeader(K21, testColors(1)...), recs))

	var seen []record.Record
	for rec, err := range g.All() {
		require.NoError(t, err)
		seen = append(seen, rec)
	}
	for _, rec := range seen {
		_, found, err := g.FindRecord(rec.Kmer(K21))
		require.NoError(t, err)
		require.True(t, found)
	}
	assert.Equal(t, uint64(NSmall), g.CacheStats().KmerHits)
}
