package graphfile_test

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
)

// Fixture sizes used across graphfile tests.
const (
	K3  = 3
	K21 = 21
	K47 = 47

	NSmall = 7
	NLarge = 300
)

// testColors returns n colors with distinct sample names.
func testColors(n int) []graphfile.ColorMetadata {
	colors := make([]graphfile.ColorMetadata, n)
	for i := range colors {
		colors[i] = graphfile.ColorMetadata{
			SampleName:     fmt.Sprintf("sample%d", i),
			MeanReadLength: uint32(100 + i),
			TotalSequence:  uint64(1_000_000 * (i + 1)),
			Cleaning: graphfile.Cleaning{
				TipClipped:          i%2 == 0,
				LowCovKmersRemoved:  true,
				LowCovKmerThreshold: uint32(i + 2),
			},
		}
	}

	return colors
}

func randomSeq(r *rand.Rand, k int) string {
	var sb strings.Builder
	for i := 0; i < k; i++ {
		sb.WriteByte(kmer.Bases[r.Intn(4)])
	}

	return sb.String()
}

// randomRecords returns n distinct canonical records sorted by packed k-mer,
// and the set of their keys.
func randomRecords(t *testing.T, r *rand.Rand, k, colors, n int) ([]record.Record, map[string]bool) {
	t.Helper()
	seen := make(map[string]bool, n)
	recs := make([]record.Record, 0, n)
	for len(recs) < n {
		c, err := kmer.Canonicalize(randomSeq(r, k))
		require.NoError(t, err)
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true

		cov := make([]uint32, colors)
		edges := make([]byte, colors)
		for i := range cov {
			cov[i] = uint32(r.Intn(50))
			edges[i] = byte(r.Intn(256))
		}
		rec, err := record.New(c.Packed, cov, edges)
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return record.Compare(recs[i], recs[j]) < 0 })

	return recs, seen
}

// writeGraph writes h and recs to a fresh file and returns its path.
func writeGraph(t *testing.T, h graphfile.Header, recs []record.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.ctx")
	w, err := graphfile.CreateWithHeader(path, h)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, w.Append(rec))
	}
	require.NoError(t, w.Close())

	return path
}

// openGraph opens path and registers Close with the test.
func openGraph(t *testing.T, path string, opts ...graphfile.Option) *graphfile.Graph {
	t.Helper()
	g, err := graphfile.Open(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })

	return g
}

// corrupt overwrites the bytes at off in path with b.
func corrupt(t *testing.T, path string, off int64, b []byte) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	_, err = f.WriteAt(b, off)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

// headerSize returns the encoded size of h.
func headerSize(t *testing.T, h graphfile.Header) int64 {
	t.Helper()
	b, err := h.MarshalBinary()
	require.NoError(t, err)

	return int64(len(b))
}
