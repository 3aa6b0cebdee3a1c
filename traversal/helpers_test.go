package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
	"github.com/katalvlaran/cortexgraph/subgraph"
)

// memGraph is an in-memory traversal.Graph.
type memGraph struct {
	k       int
	colors  int
	records map[string]record.Record
	lookups int
}

func (g *memGraph) KmerSize() int  { return g.k }
func (g *memGraph) NumColors() int { return g.colors }

func (g *memGraph) FindRecord(k kmer.Kmer) (record.Record, bool, error) {
	g.lookups++
	r, ok := g.records[k.Key()]

	return r, ok, nil
}

type kmerAcc struct {
	cov   []uint32
	edges []byte
}

// buildGraph returns the graph of every k-mer in seqs, where seqs[c] are the
// sequences of color c. Coverage counts occurrences; edges follow each
// sequence on both strands.
func buildGraph(t *testing.T, k int, seqs ...[]string) *memGraph {
	t.Helper()
	acc := make(map[string]*kmerAcc)
	for c, list := range seqs {
		for _, seq := range list {
			for i := 0; i+k <= len(seq); i++ {
				s := seq[i : i+k]
				km, err := kmer.Canonicalize(s)
				require.NoError(t, err)

				var pred, succ []byte
				if i > 0 {
					pred = []byte{seq[i-1]}
				}
				if i+k < len(seq) {
					succ = []byte{seq[i+k]}
				}
				if km.Flipped {
					pred, succ = complement(succ), complement(pred)
				}

				a, ok := acc[km.Key()]
				if !ok {
					a = &kmerAcc{cov: make([]uint32, len(seqs)), edges: make([]byte, len(seqs))}
					acc[km.Key()] = a
				}
				a.cov[c]++
				a.edges[c] |= record.EdgeCode(succ, pred)
			}
		}
	}

	g := &memGraph{k: k, colors: len(seqs), records: make(map[string]record.Record, len(acc))}
	for key, a := range acc {
		r, err := record.New([]byte(key), a.cov, a.edges)
		require.NoError(t, err)
		g.records[key] = r
	}

	return g
}

func complement(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = kmer.Complement(b[i])
	}

	return out
}

// scenarioGraph is the two-color k=3 graph: AAA(1,0) -T-> AAT(1,1) -C-> ATC(0,1),
// where color 0 has no edge out of AAT.
func scenarioGraph(t *testing.T) *memGraph {
	t.Helper()
	g := &memGraph{k: 3, colors: 2, records: map[string]record.Record{}}
	add := func(s string, cov []uint32, edges []byte) {
		r, err := record.FromString(s, cov, edges)
		require.NoError(t, err)
		g.records[r.Key()] = r
	}
	add("AAA", []uint32{1, 0}, []byte{record.EdgeCode([]byte("T"), nil), 0})
	add("AAT", []uint32{1, 1}, []byte{
		record.EdgeCode(nil, []byte("A")),
		record.EdgeCode([]byte("C"), []byte("A")),
	})
	add("ATC", []uint32{0, 1}, []byte{0, record.EdgeCode(nil, []byte("A"))})

	return g
}

// kmers lists the vertex k-mers of sg in sorted order.
func kmers(sg *subgraph.Subgraph) []string {
	var out []string
	for _, v := range sg.Vertices() {
		out = append(out, v.Kmer)
	}

	return out
}
