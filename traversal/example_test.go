package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
	"github.com/katalvlaran/cortexgraph/traversal"
)

// mapGraph is the smallest useful traversal.Graph.
type mapGraph map[string]record.Record

func (m mapGraph) KmerSize() int  { return 3 }
func (m mapGraph) NumColors() int { return 1 }
func (m mapGraph) FindRecord(k kmer.Kmer) (record.Record, bool, error) {
	r, ok := m[k.Key()]
	return r, ok, nil
}

// ExampleEngine_Walk assembles AAATC from three linked k-mers, starting in the
// middle.
func ExampleEngine_Walk() {
	g := mapGraph{}
	for _, row := range []struct {
		kmer    string
		out, in string
	}{
		{"AAA", "T", ""},
		{"AAT", "C", "A"},
		{"ATC", "", "A"},
	} {
		r, _ := record.FromString(row.kmer, []uint32{1}, []byte{record.EdgeCode([]byte(row.out), []byte(row.in))})
		g[r.Key()] = r
	}

	e, err := traversal.New(g, traversal.WithDirection(traversal.Both))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := e.Walk("AAT")
	fmt.Println(res.Outcome, res.Contig(), res.Subgraph.Order())
	// Output: accepted AAATC 3
}
