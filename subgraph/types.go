// File: types.go
// Role: Vertex, Edge and Subgraph declarations, sentinel errors, constructor.
// Determinism:
//   - Vertices() is sorted by k-mer string; Edges() is in insertion order.
//   - Edge IDs are "e1", "e2", ... in insertion order.

package subgraph

import (
	"errors"

	"github.com/katalvlaran/cortexgraph/record"
)

// Sentinel errors for subgraph operations.
var (
	// ErrEmptyKmer indicates a vertex without a k-mer string.
	ErrEmptyKmer = errors.New("subgraph: vertex k-mer is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("subgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("subgraph: edge not found")
)

// Vertex is a k-mer in the orientation the walk met it, with the record
// backing it. Two vertices are the same vertex when their oriented k-mer
// strings match; Equal additionally compares the records.
type Vertex struct {
	Kmer   string
	Record record.Record
}

// Equal reports value equality of orientation, k-mer and record.
func (v Vertex) Equal(o Vertex) bool {
	return v.Kmer == o.Kmer && v.Record.Equal(o.Record)
}

// Last returns the final base of the oriented k-mer.
func (v Vertex) Last() byte {
	return v.Kmer[len(v.Kmer)-1]
}

// Edge is a single-base transition From -> To: To is From shifted left by
// one base with Base appended.
type Edge struct {
	ID   string
	From string
	To   string
	Base byte
}

// Subgraph is a small directed graph built by one traversal call. It is not
// synchronized: the call that builds it owns it until it is returned.
type Subgraph struct {
	vertices map[string]Vertex
	edges    map[string]Edge
	order    []string // edge IDs, insertion order

	// out[from][to] and in[to][from] hold the edge ID linking the pair.
	out map[string]map[string]string
	in  map[string]map[string]string

	nextEdgeID uint64
}

// New returns an empty Subgraph.
func New() *Subgraph {
	return &Subgraph{
		vertices: make(map[string]Vertex),
		edges:    make(map[string]Edge),
		out:      make(map[string]map[string]string),
		in:       make(map[string]map[string]string),
	}
}
