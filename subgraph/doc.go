// Package subgraph holds the local directed graph a traversal returns.
//
// Vertices are k-mers in the orientation the walk met them, each carrying the
// record that backs it; the same canonical k-mer reached on both strands is
// two vertices. Edges are single-base transitions: To equals From shifted left
// by one base with Edge.Base appended.
//
// Example:
//
//	sg := subgraph.New()
//	_ = sg.AddVertex(subgraph.Vertex{Kmer: "AAA", Record: r1})
//	_ = sg.AddVertex(subgraph.Vertex{Kmer: "AAT", Record: r2})
//	eid, _ := sg.AddEdge("AAA", "AAT", 'T') // "e1"
//
// Errors:
//
//	ErrEmptyKmer      - vertex k-mer is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//
// A Subgraph is not synchronized; it belongs to the traversal call that
// built it and then to its caller.
package subgraph
