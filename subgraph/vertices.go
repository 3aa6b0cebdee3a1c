package subgraph

import "sort"

// AddVertex inserts v. Adding a k-mer that is already present is a no-op:
// the first record seen for it is kept.
//
// Complexity: O(1).
func (g *Subgraph) AddVertex(v Vertex) error {
	if v.Kmer == "" {
		return ErrEmptyKmer
	}
	if _, ok := g.vertices[v.Kmer]; ok {
		return nil
	}
	g.vertices[v.Kmer] = v

	return nil
}

// HasVertex reports whether the oriented k-mer is present.
func (g *Subgraph) HasVertex(kmer string) bool {
	_, ok := g.vertices[kmer]

	return ok
}

// Vertex returns the vertex for an oriented k-mer.
func (g *Subgraph) Vertex(kmer string) (Vertex, error) {
	v, ok := g.vertices[kmer]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertices sorted by k-mer string.
//
// Complexity: O(V log V).
func (g *Subgraph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kmer < out[j].Kmer })

	return out
}

// Order returns the number of vertices.
func (g *Subgraph) Order() int { return len(g.vertices) }

// Successors returns the k-mers reachable by one outgoing edge, sorted.
func (g *Subgraph) Successors(kmer string) ([]string, error) {
	if !g.HasVertex(kmer) {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.out[kmer]), nil
}

// Predecessors returns the k-mers with an edge into kmer, sorted.
func (g *Subgraph) Predecessors(kmer string) ([]string, error) {
	if !g.HasVertex(kmer) {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.in[kmer]), nil
}

// OutDegree returns the number of outgoing edges of kmer.
func (g *Subgraph) OutDegree(kmer string) int { return len(g.out[kmer]) }

// InDegree returns the number of incoming edges of kmer.
func (g *Subgraph) InDegree(kmer string) int { return len(g.in[kmer]) }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
