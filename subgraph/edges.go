// File: edges.go
// Role: edge insertion and queries, plus nextEdgeID.
// Determinism:
//   - nextEdgeID is monotonic ("e" + decimal).
//   - Edges() returns edges in insertion order.

package subgraph

import "strconv"

const edgeIDPrefix = 'e'

// AddEdge links two existing vertices with the base that extends from into
// to and returns the edge ID. Only one edge is kept per ordered pair: adding
// the same pair again returns the existing ID.
//
// Complexity: O(1).
func (g *Subgraph) AddEdge(from, to string, base byte) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyKmer
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return "", ErrVertexNotFound
	}
	if eid, ok := g.out[from][to]; ok {
		return eid, nil
	}

	eid := g.newEdgeID()
	g.edges[eid] = Edge{ID: eid, From: from, To: to, Base: base}
	g.order = append(g.order, eid)
	link(g.out, from, to, eid)
	link(g.in, to, from, eid)

	return eid, nil
}

// HasEdge reports whether an edge from -> to exists.
func (g *Subgraph) HasEdge(from, to string) bool {
	_, ok := g.out[from][to]

	return ok
}

// Edge returns the edge with the given ID.
func (g *Subgraph) Edge(eid string) (Edge, error) {
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the edge from -> to.
func (g *Subgraph) EdgeBetween(from, to string) (Edge, error) {
	eid, ok := g.out[from][to]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns all edges in insertion order.
func (g *Subgraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.order))
	for _, eid := range g.order {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Subgraph) EdgeCount() int { return len(g.edges) }

// newEdgeID returns the next "e<N>" identifier without fmt.
func (g *Subgraph) newEdgeID() string {
	g.nextEdgeID++
	var buf [21]byte
	b := append(buf[:0], edgeIDPrefix)
	b = strconv.AppendUint(b, g.nextEdgeID, 10)

	return string(b)
}

func link(adj map[string]map[string]string, a, b, eid string) {
	inner, ok := adj[a]
	if !ok {
		inner = make(map[string]string)
		adj[a] = inner
	}
	inner[b] = eid
}
