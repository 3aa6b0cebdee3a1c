package subgraph

// Clone returns an independent copy with the same vertices, edges and edge
// IDs. Records are immutable values and are shared.
//
// Complexity: O(V + E).
func (g *Subgraph) Clone() *Subgraph {
	c := New()
	c.nextEdgeID = g.nextEdgeID
	for k, v := range g.vertices {
		c.vertices[k] = v
	}
	for _, eid := range g.order {
		e := g.edges[eid]
		c.edges[eid] = e
		c.order = append(c.order, eid)
		link(c.out, e.From, e.To, eid)
		link(c.in, e.To, e.From, eid)
	}

	return c
}

// Merge adds every vertex and edge of o to g. Vertices already in g keep
// their record; edges between pairs already linked are not duplicated and
// new edges receive fresh IDs in g.
//
// Complexity: O(V + E) of o.
func (g *Subgraph) Merge(o *Subgraph) {
	for _, v := range o.vertices {
		_ = g.AddVertex(v)
	}
	for _, eid := range o.order {
		e := o.edges[eid]
		_, _ = g.AddEdge(e.From, e.To, e.Base)
	}
}

// Clear removes all vertices and edges and restarts edge numbering.
func (g *Subgraph) Clear() {
	*g = *New()
}
