package traversal

import (
	"fmt"

	"github.com/katalvlaran/cortexgraph/subgraph"
)

// dfsWalker holds the state of one DFS call.
type dfsWalker struct {
	e        *Engine
	forward  bool
	visited  map[string]bool // oriented k-mer
	accepted map[string]bool // vertices inside an accepted branch
	explored *subgraph.Subgraph
	maxDepth int
}

// DFS explores every branch from seed. Each branch gets its own fork of the
// policy, so counters are per path. Branches the policy accepts are merged,
// with the edges that reach them, into the result subgraph; a branch that
// runs into a vertex already inside an accepted branch is accepted as well,
// which is how bubbles close.
//
// If the seed itself is not accepted, Result.Subgraph holds everything
// explored. Direction Both explores backward, then forward, and joins the
// two results as Walk does.
func (e *Engine) DFS(seed string) (*Result, error) {
	v, err := e.seedVertex(seed)
	if err != nil {
		return nil, err
	}

	switch e.opts.Direction {
	case Forward:
		return e.dfs(v, true)
	case Backward:
		return e.dfs(v, false)
	}

	back, err := e.dfs(v, false)
	if err != nil {
		return nil, err
	}
	fwd, err := e.dfs(v, true)
	if err != nil {
		return nil, err
	}
	res := join(back, fwd, nil)
	res.Depth = max(back.Depth, fwd.Depth)

	return res, nil
}

func (e *Engine) dfs(seed subgraph.Vertex, forward bool) (*Result, error) {
	w := &dfsWalker{
		e:        e,
		forward:  forward,
		visited:  make(map[string]bool),
		accepted: make(map[string]bool),
		explored: subgraph.New(),
	}
	_ = w.explored.AddVertex(seed)

	out, branch, err := w.traverse(seed, 0, e.template.fork())
	if err != nil {
		return nil, err
	}

	res := &Result{Subgraph: w.explored, Outcome: out, Depth: w.maxDepth}
	if out == Accepted {
		res.Subgraph = branch
	}

	return res, nil
}

// traverse visits v and returns its outcome and, when accepted, the accepted
// subgraph rooted at v.
func (w *dfsWalker) traverse(v subgraph.Vertex, depth int, s Stopper) (Outcome, *subgraph.Subgraph, error) {
	w.visited[v.Kmer] = true
	w.maxDepth = max(w.maxDepth, depth)

	if w.e.opts.OnVisit != nil {
		if err := w.e.opts.OnVisit(v, depth); err != nil {
			return Incomplete, nil, fmt.Errorf("traversal: OnVisit hook for %q: %w", v.Kmer, err)
		}
	}

	cands, err := w.e.neighbors(v, w.forward)
	if err != nil {
		return Incomplete, nil, err
	}
	seen := len(cands) > 0
	for _, c := range cands {
		seen = seen && w.visited[c.Kmer]
	}

	st := w.e.state(v, w.forward, depth, len(w.visited), cands, seen, w.explored)
	verdict, err := Evaluate(s, st)
	if err != nil {
		return Incomplete, nil, err
	}
	switch verdict {
	case Reject:
		return Rejected, nil, nil
	case Accept:
		w.accepted[v.Kmer] = true
		return Accepted, single(v), nil
	}

	branch := single(v)
	ok, rejected, tried := false, 0, 0
	for _, c := range cands {
		if w.visited[c.Kmer] {
			if w.accepted[c.Kmer] {
				_ = branch.AddVertex(c)
				if err = addEdge(branch, v, c, w.forward); err != nil {
					return Incomplete, nil, err
				}
				ok = true
			}
			continue
		}

		_ = w.explored.AddVertex(c)
		if err = addEdge(w.explored, v, c, w.forward); err != nil {
			return Incomplete, nil, err
		}

		tried++
		out, child, err := w.traverse(c, depth+1, s.fork())
		if err != nil {
			return Incomplete, nil, err
		}
		switch out {
		case Accepted:
			branch.Merge(child)
			if err = addEdge(branch, v, c, w.forward); err != nil {
				return Incomplete, nil, err
			}
			ok = true
		case Rejected:
			rejected++
		}
	}

	switch {
	case ok:
		w.accepted[v.Kmer] = true
		return Accepted, branch, nil
	case tried > 0 && rejected == tried:
		return Rejected, nil, nil
	}

	return Incomplete, nil, nil
}

func single(v subgraph.Vertex) *subgraph.Subgraph {
	sg := subgraph.New()
	_ = sg.AddVertex(v)

	return sg
}
