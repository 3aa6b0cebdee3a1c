package traversal

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
	"github.com/katalvlaran/cortexgraph/subgraph"
)

// Engine walks the implicit graph of a Graph. An Engine holds no per-call
// state, but it reads through the Graph, which is not safe for concurrent
// use; use one Engine per goroutine.
type Engine struct {
	g        Graph
	k        int
	opts     Options
	template Stopper
}

// New validates opts against g and returns an Engine.
func New(g Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NumColors()
	for _, c := range slices.Concat(o.TraversalColors, o.JoiningColors) {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: color %d outside [0,%d)", ErrOptionViolation, c, n)
		}
	}
	if o.ROI != nil && o.ROI.KmerSize() != g.KmerSize() {
		return nil, fmt.Errorf("%w: ROI graph k=%d, graph k=%d", ErrOptionViolation, o.ROI.KmerSize(), g.KmerSize())
	}

	s, err := NewStopper(o.Policy, o.Limits)
	if err != nil {
		return nil, err
	}

	return &Engine{g: g, k: g.KmerSize(), opts: o, template: s}, nil
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options {
	o := e.opts
	o.TraversalColors = slices.Clone(o.TraversalColors)
	o.JoiningColors = slices.Clone(o.JoiningColors)

	return o
}

// Walk extends a linear path from seed one vertex at a time while there is
// exactly one unvisited neighbor and the policy keeps going. With Direction
// Both it walks backward, then forward, and joins the two sides; the result
// is rejected if either side was, accepted if both were.
func (e *Engine) Walk(seed string) (*Result, error) {
	v, err := e.seedVertex(seed)
	if err != nil {
		return nil, err
	}

	switch e.opts.Direction {
	case Forward:
		return e.walk(v, true)
	case Backward:
		return e.walk(v, false)
	}

	back, err := e.walk(v, false)
	if err != nil {
		return nil, err
	}
	fwd, err := e.walk(v, true)
	if err != nil {
		return nil, err
	}

	return join(back, fwd, slices.Concat(back.Path[:len(back.Path)-1], fwd.Path)), nil
}

// Assemble walks both ways from seed under the Contig policy, keeping the
// engine's colors and limits, and returns the contig spelled by the path.
func (e *Engine) Assemble(seed string) (string, error) {
	s, err := NewStopper(Contig, e.opts.Limits)
	if err != nil {
		return "", err
	}
	c := *e
	c.opts.Direction = Both
	c.template = s

	res, err := c.Walk(seed)
	if err != nil {
		return "", err
	}

	return res.Contig(), nil
}

// walk runs one linear extension. The returned Path is in sequence order.
func (e *Engine) walk(seed subgraph.Vertex, forward bool) (*Result, error) {
	stopper := e.template.fork()
	sg := subgraph.New()
	_ = sg.AddVertex(seed)
	path := []subgraph.Vertex{seed}
	res := &Result{Subgraph: sg, Outcome: Incomplete}

	cur := seed
	for depth := 0; ; depth++ {
		cands, err := e.neighbors(cur, forward)
		if err != nil {
			return nil, err
		}
		seen := len(cands) > 0
		for _, c := range cands {
			seen = seen && sg.HasVertex(c.Kmer)
		}
		revisit := len(cands) == 1 && seen

		if e.opts.OnVisit != nil {
			if err = e.opts.OnVisit(cur, depth); err != nil {
				return nil, fmt.Errorf("traversal: OnVisit hook for %q: %w", cur.Kmer, err)
			}
		}

		st := e.state(cur, forward, depth, sg.Order(), cands, seen, sg)
		verdict, err := Evaluate(stopper, st)
		if err != nil {
			return nil, err
		}
		res.Depth = depth

		switch {
		case verdict == Reject:
			res.Outcome = Rejected
		case verdict == Accept:
			res.Outcome = Accepted
		case len(cands) != 1 || revisit:
			res.Outcome = Incomplete
		default:
			next := cands[0]
			_ = sg.AddVertex(next)
			if err = addEdge(sg, cur, next, forward); err != nil {
				return nil, err
			}
			path = append(path, next)
			cur = next
			continue
		}
		break
	}

	if !forward {
		slices.Reverse(path)
	}
	res.Path = path

	return res, nil
}

func (e *Engine) state(v subgraph.Vertex, forward bool, depth, size int, cands []subgraph.Vertex, seen bool, sg *subgraph.Subgraph) State {
	return State{
		Vertex:                   v,
		Forward:                  forward,
		TraversalColors:          e.opts.TraversalColors,
		JoiningColors:            e.opts.JoiningColors,
		Depth:                    depth,
		Size:                     size,
		NumAdjacent:              len(cands),
		ChildrenAlreadyTraversed: seen,
		Subgraph:                 sg,
		ROI:                      e.opts.ROI,
	}
}

// seedVertex validates seed and looks it up.
func (e *Engine) seedVertex(seed string) (subgraph.Vertex, error) {
	if len(seed) != e.k {
		return subgraph.Vertex{}, fmt.Errorf("%w: %q has length %d, k=%d", ErrSeedLength, seed, len(seed), e.k)
	}
	k, err := kmer.Canonicalize(seed)
	if err != nil {
		return subgraph.Vertex{}, fmt.Errorf("traversal: seed: %w", err)
	}
	r, found, err := e.g.FindRecord(k)
	if err != nil {
		return subgraph.Vertex{}, err
	}
	if !found {
		return subgraph.Vertex{}, fmt.Errorf("%w: %s", ErrSeedNotFound, seed)
	}

	return subgraph.Vertex{Kmer: k.Oriented(), Record: r}, nil
}

// edgeMask combines the per-color neighbor masks of r.
func (e *Engine) edgeMask(r record.Record, flipped, forward bool) byte {
	mask := func(c int) byte {
		if forward {
			return record.SuccessorMask(r.Edge(c), flipped)
		}

		return record.PredecessorMask(r.Edge(c), flipped)
	}

	var m byte
	if e.opts.Combine == And {
		m = 0x0F
	}
	for _, c := range e.opts.TraversalColors {
		if e.opts.Combine == And {
			m &= mask(c)
		} else {
			m |= mask(c)
		}
	}

	return m
}

// neighbors returns the candidate next vertices of v in A, C, G, T order.
// Candidates whose k-mer has no record are skipped.
func (e *Engine) neighbors(v subgraph.Vertex, forward bool) ([]subgraph.Vertex, error) {
	flipped := !kmer.IsCanonical(v.Kmer)
	bases := record.MaskBases(e.edgeMask(v.Record, flipped, forward))

	out := make([]subgraph.Vertex, 0, len(bases))
	for _, b := range bases {
		var next string
		if forward {
			next = v.Kmer[1:] + string(b)
		} else {
			next = string(b) + v.Kmer[:len(v.Kmer)-1]
		}

		k, err := kmer.Canonicalize(next)
		if err != nil {
			return nil, err
		}
		r, found, err := e.g.FindRecord(k)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, subgraph.Vertex{Kmer: next, Record: r})
		}
	}

	return out, nil
}

// addEdge links cur and next in sequence order: predecessor to successor,
// labeled with the successor's last base.
func addEdge(sg *subgraph.Subgraph, cur, next subgraph.Vertex, forward bool) error {
	from, to := cur, next
	if !forward {
		from, to = next, cur
	}
	_, err := sg.AddEdge(from.Kmer, to.Kmer, to.Last())

	return err
}

// join merges the two sides of a Both traversal.
func join(back, fwd *Result, path []subgraph.Vertex) *Result {
	sg := back.Subgraph.Clone()
	sg.Merge(fwd.Subgraph)

	out := Incomplete
	switch {
	case back.Outcome == Rejected || fwd.Outcome == Rejected:
		out = Rejected
	case back.Outcome == Accepted && fwd.Outcome == Accepted:
		out = Accepted
	}

	return &Result{Subgraph: sg, Outcome: out, Path: path, Depth: back.Depth + fwd.Depth}
}
