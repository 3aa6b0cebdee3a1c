package traversal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
	"github.com/katalvlaran/cortexgraph/subgraph"
)

// Graph is the read side a traversal needs. *graphfile.Graph,
// *collection.Collection and *collection.Preloaded satisfy it.
type Graph interface {
	KmerSize() int
	NumColors() int
	FindRecord(k kmer.Kmer) (record.Record, bool, error)
}

var (
	// ErrGraphNil is returned when New is given a nil Graph.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrSeedNotFound indicates that the seed k-mer has no record in the graph.
	ErrSeedNotFound = errors.New("traversal: seed k-mer not in graph")

	// ErrSeedLength indicates a seed whose length differs from the graph's k.
	ErrSeedLength = errors.New("traversal: seed length does not match k")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")
)

// Direction selects which neighbors a walk follows.
type Direction int

const (
	Forward  Direction = iota // successors
	Backward                  // predecessors
	Both                      // backward, then forward, joined at the seed
)

var directionNames = [...]string{"forward", "backward", "both"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// ParseDirection maps "forward", "backward" or "both" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(s, n) {
			return Direction(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown direction %q", ErrOptionViolation, s)
}

// Combine decides how edges of several traversal colors are merged.
type Combine int

const (
	Or  Combine = iota // an edge in any traversal color is followed
	And                // an edge must be present in every traversal color
)

func (c Combine) String() string {
	switch c {
	case Or:
		return "or"
	case And:
		return "and"
	}

	return fmt.Sprintf("Combine(%d)", int(c))
}

// ParseCombine maps "or" or "and" to a Combine.
func ParseCombine(s string) (Combine, error) {
	switch strings.ToLower(s) {
	case "or":
		return Or, nil
	case "and":
		return And, nil
	}

	return 0, fmt.Errorf("%w: unknown combine operator %q", ErrOptionViolation, s)
}

// Outcome is the terminal state of a traversal.
type Outcome int

const (
	// Incomplete: the walk could not extend (branch, dead end or revisit)
	// before the policy reached a verdict.
	Incomplete Outcome = iota
	Accepted
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}

	return "incomplete"
}

// State is what a Stopper sees at each visited vertex.
type State struct {
	Vertex          subgraph.Vertex
	Forward         bool
	TraversalColors []int
	JoiningColors   []int

	// Depth is the number of steps from the seed; Size the number of
	// vertices visited so far, this one included.
	Depth int
	Size  int

	// NumAdjacent counts candidate neighbors present in the graph in the
	// walk direction. ChildrenAlreadyTraversed is set when there is at least
	// one candidate and every candidate was already visited.
	NumAdjacent              int
	ChildrenAlreadyTraversed bool

	Subgraph *subgraph.Subgraph
	ROI      Graph
}

// Result is returned by Walk and DFS.
type Result struct {
	Subgraph *subgraph.Subgraph
	Outcome  Outcome

	// Path lists the vertices of a linear walk in sequence order. It is nil
	// for DFS.
	Path []subgraph.Vertex

	// Depth is the number of steps taken from the seed, summed over both
	// sides for Direction Both. For DFS it is the deepest vertex reached.
	Depth int
}

// Accepted reports whether the policy accepted the traversal.
func (r *Result) Accepted() bool { return r.Outcome == Accepted }

// Contig spells the sequence along Path.
func (r *Result) Contig() string {
	if len(r.Path) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.Path[0].Kmer)
	for _, v := range r.Path[1:] {
		sb.WriteByte(v.Last())
	}

	return sb.String()
}
