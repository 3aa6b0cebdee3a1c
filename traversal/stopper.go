package traversal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cortexgraph/kmer"
)

// Policy selects one of the built-in stopping policies.
type Policy int

const (
	// Contig accepts at a dead end, a branch or a revisit.
	Contig Policy = iota
	// Bubble accepts on reaching a joining color away from the seed.
	Bubble
	// Tip accepts on reconnecting with the joining colors after leaving them.
	Tip
	// Dust rejects sustained runs of branching vertices. A linear walk stops
	// at the first branch, so it only rejects there when DustRun is 1; under
	// DFS the run accumulates along each explored branch.
	Dust
	// Orphan accepts walks that exhaust without touching a joining color.
	Orphan
	// Shore accepts a bounded distance past the last ROI k-mer.
	Shore
)

var policyNames = [...]string{"contig", "bubble", "tip", "dust", "orphan", "shore"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

// ParsePolicy maps a policy name to a Policy, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(s, n) {
			return Policy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown policy %q", ErrOptionViolation, s)
}

// Limits bound a traversal. Zero MaxSize or MaxDepth disables that bound.
type Limits struct {
	MaxSize       int
	MaxDepth      int
	DustRun       int
	ShoreDistance int
}

// Defaults for Limits.
const (
	DefaultMaxSize       = 1000
	DefaultDustRun       = 5
	DefaultShoreDistance = 10
)

// DefaultLimits returns DefaultMaxSize, no depth bound, DefaultDustRun and
// DefaultShoreDistance.
func DefaultLimits() Limits {
	return Limits{
		MaxSize:       DefaultMaxSize,
		DustRun:       DefaultDustRun,
		ShoreDistance: DefaultShoreDistance,
	}
}

func (l Limits) exceeded(st State) bool {
	return (l.MaxSize > 0 && st.Size > l.MaxSize) ||
		(l.MaxDepth > 0 && st.Depth > l.MaxDepth)
}

// Stopper decides, vertex by vertex, whether a traversal continues, is
// accepted or is rejected. The set of implementations is closed; build one
// with NewStopper.
//
// observe is called exactly once per visited vertex and updates the counters
// a policy keeps for one traversal. HasSucceeded and HasFailed are then pure
// functions of the state and those counters.
type Stopper interface {
	HasSucceeded(st State) bool
	HasFailed(st State) bool

	observe(st State) error
	fork() Stopper
}

// Verdict is a Stopper's decision for one vertex.
type Verdict int

const (
	Continue Verdict = iota
	Accept
	Reject
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	}

	return "continue"
}

// NewStopper returns a fresh Stopper for p bounded by l.
func NewStopper(p Policy, l Limits) (Stopper, error) {
	switch p {
	case Contig:
		return &contigStopper{limits: l}, nil
	case Bubble:
		return &bubbleStopper{limits: l}, nil
	case Tip:
		return &tipStopper{limits: l}, nil
	case Dust:
		return &dustStopper{limits: l}, nil
	case Orphan:
		return &orphanStopper{limits: l}, nil
	case Shore:
		return &shoreStopper{limits: l}, nil
	}

	return nil, fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
}

// Evaluate feeds st to s and returns its verdict. Failure wins over success.
func Evaluate(s Stopper, st State) (Verdict, error) {
	if err := s.observe(st); err != nil {
		return Continue, err
	}
	switch {
	case s.HasFailed(st):
		return Reject, nil
	case s.HasSucceeded(st):
		return Accept, nil
	}

	return Continue, nil
}

// KeepGoing reports whether neither verdict has been reached for st.
func KeepGoing(s Stopper, st State) bool {
	return !s.HasSucceeded(st) && !s.HasFailed(st)
}

// joined reports whether the vertex has coverage in any joining color.
func joined(st State) bool {
	for _, c := range st.JoiningColors {
		if st.Vertex.Record.HasCoverage(c) {
			return true
		}
	}

	return false
}

func deadEnd(st State) bool { return st.NumAdjacent == 0 }

// inGraph reports whether the oriented k-mer s has a record in g. A nil g
// contains nothing.
func inGraph(g Graph, s string) (bool, error) {
	if g == nil {
		return false, nil
	}
	k, err := kmer.Canonicalize(s)
	if err != nil {
		return false, err
	}
	_, found, err := g.FindRecord(k)

	return found, err
}
