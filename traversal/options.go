package traversal

import (
	"fmt"

	"github.com/katalvlaran/cortexgraph/subgraph"
)

// Option configures an Engine. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the traversal configuration.
type Options struct {
	// TraversalColors are the colors whose edges are followed. Default [0].
	TraversalColors []int

	// JoiningColors mark the reference or parental lineage; reaching them is
	// a success trigger for several policies.
	JoiningColors []int

	Combine   Combine
	Direction Direction

	// ROI is an optional region-of-interest graph consulted by Shore.
	ROI Graph

	Policy Policy
	Limits Limits

	// OnVisit, if non-nil, is called for every vertex before the policy is
	// consulted. Returning an error aborts the traversal with that error.
	OnVisit func(v subgraph.Vertex, depth int) error

	err error
}

// DefaultOptions returns color 0, no joining colors, Or, Forward, Contig and
// DefaultLimits.
func DefaultOptions() Options {
	return Options{
		TraversalColors: []int{0},
		Combine:         Or,
		Direction:       Forward,
		Policy:          Contig,
		Limits:          DefaultLimits(),
	}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithTraversalColors sets the colors whose edges are followed.
func WithTraversalColors(colors ...int) Option {
	return func(o *Options) {
		if len(colors) == 0 {
			o.fail("no traversal colors")
			return
		}
		o.TraversalColors = append([]int(nil), colors...)
	}
}

// WithJoiningColors sets the joining colors.
func WithJoiningColors(colors ...int) Option {
	return func(o *Options) {
		o.JoiningColors = append([]int(nil), colors...)
	}
}

// WithCombine selects Or or And across traversal colors.
func WithCombine(c Combine) Option {
	return func(o *Options) {
		if c != Or && c != And {
			o.fail("combine %d", int(c))
			return
		}
		o.Combine = c
	}
}

// WithDirection selects Forward, Backward or Both.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d < Forward || d > Both {
			o.fail("direction %d", int(d))
			return
		}
		o.Direction = d
	}
}

// WithROI sets the region-of-interest graph.
func WithROI(g Graph) Option {
	return func(o *Options) {
		o.ROI = g
	}
}

// WithPolicy selects the stopping policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxSize rejects traversals that visit more than n vertices. 0 disables
// the bound.
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("max size must be >= 0 (%d)", n)
			return
		}
		o.Limits.MaxSize = n
	}
}

// WithMaxDepth rejects traversals deeper than n steps. 0 disables the bound.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail("max depth must be >= 0 (%d)", n)
			return
		}
		o.Limits.MaxDepth = n
	}
}

// WithDustRun sets how many consecutive branching vertices Dust tolerates.
func WithDustRun(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("dust run must be >= 1 (%d)", n)
			return
		}
		o.Limits.DustRun = n
	}
}

// WithShoreDistance sets how far past the last ROI k-mer Shore walks.
func WithShoreDistance(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail("shore distance must be >= 1 (%d)", n)
			return
		}
		o.Limits.ShoreDistance = n
	}
}

// WithOnVisit installs a hook called at every visited vertex.
func WithOnVisit(fn func(v subgraph.Vertex, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
