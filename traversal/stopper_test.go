package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/record"
	"github.com/katalvlaran/cortexgraph/subgraph"
	"github.com/katalvlaran/cortexgraph/traversal"
)

// step is one vertex fed to a Stopper: coverage in the joining color (color
// 1), depth, size and adjacency.
type step struct {
	joined   bool
	depth    int
	size     int
	adjacent int
	seen     bool
}

func (s step) state(t *testing.T) traversal.State {
	t.Helper()
	cov := []uint32{1, 0}
	if s.joined {
		cov[1] = 1
	}
	r, err := record.FromString("ACG", cov, []byte{0, 0})
	require.NoError(t, err)

	return traversal.State{
		Vertex:                   subgraph.Vertex{Kmer: "ACG", Record: r},
		Forward:                  true,
		TraversalColors:          []int{0},
		JoiningColors:            []int{1},
		Depth:                    s.depth,
		Size:                     s.size,
		NumAdjacent:              s.adjacent,
		ChildrenAlreadyTraversed: s.seen,
	}
}

func TestStoppers(t *testing.T) {
	limits := traversal.Limits{MaxSize: 10, MaxDepth: 8, DustRun: 3, ShoreDistance: 2}
	C, A, R := traversal.Continue, traversal.Accept, traversal.Reject

	tests := []struct {
		name   string
		policy traversal.Policy
		steps  []step
		want   []traversal.Verdict
	}{
		{
			name:   "contig accepts at dead end",
			policy: traversal.Contig,
			steps:  []step{{depth: 0, size: 1, adjacent: 1}, {depth: 1, size: 2, adjacent: 0}},
			want:   []traversal.Verdict{C, A},
		},
		{
			name:   "contig accepts at branch and revisit",
			policy: traversal.Contig,
			steps:  []step{{size: 1, adjacent: 2}, {size: 1, adjacent: 1, seen: true}},
			want:   []traversal.Verdict{A, A},
		},
		{
			name:   "contig rejects past max size",
			policy: traversal.Contig,
			steps:  []step{{depth: 3, size: 11, adjacent: 1}},
			want:   []traversal.Verdict{R},
		},
		{
			name:   "bubble ignores joined seed",
			policy: traversal.Bubble,
			steps:  []step{{joined: true, depth: 0, size: 1, adjacent: 1}, {depth: 1, size: 2, adjacent: 1}, {joined: true, depth: 2, size: 3, adjacent: 1}},
			want:   []traversal.Verdict{C, C, A},
		},
		{
			name:   "bubble rejects dead end",
			policy: traversal.Bubble,
			steps:  []step{{depth: 1, size: 2, adjacent: 0}},
			want:   []traversal.Verdict{R},
		},
		{
			name:   "bubble rejects past max depth",
			policy: traversal.Bubble,
			steps:  []step{{depth: 9, size: 2, adjacent: 1}},
			want:   []traversal.Verdict{R},
		},
		{
			name:   "tip needs divergence before reconnection",
			policy: traversal.Tip,
			steps:  []step{{joined: true, size: 1, adjacent: 1}, {depth: 1, size: 2, adjacent: 1}, {joined: true, depth: 2, size: 3, adjacent: 1}},
			want:   []traversal.Verdict{C, C, A},
		},
		{
			name:   "tip rejects dead end",
			policy: traversal.Tip,
			steps:  []step{{size: 1, adjacent: 1}, {depth: 1, size: 2, adjacent: 0}},
			want:   []traversal.Verdict{C, R},
		},
		{
			name:   "dust rejects a run of branches",
			policy: traversal.Dust,
			steps:  []step{{size: 1, adjacent: 2}, {depth: 1, size: 2, adjacent: 3}, {depth: 2, size: 3, adjacent: 2}},
			want:   []traversal.Verdict{C, C, R},
		},
		{
			name:   "dust run resets on a simple vertex",
			policy: traversal.Dust,
			steps:  []step{{size: 1, adjacent: 2}, {depth: 1, size: 2, adjacent: 2}, {depth: 2, size: 3, adjacent: 1}, {depth: 3, size: 4, adjacent: 2}},
			want:   []traversal.Verdict{C, C, C, C},
		},
		{
			name:   "dust accepts reunion",
			policy: traversal.Dust,
			steps:  []step{{size: 1, adjacent: 1}, {joined: true, depth: 1, size: 2, adjacent: 1}},
			want:   []traversal.Verdict{C, A},
		},
		{
			name:   "orphan accepts exhaustion",
			policy: traversal.Orphan,
			steps:  []step{{size: 1, adjacent: 1}, {depth: 1, size: 2, adjacent: 0}},
			want:   []traversal.Verdict{C, A},
		},
		{
			name:   "orphan rejects once joined",
			policy: traversal.Orphan,
			steps:  []step{{size: 1, adjacent: 1}, {joined: true, depth: 1, size: 2, adjacent: 0}},
			want:   []traversal.Verdict{C, R},
		},
		{
			name:   "shore accepts after distance without roi",
			policy: traversal.Shore,
			steps:  []step{{size: 1, adjacent: 1}, {depth: 1, size: 2, adjacent: 1}},
			want:   []traversal.Verdict{C, A},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := traversal.NewStopper(tt.policy, limits)
			require.NoError(t, err)
			for i, st := range tt.steps {
				state := st.state(t)
				got, err := traversal.Evaluate(s, state)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], got, "step %d", i)
				assert.Equal(t, got == traversal.Continue, traversal.KeepGoing(s, state))
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, p := range []traversal.Policy{traversal.Contig, traversal.Bubble, traversal.Tip, traversal.Dust, traversal.Orphan, traversal.Shore} {
		got, err := traversal.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := traversal.ParsePolicy("nope")
	assert.ErrorIs(t, err, traversal.ErrOptionViolation)

	d, err := traversal.ParseDirection("Both")
	require.NoError(t, err)
	assert.Equal(t, traversal.Both, d)
	_, err = traversal.ParseDirection("sideways")
	assert.ErrorIs(t, err, traversal.ErrOptionViolation)

	c, err := traversal.ParseCombine("AND")
	require.NoError(t, err)
	assert.Equal(t, traversal.And, c)
	_, err = traversal.ParseCombine("xor")
	assert.ErrorIs(t, err, traversal.ErrOptionViolation)

	assert.Equal(t, "accepted", traversal.Accepted.String())
	assert.Equal(t, "reject", traversal.Reject.String())
}
