// Package traversal walks the implicit de Bruijn graph of a colored graph
// from a seed k-mer, asking a stopping policy at every vertex whether to
// continue, accept or reject.
//
// Neighbors come from the edge codes of the current record, read in the
// orientation the walk holds the k-mer in, for the traversal colors combined
// with Or (any color) or And (every color). Neighbors whose k-mer has no
// record are skipped.
//
// Entry points:
//
//   - Walk(seed)     linear extension: one unvisited neighbor at a time.
//   - DFS(seed)      every branch, each with its own fork of the policy.
//   - Assemble(seed) two-sided Contig walk, returned as a sequence.
//
// Policies (WithPolicy):
//
//	Contig  accept at dead end, branch or revisit; reject past limits.
//	Bubble  accept on a joining color away from the seed; reject at a dead end.
//	Tip     accept on reconnecting with joining colors after leaving them.
//	Dust    reject after DustRun consecutive branching vertices (DFS; a
//	        Walk halts at the first branch).
//	Orphan  accept when exhausted without touching a joining color.
//	Shore   accept ShoreDistance steps past the last ROI k-mer.
//
// Every policy rejects once the traversal visits more than MaxSize vertices
// or goes deeper than MaxDepth. The engine has no bound of its own.
//
// Options:
//
//	WithTraversalColors(c...)  colors whose edges are followed (default 0).
//	WithJoiningColors(c...)    reference or parental colors.
//	WithCombine(Or|And)        how traversal colors combine.
//	WithDirection(d)           Forward, Backward or Both.
//	WithROI(g)                 region-of-interest graph for Shore.
//	WithMaxSize(n), WithMaxDepth(n), WithDustRun(n), WithShoreDistance(n)
//	WithOnVisit(fn)            hook at every vertex; error aborts.
//
// Errors:
//
//	ErrGraphNil         New got a nil Graph.
//	ErrOptionViolation  invalid option, color out of range, ROI k mismatch.
//	ErrSeedLength       seed length differs from k.
//	ErrSeedNotFound     seed k-mer has no record.
//	kmer.ErrInvalidBase seed contains a non-ACGT character (wrapped).
package traversal
