// Package collection composes several graph files into one colored graph and
// offers an in-memory, hash-indexed alternative for lookup-heavy work.
//
// Virtual colors are the colors of each file laid end to end in file order:
// with files A (2 colors) and B (1 color), virtual colors 0 and 1 are A's and
// virtual color 2 is B's local color 0. Source(v) and ColorOffset(i) convert.
//
// Iteration is a k-way merge over the files' cursors: every distinct k-mer of
// the union is returned once, in ascending order, with each file's coverage
// and edges scattered into its virtual color slots and zeros elsewhere.
//
// Lookup fans a canonical k-mer out to one binary search per file, through
// handles reopened from each file's path so that iteration cursors and
// lookup caches never interfere.
//
// Both *Collection and *Preloaded satisfy traversal.Graph.
package collection
