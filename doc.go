// Package cortexgraph stores, queries and traverses colored de Bruijn graphs
// kept in the Cortex binary format.
//
// What is a colored de Bruijn graph?
//
//	Every k-mer (a DNA string of fixed length k) seen in one or more samples
//	is a vertex. Each sample is a color. Per color, a k-mer carries how often
//	it was seen (coverage) and which bases may precede or follow it (an
//	8-bit edge code). Edges are never stored as pairs: they are implied by
//	the edge codes and found by lookup.
//
// What is in the box?
//
//   - Canonical k-mers: 2-bit packing, reverse complement, canonical form
//   - Records: per-color coverage and edge codes, fixed-size binary codec
//   - Graph files: header codec, memory-mapped or positioned reads, sorted
//     binary search, a two-keyed LRU decode cache and an append-only writer
//   - Collections: many files presented as one multi-color graph, through a
//     k-way merge and lookup fan-out; a preloaded hash-indexed variant
//   - Traversal: linear walks and branch-exploring DFS under pluggable
//     stopping policies (contig, bubble, tip, dust, orphan, shore)
//
// Packages:
//
//	kmer/        nucleotide alphabet, packing and canonicalization
//	record/      Record value type and edge-code helpers
//	graphfile/   Open, Graph, FindRecord, Writer, Digest
//	collection/  Collection (merge, fan-out) and Preloaded
//	subgraph/    local directed graph produced by traversals
//	traversal/   Engine (Walk, DFS, Assemble) and Stopper policies
//	config/      settings from cortex.yaml, CORTEX_* and flags
//	cmd/cortex   command line front end
//
// Quick ASCII example, k=3, one color:
//
//	AAA ──T──▶ AAT ──C──▶ ATC
//
// spells the contig AAATC. The edge code of AAT has A in its predecessor
// nibble and C in its successor nibble.
package cortexgraph
