// Package record defines the fixed-size row of a colored de Bruijn graph
// file and its binary codec.
//
// Layout (no padding):
//
//	kmerBits  × uint64  big-endian      packed canonical k-mer
//	numColors × uint32  little-endian   per-color coverage
//	numColors × byte                    per-color edge code
//
// Edge codes:
//
//	bit:   7 6 5 4   3 2 1 0
//	base:  T G C A   T G C A
//	       └ rc out ┘└ out  ┘
//
// The low nibble lists the bases that can follow the stored (canonical)
// k-mer. The high nibble lists the bases that can follow its reverse
// complement, i.e. the complements of the bases that precede it.
// Successors and Predecessors translate a code into bases for either
// orientation, so traversal never has to reason about the nibbles.
//
// The codec never canonicalizes: a record stores its k-mer exactly as given.
// Records are immutable values; accessors return copies.
//
// Errors:
//
//   - ErrShortRecord   the buffer is shorter than Size(kmerBits, numColors).
//   - ErrShape         coverage and edge slices disagree on the color count,
//     or the k-mer is not a whole number of words.
package record
