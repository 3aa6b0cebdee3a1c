// Package kmer implements the nucleotide k-mer key used by every graph file:
// 2-bit packing, reverse complement and canonical orientation.
//
// What:
//
//   - Pack / Unpack: a k-mer string <-> Words(k) big-endian uint64 words.
//     Bases are right-aligned in the word block, first base most significant,
//     with A=0, C=1, G=2, T=3.
//   - ReverseComplement: ACGT <-> TGCA, read backwards.
//   - Canonicalize: choose the lexicographically smaller of a k-mer and its
//     reverse complement and remember whether the input was flipped.
//
// Ordering:
//
//	Because all k-mers in one graph share k, and the alphabet order A<C<G<T
//	matches the 2-bit codes, comparing packed bytes (bytes.Compare) gives the
//	same order as comparing the decoded strings. Graph files are sorted in
//	packed-byte order, so Kmer.Compare is the order every lookup relies on.
//
// Invariants:
//
//   - Canonicalize(Canonicalize(s).String()) == Canonicalize(s)
//   - Canonicalize(s) == Canonicalize(ReverseComplement(s))
//
// Errors:
//
//   - ErrEmpty         the k-mer string is empty.
//   - ErrInvalidBase   a character outside ACGT (case-insensitive) was found.
//   - ErrPackedLength  a packed buffer does not match Words(k).
package kmer
