package record

import (
	"math/bits"

	"github.com/katalvlaran/cortexgraph/kmer"
)

const (
	outNibble = 0x0F
	rcNibble  = 0xF0
)

// baseBit returns the nibble bit of base b, or 0 for anything outside ACGT.
func baseBit(b byte) byte {
	code, err := kmer.Encode(b)
	if err != nil {
		return 0
	}

	return 1 << code
}

// complementMask complements every base of a 4-bit mask.
// A<->T is bit0<->bit3 and C<->G is bit1<->bit2, so this is a nibble reversal.
func complementMask(m byte) byte {
	return bits.Reverse8(m) >> 4
}

// MaskBases expands a 4-bit mask into bases in A, C, G, T order.
func MaskBases(m byte) []byte {
	out := make([]byte, 0, 4)
	for code := byte(0); code < 4; code++ {
		if m&(1<<code) != 0 {
			out = append(out, kmer.Bases[code])
		}
	}

	return out
}

// EdgeCode builds an edge code for a k-mer in its stored orientation from
// the bases that follow it (out) and the bases that precede it (in).
func EdgeCode(out, in []byte) byte {
	var lo, hi byte
	for _, b := range out {
		lo |= baseBit(b)
	}
	for _, b := range in {
		hi |= baseBit(b)
	}

	return lo | complementMask(hi)<<4
}

// SuccessorMask returns the 4-bit mask of bases that follow the k-mer when it
// is read in the flipped (reverse-complement) orientation or not.
func SuccessorMask(code byte, flipped bool) byte {
	if flipped {
		return (code & rcNibble) >> 4
	}

	return code & outNibble
}

// PredecessorMask returns the 4-bit mask of bases that precede the k-mer in
// the given orientation.
func PredecessorMask(code byte, flipped bool) byte {
	if flipped {
		return complementMask(code & outNibble)
	}

	return complementMask((code & rcNibble) >> 4)
}

// Successors lists the bases that follow the k-mer in the given orientation.
func Successors(code byte, flipped bool) []byte {
	return MaskBases(SuccessorMask(code, flipped))
}

// Predecessors lists the bases that precede the k-mer in the given orientation.
func Predecessors(code byte, flipped bool) []byte {
	return MaskBases(PredecessorMask(code, flipped))
}

// EdgeString renders a code as eight characters "acgtACGT": lower case for
// predecessors, upper case for successors, '.' where absent.
func EdgeString(code byte) string {
	out := []byte("........")
	in := PredecessorMask(code, false)
	succ := SuccessorMask(code, false)
	for i := 0; i < 4; i++ {
		if in&(1<<i) != 0 {
			out[i] = kmer.Bases[i] + ('a' - 'A')
		}
		if succ&(1<<i) != 0 {
			out[4+i] = kmer.Bases[i]
		}
	}

	return string(out)
}
