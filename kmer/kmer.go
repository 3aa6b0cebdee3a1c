package kmer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for k-mer encoding.
var (
	// ErrEmpty is returned when an empty string is packed or canonicalized.
	ErrEmpty = errors.New("kmer: empty k-mer")

	// ErrInvalidBase is returned for any character outside ACGT.
	ErrInvalidBase = errors.New("kmer: invalid nucleotide")

	// ErrPackedLength is returned when a packed buffer has the wrong size for k.
	ErrPackedLength = errors.New("kmer: packed length does not match k")
)

// Nucleotide codes. The numeric order is the sort order of graph files.
const (
	A byte = iota
	C
	G
	T
)

// Bases lists the alphabet in code order.
var Bases = [4]byte{'A', 'C', 'G', 'T'}

// Words returns the number of 64-bit words needed to hold a k-mer of size k
// at two bits per base: ceil(2k / 64).
func Words(k int) int {
	return (2*k + 63) / 64
}

// PackedSize returns the byte length of a packed k-mer of size k.
func PackedSize(k int) int {
	return 8 * Words(k)
}

// Encode maps a nucleotide character to its 2-bit code.
func Encode(b byte) (byte, error) {
	switch b {
	case 'A', 'a':
		return A, nil
	case 'C', 'c':
		return C, nil
	case 'G', 'g':
		return G, nil
	case 'T', 't':
		return T, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidBase, b)
}

// Decode maps a 2-bit code back to its upper-case nucleotide.
func Decode(code byte) byte {
	return Bases[code&0x3]
}

// Complement returns the Watson-Crick complement of an upper-case base.
// Anything outside ACGT is returned unchanged.
func Complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'T':
		return 'A'
	}

	return b
}

// ReverseComplement returns the reverse complement of s, upper-cased.
func ReverseComplement(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = Complement(upper(s[i]))
	}

	return string(out)
}

// Validate checks that s is a non-empty ACGT string.
func Validate(s string) error {
	if s == "" {
		return ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		if _, err := Encode(s[i]); err != nil {
			return fmt.Errorf("kmer %q position %d: %w", s, i, err)
		}
	}

	return nil
}

// Pack encodes s into Words(len(s)) big-endian uint64 words.
func Pack(s string) ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	k := len(s)
	words := make([]uint64, Words(k))
	for i := 0; i < k; i++ {
		code, _ := Encode(s[i])
		offset := 2 * (k - 1 - i)         // bit offset from the least significant end
		idx := len(words) - 1 - offset/64 // words are most significant first
		words[idx] |= uint64(code) << (offset % 64)
	}

	out := make([]byte, 8*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint64(out[8*i:], w)
	}

	return out, nil
}

// Unpack decodes a packed k-mer of size k back to its string form.
func Unpack(packed []byte, k int) (string, error) {
	if k <= 0 {
		return "", ErrEmpty
	}
	if len(packed) != PackedSize(k) {
		return "", fmt.Errorf("%w: got %d bytes, want %d for k=%d", ErrPackedLength, len(packed), PackedSize(k), k)
	}

	n := len(packed) / 8
	out := make([]byte, k)
	for i := 0; i < k; i++ {
		offset := 2 * (k - 1 - i)
		idx := n - 1 - offset/64
		w := binary.BigEndian.Uint64(packed[8*idx:])
		out[i] = Decode(byte(w >> (offset % 64)))
	}

	return string(out), nil
}

// Kmer is a k-mer in canonical orientation.
//
// Packed holds the canonical form; Flipped records whether the string the
// Kmer was built from had to be reverse-complemented to get there.
// Equality and ordering are defined on Packed.
type Kmer struct {
	Packed  []byte
	Size    int
	Flipped bool
}

// Canonicalize returns the canonical Kmer for s.
func Canonicalize(s string) (Kmer, error) {
	if err := Validate(s); err != nil {
		return Kmer{}, err
	}

	fw := strings.ToUpper(s)
	rc := ReverseComplement(fw)
	flipped := rc < fw
	if flipped {
		fw = rc
	}

	packed, err := Pack(fw)
	if err != nil {
		return Kmer{}, err
	}

	return Kmer{Packed: packed, Size: len(fw), Flipped: flipped}, nil
}

// FromPacked wraps an already canonical packed k-mer, such as one read from a
// graph record. The buffer is copied.
func FromPacked(packed []byte, k int) (Kmer, error) {
	if len(packed) != PackedSize(k) {
		return Kmer{}, fmt.Errorf("%w: got %d bytes, want %d for k=%d", ErrPackedLength, len(packed), PackedSize(k), k)
	}

	return Kmer{Packed: bytes.Clone(packed), Size: k}, nil
}

// IsCanonical reports whether s is already in canonical orientation.
func IsCanonical(s string) bool {
	fw := strings.ToUpper(s)

	return fw <= ReverseComplement(fw)
}

// String decodes the canonical k-mer.
func (k Kmer) String() string {
	s, err := Unpack(k.Packed, k.Size)
	if err != nil {
		return ""
	}

	return s
}

// Oriented returns the k-mer in the orientation it was canonicalized from.
func (k Kmer) Oriented() string {
	if k.Flipped {
		return ReverseComplement(k.String())
	}

	return k.String()
}

// Key returns the packed bytes as a string, suitable as a map key.
func (k Kmer) Key() string {
	return string(k.Packed)
}

// Compare orders two k-mers by packed bytes.
func (k Kmer) Compare(o Kmer) int {
	return bytes.Compare(k.Packed, o.Packed)
}

// Equal reports whether both k-mers have the same canonical packed form.
func (k Kmer) Equal(o Kmer) bool {
	return bytes.Equal(k.Packed, o.Packed)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}

	return b
}
