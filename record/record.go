package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"slices"
	"strings"

	"github.com/katalvlaran/cortexgraph/kmer"
)

// Sentinel errors for record construction and decoding.
var (
	// ErrShortRecord indicates a buffer too small to hold one record.
	ErrShortRecord = errors.New("record: buffer shorter than record size")

	// ErrShape indicates inconsistent k-mer, coverage or edge lengths.
	ErrShape = errors.New("record: inconsistent record shape")
)

// Size returns the encoded size of a record: 8*kmerBits + 5*numColors.
func Size(kmerBits, numColors int) int {
	return 8*kmerBits + 5*numColors
}

// Record is one k-mer row: the packed k-mer plus per-color coverage and
// edge codes.
type Record struct {
	kmer     []byte
	coverage []uint32
	edges    []byte
}

// New builds a record from a packed k-mer and per-color values. The inputs
// are copied.
func New(packed []byte, coverage []uint32, edges []byte) (Record, error) {
	if len(packed) == 0 || len(packed)%8 != 0 {
		return Record{}, fmt.Errorf("%w: packed k-mer of %d bytes", ErrShape, len(packed))
	}
	if len(coverage) != len(edges) {
		return Record{}, fmt.Errorf("%w: %d coverage values, %d edge codes", ErrShape, len(coverage), len(edges))
	}

	return Record{
		kmer:     bytes.Clone(packed),
		coverage: slices.Clone(coverage),
		edges:    slices.Clone(edges),
	}, nil
}

// FromString canonicalizes s and builds a record for it. Edge codes must be
// given for the canonical orientation.
func FromString(s string, coverage []uint32, edges []byte) (Record, error) {
	k, err := kmer.Canonicalize(s)
	if err != nil {
		return Record{}, err
	}

	return New(k.Packed, coverage, edges)
}

// Decode reads one record from buf.
func Decode(buf []byte, kmerBits, numColors int) (Record, error) {
	size := Size(kmerBits, numColors)
	if len(buf) < size {
		return Record{}, fmt.Errorf("%w: have %d bytes, need %d", ErrShortRecord, len(buf), size)
	}

	kb := 8 * kmerBits
	r := Record{
		kmer:     bytes.Clone(buf[:kb]),
		coverage: make([]uint32, numColors),
		edges:    bytes.Clone(buf[kb+4*numColors : size]),
	}
	for c := 0; c < numColors; c++ {
		r.coverage[c] = binary.LittleEndian.Uint32(buf[kb+4*c:])
	}

	return r, nil
}

// Encode returns the binary form of r.
func Encode(r Record) []byte {
	return AppendEncode(make([]byte, 0, r.EncodedSize()), r)
}

// AppendEncode appends the binary form of r to dst.
func AppendEncode(dst []byte, r Record) []byte {
	dst = append(dst, r.kmer...)
	for _, c := range r.coverage {
		dst = binary.LittleEndian.AppendUint32(dst, c)
	}

	return append(dst, r.edges...)
}

// EncodedSize returns the number of bytes Encode produces for r.
func (r Record) EncodedSize() int {
	return len(r.kmer) + 5*len(r.coverage)
}

// KmerBits returns the number of 64-bit words in the packed k-mer.
func (r Record) KmerBits() int {
	return len(r.kmer) / 8
}

// NumColors returns the number of colors carried by r.
func (r Record) NumColors() int {
	return len(r.coverage)
}

// Packed returns a copy of the packed k-mer.
func (r Record) Packed() []byte {
	return bytes.Clone(r.kmer)
}

// Key returns the packed k-mer as a string map key.
func (r Record) Key() string {
	return string(r.kmer)
}

// Kmer returns the stored k-mer as a kmer.Kmer of size k.
func (r Record) Kmer(k int) kmer.Kmer {
	return kmer.Kmer{Packed: bytes.Clone(r.kmer), Size: k}
}

// KmerString decodes the stored k-mer for size k.
func (r Record) KmerString(k int) string {
	s, err := kmer.Unpack(r.kmer, k)
	if err != nil {
		return ""
	}

	return s
}

// Compare orders two records by packed k-mer.
func Compare(a, b Record) int {
	return bytes.Compare(a.kmer, b.kmer)
}

// CompareKmer orders r against a packed k-mer.
func (r Record) CompareKmer(packed []byte) int {
	return bytes.Compare(r.kmer, packed)
}

// Coverage returns the coverage of color c.
func (r Record) Coverage(c int) uint32 {
	return r.coverage[c]
}

// Coverages returns a copy of all per-color coverage values.
func (r Record) Coverages() []uint32 {
	return slices.Clone(r.coverage)
}

// TotalCoverage sums coverage across colors, saturating at math.MaxUint32.
func (r Record) TotalCoverage() uint32 {
	var total uint32
	for _, c := range r.coverage {
		total = SaturatingAdd(total, c)
	}

	return total
}

// HasCoverage reports whether color c has non-zero coverage.
func (r Record) HasCoverage(c int) bool {
	return r.coverage[c] > 0
}

// Edge returns the raw edge code of color c.
func (r Record) Edge(c int) byte {
	return r.edges[c]
}

// EdgeCodes returns a copy of all per-color edge codes.
func (r Record) EdgeCodes() []byte {
	return bytes.Clone(r.edges)
}

// OutDegree counts the successors of color c in the stored orientation.
func (r Record) OutDegree(c int) int {
	return bits.OnesCount8(SuccessorMask(r.edges[c], false))
}

// InDegree counts the predecessors of color c in the stored orientation.
func (r Record) InDegree(c int) int {
	return bits.OnesCount8(PredecessorMask(r.edges[c], false))
}

// OutEdges lists the bases that follow the k-mer in color c when it is read
// flipped or as stored.
func (r Record) OutEdges(c int, flipped bool) []byte {
	return Successors(r.edges[c], flipped)
}

// InEdges lists the bases that precede the k-mer in color c.
func (r Record) InEdges(c int, flipped bool) []byte {
	return Predecessors(r.edges[c], flipped)
}

// Equal reports whether two records carry the same k-mer, coverage and edges.
func (r Record) Equal(o Record) bool {
	return bytes.Equal(r.kmer, o.kmer) &&
		slices.Equal(r.coverage, o.coverage) &&
		bytes.Equal(r.edges, o.edges)
}

// IsZero reports whether r is the zero Record.
func (r Record) IsZero() bool {
	return r.kmer == nil
}

// Format renders r for size k as "KMER cov0 cov1 ... edges0 edges1 ...".
func (r Record) Format(k int) string {
	var sb strings.Builder
	sb.WriteString(r.KmerString(k))
	for _, c := range r.coverage {
		fmt.Fprintf(&sb, " %d", c)
	}
	for _, e := range r.edges {
		sb.WriteByte(' ')
		sb.WriteString(EdgeString(e))
	}

	return sb.String()
}

// SaturatingAdd adds two coverage values, clamping at math.MaxUint32.
func SaturatingAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}

	return a + b
}
