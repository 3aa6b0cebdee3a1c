package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
)

func mustRecord(t *testing.T, s string, cov []uint32, edges []byte) record.Record {
	t.Helper()
	r, err := record.FromString(s, cov, edges)
	require.NoError(t, err)

	return r
}

func TestSize(t *testing.T) {
	assert.Equal(t, 8+5*2, record.Size(1, 2))
	assert.Equal(t, 16, record.Size(2, 0))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		kmer  string
		cov   []uint32
		edges []byte
	}{
		{"single color", "AAT", []uint32{5}, []byte{0x82}},
		{"three colors", "ACGTACGTACGTACGTACGTACGTACGTACGTACGTA", []uint32{0, 1, math.MaxUint32}, []byte{0, 0xFF, 0x11}},
		{"no colors", "ACG", []uint32{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRecord(t, tt.kmer, tt.cov, tt.edges)
			buf := record.Encode(r)
			assert.Len(t, buf, record.Size(r.KmerBits(), r.NumColors()))

			got, err := record.Decode(buf, r.KmerBits(), r.NumColors())
			require.NoError(t, err)
			assert.True(t, r.Equal(got))
			assert.Equal(t, buf, record.Encode(got))
		})
	}
}

func TestDecode_ByteLayout(t *testing.T) {
	buf := []byte{
		0, 0, 0, 0, 0, 0, 0, 0x03, // AAT, big-endian word
		0x01, 0x02, 0, 0, // coverage 513, little-endian
		0x82, // edges
	}
	r, err := record.Decode(buf, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "AAT", r.KmerString(3))
	assert.Equal(t, uint32(513), r.Coverage(0))
	assert.Equal(t, byte(0x82), r.Edge(0))
}

func TestDecode_Short(t *testing.T) {
	_, err := record.Decode(make([]byte, 12), 1, 1)
	assert.ErrorIs(t, err, record.ErrShortRecord)
}

func TestNew_Shape(t *testing.T) {
	_, err := record.New([]byte{1, 2, 3}, nil, nil)
	assert.ErrorIs(t, err, record.ErrShape)

	_, err = record.New(make([]byte, 8), []uint32{1, 2}, []byte{0})
	assert.ErrorIs(t, err, record.ErrShape)
}

func TestRecord_Immutable(t *testing.T) {
	cov := []uint32{4}
	r := mustRecord(t, "AAA", cov, []byte{0x08})
	cov[0] = 99
	r.Coverages()[0] = 100
	r.Packed()[0] = 0xFF
	assert.Equal(t, uint32(4), r.Coverage(0))
	assert.Equal(t, "AAA", r.KmerString(3))
}

func TestEdgeCode(t *testing.T) {
	// AAT preceded by A and followed by C.
	code := record.EdgeCode([]byte("C"), []byte("A"))
	assert.Equal(t, byte(0x82), code)
	assert.Equal(t, []byte("C"), record.Successors(code, false))
	assert.Equal(t, []byte("A"), record.Predecessors(code, false))

	// Read as ATT: followed by T (complement of A), preceded by G (complement of C).
	assert.Equal(t, []byte("T"), record.Successors(code, true))
	assert.Equal(t, []byte("G"), record.Predecessors(code, true))
	assert.Equal(t, "a....C..", record.EdgeString(code))
}

func TestEdgeCode_OrientationSymmetry(t *testing.T) {
	for code := 0; code < 256; code++ {
		c := byte(code)
		// successors of the reverse complement are the complements of the predecessors
		for _, b := range record.Successors(c, true) {
			assert.Contains(t, record.Predecessors(c, false), kmer.Complement(b))
		}
		assert.Equal(t, len(record.Successors(c, false)), len(record.Predecessors(c, true)))
	}
}

func TestDegrees(t *testing.T) {
	r := mustRecord(t, "AAT", []uint32{1, 1}, []byte{
		record.EdgeCode(nil, []byte("A")),
		record.EdgeCode([]byte("CG"), []byte("A")),
	})
	assert.Equal(t, 0, r.OutDegree(0))
	assert.Equal(t, 1, r.InDegree(0))
	assert.Equal(t, 2, r.OutDegree(1))
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, uint32(3), record.SaturatingAdd(1, 2))
	assert.Equal(t, uint32(math.MaxUint32), record.SaturatingAdd(math.MaxUint32-1, 5))

	r := mustRecord(t, "AAA", []uint32{math.MaxUint32, 10}, []byte{0, 0})
	assert.Equal(t, uint32(math.MaxUint32), r.TotalCoverage())
}

func TestFormat(t *testing.T) {
	r := mustRecord(t, "AAA", []uint32{1, 0}, []byte{record.EdgeCode([]byte("T"), nil), 0})
	assert.Equal(t, "AAA 1 0 .......T ........", r.Format(3))
}
