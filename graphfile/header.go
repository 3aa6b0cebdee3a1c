package graphfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/cortexgraph/kmer"
)

// Version is the only supported format version.
const Version = 6

// Magic opens and closes every header.
const Magic = "CORTEX"

// MaxKmerSize is the largest k-mer size a header may declare.
const MaxKmerSize = 1023

// errorRatePlaceholder is written for every color in place of the sequencing
// error rate: 0.01 as an x87 80-bit extended float, zero padded to 16 bytes.
var errorRatePlaceholder = [16]byte{0x0A, 0xD7, 0xA3, 0x70, 0x3D, 0x0A, 0xD7, 0xA3, 0xF8, 0x3F}

// Cleaning records which cleaning steps were applied to one color.
type Cleaning struct {
	TipClipped                bool   `yaml:"tip_clipped"`
	LowCovSupernodesRemoved   bool   `yaml:"low_cov_supernodes_removed"`
	LowCovKmersRemoved        bool   `yaml:"low_cov_kmers_removed"`
	CleanedAgainstGraph       bool   `yaml:"cleaned_against_graph"`
	LowCovSupernodesThreshold uint32 `yaml:"low_cov_supernodes_threshold"`
	LowCovKmerThreshold       uint32 `yaml:"low_cov_kmer_threshold"`
	CleanedAgainstGraphName   string `yaml:"cleaned_against_graph_name,omitempty"`
}

// ColorMetadata describes one color (sample) of a graph.
type ColorMetadata struct {
	SampleName     string   `yaml:"sample"`
	MeanReadLength uint32   `yaml:"mean_read_length"`
	TotalSequence  uint64   `yaml:"total_sequence"`
	Cleaning       Cleaning `yaml:"cleaning"`
}

// Header is the parsed header of a graph file. All records of a file share it.
type Header struct {
	Version   int             `yaml:"version"`
	KmerSize  int             `yaml:"kmer_size"`
	KmerBits  int             `yaml:"kmer_bits"`
	NumColors int             `yaml:"num_colors"`
	Colors    []ColorMetadata `yaml:"colors"`
}

// NewHeader builds a current-version header for kmerSize and the given colors,
// deriving KmerBits and NumColors.
func NewHeader(kmerSize int, colors ...ColorMetadata) Header {
	return Header{
		Version:   Version,
		KmerSize:  kmerSize,
		KmerBits:  kmer.Words(kmerSize),
		NumColors: len(colors),
		Colors:    slices.Clone(colors),
	}
}

// Validate checks the header invariants.
func (h Header) Validate() error {
	switch {
	case h.Version != Version:
		return fmt.Errorf("%w: version %d, only %d is supported", ErrInvalidHeader, h.Version, Version)
	case h.KmerSize <= 0 || h.KmerSize > MaxKmerSize:
		return fmt.Errorf("%w: k-mer size %d outside [1,%d]", ErrInvalidHeader, h.KmerSize, MaxKmerSize)
	case h.KmerBits != kmer.Words(h.KmerSize):
		return fmt.Errorf("%w: k-mer bits %d, want %d for k=%d", ErrInvalidHeader, h.KmerBits, kmer.Words(h.KmerSize), h.KmerSize)
	case h.NumColors <= 0:
		return fmt.Errorf("%w: %d colors", ErrInvalidHeader, h.NumColors)
	case h.NumColors != len(h.Colors):
		return fmt.Errorf("%w: %d colors declared, %d described", ErrInvalidHeader, h.NumColors, len(h.Colors))
	}

	return nil
}

// ColorForSampleName returns the first color named name, or -1.
func (h Header) ColorForSampleName(name string) int {
	for i, c := range h.Colors {
		if c.SampleName == name {
			return i
		}
	}

	return -1
}

// RecordSize returns the encoded size of one record under h.
func (h Header) RecordSize() int {
	return 8*h.KmerBits + 5*h.NumColors
}

// Clone returns a deep copy of h.
func (h Header) Clone() Header {
	h.Colors = slices.Clone(h.Colors)

	return h
}

// MarshalBinary encodes h in the on-disk header layout.
func (h Header) MarshalBinary() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	le := binary.LittleEndian
	put32 := func(v uint32) { buf.Write(le.AppendUint32(nil, v)) }
	putString := func(s string) {
		put32(uint32(len(s)))
		buf.WriteString(s)
	}
	putBool := func(b bool) {
		if b {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	}

	buf.WriteString(Magic)
	put32(uint32(h.Version))
	put32(uint32(h.KmerSize))
	put32(uint32(h.KmerBits))
	put32(uint32(h.NumColors))
	for _, c := range h.Colors {
		put32(c.MeanReadLength)
	}
	for _, c := range h.Colors {
		buf.Write(le.AppendUint64(nil, c.TotalSequence))
	}
	for _, c := range h.Colors {
		putString(c.SampleName)
	}
	for range h.Colors {
		buf.Write(errorRatePlaceholder[:])
	}
	for _, c := range h.Colors {
		cl := c.Cleaning
		putBool(cl.TipClipped)
		putBool(cl.LowCovSupernodesRemoved)
		putBool(cl.LowCovKmersRemoved)
		putBool(cl.CleanedAgainstGraph)
		put32(cl.LowCovSupernodesThreshold)
		put32(cl.LowCovKmerThreshold)
		putString(cl.CleanedAgainstGraphName)
	}
	buf.WriteString(Magic)

	return buf.Bytes(), nil
}

// headerReader decodes header fields with a sticky error and counts bytes.
type headerReader struct {
	r      *bufio.Reader
	n      int64
	limit  int64
	failed bool
	reason string
	err    error
}

func (hr *headerReader) fail(reason string, err error) {
	if !hr.failed {
		hr.failed, hr.reason, hr.err = true, reason, err
	}
}

func (hr *headerReader) read(p []byte, what string) {
	if hr.failed {
		return
	}
	n, err := io.ReadFull(hr.r, p)
	hr.n += int64(n)
	if err != nil {
		hr.fail("truncated header reading "+what, err)
	}
}

func (hr *headerReader) u32(what string) uint32 {
	var b [4]byte
	hr.read(b[:], what)

	return binary.LittleEndian.Uint32(b[:])
}

func (hr *headerReader) u64(what string) uint64 {
	var b [8]byte
	hr.read(b[:], what)

	return binary.LittleEndian.Uint64(b[:])
}

func (hr *headerReader) flag(what string) bool {
	var b [1]byte
	hr.read(b[:], what)

	return b[0] != 0
}

func (hr *headerReader) str(what string) string {
	n := hr.u32(what + " length")
	if hr.failed {
		return ""
	}
	if int64(n) > hr.limit-hr.n {
		hr.fail(fmt.Sprintf("%s length %d exceeds file size", what, n), nil)
		return ""
	}
	b := make([]byte, n)
	hr.read(b, what)

	return string(b)
}

func (hr *headerReader) magic(which string) {
	var b [len(Magic)]byte
	hr.read(b[:], which+" magic")
	if !hr.failed && string(b[:]) != Magic {
		hr.fail(fmt.Sprintf("bad %s magic %q", which, b[:]), nil)
	}
}

// errHeader carries the parse failure reason out of readHeader.
type errHeader struct {
	reason string
	err    error
}

func (e *errHeader) Error() string {
	if e.err != nil {
		return e.reason + ": " + e.err.Error()
	}

	return e.reason
}

func (e *errHeader) Unwrap() error { return e.err }

// readHeader parses a header from r, whose total length is size. It returns
// the header and the number of bytes it occupies.
func readHeader(r io.Reader, size int64) (Header, int64, error) {
	hr := &headerReader{r: bufio.NewReader(r), limit: size}

	hr.magic("leading")
	version := hr.u32("version")
	if !hr.failed && version != Version {
		hr.fail(fmt.Sprintf("unsupported version %d", version), nil)
	}
	kmerSize := hr.u32("k-mer size")
	kmerBits := hr.u32("k-mer bits")
	numColors := hr.u32("color count")
	if !hr.failed {
		switch {
		case kmerSize == 0:
			hr.fail("k-mer size is zero", nil)
		case kmerSize > MaxKmerSize:
			hr.fail(fmt.Sprintf("k-mer size %d exceeds %d", kmerSize, MaxKmerSize), nil)
		case int(kmerBits) != kmer.Words(int(kmerSize)):
			hr.fail(fmt.Sprintf("k-mer bits %d do not match k-mer size %d", kmerBits, kmerSize), nil)
		case numColors == 0:
			hr.fail("graph has no colors", nil)
		case int64(numColors) > size:
			hr.fail(fmt.Sprintf("color count %d exceeds file size", numColors), nil)
		}
	}
	if hr.failed {
		return Header{}, 0, &errHeader{hr.reason, hr.err}
	}

	h := Header{
		Version:   int(version),
		KmerSize:  int(kmerSize),
		KmerBits:  int(kmerBits),
		NumColors: int(numColors),
		Colors:    make([]ColorMetadata, numColors),
	}
	for i := range h.Colors {
		h.Colors[i].MeanReadLength = hr.u32("mean read length")
	}
	for i := range h.Colors {
		h.Colors[i].TotalSequence = hr.u64("total sequence")
	}
	for i := range h.Colors {
		h.Colors[i].SampleName = hr.str("sample name")
	}
	var rate [16]byte
	for range h.Colors {
		hr.read(rate[:], "error rate")
	}
	for i := range h.Colors {
		cl := &h.Colors[i].Cleaning
		cl.TipClipped = hr.flag("tip clipping flag")
		cl.LowCovSupernodesRemoved = hr.flag("low-coverage supernode flag")
		cl.LowCovKmersRemoved = hr.flag("low-coverage k-mer flag")
		cl.CleanedAgainstGraph = hr.flag("cleaned-against-graph flag")
		cl.LowCovSupernodesThreshold = hr.u32("low-coverage supernode threshold")
		cl.LowCovKmerThreshold = hr.u32("low-coverage k-mer threshold")
		cl.CleanedAgainstGraphName = hr.str("cleaned-against-graph name")
	}
	hr.magic("trailing")

	if hr.failed {
		return Header{}, 0, &errHeader{hr.reason, hr.err}
	}

	return h, hr.n, nil
}

// headerFormatError converts a readHeader failure into a FormatError for path.
func headerFormatError(path string, err error) error {
	var he *errHeader
	if errors.As(err, &he) {
		return &FormatError{Path: path, Reason: he.reason, Err: he.err}
	}

	return &FormatError{Path: path, Reason: "unreadable header", Err: err}
}
