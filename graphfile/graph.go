package graphfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"

	"github.com/katalvlaran/cortexgraph/record"
)

// backing is the byte source behind a Graph: a memory mapping or a file.
type backing interface {
	io.ReaderAt
	io.Closer
}

// Graph is an open, sorted graph file.
//
// A Graph owns its mapping (or descriptor) and decode cache. It keeps one
// cursor for sequential reads; RecordAt and FindRecord do not move it.
// A Graph is not safe for concurrent use; open one handle per goroutine.
type Graph struct {
	path   string
	src    backing
	size   int64
	header Header

	recordSize int
	numRecords int64
	dataOffset int64

	recordsSeen int64 // cursor
	buf         []byte
	cache       *recordCache
	closed      bool
}

// Open parses the header of the graph file at path and prepares it for
// iteration and lookup. A malformed file yields a *FormatError and no Graph.
func Open(path string, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	src, size, err := openBacking(path, o.mmap)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}

	h, headerSize, err := readHeader(io.NewSectionReader(src, 0, size), size)
	if err != nil {
		src.Close()
		return nil, headerFormatError(path, err)
	}

	rs := h.RecordSize()
	dataSize := size - headerSize
	if dataSize%int64(rs) != 0 {
		src.Close()
		return nil, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("truncated record: %d data bytes is not a multiple of record size %d", dataSize, rs),
		}
	}

	g := &Graph{
		path:       path,
		src:        src,
		size:       size,
		header:     h,
		recordSize: rs,
		numRecords: dataSize / int64(rs),
		dataOffset: headerSize,
		buf:        make([]byte, rs),
		cache:      newRecordCache(o.cacheSize),
	}

	if o.orderCheck {
		if err = g.CheckOrder(); err != nil {
			g.Close()
			return nil, err
		}
	}

	return g, nil
}

func openBacking(path string, useMmap bool) (backing, int64, error) {
	if useMmap {
		r, err := mmap.Open(path)
		if err != nil {
			return nil, 0, err
		}

		return r, int64(r.Len()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, st.Size(), nil
}

// Close releases the mapping or descriptor. Any later call returns ErrClosed.
func (g *Graph) Close() error {
	if g.closed {
		return ErrClosed
	}
	g.closed = true
	g.cache.clear()

	return g.src.Close()
}

// Path returns the file path the graph was opened from.
func (g *Graph) Path() string { return g.path }

// Header returns a copy of the parsed header.
func (g *Graph) Header() Header { return g.header.Clone() }

// KmerSize returns k.
func (g *Graph) KmerSize() int { return g.header.KmerSize }

// KmerBits returns the number of 64-bit words per packed k-mer.
func (g *Graph) KmerBits() int { return g.header.KmerBits }

// NumColors returns the number of colors.
func (g *Graph) NumColors() int { return g.header.NumColors }

// Color returns the metadata of color c.
func (g *Graph) Color(c int) ColorMetadata { return g.header.Colors[c] }

// ColorForSampleName returns the color index of the named sample, or -1.
func (g *Graph) ColorForSampleName(name string) int {
	return g.header.ColorForSampleName(name)
}

// NumRecords returns the number of records in the file.
func (g *Graph) NumRecords() int64 { return g.numRecords }

// RecordSize returns the encoded size of one record.
func (g *Graph) RecordSize() int { return g.recordSize }

// DataOffset returns the byte offset of the first record.
func (g *Graph) DataOffset() int64 { return g.dataOffset }

// FileSize returns the total size of the file in bytes.
func (g *Graph) FileSize() int64 { return g.size }

// RecordsSeen returns the cursor position: the index of the next record Next
// will return.
func (g *Graph) RecordsSeen() int64 { return g.recordsSeen }

// CacheStats returns decode cache counters.
func (g *Graph) CacheStats() CacheStats { return g.cache.snapshot() }

// readRecord decodes record i straight from the backing store.
func (g *Graph) readRecord(i int64) (record.Record, error) {
	off := g.dataOffset + i*int64(g.recordSize)
	if _, err := g.src.ReadAt(g.buf, off); err != nil {
		return record.Record{}, &FormatError{Path: g.path, Reason: fmt.Sprintf("reading record %d", i), Err: err}
	}

	return record.Decode(g.buf, g.header.KmerBits, g.header.NumColors)
}

// recordAt returns record i through the cache.
func (g *Graph) recordAt(i int64) (record.Record, error) {
	if r, ok := g.cache.index(i); ok {
		return r, nil
	}
	r, err := g.readRecord(i)
	if err != nil {
		return record.Record{}, err
	}
	g.cache.add(i, r)

	return r, nil
}

// CheckOrder scans the whole file and returns an IntegrityError at the first
// record that is not strictly greater than its predecessor. It bypasses the
// cache and does not move the cursor.
func (g *Graph) CheckOrder() error {
	if g.closed {
		return ErrClosed
	}

	kb := 8 * g.header.KmerBits
	prev := make([]byte, kb)
	cur := make([]byte, kb)
	for i := int64(0); i < g.numRecords; i++ {
		off := g.dataOffset + i*int64(g.recordSize)
		if _, err := g.src.ReadAt(cur, off); err != nil {
			return &FormatError{Path: g.path, Reason: fmt.Sprintf("reading record %d", i), Err: err}
		}
		if i > 0 && bytes.Compare(prev, cur) >= 0 {
			return &IntegrityError{Path: g.path, Index: i, Reason: "k-mer not greater than its predecessor"}
		}
		prev, cur = cur, prev
	}

	return nil
}
