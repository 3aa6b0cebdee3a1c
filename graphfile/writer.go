package graphfile

import (
	"bufio"
	"fmt"
	"iter"
	"os"

	"github.com/katalvlaran/cortexgraph/record"
)

// Writer serializes a header and a stream of records in the layout Open
// reads. It never reorders records: callers supply them ascending when the
// output will be searched.
type Writer struct {
	path      string
	f         *os.File
	w         *bufio.Writer
	header    Header
	headerSet bool
	count     int64
	buf       []byte
	closed    bool
}

// Create creates (or truncates) the file at path. WriteHeader must be called
// before the first Append.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: create %s: %w", path, err)
	}

	return &Writer{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// CreateWithHeader creates path and writes h.
func CreateWithHeader(path string, h Header) (*Writer, error) {
	w, err := Create(path)
	if err != nil {
		return nil, err
	}
	if err = w.WriteHeader(h); err != nil {
		w.f.Close()
		os.Remove(path)
		return nil, err
	}

	return w, nil
}

// WriteHeader validates and writes h. It may be called once.
func (w *Writer) WriteHeader(h Header) error {
	switch {
	case w.closed:
		return ErrClosed
	case w.headerSet:
		return ErrHeaderAlreadySet
	}

	b, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err = w.w.Write(b); err != nil {
		return fmt.Errorf("graphfile: write header %s: %w", w.path, err)
	}
	w.header = h.Clone()
	w.headerSet = true
	w.buf = make([]byte, 0, h.RecordSize())

	return nil
}

// Append writes one record after the previous ones.
func (w *Writer) Append(r record.Record) error {
	switch {
	case w.closed:
		return ErrClosed
	case !w.headerSet:
		return ErrHeaderNotSet
	case r.KmerBits() != w.header.KmerBits || r.NumColors() != w.header.NumColors:
		return fmt.Errorf("%w: record has %d k-mer words and %d colors, header has %d and %d",
			ErrRecordShape, r.KmerBits(), r.NumColors(), w.header.KmerBits, w.header.NumColors)
	}

	w.buf = record.AppendEncode(w.buf[:0], r)
	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("graphfile: write record %d to %s: %w", w.count, w.path, err)
	}
	w.count++

	return nil
}

// Count returns the number of records appended so far.
func (w *Writer) Count() int64 { return w.count }

// Path returns the output path.
func (w *Writer) Path() string { return w.path }

// Close flushes buffered output and closes the file. A writer closed without
// a header leaves an empty file behind.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	ferr := w.w.Flush()
	cerr := w.f.Close()
	if ferr != nil {
		return fmt.Errorf("graphfile: flush %s: %w", w.path, ferr)
	}

	return cerr
}

// WriteAll writes h followed by every record of seq to path and returns the
// number of records written. The first error from seq aborts the write.
func WriteAll(path string, h Header, seq iter.Seq2[record.Record, error]) (int64, error) {
	w, err := CreateWithHeader(path, h)
	if err != nil {
		return 0, err
	}
	for r, rerr := range seq {
		if rerr != nil {
			w.Close()
			return w.Count(), rerr
		}
		if err = w.Append(r); err != nil {
			w.Close()
			return w.Count(), err
		}
	}

	return w.Count(), w.Close()
}
