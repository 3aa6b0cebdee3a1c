package graphfile

import (
	"fmt"
	"io"
	"iter"

	"github.com/katalvlaran/cortexgraph/record"
)

// Next returns the record under the cursor and advances it.
// At the end of the file it returns io.EOF.
func (g *Graph) Next() (record.Record, error) {
	if g.closed {
		return record.Record{}, ErrClosed
	}
	if g.recordsSeen >= g.numRecords {
		return record.Record{}, io.EOF
	}

	r, err := g.recordAt(g.recordsSeen)
	if err != nil {
		return record.Record{}, err
	}
	g.recordsSeen++

	return r, nil
}

// Seek moves the cursor to record index i in O(1). Seeking to NumRecords
// positions the cursor at the end.
func (g *Graph) Seek(i int64) error {
	switch {
	case g.closed:
		return ErrClosed
	case i < 0:
		return fmt.Errorf("%w: %d", ErrNegativeIndex, i)
	case i > g.numRecords:
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, g.numRecords)
	}
	g.recordsSeen = i

	return nil
}

// RecordAt returns record i using the cache. The cursor is left where it was.
func (g *Graph) RecordAt(i int64) (record.Record, error) {
	switch {
	case g.closed:
		return record.Record{}, ErrClosed
	case i < 0:
		return record.Record{}, fmt.Errorf("%w: %d", ErrNegativeIndex, i)
	case i >= g.numRecords:
		return record.Record{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, g.numRecords)
	}

	return g.recordAt(i)
}

// Iterate yields records from the cursor to the end of the file, advancing
// the cursor as it goes. Call Seek(0) to start over. Iteration stops after the
// first error, which is yielded with a zero Record.
func (g *Graph) Iterate() iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for {
			r, err := g.Next()
			if err == io.EOF {
				return
			}
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

// All rewinds the cursor and yields every record in file order.
func (g *Graph) All() iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		if err := g.Seek(0); err != nil {
			yield(record.Record{}, err)
			return
		}
		for r, err := range g.Iterate() {
			if !yield(r, err) {
				return
			}
		}
	}
}
