package collection

import (
	"container/heap"
	"fmt"
	"io"
	"iter"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/record"
)

// candidate is the next unmerged record of one graph.
type candidate struct {
	rec  record.Record
	file int
}

// candidatePQ is a min-heap of candidates ordered by packed k-mer, then by
// graph index.
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if c := record.Compare(pq[i].rec, pq[j].rec); c != 0 {
		return c < 0
	}

	return pq[i].file < pq[j].file
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// merger is the state of one pass of the k-way merge.
type merger struct {
	pq   candidatePQ
	seen int64
}

// Reset rewinds every graph and restarts the merge.
func (c *Collection) Reset() error {
	if c.closed {
		return ErrClosed
	}

	m := &merger{pq: make(candidatePQ, 0, len(c.graphs))}
	for i, g := range c.graphs {
		if err := g.Seek(0); err != nil {
			return err
		}
		if err := m.advance(g, i, record.Record{}); err != nil {
			return err
		}
	}
	heap.Init(&m.pq)
	c.merge = m

	return nil
}

// advance pushes the next record of graph i, checking it sorts after prev.
func (m *merger) advance(g *graphfile.Graph, i int, prev record.Record) error {
	r, err := g.Next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if !prev.IsZero() && record.Compare(r, prev) <= 0 {
		return &graphfile.IntegrityError{
			Path:   g.Path(),
			Index:  g.RecordsSeen() - 1,
			Reason: "k-mer not greater than its predecessor during merge",
		}
	}
	heap.Push(&m.pq, candidate{rec: r, file: i})

	return nil
}

// Next returns the next distinct k-mer of the union, in ascending order, as
// a composite record. It returns io.EOF when every graph is exhausted. The
// first call starts from the beginning of every graph.
//
// Complexity: O(log N) per contributing graph, N = number of graphs.
func (c *Collection) Next() (record.Record, error) {
	if c.closed {
		return record.Record{}, ErrClosed
	}
	if c.merge == nil {
		if err := c.Reset(); err != nil {
			return record.Record{}, err
		}
	}

	m := c.merge
	if m.pq.Len() == 0 {
		return record.Record{}, io.EOF
	}

	head := m.pq[0].rec
	comp := newComposite(c.header.NumColors)
	for m.pq.Len() > 0 && record.Compare(m.pq[0].rec, head) == 0 {
		top := heap.Pop(&m.pq).(candidate)
		comp.scatter(top.rec, c.offsets[top.file])
		if err := m.advance(c.graphs[top.file], top.file, top.rec); err != nil {
			return record.Record{}, err
		}
	}
	m.seen++

	r, err := record.New(head.Packed(), comp.coverage, comp.edges)
	if err != nil {
		return record.Record{}, fmt.Errorf("collection: merge record %d: %w", m.seen-1, err)
	}

	return r, nil
}

// RecordsSeen returns how many merged records Next has returned since the
// last Reset.
func (c *Collection) RecordsSeen() int64 {
	if c.merge == nil {
		return 0
	}

	return c.merge.seen
}

// Iterate yields merged records from the current merge position. Iteration
// stops after the first error.
func (c *Collection) Iterate() iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for {
			r, err := c.Next()
			if err == io.EOF {
				return
			}
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

// All resets the merge and yields every merged record.
func (c *Collection) All() iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		if err := c.Reset(); err != nil {
			yield(record.Record{}, err)
			return
		}
		for r, err := range c.Iterate() {
			if !yield(r, err) {
				return
			}
		}
	}
}
