package collection

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
)

// Preloaded holds every record of one graph in a hash map for O(1) lookup.
// Iteration delegates to the backing graph; only lookup is accelerated.
type Preloaded struct {
	g       *graphfile.Graph
	records map[string]record.Record
}

// Preload decodes every record of g into memory and rewinds g.
//
// Complexity: O(N) time and memory.
func Preload(g *graphfile.Graph) (*Preloaded, error) {
	p := &Preloaded{g: g, records: make(map[string]record.Record, g.NumRecords())}
	for r, err := range g.All() {
		if err != nil {
			return nil, err
		}
		p.records[r.Key()] = r
	}
	if err := g.Seek(0); err != nil {
		return nil, err
	}

	return p, nil
}

// FindRecord returns the record of the canonical k-mer k.
func (p *Preloaded) FindRecord(k kmer.Kmer) (record.Record, bool, error) {
	if k.Size != p.g.KmerSize() || len(k.Packed) != 8*p.g.KmerBits() {
		return record.Record{}, false, fmt.Errorf("%w: query k=%d in %d packed bytes, graph k=%d", graphfile.ErrKmerSize, k.Size, len(k.Packed), p.g.KmerSize())
	}
	r, ok := p.records[k.Key()]

	return r, ok, nil
}

// FindByString canonicalizes s and looks it up.
func (p *Preloaded) FindByString(s string) (record.Record, bool, error) {
	if len(s) != p.g.KmerSize() {
		return record.Record{}, false, fmt.Errorf("%w: %q has length %d, k=%d", graphfile.ErrKmerSize, s, len(s), p.g.KmerSize())
	}
	k, err := kmer.Canonicalize(s)
	if err != nil {
		return record.Record{}, false, err
	}

	return p.FindRecord(k)
}

// Len returns the number of records held.
func (p *Preloaded) Len() int { return len(p.records) }

// Graph returns the backing graph.
func (p *Preloaded) Graph() *graphfile.Graph { return p.g }

// KmerSize returns k.
func (p *Preloaded) KmerSize() int { return p.g.KmerSize() }

// NumColors returns the number of colors.
func (p *Preloaded) NumColors() int { return p.g.NumColors() }

// Header returns the backing graph's header.
func (p *Preloaded) Header() graphfile.Header { return p.g.Header() }

// Next reads the next record from the backing graph.
func (p *Preloaded) Next() (record.Record, error) { return p.g.Next() }

// Iterate iterates the backing graph from its cursor.
func (p *Preloaded) Iterate() iter.Seq2[record.Record, error] { return p.g.Iterate() }

// All iterates the backing graph from the start.
func (p *Preloaded) All() iter.Seq2[record.Record, error] { return p.g.All() }
