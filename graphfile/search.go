package graphfile

import (
	"fmt"

	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
)

// FindRecord looks up the canonical k-mer k by binary search over the
// records. A miss is reported as found == false with a nil error.
//
// Order is sampled, not assumed: at every step the records at the low, middle
// and high bounds must be ascending, otherwise FindRecord returns an
// *IntegrityError instead of a possibly wrong answer.
//
// Complexity: O(log N) record decodes, fewer on cache hits.
func (g *Graph) FindRecord(k kmer.Kmer) (record.Record, bool, error) {
	if g.closed {
		return record.Record{}, false, ErrClosed
	}
	if k.Size != g.header.KmerSize || len(k.Packed) != 8*g.header.KmerBits {
		return record.Record{}, false, fmt.Errorf("%w: query k=%d in %d packed bytes, graph k=%d in %d", ErrKmerSize, k.Size, len(k.Packed), g.header.KmerSize, 8*g.header.KmerBits)
	}

	if r, ok := g.cache.kmer(k.Key()); ok {
		return r, true, nil
	}

	lo, hi := int64(0), g.numRecords-1
	for lo <= hi {
		mid := lo + (hi-lo)/2

		start, err := g.recordAt(lo)
		if err != nil {
			return record.Record{}, false, err
		}
		stop, err := g.recordAt(hi)
		if err != nil {
			return record.Record{}, false, err
		}
		cur, err := g.recordAt(mid)
		if err != nil {
			return record.Record{}, false, err
		}

		if record.Compare(start, stop) > 0 || record.Compare(start, cur) > 0 || record.Compare(cur, stop) > 0 {
			return record.Record{}, false, &IntegrityError{
				Path:   g.path,
				Index:  mid,
				Reason: fmt.Sprintf("records %d, %d, %d are not ascending", lo, mid, hi),
			}
		}

		switch c := cur.CompareKmer(k.Packed); {
		case c == 0:
			return cur, true, nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return record.Record{}, false, nil
}

// FindByString canonicalizes s and looks it up.
func (g *Graph) FindByString(s string) (record.Record, bool, error) {
	if len(s) != g.header.KmerSize {
		return record.Record{}, false, fmt.Errorf("%w: %q has length %d, graph k=%d", ErrKmerSize, s, len(s), g.header.KmerSize)
	}
	k, err := kmer.Canonicalize(s)
	if err != nil {
		return record.Record{}, false, err
	}

	return g.FindRecord(k)
}

// Contains reports whether the canonical k-mer k is present.
func (g *Graph) Contains(k kmer.Kmer) (bool, error) {
	_, found, err := g.FindRecord(k)

	return found, err
}
