package collection

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
)

var (
	// ErrNoGraphs is returned by New and Open without any graph.
	ErrNoGraphs = errors.New("collection: no graphs")

	// ErrKmerSizeMismatch indicates graphs built with different k.
	ErrKmerSizeMismatch = errors.New("collection: graphs have different k-mer sizes")

	// ErrClosed is returned by any operation on a closed collection.
	ErrClosed = errors.New("collection: use of closed collection")
)

// Collection presents several graph files with the same k as one graph whose
// colors are the files' colors laid end to end, in file order.
//
// The graphs passed to New are borrowed: iteration moves their cursors but
// Close leaves them open. Lookups go through separate handles the collection
// reopens from each graph's path on first use; those it owns and closes.
// A Collection is not safe for concurrent use.
type Collection struct {
	graphs  []*graphfile.Graph
	owned   bool // graphs were opened by Open
	lookups []*graphfile.Graph
	opts    []graphfile.Option

	header  graphfile.Header
	offsets []int // first virtual color of each graph
	source  []colorRef

	merge  *merger
	closed bool
}

// colorRef locates a virtual color.
type colorRef struct {
	file, local int
}

// New composes graphs. All must share one k-mer size.
func New(graphs ...*graphfile.Graph) (*Collection, error) {
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	k := graphs[0].KmerSize()
	c := &Collection{
		graphs:  slices.Clone(graphs),
		offsets: make([]int, len(graphs)),
	}
	var colors []graphfile.ColorMetadata
	for i, g := range graphs {
		if g.KmerSize() != k {
			return nil, fmt.Errorf("%w: %s has k=%d, %s has k=%d",
				ErrKmerSizeMismatch, graphs[0].Path(), k, g.Path(), g.KmerSize())
		}
		c.offsets[i] = len(colors)
		h := g.Header()
		for local := range h.Colors {
			c.source = append(c.source, colorRef{file: i, local: local})
		}
		colors = append(colors, h.Colors...)
	}
	c.header = graphfile.NewHeader(k, colors...)

	return c, nil
}

// Open opens every path with opts and composes the graphs. The collection
// owns them and closes them on Close. Lookup handles are opened with the
// same options.
func Open(paths []string, opts ...graphfile.Option) (*Collection, error) {
	if len(paths) == 0 {
		return nil, ErrNoGraphs
	}

	graphs := make([]*graphfile.Graph, 0, len(paths))
	closeAll := func() {
		for _, g := range graphs {
			g.Close()
		}
	}
	for _, p := range paths {
		g, err := graphfile.Open(p, opts...)
		if err != nil {
			closeAll()
			return nil, err
		}
		graphs = append(graphs, g)
	}

	c, err := New(graphs...)
	if err != nil {
		closeAll()
		return nil, err
	}
	c.owned = true
	c.opts = opts

	return c, nil
}

// Close closes the lookup handles, and the graphs themselves if the
// collection was built by Open. Borrowed graphs stay open.
func (c *Collection) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	var errs []error
	for _, g := range c.lookups {
		errs = append(errs, g.Close())
	}
	c.lookups = nil
	if c.owned {
		for _, g := range c.graphs {
			errs = append(errs, g.Close())
		}
	}

	return errors.Join(errs...)
}

// Header returns the union header.
func (c *Collection) Header() graphfile.Header { return c.header.Clone() }

// KmerSize returns k.
func (c *Collection) KmerSize() int { return c.header.KmerSize }

// NumColors returns the total number of virtual colors.
func (c *Collection) NumColors() int { return c.header.NumColors }

// NumGraphs returns the number of composed graphs.
func (c *Collection) NumGraphs() int { return len(c.graphs) }

// Graph returns the i-th composed graph.
func (c *Collection) Graph(i int) *graphfile.Graph { return c.graphs[i] }

// Color returns the metadata of virtual color v.
func (c *Collection) Color(v int) graphfile.ColorMetadata { return c.header.Colors[v] }

// ColorForSampleName returns the first virtual color with that sample name,
// or -1.
func (c *Collection) ColorForSampleName(name string) int {
	return c.header.ColorForSampleName(name)
}

// Source maps virtual color v to its graph index and local color.
func (c *Collection) Source(v int) (file, local int) {
	r := c.source[v]

	return r.file, r.local
}

// ColorOffset returns the first virtual color of graph i.
func (c *Collection) ColorOffset(i int) int { return c.offsets[i] }

// FindRecord looks the canonical k-mer k up in every graph and returns the
// composite record, with zero coverage and edges for colors of graphs that
// lack it. found is false only if no graph has k.
func (c *Collection) FindRecord(k kmer.Kmer) (record.Record, bool, error) {
	if c.closed {
		return record.Record{}, false, ErrClosed
	}
	if k.Size != c.header.KmerSize {
		return record.Record{}, false, fmt.Errorf("%w: query k=%d, collection k=%d", graphfile.ErrKmerSize, k.Size, c.header.KmerSize)
	}
	if err := c.openLookups(); err != nil {
		return record.Record{}, false, err
	}

	comp := newComposite(c.header.NumColors)
	found := false
	for i, g := range c.lookups {
		r, ok, err := g.FindRecord(k)
		if err != nil {
			return record.Record{}, false, err
		}
		if ok {
			comp.scatter(r, c.offsets[i])
			found = true
		}
	}
	if !found {
		return record.Record{}, false, nil
	}

	rec, err := record.New(k.Packed, comp.coverage, comp.edges)

	return rec, err == nil, err
}

// FindByString canonicalizes s and looks it up.
func (c *Collection) FindByString(s string) (record.Record, bool, error) {
	if len(s) != c.header.KmerSize {
		return record.Record{}, false, fmt.Errorf("%w: %q has length %d, k=%d", graphfile.ErrKmerSize, s, len(s), c.header.KmerSize)
	}
	k, err := kmer.Canonicalize(s)
	if err != nil {
		return record.Record{}, false, err
	}

	return c.FindRecord(k)
}

// openLookups reopens every graph once for random access.
func (c *Collection) openLookups() error {
	if c.lookups != nil {
		return nil
	}

	lookups := make([]*graphfile.Graph, 0, len(c.graphs))
	for _, g := range c.graphs {
		h, err := graphfile.Open(g.Path(), c.opts...)
		if err != nil {
			for _, l := range lookups {
				l.Close()
			}
			return fmt.Errorf("collection: reopen %s: %w", g.Path(), err)
		}
		lookups = append(lookups, h)
	}
	c.lookups = lookups

	return nil
}

// composite accumulates per-graph records into virtual color slots.
type composite struct {
	coverage []uint32
	edges    []byte
}

func newComposite(numColors int) composite {
	return composite{coverage: make([]uint32, numColors), edges: make([]byte, numColors)}
}

func (cp composite) scatter(r record.Record, offset int) {
	for local := 0; local < r.NumColors(); local++ {
		cp.coverage[offset+local] = r.Coverage(local)
		cp.edges[offset+local] = r.Edge(local)
	}
}
