package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cortexgraph/config"
	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/kmer"
	"github.com/katalvlaran/cortexgraph/record"
	"github.com/katalvlaran/cortexgraph/traversal"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := config.Load(config.NewViper())
	require.NoError(t, err)

	assert.Equal(t, graphfile.DefaultCacheSize, c.Graph.CacheSize)
	assert.True(t, c.Graph.Mmap)
	assert.False(t, c.Graph.OrderCheck)
	assert.Equal(t, "contig", c.Traversal.Policy)
	assert.Equal(t, "or", c.Traversal.Combine)
	assert.Equal(t, "forward", c.Traversal.Direction)
	assert.Equal(t, traversal.DefaultMaxSize, c.Traversal.MaxSize)
	assert.Equal(t, traversal.DefaultDustRun, c.Traversal.DustRun)
	assert.Equal(t, traversal.DefaultShoreDistance, c.Traversal.ShoreDistance)

	opts, err := c.TraversalOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 7)
	assert.Len(t, c.GraphOptions(), 2)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cortex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  cache-size: 64
  mmap: false
  order-check: true
traversal:
  policy: bubble
  direction: both
  max-depth: 40
`), 0o644))
	t.Setenv("CORTEX_TRAVERSAL_COMBINE", "and")
	t.Setenv("CORTEX_GRAPH_CACHE_SIZE", "128")

	v := config.NewViper()
	v.SetConfigFile(path)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 128, c.Graph.CacheSize, "environment beats file")
	assert.False(t, c.Graph.Mmap)
	assert.True(t, c.Graph.OrderCheck)
	assert.Equal(t, "bubble", c.Traversal.Policy)
	assert.Equal(t, "and", c.Traversal.Combine)
	assert.Equal(t, "both", c.Traversal.Direction)
	assert.Equal(t, 40, c.Traversal.MaxDepth)
	assert.Len(t, c.GraphOptions(), 3)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	v := config.NewViper()
	v.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := config.Load(v)
	require.Error(t, err)
}

func TestTraversalOptions_Invalid(t *testing.T) {
	base := config.Config{Traversal: config.TraversalConfig{
		Policy: "contig", Combine: "or", Direction: "forward", DustRun: 1, ShoreDistance: 1,
	}}
	for name, mutate := range map[string]func(*config.Config){
		"Policy":    func(c *config.Config) { c.Traversal.Policy = "meander" },
		"Combine":   func(c *config.Config) { c.Traversal.Combine = "xor" },
		"Direction": func(c *config.Config) { c.Traversal.Direction = "sideways" },
	} {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			_, err := c.TraversalOptions()
			require.ErrorIs(t, err, traversal.ErrOptionViolation)
		})
	}

	// Out-of-range limits surface at traversal.New.
	c := base
	c.Traversal.DustRun = 0
	opts, err := c.TraversalOptions()
	require.NoError(t, err)
	_, err = traversal.New(nilGraph{}, opts...)
	require.ErrorIs(t, err, traversal.ErrOptionViolation)
}

// nilGraph is an empty one-color graph.
type nilGraph struct{}

func (nilGraph) KmerSize() int  { return 21 }
func (nilGraph) NumColors() int { return 1 }
func (nilGraph) FindRecord(kmer.Kmer) (record.Record, bool, error) {
	return record.Record{}, false, nil
}
