// Package config is for app wide settings that are unmarshalled from Viper:
// an optional cortex.yaml, CORTEX_* environment variables and command line
// flags bound by cmd/cortex, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/traversal"
)

// FileName is the settings file looked up, without extension.
const FileName = "cortex"

// EnvPrefix prefixes every environment override, e.g. CORTEX_GRAPH_CACHE_SIZE.
const EnvPrefix = "CORTEX"

// GraphConfig is settings for opening graph files.
type GraphConfig struct {
	// capacity of the per-graph decode cache
	CacheSize int `mapstructure:"cache-size"`

	// memory-map files instead of positioned reads
	Mmap bool `mapstructure:"mmap"`

	// scan every file once for order at open
	OrderCheck bool `mapstructure:"order-check"`
}

// TraversalConfig is the default walk settings.
type TraversalConfig struct {
	Policy    string `mapstructure:"policy"`
	Combine   string `mapstructure:"combine"`
	Direction string `mapstructure:"direction"`

	// 0 disables the bound
	MaxSize  int `mapstructure:"max-size"`
	MaxDepth int `mapstructure:"max-depth"`

	DustRun       int `mapstructure:"dust-run"`
	ShoreDistance int `mapstructure:"shore-distance"`
}

// Config is the root-level settings struct.
type Config struct {
	Graph     GraphConfig     `mapstructure:"graph"`
	Traversal TraversalConfig `mapstructure:"traversal"`
}

// NewViper returns a Viper instance with every default set, the search paths
// for cortex.yaml registered and the environment bound. It does not read the
// settings file.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("graph.cache-size", graphfile.DefaultCacheSize)
	v.SetDefault("graph.mmap", true)
	v.SetDefault("graph.order-check", false)

	limits := traversal.DefaultLimits()
	v.SetDefault("traversal.policy", traversal.Contig.String())
	v.SetDefault("traversal.combine", traversal.Or.String())
	v.SetDefault("traversal.direction", traversal.Forward.String())
	v.SetDefault("traversal.max-size", limits.MaxSize)
	v.SetDefault("traversal.max-depth", limits.MaxDepth)
	v.SetDefault("traversal.dust-run", limits.DustRun)
	v.SetDefault("traversal.shore-distance", limits.ShoreDistance)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".cortex"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the settings file into v, if one exists, and decodes the result.
// A file given explicitly with v.SetConfigFile must exist.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read settings: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode settings: %w", err)
	}

	return c, nil
}

// New loads settings from the default locations.
func New() (Config, error) { return Load(NewViper()) }

// GraphOptions converts the graph settings into graphfile options.
func (c Config) GraphOptions() []graphfile.Option {
	opts := []graphfile.Option{
		graphfile.WithCacheSize(c.Graph.CacheSize),
		graphfile.WithMmap(c.Graph.Mmap),
	}
	if c.Graph.OrderCheck {
		opts = append(opts, graphfile.WithOrderCheck())
	}

	return opts
}

// TraversalOptions converts the traversal settings into engine options.
// Unknown names are reported here rather than at traversal.New.
func (c Config) TraversalOptions() ([]traversal.Option, error) {
	t := c.Traversal

	p, err := traversal.ParsePolicy(t.Policy)
	if err != nil {
		return nil, err
	}
	comb, err := traversal.ParseCombine(t.Combine)
	if err != nil {
		return nil, err
	}
	dir, err := traversal.ParseDirection(t.Direction)
	if err != nil {
		return nil, err
	}

	return []traversal.Option{
		traversal.WithPolicy(p),
		traversal.WithCombine(comb),
		traversal.WithDirection(dir),
		traversal.WithMaxSize(t.MaxSize),
		traversal.WithMaxDepth(t.MaxDepth),
		traversal.WithDustRun(t.DustRun),
		traversal.WithShoreDistance(t.ShoreDistance),
	}, nil
}
