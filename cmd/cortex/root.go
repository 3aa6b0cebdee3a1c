package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cortexgraph/collection"
	"github.com/katalvlaran/cortexgraph/config"
	"github.com/katalvlaran/cortexgraph/graphfile"
)

const version = "0.1.0"

// app is the state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// newRootCmd builds the command tree. Each call gets its own Viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "cortex",
		Short: "Inspect, merge and traverse colored de Bruijn graphs",
		Long: `Inspect, merge and traverse colored de Bruijn graphs in the Cortex binary
format. Graph arguments may be glob patterns ('samples/**/*.ctx'); several
graphs with the same k-mer size are combined into one multi-color graph.

Settings are read from cortex.yaml in the working directory or in
$HOME/.cortex, then from CORTEX_* environment variables, then from flags.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "settings file (default ./cortex.yaml, then $HOME/.cortex/cortex.yaml)")
	pf.Int("cache-size", graphfile.DefaultCacheSize, "decode cache capacity per graph")
	pf.Bool("mmap", true, "memory-map graph files instead of positioned reads")
	pf.Bool("order-check", false, "verify record order of every graph when it is opened")
	a.v.BindPFlag("graph.cache-size", pf.Lookup("cache-size"))
	a.v.BindPFlag("graph.mmap", pf.Lookup("mmap"))
	a.v.BindPFlag("graph.order-check", pf.Lookup("order-check"))

	root.AddCommand(
		newInfoCmd(a),
		newViewCmd(a),
		newFindCmd(a),
		newMergeCmd(a),
		newWalkCmd(a),
		newDumpCmd(a),
		newDocsCmd(),
	)

	return root
}

// load resolves settings once flags are parsed.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if f, _ := cmd.Flags().GetString("config"); f != "" {
		a.v.SetConfigFile(f)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// openCollection expands patterns and opens the matched graphs as one
// collection.
func (a *app) openCollection(patterns []string) (*collection.Collection, error) {
	paths, err := expandGraphs(patterns)
	if err != nil {
		return nil, err
	}

	return collection.Open(paths, a.cfg.GraphOptions()...)
}

// expandGraphs resolves glob patterns to files. Plain paths are kept as given
// so that a missing file reports its own name when opened.
func expandGraphs(patterns []string) ([]string, error) {
	var paths []string
	for _, p := range patterns {
		if !strings.ContainsAny(p, "*?[{") {
			paths = append(paths, p)
			continue
		}

		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no graph matches %q", p)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, collection.ErrNoGraphs
	}

	return paths, nil
}
