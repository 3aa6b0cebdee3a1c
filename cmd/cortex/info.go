package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cortexgraph/graphfile"
)

// graphInfo is the YAML document printed per graph.
type graphInfo struct {
	Path       string           `yaml:"path"`
	Size       string           `yaml:"size"`
	Records    string           `yaml:"records"`
	RecordSize int              `yaml:"record_size"`
	Digest     string           `yaml:"digest,omitempty"`
	Header     graphfile.Header `yaml:"header"`
}

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info graph...",
		Short: "Print the header and size of each graph as YAML",
		Long: `Print the header of each graph, its size and record count as one YAML
document per graph. With --digest, also print the BLAKE3 digest of the record
region, which is the same for graphs holding the same records whatever their
sample metadata.`,
		Example: "  cortex info --digest samples/*.ctx",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, _ := cmd.Flags().GetBool("digest")
			paths, err := expandGraphs(args)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			for _, p := range paths {
				info, err := a.describe(p, digest)
				if err != nil {
					return err
				}
				if err := enc.Encode(info); err != nil {
					return fmt.Errorf("encode %s: %w", p, err)
				}
			}

			return enc.Close()
		},
	}
	cmd.Flags().BoolP("digest", "d", false, "include the BLAKE3 digest of the records")

	return cmd
}

func (a *app) describe(path string, digest bool) (graphInfo, error) {
	g, err := graphfile.Open(path, a.cfg.GraphOptions()...)
	if err != nil {
		return graphInfo{}, err
	}
	defer g.Close()

	info := graphInfo{
		Path:       path,
		Size:       humanize.IBytes(uint64(g.FileSize())),
		Records:    humanize.Comma(g.NumRecords()),
		RecordSize: g.RecordSize(),
		Header:     g.Header(),
	}
	if digest {
		if info.Digest, err = g.Digest(); err != nil {
			return graphInfo{}, err
		}
	}

	return info, nil
}
