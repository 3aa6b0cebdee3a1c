package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cortexgraph/collection"
	"github.com/katalvlaran/cortexgraph/record"
)

// finder is satisfied by *collection.Collection and *collection.Preloaded.
type finder interface {
	FindByString(s string) (record.Record, bool, error)
	KmerSize() int
}

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find graph...",
		Short: "Look k-mers up in one or more graphs",
		Long: `Look up each --kmer in the graphs, in either orientation. Found k-mers are
printed as 'cortex view' prints them; missing ones as '<kmer> not found'.
With --preload a single graph is loaded into a hash map first, which pays
off for many lookups.`,
		Example: "  cortex find -k ACGTACGTACGTACGTACGTA -k TTTTTTTTTTTTTTTTTTTTT a.ctx b.ctx",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kmers, _ := cmd.Flags().GetStringSlice("kmer")
			preload, _ := cmd.Flags().GetBool("preload")
			if len(kmers) == 0 {
				return errors.New("no --kmer given")
			}

			c, err := a.openCollection(args)
			if err != nil {
				return err
			}
			defer c.Close()

			var f finder = c
			if preload {
				if c.NumGraphs() != 1 {
					return errors.New("--preload takes exactly one graph")
				}
				if f, err = collection.Preload(c.Graph(0)); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, s := range kmers {
				r, ok, err := f.FindByString(s)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(out, "%s not found\n", s)
					continue
				}
				fmt.Fprintln(out, r.Format(f.KmerSize()))
			}

			return nil
		},
	}
	cmd.Flags().StringSliceP("kmer", "k", nil, "k-mer to look up (repeatable)")
	cmd.Flags().Bool("preload", false, "load the graph into memory before looking up")

	return cmd
}
