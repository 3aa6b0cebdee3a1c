package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cortexgraph/graphfile"
)

func newMergeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge -o out.ctx graph...",
		Short: "Merge graphs into one multi-color graph file",
		Long: `Merge graphs with the same k-mer size into a single sorted graph file whose
colors are the input colors in argument order. A k-mer present in several
inputs is written once, carrying each input's coverage and edges.`,
		Example: "  cortex merge -o all.ctx 'samples/**/*.ctx'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return errors.New("no --out given")
			}

			c, err := a.openCollection(args)
			if err != nil {
				return err
			}
			defer c.Close()

			n, err := graphfile.WriteAll(out, c.Header(), c.All())
			if err != nil {
				return err
			}
			st, err := os.Stat(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s records, %d colors, %s to %s\n",
				humanize.Comma(n), c.NumColors(), humanize.IBytes(uint64(st.Size())), out)

			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "output graph file")

	return cmd
}
