package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view graph...",
		Short: "Print records in k-mer order",
		Long: `Print one line per k-mer: the canonical k-mer, its coverage in each color,
then its edges in each color. Edges read "acgtACGT": lower case letters are
bases that can precede the k-mer, upper case letters bases that can follow it.
Several graphs are merged and shown as one.`,
		Example: "  cortex view --limit 10 sample.ctx",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			c, err := a.openCollection(args)
			if err != nil {
				return err
			}
			defer c.Close()

			out := bufio.NewWriter(cmd.OutOrStdout())
			k := c.KmerSize()
			n := 0
			for r, err := range c.All() {
				if err != nil {
					return err
				}
				if limit > 0 && n == limit {
					break
				}
				fmt.Fprintln(out, r.Format(k))
				n++
			}

			return out.Flush()
		},
	}
	cmd.Flags().IntP("limit", "n", 0, "stop after this many records (0 for all)")

	return cmd
}
