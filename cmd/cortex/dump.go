package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cortexgraph/record"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump graph...",
		Short: "Write records as tab-separated values",
		Long: `Write one tab-separated line per k-mer with a header row: the k-mer, the
coverage of each color, then the edges of each color. Output goes to stdout
or to --out; a name ending in .zst is zstd-compressed.`,
		Example: "  cortex dump -o sample.tsv.zst sample.ctx",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			path, _ := cmd.Flags().GetString("out")

			c, err := a.openCollection(args)
			if err != nil {
				return err
			}
			defer c.Close()

			var w io.Writer = cmd.OutOrStdout()
			if path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			if strings.HasSuffix(path, ".zst") {
				enc, err := zstd.NewWriter(w)
				if err != nil {
					return fmt.Errorf("creating zstd encoder: %w", err)
				}
				defer func() {
					if cerr := enc.Close(); err == nil {
						err = cerr
					}
				}()
				w = enc
			}

			bw := bufio.NewWriter(w)
			h := c.Header()
			cols := []string{"kmer"}
			for _, col := range h.Colors {
				cols = append(cols, "cov_"+col.SampleName)
			}
			for _, col := range h.Colors {
				cols = append(cols, "edges_"+col.SampleName)
			}
			fmt.Fprintln(bw, strings.Join(cols, "\t"))

			k := c.KmerSize()
			for r, err := range c.All() {
				if err != nil {
					return err
				}
				bw.WriteString(r.KmerString(k))
				for _, cov := range r.Coverages() {
					fmt.Fprintf(bw, "\t%d", cov)
				}
				for _, e := range r.EdgeCodes() {
					bw.WriteByte('\t')
					bw.WriteString(record.EdgeString(e))
				}
				bw.WriteByte('\n')
			}

			return bw.Flush()
		},
	}
	cmd.Flags().StringP("out", "o", "", "output file (default stdout); .zst compresses")

	return cmd
}
