package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cortexgraph/graphfile"
	"github.com/katalvlaran/cortexgraph/traversal"
)

func newWalkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk --seed KMER graph...",
		Short: "Traverse the graph from a seed k-mer",
		Long: `Traverse the graph from --seed and print the outcome, the number of steps
and vertices, and the contig spelled along the walk.

A linear walk (the default) follows unambiguous edges until the policy
accepts or rejects, or the path branches. --dfs explores every branch
instead and prints the vertices of the accepted subgraph.

Policies: contig, bubble, tip, dust, orphan, shore. 'shore' needs --roi.`,
		Example: `  cortex walk --seed ACGTACGTACGTACGTACGTA --direction both a.ctx
  cortex walk --seed ACGTACGTACGTACGTACGTA --policy bubble --colors 0 --join 1 ref.ctx sample.ctx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			seed, _ := f.GetString("seed")
			dfs, _ := f.GetBool("dfs")
			edges, _ := f.GetBool("edges")
			colors, _ := f.GetIntSlice("colors")
			join, _ := f.GetIntSlice("join")
			roi, _ := f.GetString("roi")
			if seed == "" {
				return errors.New("no --seed given")
			}

			opts, err := a.cfg.TraversalOptions()
			if err != nil {
				return err
			}
			if len(colors) > 0 {
				opts = append(opts, traversal.WithTraversalColors(colors...))
			}
			if len(join) > 0 {
				opts = append(opts, traversal.WithJoiningColors(join...))
			}
			if roi != "" {
				r, err := graphfile.Open(roi, a.cfg.GraphOptions()...)
				if err != nil {
					return err
				}
				defer r.Close()
				opts = append(opts, traversal.WithROI(r))
			}

			c, err := a.openCollection(args)
			if err != nil {
				return err
			}
			defer c.Close()

			e, err := traversal.New(c, opts...)
			if err != nil {
				return err
			}

			var res *traversal.Result
			if dfs {
				res, err = e.DFS(seed)
			} else {
				res, err = e.Walk(seed)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "outcome\t%s\ndepth\t%d\nvertices\t%d\nedges\t%d\n",
				res.Outcome, res.Depth, res.Subgraph.Order(), res.Subgraph.EdgeCount())
			if contig := res.Contig(); contig != "" {
				fmt.Fprintf(out, "contig\t%s\n", contig)
			}
			if dfs {
				for _, v := range res.Subgraph.Vertices() {
					fmt.Fprintf(out, "vertex\t%s\n", v.Kmer)
				}
			}
			if edges {
				for _, ed := range res.Subgraph.Edges() {
					fmt.Fprintf(out, "edge\t%s\t%s\t%c\n", ed.From, ed.To, ed.Base)
				}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("seed", "s", "", "seed k-mer, in the orientation to walk")
	f.Bool("dfs", false, "explore all branches instead of a linear walk")
	f.Bool("edges", false, "print the edges of the result")
	f.IntSlice("colors", nil, "traversal colors (default 0)")
	f.IntSlice("join", nil, "joining colors that may end a walk")
	f.String("roi", "", "region-of-interest graph for the shore policy")
	f.StringP("policy", "p", traversal.Contig.String(), "stopping policy")
	f.String("combine", traversal.Or.String(), "how edges of several traversal colors combine: or, and")
	f.StringP("direction", "d", traversal.Forward.String(), "forward, backward or both")
	f.Int("max-size", traversal.DefaultMaxSize, "stop after this many vertices (0 for no limit)")
	f.Int("max-depth", 0, "stop after this many steps (0 for no limit)")
	f.Int("dust-run", traversal.DefaultDustRun, "branching run that marks a dust region")
	f.Int("shore-distance", traversal.DefaultShoreDistance, "steps past the region of interest for shore")
	for _, name := range []string{"policy", "combine", "direction", "max-size", "max-depth", "dust-run", "shore-distance"} {
		a.v.BindPFlag("traversal."+name, f.Lookup(name))
	}

	return cmd
}
