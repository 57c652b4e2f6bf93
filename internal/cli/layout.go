// SPDX-License-Identifier: MIT

package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/layout"
)

// layoutCommand computes force-directed positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		algorithm  string
		iterations int
		seed       int64
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a force-directed layout",
		Long: `Compute vertex positions with the spring embedder (spring),
Fruchterman-Reingold (fr) or Kamada-Kawai (kk). Positions always lie inside
the canvas less its margin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			ls := s.profile.Layout
			f := cmd.Flags()
			if f.Changed("algorithm") {
				ls.Algorithm = algorithm
			}
			if f.Changed("iterations") {
				ls.Iterations = iterations
			}
			if f.Changed("layout-seed") {
				ls.Seed = seed
			}
			if f.Changed("width") {
				ls.Width = width
			}
			if f.Changed("height") {
				ls.Height = height
			}

			return c.runLayout(s, ls)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "algorithm: spring, fr, kk")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "iteration budget (0 = algorithm default)")
	cmd.Flags().Int64Var(&seed, "layout-seed", 0, "seed of the random initial placement")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height")

	return cmd
}

func (c *CLI) runLayout(s *session, ls LayoutSection) error {
	alg, err := layout.ParseAlgorithm(ls.Algorithm)
	if err != nil {
		return err
	}
	params := analysis.DefaultLayoutParams()
	params.Relation = s.view.Relation
	params.Algorithm = alg
	params.Iterations = ls.Iterations
	params.Seed = ls.Seed
	params.Canvas = layout.Canvas{Width: ls.Width, Height: ls.Height, Margin: ls.Margin}

	p := newProgress(c.Logger)
	res, err := s.net.Layout(params)
	if err != nil {
		return err
	}
	p.done(alg.String() + " layout after " + strconv.Itoa(res.Iterations) + " iterations")

	ids := make([]int, 0, len(res.Positions))
	for id := range res.Positions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	rows := make([][]string, len(ids))
	for i, id := range ids {
		pos := res.Positions[id]
		rows[i] = []string{strconv.Itoa(id), strconv.FormatFloat(pos.X, 'f', 2, 64), strconv.FormatFloat(pos.Y, 'f', 2, 64)}
	}
	printTitle(c.Out, "Layout (%s)", alg)
	printTable(c.Out, []string{"vertex", "x", "y"}, rows)
	if res.Converged {
		printSuccess(c.Out, "converged after %d iterations", res.Iterations)
	} else {
		printWarning(c.Out, "iteration budget of %d exhausted", res.Iterations)
	}

	return nil
}
