// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/matrix"
)

// centralityCommand reports one or more indices per vertex.
func (c *CLI) centralityCommand() *cobra.Command {
	var (
		indices   string
		histogram bool
	)

	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Compute centrality and prestige indices",
		Long: `Compute centrality and prestige indices for every vertex.

Indices are given by abbreviation or name, comma separated:
DC, CC, IRCC, BC, SC, EC, PC, EVC, IC, DP, PRP, PP, or "all".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := parseIndices(indices)
			if err != nil {
				return err
			}
			s, err := c.open(cmd)
			if err != nil {
				return err
			}

			return c.runCentrality(s, list, histogram)
		},
	}

	cmd.Flags().StringVarP(&indices, "index", "i", "DC", "indices to compute (comma separated, or all)")
	cmd.Flags().BoolVar(&histogram, "histogram", false, "print the distribution of standardized scores")

	return cmd
}

// parseIndices resolves a comma-separated index list.
func parseIndices(s string) ([]centrality.Index, error) {
	if s == "all" {
		return centrality.Indices, nil
	}
	var out []centrality.Index
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		idx, err := centrality.ParseIndex(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		out = append(out, idx)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", centrality.ErrUnknownIndex)
	}

	return out, nil
}

func (c *CLI) runCentrality(s *session, indices []centrality.Index, histogram bool) error {
	for _, idx := range indices {
		p := newProgress(c.Logger)
		r, err := s.net.Centrality(idx, analysis.CentralityParams{View: s.view})
		if err != nil {
			// A singular Information run still carries its zero report.
			if r == nil || !errors.Is(err, matrix.ErrSingular) {
				return fmt.Errorf("%s: %w", idx.Abbrev(), err)
			}
			printWarning(c.Out, "%s: %v", idx.Abbrev(), err)
		}
		p.done("computed " + idx.String())
		c.printReport(r, histogram)
	}

	return nil
}

func (c *CLI) printReport(r *centrality.Report, histogram bool) {
	printTitle(c.Out, "%s (%s)", r.Index.Abbrev(), r.Index)

	rows := make([][]string, len(r.Scores))
	for i, sc := range r.Scores {
		rows[i] = []string{strconv.Itoa(sc.ID), num(sc.Raw), num(sc.Std)}
	}
	printTable(c.Out, []string{"vertex", "raw", "std"}, rows)

	st := r.Stats
	printKeyValue(c.Out, "mean", num(st.Mean))
	printKeyValue(c.Out, "variance", num(st.Variance))
	printKeyValue(c.Out, "max", fmt.Sprintf("%s (vertex %d)", num(st.Max), st.MaxID))
	printKeyValue(c.Out, "min", fmt.Sprintf("%s (vertex %d)", num(st.Min), st.MinID))
	printKeyValue(c.Out, "group", num(r.Group))
	if !r.Connected {
		printWarning(c.Out, "network is not connected; %d vertices excluded", len(r.Excluded))
	}
	if !r.Converged {
		printWarning(c.Out, "no convergence after %d iterations", r.Iterations)
	}

	if histogram {
		hist := make([][]string, len(r.Histogram))
		for i, b := range r.Histogram {
			hist[i] = []string{num(b.Value), strconv.Itoa(b.Count)}
		}
		printTable(c.Out, []string{"std", "vertices"}, hist)
	}
}
