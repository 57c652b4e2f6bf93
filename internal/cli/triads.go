// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/cluster"
)

// triadsCommand prints the triad census and clustering coefficients.
func (c *CLI) triadsCommand() *cobra.Command {
	var coefficients bool

	cmd := &cobra.Command{
		Use:   "triads",
		Short: "Triad census and local clustering coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}

			return c.runTriads(s, coefficients)
		},
	}

	cmd.Flags().BoolVar(&coefficients, "clc", true, "also print local clustering coefficients")

	return cmd
}

func (c *CLI) runTriads(s *session, coefficients bool) error {
	census, err := s.net.TriadCensus(s.view)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(census))
	for t := cluster.Triad003; t <= cluster.Triad300; t++ {
		rows = append(rows, []string{t.String(), strconv.Itoa(census[t]), fmt.Sprintf("%.2f%%", census.Percent(t))})
	}
	printTitle(c.Out, "Triad census (%d triads)", census.Total())
	printTable(c.Out, []string{"type", "count", "share"}, rows)

	if !coefficients {
		return nil
	}
	clc, err := s.net.ClusteringCoefficient(s.view)
	if err != nil {
		return err
	}
	rows = rows[:0]
	for _, sc := range clc.Scores {
		rows = append(rows, []string{strconv.Itoa(sc.ID), num(sc.Value), strconv.Itoa(sc.Neighbours), strconv.Itoa(sc.Ties)})
	}
	printTitle(c.Out, "Clustering coefficients")
	printTable(c.Out, []string{"vertex", "clc", "neighbours", "ties"}, rows)
	printKeyValue(c.Out, "mean", num(clc.Mean))
	printKeyValue(c.Out, "variance", num(clc.Variance))

	return nil
}
