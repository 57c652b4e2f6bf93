// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// infoCommand prints size and distance summaries of the network.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the network: size, diameter, average distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}

			return c.runInfo(s)
		},
	}
}

func (c *CLI) runInfo(s *session) error {
	tab, err := s.net.Paths(s.view)
	if err != nil {
		return err
	}
	snap := s.net.Snapshot(s.view)
	st := s.graph.Stats()

	printTitle(c.Out, "Network")
	printKeyValue(c.Out, "relations", strings.Join(s.graph.Relations(), ", "))
	printKeyValue(c.Out, "vertices", strconv.Itoa(snap.N()))
	printKeyValue(c.Out, "arcs", strconv.Itoa(snap.ArcCount()))
	printKeyValue(c.Out, "symmetric", strconv.FormatBool(snap.Symmetric()))
	printKeyValue(c.Out, "diameter", num(tab.Diameter))
	printKeyValue(c.Out, "avg distance", num(tab.AverageDistance))
	printKeyValue(c.Out, "connected", strconv.FormatBool(tab.Connected))
	printKeyValue(c.Out, "generation", strconv.FormatUint(st.Generation, 10))
	if !tab.Connected {
		printWarning(c.Out, "%d ordered pairs are unreachable", tab.Unreached)
	}

	return nil
}
