// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/cluster"
)

// clusterCommand runs hierarchical clustering.
func (c *CLI) clusterCommand() *cobra.Command {
	var (
		linkage   string
		metric    string
		variables string
		distances bool
		cut       int
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Hierarchical clustering of the actors",
		Long: `Agglomerative clustering over tie-profile dissimilarities or, with
--distances, over geodesic distances. Prints the merge sequence and, with
--cut k, a flat partition into k clusters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			cs := s.profile.Cluster
			f := cmd.Flags()
			if f.Changed("linkage") {
				cs.Linkage = linkage
			}
			if f.Changed("metric") {
				cs.Metric = metric
			}
			if f.Changed("variables") {
				cs.Variables = variables
			}
			if f.Changed("distances") {
				cs.Distances = distances
			}
			if f.Changed("cut") {
				cs.Cut = cut
			}

			return c.runCluster(s, cs)
		},
	}

	cmd.Flags().StringVarP(&linkage, "linkage", "l", "", "linkage: single, complete, average")
	cmd.Flags().StringVar(&metric, "metric", "", "dissimilarity metric: euclidean, manhattan, hamming, jaccard, chebyshev")
	cmd.Flags().StringVar(&variables, "variables", "", "profile: rows, columns, both")
	cmd.Flags().BoolVar(&distances, "distances", false, "cluster on geodesic distances")
	cmd.Flags().IntVar(&cut, "cut", 0, "print a flat partition into k clusters")

	return cmd
}

func (c *CLI) runCluster(s *session, cs ClusterSection) error {
	l, err := cluster.ParseLinkage(cs.Linkage)
	if err != nil {
		return err
	}
	params := analysis.ClusterParams{View: s.view, Linkage: l, UseDistances: cs.Distances}
	if params.Metric, err = parseMetric(cs.Metric); err != nil {
		return err
	}
	if params.Variables, err = parseVariables(cs.Variables); err != nil {
		return err
	}

	p := newProgress(c.Logger)
	res, err := s.net.Cluster(params)
	if err != nil {
		return err
	}
	p.done("clustered " + strconv.Itoa(len(res.IDs)) + " actors")

	// Cluster ids below N are leaves; print them as vertex ids.
	label := func(id int) string {
		if id < len(res.IDs) {
			return "v" + strconv.Itoa(res.IDs[id])
		}
		return "c" + strconv.Itoa(id)
	}
	rows := make([][]string, len(res.Dendrogram.Merges))
	for i, m := range res.Dendrogram.Merges {
		rows[i] = []string{
			strconv.Itoa(i + 1), label(m.A), label(m.B), label(m.Into), num(m.Level), strconv.Itoa(m.Size),
		}
	}
	printTitle(c.Out, "Hierarchical clustering (%s linkage)", l)
	printTable(c.Out, []string{"step", "a", "b", "into", "level", "size"}, rows)

	order := make([]string, len(res.Dendrogram.Order))
	for i, leaf := range res.Dendrogram.Order {
		order[i] = strconv.Itoa(res.IDs[leaf])
	}
	printKeyValue(c.Out, "leaf order", fmt.Sprint(order))

	if cs.Cut > 0 {
		labels, err := res.Dendrogram.Cut(cs.Cut)
		if err != nil {
			return err
		}
		groups := make([][]string, cs.Cut)
		for i, g := range labels {
			groups[g] = append(groups[g], strconv.Itoa(res.IDs[i]))
		}
		for g, members := range groups {
			printKeyValue(c.Out, "cluster "+strconv.Itoa(g), fmt.Sprint(members))
		}
	}

	return nil
}
