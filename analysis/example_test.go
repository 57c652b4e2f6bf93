// SPDX-License-Identifier: MIT
package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
)

// ExampleNetwork queries a five-vertex path, then extends it.
func ExampleNetwork() {
	g := core.NewGraph()
	for i := 1; i < 5; i++ {
		_ = g.AddEdge(i, i+1, 1, core.WithEdgeType(core.Undirected))
	}
	n, _ := analysis.New(g)

	fmt.Println(n.Diameter(), n.Distance(1, 5))
	ec, _ := n.Centrality(centrality.Eccentricity, analysis.CentralityParams{View: analysis.DefaultView()})
	fmt.Printf("EC(3)=%.2f\n", ec.Scores[2].Raw)

	_ = g.AddEdge(5, 6, 1, core.WithEdgeType(core.Undirected))
	fmt.Println(n.Diameter())
	// Output:
	// 4 4
	// EC(3)=0.50
	// 5
}
