// SPDX-License-Identifier: MIT
package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
)

// ExampleCompute ranks the centre of a three-leaf star.
func ExampleCompute() {
	g := core.NewGraph()
	for leaf := 2; leaf <= 4; leaf++ {
		_ = g.AddEdge(1, leaf, 1, core.WithEdgeType(core.Undirected))
	}
	r, err := centrality.Compute(g.Snapshot(0), centrality.Betweenness)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s max=%d std=%.2f group=%.2f\n", r.Index.Abbrev(), r.Stats.MaxID, r.Scores[0].Std, r.Group)
	// Output:
	// BC max=1 std=1.00 group=1.00
}
