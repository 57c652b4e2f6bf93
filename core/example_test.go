// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Undirected edges auto-create vertices and store both arcs.
	_ = g.AddEdge(1, 2, 1, core.WithEdgeType(core.Undirected))
	_ = g.AddEdge(2, 3, 1, core.WithEdgeType(core.Undirected))
	_ = g.AddEdge(3, 1, 2)

	fmt.Println("Vertices:", g.VertexIDs())
	fmt.Println("2→1 weight:", g.EdgeWeight(2, 1, g.CurrentRelation()))

	_ = g.RemoveVertex(2)
	fmt.Println("After removing 2:", g.VertexIDs(), "index of 3:", g.IndexOf(3))
	fmt.Println("1→2 weight:", g.EdgeWeight(1, 2, g.CurrentRelation()))

	// Output:
	// Vertices: [1 2 3]
	// 2→1 weight: 1
	// After removing 2: [1 3] index of 3: 1
	// 1→2 weight: 0
}

// ExampleGraph_Snapshot shows the index-based projection used by algorithms.
func ExampleGraph_Snapshot() {
	g := core.NewGraph()
	_ = g.AddVertex(7)
	_ = g.AddEdge(1, 2, 3)

	s := g.Snapshot(0, core.WithoutIsolates())
	fmt.Println(s.N(), s.IDs(), s.Weight(s.Index(1), s.Index(2)), s.Symmetric())

	// Output:
	// 2 [1 2] 3 false
}
