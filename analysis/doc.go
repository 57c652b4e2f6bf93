// Package analysis is the query facade over a mutable core.Graph.
//
// A Network answers the questions a host asks of a social network: geodesic
// distance and path counts, centrality reports, the matrices of the network
// (adjacency, degree, Laplacian, cocitation, distances, shortest-path counts,
// inverse, dissimilarities), hierarchical clustering and layouts.
//
// Derived structures are memoized per projection (relation, weight policy,
// isolate handling) and keyed by the graph generation, so a mutation of the
// store invalidates every cache at once and the next query recomputes.
// Layout is pure: positions are returned, and written to the store only
// through StorePositions.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(1, 2, 1, core.WithEdgeType(core.Undirected))
//	n, _ := analysis.New(g)
//	r, _ := n.Centrality(centrality.Betweenness, analysis.CentralityParams{View: analysis.DefaultView()})
package analysis
