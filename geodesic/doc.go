// Package geodesic computes shortest paths over a core.Snapshot.
//
// Solve runs one source: a breadth-first search when arcs are unweighted, or
// Dijkstra's algorithm (lazy decrease-key over a generic MinHeap) when
// WithWeights is given. Besides distances it counts shortest paths (sigma)
// and records predecessors and settle order, so betweenness and stress can be
// accumulated in a single backward pass.
//
// AllPairs repeats Solve for every source into a Table with diameter,
// average distance and connectivity. WithVisitor hands each single-source
// Result to the caller before the Workspace is reused, which lets the
// centrality engine accumulate without a second sweep.
//
// Unreachable vertices have distance Inf (+Inf) and sigma 0. Arcs of
// weight 0 are not traversed; negative weights are rejected in weighted mode.
//
// Complexity:
//
//   - BFS:      O(V + E) per source.
//   - Dijkstra: O((V + E) log V) per source.
//   - AllPairs: V times the above; O(V²) memory for the table.
package geodesic
