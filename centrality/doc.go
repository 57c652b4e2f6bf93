// Package centrality computes vertex centrality and prestige indices over a
// core.Snapshot and reports them with standardized values, aggregate
// statistics, a network-level group index and a value histogram.
//
// Supported indices:
//
//	DC   Degree            out-degree (arc count or weight sum)
//	CC   Closeness         1/Σd, defined only for vertices reaching everyone
//	IRCC InfluenceRange    closeness restricted to the reachable set
//	BC   Betweenness       Brandes accumulation of pair dependencies
//	SC   Stress            number of shortest paths through a vertex
//	EC   Eccentricity      1/ecc, defined only for vertices reaching everyone
//	PC   Power             Σ 1/d over reachable vertices (harmonic closeness)
//	EVC  Eigenvector       leading eigenvector of the adjacency matrix
//	IC   Information       Stephenson–Zelen, on the symmetrized graph
//	DP   DegreePrestige    in-degree
//	PRP  PageRank          damped random walk, dangling mass not redistributed
//	PP   Proximity         influence range over incoming distances
//
// The distance indices share one all-pairs sweep (package geodesic);
// ComputeAll exploits that. Undefined values never fail a run: the vertex
// scores 0 and is listed in Report.Excluded. The one exception is IC on a
// singular system, which returns a zero Report along with an error wrapping
// matrix.ErrSingular.
//
// Symmetric graphs (every arc reciprocated, or equal weights both ways when
// weighted) count each unordered pair once for BC and SC and use the
// symmetric normalizations for DC and BC.
//
// Diagnostics go to an optional charmbracelet/log logger (WithLogger); the
// default discards them.
package centrality
