// Package socnet is an in-memory toolkit for the structural analysis of
// social networks: who is central, who is prestigious, which actors cluster
// together, and how the network looks when drawn.
//
// What is in the box
//
//	A thread-safe multiplex store plus the classic social-network measures:
//		• Store: integer actors, weighted directed ties, named relations,
//		  enable/disable flags and a generation counter
//		• Matrices: adjacency, degree, Laplacian, cocitation, inverse,
//		  dissimilarities and Pearson correlation
//		• Geodesics: BFS/Dijkstra with shortest-path counting
//		• Centrality: DC, CC, IRCC, BC, SC, EC, PC, EVC, IC, DP, PRP, PP
//		• Structure: clustering coefficients, triad census, hierarchical
//		  clustering (single, complete, average linkage)
//		• Layouts: spring embedder, Fruchterman–Reingold, Kamada–Kawai
//
// Packages:
//
//	core/       — Graph, Vertex, Edge, relations, Snapshot read model
//	matrix/     — Dense matrix, LU / Gauss–Jordan inverse, power iteration
//	geodesic/   — single-source and all-pairs shortest paths
//	centrality/ — the twelve centrality and prestige indices
//	cluster/    — clustering coefficient, triad census, dendrograms
//	layout/     — force-directed layouts on a bounded canvas
//	builder/    — deterministic and random network generators
//	analysis/   — Network facade with generation-keyed caches
//
// Quick ASCII example:
//
//	    1
//	  / | \
//	 2  3  4     star: vertex 1 lies on every shortest path,
//	             so its standardized betweenness is 1.
//
// The socnet command (cmd/socnet) runs the same analyses from a TOML
// profile.
package socnet
