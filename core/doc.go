// Package core provides the multiplex topology store used by every socnet
// algorithm: integer-identified actors, several named relations (edge layers)
// over one vertex set, weighted directed arcs, and enabled/disabled flags.
//
// The Graph G = (V, {E_r}) supports:
//
//   - Directed arcs, undirected edges (a reciprocal pair of arcs with equal
//     weight) and reciprocated pairs, tagged with EdgeType.
//   - Several relations; one is "current" and receives edge mutations by
//     default, but every read takes the relation explicitly (Snapshot(rel)).
//   - Enabled/disabled vertices and arcs; algorithms see only enabled ones
//     unless a snapshot is built WithDisabled().
//   - A contiguous id→index mapping, compacted on every vertex removal.
//   - A generation counter bumped on every structural mutation, plus OnChange
//     hooks, so derived caches can invalidate wholesale.
//
// Queries for absent elements return sentinels (zero weight, -1 index)
// instead of errors; mutations return sentinel errors matched with errors.Is.
//
// Algorithms never read the Graph directly. They consume a *Snapshot, an
// immutable index-based projection of one relation:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(1, 2, 1, core.WithEdgeType(core.Undirected))
//	s := g.Snapshot(g.CurrentRelation(), core.WithoutIsolates())
//	for _, a := range s.Out(s.Index(1)) {
//	    fmt.Println(s.ID(a.Peer), a.Weight)
//	}
//
// Concurrency: the Graph guards its maps with two RWMutexes (muVert for the
// vertex catalog, muEdgeAdj for relations), so individual calls are safe.
// A computation, however, assumes the topology it was started on; take a
// Snapshot first and keep mutating the store independently.
package core
