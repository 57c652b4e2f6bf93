// SPDX-License-Identifier: MIT
// File: network.go
// Role: the Network facade and its generation-keyed caches.
// Policy:
//   - Every public query first compares the graph generation with the one
//     the caches were filled at; on mismatch all caches are dropped at once.
//   - Snapshots, all-pairs tables and centrality reports are memoized per
//     projection key. Errors are never cached.
// Concurrency:
//   - One mutex guards the caches; queries on the same Network serialize.

package analysis

import (
	"math"
	"sync"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/geodesic"
)

// snapshotKey identifies one projection of the store.
type snapshotKey struct {
	relation     int
	dropIsolates bool
	symmetrize   bool
}

// viewKey adds the weight policy to a projection.
type viewKey struct {
	snapshotKey
	weighted bool
	inverted bool
}

// reportKey identifies one cached centrality report.
type reportKey struct {
	viewKey
	index centrality.Index
}

// Network answers structural queries over a core.Graph and memoizes the
// expensive intermediate results until the graph changes.
type Network struct {
	g   *core.Graph
	cfg Options

	mu         sync.Mutex
	generation uint64
	snapshots  map[snapshotKey]*core.Snapshot
	tables     map[viewKey]*geodesic.Table
	reports    map[reportKey]*centrality.Report
	hits       int
	misses     int
}

// New wraps g. The graph stays owned by the caller and may be mutated
// between queries.
func New(g *core.Graph, opts ...Option) (*Network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := &Network{g: g, cfg: cfg}
	n.reset(g.Generation())

	return n, nil
}

// Graph returns the wrapped store.
func (n *Network) Graph() *core.Graph { return n.g }

// CacheStats reports cache hits and misses since New.
func (n *Network) CacheStats() (hits, misses int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.hits, n.misses
}

func (n *Network) reset(gen uint64) {
	n.generation = gen
	n.snapshots = make(map[snapshotKey]*core.Snapshot)
	n.tables = make(map[viewKey]*geodesic.Table)
	n.reports = make(map[reportKey]*centrality.Report)
}

// sync drops every cache when the graph moved on. Callers hold n.mu.
func (n *Network) sync() {
	gen := n.g.Generation()
	if gen == n.generation {
		return
	}
	n.cfg.Logger.Debug("analysis: caches invalidated", "from", n.generation, "to", gen)
	n.reset(gen)
}

// key resolves CurrentRelation and the weight implication.
func (n *Network) key(v View) viewKey {
	rel := v.Relation
	if rel < 0 {
		rel = n.g.CurrentRelation()
	}

	return viewKey{
		snapshotKey: snapshotKey{relation: rel, dropIsolates: v.DropIsolates, symmetrize: v.Symmetrize},
		weighted:    v.Weighted || v.InvertWeights,
		inverted:    v.InvertWeights,
	}
}

func (n *Network) hit(kind string, rel int) {
	n.hits++
	n.cfg.Logger.Debug("analysis: cache hit", "kind", kind, "relation", rel)
}

func (n *Network) miss(kind string, rel int) {
	n.misses++
	n.cfg.Logger.Debug("analysis: cache miss", "kind", kind, "relation", rel)
}

// snapshot returns the cached projection. Callers hold n.mu.
func (n *Network) snapshot(k snapshotKey) *core.Snapshot {
	if s, ok := n.snapshots[k]; ok {
		n.hit("snapshot", k.relation)
		return s
	}
	n.miss("snapshot", k.relation)
	var opts []core.SnapshotOption
	if k.dropIsolates {
		opts = append(opts, core.WithoutIsolates())
	}
	if k.symmetrize {
		opts = append(opts, core.WithSymmetrize())
	}
	s := n.g.Snapshot(k.relation, opts...)
	n.snapshots[k] = s

	return s
}

// table returns the cached all-pairs table. Callers hold n.mu.
func (n *Network) table(k viewKey) (*geodesic.Table, error) {
	if t, ok := n.tables[k]; ok {
		n.hit("distances", k.relation)
		return t, nil
	}
	n.miss("distances", k.relation)
	opts := []geodesic.Option{geodesic.WithContext(n.cfg.Ctx)}
	switch {
	case k.inverted:
		opts = append(opts, geodesic.WithInvertWeights())
	case k.weighted:
		opts = append(opts, geodesic.WithWeights())
	}
	t, err := geodesic.AllPairs(n.snapshot(k.snapshotKey), opts...)
	if err != nil {
		return nil, err
	}
	n.tables[k] = t

	return t, nil
}

// Snapshot returns the projection a query with view v runs on.
func (n *Network) Snapshot(v View) *core.Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	return n.snapshot(n.key(v).snapshotKey)
}

// Paths returns the all-pairs shortest-path table of view v.
//
// Errors:
//   - geodesic.ErrNegativeWeight in weighted mode; context errors.
func (n *Network) Paths(v View) (*geodesic.Table, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	return n.table(n.key(v))
}

// defaultTable serves the convenience queries; failures degrade to nil.
func (n *Network) defaultTable() (*core.Snapshot, *geodesic.Table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()
	k := n.key(DefaultView())
	t, err := n.table(k)
	if err != nil {
		n.cfg.Logger.Warn("analysis: distance sweep failed", "err", err)
		return nil, nil
	}

	return n.snapshot(k.snapshotKey), t
}

// Distance returns the unweighted geodesic distance between vertex ids u and
// v in the current relation, or +Inf when v is unreachable or either id is
// absent.
func (n *Network) Distance(u, v int) float64 {
	s, t := n.defaultTable()
	if t == nil {
		return math.Inf(1)
	}

	return t.Distance(s.Index(u), s.Index(v))
}

// ShortestPathCount returns the number of shortest u→v paths in the current
// relation; 0 when unreachable or absent.
func (n *Network) ShortestPathCount(u, v int) float64 {
	s, t := n.defaultTable()
	if t == nil {
		return 0
	}

	return t.PathCount(s.Index(u), s.Index(v))
}

// Diameter returns the largest finite distance in the current relation.
func (n *Network) Diameter() float64 {
	_, t := n.defaultTable()
	if t == nil {
		return 0
	}

	return t.Diameter
}

// AverageDistance returns the mean over reachable ordered pairs.
func (n *Network) AverageDistance() float64 {
	_, t := n.defaultTable()
	if t == nil {
		return 0
	}

	return t.AverageDistance
}

// Connected reports whether every ordered pair is reachable in the current
// relation.
func (n *Network) Connected() bool {
	_, t := n.defaultTable()
	if t == nil {
		return false
	}

	return t.Connected
}
