// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Immutable, index-based read model of one relation.
// Determinism:
//   - Vertices keep the Graph's index order; arcs are sorted by target index.
// Concurrency:
//   - Built under read locks; the result shares nothing with the Graph, so
//     algorithms can run on it while the host keeps mutating the store.

package core

import "sort"

// Arc is an outgoing (or incoming) arc in a Snapshot; Peer is a dense index.
type Arc struct {
	Peer   int
	Weight float64
}

// Snapshot is the projection of one relation that every algorithm consumes.
// Index i in [0, N()) corresponds to vertex id IDs()[i].
type Snapshot struct {
	ids        []int
	index      map[int]int
	out        [][]Arc
	in         [][]Arc
	symmetric  bool
	weighted   bool
	arcs       int
	relation   int
	generation uint64
}

// SnapshotOption tunes which elements a Snapshot includes.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	includeDisabled bool
	dropIsolates    bool
	symmetrize      bool
	keep            func(id int) bool
}

// WithDisabled includes disabled vertices and arcs.
func WithDisabled() SnapshotOption {
	return func(c *snapshotConfig) { c.includeDisabled = true }
}

// WithoutIsolates drops vertices with no arc to or from another vertex.
func WithoutIsolates() SnapshotOption {
	return func(c *snapshotConfig) { c.dropIsolates = true }
}

// WithSymmetrize adds the reverse of every arc; when both directions exist
// the larger weight wins.
func WithSymmetrize() SnapshotOption {
	return func(c *snapshotConfig) { c.symmetrize = true }
}

// WithVertexFilter keeps only vertices for which keep(id) is true.
func WithVertexFilter(keep func(id int) bool) SnapshotOption {
	return func(c *snapshotConfig) { c.keep = keep }
}

// Snapshot builds the read model of relation rel. An unknown relation yields
// an empty snapshot rather than an error.
//
// Implementation:
//   - Stage 1: select vertices (enabled, filter) in index order.
//   - Stage 2: collect arcs between selected vertices; optionally symmetrize.
//   - Stage 3: optionally drop isolates and re-index.
//   - Stage 4: derive the symmetric/weighted flags.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) Snapshot(rel int, opts ...SnapshotOption) *Snapshot {
	var cfg snapshotConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := &Snapshot{relation: rel, generation: g.generation, index: make(map[int]int)}

	// Stage 1: vertex selection.
	selected := make([]int, 0, len(g.order))
	for _, id := range g.order {
		v := g.vertices[id]
		if !v.Enabled && !cfg.includeDisabled {
			continue
		}
		if cfg.keep != nil && !cfg.keep(id) {
			continue
		}
		selected = append(selected, id)
	}
	pos := make(map[int]int, len(selected))
	for i, id := range selected {
		pos[id] = i
	}

	// Stage 2: arcs.
	weights := make([]map[int]float64, len(selected))
	for i := range weights {
		weights[i] = make(map[int]float64)
	}
	if rel >= 0 && rel < len(g.relations) {
		r := g.relations[rel]
		for i, id := range selected {
			for to, a := range r.out[id] {
				j, ok := pos[to]
				if !ok || (!a.enabled && !cfg.includeDisabled) {
					continue
				}
				if w, seen := weights[i][j]; !seen || a.weight > w {
					weights[i][j] = a.weight
				}
				if cfg.symmetrize {
					if w, seen := weights[j][i]; !seen || a.weight > w {
						weights[j][i] = a.weight
					}
				}
			}
		}
	}

	// Stage 3: isolates.
	keepIdx := make([]int, 0, len(selected))
	if cfg.dropIsolates {
		linked := make([]bool, len(selected))
		for i, row := range weights {
			for j := range row {
				if i != j {
					linked[i], linked[j] = true, true
				}
			}
		}
		for i := range selected {
			if linked[i] {
				keepIdx = append(keepIdx, i)
			}
		}
	} else {
		for i := range selected {
			keepIdx = append(keepIdx, i)
		}
	}
	remap := make(map[int]int, len(keepIdx))
	s.ids = make([]int, len(keepIdx))
	for k, i := range keepIdx {
		remap[i] = k
		s.ids[k] = selected[i]
		s.index[selected[i]] = k
	}

	n := len(keepIdx)
	s.out = make([][]Arc, n)
	s.in = make([][]Arc, n)
	for k, i := range keepIdx {
		for j, w := range weights[i] {
			kj, ok := remap[j]
			if !ok {
				continue
			}
			s.out[k] = append(s.out[k], Arc{Peer: kj, Weight: w})
			s.in[kj] = append(s.in[kj], Arc{Peer: k, Weight: w})
			s.arcs++
		}
	}
	for k := 0; k < n; k++ {
		sortArcs(s.out[k])
		sortArcs(s.in[k])
	}

	// Stage 4: flags.
	s.symmetric = true
	for k := 0; k < n && s.symmetric; k++ {
		for _, a := range s.out[k] {
			if w, ok := s.arcWeight(a.Peer, k); !ok || w != a.Weight {
				s.symmetric = false
				break
			}
		}
	}
	for k := 0; k < n && !s.weighted; k++ {
		for _, a := range s.out[k] {
			if a.Weight != 1 {
				s.weighted = true
				break
			}
		}
	}

	return s
}

func sortArcs(a []Arc) {
	sort.Slice(a, func(i, j int) bool { return a[i].Peer < a[j].Peer })
}

// arcWeight binary-searches the sorted out-list of i.
func (s *Snapshot) arcWeight(i, j int) (float64, bool) {
	row := s.out[i]
	k := sort.Search(len(row), func(x int) bool { return row[x].Peer >= j })
	if k < len(row) && row[k].Peer == j {
		return row[k].Weight, true
	}

	return 0, false
}

// N returns the number of vertices in the snapshot.
func (s *Snapshot) N() int { return len(s.ids) }

// ArcCount returns the number of arcs (an undirected edge counts twice).
func (s *Snapshot) ArcCount() int { return s.arcs }

// IDs returns a copy of the vertex ids in index order.
func (s *Snapshot) IDs() []int { return append([]int(nil), s.ids...) }

// ID returns the vertex id at index i, or -1.
func (s *Snapshot) ID(i int) int {
	if i < 0 || i >= len(s.ids) {
		return -1
	}

	return s.ids[i]
}

// Index returns the dense index of id, or -1 if the vertex is not in the snapshot.
func (s *Snapshot) Index(id int) int {
	if i, ok := s.index[id]; ok {
		return i
	}

	return -1
}

// Out returns the arcs leaving index i, sorted by peer. Callers must not mutate it.
func (s *Snapshot) Out(i int) []Arc { return s.out[i] }

// In returns the arcs entering index i, sorted by peer. Callers must not mutate it.
func (s *Snapshot) In(i int) []Arc { return s.in[i] }

// Weight returns the weight of arc i→j, or 0 if absent.
func (s *Snapshot) Weight(i, j int) float64 {
	if i < 0 || i >= len(s.out) {
		return 0
	}
	w, _ := s.arcWeight(i, j)

	return w
}

// HasArc reports whether arc i→j exists.
func (s *Snapshot) HasArc(i, j int) bool {
	if i < 0 || i >= len(s.out) {
		return false
	}
	_, ok := s.arcWeight(i, j)

	return ok
}

// Symmetric reports whether every arc has a reverse arc of equal weight.
func (s *Snapshot) Symmetric() bool { return s.symmetric }

// Weighted reports whether any arc weight differs from 1.
func (s *Snapshot) Weighted() bool { return s.weighted }

// Relation returns the relation the snapshot was built from.
func (s *Snapshot) Relation() int { return s.relation }

// Generation returns the graph generation at build time.
func (s *Snapshot) Generation() uint64 { return s.generation }

// IsIsolate reports whether index i has no arc to or from another vertex.
func (s *Snapshot) IsIsolate(i int) bool {
	for _, a := range s.out[i] {
		if a.Peer != i {
			return false
		}
	}
	for _, a := range s.in[i] {
		if a.Peer != i {
			return false
		}
	}

	return true
}
