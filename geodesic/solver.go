// SPDX-License-Identifier: MIT
// File: solver.go
// Role: single-source shortest paths with path counting (Brandes' first phase).
//
// Unweighted runs are a BFS over the snapshot's out-arcs. Weighted runs are a
// Dijkstra with lazy decrease-key over MinHeap: stale heap entries are skipped
// when popped. Both record, for every reached vertex, its distance, the number
// of shortest paths (sigma), the predecessors on those paths and the settle
// order, which is everything the centrality backward pass needs.
//
// Arcs of weight 0 are not ties and are never traversed.

package geodesic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/socnet/core"
)

// relEps is the relative tolerance under which two weighted path lengths are equal.
const relEps = 1e-12

// Workspace holds per-run scratch buffers reused across sources.
// A Workspace is not safe for concurrent use.
type Workspace struct {
	dist    []float64
	sigma   []float64
	preds   [][]int
	order   []int
	queue   []int
	settled []bool
	pq      MinHeap[int]
	res     Result
}

// NewWorkspace preallocates buffers for snapshots of n vertices.
func NewWorkspace(n int) *Workspace {
	ws := &Workspace{}
	ws.resize(n)

	return ws
}

func (ws *Workspace) resize(n int) {
	if cap(ws.dist) < n {
		ws.dist = make([]float64, n)
		ws.sigma = make([]float64, n)
		ws.preds = make([][]int, n)
		ws.settled = make([]bool, n)
		ws.order = make([]int, 0, n)
		ws.queue = make([]int, 0, n)
	}
	ws.dist = ws.dist[:n]
	ws.sigma = ws.sigma[:n]
	ws.preds = ws.preds[:n]
	ws.settled = ws.settled[:n]
	for i := 0; i < n; i++ {
		ws.dist[i] = Inf
		ws.sigma[i] = 0
		ws.preds[i] = ws.preds[i][:0]
		ws.settled[i] = false
	}
	ws.order = ws.order[:0]
	ws.queue = ws.queue[:0]
	ws.pq.Reset()
}

// Solve runs a single-source shortest-path search from dense index source.
//
// Implementation:
//   - Stage 1: validate inputs; in weighted mode pre-scan arcs for negative weights.
//   - Stage 2: BFS (unweighted) or Dijkstra (weighted) accumulating sigma and preds.
//   - Stage 3: aggregate eccentricity, distance sum and reach.
//
// Errors:
//   - ErrNilSnapshot, ErrSourceOutOfRange, ErrNegativeWeight.
//
// Complexity:
//   - BFS: Time O(V + E). Dijkstra: Time O((V + E) log V). Space O(V + E).
//
// Notes:
//   - ws may be nil; a fresh Workspace is then allocated for this call.
func Solve(s *core.Snapshot, source int, ws *Workspace, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if s == nil {
		return nil, ErrNilSnapshot
	}
	n := s.N()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if cfg.Weighted {
		if err := checkWeights(s); err != nil {
			return nil, err
		}
	}
	if ws == nil {
		ws = NewWorkspace(n)
	} else {
		ws.resize(n)
	}

	r := &runner{s: s, ws: ws, cfg: cfg}
	if cfg.Weighted {
		r.dijkstra(source)
	} else {
		r.bfs(source)
	}

	return r.finish(source), nil
}

// checkWeights fails fast on the first negative arc.
func checkWeights(s *core.Snapshot) error {
	for i := 0; i < s.N(); i++ {
		for _, a := range s.Out(i) {
			if a.Weight < 0 {
				return fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, s.ID(i), s.ID(a.Peer), a.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single-source execution.
type runner struct {
	s   *core.Snapshot
	ws  *Workspace
	cfg Options
}

// length maps an arc weight to a path length; ok is false for non-ties.
func (r *runner) length(w float64) (float64, bool) {
	if w == 0 {
		return 0, false
	}
	if !r.cfg.Weighted {
		return 1, true
	}
	if r.cfg.InvertWeights {
		return 1 / w, true
	}

	return w, true
}

func (r *runner) bfs(source int) {
	ws := r.ws
	ws.dist[source] = 0
	ws.sigma[source] = 1
	ws.queue = append(ws.queue, source)
	for head := 0; head < len(ws.queue); head++ {
		v := ws.queue[head]
		ws.order = append(ws.order, v)
		for _, a := range r.s.Out(v) {
			if _, ok := r.length(a.Weight); !ok || a.Peer == v {
				continue
			}
			w := a.Peer
			if math.IsInf(ws.dist[w], 1) {
				ws.dist[w] = ws.dist[v] + 1
				ws.queue = append(ws.queue, w)
			}
			if ws.dist[w] == ws.dist[v]+1 {
				ws.sigma[w] += ws.sigma[v]
				ws.preds[w] = append(ws.preds[w], v)
			}
		}
	}
}

func (r *runner) dijkstra(source int) {
	ws := r.ws
	ws.dist[source] = 0
	ws.sigma[source] = 1
	ws.pq.Push(0, source)
	for {
		v, d, ok := ws.pq.Pop()
		if !ok {
			return
		}
		if ws.settled[v] || d > ws.dist[v] {
			continue // stale entry
		}
		ws.settled[v] = true
		ws.order = append(ws.order, v)
		for _, a := range r.s.Out(v) {
			l, ok := r.length(a.Weight)
			if !ok || a.Peer == v {
				continue
			}
			r.relax(v, a.Peer, ws.dist[v]+l)
		}
	}
}

// relax offers alt as a new distance to w through v.
func (r *runner) relax(v, w int, alt float64) {
	ws := r.ws
	cur := ws.dist[w]
	eps := relEps * math.Max(1, math.Abs(alt))
	switch {
	case alt < cur-eps:
		ws.dist[w] = alt
		ws.sigma[w] = ws.sigma[v]
		ws.preds[w] = append(ws.preds[w][:0], v)
		ws.pq.Push(alt, w)
	case math.Abs(alt-cur) <= eps && !ws.settled[w]:
		ws.sigma[w] += ws.sigma[v]
		ws.preds[w] = append(ws.preds[w], v)
	}
}

func (r *runner) finish(source int) *Result {
	ws := r.ws
	res := &ws.res
	*res = Result{
		Source: source,
		Dist:   ws.dist,
		Sigma:  ws.sigma,
		Preds:  ws.preds,
		Order:  ws.order,
	}
	for _, v := range ws.order {
		if v == source {
			continue
		}
		d := ws.dist[v]
		res.Reached++
		res.DistanceSum += d
		if d > res.Eccentricity {
			res.Eccentricity = d
		}
	}

	return res
}
