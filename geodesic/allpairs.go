// SPDX-License-Identifier: MIT
// File: allpairs.go
// Role: all-pairs distances and path counts by repeated single-source runs.

package geodesic

import (
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/matrix"
)

// AllPairs runs Solve from every vertex and assembles a Table.
//
// Implementation:
//   - Stage 1: validate the snapshot and pre-scan weights once.
//   - Stage 2: for each source in index order, Solve into one shared
//     Workspace, call the Visitor, copy the rows into the Table.
//   - Stage 3: derive diameter, average distance and connectivity.
//
// Errors:
//   - ErrNilSnapshot, ErrNegativeWeight, ctx.Err() on cancellation.
//
// Complexity:
//   - Unweighted: Time O(V·(V + E)); weighted: O(V·(V + E) log V). Space O(V²).
//
// Notes:
//   - A 0- or 1-vertex snapshot is connected with diameter 0.
func AllPairs(s *core.Snapshot, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if s == nil {
		return nil, ErrNilSnapshot
	}
	if cfg.Weighted {
		if err := checkWeights(s); err != nil {
			return nil, err
		}
	}

	n := s.N()
	t := &Table{
		N:            n,
		Dist:         make([][]float64, n),
		Sigma:        make([][]float64, n),
		Eccentricity: make([]float64, n),
		DistanceSum:  make([]float64, n),
		Reached:      make([]int, n),
		Connected:    true,
	}
	ws := NewWorkspace(n)
	// The pre-scan already ran; skip it per source.
	inner := cfg
	inner.Visitor = nil

	var pairs int
	var total float64
	for src := 0; src < n; src++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		ws.resize(n)
		r := &runner{s: s, ws: ws, cfg: inner}
		if inner.Weighted {
			r.dijkstra(src)
		} else {
			r.bfs(src)
		}
		res := r.finish(src)
		if cfg.Visitor != nil {
			cfg.Visitor(res)
		}

		t.Dist[src] = append([]float64(nil), res.Dist...)
		t.Sigma[src] = append([]float64(nil), res.Sigma...)
		t.Eccentricity[src] = res.Eccentricity
		t.DistanceSum[src] = res.DistanceSum
		t.Reached[src] = res.Reached
		if res.Eccentricity > t.Diameter {
			t.Diameter = res.Eccentricity
		}
		pairs += res.Reached
		total += res.DistanceSum
		t.Unreached += n - 1 - res.Reached
	}
	if pairs > 0 {
		t.AverageDistance = total / float64(pairs)
	}
	t.Connected = t.Unreached == 0

	return t, nil
}

// DistanceMatrix returns the distances as a Dense that admits +Inf for
// unreachable pairs.
// An empty table yields matrix.ErrInvalidDimensions.
func (t *Table) DistanceMatrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(t.Dist, matrix.WithAllowInfDistances())
}

// SigmaMatrix returns the shortest-path counts as a Dense.
func (t *Table) SigmaMatrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(t.Sigma)
}

// Distance returns d(s,t) or Inf; out-of-range indices yield Inf.
func (t *Table) Distance(s, u int) float64 {
	if s < 0 || s >= t.N || u < 0 || u >= t.N {
		return Inf
	}

	return t.Dist[s][u]
}

// PathCount returns the number of shortest s→t paths, 0 for out-of-range indices.
func (t *Table) PathCount(s, u int) float64 {
	if s < 0 || s >= t.N || u < 0 || u >= t.N {
		return 0
	}

	return t.Sigma[s][u]
}
