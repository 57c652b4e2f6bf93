// SPDX-License-Identifier: MIT

package cluster

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/socnet/core"
)

// ClusteringCoefficient computes the local clustering coefficient of every
// vertex in s.
//
// The neighbourhood of v is every vertex tied to v in either direction,
// self excluded. On symmetric graphs ties among neighbours are unordered
// pairs out of k(k−1)/2; otherwise ordered arcs out of k(k−1). Vertices
// with fewer than two neighbours score 0.
//
// Complexity: O(Σ k²) arc lookups. Weights are ignored.
func ClusteringCoefficient(s *core.Snapshot) (*CLCReport, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	n := s.N()
	rep := &CLCReport{Scores: make([]VertexCLC, n)}
	if n == 0 {
		return rep, nil
	}
	symmetric := reciprocal(s)

	values := make([]float64, n)
	mark := make([]bool, n)
	for v := 0; v < n; v++ {
		nb := neighbourhood(s, v, mark)
		k := len(nb)
		sc := VertexCLC{ID: s.ID(v), Neighbours: k}
		for a, j := range nb {
			for b, l := range nb {
				if a == b || (symmetric && b < a) {
					continue
				}
				if s.HasArc(j, l) {
					sc.Ties++
				}
			}
		}
		if k >= 2 {
			possible := float64(k * (k - 1))
			if symmetric {
				possible /= 2
			}
			sc.Value = float64(sc.Ties) / possible
		}
		rep.Scores[v] = sc
		values[v] = sc.Value
	}
	rep.Mean, rep.Variance = stat.PopMeanVariance(values, nil)

	return rep, nil
}

// neighbourhood returns in ∪ out peers of v without v; mark is scratch
// space of length N and is left cleared.
func neighbourhood(s *core.Snapshot, v int, mark []bool) []int {
	var nb []int
	add := func(arcs []core.Arc) {
		for _, a := range arcs {
			if a.Peer == v || mark[a.Peer] {
				continue
			}
			mark[a.Peer] = true
			nb = append(nb, a.Peer)
		}
	}
	add(s.Out(v))
	add(s.In(v))
	for _, u := range nb {
		mark[u] = false
	}

	return nb
}

// reciprocal reports whether every arc of s has its reverse.
func reciprocal(s *core.Snapshot) bool {
	if s.Symmetric() {
		return true
	}
	for i := 0; i < s.N(); i++ {
		for _, a := range s.Out(i) {
			if !s.HasArc(a.Peer, i) {
				return false
			}
		}
	}

	return true
}
