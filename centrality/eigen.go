// SPDX-License-Identifier: MIT
// File: eigen.go
// Role: spectral and random-walk indices (EVC, PRP).

package centrality

import (
	"math"

	"github.com/katalvlaran/socnet/matrix"
)

// eigenvector computes EVC as the leading eigenvector of A.
//
// Implementation:
//   - Stage 1: build A (binary unless weighted) and shift it to A + I so
//     bipartite graphs do not oscillate; the eigenvectors are unchanged.
//   - Stage 2: power iteration (EigenTolerance, EigenMaxIterations).
//   - Stage 3: Std = v/max(v).
func (e *engine) eigenvector() (*partial, error) {
	p := newPartial(e.n)
	if e.n == 0 {
		return p, nil
	}
	var aopts []matrix.Option
	switch {
	case !e.cfg.Weighted:
		aopts = append(aopts, matrix.WithBinary())
	case e.cfg.InvertWeights:
		aopts = append(aopts, matrix.WithInvertWeights())
	}
	a, err := matrix.Adjacency(e.s, aopts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < e.n; i++ {
		v, _ := a.At(i, i)
		if err = a.Set(i, i, v+1); err != nil {
			return nil, err
		}
	}

	res, err := matrix.PowerIteration(a, nil, EigenTolerance, EigenMaxIterations)
	if err != nil {
		return nil, err
	}
	copy(p.raw, res.Vector)
	divideBy(p.std, p.raw, res.Max)
	p.converged = res.Converged
	p.iterations = res.Iterations
	e.cfg.Logger.Debug("eigenvector", "lambda", res.Value-1, "iterations", res.Iterations)

	return p, nil
}

// pagerank computes PRP(v) = (1−d)/N + d·Σ_{u→v} PR(u)·w(u,v)/W(u), where
// W(u) is u's total out-weight. Mass held by dangling vertices is not
// redistributed. Iteration stops when max|ΔPR| < PageRankTolerance or after
// PageRankMaxIter sweeps; Std = PR/max(PR).
func (e *engine) pagerank() *partial {
	n := e.n
	p := newPartial(n)
	if n == 0 {
		return p
	}

	out := make([]float64, n)
	var arcs int
	for u := 0; u < n; u++ {
		for _, a := range e.s.Out(u) {
			if a.Peer == u || a.Weight == 0 {
				continue
			}
			out[u] += e.arcValue(a.Weight)
			arcs++
		}
	}

	pr := p.raw
	for i := range pr {
		pr[i] = 1 / float64(n)
	}
	if arcs > 0 {
		d := e.cfg.Damping
		base := (1 - d) / float64(n)
		next := make([]float64, n)
		p.converged = false
		for p.iterations < PageRankMaxIter {
			p.iterations++
			var diff float64
			for v := 0; v < n; v++ {
				var sum float64
				for _, a := range e.s.In(v) {
					if a.Peer == v || a.Weight == 0 || out[a.Peer] == 0 {
						continue
					}
					sum += pr[a.Peer] * e.arcValue(a.Weight) / out[a.Peer]
				}
				next[v] = base + d*sum
				diff = math.Max(diff, math.Abs(next[v]-pr[v]))
			}
			copy(pr, next)
			if diff < PageRankTolerance {
				p.converged = true
				break
			}
		}
	}

	var hi float64
	for _, v := range pr {
		hi = math.Max(hi, v)
	}
	divideBy(p.std, pr, hi)

	return p
}
