// SPDX-License-Identifier: MIT
// File: information.go
// Role: Stephenson–Zelen information centrality (IC).

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/socnet/matrix"
)

// information computes IC on the symmetrized graph.
//
// Implementation:
//   - Stage 1: symmetrize with w(i,j) = max(A[i,j], A[j,i]) and drop isolates
//     (they score 0 and are excluded).
//   - Stage 2: B[i,i] = 1 + Σ_j w(i,j), B[i,j] = 1 − w(i,j); C = B⁻¹ via LU.
//   - Stage 3: with T = trace(C) and R = Σ_j C[0,j],
//     IC(i) = 1 / (C[i,i] + (T − 2R)/n). Std = IC/ΣIC.
//
// Errors:
//   - A singular B (disconnected components) yields zero scores together
//     with an error wrapping matrix.ErrSingular.
func (e *engine) information() (*partial, error) {
	n := e.n
	p := newPartial(n)
	if n == 0 {
		return p, nil
	}

	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for _, a := range e.s.Out(i) {
			if a.Peer == i || a.Weight == 0 {
				continue
			}
			v := e.arcValue(a.Weight)
			w[i][a.Peer] = math.Max(w[i][a.Peer], v)
			w[a.Peer][i] = math.Max(w[a.Peer][i], v)
		}
	}

	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		var deg float64
		for _, v := range w[i] {
			deg += v
		}
		if deg == 0 {
			p.excluded = append(p.excluded, i)
			continue
		}
		keep = append(keep, i)
	}
	p.connected = len(p.excluded) == 0
	m := len(keep)
	if m == 0 {
		return p, nil
	}

	b, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, err
	}
	for r, i := range keep {
		var deg float64
		for c, j := range keep {
			if r == c {
				continue
			}
			deg += w[i][j]
			if err = b.Set(r, c, 1-w[i][j]); err != nil {
				return nil, err
			}
		}
		if err = b.Set(r, r, 1+deg); err != nil {
			return nil, err
		}
	}

	inv, err := matrix.Inverse(b, matrix.MethodLU)
	if err != nil {
		e.cfg.Logger.Warn("information centrality undefined", "err", err)
		return p, fmt.Errorf("centrality: information: %w", err)
	}
	trace, err := matrix.Trace(inv)
	if err != nil {
		return nil, err
	}
	row0, err := inv.Row(0)
	if err != nil {
		return nil, err
	}
	var r0 float64
	for _, v := range row0 {
		r0 += v
	}

	var total float64
	for r, i := range keep {
		cii, _ := inv.At(r, r)
		denom := cii + (trace-2*r0)/float64(m)
		if denom != 0 {
			p.raw[i] = 1 / denom
		}
		total += p.raw[i]
	}
	divideBy(p.std, p.raw, total)

	return p, nil
}
