// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/socnet/core"
)

// Fruchterman–Reingold cooling schedule.
const (
	frCooling   = 0.85 // t ← t·frCooling each iteration
	frFloorFrac = 50   // t never drops below t0/frFloorFrac while warm
	frFreezeAt  = 200  // t = 0 from this iteration on
)

// FruchtermanReingold runs the Fruchterman–Reingold layout.
//
// Implementation:
//   - Stage 1: k = √(area/N), temperature t0 = width/10.
//   - Stage 2: repulsion k²/d between all pairs, attraction d²/k along ties.
//   - Stage 3: displacement capped at t; t decays by 0.85 per iteration to a
//     floor of t0/50 and drops to 0 at iteration 200, which ends the run
//     (Converged).
func FruchtermanReingold(s *core.Snapshot, initial Positions, opts ...Option) (*Result, error) {
	st, err := newState(s, initial, DefaultFRIterations, opts)
	if err != nil {
		return nil, err
	}
	n := len(st.xs)
	if n < 2 {
		return st.result("fr", 0, true), nil
	}
	k := math.Sqrt(st.area() / float64(n))
	t0 := (st.bounds.Max.X - st.bounds.Min.X) / 10
	t := t0

	disp := make([]r2.Vec, n)
	iter := 0
	for iter < st.cfg.Iterations {
		if iter >= frFreezeAt {
			return st.result("fr", iter, true), nil
		}
		iter++
		for v := range disp {
			disp[v] = r2.Vec{}
		}
		for v := 0; v < n; v++ {
			for u := v + 1; u < n; u++ {
				dir, d := st.between(st.xs[v], st.xs[u])
				push := r2.Scale(k*k/d, dir)
				disp[v] = r2.Sub(disp[v], push)
				disp[u] = r2.Add(disp[u], push)
			}
		}
		for v := 0; v < n; v++ {
			for _, u := range st.adj[v] {
				if u < v {
					continue
				}
				dir, d := st.between(st.xs[v], st.xs[u])
				pull := r2.Scale(d*d/k, dir)
				disp[v] = r2.Add(disp[v], pull)
				disp[u] = r2.Sub(disp[u], pull)
			}
		}

		for v := 0; v < n; v++ {
			length := r2.Norm(disp[v])
			if length == 0 {
				continue
			}
			step := r2.Scale(math.Min(length, t)/length, disp[v])
			st.xs[v] = st.cfg.Canvas.Clamp(r2.Add(st.xs[v], step))
		}
		st.observe(iter)
		t = math.Max(t*frCooling, t0/frFloorFrac)
	}

	return st.result("fr", iter, iter >= frFreezeAt), nil
}
