// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/socnet/core"
)

// Eades constants. Distances are measured in natural spring lengths l.
const (
	springAttraction = 2.0 // c1
	springRepulsion  = 1.0 // c3
	springDamping    = 0.1 // c4
	springCutoff     = 2.0 // repulsion is zero beyond cutoff·l
	springStill      = 1e-3
)

// SpringEmbedder runs Eades' spring embedder.
//
// Implementation:
//   - Stage 1: natural length l = √(area/N).
//   - Stage 2: per iteration and vertex, sum c1·log(d/l) along every tie
//     and c3/(d/l)² away from every vertex closer than 2l.
//   - Stage 3: move by c4·force·l, clamp to the canvas.
//
// Stops after the iteration budget or when no vertex moves more than
// 1e-3·l (Converged). Never fails on degenerate input.
func SpringEmbedder(s *core.Snapshot, initial Positions, opts ...Option) (*Result, error) {
	st, err := newState(s, initial, DefaultSpringIterations, opts)
	if err != nil {
		return nil, err
	}
	n := len(st.xs)
	if n < 2 {
		return st.result("spring", 0, true), nil
	}
	l := math.Sqrt(st.area() / float64(n))

	force := make([]r2.Vec, n)
	iter := 0
	for iter < st.cfg.Iterations {
		iter++
		for v := range force {
			force[v] = r2.Vec{}
		}
		for v := 0; v < n; v++ {
			for u := v + 1; u < n; u++ {
				dir, d := st.between(st.xs[v], st.xs[u])
				if r := d / l; r < springCutoff {
					push := r2.Scale(springRepulsion/(r*r), dir)
					force[v] = r2.Sub(force[v], push)
					force[u] = r2.Add(force[u], push)
				}
			}
			for _, u := range st.adj[v] {
				dir, d := st.between(st.xs[v], st.xs[u])
				force[v] = r2.Add(force[v], r2.Scale(springAttraction*math.Log(d/l), dir))
			}
		}

		var moved float64
		for v := 0; v < n; v++ {
			next := st.cfg.Canvas.Clamp(r2.Add(st.xs[v], r2.Scale(springDamping*l, force[v])))
			moved = math.Max(moved, r2.Norm(r2.Sub(next, st.xs[v])))
			st.xs[v] = next
		}
		st.observe(iter)
		if moved < springStill*l {
			return st.result("spring", iter, true), nil
		}
	}

	return st.result("spring", iter, false), nil
}
