// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/socnet/core"
)

// Kamada–Kawai parameters.
const (
	kkStiffness   = 1.0  // K
	kkEpsilon     = 1e-2 // stop when max Δ ≤ ε
	kkInnerSteps  = 50   // Newton steps per selected vertex
	kkSingular    = 1e-12
	kkRelocations = 32 // random draws per coincident vertex
)

// KamadaKawai minimizes the spring energy Σ ½·k_ij·(|p_i − p_j| − l_ij)².
//
// Implementation:
//   - Stage 1: hop distances d_ij on the undirected view; unreachable pairs
//     use N. l_ij = L·d_ij with L = min(width, height)/max d, and
//     k_ij = K/d_ij².
//   - Stage 2: pick the vertex m with the largest gradient norm Δ_m and
//     apply Newton steps from its 2×2 Hessian until Δ_m ≤ ε.
//   - Stage 3: a step that leaves the canvas, or a singular Hessian, moves
//     m to a random in-bounds point instead.
//
// Stops when max Δ ≤ ε (Converged) or after the iteration budget, counted in
// selected vertices.
func KamadaKawai(s *core.Snapshot, initial Positions, opts ...Option) (*Result, error) {
	st, err := newState(s, initial, DefaultKKIterations, opts)
	if err != nil {
		return nil, err
	}
	n := len(st.xs)
	if n < 2 {
		return st.result("kk", 0, true), nil
	}

	st.spreadCoincident()
	d := st.hopDistances()
	var maxD float64
	for i := range d {
		for j := range d[i] {
			maxD = math.Max(maxD, d[i][j])
		}
	}
	size := r2.Sub(st.bounds.Max, st.bounds.Min)
	unit := math.Min(size.X, size.Y) / maxD

	kk := &kkRun{st: st, d: d, unit: unit}
	iter := 0
	for iter < st.cfg.Iterations {
		m, delta := kk.worst()
		if delta <= kkEpsilon {
			return st.result("kk", iter, true), nil
		}
		iter++
		for step := 0; step < kkInnerSteps && delta > kkEpsilon; step++ {
			kk.newton(m)
			_, _, delta = kk.gradient(m)
		}
		st.observe(iter)
	}
	_, delta := kk.worst()

	return st.result("kk", iter, delta <= kkEpsilon), nil
}

// spreadCoincident relocates any vertex sharing its point with an earlier one;
// the energy gradient vanishes between coincident vertices. A canvas too small
// to separate every pair gives up after kkRelocations draws per vertex and
// leaves the rest to the minDistance floor in gradient and newton.
func (st *state) spreadCoincident() {
	for i := 1; i < len(st.xs); i++ {
		for draws := 0; draws < kkRelocations && st.coincident(i); draws++ {
			st.xs[i] = randomIn(st.bounds, st.rng)
		}
	}
}

// coincident reports whether xs[i] lies within minDistance of an earlier point.
func (st *state) coincident(i int) bool {
	for j := 0; j < i; j++ {
		if r2.Norm(r2.Sub(st.xs[i], st.xs[j])) < minDistance {
			return true
		}
	}

	return false
}

// hopDistances runs a BFS from every vertex over the undirected adjacency.
func (st *state) hopDistances() [][]float64 {
	n := len(st.xs)
	d := make([][]float64, n)
	queue := make([]int, 0, n)
	for src := 0; src < n; src++ {
		row := make([]float64, n)
		for i := range row {
			row[i] = -1
		}
		row[src] = 0
		queue = append(queue[:0], src)
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, u := range st.adj[v] {
				if row[u] < 0 {
					row[u] = row[v] + 1
					queue = append(queue, u)
				}
			}
		}
		for i := range row {
			if row[i] < 0 {
				row[i] = float64(n)
			}
		}
		d[src] = row
	}

	return d
}

type kkRun struct {
	st   *state
	d    [][]float64
	unit float64
}

// gradient returns ∂E/∂x_m, ∂E/∂y_m and Δ_m.
func (k *kkRun) gradient(m int) (gx, gy, delta float64) {
	pm := k.st.xs[m]
	for i, pi := range k.st.xs {
		if i == m {
			continue
		}
		dx, dy := pm.X-pi.X, pm.Y-pi.Y
		dist := math.Max(math.Hypot(dx, dy), minDistance)
		kij := kkStiffness / (k.d[m][i] * k.d[m][i])
		lij := k.unit * k.d[m][i]
		gx += kij * (dx - lij*dx/dist)
		gy += kij * (dy - lij*dy/dist)
	}

	return gx, gy, math.Hypot(gx, gy)
}

// worst returns the vertex with the largest Δ.
func (k *kkRun) worst() (int, float64) {
	best, bestDelta := 0, -1.0
	for m := range k.st.xs {
		if _, _, delta := k.gradient(m); delta > bestDelta {
			best, bestDelta = m, delta
		}
	}

	return best, bestDelta
}

// newton moves m by one solve of the local 2×2 system H·δ = −∇E.
func (k *kkRun) newton(m int) {
	pm := k.st.xs[m]
	var a, b, c float64
	for i, pi := range k.st.xs {
		if i == m {
			continue
		}
		dx, dy := pm.X-pi.X, pm.Y-pi.Y
		dist := math.Max(math.Hypot(dx, dy), minDistance)
		cube := dist * dist * dist
		kij := kkStiffness / (k.d[m][i] * k.d[m][i])
		lij := k.unit * k.d[m][i]
		a += kij * (1 - lij*dy*dy/cube)
		b += kij * lij * dx * dy / cube
		c += kij * (1 - lij*dx*dx/cube)
	}
	gx, gy, _ := k.gradient(m)

	det := a*c - b*b
	if math.Abs(det) < kkSingular {
		k.st.xs[m] = randomIn(k.st.bounds, k.st.rng)
		return
	}
	next := r2.Vec{
		X: pm.X + (-gx*c+gy*b)/det,
		Y: pm.Y + (-gy*a+gx*b)/det,
	}
	if math.IsNaN(next.X) || math.IsNaN(next.Y) || !k.st.bounds.Contains(next) {
		next = randomIn(k.st.bounds, k.st.rng)
	}
	k.st.xs[m] = next
}
