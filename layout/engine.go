// SPDX-License-Identifier: MIT
// File: engine.go
// Role: shared run state and the Run dispatcher.
//
// Positions are held in a slice indexed like the snapshot; the public map is
// built only for observers and the final Result.

package layout

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/socnet/core"
)

// minDistance stands in for the distance between coincident points.
const minDistance = 1e-2

// state is the working set of one run.
type state struct {
	s      *core.Snapshot
	cfg    Options
	rng    *rand.Rand
	bounds r2.Box
	xs     []r2.Vec
	adj    [][]int // undirected, loop-free
}

// Run dispatches to the selected algorithm.
func Run(alg Algorithm, s *core.Snapshot, initial Positions, opts ...Option) (*Result, error) {
	switch alg {
	case Spring:
		return SpringEmbedder(s, initial, opts...)
	case FR:
		return FruchtermanReingold(s, initial, opts...)
	case KK:
		return KamadaKawai(s, initial, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// newState resolves options and seeds positions: ids present in initial keep
// their (clamped) coordinates, the rest are placed at random.
func newState(s *core.Snapshot, initial Positions, defIter int, opts []Option) (*state, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if s == nil {
		return nil, ErrNilSnapshot
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = defIter
	}

	n := s.N()
	st := &state{
		s:      s,
		cfg:    cfg,
		rng:    rngFromSeed(cfg.Seed),
		bounds: cfg.Canvas.Bounds(),
		xs:     make([]r2.Vec, n),
		adj:    make([][]int, n),
	}
	for i := 0; i < n; i++ {
		if p, ok := initial[s.ID(i)]; ok {
			st.xs[i] = cfg.Canvas.Clamp(p)
		} else {
			st.xs[i] = randomIn(st.bounds, st.rng)
		}
	}

	seen := make(map[[2]int]bool)
	for i := 0; i < n; i++ {
		for _, a := range s.Out(i) {
			if a.Peer == i {
				continue
			}
			key := [2]int{min(i, a.Peer), max(i, a.Peer)}
			if seen[key] {
				continue
			}
			seen[key] = true
			st.adj[i] = append(st.adj[i], a.Peer)
			st.adj[a.Peer] = append(st.adj[a.Peer], i)
		}
	}

	return st, nil
}

// between returns the unit vector from a to b and their distance. Coincident
// points get a random direction at minDistance.
func (st *state) between(a, b r2.Vec) (r2.Vec, float64) {
	delta := r2.Sub(b, a)
	d := r2.Norm(delta)
	if d < minDistance {
		angle := st.rng.Float64() * 2 * math.Pi
		return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}, minDistance
	}

	return r2.Scale(1/d, delta), d
}

// positions snapshots xs into a Positions map.
func (st *state) positions() Positions {
	pos := make(Positions, len(st.xs))
	for i, p := range st.xs {
		pos[st.s.ID(i)] = p
	}

	return pos
}

func (st *state) observe(iter int) {
	if st.cfg.Observer != nil {
		st.cfg.Observer(iter, st.positions())
	}
}

func (st *state) result(name string, iters int, converged bool) *Result {
	st.cfg.Logger.Debug("layout finished", "algorithm", name, "n", len(st.xs), "iterations", iters, "converged", converged)

	return &Result{Positions: st.positions(), Iterations: iters, Converged: converged}
}

// area is the drawable area, used for natural edge lengths.
func (st *state) area() float64 {
	size := r2.Sub(st.bounds.Max, st.bounds.Min)

	return size.X * size.Y
}
