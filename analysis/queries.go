// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/cluster"
	"github.com/katalvlaran/socnet/layout"
	"github.com/katalvlaran/socnet/matrix"
)

// Centrality returns the report of index over the projection in p. Reports
// are memoized; a report that came with an error (singular Information) is
// returned together with that error and not cached.
func (n *Network) Centrality(index centrality.Index, p CentralityParams) (*centrality.Report, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	k := reportKey{viewKey: n.key(p.View), index: index}
	if r, ok := n.reports[k]; ok {
		n.hit("centrality", k.relation)
		return r, nil
	}
	n.miss("centrality", k.relation)

	opts := []centrality.Option{
		centrality.WithContext(n.cfg.Ctx),
		centrality.WithLogger(n.cfg.Logger),
		centrality.WithDamping(n.cfg.Damping),
		centrality.WithPrecision(n.cfg.Precision),
	}
	switch {
	case k.inverted:
		opts = append(opts, centrality.WithInvertWeights())
	case k.weighted:
		opts = append(opts, centrality.WithWeights())
	}
	r, err := centrality.Compute(n.snapshot(k.snapshotKey), index, opts...)
	if err != nil {
		return r, err
	}
	n.reports[k] = r

	return r, nil
}

// adapterOptions maps a view onto the snapshot→matrix adapter policy.
func adapterOptions(k viewKey) []matrix.Option {
	switch {
	case k.inverted:
		return []matrix.Option{matrix.WithInvertWeights()}
	case k.weighted:
		return nil
	default:
		return []matrix.Option{matrix.WithBinary()}
	}
}

// Matrix builds a matrix of the given kind; row/column i is vertex
// Snapshot(p.View).ID(i).
//
// Errors:
//   - ErrEmptyNetwork, ErrUnknownMatrix, matrix.ErrSingular and
//     ErrBadTolerance (Inverse),
//     geodesic errors for the path-based kinds.
func (n *Network) Matrix(kind MatrixKind, p MatrixParams) (*matrix.Dense, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	k := n.key(p.View)
	s := n.snapshot(k.snapshotKey)
	if s.N() == 0 {
		return nil, ErrEmptyNetwork
	}
	opts := adapterOptions(k)

	switch kind {
	case AdjacencyMatrix:
		return matrix.Adjacency(s, opts...)
	case DegreeMatrix:
		return matrix.Degree(s, opts...)
	case LaplacianMatrix:
		return matrix.Laplacian(s, opts...)
	case CocitationMatrix:
		return matrix.Cocitation(s, opts...)
	case DistanceMatrix, ShortestPathsMatrix:
		t, err := n.table(k)
		if err != nil {
			return nil, err
		}
		if kind == DistanceMatrix {
			return t.DistanceMatrix()
		}

		return t.SigmaMatrix()
	case InverseMatrix:
		tol := p.PivotTolerance
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return nil, fmt.Errorf("%w: pivot %g", ErrBadTolerance, tol)
		}
		a, err := matrix.Adjacency(s, opts...)
		if err != nil {
			return nil, err
		}
		var iopts []matrix.Option
		if tol > 0 {
			iopts = append(iopts, matrix.WithPivotTolerance(tol))
		}

		return matrix.Inverse(a, p.Method, iopts...)
	case DissimilarityMatrix:
		a, err := matrix.Adjacency(s, opts...)
		if err != nil {
			return nil, err
		}

		return matrix.Dissimilarity(a, p.Metric, p.Variables)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMatrix, int(kind))
	}
}

// Cluster runs agglomerative clustering over the vertices of p.View.
//
// Implementation:
//   - Stage 1: build the dissimilarity, either geodesic distances made
//     symmetric by taking the shorter direction (unreachable pairs stay
//     +Inf), or the tie-profile Dissimilarity of the adjacency matrix.
//   - Stage 2: cluster.Hierarchical with p.Linkage.
//
// Errors:
//   - ErrEmptyNetwork, cluster.ErrUnknownLinkage, matrix and geodesic errors.
func (n *Network) Cluster(p ClusterParams) (*ClusterResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sync()

	k := n.key(p.View)
	s := n.snapshot(k.snapshotKey)
	if s.N() == 0 {
		return nil, ErrEmptyNetwork
	}

	var (
		d   *matrix.Dense
		err error
	)
	if p.UseDistances {
		d, err = n.symmetricDistances(k)
	} else {
		var a *matrix.Dense
		if a, err = matrix.Adjacency(s, adapterOptions(k)...); err == nil {
			d, err = matrix.Dissimilarity(a, p.Metric, p.Variables)
		}
	}
	if err != nil {
		return nil, err
	}

	den, err := cluster.Hierarchical(d, p.Linkage)
	if err != nil {
		return nil, err
	}
	n.cfg.Logger.Debug("analysis: clustered", "n", s.N(), "linkage", p.Linkage)

	return &ClusterResult{IDs: s.IDs(), Dendrogram: den}, nil
}

// symmetricDistances returns min(d(i,j), d(j,i)) per pair. Callers hold n.mu.
func (n *Network) symmetricDistances(k viewKey) (*matrix.Dense, error) {
	t, err := n.table(k)
	if err != nil {
		return nil, err
	}
	d, err := matrix.NewDense(t.N, t.N, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.N; i++ {
		for j := 0; j < t.N; j++ {
			if err = d.Set(i, j, math.Min(t.Dist[i][j], t.Dist[j][i])); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// ClusteringCoefficient returns the local clustering coefficients of v.
// Weights in v are ignored.
func (n *Network) ClusteringCoefficient(v View) (*cluster.CLCReport, error) {
	return cluster.ClusteringCoefficient(n.Snapshot(v))
}

// TriadCensus classifies every vertex triple of v.
func (n *Network) TriadCensus(v View) (cluster.Census, error) {
	return cluster.TriadCensus(n.Snapshot(v))
}

// Layout computes positions for the vertices of p.Relation. It never writes
// to the store; see StorePositions.
//
// Errors:
//   - layout.ErrUnknownAlgorithm, layout.ErrBadCanvas, layout.ErrBadIterations.
func (n *Network) Layout(p LayoutParams) (*layout.Result, error) {
	s := n.Snapshot(View{Relation: p.Relation})

	initial := make(layout.Positions, len(p.Initial))
	if p.FromStore {
		for _, id := range s.IDs() {
			if v, ok := n.g.Vertex(id); ok {
				initial[id] = r2.Vec{X: v.X, Y: v.Y}
			}
		}
	}
	for id, pos := range p.Initial {
		initial[id] = pos
	}

	canvas := p.Canvas
	if canvas == (layout.Canvas{}) {
		canvas = layout.DefaultCanvas
	}
	opts := []layout.Option{
		layout.WithIterations(p.Iterations),
		layout.WithSeed(p.Seed),
		layout.WithCanvas(canvas),
		layout.WithLogger(n.cfg.Logger),
	}
	if p.Observer != nil {
		opts = append(opts, layout.WithObserver(p.Observer))
	}

	return layout.Run(p.Algorithm, s, initial, opts...)
}

// StorePositions writes pos back onto the vertices in ascending id order.
// Unknown ids are reported (joined) but do not stop the remaining writes.
func (n *Network) StorePositions(pos layout.Positions) error {
	ids := make([]int, 0, len(pos))
	for id := range pos {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var errs []error
	for _, id := range ids {
		if err := n.g.SetPosition(id, pos[id].X, pos[id].Y); err != nil {
			errs = append(errs, fmt.Errorf("vertex %d: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
