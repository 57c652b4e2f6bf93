// Package geodesic provides tunable options, error definitions and result
// types for single-source and all-pairs shortest paths over a core.Snapshot.
package geodesic

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrNilSnapshot is returned if a nil snapshot pointer is passed.
	ErrNilSnapshot = errors.New("geodesic: snapshot is nil")

	// ErrSourceOutOfRange is returned when the source index is not in [0, N).
	ErrSourceOutOfRange = errors.New("geodesic: source index out of range")

	// ErrNegativeWeight is returned when weighted mode meets a negative arc.
	ErrNegativeWeight = errors.New("geodesic: negative arc weight")
)

// Inf is the distance sentinel for unreachable vertices.
var Inf = math.Inf(1)

// Option configures a solver run via functional arguments.
type Option func(*Options)

// Options holds parameters for Solve and AllPairs.
type Options struct {
	// Ctx allows cancellation of AllPairs between sources.
	Ctx context.Context

	// Weighted selects Dijkstra over arc weights; otherwise every arc costs 1.
	Weighted bool

	// InvertWeights reads an arc weight w as the length 1/w (tie strength to
	// distance). Arcs of weight 0 become impassable.
	InvertWeights bool

	// Visitor, if set, is called by AllPairs once per source after the
	// single-source run, before the workspace is reused.
	Visitor func(r *Result)
}

// DefaultOptions returns unweighted BFS semantics with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeights makes arc weights count as lengths (Dijkstra).
func WithWeights() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithInvertWeights makes arc weights count as 1/w. Implies WithWeights.
func WithInvertWeights() Option {
	return func(o *Options) {
		o.Weighted = true
		o.InvertWeights = true
	}
}

// WithVisitor registers a per-source callback for AllPairs.
func WithVisitor(fn func(r *Result)) Option {
	return func(o *Options) { o.Visitor = fn }
}

// Result is the outcome of one single-source run.
//
// Slices are owned by the Workspace that produced them and are overwritten by
// the next Solve on the same Workspace; copy what must outlive it.
type Result struct {
	// Source is the dense index the run started from.
	Source int

	// Dist[v] is d(Source, v), or Inf if v is unreachable.
	Dist []float64

	// Sigma[v] is the number of shortest paths from Source to v (Sigma[Source] = 1).
	Sigma []float64

	// Preds[v] lists the predecessors of v on shortest paths in settle order.
	Preds [][]int

	// Order lists reached vertices by non-decreasing distance, Source first.
	Order []int

	// Eccentricity is the largest finite distance from Source.
	Eccentricity float64

	// DistanceSum is Σ Dist[v] over reached v.
	DistanceSum float64

	// Reached counts vertices other than Source with a finite distance.
	Reached int
}

// Table is the all-pairs outcome.
type Table struct {
	// N is the number of vertices.
	N int

	// Dist[s][t] is d(s,t), Inf when unreachable.
	Dist [][]float64

	// Sigma[s][t] is the number of shortest s→t paths.
	Sigma [][]float64

	// Eccentricity, DistanceSum and Reached are per-source aggregates.
	Eccentricity []float64
	DistanceSum  []float64
	Reached      []int

	// Diameter is the largest finite distance over all pairs.
	Diameter float64

	// AverageDistance is the mean of finite d(s,t), s != t; 0 with no such pair.
	AverageDistance float64

	// Connected is false if any ordered pair is unreachable.
	Connected bool

	// Unreached counts ordered pairs (s,t), s != t, with d(s,t) = Inf.
	Unreached int
}
