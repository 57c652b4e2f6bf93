// SPDX-License-Identifier: MIT

// Package analysis provides parameter types, error definitions and options
// for the Network query facade.
package analysis

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/cluster"
	"github.com/katalvlaran/socnet/layout"
	"github.com/katalvlaran/socnet/matrix"
)

// Sentinel errors for facade queries.
var (
	// ErrNilGraph is returned by New when no graph is supplied.
	ErrNilGraph = errors.New("analysis: graph is nil")

	// ErrUnknownMatrix is returned for a MatrixKind outside the supported set.
	ErrUnknownMatrix = errors.New("analysis: unknown matrix kind")

	// ErrBadTolerance is returned for a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("analysis: tolerance must be finite and non-negative")

	// ErrEmptyNetwork is returned when a query needs at least one vertex.
	ErrEmptyNetwork = errors.New("analysis: network has no vertices")
)

// CurrentRelation selects whatever relation the graph has selected at query
// time.
const CurrentRelation = -1

// View selects the projection a query runs on. The zero value is relation 0,
// unweighted, isolates kept, arcs as stored.
type View struct {
	// Relation is the edge layer; CurrentRelation follows the graph.
	Relation int

	// Weighted uses arc weights as path lengths and matrix cells.
	Weighted bool

	// InvertWeights reads a weight w as 1/w. Implies Weighted.
	InvertWeights bool

	// DropIsolates removes vertices without ties before the query.
	DropIsolates bool

	// Symmetrize adds the reverse of every arc, keeping the larger weight
	// where both directions exist.
	Symmetrize bool
}

// DefaultView follows the current relation, unweighted, isolates kept.
func DefaultView() View {
	return View{Relation: CurrentRelation}
}

// CentralityParams selects the projection of one centrality query.
type CentralityParams struct {
	View
}

// MatrixKind enumerates the matrices Network.Matrix can produce.
type MatrixKind int

const (
	AdjacencyMatrix MatrixKind = iota
	DegreeMatrix
	LaplacianMatrix
	CocitationMatrix
	DistanceMatrix
	ShortestPathsMatrix
	InverseMatrix
	DissimilarityMatrix
)

var matrixNames = map[MatrixKind]string{
	AdjacencyMatrix:     "adjacency",
	DegreeMatrix:        "degree",
	LaplacianMatrix:     "laplacian",
	CocitationMatrix:    "cocitation",
	DistanceMatrix:      "distances",
	ShortestPathsMatrix: "shortest-paths",
	InverseMatrix:       "inverse",
	DissimilarityMatrix: "dissimilarities",
}

// String returns the lower-case kind name.
func (k MatrixKind) String() string {
	if n, ok := matrixNames[k]; ok {
		return n
	}

	return "unknown"
}

// ParseMatrixKind resolves a kind by its String name.
func ParseMatrixKind(name string) (MatrixKind, error) {
	for k, n := range matrixNames {
		if n == name {
			return k, nil
		}
	}

	return 0, ErrUnknownMatrix
}

// MatrixParams configures Network.Matrix.
type MatrixParams struct {
	View

	// Method is the inversion algorithm for InverseMatrix.
	Method matrix.InverseMethod

	// PivotTolerance is the pivot magnitude under which InverseMatrix
	// reports matrix.ErrSingular; 0 keeps matrix.DefaultPivotTolerance.
	PivotTolerance float64

	// Metric and Variables configure DissimilarityMatrix.
	Metric    matrix.Metric
	Variables matrix.Variables
}

// ClusterParams configures Network.Cluster.
type ClusterParams struct {
	View

	Linkage cluster.Linkage

	// UseDistances clusters on geodesic distances (shorter direction for
	// directed pairs) instead of tie-profile dissimilarities.
	UseDistances bool

	// Metric and Variables build the dissimilarity when UseDistances is false.
	Metric    matrix.Metric
	Variables matrix.Variables
}

// ClusterResult is a dendrogram over the snapshot the query ran on. Leaf i of
// the dendrogram is vertex IDs[i].
type ClusterResult struct {
	IDs        []int
	Dendrogram *cluster.Dendrogram
}

// LayoutParams configures Network.Layout.
type LayoutParams struct {
	Relation int

	Algorithm  layout.Algorithm
	Iterations int // 0 selects the algorithm default
	Seed       int64
	Canvas     layout.Canvas

	// Initial overrides starting coordinates per vertex id.
	Initial layout.Positions

	// FromStore starts from the coordinates stored on the vertices for ids
	// not present in Initial.
	FromStore bool

	// Observer receives intermediate positions.
	Observer func(iter int, pos layout.Positions)
}

// DefaultLayoutParams returns a Kamada-Kawai run on the default canvas.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Relation:  CurrentRelation,
		Algorithm: layout.KK,
		Canvas:    layout.DefaultCanvas,
	}
}

// Option configures a Network.
type Option func(*Options)

// Options holds Network settings.
type Options struct {
	// Ctx cancels long all-pairs sweeps.
	Ctx context.Context

	// Logger receives cache and degradation diagnostics.
	Logger *log.Logger

	// Damping and Precision are forwarded to the centrality engine.
	Damping   float64
	Precision int
}

// DefaultOptions returns a background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    log.NewWithOptions(io.Discard, log.Options{}),
		Damping:   centrality.DefaultDamping,
		Precision: centrality.DefaultPrecision,
	}
}

// WithContext sets the context passed to every computation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDamping sets the PageRank damping factor; values outside (0,1] are
// ignored.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d > 0 && d <= 1 {
			o.Damping = d
		}
	}
}

// WithPrecision sets the histogram precision for centrality reports;
// negative values are ignored.
func WithPrecision(p int) Option {
	return func(o *Options) {
		if p >= 0 {
			o.Precision = p
		}
	}
}
