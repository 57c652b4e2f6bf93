// SPDX-License-Identifier: MIT

// Package centrality provides tunable options, error definitions and the
// report types for centrality and prestige indices over a core.Snapshot.
package centrality

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for centrality computation.
var (
	// ErrNilSnapshot is returned if a nil snapshot pointer is passed.
	ErrNilSnapshot = errors.New("centrality: snapshot is nil")

	// ErrUnknownIndex is returned for an Index outside the supported set.
	ErrUnknownIndex = errors.New("centrality: unknown index")

	// ErrBadPrecision is returned when the histogram precision is negative.
	ErrBadPrecision = errors.New("centrality: precision must be >= 0")
)

// Index identifies a centrality or prestige index.
type Index int

const (
	Degree Index = iota
	Closeness
	InfluenceRange
	Betweenness
	Stress
	Eccentricity
	Power
	Eigenvector
	Information
	DegreePrestige
	PageRank
	Proximity
)

// Indices lists every supported index in declaration order.
var Indices = []Index{
	Degree, Closeness, InfluenceRange, Betweenness, Stress, Eccentricity,
	Power, Eigenvector, Information, DegreePrestige, PageRank, Proximity,
}

var indexNames = map[Index][2]string{
	Degree:         {"DC", "degree"},
	Closeness:      {"CC", "closeness"},
	InfluenceRange: {"IRCC", "influence-range"},
	Betweenness:    {"BC", "betweenness"},
	Stress:         {"SC", "stress"},
	Eccentricity:   {"EC", "eccentricity"},
	Power:          {"PC", "power"},
	Eigenvector:    {"EVC", "eigenvector"},
	Information:    {"IC", "information"},
	DegreePrestige: {"DP", "degree-prestige"},
	PageRank:       {"PRP", "pagerank"},
	Proximity:      {"PP", "proximity"},
}

// String returns the long lower-case name, e.g. "betweenness".
func (i Index) String() string {
	if n, ok := indexNames[i]; ok {
		return n[1]
	}

	return "unknown"
}

// Abbrev returns the conventional abbreviation, e.g. "BC".
func (i Index) Abbrev() string {
	if n, ok := indexNames[i]; ok {
		return n[0]
	}

	return "?"
}

// ParseIndex resolves a long name or abbreviation (case-sensitive on names,
// upper-case abbreviations).
func ParseIndex(name string) (Index, error) {
	for idx, n := range indexNames {
		if n[0] == name || n[1] == name {
			return idx, nil
		}
	}

	return 0, ErrUnknownIndex
}

// distanceBased reports whether the index is derived from geodesic distances.
func (i Index) distanceBased() bool {
	switch i {
	case Closeness, InfluenceRange, Betweenness, Stress, Eccentricity, Power, Proximity:
		return true
	}

	return false
}

// Score is one vertex's value.
type Score struct {
	ID  int
	Raw float64
	Std float64
}

// Stats aggregates a score column. Variance is the population variance.
type Stats struct {
	Sum, Mean, Variance          float64
	Min, Max                     float64
	MinID, MaxID                 int
	StdSum, StdMean, StdVariance float64
}

// Bin is one bucket of the score-value histogram: Count vertices share the
// standardized value Value after rounding.
type Bin struct {
	Value float64
	Count int
}

// Report is the outcome of one index over one snapshot.
type Report struct {
	Index  Index
	Scores []Score // in snapshot index order
	Stats  Stats

	// Group is the network centralization; NaN when the index defines none.
	Group float64

	Histogram []Bin

	// Connected is false when some ordered pair is unreachable (distance
	// indices) or the graph has isolates (information centrality).
	Connected bool

	// Excluded lists vertex ids whose value degraded to zero because a
	// precondition (reachability, non-isolation) failed.
	Excluded []int

	// Converged and Iterations describe iterative indices (EVC, PRP); other
	// indices report Converged=true, Iterations=0.
	Converged  bool
	Iterations int
}

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds parameters for a centrality run.
type Options struct {
	Ctx context.Context

	// Weighted uses arc weights; otherwise every arc counts as 1.
	Weighted bool

	// InvertWeights reads weights as 1/w (strength ↔ distance).
	InvertWeights bool

	// Precision is the number of decimals standardized scores are rounded to
	// when building the histogram.
	Precision int

	// Damping is the PageRank damping factor d.
	Damping float64

	Logger *log.Logger

	err error
}

// Numeric defaults.
const (
	DefaultPrecision   = 3
	DefaultDamping     = 0.85
	PageRankTolerance  = 1e-5
	PageRankMaxIter    = 500
	EigenTolerance     = 1e-7
	EigenMaxIterations = 500
)

// DefaultOptions returns unweighted settings with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Precision: DefaultPrecision,
		Damping:   DefaultDamping,
		Logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeights makes the indices use arc weights.
func WithWeights() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithInvertWeights reads arc weights as 1/w. Implies WithWeights.
func WithInvertWeights() Option {
	return func(o *Options) {
		o.Weighted = true
		o.InvertWeights = true
	}
}

// WithPrecision sets the histogram rounding precision (decimals).
// A negative value is recorded and surfaced as ErrBadPrecision by Compute.
func WithPrecision(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = ErrBadPrecision
			return
		}
		o.Precision = p
	}
}

// WithDamping overrides the PageRank damping factor; values outside (0,1]
// are ignored.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d > 0 && d <= 1 {
			o.Damping = d
		}
	}
}

// WithLogger routes engine diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
