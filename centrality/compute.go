// SPDX-License-Identifier: MIT
// File: compute.go
// Role: dispatch, report assembly and the shared engine state.
//
// Every index produces a partial (raw and standardized columns plus flags);
// finish turns it into a Report with aggregate stats and a histogram, so
// statistics are computed the same way for every index.

package centrality

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/socnet/core"
)

// engine holds the inputs of one run.
type engine struct {
	s         *core.Snapshot
	cfg       Options
	n         int
	symmetric bool
}

// partial is what an index kernel hands back to finish.
type partial struct {
	raw, std   []float64
	group      float64
	connected  bool
	excluded   []int // dense indices
	converged  bool
	iterations int
}

func newPartial(n int) *partial {
	return &partial{
		raw:       make([]float64, n),
		std:       make([]float64, n),
		group:     math.NaN(),
		connected: true,
		converged: true,
	}
}

func newEngine(s *core.Snapshot, opts []Option) (*engine, error) {
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

	return &engine{
		s:         s,
		cfg:       cfg,
		n:         s.N(),
		symmetric: symmetricView(s, cfg.Weighted),
	}, nil
}

// Compute evaluates one index over s.
//
// Implementation:
//   - Stage 1: resolve options; decide whether the snapshot is symmetric
//     under the requested weighting.
//   - Stage 2: run the index kernel.
//   - Stage 3: assemble stats, group index and histogram.
//
// Behavior highlights:
//   - Connectivity failures never error: affected vertices score 0 and are
//     listed in Report.Excluded.
//   - Information centrality on a singular system returns a zero Report
//     together with an error wrapping matrix.ErrSingular.
//
// Errors:
//   - ErrNilSnapshot, ErrUnknownIndex, ErrBadPrecision, geodesic errors
//     (negative weights), ctx.Err(), matrix.ErrSingular (Information only).
//
// Complexity:
//   - Degree: O(V + E); distance indices: one all-pairs sweep; Eigenvector
//     and PageRank: O(iter·V²) / O(iter·(V + E)); Information: O(V³).
func Compute(s *core.Snapshot, index Index, opts ...Option) (*Report, error) {
	e, err := newEngine(s, opts)
	if err != nil {
		return nil, err
	}
	if _, ok := indexNames[index]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIndex, int(index))
	}
	e.cfg.Logger.Debug("computing centrality", "index", index.Abbrev(), "n", e.n, "weighted", e.cfg.Weighted)

	if index.distanceBased() {
		ds, err := e.distances()
		if err != nil {
			return nil, err
		}

		return e.finish(index, ds.pick(index)), nil
	}

	p, err := e.kernel(index)
	if p == nil {
		return nil, err
	}

	return e.finish(index, p), err
}

func (e *engine) kernel(index Index) (*partial, error) {
	switch index {
	case Degree:
		return e.degree(false), nil
	case DegreePrestige:
		return e.degree(true), nil
	case Eigenvector:
		return e.eigenvector()
	case Information:
		return e.information()
	case PageRank:
		return e.pagerank(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownIndex, int(index))
	}
}

// ComputeAll evaluates every index, running the all-pairs sweep only once.
// A failing index (e.g. singular Information) still yields its zero Report;
// all such errors are joined into the returned error.
func ComputeAll(s *core.Snapshot, opts ...Option) (map[Index]*Report, error) {
	e, err := newEngine(s, opts)
	if err != nil {
		return nil, err
	}
	ds, err := e.distances()
	if err != nil {
		return nil, err
	}

	out := make(map[Index]*Report, len(Indices))
	var errs []error
	for _, idx := range Indices {
		if idx.distanceBased() {
			out[idx] = e.finish(idx, ds.pick(idx))
			continue
		}
		p, kerr := e.kernel(idx)
		if kerr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", idx.Abbrev(), kerr))
		}
		if p != nil {
			out[idx] = e.finish(idx, p)
		}
	}

	return out, errors.Join(errs...)
}

// finish assembles the Report.
func (e *engine) finish(index Index, p *partial) *Report {
	r := &Report{
		Index:      index,
		Scores:     make([]Score, e.n),
		Group:      p.group,
		Connected:  p.connected,
		Converged:  p.converged,
		Iterations: p.iterations,
	}
	for i := 0; i < e.n; i++ {
		r.Scores[i] = Score{ID: e.s.ID(i), Raw: p.raw[i], Std: p.std[i]}
	}
	for _, i := range p.excluded {
		r.Excluded = append(r.Excluded, e.s.ID(i))
	}
	if len(r.Excluded) > 0 {
		e.cfg.Logger.Warn("vertices scored zero", "index", index.Abbrev(), "count", len(r.Excluded))
	}
	if !p.converged {
		e.cfg.Logger.Warn("iteration cap reached", "index", index.Abbrev(), "iterations", p.iterations)
	}
	if e.n > 0 {
		r.Stats = e.stats(p)
		r.Histogram = histogram(p.std, e.cfg.Precision)
	}

	return r
}

func (e *engine) stats(p *partial) Stats {
	var st Stats
	st.Sum = floats.Sum(p.raw)
	st.Mean, st.Variance = stat.PopMeanVariance(p.raw, nil)
	lo, hi := floats.MinIdx(p.raw), floats.MaxIdx(p.raw)
	st.Min, st.MinID = p.raw[lo], e.s.ID(lo)
	st.Max, st.MaxID = p.raw[hi], e.s.ID(hi)
	st.StdSum = floats.Sum(p.std)
	st.StdMean, st.StdVariance = stat.PopMeanVariance(p.std, nil)

	return st
}

// histogram counts standardized values after rounding to prec decimals.
func histogram(std []float64, prec int) []Bin {
	scale := math.Pow(10, float64(prec))
	counts := make(map[float64]int)
	for _, v := range std {
		counts[math.Round(v*scale)/scale]++
	}
	bins := make([]Bin, 0, len(counts))
	for v, c := range counts {
		bins = append(bins, Bin{Value: v, Count: c})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Value < bins[j].Value })

	return bins
}

// symmetricView reports whether s is symmetric under the requested
// weighting: unweighted runs only need every arc to be reciprocated.
func symmetricView(s *core.Snapshot, weighted bool) bool {
	if s.Symmetric() {
		return true
	}
	if weighted {
		return false
	}
	for i := 0; i < s.N(); i++ {
		for _, a := range s.Out(i) {
			if !s.HasArc(a.Peer, i) {
				return false
			}
		}
	}

	return true
}

// arcValue is the contribution of one arc weight under the run's weighting.
func (e *engine) arcValue(w float64) float64 {
	switch {
	case !e.cfg.Weighted:
		return 1
	case e.cfg.InvertWeights && w != 0:
		return 1 / w
	default:
		return w
	}
}

// maxGroup computes Σ(max − xᵢ)/denom; 0 when denom is not positive.
func maxGroup(std []float64, denom float64) float64 {
	if len(std) == 0 || denom <= 0 {
		return 0
	}
	m := floats.Max(std)
	var sum float64
	for _, v := range std {
		sum += m - v
	}

	return sum / denom
}

// divideBy scales src by 1/d into dst; leaves zeros when d == 0.
func divideBy(dst, src []float64, d float64) {
	if d == 0 {
		return
	}
	for i, v := range src {
		dst[i] = v / d
	}
}
