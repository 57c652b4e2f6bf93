// SPDX-License-Identifier: MIT
// File: distance.go
// Role: the seven distance-derived indices (CC, IRCC, BC, SC, EC, PC, PP).
//
// One all-pairs sweep feeds all of them: per-source aggregates come from the
// geodesic.Table, while betweenness, stress and power are accumulated in the
// Visitor while each source's predecessor lists are still alive.

package centrality

import (
	"github.com/katalvlaran/socnet/geodesic"
)

// distanceScores holds every distance-derived column of one sweep.
type distanceScores struct {
	e     *engine
	table *geodesic.Table
	bc    []float64
	sc    []float64
	pc    []float64
}

// distances runs the all-pairs sweep with the Brandes backward pass.
//
// Implementation:
//   - Stage 1: configure geodesic options from the run's weighting.
//   - Stage 2: per source, walk Order backwards accumulating
//     δ(v) += σ(v)/σ(w)·(1 + δ(w)) for betweenness and
//     D(v) += 1 + D(w) for stress, then credit every w ≠ source.
//   - Stage 3: halve BC and SC on symmetric views (each pair counted twice).
func (e *engine) distances() (*distanceScores, error) {
	n := e.n
	ds := &distanceScores{
		e:  e,
		bc: make([]float64, n),
		sc: make([]float64, n),
		pc: make([]float64, n),
	}
	delta := make([]float64, n)
	down := make([]float64, n)

	visit := func(r *geodesic.Result) {
		for _, v := range r.Order {
			delta[v], down[v] = 0, 0
		}
		for k := len(r.Order) - 1; k >= 0; k-- {
			w := r.Order[k]
			for _, v := range r.Preds[w] {
				delta[v] += r.Sigma[v] / r.Sigma[w] * (1 + delta[w])
				down[v] += 1 + down[w]
			}
			if w == r.Source {
				continue
			}
			ds.bc[w] += delta[w]
			ds.sc[w] += r.Sigma[w] * down[w]
			ds.pc[r.Source] += 1 / r.Dist[w]
		}
	}

	gopts := []geodesic.Option{geodesic.WithContext(e.cfg.Ctx), geodesic.WithVisitor(visit)}
	switch {
	case e.cfg.InvertWeights:
		gopts = append(gopts, geodesic.WithInvertWeights())
	case e.cfg.Weighted:
		gopts = append(gopts, geodesic.WithWeights())
	}
	t, err := geodesic.AllPairs(e.s, gopts...)
	if err != nil {
		return nil, err
	}
	ds.table = t

	if e.symmetric {
		for i := range ds.bc {
			ds.bc[i] /= 2
			ds.sc[i] /= 2
		}
	}
	e.cfg.Logger.Debug("geodesics ready", "diameter", t.Diameter, "connected", t.Connected)

	return ds, nil
}

// pick derives the partial for one distance index.
func (ds *distanceScores) pick(index Index) *partial {
	n := ds.e.n
	p := newPartial(n)
	p.connected = ds.table.Connected

	switch index {
	case Closeness:
		ds.closeness(p)
	case InfluenceRange:
		ds.influenceRange(p)
	case Betweenness:
		copy(p.raw, ds.bc)
		denom := float64(n-1) * float64(n-2)
		if ds.e.symmetric {
			denom /= 2
		}
		if n <= 2 {
			denom = 1
		}
		divideBy(p.std, p.raw, denom)
		p.group = maxGroup(p.std, float64(n-1))
	case Stress:
		copy(p.raw, ds.sc)
		var sum float64
		for _, v := range p.raw {
			sum += v
		}
		divideBy(p.std, p.raw, sum)
	case Eccentricity:
		ds.eccentricity(p)
	case Power:
		copy(p.raw, ds.pc)
		for i, v := range p.raw {
			if r := ds.table.Reached[i]; r > 0 {
				p.std[i] = v / float64(r)
			}
		}
	case Proximity:
		ds.proximity(p)
	}

	return p
}

// closeness: CC(u) = 1/Σd(u,v) when u reaches every other vertex, else 0
// and u is excluded. Std = (N−1)·CC; group is Freeman's
// Σ(max − std)·(2N−3)/((N−1)(N−2)).
func (ds *distanceScores) closeness(p *partial) {
	n := ds.e.n
	t := ds.table
	for i := 0; i < n; i++ {
		if n == 1 {
			continue
		}
		if t.Reached[i] != n-1 || t.DistanceSum[i] == 0 {
			p.excluded = append(p.excluded, i)
			continue
		}
		p.raw[i] = 1 / t.DistanceSum[i]
		p.std[i] = float64(n-1) * p.raw[i]
	}
	if n >= 3 {
		p.group = maxGroup(p.std, 1) * float64(2*n-3) / (float64(n-1) * float64(n-2))
	} else {
		p.group = 0
	}
}

// influenceRange: IRCC(u) = (J/(N−1)) / (Σd/J) over the J vertices u reaches.
func (ds *distanceScores) influenceRange(p *partial) {
	n := ds.e.n
	t := ds.table
	for i := 0; i < n; i++ {
		j := float64(t.Reached[i])
		if j == 0 || t.DistanceSum[i] == 0 {
			continue
		}
		p.raw[i] = (j / float64(n-1)) / (t.DistanceSum[i] / j)
		p.std[i] = p.raw[i]
	}
}

// eccentricity: EC(u) = 1/ecc(u) when u reaches everyone, else 0 (excluded).
// Std divides by the maximum.
func (ds *distanceScores) eccentricity(p *partial) {
	n := ds.e.n
	t := ds.table
	var hi float64
	for i := 0; i < n; i++ {
		if n == 1 {
			continue
		}
		if t.Reached[i] != n-1 || t.Eccentricity[i] == 0 {
			p.excluded = append(p.excluded, i)
			continue
		}
		p.raw[i] = 1 / t.Eccentricity[i]
		if p.raw[i] > hi {
			hi = p.raw[i]
		}
	}
	divideBy(p.std, p.raw, hi)
}

// proximity is IRCC on incoming distances: the I vertices that reach u and
// their mean distance to u.
func (ds *distanceScores) proximity(p *partial) {
	n := ds.e.n
	t := ds.table
	for u := 0; u < n; u++ {
		var reach, sum float64
		for v := 0; v < n; v++ {
			if v == u || t.Dist[v][u] == geodesic.Inf {
				continue
			}
			reach++
			sum += t.Dist[v][u]
		}
		if reach == 0 || sum == 0 {
			continue
		}
		p.raw[u] = (reach / float64(n-1)) / (sum / reach)
		p.std[u] = p.raw[u]
	}
}
