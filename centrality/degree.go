// SPDX-License-Identifier: MIT

package centrality

// degree computes out-degree centrality (DC) or, with prestige=true,
// in-degree prestige (DP).
//
// Raw values count arcs (unweighted) or sum arc values (weighted); self-loops
// never contribute. Std divides by N−1 unweighted or by the column total
// weighted. The group index is Σ(max − std) over N−2 on symmetric views and
// N−1 otherwise, 0 for N < 3.
func (e *engine) degree(prestige bool) *partial {
	n := e.n
	p := newPartial(n)
	var total float64
	for i := 0; i < n; i++ {
		arcs := e.s.Out(i)
		if prestige {
			arcs = e.s.In(i)
		}
		for _, a := range arcs {
			if a.Peer == i || a.Weight == 0 {
				continue
			}
			p.raw[i] += e.arcValue(a.Weight)
		}
		total += p.raw[i]
	}

	if e.cfg.Weighted {
		divideBy(p.std, p.raw, total)
	} else if n > 1 {
		divideBy(p.std, p.raw, float64(n-1))
	}

	p.group = 0
	if n >= 3 {
		denom := float64(n - 1)
		if e.symmetric {
			denom = float64(n - 2)
		}
		p.group = maxGroup(p.std, denom)
	}

	return p
}
