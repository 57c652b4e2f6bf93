// SPDX-License-Identifier: MIT

package cluster

import "github.com/katalvlaran/socnet/core"

// tricodes maps the 6-bit arc pattern of an ordered triple (v,u,w) to its
// TriadType. Bits: v→u 1, u→v 2, v→w 4, w→v 8, u→w 16, w→u 32.
var tricodes = [64]TriadType{
	0, 1, 1, 2, 1, 3, 5, 7, 1, 5, 4, 6, 2, 7, 6, 10,
	1, 5, 3, 7, 4, 8, 8, 12, 5, 9, 8, 13, 6, 13, 11, 14,
	1, 4, 5, 6, 5, 8, 9, 13, 3, 8, 8, 11, 7, 12, 13, 14,
	2, 6, 7, 10, 6, 11, 13, 14, 7, 13, 12, 14, 10, 14, 14, 15,
}

// TriadCensus classifies every 3-vertex subset of s into one of the 16
// M-A-N types.
//
// Steps:
//  1. For each i < j < k read the six possible arcs into a bit pattern.
//  2. Look the pattern up in tricodes; the table is invariant under
//     relabelling, so the triple order does not matter.
//
// Complexity: O(N³) HasArc lookups, each O(log deg). The counts sum to C(N,3).
func TriadCensus(s *core.Snapshot) (Census, error) {
	var c Census
	if s == nil {
		return c, ErrNilSnapshot
	}
	n := s.N()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ij := pattern(s, i, j, 1, 2)
			for k := j + 1; k < n; k++ {
				code := ij | pattern(s, i, k, 4, 8) | pattern(s, j, k, 16, 32)
				c[tricodes[code]]++
			}
		}
	}

	return c, nil
}

// pattern returns fwd if a→b exists plus rev if b→a exists.
func pattern(s *core.Snapshot, a, b, fwd, rev int) int {
	var p int
	if s.HasArc(a, b) {
		p |= fwd
	}
	if s.HasArc(b, a) {
		p |= rev
	}

	return p
}
