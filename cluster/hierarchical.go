// SPDX-License-Identifier: MIT
// File: hierarchical.go
// Role: agglomerative clustering over a dissimilarity matrix.

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/socnet/matrix"
)

// validationTolerance bounds the asymmetry accepted in input matrices.
const validationTolerance = 1e-9

// Hierarchical agglomerates N singletons into one cluster.
//
// Steps:
//  1. Validate d: square, symmetric within tolerance, non-negative, finite
//     or +Inf (unreachable distances).
//  2. Keep one slot per live cluster. Each round scans live pairs (i < j)
//     in index order and picks the strictly smallest distance, so ties go
//     to the lowest (i, j).
//  3. Merge j into i, record the Merge and update row i with the linkage
//     rule: single = min, complete = max, average = size-weighted mean.
//  4. After N−1 rounds derive the left-to-right leaf order.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry,
//     matrix.ErrNegativeEntry (wrapped), ErrUnknownLinkage.
//
// Complexity: O(N³) time, O(N²) space.
func Hierarchical(d matrix.Matrix, linkage Linkage) (*Dendrogram, error) {
	if linkage < SingleLinkage || linkage > AverageLinkage {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLinkage, int(linkage))
	}
	if err := matrix.ValidateDissimilarity(d, validationTolerance); err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}

	n := d.Rows()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			v, err := d.At(i, j)
			if err != nil {
				return nil, err
			}
			dist[i][j] = v
		}
	}

	// slot i holds cluster label[i] with size[i] members while alive[i].
	label := make([]int, n)
	size := make([]int, n)
	alive := make([]bool, n)
	for i := range label {
		label[i], size[i], alive[i] = i, 1, true
	}

	den := &Dendrogram{N: n, Merges: make([]Merge, 0, max(n-1, 0))}
	for step := 0; step < n-1; step++ {
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if alive[j] && (bi < 0 || dist[i][j] < best) {
					bi, bj, best = i, j, dist[i][j]
				}
			}
		}

		a, b := label[bi], label[bj]
		if a > b {
			a, b = b, a
		}
		into := n + step
		den.Merges = append(den.Merges, Merge{Level: best, A: a, B: b, Into: into, Size: size[bi] + size[bj]})

		for k := 0; k < n; k++ {
			if !alive[k] || k == bi || k == bj {
				continue
			}
			v := link(linkage, dist[bi][k], dist[bj][k], size[bi], size[bj])
			dist[bi][k], dist[k][bi] = v, v
		}
		size[bi] += size[bj]
		label[bi] = into
		alive[bj] = false
	}
	den.Order = den.leafOrder()

	return den, nil
}

// link applies the linkage rule to the distances from the two merged
// clusters (sizes si, sj) to a third one.
func link(l Linkage, di, dj float64, si, sj int) float64 {
	switch l {
	case CompleteLinkage:
		return math.Max(di, dj)
	case AverageLinkage:
		return (float64(si)*di + float64(sj)*dj) / float64(si+sj)
	default:
		return math.Min(di, dj)
	}
}

// leafOrder walks the merge tree from the root, A before B.
func (den *Dendrogram) leafOrder() []int {
	if den.N == 0 {
		return nil
	}
	order := make([]int, 0, den.N)
	stack := []int{den.N - 1 + len(den.Merges)}
	if len(den.Merges) == 0 {
		stack[0] = 0
	}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c < den.N {
			order = append(order, c)
			continue
		}
		m := den.Merges[c-den.N]
		stack = append(stack, m.B, m.A)
	}

	return order
}

// Levels returns the merge levels in merge order.
func (den *Dendrogram) Levels() []float64 {
	out := make([]float64, len(den.Merges))
	for i, m := range den.Merges {
		out[i] = m.Level
	}

	return out
}

// Cut returns a flat clustering with k clusters: labels[item] in [0, k),
// numbered by first appearance in item order. It replays the first N−k
// merges over a disjoint-set forest.
func (den *Dendrogram) Cut(k int) ([]int, error) {
	if k < 1 || k > den.N {
		return nil, fmt.Errorf("%w: k=%d, N=%d", ErrBadCut, k, den.N)
	}
	total := den.N + len(den.Merges)
	parent := make([]int, total)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, m := range den.Merges[:den.N-k] {
		parent[find(m.A)] = m.Into
		parent[find(m.B)] = m.Into
	}

	labels := make([]int, den.N)
	seen := make(map[int]int, k)
	for i := range labels {
		root := find(i)
		id, ok := seen[root]
		if !ok {
			id = len(seen)
			seen[root] = id
		}
		labels[i] = id
	}

	return labels, nil
}
