// SPDX-License-Identifier: MIT

// Package cluster provides error definitions and result types for local
// clustering, triad census and hierarchical agglomerative clustering.
package cluster

import (
	"errors"
	"fmt"
)

// Sentinel errors for the clustering engine.
var (
	// ErrNilSnapshot is returned if a nil snapshot pointer is passed.
	ErrNilSnapshot = errors.New("cluster: snapshot is nil")

	// ErrUnknownLinkage is returned for a Linkage outside the supported set.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage")

	// ErrBadCut is returned when Cut is asked for k outside [1, N].
	ErrBadCut = errors.New("cluster: cut size out of range")
)

// VertexCLC is one vertex's local clustering coefficient.
type VertexCLC struct {
	ID int

	// Value is Ties / possible ties; 0 when Neighbours < 2.
	Value float64

	// Neighbours is the size of the in ∪ out neighbourhood (self excluded).
	Neighbours int

	// Ties counts ties among the neighbours: unordered pairs on symmetric
	// graphs, ordered arcs otherwise.
	Ties int
}

// CLCReport aggregates ClusteringCoefficient.
type CLCReport struct {
	Scores   []VertexCLC // snapshot index order
	Mean     float64
	Variance float64 // population variance
}

// TriadType is one of the 16 Holland–Leinhardt–Davis M-A-N classes.
type TriadType int

const (
	Triad003 TriadType = iota
	Triad012
	Triad102
	Triad021D
	Triad021U
	Triad021C
	Triad111D
	Triad111U
	Triad030T
	Triad030C
	Triad201
	Triad120D
	Triad120U
	Triad120C
	Triad210
	Triad300
)

var triadNames = [16]string{
	"003", "012", "102", "021D", "021U", "021C", "111D", "111U",
	"030T", "030C", "201", "120D", "120U", "120C", "210", "300",
}

// String returns the M-A-N label, e.g. "030T".
func (t TriadType) String() string {
	if t < 0 || int(t) >= len(triadNames) {
		return fmt.Sprintf("TriadType(%d)", int(t))
	}

	return triadNames[t]
}

// Census holds one count per TriadType.
type Census [16]int

// Total sums all classes; equals C(N,3) for a census of N vertices.
func (c Census) Total() int {
	var sum int
	for _, v := range c {
		sum += v
	}

	return sum
}

// Percent returns the share of class t in percent; 0 on an empty census.
func (c Census) Percent(t TriadType) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}

	return 100 * float64(c[t]) / float64(total)
}

// Linkage selects the inter-cluster distance rule.
type Linkage int

const (
	// SingleLinkage uses the minimum pairwise distance.
	SingleLinkage Linkage = iota
	// CompleteLinkage uses the maximum pairwise distance.
	CompleteLinkage
	// AverageLinkage uses the mean pairwise distance (UPGMA).
	AverageLinkage
)

// String returns the lower-case linkage name.
func (l Linkage) String() string {
	switch l {
	case SingleLinkage:
		return "single"
	case CompleteLinkage:
		return "complete"
	case AverageLinkage:
		return "average"
	default:
		return "unknown"
	}
}

// ParseLinkage resolves "single", "complete" or "average".
func ParseLinkage(name string) (Linkage, error) {
	for _, l := range []Linkage{SingleLinkage, CompleteLinkage, AverageLinkage} {
		if l.String() == name {
			return l, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLinkage, name)
}

// Merge records one agglomeration step.
//
// Items are numbered 0..N−1; the cluster created by merge k is N+k. A < B.
type Merge struct {
	Level float64
	A, B  int
	Into  int
	Size  int
}

// Dendrogram is the full merge sequence over N items.
type Dendrogram struct {
	N      int
	Merges []Merge // len N−1, in merge order

	// Order lists items left to right as a dendrogram would draw them.
	Order []int
}
