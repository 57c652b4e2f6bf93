// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Arc lifecycle & queries per relation.
//
// An Undirected edge is stored as two arcs (from→to, to→from) that share the
// same weight and the Undirected tag. A Reciprocated edge is two Directed arcs
// created together; a Directed arc whose reverse already exists is re-tagged
// Reciprocated together with its mate.
package core

import (
	"fmt"
	"math"
	"sort"
)

func (g *Graph) resolveEdgeConfig(opts []EdgeOption) edgeConfig {
	cfg := edgeConfig{typ: Directed, enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasRelation {
		cfg.relation = g.current
	}

	return cfg
}

// AddEdge creates (or overwrites) the arc from→to with the given weight.
// Missing endpoints are created enabled. Undirected and Reciprocated types
// also create the reverse arc.
//
// Implementation:
//   - Stage 1: Validate weight and loop policy.
//   - Stage 2: Under muVert then muEdgeAdj, ensure endpoints and write arcs.
//   - Stage 3: Bump generation once for the whole call.
//
// Errors:
//   - ErrBadWeight, ErrLoopNotAllowed, ErrNegativeVertexID, ErrRelationNotFound.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64, opts ...EdgeOption) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrBadWeight)
	}
	if from < 0 || to < 0 {
		return ErrNegativeVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	cfg := g.resolveEdgeConfig(opts)
	if cfg.relation < 0 || cfg.relation >= len(g.relations) {
		g.muEdgeAdj.Unlock()
		g.muVert.Unlock()
		return ErrRelationNotFound
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	r := g.relations[cfg.relation]
	mk := func() *arc {
		return &arc{weight: weight, typ: cfg.typ, enabled: cfg.enabled, label: cfg.label, color: cfg.color}
	}
	r.put(from, to, mk())
	switch cfg.typ {
	case Undirected, Reciprocated:
		if from != to {
			r.put(to, from, mk())
		}
	case Directed:
		// A directed arc meeting an existing reverse arc forms a reciprocated
		// pair, whatever the reverse arc was tagged before.
		if rev, ok := r.out[to][from]; ok && from != to {
			rev.typ = Reciprocated
			r.out[from][to].typ = Reciprocated
		}
	}
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()

	g.commit(Change{Kind: EdgeAdded, From: from, To: to, Relation: cfg.relation})

	return nil
}

func (r *relation) put(from, to int, a *arc) {
	if r.out[from] == nil {
		r.out[from] = make(map[int]*arc)
	}
	if r.in[to] == nil {
		r.in[to] = make(map[int]*arc)
	}
	r.out[from][to] = a
	r.in[to][from] = a
}

func (r *relation) drop(from, to int) bool {
	if _, ok := r.out[from][to]; !ok {
		return false
	}
	delete(r.out[from], to)
	delete(r.in[to], from)

	return true
}

// RemoveEdge deletes the arc from→to in the current (or WithRelation) relation.
// Undirected arcs are removed together with their mate; a Reciprocated mate
// left behind is downgraded to Directed.
func (g *Graph) RemoveEdge(from, to int, opts ...EdgeOption) error {
	g.muEdgeAdj.Lock()
	cfg := g.resolveEdgeConfig(opts)
	if cfg.relation < 0 || cfg.relation >= len(g.relations) {
		g.muEdgeAdj.Unlock()
		return ErrRelationNotFound
	}
	r := g.relations[cfg.relation]
	a, ok := r.out[from][to]
	if !ok {
		g.muEdgeAdj.Unlock()
		return fmt.Errorf("RemoveEdge(%d→%d): %w", from, to, ErrEdgeNotFound)
	}
	r.drop(from, to)
	switch a.typ {
	case Undirected:
		r.drop(to, from)
	case Reciprocated:
		if rev, ok := r.out[to][from]; ok {
			rev.typ = Directed
		}
	}
	g.muEdgeAdj.Unlock()

	g.commit(Change{Kind: EdgeRemoved, From: from, To: to, Relation: cfg.relation})

	return nil
}

// SetEdgeEnabled toggles the arc from→to (and its undirected mate) in rel.
func (g *Graph) SetEdgeEnabled(from, to, rel int, enabled bool) error {
	g.muEdgeAdj.Lock()
	if rel < 0 || rel >= len(g.relations) {
		g.muEdgeAdj.Unlock()
		return ErrRelationNotFound
	}
	r := g.relations[rel]
	a, ok := r.out[from][to]
	if !ok {
		g.muEdgeAdj.Unlock()
		return ErrEdgeNotFound
	}
	changed := a.enabled != enabled
	a.enabled = enabled
	if a.typ == Undirected {
		if rev, ok := r.out[to][from]; ok {
			rev.enabled = enabled
		}
	}
	g.muEdgeAdj.Unlock()

	if changed {
		g.commit(Change{Kind: EdgeToggled, From: from, To: to, Relation: rel})
	}

	return nil
}

// EdgeWeight returns the weight of the enabled arc from→to in rel, or 0.
func (g *Graph) EdgeWeight(from, to, rel int) float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return 0
	}
	if a, ok := g.relations[rel].out[from][to]; ok && a.enabled {
		return a.weight
	}

	return 0
}

// HasEdge reports whether an arc from→to exists in rel (enabled or not).
func (g *Graph) HasEdge(from, to, rel int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return false
	}
	_, ok := g.relations[rel].out[from][to]

	return ok
}

// EdgeTypeOf returns the type tag of arc from→to in rel; ok is false if absent.
func (g *Graph) EdgeTypeOf(from, to, rel int) (EdgeType, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return Directed, false
	}
	a, ok := g.relations[rel].out[from][to]
	if !ok {
		return Directed, false
	}

	return a.typ, true
}

// Edges lists every arc of rel sorted by (From index, To index).
// Complexity: O(E log E).
func (g *Graph) Edges(rel int) []Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return nil
	}

	r := g.relations[rel]
	out := make([]Edge, 0)
	for from, row := range r.out {
		for to, a := range row {
			out = append(out, Edge{
				From: from, To: to, Relation: rel,
				Weight: a.weight, Type: a.typ, Enabled: a.enabled,
				Label: a.label, Color: a.color,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := g.index[out[i].From], g.index[out[j].From]
		if fi != fj {
			return fi < fj
		}
		return g.index[out[i].To] < g.index[out[j].To]
	})

	return out
}

// EdgeCount returns the number of arcs stored in rel.
func (g *Graph) EdgeCount(rel int) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return 0
	}
	n := 0
	for _, row := range g.relations[rel].out {
		n += len(row)
	}

	return n
}
