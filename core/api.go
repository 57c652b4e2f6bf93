// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Relations, change signalling, and read-only getters.
// Policy:
//   - Every committed mutation bumps the generation exactly once and then
//     calls the registered hooks outside of any lock.
//   - Relations are never removed; indices stay stable for the graph lifetime.

package core

// commit bumps the generation and notifies hooks.
func (g *Graph) commit(c Change) {
	g.muVert.Lock()
	g.generation++
	c.Generation = g.generation
	hooks := g.hooks
	g.muVert.Unlock()

	for _, h := range hooks {
		h(c)
	}
}

// Generation returns the structural generation counter. Any derived cache
// computed at generation k is stale once Generation() != k.
// Complexity: O(1).
func (g *Graph) Generation() uint64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.generation
}

// OnChange registers fn to be called after every committed mutation.
// Hooks run synchronously on the mutating goroutine.
func (g *Graph) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	g.muVert.Lock()
	g.hooks = append(g.hooks, fn)
	g.muVert.Unlock()
}

// AddRelation appends a named edge layer and returns its index.
// The current relation is unchanged.
func (g *Graph) AddRelation(name string) int {
	g.muEdgeAdj.Lock()
	g.relations = append(g.relations, newRelation(name))
	rel := len(g.relations) - 1
	g.muEdgeAdj.Unlock()

	g.commit(Change{Kind: RelationAdded, Relation: rel})

	return rel
}

// SelectRelation makes rel the default target of edge mutations and of
// Snapshot(CurrentRelation()).
func (g *Graph) SelectRelation(rel int) error {
	g.muEdgeAdj.Lock()
	if rel < 0 || rel >= len(g.relations) {
		g.muEdgeAdj.Unlock()
		return ErrRelationNotFound
	}
	changed := g.current != rel
	g.current = rel
	g.muEdgeAdj.Unlock()

	if changed {
		g.commit(Change{Kind: RelationSelected, Relation: rel})
	}

	return nil
}

// CurrentRelation returns the selected relation index.
func (g *Graph) CurrentRelation() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.current
}

// RelationCount returns the number of relations (always >= 1).
func (g *Graph) RelationCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.relations)
}

// Relations returns the relation names in index order.
func (g *Graph) Relations() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	names := make([]string, len(g.relations))
	for i, r := range g.relations {
		names[i] = r.name
	}

	return names
}

// RelationByName returns the index of the first relation called name, or -1.
func (g *Graph) RelationByName(name string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for i, r := range g.relations {
		if r.name == name {
			return i
		}
	}

	return -1
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: under muVert, count vertices and read the generation.
//   - Stage 2: under muEdgeAdj, count arcs per relation.
//
// Complexity:
//   - Time O(V + E·R).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.order), Generation: g.generation}
	for _, v := range g.vertices {
		if v.Enabled {
			stats.EnabledVertexCount++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.RelationCount = len(g.relations)
	stats.CurrentRelation = g.current
	stats.ArcCount = make([]int, len(g.relations))
	for i, r := range g.relations {
		for _, row := range r.out {
			stats.ArcCount[i] += len(row)
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// Clone returns a deep copy of vertices, relations and arcs. Hooks are not
// copied and the clone starts at generation 0.
// Complexity: O(V + E·R).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[int]*Vertex, len(g.vertices)),
		order:      append([]int(nil), g.order...),
		index:      make(map[int]int, len(g.index)),
		current:    g.current,
	}
	for id, v := range g.vertices {
		cp := *v
		cp.Metadata = make(map[string]string, len(v.Metadata))
		for k, val := range v.Metadata {
			cp.Metadata[k] = val
		}
		c.vertices[id] = &cp
	}
	for id, idx := range g.index {
		c.index[id] = idx
	}
	for _, r := range g.relations {
		nr := newRelation(r.name)
		for from, row := range r.out {
			for to, a := range row {
				cp := *a
				nr.put(from, to, &cp)
			}
		}
		c.relations = append(c.relations, nr)
	}

	return c
}
