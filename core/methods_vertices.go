// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - VertexIDs() returns ids in index order (insertion order, compacted on removal).
//
// Concurrency:
//   - Vertex catalog protected by muVert; arc cleanup on removal under muEdgeAdj.
package core

import "math"

// AddVertex inserts a new vertex with the given non-negative id.
//
// Implementation:
//   - Stage 1: Validate id >= 0.
//   - Stage 2: Under muVert, reject duplicates, append to order and index.
//   - Stage 3: Bump generation and notify hooks.
//
// Errors:
//   - ErrNegativeVertexID, ErrVertexExists.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id int, opts ...VertexOption) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.muVert.Lock()
	if _, exists := g.vertices[id]; exists {
		g.muVert.Unlock()
		return ErrVertexExists
	}
	v := &Vertex{ID: id, Enabled: true, Metadata: make(map[string]string)}
	for _, opt := range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.muVert.Unlock()

	g.commit(Change{Kind: VertexAdded, Vertex: id})

	return nil
}

// ensureVertex creates id if missing without notifying hooks.
// Caller must hold muVert for writing.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Enabled: true, Metadata: make(map[string]string)}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// NextVertexID returns max(id)+1, or 0 for an empty graph.
func (g *Graph) NextVertexID() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	next := 0
	for id := range g.vertices {
		if id >= next {
			next = id + 1
		}
	}

	return next
}

// RemoveVertex deletes the vertex, every arc incident to it in every relation,
// and compacts the index so that it stays contiguous.
//
// Complexity:
//   - Time O(V + deg(v)·R).
func (g *Graph) RemoveVertex(id int) error {
	g.muVert.Lock()
	idx, ok := g.index[id]
	if !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	delete(g.vertices, id)
	delete(g.index, id)
	g.order = append(g.order[:idx], g.order[idx+1:]...)
	// Reindex the tail; ids keep their relative order.
	for i := idx; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	g.muEdgeAdj.Lock()
	for _, r := range g.relations {
		for to := range r.out[id] {
			delete(r.in[to], id)
		}
		for from := range r.in[id] {
			delete(r.out[from], id)
		}
		delete(r.out, id)
		delete(r.in, id)
	}
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()

	g.commit(Change{Kind: VertexRemoved, Vertex: id})

	return nil
}

// SetVertexEnabled toggles whether algorithms see the vertex.
func (g *Graph) SetVertexEnabled(id int, enabled bool) error {
	g.muVert.Lock()
	v, ok := g.vertices[id]
	if !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	changed := v.Enabled != enabled
	v.Enabled = enabled
	g.muVert.Unlock()

	if changed {
		g.commit(Change{Kind: VertexToggled, Vertex: id})
	}

	return nil
}

// SetPosition stores display coordinates. Positions are not topology, so the
// generation is not bumped; hooks still receive a PositionMoved change.
func (g *Graph) SetPosition(id int, x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) {
		return ErrBadWeight
	}
	g.muVert.Lock()
	v, ok := g.vertices[id]
	if !ok {
		g.muVert.Unlock()
		return ErrVertexNotFound
	}
	v.X, v.Y = x, y
	hooks := g.hooks
	gen := g.generation
	g.muVert.Unlock()

	for _, h := range hooks {
		h(Change{Kind: PositionMoved, Vertex: id, Generation: gen})
	}

	return nil
}

// HasVertex reports whether the vertex id exists (enabled or not).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// IndexOf returns the dense index of id, or -1 if absent.
func (g *Graph) IndexOf(id int) int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if idx, ok := g.index[id]; ok {
		return idx
	}

	return -1
}

// VertexIDs returns all vertex ids in index order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// Vertex returns a copy of the vertex record; ok is false if absent.
func (g *Graph) Vertex(id int) (Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	cp := *v
	cp.Metadata = make(map[string]string, len(v.Metadata))
	for k, val := range v.Metadata {
		cp.Metadata[k] = val
	}

	return cp, true
}

// VertexCount returns the number of vertices, enabled or not.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// OutDegree counts enabled arcs leaving id in relation rel (0 if absent).
func (g *Graph) OutDegree(id, rel int) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return 0
	}
	n := 0
	for _, a := range g.relations[rel].out[id] {
		if a.enabled {
			n++
		}
	}

	return n
}

// InDegree counts enabled arcs entering id in relation rel (0 if absent).
func (g *Graph) InDegree(id, rel int) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if rel < 0 || rel >= len(g.relations) {
		return 0
	}
	n := 0
	for _, a := range g.relations[rel].in[id] {
		if a.enabled {
			n++
		}
	}

	return n
}
