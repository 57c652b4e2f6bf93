// SPDX-License-Identifier: MIT

// Package core defines the multiplex social-network store: integer-identified
// vertices, per-relation directed arcs with real weights, enabled/disabled flags
// and a generation counter that signals structural change.
//
// This file declares Vertex, Edge, EdgeType, Graph, the option types, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrVertexExists      - AddVertex called with an id already in use.
//	ErrNegativeVertexID  - vertex ids must be non-negative.
//	ErrEdgeNotFound      - requested arc does not exist in the relation.
//	ErrRelationNotFound  - relation index outside [0, RelationCount()).
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrBadWeight         - NaN or ±Inf weight.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph mutations. Queries never return errors; they
// return sentinels (zero weight, -1 index) for absent elements.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called for an id already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrNegativeVertexID indicates a negative vertex id was supplied.
	ErrNegativeVertexID = errors.New("core: vertex id must be non-negative")

	// ErrEdgeNotFound indicates an operation referenced a non-existent arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrRelationNotFound indicates a relation index outside the known range.
	ErrRelationNotFound = errors.New("core: relation not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite weight.
	ErrBadWeight = errors.New("core: weight must be finite")
)

// EdgeType tags how an arc pair was created.
type EdgeType int

const (
	// Directed is a single arc from→to.
	Directed EdgeType = iota

	// Undirected is materialized as a reciprocal pair of arcs with equal weight.
	Undirected

	// Reciprocated marks two directed arcs that point at each other.
	Reciprocated
)

// String returns the lower-case name of the edge type.
func (t EdgeType) String() string {
	switch t {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	case Reciprocated:
		return "reciprocated"
	default:
		return "unknown"
	}
}

// Vertex is an actor of the network.
//
// ID is the user-visible integer "name"; the dense index used by algorithms is
// assigned by the Graph and may change after removals (see IndexOf).
type Vertex struct {
	ID       int
	Label    string
	X, Y     float64
	Enabled  bool
	Metadata map[string]string
}

// Edge is a materialized view of one arc of a relation.
type Edge struct {
	From     int
	To       int
	Relation int
	Weight   float64
	Type     EdgeType
	Enabled  bool
	Label    string
	Color    string
}

// arc is the stored payload of a single directed arc.
type arc struct {
	weight  float64
	typ     EdgeType
	enabled bool
	label   string
	color   string
}

// relation is one edge layer of the multiplex graph.
// out[from][to] and in[to][from] point at the same *arc.
type relation struct {
	name string
	out  map[int]map[int]*arc
	in   map[int]map[int]*arc
}

func newRelation(name string) *relation {
	return &relation{
		name: name,
		out:  make(map[int]map[int]*arc),
		in:   make(map[int]map[int]*arc),
	}
}

// ChangeKind classifies a structural change.
type ChangeKind int

const (
	VertexAdded ChangeKind = iota
	VertexRemoved
	VertexToggled
	EdgeAdded
	EdgeRemoved
	EdgeToggled
	RelationAdded
	RelationSelected
	PositionMoved
)

// Change is delivered to OnChange hooks after a mutation committed.
type Change struct {
	Kind       ChangeKind
	Generation uint64
	Vertex     int
	From, To   int
	Relation   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithRelationName names the initial relation (default "default").
func WithRelationName(name string) GraphOption {
	return func(g *Graph) { g.relations[0].name = name }
}

// EdgeOption configures a single AddEdge/RemoveEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	relation    int
	hasRelation bool
	typ         EdgeType
	enabled     bool
	label       string
	color       string
}

// WithRelation targets an explicit relation instead of the current one.
func WithRelation(rel int) EdgeOption {
	return func(c *edgeConfig) {
		c.relation = rel
		c.hasRelation = true
	}
}

// WithEdgeType sets the arc type (Directed by default).
func WithEdgeType(t EdgeType) EdgeOption {
	return func(c *edgeConfig) { c.typ = t }
}

// WithEdgeLabel attaches a display label to the arc(s).
func WithEdgeLabel(label string) EdgeOption {
	return func(c *edgeConfig) { c.label = label }
}

// WithEdgeColor attaches a display color to the arc(s).
func WithEdgeColor(color string) EdgeOption {
	return func(c *edgeConfig) { c.color = color }
}

// WithEdgeDisabled creates the arc(s) disabled.
func WithEdgeDisabled() EdgeOption {
	return func(c *edgeConfig) { c.enabled = false }
}

// VertexOption configures AddVertex.
type VertexOption func(*Vertex)

// WithLabel sets the vertex label.
func WithLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// WithPosition sets the initial vertex coordinates.
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) { v.X, v.Y = x, y }
}

// WithVertexDisabled creates the vertex disabled.
func WithVertexDisabled() VertexOption {
	return func(v *Vertex) { v.Enabled = false }
}

// WithMetadata copies key/value display metadata into the vertex.
func WithMetadata(md map[string]string) VertexOption {
	return func(v *Vertex) {
		for k, val := range md {
			v.Metadata[k] = val
		}
	}
}

// Graph is the multiplex topology store.
//
// muVert guards vertices, order and index; muEdgeAdj guards relations and the
// current relation. Lock order is always muVert -> muEdgeAdj.
// generation is bumped on every committed mutation; derived caches compare
// it to decide whether they are stale.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	allowLoops bool

	vertices map[int]*Vertex
	order    []int       // index -> id, insertion order
	index    map[int]int // id -> index, contiguous over order

	relations []*relation
	current   int

	generation uint64
	hooks      []func(Change)
}

// NewGraph creates an empty Graph with a single relation selected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]*Vertex),
		index:     make(map[int]int),
		relations: []*relation{newRelation("default")},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount        int
	EnabledVertexCount int
	RelationCount      int
	CurrentRelation    int
	ArcCount           []int // per relation, enabled and disabled
	Generation         uint64
}
