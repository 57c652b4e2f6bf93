// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/cluster"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/layout"
	"github.com/katalvlaran/socnet/matrix"
)

var (
	errUnknownGenerator = errors.New("unknown generator")
	errUnknownRelation  = errors.New("unknown relation")
	errUnknownMetric    = errors.New("unknown metric")
	errUnknownVariables = errors.New("unknown variables selector")
	errEmptyProfile     = errors.New("profile defines no vertices")
)

// =============================================================================
// Profile
// =============================================================================

// Profile describes a network and the analysis settings applied to it. It is
// read from a TOML file; flags override individual fields.
type Profile struct {
	Graph    GraphSection    `toml:"graph"`
	Ties     []TieSection    `toml:"tie"`
	Analysis AnalysisSection `toml:"analysis"`
	Layout   LayoutSection   `toml:"layout"`
	Cluster  ClusterSection  `toml:"cluster"`
}

// GraphSection selects a generated base network.
type GraphSection struct {
	Generator   string  `toml:"generator"` // path, cycle, star, wheel, complete, bipartite, grid, random
	Vertices    int     `toml:"vertices"`
	Rows        int     `toml:"rows"`
	Cols        int     `toml:"cols"`
	Parts       []int   `toml:"parts"`
	Probability float64 `toml:"probability"`
	Seed        int64   `toml:"seed"`
	Directed    bool    `toml:"directed"`
	IDOffset    int     `toml:"id_offset"`
	MaxWeight   int     `toml:"max_weight"` // > 0 draws integer tie strengths in [1, max_weight]
}

// TieSection is one explicit tie, added after the generator ran.
type TieSection struct {
	From     int     `toml:"from"`
	To       int     `toml:"to"`
	Weight   float64 `toml:"weight"`
	Directed bool    `toml:"directed"`
	Relation string  `toml:"relation"` // created on first use; empty is the default relation
}

// AnalysisSection selects the projection every command runs on.
type AnalysisSection struct {
	Relation      string  `toml:"relation"`
	Weighted      bool    `toml:"weighted"`
	InvertWeights bool    `toml:"invert_weights"`
	DropIsolates  bool    `toml:"drop_isolates"`
	Symmetrize    bool    `toml:"symmetrize"`
	Damping       float64 `toml:"damping"`
	Precision     int     `toml:"precision"`
}

// LayoutSection configures the layout command.
type LayoutSection struct {
	Algorithm  string  `toml:"algorithm"`
	Iterations int     `toml:"iterations"`
	Seed       int64   `toml:"seed"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Margin     float64 `toml:"margin"`
}

// ClusterSection configures the cluster command.
type ClusterSection struct {
	Linkage   string `toml:"linkage"`
	Metric    string `toml:"metric"`
	Variables string `toml:"variables"`
	Distances bool   `toml:"distances"`
	Cut       int    `toml:"cut"`
}

// defaultProfile is a five-vertex star analysed unweighted.
func defaultProfile() Profile {
	return Profile{
		Graph: GraphSection{Generator: "star", Vertices: 5, Seed: 1},
		Analysis: AnalysisSection{
			Damping:   centrality.DefaultDamping,
			Precision: centrality.DefaultPrecision,
		},
		Layout: LayoutSection{
			Algorithm: layout.KK.String(),
			Width:     layout.DefaultCanvas.Width,
			Height:    layout.DefaultCanvas.Height,
			Margin:    layout.DefaultCanvas.Margin,
		},
		Cluster: ClusterSection{
			Linkage:   cluster.AverageLinkage.String(),
			Metric:    matrix.Euclidean.String(),
			Variables: matrix.Rows.String(),
		},
	}
}

// loadProfile overlays the TOML file at path onto the defaults. An empty path
// returns the defaults. Unknown keys are logged, not rejected.
func loadProfile(path string, logger *log.Logger) (Profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return p, fmt.Errorf("read profile %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("ignoring unknown profile key", "key", key.String())
	}
	logger.Debug("profile loaded", "path", path, "generator", p.Graph.Generator, "ties", len(p.Ties))

	return p, nil
}

// =============================================================================
// Graph Construction
// =============================================================================

// constructor maps the generator name onto a builder constructor. The empty
// generator builds nothing, leaving the network to the explicit ties.
func (s GraphSection) constructor() (builder.Constructor, error) {
	switch s.Generator {
	case "":
		return nil, nil
	case "path":
		return builder.Path(s.Vertices), nil
	case "cycle":
		return builder.Cycle(s.Vertices), nil
	case "star":
		return builder.Star(s.Vertices), nil
	case "wheel":
		return builder.Wheel(s.Vertices), nil
	case "complete":
		return builder.Complete(s.Vertices), nil
	case "bipartite":
		if len(s.Parts) != 2 {
			return nil, fmt.Errorf("bipartite needs parts = [a, b], got %v", s.Parts)
		}
		return builder.CompleteBipartite(s.Parts[0], s.Parts[1]), nil
	case "grid":
		return builder.Grid(s.Rows, s.Cols), nil
	case "random":
		return builder.RandomSparse(s.Vertices, s.Probability), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownGenerator, s.Generator)
	}
}

// builderOptions translates the section into builder options. Invalid values
// are rejected here because the option constructors panic on them.
func (s GraphSection) builderOptions() ([]builder.BuilderOption, error) {
	if s.IDOffset < 0 {
		return nil, fmt.Errorf("id_offset must be >= 0, got %d", s.IDOffset)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(s.Seed),
		builder.WithIDOffset(s.IDOffset),
	}
	if s.Directed {
		opts = append(opts, builder.WithDirected())
	}
	if s.MaxWeight > 0 {
		opts = append(opts, builder.WithWeightFn(builder.IntegerWeightFn(s.MaxWeight)))
	}

	return opts, nil
}

// build materializes the profile's network.
func (p Profile) build() (*core.Graph, error) {
	cons, err := p.Graph.constructor()
	if err != nil {
		return nil, err
	}
	bopts, err := p.Graph.builderOptions()
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	if cons != nil {
		if err := builder.Apply(g, bopts, cons); err != nil {
			return nil, err
		}
	}
	for i, t := range p.Ties {
		if err := addTie(g, t); err != nil {
			return nil, fmt.Errorf("tie %d (%d→%d): %w", i, t.From, t.To, err)
		}
	}
	if g.VertexCount() == 0 {
		return nil, errEmptyProfile
	}

	return g, nil
}

func addTie(g *core.Graph, t TieSection) error {
	w := t.Weight
	if w == 0 {
		w = builder.DefaultEdgeWeight
	}
	typ := core.Undirected
	if t.Directed {
		typ = core.Directed
	}
	opts := []core.EdgeOption{core.WithEdgeType(typ)}
	if t.Relation != "" {
		rel := g.RelationByName(t.Relation)
		if rel < 0 {
			rel = g.AddRelation(t.Relation)
		}
		opts = append(opts, core.WithRelation(rel))
	}

	return g.AddEdge(t.From, t.To, w, opts...)
}

// =============================================================================
// Analysis Settings
// =============================================================================

// view resolves the analysis section against g.
func (a AnalysisSection) view(g *core.Graph) (analysis.View, error) {
	v := analysis.View{
		Relation:      analysis.CurrentRelation,
		Weighted:      a.Weighted,
		InvertWeights: a.InvertWeights,
		DropIsolates:  a.DropIsolates,
		Symmetrize:    a.Symmetrize,
	}
	if a.Relation != "" {
		if v.Relation = g.RelationByName(a.Relation); v.Relation < 0 {
			return v, fmt.Errorf("%w: %q", errUnknownRelation, a.Relation)
		}
	}

	return v, nil
}

func parseMetric(name string) (matrix.Metric, error) {
	for _, m := range []matrix.Metric{matrix.Euclidean, matrix.Manhattan, matrix.Hamming, matrix.Jaccard, matrix.Chebyshev} {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errUnknownMetric, name)
}

func parseVariables(name string) (matrix.Variables, error) {
	for _, v := range []matrix.Variables{matrix.Rows, matrix.Columns, matrix.Both} {
		if v.String() == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errUnknownVariables, name)
}
