// SPDX-License-Identifier: MIT

// Package cli implements the socnet command-line interface.
//
// Every command builds a network from a TOML profile (or the built-in
// five-vertex star), wraps it in an analysis.Network and prints the result
// as a table. Global flags override the profile's graph and analysis
// sections.
//
// # Commands
//
//   - info: size, diameter, average distance and connectivity
//   - centrality: one or more centrality/prestige indices
//   - matrix: adjacency, Laplacian, distances and the other matrices
//   - cluster: hierarchical clustering and flat cuts
//   - triads: triad census and clustering coefficients
//   - layout: force-directed positions
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log; --verbose (-v)
// switches to debug level, which includes cache hits and misses.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/core"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is reported by --version.
var version = "dev"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	flags globalFlags
}

// globalFlags are the persistent overrides shared by every command.
type globalFlags struct {
	profile      string
	generator    string
	vertices     int
	seed         int64
	directed     bool
	relation     string
	weighted     bool
	invert       bool
	dropIsolates bool
	symmetrize   bool
}

// New creates a CLI logging to w at level and printing results to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "socnet",
		Short: "socnet computes structural metrics of social networks",
		Long: `socnet builds a social network from a TOML profile and reports centrality
and prestige indices, matrices, hierarchical clusterings, triad censuses and
force-directed layouts.`,
		Version:      version,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.profile, "profile", "p", "", "TOML profile describing the network and analysis")
	pf.StringVarP(&c.flags.generator, "generator", "g", "", "generator: path, cycle, star, wheel, complete, grid, random")
	pf.IntVarP(&c.flags.vertices, "vertices", "n", 0, "number of generated vertices")
	pf.Int64Var(&c.flags.seed, "seed", 0, "generator seed")
	pf.BoolVar(&c.flags.directed, "directed", false, "generate directed ties")
	pf.StringVar(&c.flags.relation, "relation", "", "relation (edge layer) to analyse")
	pf.BoolVar(&c.flags.weighted, "weighted", false, "use tie weights")
	pf.BoolVar(&c.flags.invert, "invert-weights", false, "read tie weights as 1/w")
	pf.BoolVar(&c.flags.dropIsolates, "drop-isolates", false, "ignore vertices without ties")
	pf.BoolVar(&c.flags.symmetrize, "symmetrize", false, "treat every tie as reciprocated")

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.centralityCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.clusterCommand())
	root.AddCommand(c.triadsCommand())
	root.AddCommand(c.layoutCommand())

	return root
}

// =============================================================================
// Session
// =============================================================================

// session is the network one command works on.
type session struct {
	profile Profile
	graph   *core.Graph
	net     *analysis.Network
	view    analysis.View
}

// open loads the profile, applies changed global flags, and builds the
// network.
func (c *CLI) open(cmd *cobra.Command) (*session, error) {
	p, err := loadProfile(c.flags.profile, c.Logger)
	if err != nil {
		return nil, err
	}
	c.override(cmd, &p)

	g, err := p.build()
	if err != nil {
		return nil, err
	}
	st := g.Stats()
	c.Logger.Debug("network built", "vertices", st.VertexCount, "relations", st.RelationCount)

	view, err := p.Analysis.view(g)
	if err != nil {
		return nil, err
	}
	net, err := analysis.New(g,
		analysis.WithContext(cmd.Context()),
		analysis.WithLogger(c.Logger),
		analysis.WithDamping(p.Analysis.Damping),
		analysis.WithPrecision(p.Analysis.Precision),
	)
	if err != nil {
		return nil, err
	}

	return &session{profile: p, graph: g, net: net, view: view}, nil
}

// override copies flags the user actually set onto the profile.
func (c *CLI) override(cmd *cobra.Command, p *Profile) {
	f := cmd.Flags()
	if f.Changed("generator") {
		p.Graph.Generator = c.flags.generator
	}
	if f.Changed("vertices") {
		p.Graph.Vertices = c.flags.vertices
	}
	if f.Changed("seed") {
		p.Graph.Seed = c.flags.seed
	}
	if f.Changed("directed") {
		p.Graph.Directed = c.flags.directed
	}
	if f.Changed("relation") {
		p.Analysis.Relation = c.flags.relation
	}
	if f.Changed("weighted") {
		p.Analysis.Weighted = c.flags.weighted
	}
	if f.Changed("invert-weights") {
		p.Analysis.InvertWeights = c.flags.invert
	}
	if f.Changed("drop-isolates") {
		p.Analysis.DropIsolates = c.flags.dropIsolates
	}
	if f.Changed("symmetrize") {
		p.Analysis.Symmetrize = c.flags.symmetrize
	}
}
