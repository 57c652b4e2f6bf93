// SPDX-License-Identifier: MIT

// Package layout provides canvas geometry, options and result types for
// force-directed placement over a core.Snapshot.
package layout

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for layout.
var (
	// ErrNilSnapshot is returned if a nil snapshot pointer is passed.
	ErrNilSnapshot = errors.New("layout: snapshot is nil")

	// ErrBadCanvas is returned for a canvas with no drawable area.
	ErrBadCanvas = errors.New("layout: canvas has no drawable area")

	// ErrBadIterations is returned for a negative iteration budget.
	ErrBadIterations = errors.New("layout: iterations must be >= 0")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("layout: unknown algorithm")
)

// Positions maps vertex id to canvas coordinates.
type Positions map[int]r2.Vec

// Canvas is the drawing area. Positions stay inside the rectangle shrunk by
// Margin on every side.
type Canvas struct {
	Width, Height float64
	Margin        float64
}

// DefaultCanvas is used when no canvas option is given.
var DefaultCanvas = Canvas{Width: 800, Height: 600, Margin: 20}

// Validate checks the canvas leaves a positive drawable area.
func (c Canvas) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) || c.Margin < 0 || 2*c.Margin >= math.Min(c.Width, c.Height) {
		return fmt.Errorf("%w: %gx%g margin %g", ErrBadCanvas, c.Width, c.Height, c.Margin)
	}

	return nil
}

// Bounds returns the drawable rectangle.
func (c Canvas) Bounds() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: c.Margin, Y: c.Margin},
		Max: r2.Vec{X: c.Width - c.Margin, Y: c.Height - c.Margin},
	}
}

// Center returns the middle of the canvas.
func (c Canvas) Center() r2.Vec {
	return r2.Vec{X: c.Width / 2, Y: c.Height / 2}
}

// Clamp projects p onto the drawable rectangle. NaN coordinates collapse to
// the centre.
func (c Canvas) Clamp(p r2.Vec) r2.Vec {
	b := c.Bounds()
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return c.Center()
	}
	p.X = math.Min(math.Max(p.X, b.Min.X), b.Max.X)
	p.Y = math.Min(math.Max(p.Y, b.Min.Y), b.Max.Y)

	return p
}

// Algorithm selects a force-directed method.
type Algorithm int

const (
	// Spring is Eades' spring embedder.
	Spring Algorithm = iota
	// FR is Fruchterman–Reingold.
	FR
	// KK is Kamada–Kawai energy minimization.
	KK
)

// String returns the short algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Spring:
		return "spring"
	case FR:
		return "fr"
	case KK:
		return "kk"
	default:
		return "unknown"
	}
}

// ParseAlgorithm resolves "spring", "fr" or "kk".
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{Spring, FR, KK} {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Result is the outcome of a layout run.
type Result struct {
	Positions Positions

	// Iterations is the number of outer iterations performed.
	Iterations int

	// Converged is true when the stopping threshold was met before the
	// iteration budget ran out.
	Converged bool
}

// Option configures a layout run.
type Option func(*Options)

// Options holds layout parameters.
type Options struct {
	// Iterations caps outer iterations; 0 selects the algorithm default.
	Iterations int

	// Seed drives random placement and KK relocation; 0 selects a fixed default.
	Seed int64

	Canvas Canvas

	// Observer, when set, receives a copy of the positions after every
	// iteration. It is advisory and cannot stop the run.
	Observer func(iter int, pos Positions)

	Logger *log.Logger

	err error
}

// Per-algorithm iteration defaults.
const (
	DefaultSpringIterations = 100
	DefaultFRIterations     = 300
	DefaultKKIterations     = 1000
)

// DefaultOptions returns DefaultCanvas, seed 0 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Canvas: DefaultCanvas,
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithIterations sets the outer iteration budget.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadIterations
			return
		}
		o.Iterations = n
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithCanvas sets the drawing area; an invalid canvas is reported by the run.
func WithCanvas(c Canvas) Option {
	return func(o *Options) {
		if err := c.Validate(); err != nil {
			o.err = err
			return
		}
		o.Canvas = c
	}
}

// WithObserver installs a per-iteration progress callback.
func WithObserver(fn func(iter int, pos Positions)) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
