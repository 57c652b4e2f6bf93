// Package layout computes 2D coordinates for a core.Snapshot with
// force-directed placement.
//
// Three algorithms share one option set (WithIterations, WithSeed,
// WithCanvas, WithObserver, WithLogger):
//
//   - SpringEmbedder: Eades. Logarithmic springs along ties, inverse-square
//     repulsion cut off at twice the natural length, damped moves.
//   - FruchtermanReingold: attraction d²/k, repulsion k²/d, displacement
//     capped by a cooling temperature that freezes at iteration 200.
//   - KamadaKawai: per-vertex Newton steps on the spring energy with ideal
//     lengths proportional to hop distance.
//
// Ties are read as undirected; weights are ignored. Layouts never fail on
// degenerate input: every position stays inside the canvas margin, and the
// run ends on convergence or when the iteration budget is spent. Random
// placement is seeded (seed 0 selects a fixed default), so runs are
// reproducible.
//
// Random and Circular give initial placements; a vertex missing from the
// initial map is placed at random.
//
// Vectors are gonum spatial/r2 values.
package layout
