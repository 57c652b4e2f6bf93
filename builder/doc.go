// Package builder generates deterministic network fixtures on a core.Graph.
//
// A Constructor is a closure that adds one topology to a graph; BuildGraph
// creates a graph and applies constructors in order, Apply does the same on
// an existing graph (for example to populate a second relation).
//
// Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid
// and the Erdős–Rényi RandomSparse.
//
// Options:
//
//   - WithSeed / WithRand: the RNG for RandomSparse and random weights.
//   - WithWeightFn: tie weights (DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn).
//   - WithIDOffset: vertex id = offset + index, to place several shapes in
//     one graph.
//   - WithDirected: single forward arcs instead of undirected ties.
//   - WithRelation: target relation.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Constructors validate before mutating and return sentinel errors;
//     only option constructors panic, on meaningless input.
package builder
