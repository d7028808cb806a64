// Package builder generates deterministic weighted graphs for fixtures,
// benchmarks and the `mstbench generate` command.
//
// A build composes Constructors over a mutable Draft and then freezes the
// Draft into an immutable *core.Graph. Constructors that use the same ID
// scheme overlay each other: Path(n) followed by RandomSparse(n, p) adds random
// chords to a path over the same n vertices.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(id, bopts, cons...): resolve options, run constructors in order, freeze.
//     – Draft: order-preserving node/edge accumulator handed to constructors.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Complete, Grid: fixed shapes.
//     – RandomSparse: Erdős–Rényi-like sampling with probability p.
//     – RandomConnected: a random-weight chain plus random extra edges,
//     connected by construction.
//     – Isolated: extra vertices without edges, to produce disconnected inputs.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order produce identical graphs,
//     including node order and edge order.
//   - Idempotent vertices: adding an existing label again is a no-op.
//   - Constructors return sentinel errors wrapped with their method name;
//     only option constructors (WithX) panic, and only on nil functions.
package builder
