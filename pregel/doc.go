// Package pregel implements the bulk-synchronous-parallel vertex-centric
// runtime that drives algorithms over a graphview.View: a schema of named
// per-vertex value columns, init/compute/master-compute callbacks, a
// double-buffered messenger, and the superstep loop that ties them
// together with vote-to-halt convergence, an external cancellation flag,
// and panic containment at each worker's task boundary.
//
// Nothing in this package implements a concrete graph algorithm — it is
// the harness an algorithm plugs a Computation into, mirroring the split
// between the graph view (read-only traversal) and the thing that walks it
// (out of scope for the core library).
package pregel
