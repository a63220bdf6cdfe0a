// Package graphview provides read-only, immutable projections over a
// graphstore.Store: a subset of relationship types, an optional weight
// property per type, and an orientation. A View holds direct references to
// the store's id map and per-type topologies rather than a pointer back to
// the store, so it keeps working unchanged even after the store that
// produced it has been mutated further.
package graphview
