// Package topology implements the per-relationship-type adjacency
// structure: a CSR-style forward index from every mapped node id to its
// ordered list of target ids, and an optional symmetric inverse index from
// target to source. Offsets and the flattened target list are stored in
// hugearray.LongArray, so a single type's topology is itself addressable
// past the single-slice ceiling.
//
// A Topology is built once (NewFromAdjacency) and is immutable afterward;
// like hugearray, reads are safe to share across goroutines and there is no
// mutation API — a graphstore that needs to change a type's topology
// rebuilds it and swaps the pointer.
package topology
