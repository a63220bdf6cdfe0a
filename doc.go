// Package graphds is an in-memory graph data science engine: a paged
// columnar store, a CSR-style relationship topology, and a vertex-centric
// Pregel runtime for bulk-synchronous graph computation.
//
// 🚀 What is graphds?
//
//	A thread-safe library that brings together:
//
//	  - Paged huge arrays: dense, cursor-iterable arrays addressable past 2^31 elements.
//	  - A sharded ID map: concurrent original-id <-> compact-id translation.
//	  - CSR relationship topology with optional inverse adjacency.
//	  - Typed columnar node/relationship/graph properties.
//	  - A graph store that owns all of the above and vends read-only views.
//	  - A Pregel BSP runtime: supersteps run on a bounded worker pool over
//	    fixed leaf chunks (no work stealing), vote-to-halt convergence,
//	    double-buffered messaging.
//
// Under the hood, everything is organized under focused subpackages:
//
//	gdserrors/  — shared error taxonomy used by every package below
//	hugearray/  — paged fixed-size arrays with cursors and parallel builders
//	idmap/      — sharded bidirectional original-id <-> mapped-id map
//	topology/   — per-relationship-type CSR adjacency (forward + inverse)
//	properties/ — typed columnar node / relationship / graph properties
//	graphstore/ — owns id map + topologies + properties, mutates schema
//	graphview/  — immutable filtered/oriented projection over a store
//	pregel/     — vertex-centric BSP runtime, contexts, messenger
//
// graphds does not implement specific algorithms (PageRank, BFS, Dijkstra,
// ...), a catalog/CLI facade, or a wire protocol. Those are external
// consumers of the interfaces exposed here; see ExampleRuntime_Run in
// package pregel for a minimal Pregel computation exercising the runtime.
//
//	go get github.com/katalvlaran/graphds
package graphds
