// Package graphstore owns everything a graph ingestion pipeline builds and
// an algorithm later reads through: the id map, one topology per
// relationship type, the node/relationship/graph property stores, a label
// membership index, and a capabilities descriptor plus creation/
// modification timestamps.
//
// A Store is single-writer: every mutator takes the same lock, so only one
// mutation runs at a time, while any number of readers — and any number of
// graphview.View projections, which hold their own references into the
// store's immutable pieces rather than a pointer back to the store — can
// run concurrently with a non-mutating store. Mutating the store after a
// view was taken never invalidates that view; it only changes what the
// store's own future reads will see.
package graphstore
