// Package properties implements the typed columnar storage for node,
// relationship, and graph-level properties described in §3–§4.D: a closed
// sum of value types (Long, Double, LongArray, DoubleArray, FloatArray),
// strongly-typed column accessors with widening reads where no information
// is lost (Long read as Double), node properties optionally scoped to a
// subset of labels, relationship properties keyed by (type, key) and
// carrying a default value / PropertyState / Aggregation, and graph-level
// single-value properties.
//
// Columns are backed by hugearray so a node-property column for a
// billion-node graph pages exactly like the id map's reverse index. The
// backing array kind is chosen once, when a Column is constructed
// (NewLongColumn, NewDoubleColumn, ...); each Get call then checks the
// column's value-type tag and reads that one backing array.
package properties
