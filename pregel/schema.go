package pregel

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/hugearray"
	"github.com/katalvlaran/graphds/properties"
)

// Schema names the per-vertex value columns a Computation reads and
// writes, one entry per property key. Only Long and Double are supported:
// the two value types every Pregel algorithm in the reference corpus
// actually accumulates into (sums, counts, ranks, distances).
type Schema map[string]properties.ValueType

// NodeValues is the mutable per-vertex storage a running computation reads
// and writes through InitContext/ComputeContext/MasterContext. Unlike
// properties.Column, which is a read-only view over an already-built
// array, NodeValues exposes Set as well as Get: Pregel supersteps write
// these columns as they run.
type NodeValues struct {
	nodeCount int64
	types     Schema
	longs     map[string]*hugearray.LongArray
	doubles   map[string]*hugearray.DoubleArray
}

// NewNodeValues allocates one column per schema entry, each initialized to
// the zero value, for a graph of nodeCount vertices.
func NewNodeValues(nodeCount int64, schema Schema) *NodeValues {
	nv := &NodeValues{
		nodeCount: nodeCount,
		types:     schema,
		longs:     make(map[string]*hugearray.LongArray),
		doubles:   make(map[string]*hugearray.DoubleArray),
	}
	for key, vt := range schema {
		switch vt {
		case properties.Long:
			nv.longs[key] = hugearray.NewLong(nodeCount)
		case properties.Double:
			nv.doubles[key] = hugearray.NewDouble(nodeCount)
		}
	}
	return nv
}

// Keys returns the schema's property keys, sorted.
func (nv *NodeValues) Keys() []string {
	out := make([]string, 0, len(nv.types))
	for k := range nv.types {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (nv *NodeValues) checkType(key string, want properties.ValueType) error {
	got, ok := nv.types[key]
	if !ok {
		return fmt.Errorf("%w: node value key %q", gdserrors.ErrPropertyNotFound, key)
	}
	if got != want {
		return fmt.Errorf("%w: node value %q is %s, not %s", gdserrors.ErrTypeMismatch, key, got, want)
	}
	return nil
}

// GetLong returns key's value at node. Panics if key isn't a Long key.
func (nv *NodeValues) GetLong(key string, node int64) int64 {
	if err := nv.checkType(key, properties.Long); err != nil {
		panic(err)
	}
	return nv.longs[key].Get(node)
}

// SetLong writes key's value at node. Panics if key isn't a Long key.
func (nv *NodeValues) SetLong(key string, node int64, v int64) {
	if err := nv.checkType(key, properties.Long); err != nil {
		panic(err)
	}
	nv.longs[key].Set(node, v)
}

// GetDouble returns key's value at node. Panics if key isn't a Double key.
func (nv *NodeValues) GetDouble(key string, node int64) float64 {
	if err := nv.checkType(key, properties.Double); err != nil {
		panic(err)
	}
	return nv.doubles[key].Get(node)
}

// SetDouble writes key's value at node. Panics if key isn't a Double key.
func (nv *NodeValues) SetDouble(key string, node int64, v float64) {
	if err := nv.checkType(key, properties.Double); err != nil {
		panic(err)
	}
	nv.doubles[key].Set(node, v)
}
