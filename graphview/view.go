package graphview

import (
	"fmt"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/graphstore"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/properties"
	"github.com/katalvlaran/graphds/topology"
)

// Orientation selects how a View interprets a topology's forward/inverse
// indices when answering traversal queries.
type Orientation int

const (
	// Forward traverses each selected type's own forward adjacency.
	Forward Orientation = iota
	// Reverse traverses each selected type's inverse adjacency as if it
	// were forward; every selected type must be inverse-indexed.
	Reverse
	// Undirected merges forward and inverse adjacency in both directions;
	// every selected type must be inverse-indexed.
	Undirected
)

func (o Orientation) String() string {
	switch o {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	case Undirected:
		return "Undirected"
	default:
		return "Unknown"
	}
}

// weightedType bundles the immutable pieces a View needs for one selected
// relationship type: its topology and, if a weight property was selected,
// that property's column.
type weightedType struct {
	relType string
	topo    *topology.Topology
	col     *properties.Column
}

// View is an immutable, composable projection over a graphstore.Store: a
// subset of relationship types, an orientation, and an optional weight
// property per type. A View holds direct references to the selected
// topologies and property columns rather than a pointer back to the store,
// so further mutation of the store never changes an already-built View.
type View struct {
	ids        *idmap.IDMap
	types      []weightedType
	orientation Orientation

	directed         bool
	inverseIndexed   bool
	relationshipCount int64
	hasParallelEdges bool
}

// New builds a View over store restricted to types, with an optional
// per-type weight-property selector (relType -> property key; a type
// absent from selectors or mapped to "" exposes no weight column). An
// orientation other than Forward requires every selected type's topology
// to be inverse-indexed.
func New(store *graphstore.Store, types []string, selectors map[string]string, orientation Orientation) (*View, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: view requires at least one relationship type", gdserrors.ErrInvalidArgument)
	}

	v := &View{
		ids:         store.IDMap(),
		orientation: orientation,
		directed:    orientation != Undirected,
	}
	v.inverseIndexed = true

	for _, relType := range types {
		topo, ok := store.Topology(relType)
		if !ok {
			return nil, fmt.Errorf("%w: relationship type %q", gdserrors.ErrTypeNotFound, relType)
		}
		if !topo.IsInverseIndexed() {
			v.inverseIndexed = false
			if orientation != Forward {
				return nil, fmt.Errorf("%w: type %q required for %s orientation", gdserrors.ErrNotInverseIndexed, relType, orientation)
			}
		}

		wt := weightedType{relType: relType, topo: topo}
		if key := selectors[relType]; key != "" {
			prop, ok := store.Properties().Relationship.Get(relType, key)
			if !ok {
				return nil, fmt.Errorf("%w: relationship property %s.%s", gdserrors.ErrPropertyNotFound, relType, key)
			}
			wt.col = prop.Column
		}

		v.types = append(v.types, wt)
		v.relationshipCount += topo.RelationshipCount()
		if topo.HasParallelEdges() {
			v.hasParallelEdges = true
		}
	}

	return v, nil
}

// IsDirected reports the view's directedness characteristic.
func (v *View) IsDirected() bool { return v.directed }

// IsInverseIndexed reports whether every selected type carries an inverse
// index.
func (v *View) IsInverseIndexed() bool { return v.inverseIndexed }

// RelationshipCount is the sum of the selected types' relationship counts.
func (v *View) RelationshipCount() int64 { return v.relationshipCount }

// HasParallelEdges reports whether any selected type has parallel edges.
func (v *View) HasParallelEdges() bool { return v.hasParallelEdges }

// Orientation returns the view's orientation.
func (v *View) Orientation() Orientation { return v.orientation }

// NodeCount delegates to the underlying id map.
func (v *View) NodeCount() int64 { return v.ids.NodeCount() }

func forwardTargets(wt weightedType, n int64, o Orientation) []int64 {
	switch o {
	case Reverse:
		in, _ := wt.topo.Incoming(n)
		return in
	case Undirected:
		out := wt.topo.Outgoing(n)
		in, _ := wt.topo.Incoming(n)
		if len(in) == 0 {
			return out
		}
		combined := make([]int64, 0, len(out)+len(in))
		combined = append(combined, out...)
		combined = append(combined, in...)
		return combined
	default:
		return wt.topo.Outgoing(n)
	}
}

func inverseTargets(wt weightedType, n int64, o Orientation) []int64 {
	switch o {
	case Reverse:
		return wt.topo.Outgoing(n)
	case Undirected:
		return forwardTargets(wt, n, Undirected)
	default:
		in, _ := wt.topo.Incoming(n)
		return in
	}
}

// Degree is the number of forward neighbors of n across every selected
// type, under the view's orientation.
func (v *View) Degree(n int64) int64 {
	var total int64
	for _, wt := range v.types {
		total += int64(len(forwardTargets(wt, n, v.orientation)))
	}
	return total
}

// InDegree is the number of inverse neighbors of n across every selected
// type, under the view's orientation. Panics if the view is not
// inverse-indexed (mirrors stream_inverse_relationships).
func (v *View) InDegree(n int64) int64 {
	if !v.inverseIndexed && v.orientation == Forward {
		panic(fmt.Errorf("%w: view is not inverse-indexed", gdserrors.ErrNotInverseIndexed))
	}
	var total int64
	for _, wt := range v.types {
		total += int64(len(inverseTargets(wt, n, v.orientation)))
	}
	return total
}

// Exists reports whether src has a forward edge to tgt in any selected
// type, under the view's orientation.
func (v *View) Exists(src, tgt int64) bool {
	for _, wt := range v.types {
		for _, t := range forwardTargets(wt, src, v.orientation) {
			if t == tgt {
				return true
			}
		}
	}
	return false
}

// ForEachNeighbor calls consumer(src, tgt) for every forward neighbor of
// src across every selected type, in type-selection order, stopping early
// the first time consumer returns false.
func (v *View) ForEachNeighbor(src int64, consumer func(src, tgt int64) bool) {
	for _, wt := range v.types {
		for _, tgt := range forwardTargets(wt, src, v.orientation) {
			if !consumer(src, tgt) {
				return
			}
		}
	}
}

// ConcurrentCopy returns a View safe to hand to another goroutine. Every
// field a View holds is either immutable after construction or itself
// already safe for concurrent reads, so this is a shallow copy — the
// equivalent of cloning the view's internal Arcs.
func (v *View) ConcurrentCopy() *View {
	cp := *v
	cp.types = append([]weightedType(nil), v.types...)
	return &cp
}
