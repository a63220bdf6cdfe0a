package topology

import (
	"fmt"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/hugearray"
)

// Topology is the CSR-style adjacency for one relationship type: a forward
// index from every mapped node id to its ordered list of target ids, and an
// optional inverse index from target to source.
type Topology struct {
	nodeCount int64

	outOffsets *hugearray.LongArray // length nodeCount+1
	outTargets *hugearray.LongArray // length relationshipCount

	inOffsets *hugearray.LongArray // nil unless inverse-indexed
	inTargets *hugearray.LongArray

	relationshipCount int64
	hasParallelEdges  bool
}

// NewFromAdjacency builds a Topology from a per-source vector of ordered
// target-id vectors (forward), and optionally a per-target vector of
// source-id vectors (inverse). Both must have length nodeCount when
// non-nil; passing a nil inAdj omits the inverse index.
func NewFromAdjacency(outAdj [][]int64, inAdj [][]int64) (*Topology, error) {
	if outAdj == nil {
		return nil, fmt.Errorf("%w: outAdj must not be nil", gdserrors.ErrInvalidArgument)
	}
	nodeCount := int64(len(outAdj))
	if inAdj != nil && int64(len(inAdj)) != nodeCount {
		return nil, fmt.Errorf("%w: inAdj length %d != nodeCount %d", gdserrors.ErrSizeMismatch, len(inAdj), nodeCount)
	}

	outOffsets, outTargets, relCount, hasParallel := buildCSR(outAdj, nodeCount)

	t := &Topology{
		nodeCount:         nodeCount,
		outOffsets:        outOffsets,
		outTargets:        outTargets,
		relationshipCount: relCount,
		hasParallelEdges:  hasParallel,
	}

	if inAdj != nil {
		inOffsets, inTargets, _, _ := buildCSR(inAdj, nodeCount)
		t.inOffsets = inOffsets
		t.inTargets = inTargets
	}

	return t, nil
}

func buildCSR(adj [][]int64, nodeCount int64) (offsets, targets *hugearray.LongArray, total int64, hasParallel bool) {
	offsets = hugearray.NewLong(nodeCount + 1)
	for i, list := range adj {
		offsets.Set(int64(i), total)
		total += int64(len(list))
	}
	offsets.Set(nodeCount, total)

	targets = hugearray.NewLong(total)
	var idx int64
	seen := make(map[int64]struct{})
	for _, list := range adj {
		if len(list) > 1 {
			for k := range seen {
				delete(seen, k)
			}
			for _, tgt := range list {
				if _, dup := seen[tgt]; dup {
					hasParallel = true
				}
				seen[tgt] = struct{}{}
			}
		}
		for _, tgt := range list {
			targets.Set(idx, tgt)
			idx++
		}
	}
	return offsets, targets, total, hasParallel
}

// NodeCount is the number of mapped ids this topology was built over.
func (t *Topology) NodeCount() int64 { return t.nodeCount }

// RelationshipCount is the total number of forward edges (sum of outgoing
// list lengths).
func (t *Topology) RelationshipCount() int64 { return t.relationshipCount }

// HasParallelEdges reports whether any source has duplicate targets.
func (t *Topology) HasParallelEdges() bool { return t.hasParallelEdges }

// IsInverseIndexed reports whether this topology was built with an inverse
// adjacency.
func (t *Topology) IsInverseIndexed() bool { return t.inOffsets != nil }

// Outgoing returns the ordered target ids for n. Panics if n is outside
// [0, NodeCount()).
func (t *Topology) Outgoing(n int64) []int64 {
	return sliceFor(t.outOffsets, t.outTargets, n)
}

// Incoming returns the ordered source ids for n and true if this topology
// is inverse-indexed; otherwise it returns (nil, false).
func (t *Topology) Incoming(n int64) ([]int64, bool) {
	if t.inOffsets == nil {
		return nil, false
	}
	return sliceFor(t.inOffsets, t.inTargets, n), true
}

// Degree is len(Outgoing(n)).
func (t *Topology) Degree(n int64) int64 {
	return t.outOffsets.Get(n+1) - t.outOffsets.Get(n)
}

// InDegree is len(Incoming(n)). Returns 0 if not inverse-indexed.
func (t *Topology) InDegree(n int64) int64 {
	if t.inOffsets == nil {
		return 0
	}
	return t.inOffsets.Get(n+1) - t.inOffsets.Get(n)
}

// DegreeWithoutParallel counts n's distinct outgoing targets, collapsing
// parallel edges.
func (t *Topology) DegreeWithoutParallel(n int64) int64 {
	out := t.Outgoing(n)
	if len(out) < 2 {
		return int64(len(out))
	}
	seen := make(map[int64]struct{}, len(out))
	for _, tgt := range out {
		seen[tgt] = struct{}{}
	}
	return int64(len(seen))
}

// OutEdgeRange returns the half-open range of flat edge-array positions
// holding n's outgoing targets, matching the indexing a relationship
// property column aligned to this topology's forward enumeration uses.
func (t *Topology) OutEdgeRange(n int64) (from, to int64) {
	return t.outOffsets.Get(n), t.outOffsets.Get(n + 1)
}

// InEdgeRange is OutEdgeRange's inverse-index counterpart. ok is false if
// this topology was not built with an inverse index.
func (t *Topology) InEdgeRange(n int64) (from, to int64, ok bool) {
	if t.inOffsets == nil {
		return 0, 0, false
	}
	return t.inOffsets.Get(n), t.inOffsets.Get(n + 1), true
}

// OutTargetAt returns the target id stored at forward edge-array position
// idx, as returned by OutEdgeRange.
func (t *Topology) OutTargetAt(idx int64) int64 { return t.outTargets.Get(idx) }

// InTargetAt returns the source id stored at inverse edge-array position
// idx, as returned by InEdgeRange.
func (t *Topology) InTargetAt(idx int64) int64 { return t.inTargets.Get(idx) }

// Exists reports whether src has an outgoing edge to tgt. O(degree(src)).
func (t *Topology) Exists(src, tgt int64) bool {
	for _, t2 := range t.Outgoing(src) {
		if t2 == tgt {
			return true
		}
	}
	return false
}

func sliceFor(offsets, targets *hugearray.LongArray, n int64) []int64 {
	from := offsets.Get(n)
	to := offsets.Get(n + 1)
	out := make([]int64, 0, to-from)
	c := targets.NewCursor()
	hugearray.InitRange(c, from, to)
	for c.Next() {
		page := c.Array()
		for i := c.Offset(); i < c.Limit(); i++ {
			out = append(out, page[i])
		}
	}
	return out
}
