package graphview

import (
	"fmt"

	"github.com/katalvlaran/graphds/gdserrors"
)

// Relationship is one cursor snapshot from a RelationshipCursor: a source,
// a target, and a weight (the selected property value, or the stream's
// fallback when the type has no selected property or the edge isn't under
// native forward indexing).
type Relationship struct {
	Source int64
	Target int64
	Weight float64
}

// RelationshipCursor lazily walks one node's relationships across a View's
// selected types, materializing one type's neighbor list at a time rather
// than the whole result up front. Call Next() until it returns false;
// Current() is valid only after a Next() that returned true.
type RelationshipCursor struct {
	v        *View
	node     int64
	fallback float64
	forward  bool

	typeIdx int
	targets []int64
	pos     int
	cur     Relationship
}

func newRelationshipCursor(v *View, node int64, fallback float64, forward bool) *RelationshipCursor {
	return &RelationshipCursor{v: v, node: node, fallback: fallback, forward: forward, typeIdx: -1}
}

func (c *RelationshipCursor) advanceType() bool {
	c.typeIdx++
	if c.typeIdx >= len(c.v.types) {
		return false
	}
	wt := c.v.types[c.typeIdx]
	if c.forward {
		c.targets = forwardTargets(wt, c.node, c.v.orientation)
	} else {
		c.targets = inverseTargets(wt, c.node, c.v.orientation)
	}
	c.pos = 0
	return true
}

// Next advances the cursor to the next relationship, returning false once
// every selected type has been exhausted.
func (c *RelationshipCursor) Next() bool {
	for c.targets == nil || c.pos >= len(c.targets) {
		if !c.advanceType() {
			return false
		}
	}
	wt := c.v.types[c.typeIdx]
	tgt := c.targets[c.pos]
	weight := c.fallback

	// The property column is aligned to the topology's native forward CSR
	// position; that alignment only holds when this cursor is walking the
	// native forward direction under Forward orientation. Reverse and
	// Undirected traversal fall back to the caller-supplied weight.
	if c.forward && c.v.orientation == Forward && wt.col != nil {
		from, _ := wt.topo.OutEdgeRange(c.node)
		idx := from + int64(c.pos)
		if w, err := wt.col.GetDouble(idx); err == nil {
			weight = w
		}
	}

	c.cur = Relationship{Source: c.node, Target: tgt, Weight: weight}
	c.pos++
	return true
}

// Current returns the relationship exposed by the most recent successful
// Next call.
func (c *RelationshipCursor) Current() Relationship { return c.cur }

// StreamRelationships returns a lazy cursor over n's forward relationships
// across every selected type, using fallbackWeight wherever a type has no
// selected weight property.
func (v *View) StreamRelationships(n int64, fallbackWeight float64) *RelationshipCursor {
	return newRelationshipCursor(v, n, fallbackWeight, true)
}

// StreamInverseRelationships is StreamRelationships' symmetric inverse.
// Panics if the view is not inverse-indexed.
func (v *View) StreamInverseRelationships(n int64, fallbackWeight float64) *RelationshipCursor {
	if !v.inverseIndexed {
		panic(fmt.Errorf("%w: view is not inverse-indexed", gdserrors.ErrNotInverseIndexed))
	}
	return newRelationshipCursor(v, n, fallbackWeight, false)
}
