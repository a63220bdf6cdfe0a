package pregel

import "github.com/bits-and-blooms/bitset"

// VoteBits tracks, one bit per vertex, whether that vertex has voted to
// halt. A bit is safe to Set or Clear without synchronization as long as
// callers only ever touch the bit for the vertex they currently own — true
// of the runtime's partitioned superstep loop, where each vertex is
// computed by exactly one worker per superstep and no bit is read until
// the superstep's join barrier has completed. This is the same
// partitioned-writer, barrier-before-read discipline hugearray.WithGenerator
// relies on, applied to a bitset instead of a paged array.
type VoteBits struct {
	bits *bitset.BitSet
	n    uint
}

// NewVoteBits allocates an all-clear VoteBits for n vertices.
func NewVoteBits(n int64) *VoteBits {
	return &VoteBits{bits: bitset.New(uint(n)), n: uint(n)}
}

// Vote marks vertex as halted.
func (v *VoteBits) Vote(vertex int64) { v.bits.Set(uint(vertex)) }

// Clear marks vertex as active again (called on message reactivation).
func (v *VoteBits) Clear(vertex int64) { v.bits.Clear(uint(vertex)) }

// IsHalted reports whether vertex has voted to halt.
func (v *VoteBits) IsHalted(vertex int64) bool { return v.bits.Test(uint(vertex)) }

// AllHalted reports whether every vertex has voted to halt.
func (v *VoteBits) AllHalted() bool { return v.bits.Count() == v.n }
