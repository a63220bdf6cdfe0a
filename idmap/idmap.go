package idmap

import "github.com/katalvlaran/graphds/hugearray"

// NotFound is the sentinel returned by ToMapped and ToOriginal when the
// queried id is unknown. Missing-key is not an error: the caller decides
// whether it is fatal.
const NotFound int64 = -1

// IDMap is an immutable, lock-free-on-read bidirectional mapping between
// original node ids and compact mapped ids in [0, NodeCount()). Build it
// with Builder or BatchedBuilder; there is no mutation after construction.
type IDMap struct {
	shards      []*shard
	shardMask   uint64
	reverse     *hugearray.LongArray
	nodeCount   int64
	maxOriginal int64
}

// NodeCount is the size of the dense mapped-id space [0, NodeCount()): the
// number of distinct original ids inserted through a sequential Builder, or
// the total range reserved across all batches of a BatchedBuilder (every
// reserved id that a Batch.Add consumed resolves via ToOriginal, even one
// spent on a cross-batch duplicate — see Batch.Add; a reserved id that no
// Add consumed reads back as 0).
func (m *IDMap) NodeCount() int64 { return m.nodeCount }

// MaxOriginalID is the largest inserted original id, or the BuildWithMaxID
// override if one was supplied.
func (m *IDMap) MaxOriginalID() int64 { return m.maxOriginal }

// ToMapped returns the compact id for original, or NotFound if original was
// never inserted.
func (m *IDMap) ToMapped(original int64) int64 {
	s := m.shards[shardIndex(original, m.shardMask)]
	// Safe without locking: IDMap is immutable once built, no shard is
	// written to after Build returns.
	if id, ok := s.m[original]; ok {
		return id
	}
	return NotFound
}

// ToOriginal returns the original id for mapped, or NotFound if mapped is
// outside [0, NodeCount()).
func (m *IDMap) ToOriginal(mapped int64) int64 {
	if mapped < 0 || mapped >= m.nodeCount {
		return NotFound
	}
	return m.reverse.Get(mapped)
}

// Contains reports whether original was inserted during the build phase.
func (m *IDMap) Contains(original int64) bool {
	return m.ToMapped(original) != NotFound
}
