package idmap

import (
	"sync/atomic"

	"github.com/katalvlaran/graphds/hugearray"
)

// Builder assigns mapped ids sequentially: the k-th unique Add call across
// all goroutines receives mapped id k-1. Any goroutine may call Add
// concurrently; each insert acquires only its key's shard lock plus one
// atomic increment of the shared counter, never a global lock.
type Builder struct {
	shards    []*shard
	shardMask uint64
	counter   atomic.Int64
	maxOrig   atomic.Int64
	hasAny    atomic.Bool
}

// NewBuilder creates a sequential builder sized for concurrency goroutines.
func NewBuilder(concurrency int) *Builder {
	n := shardCountFor(concurrency)
	b := &Builder{shards: newShards(n), shardMask: uint64(n - 1)}
	return b
}

// Add inserts original and returns its freshly assigned mapped id (>= 0),
// or the encoded duplicate sentinel -(existingMappedID)-1 if original was
// already present.
func (b *Builder) Add(original int64) int64 {
	s := b.shards[shardIndex(original, b.shardMask)]
	s.mu.Lock()
	if existing, ok := s.m[original]; ok {
		s.mu.Unlock()
		return -(existing) - 1
	}
	id := b.counter.Add(1) - 1
	s.m[original] = id
	s.mu.Unlock()
	b.observeMax(original)
	return id
}

func (b *Builder) observeMax(original int64) {
	for {
		cur := b.maxOrig.Load()
		if b.hasAny.Load() && original <= cur {
			return
		}
		if b.maxOrig.CompareAndSwap(cur, original) {
			b.hasAny.Store(true)
			return
		}
	}
}

// Build finalizes the builder into an immutable IDMap. No further Add calls
// are valid after Build returns.
func (b *Builder) Build() *IDMap {
	return b.buildWithMax(b.maxOrig.Load())
}

// BuildWithMaxID finalizes the builder like Build, but reports maxID as the
// map's MaxOriginalID, widened to the largest inserted original id if maxID
// is smaller (useful when the caller knows a larger id space than what
// happened to be inserted).
func (b *Builder) BuildWithMaxID(maxID int64) *IDMap {
	observed := b.maxOrig.Load()
	if maxID < observed {
		maxID = observed
	}
	return b.buildWithMax(maxID)
}

func (b *Builder) buildWithMax(maxOriginal int64) *IDMap {
	n := b.counter.Load()
	reverse := hugearray.NewLong(n)
	for _, s := range b.shards {
		for original, mapped := range s.m {
			reverse.Set(mapped, original)
		}
	}
	return &IDMap{
		shards:      b.shards,
		shardMask:   b.shardMask,
		reverse:     reverse,
		nodeCount:   n,
		maxOriginal: maxOriginal,
	}
}
