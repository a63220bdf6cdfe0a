package idmap

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/hugearray"
)

// BatchedBuilder pre-reserves contiguous id ranges for whole chunks, so bulk
// ingestion avoids global counter traffic on every single insert: only one
// atomic add per chunk via PrepareBatch.
type BatchedBuilder struct {
	shards    []*shard
	shardMask uint64
	counter   atomic.Int64
	maxOrig   atomic.Int64
	hasAny    atomic.Bool

	wastedMu sync.Mutex
	wasted   []wastedSlot
}

// wastedSlot records a reserved-but-duplicate id: the id was consumed from
// a batch's range (so the dense [0, node_count) space has no hole at that
// position) but the forward map keeps pointing at the first-ever insert of
// original, so this slot is only reachable in reverse (ToOriginal).
type wastedSlot struct {
	id       int64
	original int64
}

func (b *BatchedBuilder) recordWasted(id, original int64) {
	b.wastedMu.Lock()
	b.wasted = append(b.wasted, wastedSlot{id: id, original: original})
	b.wastedMu.Unlock()
}

// NewBatchedBuilder creates a batch-mode builder sized for concurrency
// goroutines.
func NewBatchedBuilder(concurrency int) *BatchedBuilder {
	n := shardCountFor(concurrency)
	return &BatchedBuilder{shards: newShards(n), shardMask: uint64(n - 1)}
}

// Batch owns a contiguous id range [start, start+n) reserved from a
// BatchedBuilder and assigns ids positionally as Add is called.
type Batch struct {
	b        *BatchedBuilder
	start, n int64
	next     int64
}

// PrepareBatch atomically advances the shared counter by n and returns a
// Batch owning the reserved range.
func (b *BatchedBuilder) PrepareBatch(n int64) *Batch {
	start := b.counter.Add(n) - n
	return &Batch{b: b, start: start, n: n}
}

func (b *BatchedBuilder) observeMax(original int64) {
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

// Add inserts original into the batch's reserved range, positionally: the
// k-th Add call within this batch always consumes id start+k, whether or
// not original turns out to be a duplicate — so a batch whose reserved
// range is fully used leaves no hole in the dense [0, node_count) space.
// Returns the duplicate sentinel -(existingMappedID)-1 if original was
// already present (possibly inserted by a different batch); the consumed
// id in that case is only reachable via ToOriginal, not ToMapped. Panics if
// more ids are requested than the batch reserved capacity for — a caller
// sizing bug, not a runtime condition callers should plan around.
func (bt *Batch) Add(original int64) int64 {
	s := bt.b.shards[shardIndex(original, bt.b.shardMask)]
	s.mu.Lock()
	existing, isDup := s.m[original]
	if !isDup {
		if bt.next >= bt.n {
			s.mu.Unlock()
			panic(fmt.Errorf("%w: batch capacity %d exhausted", gdserrors.ErrIndexOutOfRange, bt.n))
		}
		id := bt.start + bt.next
		bt.next++
		s.m[original] = id
		s.mu.Unlock()
		bt.b.observeMax(original)
		return id
	}
	s.mu.Unlock()

	if bt.next >= bt.n {
		panic(fmt.Errorf("%w: batch capacity %d exhausted", gdserrors.ErrIndexOutOfRange, bt.n))
	}
	id := bt.start + bt.next
	bt.next++
	bt.b.recordWasted(id, original)
	return -(existing) - 1
}

// Build finalizes the builder into an immutable IDMap.
func (b *BatchedBuilder) Build() *IDMap { return b.buildWithMax(b.maxOrig.Load()) }

// BuildWithMaxID finalizes like Build but reports maxID as MaxOriginalID,
// widened to cover whatever was actually observed.
func (b *BatchedBuilder) BuildWithMaxID(maxID int64) *IDMap {
	observed := b.maxOrig.Load()
	if maxID < observed {
		maxID = observed
	}
	return b.buildWithMax(maxID)
}

func (b *BatchedBuilder) buildWithMax(maxOriginal int64) *IDMap {
	n := b.counter.Load()
	reverse := hugearray.NewLong(n)
	for _, s := range b.shards {
		for original, mapped := range s.m {
			reverse.Set(mapped, original)
		}
	}
	b.wastedMu.Lock()
	for _, w := range b.wasted {
		reverse.Set(w.id, w.original)
	}
	b.wastedMu.Unlock()
	return &IDMap{
		shards:      b.shards,
		shardMask:   b.shardMask,
		reverse:     reverse,
		nodeCount:   n,
		maxOriginal: maxOriginal,
	}
}
