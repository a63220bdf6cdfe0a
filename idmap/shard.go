package idmap

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// shard is one partition of the forward original->mapped map, independently
// locked so inserts to different shards never contend.
type shard struct {
	mu sync.Mutex
	m  map[int64]int64
}

func newShards(count int) []*shard {
	shards := make([]*shard, count)
	for i := range shards {
		shards[i] = &shard{m: make(map[int64]int64)}
	}
	return shards
}

// nextPow2 returns the smallest power of two >= n, at least 1.
func nextPow2(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// shardCountFor mirrors the design note: S = next_pow2(concurrency*4).
func shardCountFor(concurrency int) int {
	if concurrency < 1 {
		concurrency = 1
	}
	return nextPow2(concurrency * 4)
}

// shardIndex hashes an original id to a shard index. The index depends only
// on the key, so identical keys always land in the same shard regardless of
// which goroutine inserts them.
func shardIndex(original int64, shardMask uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(original))
	return int(xxhash.Sum64(buf[:]) & shardMask)
}
