// Package idmap implements a concurrent, sharded, bidirectional mapping
// between caller-supplied original node ids (arbitrary i64, unique) and
// compact, dense, zero-based mapped ids assigned during a build phase.
//
// The forward direction (original -> mapped) is sharded across
// next_pow2(concurrency*4) shards, each an independently locked Go map,
// selected by an xxhash of the key; this keeps shard contention low without
// needing one lock per key. The reverse direction (mapped -> original) is a
// single hugearray.LongArray indexed by the mapped id, since mapped ids are
// dense and the reverse lookup is a pure array read.
//
// Two builders are provided:
//
//   - Builder: any goroutine may call Add(original); the first unique
//     insert gets mapped id 0, the second gets 1, and so on, in the
//     order Add is called (sequential mode, one shared atomic counter).
//   - BatchedBuilder: a goroutine reserves a contiguous id range with
//     PrepareBatch(n) and then inserts into the returned Batch, which
//     assigns ids positionally within its own range without touching the
//     shared counter per insert (batch mode, for bulk ingestion where
//     chunk boundaries are known ahead of time).
//
// Both finish with Build (or BuildWithMaxID, to override the reported
// maximum original id), producing an immutable IDMap that is lock-free on
// read: no insert ever follows a Build call.
package idmap
