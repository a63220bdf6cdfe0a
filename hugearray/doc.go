// Package hugearray provides dense, fixed-size arrays addressable by a
// 64-bit index, well past the 2^31 element ceiling of a native Go slice
// length on 32-bit platforms and past the point where a single slice makes
// a poor cache citizen. An array picks one of two representations at
// construction time:
//
//   - single-page: one contiguous backing slice, used when
//     size <= MaxArrayLength (2^28 elements);
//   - paged: a slice of equally sized pages (4 KiB payload each, a final
//     short page) addressed via shift/mask instead of division.
//
// Every logical index in [0, size) resolves to exactly one (page, offset)
// pair. Cursors walk a half-open range as a sequence of contiguous in-page
// slices; callers apply the inner loop themselves, so the hot path never
// allocates.
//
// Following the teacher's locking convention (each type documents exactly
// what it guards), hugearray arrays are not internally synchronized: reads
// are always safe to share across goroutines that do not also write,
// mirroring the rust-gds contract this package is grounded on
// (doc of collections::huge_array::HugeLongArray, original_source/src/
// collections/huge_array/huge_long_array.rs). Construction via WithGenerator
// is the one place that is itself concurrency-safe, since each worker owns
// a disjoint, non-overlapping set of whole pages.
package hugearray
