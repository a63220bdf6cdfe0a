package hugearray

import "golang.org/x/sync/errgroup"

// WithGenerator builds an Array of the given size by calling f(i) for every
// logical index, using concurrency workers. Each worker owns a disjoint,
// contiguous range of whole pages (for a single-page array, a disjoint
// contiguous chunk of that page) and writes only into its own range, so no
// synchronization is needed between workers. f must be deterministic and
// free of side effects visible to other calls: results must be identical
// regardless of the concurrency level, since workers may evaluate indices
// in any order within their own range.
func WithGenerator[T any](size int64, concurrency int, f func(int64) T) *Array[T] {
	a := New[T](size)
	if concurrency < 1 {
		concurrency = 1
	}

	if a.single != nil {
		fillRangeSingle(a.single, 0, concurrency, f)
		return a
	}

	numPages := int64(len(a.pages))
	if int64(concurrency) > numPages {
		concurrency = int(numPages)
	}
	if concurrency <= 1 {
		pageSize := a.pageMask + 1
		for p, page := range a.pages {
			base := int64(p) * pageSize
			for i := range page {
				page[i] = f(base + int64(i))
			}
		}
		return a
	}

	var g errgroup.Group
	pagesPerWorker := numPages / int64(concurrency)
	remainder := numPages % int64(concurrency)
	pageSize := a.pageMask + 1

	var start int64
	for w := 0; w < concurrency; w++ {
		count := pagesPerWorker
		if int64(w) < remainder {
			count++
		}
		lo, hi := start, start+count
		start = hi
		g.Go(func() error {
			for p := lo; p < hi; p++ {
				page := a.pages[p]
				base := p * pageSize
				for i := range page {
					page[i] = f(base + int64(i))
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return a
}

// fillRangeSingle splits a single contiguous backing slice into concurrency
// equal chunks and fills each in its own goroutine.
func fillRangeSingle[T any](dst []T, _ int, concurrency int, f func(int64) T) {
	n := int64(len(dst))
	if n == 0 {
		return
	}
	if concurrency > len(dst) {
		concurrency = len(dst)
	}
	if concurrency <= 1 {
		for i := range dst {
			dst[i] = f(int64(i))
		}
		return
	}
	var g errgroup.Group
	chunk := n / int64(concurrency)
	remainder := n % int64(concurrency)
	var start int64
	for w := 0; w < concurrency; w++ {
		count := chunk
		if int64(w) < remainder {
			count++
		}
		lo, hi := start, start+count
		start = hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				dst[i] = f(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
