package hugearray

import (
	"fmt"

	"github.com/katalvlaran/graphds/gdserrors"
)

// Array is a dense, fixed-size, 64-bit-indexed array of T. Zero value is not
// usable; construct with New. Array picks single-page storage for
// size <= MaxArrayLength and pages of 4 KiB payload otherwise.
//
// Array itself is not internally synchronized: concurrent reads are safe,
// concurrent writes to distinct indices are safe (they touch disjoint
// memory), a concurrent read/write or write/write to the *same* index is
// the caller's responsibility, exactly like the rust-gds contract this
// package is grounded on.
type Array[T any] struct {
	size      int64
	single    []T   // non-nil iff single-page
	pages     [][]T // non-nil iff paged
	pageShift uint
	pageMask  int64
	elemBytes int
}

func elemBytesOf[T any]() int {
	var zero T
	switch any(zero).(type) {
	case int64:
		return 8
	case float64:
		return 8
	default:
		// Boxed/object element: one pointer-ish unit is still 8 bytes on the
		// platforms this module targets; used only to size pages, never to
		// reinterpret memory.
		return 8
	}
}

// New allocates an Array of the given size, zero/nil-initialized.
func New[T any](size int64) *Array[T] {
	a := &Array[T]{size: size, elemBytes: elemBytesOf[T]()}
	if size <= MaxArrayLength {
		a.single = make([]T, size)
		return a
	}
	shift := PageShiftFor4KiB(a.elemBytes)
	pageSize := int64(1) << shift
	a.pageShift = shift
	a.pageMask = pageSize - 1
	numPages := numPagesFor(size, pageSize)
	pages := make([][]T, numPages)
	for i := int64(0); i < numPages-1; i++ {
		pages[i] = make([]T, pageSize)
	}
	lastLen := exclusiveIndexOfLastPage(size, a.pageMask)
	pages[numPages-1] = make([]T, lastLen)
	a.pages = pages
	return a
}

// Size reports the logical length of the array.
func (a *Array[T]) Size() int64 { return a.size }

// IsPaged reports whether the array uses multi-page storage.
func (a *Array[T]) IsPaged() bool { return a.pages != nil }

// Get returns the element at index i. Panics if i is outside [0, size).
func (a *Array[T]) Get(i int64) T {
	if i < 0 || i >= a.size {
		panic(fmt.Errorf("%w: index %d, size %d", gdserrors.ErrIndexOutOfRange, i, a.size))
	}
	if a.single != nil {
		return a.single[i]
	}
	return a.pages[pageIndex(i, a.pageShift)][indexInPage(i, a.pageMask)]
}

// Set assigns v to index i. Panics if i is outside [0, size).
func (a *Array[T]) Set(i int64, v T) {
	if i < 0 || i >= a.size {
		panic(fmt.Errorf("%w: index %d, size %d", gdserrors.ErrIndexOutOfRange, i, a.size))
	}
	if a.single != nil {
		a.single[i] = v
		return
	}
	a.pages[pageIndex(i, a.pageShift)][indexInPage(i, a.pageMask)] = v
}

// Fill sets every element to v. O(n).
func (a *Array[T]) Fill(v T) {
	if a.single != nil {
		for i := range a.single {
			a.single[i] = v
		}
		return
	}
	for _, page := range a.pages {
		for i := range page {
			page[i] = v
		}
	}
}

// SetAll assigns every index i the value f(i). O(n), sequential.
func (a *Array[T]) SetAll(f func(int64) T) {
	if a.single != nil {
		for i := range a.single {
			a.single[i] = f(int64(i))
		}
		return
	}
	pageSize := a.pageMask + 1
	for p, page := range a.pages {
		base := int64(p) * pageSize
		for i := range page {
			page[i] = f(base + int64(i))
		}
	}
}

// CopyTo copies the first n elements of a into dst, padding dst with its
// zero value beyond n if dst is longer. n must not exceed min(a.Size(),
// dst.Size()).
func (a *Array[T]) CopyTo(dst *Array[T], n int64) {
	var i int64
	for ; i < n; i++ {
		dst.Set(i, a.Get(i))
	}
	var zero T
	for ; i < dst.size; i++ {
		dst.Set(i, zero)
	}
}

// CopyOf returns a new array of newSize holding a copy of a's first
// min(a.Size(), newSize) elements, padded with the zero value.
func (a *Array[T]) CopyOf(newSize int64) *Array[T] {
	out := New[T](newSize)
	n := a.size
	if newSize < n {
		n = newSize
	}
	a.CopyTo(out, n)
	return out
}

// BinarySearch requires a to be sorted ascending by less. It returns
// (index, true) if an element equal to target (neither less(a[i],target)
// nor less(target,a[i])) is found, or (insertionPoint, false) otherwise.
func (a *Array[T]) BinarySearch(target T, less func(x, y T) bool) (int64, bool) {
	lo, hi := int64(0), a.size
	for lo < hi {
		mid := lo + (hi-lo)/2
		v := a.Get(mid)
		switch {
		case less(v, target):
			lo = mid + 1
		case less(target, v):
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}
