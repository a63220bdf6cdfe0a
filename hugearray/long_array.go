package hugearray

// LongArray is a huge array of i64, the workhorse type used by the id map's
// reverse index, relationship topology offsets, and Long-typed property
// columns.
type LongArray struct{ Array[int64] }

// NewLong allocates a LongArray of the given size, zero-initialized.
func NewLong(size int64) *LongArray { return &LongArray{*New[int64](size)} }

// LongArrayOf wraps an already-built Array[int64], e.g. one produced by
// WithGeneratorLong, in the named LongArray type.
func LongArrayOf(a *Array[int64]) *LongArray { return &LongArray{*a} }

// WithGeneratorLong builds a LongArray in parallel; see WithGenerator.
func WithGeneratorLong(size int64, concurrency int, f func(int64) int64) *LongArray {
	return LongArrayOf(WithGenerator[int64](size, concurrency, f))
}

// Add atomically-in-spirit (but not actually atomic; see package doc)
// increments the element at i by delta and returns the new value.
func (a *LongArray) Add(i int64, delta int64) int64 {
	v := a.Get(i) + delta
	a.Set(i, v)
	return v
}

// BinarySearch searches a sorted-ascending LongArray for v.
func (a *LongArray) BinarySearch(v int64) (int64, bool) {
	return a.Array.BinarySearch(v, func(x, y int64) bool { return x < y })
}

// NewCursor allocates a cursor over this array's underlying storage.
func (a *LongArray) NewCursor() *Cursor[int64] { return a.Array.NewCursor() }

// CopyOf returns a new LongArray of newSize with a's elements copied in,
// padded with zero.
func (a *LongArray) CopyOf(newSize int64) *LongArray { return LongArrayOf(a.Array.CopyOf(newSize)) }
