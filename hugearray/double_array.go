package hugearray

// DoubleArray is a huge array of f64, used for Double-typed property
// columns and Double-typed Pregel node values.
type DoubleArray struct{ Array[float64] }

// NewDouble allocates a DoubleArray of the given size, zero-initialized.
func NewDouble(size int64) *DoubleArray { return &DoubleArray{*New[float64](size)} }

// DoubleArrayOf wraps an already-built Array[float64] in the named
// DoubleArray type.
func DoubleArrayOf(a *Array[float64]) *DoubleArray { return &DoubleArray{*a} }

// WithGeneratorDouble builds a DoubleArray in parallel; see WithGenerator.
func WithGeneratorDouble(size int64, concurrency int, f func(int64) float64) *DoubleArray {
	return DoubleArrayOf(WithGenerator[float64](size, concurrency, f))
}

// Add increments the element at i by delta and returns the new value.
// Not atomic; see package doc for the concurrency contract.
func (a *DoubleArray) Add(i int64, delta float64) float64 {
	v := a.Get(i) + delta
	a.Set(i, v)
	return v
}

// NewCursor allocates a cursor over this array's underlying storage.
func (a *DoubleArray) NewCursor() *Cursor[float64] { return a.Array.NewCursor() }

// CopyOf returns a new DoubleArray of newSize with a's elements copied in,
// padded with zero.
func (a *DoubleArray) CopyOf(newSize int64) *DoubleArray {
	return DoubleArrayOf(a.Array.CopyOf(newSize))
}
