package hugearray

// ObjectArray is a huge array of boxed values: LongArray/DoubleArray/
// FloatArray-typed property columns and any other per-index payload that
// isn't a bare scalar. The zero value of T is the default (nil for slices
// and pointers).
type ObjectArray[T any] struct{ Array[T] }

// NewObject allocates an ObjectArray of the given size, default-initialized.
func NewObject[T any](size int64) *ObjectArray[T] { return &ObjectArray[T]{*New[T](size)} }

// WithGeneratorObject builds an ObjectArray in parallel; see WithGenerator.
func WithGeneratorObject[T any](size int64, concurrency int, f func(int64) T) *ObjectArray[T] {
	return &ObjectArray[T]{*WithGenerator[T](size, concurrency, f)}
}

// NewCursor allocates a cursor over this array's underlying storage.
func (a *ObjectArray[T]) NewCursor() *Cursor[T] { return a.Array.NewCursor() }

// CopyOf returns a new ObjectArray of newSize with a's elements copied in,
// padded with the zero value of T.
func (a *ObjectArray[T]) CopyOf(newSize int64) *ObjectArray[T] {
	return &ObjectArray[T]{*a.Array.CopyOf(newSize)}
}
