package hugearray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongArray_GetSetIdempotent(t *testing.T) {
	a := NewLong(1000)
	for i := int64(0); i < a.Size(); i++ {
		assert.Equal(t, int64(0), a.Get(i), "default value must be zero")
	}
	a.Set(42, 7)
	assert.Equal(t, int64(7), a.Get(42))
	assert.Equal(t, int64(7), a.Get(42), "Get is idempotent")
}

func TestLongArray_Paged_BoundaryIndices(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a multi-page array; skipped with -short")
	}
	// force paged storage
	size := MaxArrayLength + 10
	a := WithGeneratorLong(size, 4, func(i int64) int64 { return i })
	require.True(t, a.IsPaged())
	assert.Equal(t, int64(0), a.Get(0))
	assert.Equal(t, int64(1), a.Get(1))
	assert.Equal(t, size-1, a.Get(size-1))
}

func TestLongArray_FillAndSetAll(t *testing.T) {
	a := NewLong(10)
	a.Fill(5)
	for i := int64(0); i < 10; i++ {
		assert.Equal(t, int64(5), a.Get(i))
	}
	a.SetAll(func(i int64) int64 { return i * 2 })
	for i := int64(0); i < 10; i++ {
		assert.Equal(t, i*2, a.Get(i))
	}
}

func TestLongArray_CopyToAndCopyOf(t *testing.T) {
	a := WithGeneratorLong(10, 1, func(i int64) int64 { return i + 1 })
	dst := NewLong(5)
	a.CopyTo(&dst.Array, 5)
	for i := int64(0); i < 5; i++ {
		assert.Equal(t, i+1, dst.Get(i))
	}

	grown := a.CopyOf(15)
	for i := int64(0); i < 10; i++ {
		assert.Equal(t, i+1, grown.Get(i))
	}
	for i := int64(10); i < 15; i++ {
		assert.Equal(t, int64(0), grown.Get(i))
	}
}

func TestLongArray_BinarySearch(t *testing.T) {
	a := WithGeneratorLong(100, 4, func(i int64) int64 { return i * 2 })
	idx, found := a.BinarySearch(50)
	require.True(t, found)
	assert.Equal(t, int64(25), idx)

	idx, found = a.BinarySearch(51)
	require.False(t, found)
	assert.Equal(t, int64(26), idx) // insertion point
}

func TestLongArray_Add(t *testing.T) {
	a := NewLong(4)
	assert.Equal(t, int64(3), a.Add(0, 3))
	assert.Equal(t, int64(5), a.Add(0, 2))
}

func TestArray_GetSet_OutOfRangePanics(t *testing.T) {
	a := NewLong(4)
	assert.Panics(t, func() { a.Get(4) })
	assert.Panics(t, func() { a.Get(-1) })
	assert.Panics(t, func() { a.Set(4, 1) })
}

func TestDoubleArray_Basics(t *testing.T) {
	a := NewDouble(8)
	a.Set(3, 1.5)
	assert.InDelta(t, 1.5, a.Get(3), 1e-9)
	assert.InDelta(t, 2.5, a.Add(3, 1.0), 1e-9)
}

func TestObjectArray_DefaultIsNil(t *testing.T) {
	type payload struct{ v int }
	a := NewObject[*payload](3)
	assert.Nil(t, a.Get(0))
	a.Set(1, &payload{v: 9})
	assert.Equal(t, 9, a.Get(1).v)
}

func TestWithGenerator_ConcurrencyInvariant(t *testing.T) {
	const size = 1_000_000
	f := func(i int64) int64 { return i*31 + 7 }
	a1 := WithGeneratorLong(size, 1, f)
	a8 := WithGeneratorLong(size, 8, f)
	for _, i := range []int64{0, 1, size / 2, size - 1} {
		require.Equal(t, a1.Get(i), a8.Get(i))
	}
}
