package hugearray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_SinglePage_CoversFullRange(t *testing.T) {
	a := WithGeneratorLong(100, 2, func(i int64) int64 { return i })
	c := a.NewCursor()
	InitRange(c, 10, 90)

	var seen []int64
	for c.Next() {
		page := c.Array()
		for i := c.Offset(); i < c.Limit(); i++ {
			seen = append(seen, page[i])
			assert.Equal(t, c.Base()+i, page[i])
		}
	}
	require.Len(t, seen, 80)
	assert.Equal(t, int64(10), seen[0])
	assert.Equal(t, int64(89), seen[len(seen)-1])
}

func TestCursor_Paged_AscendingAndContiguous(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a multi-page array; skipped with -short")
	}
	size := MaxArrayLength + 2000
	a := WithGeneratorLong(size, 4, func(i int64) int64 { return i })
	c := a.NewCursor()
	InitRange(c, MaxArrayLength-5, MaxArrayLength+100)

	var prev int64 = -1
	var count int64
	for c.Next() {
		page := c.Array()
		for i := c.Offset(); i < c.Limit(); i++ {
			v := page[i]
			assert.Greater(t, v, prev, "cursor must yield strictly ascending logical indices")
			prev = v
			count++
		}
	}
	assert.Equal(t, int64(105), count)
}

func TestCursor_ResetReArms(t *testing.T) {
	a := WithGeneratorLong(50, 1, func(i int64) int64 { return i })
	c := a.NewCursor()
	InitRange(c, 0, 50)
	var first int64
	for c.Next() {
		page := c.Array()
		for i := c.Offset(); i < c.Limit(); i++ {
			first += page[i]
		}
	}
	c.Reset()
	var second int64
	for c.Next() {
		page := c.Array()
		for i := c.Offset(); i < c.Limit(); i++ {
			second += page[i]
		}
	}
	assert.Equal(t, first, second)
}

func TestCursor_EmptyRange(t *testing.T) {
	a := NewLong(10)
	c := a.NewCursor()
	InitRange(c, 5, 5)
	assert.False(t, c.Next())
}
