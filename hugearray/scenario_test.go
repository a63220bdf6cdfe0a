package hugearray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScenario_RoundTripBillionElementArray mirrors the round-trip paged
// array scenario: a billion-element generated array must read back exactly
// what it was generated with, at arbitrary offsets including the start and
// the last element. It allocates roughly 8 GiB and is skipped with -short.
func TestScenario_RoundTripBillionElementArray(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates ~8GiB; skipped with -short")
	}
	const size = 1_000_000_000
	a := WithGeneratorLong(size, 8, func(i int64) int64 { return i })
	assert.Equal(t, int64(size), a.Size())
	assert.Equal(t, int64(0), a.Get(0))
	assert.Equal(t, int64(1_000_000), a.Get(1_000_000))
	assert.Equal(t, int64(999_999_999), a.Get(999_999_999))
}
