package properties

import (
	"fmt"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/hugearray"
)

// Column is a typed columnar property array. Exactly one of its backing
// arrays is non-nil, selected once at construction by the ValueType — every
// Get call afterward checks the value-type tag and reads that one array.
type Column struct {
	valueType ValueType
	length    int64

	longs        *hugearray.LongArray
	doubles      *hugearray.DoubleArray
	longArrays   *hugearray.ObjectArray[[]int64]
	doubleArrays *hugearray.ObjectArray[[]float64]
	floatArrays  *hugearray.ObjectArray[[]float32]
}

// NewLongColumn wraps a prebuilt LongArray as a Long-typed column.
func NewLongColumn(a *hugearray.LongArray) *Column {
	return &Column{valueType: Long, length: a.Size(), longs: a}
}

// NewDoubleColumn wraps a prebuilt DoubleArray as a Double-typed column.
func NewDoubleColumn(a *hugearray.DoubleArray) *Column {
	return &Column{valueType: Double, length: a.Size(), doubles: a}
}

// NewLongArrayColumn wraps a prebuilt ObjectArray[[]int64] as a
// LongArray-typed column.
func NewLongArrayColumn(a *hugearray.ObjectArray[[]int64]) *Column {
	return &Column{valueType: LongArray, length: a.Size(), longArrays: a}
}

// NewDoubleArrayColumn wraps a prebuilt ObjectArray[[]float64] as a
// DoubleArray-typed column.
func NewDoubleArrayColumn(a *hugearray.ObjectArray[[]float64]) *Column {
	return &Column{valueType: DoubleArray, length: a.Size(), doubleArrays: a}
}

// NewFloatArrayColumn wraps a prebuilt ObjectArray[[]float32] as a
// FloatArray-typed column.
func NewFloatArrayColumn(a *hugearray.ObjectArray[[]float32]) *Column {
	return &Column{valueType: FloatArray, length: a.Size(), floatArrays: a}
}

// Type reports the column's value type.
func (c *Column) Type() ValueType { return c.valueType }

// Len reports the column's logical length.
func (c *Column) Len() int64 { return c.length }

// GetLong returns the Long value at i. Only legal on a Long column.
func (c *Column) GetLong(i int64) (int64, error) {
	if c.valueType != Long {
		return 0, typeMismatch(Long, c.valueType)
	}
	return c.longs.Get(i), nil
}

// GetDouble returns the value at i as a Double, widening a Long column's
// value losslessly up to 2^53. Any other source type is a type mismatch.
func (c *Column) GetDouble(i int64) (float64, error) {
	switch c.valueType {
	case Double:
		return c.doubles.Get(i), nil
	case Long:
		return float64(c.longs.Get(i)), nil
	default:
		return 0, typeMismatch(Double, c.valueType)
	}
}

// GetLongArray returns the LongArray value at i. Only legal on a LongArray
// column.
func (c *Column) GetLongArray(i int64) ([]int64, error) {
	if c.valueType != LongArray {
		return nil, typeMismatch(LongArray, c.valueType)
	}
	return c.longArrays.Get(i), nil
}

// GetDoubleArray returns the DoubleArray value at i. Only legal on a
// DoubleArray column.
func (c *Column) GetDoubleArray(i int64) ([]float64, error) {
	if c.valueType != DoubleArray {
		return nil, typeMismatch(DoubleArray, c.valueType)
	}
	return c.doubleArrays.Get(i), nil
}

// GetFloatArray returns the FloatArray value at i. Only legal on a
// FloatArray column.
func (c *Column) GetFloatArray(i int64) ([]float32, error) {
	if c.valueType != FloatArray {
		return nil, typeMismatch(FloatArray, c.valueType)
	}
	return c.floatArrays.Get(i), nil
}

func typeMismatch(wanted, got ValueType) error {
	return fmt.Errorf("%w: requested %s, column is %s", gdserrors.ErrTypeMismatch, wanted, got)
}
