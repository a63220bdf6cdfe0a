package properties

import "fmt"

// ValueType is the closed sum of scalar and array value kinds a property
// column or a single graph/default value can hold.
type ValueType int

const (
	// Untyped marks the absence of a typed value, used for default values
	// that carry no meaningful payload.
	Untyped ValueType = iota
	Long
	Double
	LongArray
	DoubleArray
	FloatArray
)

// String renders a ValueType for logs and error messages.
func (vt ValueType) String() string {
	switch vt {
	case Untyped:
		return "untyped"
	case Long:
		return "long"
	case Double:
		return "double"
	case LongArray:
		return "long[]"
	case DoubleArray:
		return "double[]"
	case FloatArray:
		return "float[]"
	default:
		return fmt.Sprintf("valuetype(%d)", int(vt))
	}
}

// Value is a boxed single value or small array, used for relationship
// property defaults and graph-level properties (which are not columnar —
// one value for the whole graph, not one per node/edge).
type Value struct {
	Type         ValueType
	LongVal      int64
	DoubleVal    float64
	LongArrayVal []int64
	DoubleArr    []float64
	FloatArr     []float32
}

// LongValue boxes an i64 as a Value.
func LongValue(v int64) Value { return Value{Type: Long, LongVal: v} }

// DoubleValue boxes an f64 as a Value.
func DoubleValue(v float64) Value { return Value{Type: Double, DoubleVal: v} }

// LongArrayValue boxes a []int64 as a Value.
func LongArrayValue(v []int64) Value { return Value{Type: LongArray, LongArrayVal: v} }

// DoubleArrayValue boxes a []float64 as a Value.
func DoubleArrayValue(v []float64) Value { return Value{Type: DoubleArray, DoubleArr: v} }

// FloatArrayValue boxes a []float32 as a Value.
func FloatArrayValue(v []float32) Value { return Value{Type: FloatArray, FloatArr: v} }

// PropertyState distinguishes relationship properties materialized only
// for the lifetime of a computation (Transient) from those persisted on
// the graph store (Persistent).
type PropertyState int

const (
	Transient PropertyState = iota
	Persistent
)

// Aggregation is the strategy used to combine multiple relationship
// property values observed between the same ordered pair of nodes.
// Count is the only aggregation legal with the wildcard property key "*".
type Aggregation int

const (
	AggregationNone Aggregation = iota
	AggregationSum
	AggregationMin
	AggregationMax
	AggregationSingle
	AggregationCount
)

// WildcardKey is the reserved relationship property key meaning "count
// edges regardless of any specific property"; legal only with
// AggregationCount.
const WildcardKey = "*"
