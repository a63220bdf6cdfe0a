// Package gdserrors defines the error taxonomy shared by every graphds
// package: hugearray, idmap, topology, properties, graphstore, graphview
// and pregel.
//
// Error policy (mirrors the rest of the corpus):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Call sites attach context with fmt.Errorf("...: %w", Err...).
//   - Every sentinel carries a Kind (see §7 of the design notes) so callers
//     that don't care about the exact sentinel can still branch on class.
package gdserrors

import "errors"

// Kind classifies a graphds error into one of the categories a caller can
// reasonably branch on without enumerating every sentinel.
type Kind int

const (
	// KindInvalidArgument covers size mismatches, empty input, illegal
	// aggregation/property-key combinations.
	KindInvalidArgument Kind = iota
	// KindNotFound covers missing property, type, label, or id.
	KindNotFound
	// KindTypeMismatch covers reading a column as the wrong value type.
	KindTypeMismatch
	// KindCapacity covers paged-array index out of range.
	KindCapacity
	// KindConflict covers adding a property that already exists with an
	// incompatible type or shape.
	KindConflict
	// KindCancelled covers an externally observed termination flag.
	KindCancelled
	// KindInternal covers invariant violations: bugs, not user error.
	KindInternal
)

// String renders a Kind for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindCapacity:
		return "capacity"
	case KindConflict:
		return "conflict"
	case KindCancelled:
		return "cancelled"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a sentinel with an attached Kind. Sentinels below are *Error
// values compared with errors.Is; wrapping with %w preserves both the
// sentinel identity and the Kind.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind reports the classification of this sentinel. Use ErrKind to find
// the Kind of an error that may wrap a sentinel.
func (e *Error) Kind() Kind { return e.kind }

func newSentinel(k Kind, msg string) *Error { return &Error{kind: k, msg: msg} }

// ErrKind walks err's chain and returns the Kind of the first *Error found,
// or (KindInternal, false) if none is present.
func ErrKind(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return KindInternal, false
}

// Sentinels shared across all graphds packages, each carrying one of the
// Kinds above.
var (
	// ErrIndexOutOfRange indicates a paged-array or topology index outside
	// [0, size).
	ErrIndexOutOfRange = newSentinel(KindCapacity, "graphds: index out of range")

	// ErrInvalidArgument is the generic invalid-argument sentinel for
	// validation failures that don't warrant their own named sentinel.
	ErrInvalidArgument = newSentinel(KindInvalidArgument, "graphds: invalid argument")

	// ErrSizeMismatch indicates a property column whose length does not
	// match the node count or the topology's edge count.
	ErrSizeMismatch = newSentinel(KindInvalidArgument, "graphds: size mismatch")

	// ErrEmptyInput indicates a required collection or string argument was
	// empty.
	ErrEmptyInput = newSentinel(KindInvalidArgument, "graphds: empty input")

	// ErrPropertyNotFound indicates a property key with no column at any
	// searched level (graph, node, relationship).
	ErrPropertyNotFound = newSentinel(KindNotFound, "graphds: property not found")

	// ErrTypeNotFound indicates a relationship type with no topology.
	ErrTypeNotFound = newSentinel(KindNotFound, "graphds: relationship type not found")

	// ErrLabelNotFound indicates a node label never registered on the store.
	ErrLabelNotFound = newSentinel(KindNotFound, "graphds: label not found")

	// ErrTypeMismatch indicates a read that would silently lose information
	// (e.g. LongArray column read as Double).
	ErrTypeMismatch = newSentinel(KindTypeMismatch, "graphds: value type mismatch")

	// ErrPropertyConflict indicates a property key already registered with
	// an incompatible type or at a level that forbids redefinition.
	ErrPropertyConflict = newSentinel(KindConflict, "graphds: property already exists with incompatible definition")

	// ErrIllegalAggregation indicates an aggregation strategy illegal for
	// the given property key (only COUNT is legal with the wildcard "*").
	ErrIllegalAggregation = newSentinel(KindInvalidArgument, "graphds: illegal aggregation for property key")

	// ErrCancelled indicates an external termination flag was observed.
	ErrCancelled = newSentinel(KindCancelled, "graphds: computation cancelled")

	// ErrAlgorithmFailed wraps a panic caught at a Pregel task boundary.
	ErrAlgorithmFailed = newSentinel(KindInternal, "graphds: algorithm failed")

	// ErrNotInverseIndexed indicates an inverse-traversal call on a
	// topology or view that was not built with an inverse index.
	ErrNotInverseIndexed = newSentinel(KindInvalidArgument, "graphds: not inverse indexed")

	// ErrImmutable indicates a mutation attempted after build()/freeze.
	ErrImmutable = newSentinel(KindInvalidArgument, "graphds: structure is immutable after build")
)
