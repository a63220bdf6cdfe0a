package properties

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphds/gdserrors"
)

// RelationshipProperty is one (type, key) column plus the metadata the spec
// requires alongside it: the default value used where an edge carries none,
// the transient/persistent state, and the aggregation strategy applied when
// multiple values are observed for the same ordered pair.
type RelationshipProperty struct {
	Column      *Column
	Default     Value
	State       PropertyState
	Aggregation Aggregation
}

type relKey struct {
	relType string
	key     string
}

// RelationshipPropertyStore holds one column per (relationship type,
// property key) pair, aligned 1:1 with that type's topology edge
// enumeration.
type RelationshipPropertyStore struct {
	props map[relKey]*RelationshipProperty
}

// NewRelationshipPropertyStore creates an empty store.
func NewRelationshipPropertyStore() *RelationshipPropertyStore {
	return &RelationshipPropertyStore{props: make(map[relKey]*RelationshipProperty)}
}

// AddRelationshipProperty registers col under (relType, key). edgeCount
// must be the edge count of relType's topology; col's length must match it
// exactly. The wildcard key "*" is only legal with AggregationCount.
func (s *RelationshipPropertyStore) AddRelationshipProperty(
	relType, key string,
	col *Column,
	def Value,
	state PropertyState,
	aggregation Aggregation,
	edgeCount int64,
) error {
	if relType == "" || key == "" {
		return gdserrors.ErrEmptyInput
	}
	if key == WildcardKey && aggregation != AggregationCount {
		return fmt.Errorf("%w: wildcard key %q requires AggregationCount", gdserrors.ErrIllegalAggregation, WildcardKey)
	}
	if col.Len() != edgeCount {
		return fmt.Errorf("%w: relationship property %s.%s has length %d, edge count is %d", gdserrors.ErrSizeMismatch, relType, key, col.Len(), edgeCount)
	}

	k := relKey{relType, key}
	if existing, ok := s.props[k]; ok && existing.Column.Type() != col.Type() {
		return fmt.Errorf("%w: relationship property %s.%s already exists as %s", gdserrors.ErrPropertyConflict, relType, key, existing.Column.Type())
	}

	s.props[k] = &RelationshipProperty{Column: col, Default: def, State: state, Aggregation: aggregation}
	return nil
}

// RemoveRelationshipProperty drops (relType, key).
func (s *RelationshipPropertyStore) RemoveRelationshipProperty(relType, key string) {
	delete(s.props, relKey{relType, key})
}

// RemoveRelationshipType drops every property registered for relType, e.g.
// as part of graphstore's delete_relationships.
func (s *RelationshipPropertyStore) RemoveRelationshipType(relType string) (removed int) {
	for k := range s.props {
		if k.relType == relType {
			delete(s.props, k)
			removed++
		}
	}
	return removed
}

// HasRelationshipProperty reports whether (relType, key) is registered.
func (s *RelationshipPropertyStore) HasRelationshipProperty(relType, key string) bool {
	_, ok := s.props[relKey{relType, key}]
	return ok
}

// Get returns the RelationshipProperty for (relType, key), or (nil, false).
func (s *RelationshipPropertyStore) Get(relType, key string) (*RelationshipProperty, bool) {
	p, ok := s.props[relKey{relType, key}]
	return p, ok
}

// PropertyType returns (relType, key)'s ValueType, or (Untyped, false).
func (s *RelationshipPropertyStore) PropertyType(relType, key string) (ValueType, bool) {
	p, ok := s.props[relKey{relType, key}]
	if !ok {
		return Untyped, false
	}
	return p.Column.Type(), true
}

// KeysForType returns the sorted property keys registered for relType.
func (s *RelationshipPropertyStore) KeysForType(relType string) []string {
	var out []string
	for k := range s.props {
		if k.relType == relType {
			out = append(out, k.key)
		}
	}
	sort.Strings(out)
	return out
}
