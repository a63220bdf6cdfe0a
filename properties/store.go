package properties

import "sort"

// Level names which of the three property stores a key lives in.
type Level int

const (
	LevelGraph Level = iota
	LevelNode
	LevelRelationship
)

// Store aggregates the three property stores a GraphStore owns. Lookups
// that don't name a level search in the fixed order {graph, node,
// relationship} and return the first match, per §4.D.
type Store struct {
	Graph        *GraphPropertyStore
	Node         *NodePropertyStore
	Relationship *RelationshipPropertyStore
}

// NewStore creates an aggregated Store over fresh graph/node/relationship
// stores for a graph of nodeCount nodes.
func NewStore(nodeCount int64) *Store {
	return &Store{
		Graph:        NewGraphPropertyStore(),
		Node:         NewNodePropertyStore(nodeCount),
		Relationship: NewRelationshipPropertyStore(),
	}
}

// relationshipTypesWith returns the relationship types (sorted) that define
// key, searched deterministically.
func (s *Store) relationshipTypesWith(key string) []string {
	seen := map[string]struct{}{}
	for k := range s.Relationship.props {
		if k.key == key {
			seen[k.relType] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Resolve finds key using the fixed search order graph -> node ->
// relationship (first matching type, lexicographically) and reports which
// level it was found at. ok is false if key exists nowhere.
func (s *Store) Resolve(key string) (level Level, relType string, ok bool) {
	if s.Graph.HasGraphProperty(key) {
		return LevelGraph, "", true
	}
	if s.Node.HasNodeProperty(key) {
		return LevelNode, "", true
	}
	if types := s.relationshipTypesWith(key); len(types) > 0 {
		return LevelRelationship, types[0], true
	}
	return 0, "", false
}

// HasProperty reports whether key exists at any level.
func (s *Store) HasProperty(key string) bool {
	_, _, ok := s.Resolve(key)
	return ok
}

// PropertyType resolves key via the fixed search order and returns its
// ValueType.
func (s *Store) PropertyType(key string) (ValueType, bool) {
	level, relType, ok := s.Resolve(key)
	if !ok {
		return Untyped, false
	}
	switch level {
	case LevelGraph:
		v, _ := s.Graph.GraphProperty(key)
		return v.Type, true
	case LevelNode:
		return s.Node.PropertyType(key)
	default:
		return s.Relationship.PropertyType(relType, key)
	}
}
