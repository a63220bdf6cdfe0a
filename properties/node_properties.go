package properties

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphds/gdserrors"
)

// Label is an interned node-label tag.
type Label string

// NodePropertyStore holds node-property columns, each optionally scoped to
// a subset of labels, plus the reverse index from label to the keys
// defined on it.
type NodePropertyStore struct {
	nodeCount int64
	columns   map[string]*Column
	labelsOf  map[string][]Label
	keysOf    map[Label]map[string]struct{}
}

// NewNodePropertyStore creates an empty store for a graph of nodeCount
// nodes; every column attached later must have exactly this length.
func NewNodePropertyStore(nodeCount int64) *NodePropertyStore {
	return &NodePropertyStore{
		nodeCount: nodeCount,
		columns:   make(map[string]*Column),
		labelsOf:  make(map[string][]Label),
		keysOf:    make(map[Label]map[string]struct{}),
	}
}

// AddNodeProperty registers col under key, scoped to labels (empty means
// "every label"). Fails if col's length isn't the store's node count, or if
// key is already registered with a different ValueType.
func (s *NodePropertyStore) AddNodeProperty(labels []Label, key string, col *Column) error {
	if key == "" {
		return gdserrors.ErrEmptyInput
	}
	if col.Len() != s.nodeCount {
		return fmt.Errorf("%w: node property %q has length %d, node count is %d", gdserrors.ErrSizeMismatch, key, col.Len(), s.nodeCount)
	}
	if existing, ok := s.columns[key]; ok && existing.Type() != col.Type() {
		return fmt.Errorf("%w: node property %q already exists as %s", gdserrors.ErrPropertyConflict, key, existing.Type())
	}

	s.columns[key] = col
	s.labelsOf[key] = append([]Label(nil), labels...)
	for _, l := range labels {
		if s.keysOf[l] == nil {
			s.keysOf[l] = make(map[string]struct{})
		}
		s.keysOf[l][key] = struct{}{}
	}
	return nil
}

// RemoveNodeProperty drops key everywhere: the column and every label
// association.
func (s *NodePropertyStore) RemoveNodeProperty(key string) {
	labels := s.labelsOf[key]
	for _, l := range labels {
		delete(s.keysOf[l], key)
	}
	delete(s.labelsOf, key)
	delete(s.columns, key)
}

// HasNodeProperty reports whether key has a registered column.
func (s *NodePropertyStore) HasNodeProperty(key string) bool {
	_, ok := s.columns[key]
	return ok
}

// PropertyType returns key's ValueType, or (Untyped, false) if unknown.
func (s *NodePropertyStore) PropertyType(key string) (ValueType, bool) {
	c, ok := s.columns[key]
	if !ok {
		return Untyped, false
	}
	return c.Type(), true
}

// PropertyValues returns key's backing Column, or (nil, false) if unknown.
func (s *NodePropertyStore) PropertyValues(key string) (*Column, bool) {
	c, ok := s.columns[key]
	return c, ok
}

// LabelsFor returns the labels key is scoped to (empty slice means "every
// label").
func (s *NodePropertyStore) LabelsFor(key string) []Label { return s.labelsOf[key] }

// KeysForLabel returns the sorted property keys scoped to label.
func (s *NodePropertyStore) KeysForLabel(label Label) []string {
	set := s.keysOf[label]
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Keys returns every registered node property key, sorted.
func (s *NodePropertyStore) Keys() []string {
	out := make([]string, 0, len(s.columns))
	for k := range s.columns {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
