package graphstore

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/properties"
	"github.com/katalvlaran/graphds/topology"
)

// Capabilities describes optional features a Store instance supports.
// Kept as an open feature map rather than a fixed struct since the spec
// does not enumerate concrete flags; see DESIGN.md for this Open Question
// resolution.
type Capabilities struct {
	Features map[string]bool
}

// Has reports whether feature is set.
func (c Capabilities) Has(feature string) bool { return c.Features[feature] }

// DeleteResult is returned by DeleteRelationships.
type DeleteResult struct {
	RemovedCount int64
	Timestamp    time.Time
}

// Store is the single-writer owner of a graph's id map, per-type
// topologies, and property stores. mu guards every field below; readers
// take RLock, mutators take Lock. Reads never block on other reads.
type Store struct {
	mu sync.RWMutex

	ids       *idmap.IDMap
	nodeCount int64

	labelBits map[properties.Label]*bitset.BitSet

	types map[string]*topology.Topology

	props *properties.Store

	capabilities Capabilities
	dbMetadata   map[string]string

	createdAt  time.Time
	modifiedAt time.Time

	logger *zap.Logger
}

// New creates a Store over an already-built id map. dbMetadata and logger
// may be nil; a nil logger disables logging (zap.NewNop() is substituted).
func New(ids *idmap.IDMap, dbMetadata map[string]string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now()
	return &Store{
		ids:        ids,
		nodeCount:  ids.NodeCount(),
		labelBits:  make(map[properties.Label]*bitset.BitSet),
		types:      make(map[string]*topology.Topology),
		props:      properties.NewStore(ids.NodeCount()),
		dbMetadata: dbMetadata,
		createdAt:  now,
		modifiedAt: now,
		logger:     logger,
	}
}

func (s *Store) touch() { s.modifiedAt = time.Now() }

// IDMap returns the store's id map.
func (s *Store) IDMap() *idmap.IDMap { return s.ids }

// NodeCount returns the total number of mapped nodes in the store.
func (s *Store) NodeCount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodeCount
}

// Capabilities returns the store's capabilities descriptor.
func (s *Store) Capabilities() Capabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capabilities
}

// SetCapabilities replaces the store's capabilities descriptor.
func (s *Store) SetCapabilities(c Capabilities) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capabilities = c
	s.touch()
}

// DatabaseMetadata returns a copy of the store's free-form metadata map.
func (s *Store) DatabaseMetadata() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.dbMetadata))
	for k, v := range s.dbMetadata {
		out[k] = v
	}
	return out
}

// CreationTimestamp returns when the store was constructed.
func (s *Store) CreationTimestamp() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createdAt
}

// ModificationTimestamp returns the last time a mutator completed.
func (s *Store) ModificationTimestamp() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modifiedAt
}

// --- Labels -----------------------------------------------------------

// AddLabel registers label with no members, a no-op if already registered.
func (s *Store) AddLabel(label properties.Label) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.labelBits[label]; ok {
		return
	}
	s.labelBits[label] = bitset.New(uint(s.nodeCount))
	s.touch()
}

// AssignLabel marks node as having label, registering label first if
// necessary. node must be a valid mapped id.
func (s *Store) AssignLabel(label properties.Label, node int64) error {
	if node < 0 || node >= s.nodeCount {
		return gdserrors.ErrIndexOutOfRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bs, ok := s.labelBits[label]
	if !ok {
		bs = bitset.New(uint(s.nodeCount))
		s.labelBits[label] = bs
	}
	bs.Set(uint(node))
	s.touch()
	return nil
}

// HasLabel reports whether node carries label.
func (s *Store) HasLabel(label properties.Label, node int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bs, ok := s.labelBits[label]
	if !ok || node < 0 || node >= s.nodeCount {
		return false
	}
	return bs.Test(uint(node))
}

// NodeCountForLabel returns the number of nodes carrying label, or
// (0, ErrLabelNotFound) if label was never registered.
func (s *Store) NodeCountForLabel(label properties.Label) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bs, ok := s.labelBits[label]
	if !ok {
		return 0, gdserrors.ErrLabelNotFound
	}
	return int64(bs.Count()), nil
}

// Labels returns every registered label, sorted.
func (s *Store) Labels() []properties.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]properties.Label, 0, len(s.labelBits))
	for l := range s.labelBits {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- Relationship types -------------------------------------------------

// AddRelationshipType registers topo under relType. topo's node count must
// match the store's node count.
func (s *Store) AddRelationshipType(relType string, topo *topology.Topology) error {
	if relType == "" {
		return gdserrors.ErrEmptyInput
	}
	if topo.NodeCount() != s.nodeCount {
		return fmt.Errorf("%w: topology for %q has %d nodes, store has %d", gdserrors.ErrSizeMismatch, relType, topo.NodeCount(), s.nodeCount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[relType] = topo
	s.touch()
	return nil
}

// Types returns every registered relationship type, sorted.
func (s *Store) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.types))
	for t := range s.types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// HasType reports whether relType is registered.
func (s *Store) HasType(relType string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.types[relType]
	return ok
}

// Topology returns relType's Topology, or (nil, false).
func (s *Store) Topology(relType string) (*topology.Topology, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.types[relType]
	return t, ok
}

// CountForType returns relType's relationship count, or
// (0, ErrTypeNotFound).
func (s *Store) CountForType(relType string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.types[relType]
	if !ok {
		return 0, gdserrors.ErrTypeNotFound
	}
	return t.RelationshipCount(), nil
}

// Count returns the total relationship count across every registered type.
func (s *Store) Count() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, t := range s.types {
		total += t.RelationshipCount()
	}
	return total
}

// InverseIndexedTypes returns the sorted subset of registered types whose
// topology carries an inverse index.
func (s *Store) InverseIndexedTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for t, topo := range s.types {
		if topo.IsInverseIndexed() {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// DeleteRelationships atomically drops relType's topology and every
// relationship property registered for it.
func (s *Store) DeleteRelationships(relType string) (DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	topo, ok := s.types[relType]
	if !ok {
		return DeleteResult{}, gdserrors.ErrTypeNotFound
	}
	removed := topo.RelationshipCount()
	delete(s.types, relType)
	s.props.Relationship.RemoveRelationshipType(relType)
	s.touch()
	s.logger.Info("deleted relationship type", zap.String("type", relType), zap.Int64("removed", removed))
	return DeleteResult{RemovedCount: removed, Timestamp: s.modifiedAt}, nil
}

// --- Properties (thin, locked pass-through to properties.Store) --------

// Properties exposes the store's aggregated property stores for direct use
// by graphview and Pregel; callers that mutate through it while other
// goroutines call store mutators must hold no expectation of atomicity
// beyond what properties.Store itself documents — the store's own
// AddNodeProperty/AddRelationshipProperty/AddGraphProperty wrappers below
// are the synchronized entry points.
func (s *Store) Properties() *properties.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props
}

// AddNodeProperty registers a node property column under the store's lock.
func (s *Store) AddNodeProperty(labels []properties.Label, key string, col *properties.Column) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.props.Node.AddNodeProperty(labels, key, col); err != nil {
		return err
	}
	s.touch()
	return nil
}

// RemoveNodeProperty drops a node property under the store's lock.
func (s *Store) RemoveNodeProperty(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.Node.RemoveNodeProperty(key)
	s.touch()
}

// AddRelationshipProperty registers a relationship property column under
// the store's lock, validating against relType's current edge count.
func (s *Store) AddRelationshipProperty(
	relType, key string,
	col *properties.Column,
	def properties.Value,
	state properties.PropertyState,
	aggregation properties.Aggregation,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	topo, ok := s.types[relType]
	if !ok {
		return gdserrors.ErrTypeNotFound
	}
	if err := s.props.Relationship.AddRelationshipProperty(relType, key, col, def, state, aggregation, topo.RelationshipCount()); err != nil {
		return err
	}
	s.touch()
	return nil
}

// RemoveRelationshipProperty drops a relationship property under the
// store's lock.
func (s *Store) RemoveRelationshipProperty(relType, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.Relationship.RemoveRelationshipProperty(relType, key)
	s.touch()
}

// AddGraphProperty sets a graph-level property under the store's lock.
func (s *Store) AddGraphProperty(key string, v properties.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.Graph.AddGraphProperty(key, v)
	s.touch()
}

// RemoveGraphProperty drops a graph-level property under the store's lock.
func (s *Store) RemoveGraphProperty(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.Graph.RemoveGraphProperty(key)
	s.touch()
}

// HasProperty reports whether key exists at any level, searched in the
// fixed {graph, node, relationship} order.
func (s *Store) HasProperty(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.HasProperty(key)
}
