package graphview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/graphstore"
	"github.com/katalvlaran/graphds/hugearray"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/properties"
	"github.com/katalvlaran/graphds/topology"
)

func newTestStore(t *testing.T) *graphstore.Store {
	t.Helper()
	b := idmap.NewBuilder(1)
	for i := int64(0); i < 4; i++ {
		b.Add(i)
	}
	ids := b.Build()
	store := graphstore.New(ids, nil, nil)

	// 0 -> 1 -> 2 -> 3, plus a separate WORKS_AT edge 0 -> 3.
	knows, err := topology.NewFromAdjacency(
		[][]int64{{1}, {2}, {3}, {}},
		[][]int64{{}, {0}, {1}, {2}},
	)
	require.NoError(t, err)
	require.NoError(t, store.AddRelationshipType("KNOWS", knows))

	worksAt, err := topology.NewFromAdjacency([][]int64{{3}, {}, {}, {}}, nil)
	require.NoError(t, err)
	require.NoError(t, store.AddRelationshipType("WORKS_AT", worksAt))

	weights := hugearray.NewDouble(3)
	weights.Set(0, 1.5)
	weights.Set(1, 2.5)
	weights.Set(2, 3.5)
	require.NoError(t, store.AddRelationshipProperty("KNOWS", "since", properties.NewDoubleColumn(weights), properties.DoubleValue(0), properties.Persistent, properties.AggregationNone))

	return store
}

func TestView_FilterByType(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS"}, nil, Forward)
	require.NoError(t, err)

	assert.EqualValues(t, 3, v.RelationshipCount())
	assert.True(t, v.Exists(0, 1))
	assert.False(t, v.Exists(0, 3), "WORKS_AT edge must not leak into a KNOWS-only view")
}

func TestView_DegreeAndExists(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS", "WORKS_AT"}, nil, Forward)
	require.NoError(t, err)

	assert.EqualValues(t, 2, v.Degree(0))
	assert.EqualValues(t, 1, v.Degree(1))
	assert.True(t, v.Exists(0, 3))
}

func TestView_ForEachNeighborStopsEarly(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS", "WORKS_AT"}, nil, Forward)
	require.NoError(t, err)

	var seen []int64
	v.ForEachNeighbor(0, func(_, tgt int64) bool {
		seen = append(seen, tgt)
		return false
	})
	assert.Len(t, seen, 1)
}

func TestView_StreamRelationshipsUsesSelectedWeight(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS"}, map[string]string{"KNOWS": "since"}, Forward)
	require.NoError(t, err)

	c := v.StreamRelationships(1, -1)
	require.True(t, c.Next())
	r := c.Current()
	assert.Equal(t, int64(1), r.Source)
	assert.Equal(t, int64(2), r.Target)
	assert.Equal(t, 2.5, r.Weight)
	assert.False(t, c.Next())
}

func TestView_StreamRelationshipsFallbackWeight(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS"}, nil, Forward)
	require.NoError(t, err)

	c := v.StreamRelationships(0, 9)
	require.True(t, c.Next())
	assert.Equal(t, 9.0, c.Current().Weight)
}

func TestView_InverseIndexedCharacteristic(t *testing.T) {
	store := newTestStore(t)

	mixed, err := New(store, []string{"KNOWS", "WORKS_AT"}, nil, Forward)
	require.NoError(t, err)
	assert.False(t, mixed.IsInverseIndexed(), "WORKS_AT has no inverse index")

	pure, err := New(store, []string{"KNOWS"}, nil, Forward)
	require.NoError(t, err)
	assert.True(t, pure.IsInverseIndexed())
}

func TestView_ReverseOrientationRequiresInverseIndex(t *testing.T) {
	store := newTestStore(t)
	_, err := New(store, []string{"WORKS_AT"}, nil, Reverse)
	assert.ErrorIs(t, err, gdserrors.ErrNotInverseIndexed)
}

func TestView_ReverseOrientationTraversal(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS"}, nil, Reverse)
	require.NoError(t, err)

	// Reversed: node 2's "forward" neighbors are its KNOWS predecessors.
	assert.True(t, v.Exists(2, 1))
	assert.False(t, v.Exists(1, 2))
}

func TestView_StreamInverseRelationshipsPanicsWithoutIndex(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"WORKS_AT"}, nil, Forward)
	require.NoError(t, err)

	assert.Panics(t, func() {
		v.StreamInverseRelationships(0, 0)
	})
}

func TestView_ConcurrentCopyIsIndependentSlice(t *testing.T) {
	store := newTestStore(t)
	v, err := New(store, []string{"KNOWS"}, nil, Forward)
	require.NoError(t, err)

	cp := v.ConcurrentCopy()
	require.Len(t, cp.types, len(v.types))
	assert.NotSame(t, &v.types[0], &cp.types[0], "copy must own its own types slice")
	assert.Equal(t, v.RelationshipCount(), cp.RelationshipCount())
	assert.True(t, cp.Exists(0, 1))
}

func TestView_UnknownTypeErrors(t *testing.T) {
	store := newTestStore(t)
	_, err := New(store, []string{"GHOST"}, nil, Forward)
	assert.ErrorIs(t, err, gdserrors.ErrTypeNotFound)
}

func TestView_UnknownWeightPropertyErrors(t *testing.T) {
	store := newTestStore(t)
	_, err := New(store, []string{"KNOWS"}, map[string]string{"KNOWS": "ghost"}, Forward)
	assert.ErrorIs(t, err, gdserrors.ErrPropertyNotFound)
}
