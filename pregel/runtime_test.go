package pregel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphds/gdserrors"
	"github.com/katalvlaran/graphds/graphstore"
	"github.com/katalvlaran/graphds/graphview"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/properties"
	"github.com/katalvlaran/graphds/topology"
)

func fourCycleView(t *testing.T) *graphview.View {
	t.Helper()
	b := idmap.NewBuilder(1)
	for i := int64(0); i < 4; i++ {
		b.Add(i)
	}
	ids := b.Build()
	store := graphstore.New(ids, nil, nil)

	topo, err := topology.NewFromAdjacency(
		[][]int64{{1}, {2}, {3}, {0}},
		[][]int64{{3}, {0}, {1}, {2}},
	)
	require.NoError(t, err)
	require.NoError(t, store.AddRelationshipType("NEXT", topo))

	v, err := graphview.New(store, []string{"NEXT"}, nil, graphview.Forward)
	require.NoError(t, err)
	return v
}

// diffusionComputation is the toy propagation from the convergence
// scenario: each vertex starts at node id + 1, averages its own value with
// whatever it received last superstep, and forwards its post-average value
// divided by out-degree to every neighbor.
type diffusionComputation struct{}

func (diffusionComputation) Schema() Schema {
	return Schema{"value": properties.Double}
}

func (diffusionComputation) Init(ctx *InitContext) {
	ctx.SetDouble("value", float64(ctx.Node()+1))
}

func (diffusionComputation) Compute(ctx *ComputeContext, messages *MessageIterator) {
	current := ctx.GetDouble("value")
	var sum float64
	var count int
	for messages.Next() {
		sum += messages.Current().Value
		count++
	}
	next := current
	if count > 0 {
		next = (current + sum) / float64(1+count)
	}
	ctx.SetDouble("value", next)
	ctx.SendToNeighbors(next / float64(ctx.Degree()))
}

func TestRuntime_DiffusionConvergesTowardUniform(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, diffusionComputation{}, Config{MaxIterations: 10, Concurrency: 2}, nil)

	supersteps, err := rt.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 10, supersteps)

	values := make([]float64, 4)
	var mean float64
	for i := int64(0); i < 4; i++ {
		values[i] = rt.Values().GetDouble("value", i)
		mean += values[i]
	}
	mean /= 4
	for i, v := range values {
		assert.InDelta(t, mean, v, 0.2, "vertex %d did not converge toward the uniform mean", i)
	}
}

// haltImmediatelyComputation votes every vertex to halt on its first
// compute call without ever sending a message, exercising the pure
// vote-to-halt convergence path.
type haltImmediatelyComputation struct{}

func (haltImmediatelyComputation) Schema() Schema { return Schema{} }

func (haltImmediatelyComputation) Init(*InitContext) {}

func (haltImmediatelyComputation) Compute(ctx *ComputeContext, _ *MessageIterator) {
	ctx.VoteToHalt()
}

func TestRuntime_ConvergesOnceEveryVertexVotesToHalt(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, haltImmediatelyComputation{}, Config{MaxIterations: 1_000_000, Concurrency: 1}, nil)

	supersteps, err := rt.Run(context.Background())
	require.NoError(t, err)
	// Superstep 0 is Init (no vote), superstep 1 every vertex halts and
	// sends nothing; the loop must stop right after, not run to the
	// million-iteration ceiling.
	assert.EqualValues(t, 2, supersteps)
	assert.True(t, rt.voteBits.AllHalted())
}

// cancelAfterFirstSuperstepComputation flips an external flag once it
// observes superstep 1 starting, simulating an operator-triggered
// cancellation mid-run.
type cancelAfterFirstSuperstepComputation struct {
	flag *atomic.Bool
}

func (c cancelAfterFirstSuperstepComputation) Schema() Schema { return Schema{} }

func (cancelAfterFirstSuperstepComputation) Init(*InitContext) {}

func (c cancelAfterFirstSuperstepComputation) Compute(ctx *ComputeContext, _ *MessageIterator) {
	if ctx.Superstep() == 1 {
		c.flag.Store(true)
	}
}

func TestRuntime_CancellationStopsWithinOneSuperstep(t *testing.T) {
	view := fourCycleView(t)
	var flag atomic.Bool
	comp := cancelAfterFirstSuperstepComputation{flag: &flag}
	rt := New(view, comp, Config{MaxIterations: 1_000_000, Concurrency: 1}, &flag)

	supersteps, err := rt.Run(context.Background())
	assert.ErrorIs(t, err, gdserrors.ErrCancelled)
	assert.LessOrEqual(t, supersteps, int64(2))
}

// panicComputation always panics in Compute, exercising the runtime's
// panic-containment-at-the-task-boundary contract.
type panicComputation struct{}

func (panicComputation) Schema() Schema { return Schema{} }

func (panicComputation) Init(*InitContext) {}

func (panicComputation) Compute(*ComputeContext, *MessageIterator) {
	panic("boom")
}

func TestRuntime_VertexPanicSurfacesAlgorithmFailed(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, panicComputation{}, Config{MaxIterations: 5, Concurrency: 2}, nil)

	_, err := rt.Run(context.Background())
	assert.ErrorIs(t, err, gdserrors.ErrAlgorithmFailed)
}

// masterTerminateComputation requests termination from master-compute on
// its very first call, regardless of vote/message state.
type masterTerminateComputation struct{}

func (masterTerminateComputation) Schema() Schema { return Schema{} }
func (masterTerminateComputation) Init(*InitContext) {}
func (masterTerminateComputation) Compute(*ComputeContext, *MessageIterator) {}
func (masterTerminateComputation) MasterCompute(*MasterContext) bool { return true }

func TestRuntime_MasterComputeCanForceTermination(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, masterTerminateComputation{}, Config{MaxIterations: 1_000_000}, nil)

	supersteps, err := rt.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, supersteps)
}

func TestRuntime_MaxIterationsBoundsSuperstepsEvenWithoutConvergence(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, diffusionComputation{}, Config{MaxIterations: 1}, nil)
	supersteps, err := rt.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, supersteps)
}

func TestRuntime_ZeroMaxIterationsRunsNoSupersteps(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, diffusionComputation{}, Config{MaxIterations: 0}, nil)

	supersteps, err := rt.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, supersteps)

	// Init never ran: every vertex's "value" column is still at its
	// NodeValues zero default, not the node+1 seed Init would have set.
	for i := int64(0); i < 4; i++ {
		assert.Zero(t, rt.Values().GetDouble("value", i))
	}
}

func TestRuntime_NegativeMaxIterationsIsUnbounded(t *testing.T) {
	view := fourCycleView(t)
	rt := New(view, haltImmediatelyComputation{}, Config{MaxIterations: -1, Concurrency: 1}, nil)

	supersteps, err := rt.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, supersteps)
}

func TestNodeValues_TypeMismatchPanics(t *testing.T) {
	nv := NewNodeValues(2, Schema{"x": properties.Long})
	assert.Panics(t, func() { nv.GetDouble("x", 0) })
}

func TestVoteBits_ClearReactivates(t *testing.T) {
	vb := NewVoteBits(3)
	vb.Vote(0)
	vb.Vote(1)
	vb.Vote(2)
	assert.True(t, vb.AllHalted())
	vb.Clear(1)
	assert.False(t, vb.AllHalted())
}

func TestMessenger_AdvanceMakesOutboxTheNewInbox(t *testing.T) {
	m := NewMessenger(2, false)
	m.Send(0, 1, 42)
	assert.False(t, m.HasMessages(1), "message must not be visible before Advance")
	m.Advance()
	assert.True(t, m.HasMessages(1))
	it := m.Messages(1)
	require.True(t, it.Next())
	assert.Equal(t, 42.0, it.Current().Value)
	assert.False(t, it.Next())
}

func TestMessenger_TrackSenderAttachesSource(t *testing.T) {
	m := NewMessenger(2, true)
	m.Send(0, 1, 1.0)
	m.Advance()
	it := m.Messages(1)
	require.True(t, it.Next())
	assert.EqualValues(t, 0, it.Current().Source)
}

func TestMessenger_TrackSenderDisabledLeavesSourceUnset(t *testing.T) {
	m := NewMessenger(2, false)
	m.Send(0, 1, 1.0)
	m.Advance()
	it := m.Messages(1)
	require.True(t, it.Next())
	assert.EqualValues(t, -1, it.Current().Source)
}
