package pregel_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphds/graphstore"
	"github.com/katalvlaran/graphds/graphview"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/pregel"
	"github.com/katalvlaran/graphds/properties"
	"github.com/katalvlaran/graphds/topology"
)

// seedPropagationComputation sets every vertex's value to its own mapped
// id at superstep 0, broadcasts that id to its neighbors once at superstep
// 1, then adds whatever it receives into "value" and halts.
type seedPropagationComputation struct{}

func (seedPropagationComputation) Schema() pregel.Schema {
	return pregel.Schema{"value": properties.Long}
}

func (seedPropagationComputation) Init(ctx *pregel.InitContext) {
	ctx.SetLong("value", ctx.Node())
}

func (seedPropagationComputation) Compute(ctx *pregel.ComputeContext, messages *pregel.MessageIterator) {
	if ctx.Superstep() == 1 {
		ctx.SendToNeighbors(float64(ctx.GetLong("value")))
		ctx.VoteToHalt()
		return
	}
	var sum int64
	for messages.Next() {
		sum += int64(messages.Current().Value)
	}
	ctx.SetLong("value", ctx.GetLong("value")+sum)
	ctx.VoteToHalt()
}

func ExampleRuntime_Run() {
	b := idmap.NewBuilder(1)
	b.Add(0)
	b.Add(1)
	b.Add(2)
	ids := b.Build()

	store := graphstore.New(ids, nil, nil)
	topo, _ := topology.NewFromAdjacency([][]int64{{1}, {2}, {}}, nil)
	_ = store.AddRelationshipType("NEXT", topo)

	view, _ := graphview.New(store, []string{"NEXT"}, nil, graphview.Forward)

	rt := pregel.New(view, seedPropagationComputation{}, pregel.Config{MaxIterations: 10}, nil)

	_, err := rt.Run(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(rt.Values().GetLong("value", 1))
	// Output: 1
}
