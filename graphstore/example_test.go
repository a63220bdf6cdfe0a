package graphstore_test

import (
	"fmt"

	"github.com/katalvlaran/graphds/graphstore"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/topology"
)

func ExampleStore_AssignLabel() {
	b := idmap.NewBuilder(1)
	b.Add(100)
	b.Add(200)
	ids := b.Build()

	store := graphstore.New(ids, nil, nil)
	store.AddLabel("Person")
	_ = store.AssignLabel("Person", 0)

	fmt.Println(store.HasLabel("Person", 0))
	fmt.Println(store.HasLabel("Person", 1))

	adj := [][]int64{{1}, {}}
	topo, _ := topology.NewFromAdjacency(adj, nil)
	_ = store.AddRelationshipType("KNOWS", topo)
	fmt.Println(store.Count())

	// Output:
	// true
	// false
	// 1
}
