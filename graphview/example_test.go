package graphview_test

import (
	"fmt"

	"github.com/katalvlaran/graphds/graphstore"
	"github.com/katalvlaran/graphds/graphview"
	"github.com/katalvlaran/graphds/idmap"
	"github.com/katalvlaran/graphds/topology"
)

func ExampleNew() {
	b := idmap.NewBuilder(1)
	for i := int64(0); i < 3; i++ {
		b.Add(i)
	}
	ids := b.Build()
	store := graphstore.New(ids, nil, nil)

	knows, _ := topology.NewFromAdjacency([][]int64{{1}, {2}, {}}, nil)
	_ = store.AddRelationshipType("KNOWS", knows)
	worksAt, _ := topology.NewFromAdjacency([][]int64{{}, {}, {0}}, nil)
	_ = store.AddRelationshipType("WORKS_AT", worksAt)

	v, _ := graphview.New(store, []string{"KNOWS"}, nil, graphview.Forward)
	fmt.Println(v.RelationshipCount())

	var neighbors []int64
	v.ForEachNeighbor(0, func(_, tgt int64) bool {
		neighbors = append(neighbors, tgt)
		return true
	})
	fmt.Println(neighbors)

	// Output:
	// 2
	// [1]
}
