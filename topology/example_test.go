package topology_test

import (
	"fmt"

	"github.com/katalvlaran/graphds/topology"
)

func ExampleNewFromAdjacency() {
	// 0 -> 1 twice (a pair of parallel edges); 1 has no outgoing targets.
	topo, _ := topology.NewFromAdjacency([][]int64{{1, 1}, {}}, nil)
	fmt.Println(topo.HasParallelEdges(), topo.RelationshipCount(), topo.Degree(0))
	// Output: true 2 2
}
