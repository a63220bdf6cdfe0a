package idmap_test

import (
	"fmt"

	"github.com/katalvlaran/graphds/idmap"
)

func ExampleBuilder() {
	b := idmap.NewBuilder(4)
	ids := []int64{100, 200, 100}
	for _, o := range ids {
		fmt.Print(b.Add(o), " ")
	}
	m := b.Build()
	fmt.Println()
	fmt.Println(m.ToMapped(100), m.ToMapped(999))
	// Output:
	// 0 1 -1
	// 0 -1
}
