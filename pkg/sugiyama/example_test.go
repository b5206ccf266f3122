package sugiyama_test

import (
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

func ExampleEngine_Layout() {
	// app depends on lib and directly on core, which lib also uses.
	eng := sugiyama.Default[string]()
	res := eng.Layout(
		[]string{"app", "lib", "core"},
		[]sugiyama.Edge[string]{
			{From: "app", To: "lib"},
			{From: "lib", To: "core"},
			{From: "app", To: "core"},
		},
	)

	fmt.Println("app:", res.Positions["app"])
	fmt.Println("lib:", res.Positions["lib"])
	fmt.Println("core:", res.Positions["core"])
	fmt.Println("app->core:", res.Routes[sugiyama.Edge[string]{From: "app", To: "core"}])
	// Output:
	// app: {75 0}
	// lib: {0 130}
	// core: {75 260}
	// app->core: [{75 0} {150 130} {75 260}]
}

func ExampleEngine_Layout_cycle() {
	eng := sugiyama.Default[int]()
	res := eng.Layout([]int{1, 2}, []sugiyama.Edge[int]{{From: 1, To: 2}, {From: 2, To: 1}})

	fmt.Println("reversed:", res.Reversed)
	fmt.Println("2->1:", res.Routes[sugiyama.Edge[int]{From: 2, To: 1}])
	// Output:
	// reversed: [{2 1}]
	// 2->1: [{0 130} {0 0}]
}
