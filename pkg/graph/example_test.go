package graph_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

func ExampleReadGraph() {
	input := `{
		"nodes": [{"id": "app"}, {"id": "core", "label": "Core Library"}],
		"edges": [{"from": "app", "to": "core"}]
	}`

	g, err := graph.ReadGraph(strings.NewReader(input))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, n := range g.Nodes {
		fmt.Println(n.ID, "=", n.DisplayLabel())
	}
	// Output:
	// app = app
	// core = Core Library
}

func ExampleFromResult() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "app"}, {ID: "core"}},
		Edges: []graph.Edge{{From: "app", To: "core"}},
	}
	opts := sugiyama.DefaultOptions()
	res := sugiyama.New[string](opts, nil).Layout(g.NodeIDs(), g.EdgeList())

	l := graph.FromResult(g, res, opts)
	for _, n := range l.Nodes {
		fmt.Printf("%s: layer %d at (%g, %g)\n", n.ID, n.Layer, n.X, n.Y)
	}
	for _, e := range l.Edges {
		fmt.Printf("%s->%s: %v\n", e.From, e.To, e.Points)
	}
	fmt.Printf("%gx%g\n", l.Width, l.Height)
	// Output:
	// app: layer 0 at (0, 0)
	// core: layer 1 at (0, 130)
	// app->core: [{0 0} {0 130}]
	// 100x180
}
