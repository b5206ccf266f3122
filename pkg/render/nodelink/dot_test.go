package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

func longEdgeLayout() graph.Layout {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b", Label: "Bee"}, {ID: "c"}},
		Edges: []graph.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "a", To: "c"}, {From: "c", To: "a"}},
	}
	opts := sugiyama.DefaultOptions()
	res := sugiyama.New[string](opts, nil).Layout(g.NodeIDs(), g.EdgeList())
	return graph.FromResult(g, res, opts)
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(longEdgeLayout(), Options{})

	tests := []struct {
		name string
		want string
	}{
		{"Header", "digraph G {"},
		{"Engine", "layout=neato;"},
		{"NodeSize", "width=1.3888888888888888, height=0.6944444444444444"},
		{"PinnedTop", `"a" [label="a", pos="`},
		{"Label", `label="Bee"`},
		{"BendPoint", `shape=point`},
		{"ArrowOnlyOnLastHop", "arrowhead=none"},
		{"ReversedDashed", "style=dashed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT missing %q:\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOT_FlipsY(t *testing.T) {
	l := graph.Layout{
		Options: sugiyama.Options{NodeWidth: 72, NodeHeight: 72, LayerSpacing: 72, NodeSpacing: 72},
		Width:   72,
		Height:  216,
		Nodes: []graph.PlacedNode{
			{ID: "top", X: 0, Y: 0},
			{ID: "bottom", X: 0, Y: 144, Layer: 1},
		},
		Edges: []graph.Route{{From: "top", To: "bottom", Points: []sugiyama.Point{{X: 36, Y: 36}, {X: 36, Y: 180}}}},
	}
	dot := ToDOT(l, Options{})

	for _, want := range []string{
		`"top" [label="top", pos="0.5,2.5!"]`,
		`"bottom" [label="bottom", pos="0.5,0.5!"]`,
		`"top" -> "bottom" [];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "__bend") {
		t.Error("straight edge should not get bend points")
	}
}

func TestToDOT_BendNamesAvoidNodeIDs(t *testing.T) {
	l := graph.Layout{
		Options: sugiyama.DefaultOptions(),
		Height:  390,
		Nodes: []graph.PlacedNode{
			{ID: "a"},
			{ID: "__bend_0_0", Y: 260, Layer: 2},
		},
		Edges: []graph.Route{{From: "a", To: "__bend_0_0", Points: []sugiyama.Point{{X: 50, Y: 25}, {X: 150, Y: 155}, {X: 50, Y: 285}}}},
	}
	dot := ToDOT(l, Options{})

	for _, want := range []string{
		`"___bend_0_0" [shape=point`,
		`"a" -> "___bend_0_0" [arrowhead=none];`,
		`"___bend_0_0" -> "__bend_0_0" [];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if n := strings.Count(dot, `"__bend_0_0" [label=`); n != 1 {
		t.Errorf("node __bend_0_0 declared %d times, want 1:\n%s", n, dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(longEdgeLayout(), Options{Detailed: true})
	if !strings.Contains(dot, `label="c\nlayer: 2"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOT_SelfLoop(t *testing.T) {
	l := graph.Layout{
		Options: sugiyama.DefaultOptions(),
		Nodes:   []graph.PlacedNode{{ID: "x"}},
		Edges:   []graph.Route{{From: "x", To: "x", Points: []sugiyama.Point{{}, {}}}},
	}
	if dot := ToDOT(l, Options{}); !strings.Contains(dot, `"x" -> "x" [];`) {
		t.Errorf("self-loop missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
}
