package sugiyama

import (
	"slices"
	"testing"
)

func TestBreakCycles_NoCycles(t *testing.T) {
	nodes := []string{"a", "b", "c"}
	edges := []Edge[string]{{"a", "b"}, {"b", "c"}}

	acyclic, reversed := breakCycles(nodes, edges)

	if len(reversed) != 0 {
		t.Errorf("breakCycles() reversed %v, want none", reversed)
	}
	if !slices.Equal(acyclic, edges) {
		t.Errorf("acyclic = %v, want %v", acyclic, edges)
	}
}

func TestBreakCycles_SimpleCycle(t *testing.T) {
	acyclic, reversed := breakCycles([]string{"a", "b"}, []Edge[string]{{"a", "b"}, {"b", "a"}})

	if want := []Edge[string]{{"b", "a"}}; !slices.Equal(reversed, want) {
		t.Errorf("reversed = %v, want %v", reversed, want)
	}
	// b->a flips onto a->b and collapses.
	if want := []Edge[string]{{"a", "b"}}; !slices.Equal(acyclic, want) {
		t.Errorf("acyclic = %v, want %v", acyclic, want)
	}
}

func TestBreakCycles_TriangleCycle(t *testing.T) {
	acyclic, reversed := breakCycles(
		[]string{"a", "b", "c"},
		[]Edge[string]{{"a", "b"}, {"b", "c"}, {"c", "a"}},
	)

	if want := []Edge[string]{{"c", "a"}}; !slices.Equal(reversed, want) {
		t.Errorf("reversed = %v, want %v", reversed, want)
	}
	if want := []Edge[string]{{"a", "b"}, {"b", "c"}, {"a", "c"}}; !slices.Equal(acyclic, want) {
		t.Errorf("acyclic = %v, want %v", acyclic, want)
	}
}

func TestBreakCycles_StartsFromInputOrder(t *testing.T) {
	// Starting at b instead of a makes a->b the back edge.
	_, reversed := breakCycles([]string{"b", "a"}, []Edge[string]{{"a", "b"}, {"b", "a"}})

	if want := []Edge[string]{{"a", "b"}}; !slices.Equal(reversed, want) {
		t.Errorf("reversed = %v, want %v", reversed, want)
	}
}

func TestBreakCycles_MultipleCycles(t *testing.T) {
	_, reversed := breakCycles(
		[]string{"a", "b", "c", "d"},
		[]Edge[string]{{"a", "b"}, {"b", "a"}, {"c", "d"}, {"d", "c"}},
	)

	if len(reversed) != 2 {
		t.Errorf("reversed %d edges, want 2", len(reversed))
	}
}

func TestBreakCycles_SelfLoop(t *testing.T) {
	acyclic, reversed := breakCycles([]string{"a"}, []Edge[string]{{"a", "a"}})

	if want := []Edge[string]{{"a", "a"}}; !slices.Equal(reversed, want) {
		t.Errorf("reversed = %v, want %v", reversed, want)
	}
	if want := []Edge[string]{{"a", "a"}}; !slices.Equal(acyclic, want) {
		t.Errorf("acyclic = %v, want %v", acyclic, want)
	}
}

func TestBreakCycles_DiamondNoCycle(t *testing.T) {
	//   a
	//  / \
	// b   c
	//  \ /
	//   d
	_, reversed := breakCycles(
		[]string{"a", "b", "c", "d"},
		[]Edge[string]{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
	)

	if len(reversed) != 0 {
		t.Errorf("reversed = %v, want none", reversed)
	}
}

func TestBreakCycles_ResultIsAcyclic(t *testing.T) {
	nodes := []string{"a", "b", "c", "d"}
	edges := []Edge[string]{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "b"}, {"d", "a"}}

	acyclic, _ := breakCycles(nodes, edges)

	if _, again := breakCycles(nodes, acyclic); len(again) != 0 {
		t.Errorf("graph still has cycles after breakCycles(): %v", again)
	}
}

func TestBreakCycles_DeepChain(t *testing.T) {
	const n = 100000
	nodes := make([]int, n)
	edges := make([]Edge[int], 0, n)
	for i := range nodes {
		nodes[i] = i
		if i > 0 {
			edges = append(edges, Edge[int]{i - 1, i})
		}
	}
	edges = append(edges, Edge[int]{n - 1, 0})

	_, reversed := breakCycles(nodes, edges)

	if want := []Edge[int]{{n - 1, 0}}; !slices.Equal(reversed, want) {
		t.Errorf("reversed = %v, want %v", reversed, want)
	}
}

func TestBreakCycles_EmptyGraph(t *testing.T) {
	acyclic, reversed := breakCycles[string](nil, nil)

	if len(acyclic) != 0 || len(reversed) != 0 {
		t.Errorf("breakCycles(nil) = %v, %v", acyclic, reversed)
	}
}
