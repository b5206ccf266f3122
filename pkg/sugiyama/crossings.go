package sugiyama

import "slices"

// crossings returns the total number of edge crossings between consecutive
// layers for the current positions.
func (g *layeredGraph[N]) crossings() int {
	total := 0
	for l := 0; l+1 < len(g.layers); l++ {
		total += g.layerCrossings(l)
	}
	return total
}

// layerCrossings counts crossings between layer l and l+1 using a Fenwick
// tree (binary indexed tree) in O(E log V).
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// which is the number of inversions in the target positions once edges are
// sorted by source position.
func (g *layeredGraph[N]) layerCrossings(l int) int {
	upper, lower := g.layers[l], g.layers[l+1]
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for _, n := range upper {
		for _, child := range g.succ[n.key] {
			if c := g.index[child]; c.layer == l+1 {
				edges = append(edges, edge{n.pos, c.pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, seen := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += seen - lessOrEqual

		seen++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
