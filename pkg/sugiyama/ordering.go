package sugiyama

import (
	"cmp"
	"slices"
)

// reduceCrossings reorders nodes within their layers using the barycenter
// heuristic. Even iterations sweep downward (ordering each layer by its
// parents in the layer above), odd iterations sweep upward (ordering by
// children in the layer below). There is no convergence check.
//
// Only positions change; layer membership never does. Nodes without
// neighbours in the reference layer get barycenter -1 and move to the front,
// keeping their relative order.
func reduceCrossings[N comparable](g *layeredGraph[N], iterations int) {
	for i := 0; i < iterations; i++ {
		if i%2 == 0 {
			for l := 1; l < len(g.layers); l++ {
				g.sortByBarycenter(l, g.pred, l-1)
			}
			continue
		}
		for l := len(g.layers) - 2; l >= 0; l-- {
			g.sortByBarycenter(l, g.succ, l+1)
		}
	}
}

func (g *layeredGraph[N]) sortByBarycenter(layer int, adj map[vertex[N]][]vertex[N], ref int) {
	row := g.layers[layer]
	bary := make(map[*snode[N]]float64, len(row))
	for _, n := range row {
		sum, count := 0.0, 0
		for _, v := range adj[n.key] {
			m := g.index[v]
			if m.layer != ref {
				continue
			}
			sum += float64(m.pos)
			count++
		}
		if count == 0 {
			bary[n] = -1
		} else {
			bary[n] = sum / float64(count)
		}
	}

	slices.SortStableFunc(row, func(a, b *snode[N]) int {
		if c := cmp.Compare(bary[a], bary[b]); c != 0 {
			return c
		}
		return cmp.Compare(a.pos, b.pos)
	})
	for i, n := range row {
		n.pos = i
	}
}
