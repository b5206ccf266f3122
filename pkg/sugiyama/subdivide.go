package sugiyama

import "fmt"

// vertex identifies a node of the working graph. Real nodes carry the
// caller's value with dummy == 0; dummy nodes carry a 1-based sequence number
// unique within one layout run. Keeping the two apart in a tagged key means a
// caller node can never collide with a generated one.
type vertex[N comparable] struct {
	node  N
	dummy int
}

func realVertex[N comparable](n N) vertex[N] { return vertex[N]{node: n} }

func (v vertex[N]) isDummy() bool { return v.dummy != 0 }

func (v vertex[N]) String() string {
	if v.isDummy() {
		return fmt.Sprintf("dummy_%d", v.dummy-1)
	}
	return fmt.Sprint(v.node)
}

// snode is a vertex placed in the layered graph.
type snode[N comparable] struct {
	key   vertex[N]
	layer int
	pos   int
}

// layeredGraph is the subdivided working graph of one layout run. Every edge
// connects layer l to layer l+1, except where the layering fallback left an
// edge that does not point downward.
type layeredGraph[N comparable] struct {
	layers  [][]*snode[N]
	index   map[vertex[N]]*snode[N]
	succ    map[vertex[N]][]vertex[N]
	pred    map[vertex[N]][]vertex[N]
	dummies int
}

// buildLayers buckets nodes by layer and replaces every edge spanning more
// than one layer by a chain through fresh dummy vertices. Within a layer,
// real nodes keep input order and dummies follow in creation order.
func buildLayers[N comparable](nodes []N, edges []Edge[N], layerOf map[N]int) *layeredGraph[N] {
	g := &layeredGraph[N]{
		index: make(map[vertex[N]]*snode[N], len(nodes)),
		succ:  make(map[vertex[N]][]vertex[N], len(nodes)),
		pred:  make(map[vertex[N]][]vertex[N], len(nodes)),
	}

	for _, n := range nodes {
		g.add(realVertex(n), layerOf[n])
	}

	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		from, to := realVertex(e.From), realVertex(e.To)
		prev := from
		for layer := layerOf[e.From] + 1; layer < layerOf[e.To]; layer++ {
			g.dummies++
			d := vertex[N]{dummy: g.dummies}
			g.add(d, layer)
			g.link(prev, d)
			prev = d
		}
		g.link(prev, to)
	}
	return g
}

func (g *layeredGraph[N]) add(v vertex[N], layer int) {
	for len(g.layers) <= layer {
		g.layers = append(g.layers, nil)
	}
	n := &snode[N]{key: v, layer: layer, pos: len(g.layers[layer])}
	g.layers[layer] = append(g.layers[layer], n)
	g.index[v] = n
}

func (g *layeredGraph[N]) link(from, to vertex[N]) {
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
}

// order returns the vertices of each layer in position order.
func (g *layeredGraph[N]) order() [][]vertex[N] {
	out := make([][]vertex[N], len(g.layers))
	for l, row := range g.layers {
		out[l] = make([]vertex[N], len(row))
		for _, n := range row {
			out[l][n.pos] = n.key
		}
	}
	return out
}
