package sugiyama

import "slices"

// assignCoordinates places every vertex of g, dummies included. Each layer
// is centered horizontally against the widest layer; layer l sits at
// y = l * (LayerSpacing + NodeHeight).
func assignCoordinates[N comparable](g *layeredGraph[N], opts Options) map[vertex[N]]Point {
	maxWidth := 0.0
	for _, row := range g.layers {
		maxWidth = max(maxWidth, layerWidth(len(row), opts))
	}

	points := make(map[vertex[N]]Point, len(g.index))
	for l, row := range g.layers {
		offset := (maxWidth - layerWidth(len(row), opts)) / 2
		y := float64(l) * (opts.LayerSpacing + opts.NodeHeight)
		for _, n := range row {
			points[n.key] = Point{
				X: offset + float64(n.pos)*(opts.NodeWidth+opts.NodeSpacing),
				Y: y,
			}
		}
	}
	return points
}

func layerWidth(count int, opts Options) float64 {
	if count == 0 {
		return 0
	}
	return float64(count)*opts.NodeWidth + float64(count-1)*opts.NodeSpacing
}

// extent returns the width and height of the box enclosing all vertices.
func (g *layeredGraph[N]) extent(opts Options) (width, height float64) {
	for _, row := range g.layers {
		width = max(width, layerWidth(len(row), opts))
	}
	if len(g.layers) > 0 {
		height = float64(len(g.layers)-1)*(opts.LayerSpacing+opts.NodeHeight) + opts.NodeHeight
	}
	return width, height
}

// routeEdges builds one polyline per input edge by following the working
// graph from source to target. Routes of reversed edges are looked up under
// the flipped key and returned back in caller direction. Self-loops route to
// a zero-length segment. An edge with no path is logged and left out.
func (e *Engine[N]) routeEdges(g *layeredGraph[N], points map[vertex[N]]Point, edges, reversed []Edge[N]) map[Edge[N]][]Point {
	flipped := make(map[Edge[N]]bool, len(reversed))
	for _, r := range reversed {
		flipped[r] = true
	}

	routes := make(map[Edge[N]][]Point, len(edges))
	for _, edge := range edges {
		if edge.IsLoop() {
			p := points[realVertex(edge.From)]
			routes[edge] = []Point{p, p}
			continue
		}

		key := edge
		if flipped[edge] {
			key = edge.Reverse()
		}
		path, ok := g.path(key.From, key.To)
		if !ok {
			e.logger.Warn("no route through layered graph", "from", edge.From, "to", edge.To)
			continue
		}

		route := make([]Point, len(path))
		for i, v := range path {
			route[i] = points[v]
		}
		if flipped[edge] {
			slices.Reverse(route)
		}
		routes[edge] = route
	}
	return routes
}

// path finds the vertex sequence from one real node to another by
// breadth-first search. Only dummy vertices may appear between the two
// endpoints, which pins the search to the edge's own subdivision chain.
func (g *layeredGraph[N]) path(from, to N) ([]vertex[N], bool) {
	src, dst := realVertex(from), realVertex(to)
	parent := make(map[vertex[N]]vertex[N])
	seen := map[vertex[N]]bool{src: true}
	queue := []vertex[N]{src}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range g.succ[curr] {
			if next == dst {
				path := []vertex[N]{dst}
				for v := curr; ; v = parent[v] {
					path = append(path, v)
					if v == src {
						break
					}
				}
				slices.Reverse(path)
				return path, true
			}
			if seen[next] || !next.isDummy() {
				continue
			}
			seen[next] = true
			parent[next] = curr
			queue = append(queue, next)
		}
	}
	return nil, false
}
