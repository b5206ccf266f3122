package sugiyama

// assignLayers places every node on a layer using longest-path layering.
//
// Sources start at layer 0 and each child lands one below its deepest
// parent. A self-loop counts towards its node's in-degree but is never
// followed, so such a node is never released by the topological pass. Nodes
// the topological pass never reaches are placed by a breadth-first fallback:
// each still-unplaced node, in input order, seeds layer 0 and its unplaced
// successors get parent+1. The fallback never overwrites a layer that is
// already set, so in corner cases an edge may end up within a layer or
// pointing upward.
func assignLayers[N comparable](nodes []N, edges []Edge[N]) map[N]int {
	children := make(map[N][]N, len(nodes))
	inDegree := make(map[N]int, len(nodes))
	for _, e := range edges {
		inDegree[e.To]++
		if !e.IsLoop() {
			children[e.From] = append(children[e.From], e.To)
		}
	}

	layers := make(map[N]int, len(nodes))
	queue := make([]N, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n] == 0 {
			layers[n] = 0
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range children[curr] {
			if layer := layers[curr] + 1; layer > layers[child] {
				layers[child] = layer
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	for _, n := range nodes {
		if _, ok := layers[n]; ok {
			continue
		}
		layers[n] = 0
		bfs := []N{n}
		for len(bfs) > 0 {
			curr := bfs[0]
			bfs = bfs[1:]
			for _, child := range children[curr] {
				if _, ok := layers[child]; ok {
					continue
				}
				layers[child] = layers[curr] + 1
				bfs = append(bfs, child)
			}
		}
	}
	return layers
}
