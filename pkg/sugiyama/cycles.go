package sugiyama

// breakCycles makes the edge set acyclic by reversing every back edge found
// by a depth-first traversal started from each unvisited node in input order.
//
// The traversal uses an explicit stack but visits successors in the same
// order as the recursive formulation, so back edges are classified
// identically. A self-loop is its own back edge and stays unchanged when
// reversed. Reversal can turn a back edge into a copy of an existing edge;
// such copies are dropped from the acyclic set.
func breakCycles[N comparable](nodes []N, edges []Edge[N]) (acyclic, reversed []Edge[N]) {
	const (
		white = iota
		gray
		black
	)

	children := make(map[N][]N, len(nodes))
	for _, e := range edges {
		children[e.From] = append(children[e.From], e.To)
	}

	type frame struct {
		node N
		next int
	}

	color := make(map[N]int, len(nodes))
	back := make(map[Edge[N]]bool)
	for _, root := range nodes {
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succ := children[top.node]
			if top.next == len(succ) {
				color[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := succ[top.next]
			top.next++
			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, frame{node: child})
			case gray:
				back[Edge[N]{From: top.node, To: child}] = true
			}
		}
	}

	seen := make(map[Edge[N]]struct{}, len(edges))
	acyclic = make([]Edge[N], 0, len(edges))
	for _, e := range edges {
		out := e
		if back[e] {
			reversed = append(reversed, e)
			out = e.Reverse()
		}
		if _, dup := seen[out]; dup {
			continue
		}
		seen[out] = struct{}{}
		acyclic = append(acyclic, out)
	}
	return acyclic, reversed
}
