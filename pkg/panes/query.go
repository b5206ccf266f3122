package panes

import "slices"

// Walk visits n and its descendants in pre-order. Returning false from fn
// stops the walk; Walk reports whether it ran to completion.
func Walk(n Node, fn func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range children(n) {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// FindByID returns the first node in pre-order with the given id.
func FindByID(root Node, id string) (Node, bool) {
	var found Node
	Walk(root, func(n Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// FindFirstTabbed returns the first tabbed container in pre-order matching
// pred. Callers use it to locate a drop target, e.g. the container holding
// a given pane.
func FindFirstTabbed(root Node, pred func(*Tabbed) bool) (*Tabbed, bool) {
	var found *Tabbed
	Walk(root, func(n Node) bool {
		if t, ok := n.(*Tabbed); ok && pred(t) {
			found = t
			return false
		}
		return true
	})
	return found, found != nil
}

// ContainerOf returns the tabbed container that directly holds id.
func ContainerOf(root Node, id string) (*Tabbed, bool) {
	return FindFirstTabbed(root, func(t *Tabbed) bool { return t.indexOf(id) >= 0 })
}

// Panes returns all panes in pre-order.
func Panes(root Node) []*Pane {
	var out []*Pane
	Walk(root, func(n Node) bool {
		if p, ok := n.(*Pane); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *Tabbed:
		return n.children
	case *Split:
		return n.children
	}
	return nil
}

// replace returns root with the first node carrying id swapped for with,
// copying only the path from root to that node. with may be nil, which
// removes the node; see without for the collapsing variant.
func replace(root Node, id string, with Node) (Node, bool) {
	if root.ID() == id {
		return with, true
	}
	switch n := root.(type) {
	case *Tabbed:
		for i, c := range n.children {
			r, ok := replace(c, id, with)
			if !ok {
				continue
			}
			kids := slices.Clone(n.children)
			kids[i] = r
			return &Tabbed{id: n.id, children: kids}, true
		}
	case *Split:
		for i, c := range n.children {
			r, ok := replace(c, id, with)
			if !ok {
				continue
			}
			kids := slices.Clone(n.children)
			kids[i] = r
			return &Split{id: n.id, orientation: n.orientation, children: kids, weights: slices.Clone(n.weights)}, true
		}
	}
	return root, false
}
