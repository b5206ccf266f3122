package panes

import (
	"math"
	"slices"

	"github.com/matzehuels/stacklayout/pkg/errors"
)

// minWeight is the smallest weight ResizeSplit leaves on either side.
const minWeight = 0.01

// RemovePane returns a new tree without the pane id. A tabbed container
// left without tabs disappears with it, and a split left with one child is
// replaced by that child, which takes over the split's slot and weight.
// Removing the last pane is rejected.
func RemovePane(root Node, id string) (Node, error) {
	n, ok := FindByID(root, id)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "remove pane: no node %q", id)
	}
	if _, ok := n.(*Pane); !ok {
		return nil, errors.New(errors.ErrCodeInvalidOperation, "remove pane: %q is a %s, not a pane", id, kindOf(n))
	}
	out, _ := without(root, id)
	if out == nil {
		return nil, errors.New(errors.ErrCodeInvalidOperation, "remove pane: %q is the last pane in the layout", id)
	}
	return out, nil
}

// without removes the first node carrying id and collapses emptied
// ancestors. It returns nil when n itself disappears.
func without(n Node, id string) (Node, bool) {
	if n.ID() == id {
		return nil, true
	}
	switch n := n.(type) {
	case *Tabbed:
		for i, c := range n.children {
			r, ok := without(c, id)
			if !ok {
				continue
			}
			kids := slices.Clone(n.children)
			if r == nil {
				kids = slices.Delete(kids, i, i+1)
			} else {
				kids[i] = r
			}
			if len(kids) == 0 {
				return nil, true
			}
			return &Tabbed{id: n.id, children: kids}, true
		}
	case *Split:
		for i, c := range n.children {
			r, ok := without(c, id)
			if !ok {
				continue
			}
			kids, weights := slices.Clone(n.children), slices.Clone(n.weights)
			if r == nil {
				kids = slices.Delete(kids, i, i+1)
				weights = slices.Delete(weights, i, i+1)
			} else {
				kids[i] = r
			}
			switch len(kids) {
			case 0:
				return nil, true
			case 1:
				return kids[0], true
			}
			return &Split{id: n.id, orientation: n.orientation, children: kids, weights: weights}, true
		}
	}
	return n, false
}

// ResizeSplit moves delta weight from child index+1 to child index of the
// split id, as a splitter drag between the two would. Both weights stay at
// or above a small minimum; a weight already below it is never shrunk
// further. Weights are not renormalized afterwards.
func ResizeSplit(root Node, id string, index int, delta float64) (Node, error) {
	n, ok := FindByID(root, id)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "resize split: no node %q", id)
	}
	split, ok := n.(*Split)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidOperation, "resize split: %q is a %s, not a split", id, kindOf(n))
	}
	if math.IsNaN(delta) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "resize split: delta is not a number")
	}
	if index < 0 || index+1 >= len(split.children) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"resize split: splitter %d out of range for %q with %d children", index, id, len(split.children))
	}

	weights := slices.Clone(split.weights)
	lo := min(minWeight-weights[index], 0)
	hi := max(weights[index+1]-minWeight, 0)
	delta = min(max(delta, lo), hi)
	weights[index] += delta
	weights[index+1] -= delta

	updated := &Split{id: split.id, orientation: split.orientation, children: slices.Clone(split.children), weights: weights}
	out, _ := replace(root, id, updated)
	return out, nil
}
