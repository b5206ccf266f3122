package panes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/errors"
)

// Orientation is the axis along which a [Split] arranges its children.
type Orientation int

const (
	// Horizontal places children left to right.
	Horizontal Orientation = iota
	// Vertical places children top to bottom.
	Vertical
)

// String returns "Horizontal" or "Vertical".
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation parses an orientation name, ignoring case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown orientation %q", s)
}

// Node is one node of a layout tree: a [*Pane], a [*Tabbed] or a [*Split].
// Nodes are immutable; every edit returns a new tree that shares unchanged
// subtrees with the old one.
type Node interface {
	// ID returns the node's identifier, unique within a tree.
	ID() string
	// String returns the canonical rendering produced by [AsString].
	String() string

	node()
}

// Pane is a leaf holding one piece of content.
type Pane struct {
	id      string
	title   string
	content any
}

// NewPane creates a pane. The content handle is opaque to this package.
func NewPane(id, title string, content any) *Pane {
	return &Pane{id: id, title: title, content: content}
}

func (p *Pane) ID() string     { return p.id }
func (p *Pane) Title() string  { return p.title }
func (p *Pane) Content() any   { return p.content }
func (p *Pane) String() string { return AsString(p) }
func (p *Pane) node()          {}

// Tabbed is a container showing one of its children at a time; each child
// is a tab.
type Tabbed struct {
	id       string
	children []Node
}

// NewTabbed creates a tabbed container.
func NewTabbed(id string, children ...Node) *Tabbed {
	return &Tabbed{id: id, children: slices.Clone(children)}
}

func (t *Tabbed) ID() string     { return t.id }
func (t *Tabbed) String() string { return AsString(t) }
func (t *Tabbed) node()          {}

// Children returns a copy of the tabs in order.
func (t *Tabbed) Children() []Node { return slices.Clone(t.children) }

// Len returns the number of tabs.
func (t *Tabbed) Len() int { return len(t.children) }

func (t *Tabbed) indexOf(id string) int {
	return slices.IndexFunc(t.children, func(n Node) bool { return n.ID() == id })
}

// Split arranges its children side by side along its orientation. Weights
// parallel the children and are all > 0; they are relative sizes and are not
// required to sum to 1.
type Split struct {
	id          string
	orientation Orientation
	children    []Node
	weights     []float64
}

// NewSplit creates a split with equal weights.
func NewSplit(id string, o Orientation, children ...Node) *Split {
	weights := make([]float64, len(children))
	for i := range weights {
		weights[i] = 1 / float64(len(children))
	}
	return &Split{id: id, orientation: o, children: slices.Clone(children), weights: weights}
}

// NewSplitWeighted creates a split with explicit weights. It fails when the
// weights do not match the children one to one or any weight is not > 0.
func NewSplitWeighted(id string, o Orientation, children []Node, weights []float64) (*Split, error) {
	if len(children) != len(weights) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "split %q: %d children but %d weights", id, len(children), len(weights))
	}
	for i, w := range weights {
		if !(w > 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "split %q: weight %d is %v, must be > 0", id, i, w)
		}
	}
	return &Split{id: id, orientation: o, children: slices.Clone(children), weights: slices.Clone(weights)}, nil
}

func (s *Split) ID() string               { return s.id }
func (s *Split) Orientation() Orientation { return s.orientation }
func (s *Split) String() string           { return AsString(s) }
func (s *Split) node()                    {}

// Children returns a copy of the children in order.
func (s *Split) Children() []Node { return slices.Clone(s.children) }

// Weights returns a copy of the weights, parallel to Children.
func (s *Split) Weights() []float64 { return slices.Clone(s.weights) }

// Len returns the number of children.
func (s *Split) Len() int { return len(s.children) }
