package graph

import (
	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

// Graph is the canonical serialization format for input graphs.
// Used for CLI input files, API requests and cache key derivation.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a graph node as it appears on the wire.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"` // Display label (defaults to ID)
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge represents a directed edge.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NodeIDs returns the node ids in input order.
func (g Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// EdgeList returns the edges in the form the layout engine takes.
func (g Graph) EdgeList() []sugiyama.Edge[string] {
	edges := make([]sugiyama.Edge[string], len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = sugiyama.Edge[string]{From: e.From, To: e.To}
	}
	return edges
}

// Validate checks node ids and edge endpoints. Duplicate nodes and edges
// are allowed; the layout engine collapses them.
func (g Graph) Validate() error {
	for i, n := range g.Nodes {
		if err := errors.ValidateID(n.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "node %d", i)
		}
	}
	for i, e := range g.Edges {
		if err := errors.ValidateID(e.From); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d: from", i)
		}
		if err := errors.ValidateID(e.To); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %d: to", i)
		}
	}
	return nil
}
