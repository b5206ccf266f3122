package graph

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

// Layout is the serialization format for a computed layered layout.
type Layout struct {
	// Geometry the layout was computed with.
	Options sugiyama.Options `json:"options"`

	// Bounding box of all node boxes.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Nodes     []PlacedNode `json:"nodes"`
	Edges     []Route      `json:"edges"`
	Crossings int          `json:"crossings"`
}

// PlacedNode is a node with its top-left corner and layer.
type PlacedNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Layer int     `json:"layer"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *PlacedNode) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Route is the polyline of one edge, from its source to its target.
// Reversed marks edges that were flipped to break a cycle; their points
// still run from From to To.
type Route struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	Points   []sugiyama.Point `json:"points"`
	Reversed bool             `json:"reversed,omitempty"`
}

// FromResult converts an engine result for g into a Layout. Nodes keep
// their first-occurrence input order and edges their input order. Edges
// the engine dropped (unknown endpoints, duplicates, unroutable) are left
// out.
func FromResult(g Graph, res sugiyama.Result[string], opts sugiyama.Options) Layout {
	out := Layout{
		Options:   opts,
		Width:     res.Width,
		Height:    res.Height,
		Crossings: res.Crossings,
		Nodes:     make([]PlacedNode, 0, len(res.Positions)),
		Edges:     make([]Route, 0, len(res.Routes)),
	}

	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		p, ok := res.Positions[n.ID]
		if !ok || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		out.Nodes = append(out.Nodes, PlacedNode{ID: n.ID, Label: n.Label, X: p.X, Y: p.Y, Layer: res.Layers[n.ID]})
	}

	reversed := make(map[sugiyama.Edge[string]]bool, len(res.Reversed))
	for _, e := range res.Reversed {
		reversed[e] = true
	}
	done := make(map[sugiyama.Edge[string]]bool, len(g.Edges))
	for _, e := range g.EdgeList() {
		pts, ok := res.Routes[e]
		if !ok || done[e] {
			continue
		}
		done[e] = true
		out.Edges = append(out.Edges, Route{From: e.From, To: e.To, Points: pts, Reversed: reversed[e]})
	}
	return out
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Routes must have at least two points.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	for _, r := range l.Edges {
		if len(r.Points) < 2 {
			return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "route %s->%s has %d points", r.From, r.To, len(r.Points))
		}
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return UnmarshalLayout(data)
}
