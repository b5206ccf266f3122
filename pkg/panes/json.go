package panes

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/errors"
)

// Node types in the JSON wire format.
const (
	typePane   = "pane"
	typeTabbed = "tabbed"
	typeSplit  = "split"
)

// Drop target types in the JSON wire format.
const (
	targetTab     = "tab"
	targetSplit   = "split"
	targetReorder = "reorder"
)

// wireNode is the JSON form of a Node.
type wireNode struct {
	Type        string          `json:"type"`
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	Orientation string          `json:"orientation,omitempty"`
	Weights     []float64       `json:"weights,omitempty"`
	Children    []wireNode      `json:"children,omitempty"`
}

// wireTarget is the JSON form of a DropTarget.
type wireTarget struct {
	Type        string `json:"type"`
	ContainerID string `json:"container,omitempty"`
	RefID       string `json:"ref"`
	Kind        string `json:"kind,omitempty"`
}

// Marshal encodes a tree as JSON. Pane content is encoded with
// encoding/json.
func Marshal(n Node) ([]byte, error) {
	w, err := toWire(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (p *Pane) MarshalJSON() ([]byte, error)   { return Marshal(p) }
func (t *Tabbed) MarshalJSON() ([]byte, error) { return Marshal(t) }
func (s *Split) MarshalJSON() ([]byte, error)  { return Marshal(s) }

func toWire(n Node) (wireNode, error) {
	switch n := n.(type) {
	case *Pane:
		w := wireNode{Type: typePane, ID: n.id, Title: n.title}
		if n.content != nil {
			raw, err := json.Marshal(n.content)
			if err != nil {
				return wireNode{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "encode content of pane %q", n.id)
			}
			w.Content = raw
		}
		return w, nil
	case *Tabbed:
		kids, err := childrenToWire(n.children)
		return wireNode{Type: typeTabbed, ID: n.id, Children: kids}, err
	case *Split:
		kids, err := childrenToWire(n.children)
		return wireNode{
			Type:        typeSplit,
			ID:          n.id,
			Orientation: strings.ToLower(n.orientation.String()),
			Weights:     n.weights,
			Children:    kids,
		}, err
	}
	return wireNode{}, errors.New(errors.ErrCodeInvalidInput, "encode: unsupported node %T", n)
}

func childrenToWire(nodes []Node) ([]wireNode, error) {
	out := make([]wireNode, len(nodes))
	for i, c := range nodes {
		w, err := toWire(c)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// Decode parses a JSON tree. Nodes without an id get one from the builder,
// skipping ids the document already uses. An id given twice is rejected.
// Split weights default to equal shares when omitted. Pane content is kept
// as json.RawMessage.
func (b *Builder) Decode(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout tree")
	}

	taken := make(map[string]bool)
	if err := collectIDs(w, taken); err != nil {
		return nil, err
	}
	return b.fromWire(w, taken)
}

// collectIDs records every explicit id of the document in taken.
func collectIDs(w wireNode, taken map[string]bool) error {
	if w.ID != "" {
		if err := errors.ValidateID(w.ID); err != nil {
			return err
		}
		if taken[w.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "decode layout tree: id %q appears more than once", w.ID)
		}
		taken[w.ID] = true
	}
	for _, c := range w.Children {
		if err := collectIDs(c, taken); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) fromWire(w wireNode, taken map[string]bool) (Node, error) {
	kids := make([]Node, len(w.Children))
	for i, c := range w.Children {
		n, err := b.fromWire(c, taken)
		if err != nil {
			return nil, err
		}
		kids[i] = n
	}

	id := w.ID
	if id == "" && (w.Type == typePane || w.Type == typeTabbed || w.Type == typeSplit) {
		id = b.ids.Next(w.Type)
		for taken[id] {
			id = b.ids.Next(w.Type)
		}
		taken[id] = true
	}

	switch w.Type {
	case typePane:
		if len(kids) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "pane %q cannot have children", id)
		}
		var content any
		if len(w.Content) > 0 {
			content = w.Content
		}
		return b.Pane(id, w.Title, content), nil
	case typeTabbed:
		return b.Tabbed(id, kids...), nil
	case typeSplit:
		o, err := ParseOrientation(w.Orientation)
		if err != nil {
			return nil, err
		}
		if w.Weights == nil {
			return b.Split(id, o, kids...), nil
		}
		return b.SplitWeighted(id, o, kids, w.Weights)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown node type %q", w.Type)
}

// DecodeTarget parses a JSON drop target:
//
//	{"type": "tab", "container": "tabbed_1", "ref": "pane_1_1", "kind": "before"}
//	{"type": "split", "ref": "tabbed_1", "kind": "left"}
//	{"type": "reorder", "container": "tabbed_1", "ref": "pane_1_1"}
func DecodeTarget(data []byte) (DropTarget, error) {
	var w wireTarget
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode drop target")
	}

	switch w.Type {
	case targetReorder:
		return ReorderDrop{ContainerID: w.ContainerID, RefID: w.RefID}, nil
	case targetTab, targetSplit:
		kind, err := ParseDropKind(w.Kind)
		if err != nil {
			return nil, err
		}
		if w.Type == targetTab {
			return TabDrop{ContainerID: w.ContainerID, RefID: w.RefID, Position: kind}, nil
		}
		return SplitDrop{RefID: w.RefID, Side: kind}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown drop target type %q", w.Type)
}
