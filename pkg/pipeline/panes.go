package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/observability"
	"github.com/matzehuels/stacklayout/pkg/panes"
)

// InsertRequest is one pane insertion as sent by clients:
//
//	{
//	  "tree":   {"type": "tabbed", "id": "tabbed_1", "children": [...]},
//	  "pane":   {"type": "pane", "id": "pane_new", "title": "Pane B"},
//	  "target": {"type": "split", "ref": "tabbed_1", "kind": "top"}
//	}
type InsertRequest struct {
	Tree   json.RawMessage `json:"tree"`
	Pane   json.RawMessage `json:"pane"`
	Target json.RawMessage `json:"target"`
}

// InsertResponse is the result of an insertion.
type InsertResponse struct {
	Tree panes.Node `json:"tree"`
	Text string     `json:"text"`
}

// InsertPane decodes req and applies it with e. Nodes in the request that
// lack an id are given one by e's generator. Pane insertion is never cached.
func (r *Runner) InsertPane(ctx context.Context, e *panes.Engine, req InsertRequest) (InsertResponse, error) {
	start := time.Now()
	out, kind, err := r.insertPane(e, req)
	observability.Pane().OnInsert(ctx, kind, time.Since(start), err)
	if err != nil {
		r.Logger.Debug("pane insertion rejected", "kind", kind, "err", err)
		return InsertResponse{}, err
	}
	return InsertResponse{Tree: out, Text: panes.AsString(out)}, nil
}

func (r *Runner) insertPane(e *panes.Engine, req InsertRequest) (panes.Node, string, error) {
	if len(req.Tree) == 0 || len(req.Pane) == 0 || len(req.Target) == 0 {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "insert request needs tree, pane and target")
	}

	target, err := panes.DecodeTarget(req.Target)
	if err != nil {
		return nil, "", err
	}
	kind := target.Kind().String()

	b := e.Builder()
	root, err := b.Decode(req.Tree)
	if err != nil {
		return nil, kind, err
	}
	n, err := b.Decode(req.Pane)
	if err != nil {
		return nil, kind, err
	}
	pane, ok := n.(*panes.Pane)
	if !ok {
		return nil, kind, errors.New(errors.ErrCodeInvalidInput, "pane must be a pane node, got %q", n.ID())
	}

	out, err := e.InsertPane(root, pane, target)
	return out, kind, err
}
