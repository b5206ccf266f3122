// Package pkg provides the libraries behind stacklayout.
//
// # Overview
//
// Stacklayout has two engines that share one ambient stack:
//
//  1. [sugiyama] - layered layout of directed graphs
//  2. [panes] - persistent pane layout trees with drag-and-drop insertion
//
// Around them:
//
//   - [graph] - wire formats for input graphs and computed layouts
//   - [render/nodelink] - DOT and SVG output with pinned positions
//   - [pipeline] - cached layout and render runs, pane requests, TOML config
//   - [cache] - file, Redis and no-op caches with content-hash keys
//   - [errors] - coded errors shared by every package
//   - [observability] - optional hooks for metrics and tracing
//
// # Architecture
//
//	graph.json
//	     ↓
//	[graph] ReadGraph
//	     ↓
//	[pipeline] Runner ──── [cache]
//	     ↓
//	[sugiyama] Layout → [graph] Layout → [render/nodelink] DOT/SVG
//
// # Quick Start
//
//	e := sugiyama.Default[string]()
//	res := e.Layout([]string{"app", "core"}, []sugiyama.Edge[string]{{From: "app", To: "core"}})
//	fmt.Println(res.Positions["core"]) // {0 130}
//
// Insert a pane above an existing tab group:
//
//	e := panes.NewEngine(nil)
//	root := panes.NewTabbed("tabbed_1", panes.NewPane("pane_1_1", "Pane A", nil))
//	out, err := e.InsertPane(root, panes.NewPane("pane_new", "Pane B", nil),
//	    panes.SplitDrop{RefID: "tabbed_1", Side: panes.Top})
//
// [sugiyama]: github.com/matzehuels/stacklayout/pkg/sugiyama
// [panes]: github.com/matzehuels/stacklayout/pkg/panes
// [graph]: github.com/matzehuels/stacklayout/pkg/graph
// [render/nodelink]: github.com/matzehuels/stacklayout/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/stacklayout/pkg/pipeline
// [cache]: github.com/matzehuels/stacklayout/pkg/cache
// [errors]: github.com/matzehuels/stacklayout/pkg/errors
// [observability]: github.com/matzehuels/stacklayout/pkg/observability
package pkg
