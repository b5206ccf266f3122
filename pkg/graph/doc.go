// Package graph provides the JSON wire format for input graphs and computed
// layouts.
//
// It is the serialization boundary of stacklayout: the CLI reads graph files
// with it, the HTTP API decodes request bodies with it, and the layout cache
// stores its [Layout] documents.
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "app"}, {"id": "core", "label": "Core Library"}],
//	  "edges": [{"from": "app", "to": "core"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("deps.json")  // File → Graph
//	data, _ := graph.MarshalGraph(g)          // Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)   // []byte → Graph
//
// Node ids must be non-empty and free of control characters. Edges may
// reference ids that are not declared as nodes; the layout engine ignores
// them.
//
// # Layout Serialization
//
// [FromResult] turns a [sugiyama.Result] into a [Layout]: positioned nodes
// in input order, one polyline per edge, the layer assignment and the
// edges that were reversed to break cycles.
//
//	res := sugiyama.New[string](opts, logger).Layout(g.NodeIDs(), g.EdgeList())
//	layout := graph.FromResult(g, res, opts)
//	data, _ := graph.MarshalLayout(layout)
//
// # Concurrency
//
// All functions are safe for concurrent use; none keeps state.
package graph
