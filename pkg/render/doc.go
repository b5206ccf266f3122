// Package render provides visualization output for computed layouts.
//
// The [nodelink] subpackage turns a [graph.Layout] into a Graphviz diagram
// whose nodes and edge bends sit exactly where the layout engine put them.
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/stacklayout/pkg/render/nodelink
// [graph.Layout]: github.com/matzehuels/stacklayout/pkg/graph.Layout
package render
