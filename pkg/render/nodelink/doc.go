// Package nodelink renders computed layouts as node-link diagrams.
//
// # Overview
//
// Nodes appear as boxes connected by arrows. Unlike a plain Graphviz
// rendering, nothing is laid out by Graphviz itself: every node is pinned
// at the position computed by the layered layout engine, and every edge
// follows its computed route through small bend points.
//
// # Usage
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The generated DOT is meant for the neato engine with pinned positions
// (pos="x,y!"). Layout coordinates grow downwards in layout units; DOT
// coordinates grow upwards in inches, so y is flipped against the layout
// height and all values are divided by 72.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
