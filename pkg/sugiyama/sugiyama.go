package sugiyama

import (
	"slices"

	"github.com/charmbracelet/log"
)

// crossingIterations is the fixed number of barycenter sweeps per layout.
const crossingIterations = 24

// Default geometry, in the same units as the returned coordinates.
const (
	DefaultNodeWidth    = 100.0
	DefaultNodeHeight   = 50.0
	DefaultLayerSpacing = 80.0
	DefaultNodeSpacing  = 50.0
)

// Point is a 2D coordinate. Node positions are the top-left corner of the
// node's box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is a directed edge between two caller-supplied nodes. Edges are
// comparable and key the route map, so parallel edges collapse to one entry.
type Edge[N comparable] struct {
	From N
	To   N
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge[N]) Reverse() Edge[N] { return Edge[N]{From: e.To, To: e.From} }

// IsLoop reports whether the edge starts and ends at the same node.
func (e Edge[N]) IsLoop() bool { return e.From == e.To }

// Options configures the geometry of a layout.
type Options struct {
	NodeWidth    float64 `json:"node_width" toml:"node_width"`
	NodeHeight   float64 `json:"node_height" toml:"node_height"`
	LayerSpacing float64 `json:"layer_spacing" toml:"layer_spacing"`
	NodeSpacing  float64 `json:"node_spacing" toml:"node_spacing"`
}

// DefaultOptions returns the default geometry (100×50 nodes, 80 between
// layers, 50 between nodes in a layer).
func DefaultOptions() Options {
	return Options{
		NodeWidth:    DefaultNodeWidth,
		NodeHeight:   DefaultNodeHeight,
		LayerSpacing: DefaultLayerSpacing,
		NodeSpacing:  DefaultNodeSpacing,
	}
}

// Result is the output of [Engine.Layout].
type Result[N comparable] struct {
	// Positions holds one entry per input node.
	Positions map[N]Point
	// Routes holds one endpoint-inclusive polyline per distinct input edge,
	// always directed from the edge's From node to its To node.
	Routes map[Edge[N]][]Point

	// Layers is the layer each node was assigned to.
	Layers map[N]int
	// Reversed lists the input edges that were flipped to break cycles,
	// in input order.
	Reversed []Edge[N]
	// Crossings is the number of edge crossings left after reduction,
	// counted on the subdivided graph.
	Crossings int
	// Width and Height bound all node boxes.
	Width  float64
	Height float64
}

// Engine lays out graphs whose nodes are identified by values of type N.
// The zero value is not usable; construct with [New] or [Default].
type Engine[N comparable] struct {
	opts   Options
	logger *log.Logger
}

// New creates an engine with the given geometry. If logger is nil,
// log.Default() is used.
func New[N comparable](opts Options, logger *log.Logger) *Engine[N] {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine[N]{opts: opts, logger: logger}
}

// Default creates an engine with [DefaultOptions].
func Default[N comparable]() *Engine[N] {
	return New[N](DefaultOptions(), nil)
}

// Options returns the engine's geometry.
func (e *Engine[N]) Options() Options { return e.opts }

// Layout computes a layered layout for the given graph.
//
// Duplicate nodes and edges are collapsed, keeping the first occurrence.
// Edges referencing nodes missing from the node list are ignored.
func (e *Engine[N]) Layout(nodes []N, edges []Edge[N]) Result[N] {
	nodes = uniqueNodes(nodes)
	edges = e.filterEdges(nodes, edges)

	acyclic, reversed := breakCycles(nodes, edges)
	layers := assignLayers(nodes, acyclic)
	g := buildLayers(nodes, acyclic, layers)
	reduceCrossings(g, crossingIterations)

	points := assignCoordinates(g, e.opts)
	res := Result[N]{
		Positions: make(map[N]Point, len(nodes)),
		Layers:    layers,
		Reversed:  reversed,
		Crossings: g.crossings(),
	}
	for _, n := range nodes {
		res.Positions[n] = points[realVertex(n)]
	}
	res.Routes = e.routeEdges(g, points, edges, reversed)
	res.Width, res.Height = g.extent(e.opts)

	e.logger.Debug("computed layered layout",
		"nodes", len(nodes),
		"edges", len(edges),
		"layers", len(g.layers),
		"dummies", g.dummies,
		"reversed", len(reversed),
		"crossings", res.Crossings)
	return res
}

func uniqueNodes[N comparable](nodes []N) []N {
	seen := make(map[N]struct{}, len(nodes))
	out := make([]N, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func (e *Engine[N]) filterEdges(nodes []N, edges []Edge[N]) []Edge[N] {
	known := make(map[N]struct{}, len(nodes))
	for _, n := range nodes {
		known[n] = struct{}{}
	}
	seen := make(map[Edge[N]]struct{}, len(edges))
	out := make([]Edge[N], 0, len(edges))
	for _, edge := range edges {
		_, fromOK := known[edge.From]
		_, toOK := known[edge.To]
		if !fromOK || !toOK {
			e.logger.Debug("ignoring edge with unknown endpoint", "from", edge.From, "to", edge.To)
			continue
		}
		if _, dup := seen[edge]; dup {
			continue
		}
		seen[edge] = struct{}{}
		out = append(out, edge)
	}
	return slices.Clip(out)
}
