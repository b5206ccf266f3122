package pipeline

import (
	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

// GenerateLayout computes the layout of g without caching. opts must have
// been through [Options.ValidateAndSetDefaults].
func GenerateLayout(g graph.Graph, opts Options) graph.Layout {
	geom := opts.Geometry()
	res := sugiyama.New[string](geom, opts.Logger).Layout(g.NodeIDs(), g.EdgeList())
	return graph.FromResult(g, res, geom)
}
