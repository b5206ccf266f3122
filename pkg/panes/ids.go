package panes

import (
	"fmt"
	"sync/atomic"
)

// IDGen hands out node identifiers of the form "<prefix>_<n>" from one
// monotonically increasing counter. It is safe for concurrent use.
type IDGen struct {
	n atomic.Uint64
}

// Next returns the next identifier with the given prefix. The first
// identifier after construction or Reset uses n = 1.
func (g *IDGen) Next(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, g.n.Add(1))
}

// Reset restarts the counter. Tests call it for deterministic identifiers.
func (g *IDGen) Reset() { g.n.Store(0) }

// Builder constructs trees declaratively, generating identifiers for nodes
// created with an empty id.
type Builder struct {
	ids *IDGen
}

// NewBuilder returns a builder drawing identifiers from ids. A nil ids gets
// a private generator.
func NewBuilder(ids *IDGen) *Builder {
	if ids == nil {
		ids = &IDGen{}
	}
	return &Builder{ids: ids}
}

func (b *Builder) id(id, prefix string) string {
	if id != "" {
		return id
	}
	return b.ids.Next(prefix)
}

// Pane creates a pane.
func (b *Builder) Pane(id, title string, content any) *Pane {
	return NewPane(b.id(id, "pane"), title, content)
}

// Tabbed creates a tabbed container.
func (b *Builder) Tabbed(id string, children ...Node) *Tabbed {
	return NewTabbed(b.id(id, "tabbed"), children...)
}

// Split creates a split with equal weights.
func (b *Builder) Split(id string, o Orientation, children ...Node) *Split {
	return NewSplit(b.id(id, "split"), o, children...)
}

// SplitWeighted creates a split with explicit weights.
func (b *Builder) SplitWeighted(id string, o Orientation, children []Node, weights []float64) (*Split, error) {
	return NewSplitWeighted(b.id(id, "split"), o, children, weights)
}
