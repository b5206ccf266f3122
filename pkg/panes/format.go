package panes

import (
	"strconv"
	"strings"
)

// AsString renders a tree canonically, one node per line, children indented
// by two spaces. Two trees render identically exactly when they have the
// same ids, kinds, titles, orientations, weights and child order. Pane
// content is not rendered.
//
//	Split(id=split_1, orientation=Vertical, weights=[0.5, 0.5])
//	  Tabbed(id=tabbed_2)
//	    Pane(id=pane_new, title="Pane B")
//	  Tabbed(id=tabbed_1)
//	    Pane(id=pane_1_1, title="Pane A")
func AsString(n Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return b.String()
}

func writeNode(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch n := n.(type) {
	case nil:
		b.WriteString("<nil>\n")
		return
	case *Pane:
		b.WriteString("Pane(id=" + n.id + ", title=" + strconv.Quote(n.title) + ")\n")
	case *Tabbed:
		b.WriteString("Tabbed(id=" + n.id + ")\n")
	case *Split:
		weights := make([]string, len(n.weights))
		for i, w := range n.weights {
			weights[i] = strconv.FormatFloat(w, 'g', -1, 64)
		}
		b.WriteString("Split(id=" + n.id + ", orientation=" + n.orientation.String() +
			", weights=[" + strings.Join(weights, ", ") + "])\n")
	}
	for _, c := range children(n) {
		writeNode(b, c, depth+1)
	}
}
