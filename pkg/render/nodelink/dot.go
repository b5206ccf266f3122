package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/sugiyama"
)

// pointsPerInch converts layout units to DOT inches.
const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the layer number to node labels.
	// When false, only the display label is shown.
	Detailed bool
}

// ToDOT converts a computed layout to Graphviz DOT with pinned node and
// bend positions. Render it with [RenderSVG] or `neato -n`.
//
// Edges that were reversed to break cycles are drawn dashed.
func ToDOT(l graph.Layout, opts Options) string {
	w := l.Options.NodeWidth / pointsPerInch
	h := l.Options.NodeHeight / pointsPerInch

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true, width=%s, height=%s];\n", ftoa(w), ftoa(h))
	buf.WriteString("\n")

	taken := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		taken[n.ID] = true
		center := sugiyama.Point{X: n.X + l.Options.NodeWidth/2, Y: n.Y + l.Options.NodeHeight/2}
		fmt.Fprintf(&buf, "  %q [label=%q, pos=%q];\n", n.ID, fmtLabel(n, opts.Detailed), pos(center, l.Height))
	}

	buf.WriteString("\n")
	for i, e := range l.Edges {
		writeRoute(&buf, taken, i, e, l.Height)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeRoute emits an edge as a chain through its interior route points.
// Only the last segment carries the arrowhead. Bend node names are added to
// taken and never reuse a name already in it.
func writeRoute(buf *bytes.Buffer, taken map[string]bool, i int, e graph.Route, height float64) {
	style := ""
	if e.Reversed {
		style = ", style=dashed"
	}
	if e.From == e.To {
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", e.From, e.To, strings.TrimPrefix(style, ", "))
		return
	}

	hops := []string{e.From}
	for j, p := range interior(e.Points) {
		bend := fmt.Sprintf("__bend_%d_%d", i, j)
		for taken[bend] {
			bend = "_" + bend
		}
		taken[bend] = true
		fmt.Fprintf(buf, "  %q [shape=point, width=0.01, label=\"\", pos=%q];\n", bend, pos(p, height))
		hops = append(hops, bend)
	}
	hops = append(hops, e.To)

	for j := 0; j+1 < len(hops); j++ {
		head := ""
		if j+2 < len(hops) {
			head = ", arrowhead=none"
		}
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", hops[j], hops[j+1], strings.TrimPrefix(head+style, ", "))
	}
}

func interior(pts []sugiyama.Point) []sugiyama.Point {
	if len(pts) <= 2 {
		return nil
	}
	return pts[1 : len(pts)-1]
}

func pos(p sugiyama.Point, height float64) string {
	return ftoa(p.X/pointsPerInch) + "," + ftoa((height-p.Y)/pointsPerInch) + "!"
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fmtLabel(n graph.PlacedNode, detailed bool) string {
	if !detailed {
		return n.DisplayLabel()
	}
	return fmt.Sprintf("%s\nlayer: %d", n.DisplayLabel(), n.Layer)
}

// RenderSVG renders a DOT graph produced by [ToDOT] to SVG using the
// neato engine, which honors the pinned positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.SetLayout(graphviz.NEATO).Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
