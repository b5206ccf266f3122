package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

// layoutFlags holds the layout command's flags. Geometry flags only
// override the config file when set explicitly.
type layoutFlags struct {
	output   string
	formats  string
	noCache  bool
	geometry pipeline.Options
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a layered layout of a directed graph",
		Long: `Compute a layered layout of a directed graph.

The input is a graph.json file:

  {"nodes": [{"id": "app"}, {"id": "core"}], "edges": [{"from": "app", "to": "core"}]}

Cycles are broken by reversing edges, nodes are assigned to layers, long
edges are routed through virtual points, and nodes are ordered to reduce
crossings. The result is written as JSON (the layout itself), DOT (pinned
positions for Graphviz) or SVG.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := mergeLayoutFlags(cmd, cfg.Layout, flags)
			return c.runLayout(cmd.Context(), args[0], cfg, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.layout.<format>)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output formats: json (default), dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.geometry.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&flags.geometry.Detailed, "detailed", false, "label nodes with layer and position")
	cmd.Flags().Float64Var(&flags.geometry.NodeWidth, "node-width", 0, "node width (default 100)")
	cmd.Flags().Float64Var(&flags.geometry.NodeHeight, "node-height", 0, "node height (default 50)")
	cmd.Flags().Float64Var(&flags.geometry.LayerSpacing, "layer-spacing", 0, "vertical gap between layers (default 80)")
	cmd.Flags().Float64Var(&flags.geometry.NodeSpacing, "node-spacing", 0, "horizontal gap between nodes (default 50)")

	return cmd
}

// mergeLayoutFlags overlays explicitly set flags on the configured options.
func mergeLayoutFlags(cmd *cobra.Command, opts pipeline.Options, flags layoutFlags) pipeline.Options {
	set := cmd.Flags().Changed
	if set("node-width") {
		opts.NodeWidth = flags.geometry.NodeWidth
	}
	if set("node-height") {
		opts.NodeHeight = flags.geometry.NodeHeight
	}
	if set("layer-spacing") {
		opts.LayerSpacing = flags.geometry.LayerSpacing
	}
	if set("node-spacing") {
		opts.NodeSpacing = flags.geometry.NodeSpacing
	}
	if set("detailed") {
		opts.Detailed = flags.geometry.Detailed
	}
	if set("format") {
		opts.Formats = parseFormats(flags.formats)
	}
	opts.Refresh = flags.geometry.Refresh
	return opts
}

// runLayout loads the graph, runs the pipeline, and writes the artifacts.
func (c *CLI) runLayout(ctx context.Context, input string, cfg pipeline.Config, opts pipeline.Options, flags layoutFlags) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	res, err := runner.Execute(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Laid out %d nodes", len(res.Layout.Nodes)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(input, flags.output, sortedFormats(res.Artifacts))
	for _, format := range sortedFormats(res.Artifacts) {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", paths[format], err)
		}
	}

	printSuccess("Layout complete")
	for _, format := range sortedFormats(res.Artifacts) {
		printFile(paths[format])
	}
	printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.Crossings, res.CacheInfo.LayoutHit)
	if _, ok := res.Artifacts[pipeline.FormatSVG]; !ok {
		printNewline()
		printNextStep("Render", fmt.Sprintf("%s layout %s -f svg", appName, input))
	}
	return nil
}

// outputPaths names one file per format. An explicit output is used as is
// for a single format; with several formats its extension is replaced.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := strings.TrimSuffix(input, filepath.Ext(input)) + ".layout"
	if output != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// sortedFormats returns the artifact formats in a stable order.
func sortedFormats(artifacts map[string][]byte) []string {
	var formats []string
	for _, f := range []string{pipeline.FormatJSON, pipeline.FormatDOT, pipeline.FormatSVG} {
		if _, ok := artifacts[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}
