package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/panes"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

// panesCommand creates the panes command group.
func (c *CLI) panesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panes",
		Short: "Edit pane layout trees",
		Long: `Edit pane layout trees.

A layout tree is JSON made of three node types:

  {"type": "split", "orientation": "horizontal", "weights": [0.5, 0.5], "children": [...]}
  {"type": "tabbed", "id": "tabbed_1", "children": [...]}
  {"type": "pane", "id": "pane_1_1", "title": "Pane A", "content": {...}}

Nodes without an id are given one. Every command prints the resulting tree
as an indented outline, or as JSON with --json.`,
	}

	cmd.AddCommand(c.panesShowCommand())
	cmd.AddCommand(c.panesInsertCommand())
	cmd.AddCommand(c.panesRemoveCommand())
	cmd.AddCommand(c.panesResizeCommand())

	return cmd
}

// treeOutput holds the flags shared by commands that print a tree.
type treeOutput struct {
	asJSON bool
	output string
}

func (o *treeOutput) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "print the tree as JSON")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "also write the tree as JSON to this file")
}

func (o *treeOutput) write(w io.Writer, root panes.Node) error {
	if o.output != "" || o.asJSON {
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode tree")
		}
		if o.output != "" {
			if err := os.WriteFile(o.output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write output %s: %w", o.output, err)
			}
		}
		if o.asJSON {
			_, err := fmt.Fprintln(w, string(data))
			return err
		}
	}
	_, err := fmt.Fprint(w, panes.AsString(root))
	return err
}

func (c *CLI) panesShowCommand() *cobra.Command {
	var out treeOutput
	cmd := &cobra.Command{
		Use:   "show [tree.json]",
		Short: "Print a layout tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(panes.NewBuilder(nil), args[0])
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), root)
		},
	}
	out.register(cmd)
	return cmd
}

func (c *CLI) panesInsertCommand() *cobra.Command {
	var out treeOutput
	cmd := &cobra.Command{
		Use:   "insert [request.json]",
		Short: "Insert a pane into a layout tree",
		Long: `Insert a pane into a layout tree.

The request names the tree, the pane and a drop target:

  {
    "tree":   {"type": "tabbed", "id": "tabbed_1", "children": [...]},
    "pane":   {"type": "pane", "id": "pane_new", "title": "Pane B"},
    "target": {"type": "split", "ref": "tabbed_1", "kind": "top"}
  }

Targets are "tab" (container, ref, kind before|after), "split" (ref, kind
top|bottom|left|right) and "reorder", which is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			var req pipeline.InsertRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", args[0])
			}

			ctx := cmd.Context()
			runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
			resp, err := runner.InsertPane(ctx, panes.NewEngine(loggerFromContext(ctx)), req)
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), resp.Tree)
		},
	}
	out.register(cmd)
	return cmd
}

func (c *CLI) panesRemoveCommand() *cobra.Command {
	var (
		out treeOutput
		id  string
	)
	cmd := &cobra.Command{
		Use:   "remove [tree.json] --id PANE",
		Short: "Remove a pane and collapse emptied containers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(panes.NewBuilder(nil), args[0])
			if err != nil {
				return err
			}
			root, err = panes.RemovePane(root, id)
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), root)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "id of the pane to remove")
	_ = cmd.MarkFlagRequired("id")
	out.register(cmd)
	return cmd
}

func (c *CLI) panesResizeCommand() *cobra.Command {
	var (
		out   treeOutput
		id    string
		index int
		delta float64
	)
	cmd := &cobra.Command{
		Use:   "resize [tree.json] --split ID --index I --delta D",
		Short: "Move weight between two neighbouring children of a split",
		Long: `Move weight between two neighbouring children of a split.

Child I grows by D and child I+1 shrinks by D. Weights never drop below a
small minimum and are not renormalized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(panes.NewBuilder(nil), args[0])
			if err != nil {
				return err
			}
			root, err = panes.ResizeSplit(root, id, index, delta)
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), root)
		},
	}
	cmd.Flags().StringVar(&id, "split", "", "id of the split to resize")
	cmd.Flags().IntVar(&index, "index", 0, "index of the child that grows")
	cmd.Flags().Float64Var(&delta, "delta", 0.1, "weight to move")
	_ = cmd.MarkFlagRequired("split")
	out.register(cmd)
	return cmd
}

func readTree(b *panes.Builder, path string) (panes.Node, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return b.Decode(data)
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	return data, err
}
