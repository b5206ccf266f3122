package panes_test

import (
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/panes"
)

func ExampleEngine_InsertPane() {
	e := panes.NewEngine(nil)
	root := panes.NewTabbed("tabbed_1", panes.NewPane("pane_1_1", "Pane A", nil))

	out, err := e.InsertPane(root, panes.NewPane("pane_new", "Pane B", nil),
		panes.SplitDrop{RefID: "tabbed_1", Side: panes.Top})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(panes.AsString(out))
	// Output:
	// Split(id=split_1, orientation=Vertical, weights=[0.5, 0.5])
	//   Tabbed(id=tabbed_2)
	//     Pane(id=pane_new, title="Pane B")
	//   Tabbed(id=tabbed_1)
	//     Pane(id=pane_1_1, title="Pane A")
}

func ExampleEngine_InsertPane_tab() {
	e := panes.NewEngine(nil)
	root := panes.NewTabbed("tabbed_1", panes.NewPane("pane_1_1", "Pane A", nil))

	out, _ := e.InsertPane(root, panes.NewPane("pane_new", "Pane B", nil),
		panes.TabDrop{ContainerID: "tabbed_1", RefID: "pane_1_1", Position: panes.After})
	fmt.Print(out)
	// Output:
	// Tabbed(id=tabbed_1)
	//   Pane(id=pane_1_1, title="Pane A")
	//   Pane(id=pane_new, title="Pane B")
}

func ExampleRemovePane() {
	root := panes.NewSplit("split_1", panes.Horizontal,
		panes.NewTabbed("left", panes.NewPane("editor", "Editor", nil)),
		panes.NewTabbed("right", panes.NewPane("log", "Log", nil)),
	)

	out, _ := panes.RemovePane(root, "log")
	fmt.Print(out)
	// Output:
	// Tabbed(id=left)
	//   Pane(id=editor, title="Editor")
}
