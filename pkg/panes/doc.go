// Package panes implements multi-pane layout trees and drop-driven edits.
//
// A layout tree is built from three node kinds:
//
//   - [*Pane]: a leaf with an id, a title and an opaque content handle
//   - [*Tabbed]: a container whose children are tabs
//   - [*Split]: children laid out side by side, each with a weight
//
// Trees are persistent. [Engine.InsertPane], [RemovePane] and [ResizeSplit]
// never modify their input; they return a new root that shares every
// untouched subtree with the old one.
//
// # Drop targets
//
// A pane dragged onto the layout lands according to a [DropTarget]:
//
//	TabDrop{ContainerID: "tabbed_1", RefID: "pane_1_1", Position: panes.Before}
//	SplitDrop{RefID: "tabbed_1", Side: panes.Left}
//	ReorderDrop{ContainerID: "tabbed_1", RefID: "pane_1_1"} // always rejected for new panes
//
// A split drop replaces the reference node by a new [Split] holding the
// reference and a fresh [Tabbed] wrapping the pane, at weights 0.5/0.5.
// Only that one slot changes; the parent split is not flattened.
//
// # Errors
//
// Lookups that miss and nodes of the wrong kind are precondition violations,
// returned as [errors.Error] values with codes NOT_FOUND or
// INVALID_OPERATION. No partially edited tree is ever returned.
//
// # Identifiers
//
// Containers created by the engine take ids from its [IDGen], a single
// counter shared by all node kinds ("split_1", "tabbed_2", ...). Generated
// ids skip values already present in the tree. Tests call [IDGen.Reset]
// for deterministic output.
package panes
