package panes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacklayout/pkg/errors"
)

// DropKind says where a dropped pane goes relative to its reference node.
type DropKind int

const (
	Before DropKind = iota
	After
	Top
	Bottom
	Left
	Right
	Reorder
)

var dropKindNames = [...]string{"Before", "After", "Top", "Bottom", "Left", "Right", "Reorder"}

func (k DropKind) String() string {
	if k >= 0 && int(k) < len(dropKindNames) {
		return dropKindNames[k]
	}
	return fmt.Sprintf("DropKind(%d)", int(k))
}

// ParseDropKind parses a drop kind name, ignoring case.
func ParseDropKind(s string) (DropKind, error) {
	for i, name := range dropKindNames {
		if strings.EqualFold(s, name) {
			return DropKind(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown drop kind %q", s)
}

// DropTarget describes where a new pane is inserted. It is one of
// [TabDrop], [SplitDrop] or [ReorderDrop].
type DropTarget interface {
	Kind() DropKind
	dropTarget()
}

// TabDrop inserts the pane as a new tab of ContainerID, immediately before
// or after the tab RefID. Position must be [Before] or [After].
type TabDrop struct {
	ContainerID string
	RefID       string
	Position    DropKind
}

// SplitDrop replaces the node RefID by a split holding the node and the new
// pane. Side must be [Top], [Bottom], [Left] or [Right].
type SplitDrop struct {
	RefID string
	Side  DropKind
}

// ReorderDrop moves an existing tab within its container. It can never
// receive a new pane.
type ReorderDrop struct {
	ContainerID string
	RefID       string
}

func (t TabDrop) Kind() DropKind     { return t.Position }
func (t SplitDrop) Kind() DropKind   { return t.Side }
func (t ReorderDrop) Kind() DropKind { return Reorder }

func (TabDrop) dropTarget()     {}
func (SplitDrop) dropTarget()   {}
func (ReorderDrop) dropTarget() {}

// Engine applies edits to layout trees. Its only state is the identifier
// generator used for containers it creates.
type Engine struct {
	ids    *IDGen
	logger *log.Logger
}

// NewEngine creates an engine with a fresh identifier generator. If logger
// is nil, log.Default() is used.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{ids: &IDGen{}, logger: logger}
}

// IDs returns the engine's identifier generator.
func (e *Engine) IDs() *IDGen { return e.ids }

// Builder returns a builder sharing the engine's identifier generator.
func (e *Engine) Builder() *Builder { return NewBuilder(e.ids) }

// nextID draws identifiers until one is unused in root and differs from
// every reserved id.
func (e *Engine) nextID(root Node, prefix string, reserved ...string) string {
	for {
		id := e.ids.Next(prefix)
		if slices.Contains(reserved, id) {
			continue
		}
		if _, taken := FindByID(root, id); !taken {
			return id
		}
	}
}

// InsertPane returns a new tree with pane inserted at target. root is left
// untouched. Every failure is a precondition violation reported as a coded
// error: NOT_FOUND for ids missing from the tree, INVALID_OPERATION for a
// node of the wrong kind or a [ReorderDrop], INVALID_INPUT for malformed
// requests.
func (e *Engine) InsertPane(root Node, pane *Pane, target DropTarget) (Node, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "insert pane: layout is empty")
	}
	if pane == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "insert pane: no pane given")
	}
	if err := errors.ValidateID(pane.ID()); err != nil {
		return nil, err
	}
	if _, exists := FindByID(root, pane.ID()); exists {
		return nil, errors.New(errors.ErrCodeInvalidInput, "insert pane: id %q already in layout", pane.ID())
	}

	var (
		out Node
		err error
	)
	switch t := target.(type) {
	case TabDrop:
		out, err = e.insertTab(root, pane, t)
	case SplitDrop:
		out, err = e.insertSplit(root, pane, t)
	case ReorderDrop:
		err = errors.New(errors.ErrCodeInvalidOperation,
			"Cannot Reorder a pane into a tabbed container: kind=%s container=%q ref=%q pane=%q",
			t.Kind(), t.ContainerID, t.RefID, pane.ID())
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "insert pane: unsupported drop target %T", target)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Debug("inserted pane", "pane", pane.ID(), "kind", target.Kind())
	return out, nil
}

func (e *Engine) insertTab(root Node, pane *Pane, t TabDrop) (Node, error) {
	if t.Position != Before && t.Position != After {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"insert pane: tab drop kind must be Before or After, got %s", t.Position)
	}

	n, ok := FindByID(root, t.ContainerID)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound,
			"insert pane: no container %q (kind=%s ref=%q)", t.ContainerID, t.Position, t.RefID)
	}
	tabbed, ok := n.(*Tabbed)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidOperation,
			"insert pane: %q is a %s, not a tabbed container (kind=%s ref=%q)", t.ContainerID, kindOf(n), t.Position, t.RefID)
	}
	idx := tabbed.indexOf(t.RefID)
	if idx < 0 {
		return nil, errors.New(errors.ErrCodeNotFound,
			"insert pane: %q is not a tab of %q (kind=%s)", t.RefID, t.ContainerID, t.Position)
	}
	if t.Position == After {
		idx++
	}

	updated := &Tabbed{id: tabbed.id, children: slices.Insert(slices.Clone(tabbed.children), idx, Node(pane))}
	out, _ := replace(root, tabbed.id, updated)
	return out, nil
}

func (e *Engine) insertSplit(root Node, pane *Pane, t SplitDrop) (Node, error) {
	var (
		orientation Orientation
		paneFirst   bool
	)
	switch t.Side {
	case Top:
		orientation, paneFirst = Vertical, true
	case Bottom:
		orientation, paneFirst = Vertical, false
	case Left:
		orientation, paneFirst = Horizontal, true
	case Right:
		orientation, paneFirst = Horizontal, false
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"insert pane: split drop kind must be Top, Bottom, Left or Right, got %s", t.Side)
	}

	ref, ok := FindByID(root, t.RefID)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "insert pane: no node %q (kind=%s)", t.RefID, t.Side)
	}

	split := &Split{id: e.nextID(root, "split", pane.ID()), orientation: orientation, weights: []float64{0.5, 0.5}}
	wrapper := &Tabbed{id: e.nextID(root, "tabbed", pane.ID()), children: []Node{pane}}
	if paneFirst {
		split.children = []Node{wrapper, ref}
	} else {
		split.children = []Node{ref, wrapper}
	}

	out, _ := replace(root, ref.ID(), split)
	return out, nil
}

func kindOf(n Node) string {
	switch n.(type) {
	case *Pane:
		return "pane"
	case *Tabbed:
		return "tabbed container"
	case *Split:
		return "split"
	}
	return fmt.Sprintf("%T", n)
}
