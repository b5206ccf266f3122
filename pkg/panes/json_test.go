package panes

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/stacklayout/pkg/errors"
)

func TestDecode(t *testing.T) {
	data := []byte(`{
		"type": "split", "orientation": "horizontal",
		"children": [
			{"type": "tabbed", "id": "tabbed_1", "children": [
				{"type": "pane", "id": "pane_1_1", "title": "Pane A", "content": {"path": "main.go"}}
			]},
			{"type": "tabbed", "children": [{"type": "pane", "title": "Pane C"}]}
		]
	}`)

	root, err := NewBuilder(nil).Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := `Split(id=split_3, orientation=Horizontal, weights=[0.5, 0.5])
  Tabbed(id=tabbed_1)
    Pane(id=pane_1_1, title="Pane A")
  Tabbed(id=tabbed_2)
    Pane(id=pane_1, title="Pane C")
`
	if got := AsString(root); got != want {
		t.Errorf("AsString() =\n%s\nwant:\n%s", got, want)
	}

	p, _ := FindByID(root, "pane_1_1")
	raw, ok := p.(*Pane).Content().(json.RawMessage)
	if !ok || string(raw) != `{"path": "main.go"}` {
		t.Errorf("Content() = %#v, want raw JSON", p.(*Pane).Content())
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"malformed", `{"type":`, errors.ErrCodeInvalidFormat},
		{"unknown type", `{"type": "grid"}`, errors.ErrCodeInvalidFormat},
		{"pane with children", `{"type": "pane", "id": "p", "children": [{"type": "pane"}]}`, errors.ErrCodeInvalidFormat},
		{"bad orientation", `{"type": "split", "orientation": "diagonal"}`, errors.ErrCodeInvalidInput},
		{"weights mismatch", `{"type": "split", "orientation": "vertical", "weights": [1], "children": [{"type": "pane"}, {"type": "pane"}]}`, errors.ErrCodeInvalidInput},
		{"control character id", `{"type": "pane", "id": "a\u0007b"}`, errors.ErrCodeInvalidInput},
		{"repeated pane id", `{"type": "tabbed", "id": "x", "children": [{"type": "pane", "id": "x"}, {"type": "pane", "id": "x"}]}`, errors.ErrCodeInvalidInput},
		{"container reuses pane id", `{"type": "split", "orientation": "vertical", "children": [{"type": "tabbed", "id": "p", "children": [{"type": "pane", "id": "p"}]}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBuilder(nil).Decode([]byte(tt.data)); errors.GetCode(err) != tt.code {
				t.Errorf("Decode() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestDecode_GeneratedIDsSkipExplicitOnes(t *testing.T) {
	data := []byte(`{"type": "tabbed", "id": "tabbed_1", "children": [
		{"type": "pane", "title": "first"},
		{"type": "pane", "id": "pane_1", "title": "second"}
	]}`)

	root, err := NewBuilder(nil).Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := `Tabbed(id=tabbed_1)
  Pane(id=pane_2, title="first")
  Pane(id=pane_1, title="second")
`
	if got := AsString(root); got != want {
		t.Errorf("AsString() =\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshal_RoundTripsThroughDecode(t *testing.T) {
	root, _ := NewSplitWeighted("split_root", Vertical, []Node{
		NewTabbed("tabbed_1", NewPane("pane_1_1", "Pane A", map[string]int{"line": 3})),
		NewTabbed("tabbed_2", NewPane("pane_2_1", "Pane \"B\"", nil)),
	}, []float64{0.25, 0.75})

	data, err := Marshal(root)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := NewBuilder(nil).Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	assertTree(t, back, root)

	p, _ := FindByID(back, "pane_1_1")
	if raw, _ := p.(*Pane).Content().(json.RawMessage); string(raw) != `{"line":3}` {
		t.Errorf("content = %s, want {\"line\":3}", raw)
	}
}

func TestDecodeTarget(t *testing.T) {
	tests := []struct {
		data string
		want DropTarget
	}{
		{`{"type": "tab", "container": "tabbed_1", "ref": "pane_1_1", "kind": "before"}`, TabDrop{ContainerID: "tabbed_1", RefID: "pane_1_1", Position: Before}},
		{`{"type": "tab", "container": "tabbed_1", "ref": "pane_1_1", "kind": "After"}`, TabDrop{ContainerID: "tabbed_1", RefID: "pane_1_1", Position: After}},
		{`{"type": "split", "ref": "tabbed_1", "kind": "left"}`, SplitDrop{RefID: "tabbed_1", Side: Left}},
		{`{"type": "reorder", "container": "tabbed_1", "ref": "pane_1_1"}`, ReorderDrop{ContainerID: "tabbed_1", RefID: "pane_1_1"}},
	}
	for _, tt := range tests {
		got, err := DecodeTarget([]byte(tt.data))
		if err != nil {
			t.Errorf("DecodeTarget(%s) error = %v", tt.data, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeTarget(%s) = %#v, want %#v", tt.data, got, tt.want)
		}
	}
}

func TestDecodeTarget_Errors(t *testing.T) {
	for _, data := range []string{
		`{"type": "float", "ref": "x"}`,
		`{"type": "split", "ref": "x", "kind": "diagonal"}`,
		`not json`,
	} {
		if _, err := DecodeTarget([]byte(data)); err == nil {
			t.Errorf("DecodeTarget(%s) should fail", data)
		}
	}
}
