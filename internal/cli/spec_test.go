package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDoc_Panel(t *testing.T) {
	doc, err := LoadDoc(filepath.Join("testdata", "panel.toml"))
	if err != nil {
		t.Fatalf("LoadDoc: %v", err)
	}

	if doc.Target.Width != 40 || doc.Target.Height != 12 {
		t.Errorf("target = %gx%g, want 40x12", doc.Target.Width, doc.Target.Height)
	}
	if doc.Root.Kind != "column" || len(doc.Root.Children) != 2 {
		t.Fatalf("root = %q with %d children, want column with 2", doc.Root.Kind, len(doc.Root.Children))
	}

	labels := doc.Labels()
	if labels["title"] != "Title" || labels["close"] != "[x]" {
		t.Errorf("labels = %v, want title and close entries", labels)
	}
}

func TestDoc_Build_ComputesPanel(t *testing.T) {
	doc, err := LoadDoc(filepath.Join("testdata", "panel.toml"))
	if err != nil {
		t.Fatalf("LoadDoc: %v", err)
	}
	layout, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	layout.Compute()

	header, ok := layout.Result("header")
	if !ok {
		t.Fatal("header not found after compute")
	}
	if header.Size.Width != 38 || header.Size.Height != 2 {
		t.Errorf("header size = %+v, want 38x2", header.Size)
	}

	// Title absorbs what the close button and gap leave: 38 - 3 - 1.
	title, _ := layout.Result("title")
	if title.Size.Width != 34 {
		t.Errorf("title width = %g, want 34", title.Size.Width)
	}

	// Content gets the rest of the inner height: 12 - 2 padding - 2 header - 1 gap.
	content, _ := layout.Result("content")
	if content.Size.Height != 7 {
		t.Errorf("content height = %g, want 7", content.Size.Height)
	}
}

func TestDoc_Build_RejectsMalformedNodes(t *testing.T) {
	type tc struct {
		doc  Doc
		want string
	}

	target := TargetDoc{Width: 10, Height: 10}
	tests := map[string]tc{
		"missing kind": {
			doc:  Doc{Target: target, Root: NodeDoc{ID: "r"}},
			want: "missing kind",
		},
		"unknown kind": {
			doc:  Doc{Target: target, Root: NodeDoc{ID: "r", Kind: "grid"}},
			want: "unknown kind",
		},
		"leaf with children": {
			doc: Doc{Target: target, Root: NodeDoc{
				ID: "r", Kind: "leaf",
				Children: []NodeDoc{{ID: "c", Kind: "leaf"}},
			}},
			want: "leaf cannot have children",
		},
		"box without child": {
			doc:  Doc{Target: target, Root: NodeDoc{ID: "r", Kind: "box"}},
			want: "exactly one child",
		},
		"bad direction": {
			doc:  Doc{Target: target, Root: NodeDoc{ID: "r", Kind: "flex", Direction: "diagonal"}},
			want: "unknown direction",
		},
		"bad padding arity": {
			doc:  Doc{Target: target, Root: NodeDoc{ID: "r", Kind: "row", Padding: []float64{1, 2, 3}}},
			want: "padding needs",
		},
		"bad justify": {
			doc:  Doc{Target: target, Root: NodeDoc{ID: "r", Kind: "row", Justify: "middle"}},
			want: "unknown justify",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.doc.Build()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestLoadDoc_RejectsBadInput(t *testing.T) {
	if _, err := LoadDoc(filepath.Join("testdata", "does-not-exist.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "zero.toml")
	if err := os.WriteFile(path, []byte("[target]\nwidth = 0\nheight = 5\n[root]\nid = \"r\"\nkind = \"row\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDoc(path); err == nil || !strings.Contains(err.Error(), "positive") {
		t.Errorf("error = %v, want positive-target complaint", err)
	}
}
