package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/overlayui/flexbox"
)

// Doc is the top-level TOML layout descriptor.
//
// A descriptor names a target extent and a root node; each node may carry
// any subset of the style fields plus recursive [[children]] tables:
//
//	[target]
//	width = 40
//	height = 12
//
//	[root]
//	id = "panel"
//	kind = "column"
//	padding = [1]
//	gap = 1
//
//	[[root.children]]
//	id = "header"
//	kind = "leaf"
//	height = 2
type Doc struct {
	Target TargetDoc `toml:"target"`
	Root   NodeDoc   `toml:"root"`
}

// TargetDoc is the extent the root is laid out into.
type TargetDoc struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// NodeDoc is one node of the descriptor tree. Pointer fields distinguish
// "not set" from an explicit zero.
type NodeDoc struct {
	ID   string `toml:"id"`
	Kind string `toml:"kind"` // row, column, flex, box, leaf, spacer

	Direction string `toml:"direction"` // flex only: row, column, row-reverse, column-reverse
	Justify   string `toml:"justify"`
	Align     string `toml:"align"`

	IntrinsicWidth  float64 `toml:"intrinsic_width"`  // leaf only
	IntrinsicHeight float64 `toml:"intrinsic_height"` // leaf only

	Width     *float64  `toml:"width"`
	Height    *float64  `toml:"height"`
	MinWidth  *float64  `toml:"min_width"`
	MinHeight *float64  `toml:"min_height"`
	MaxWidth  *float64  `toml:"max_width"`
	MaxHeight *float64  `toml:"max_height"`
	Grow      *float64  `toml:"grow"`
	Shrink    *float64  `toml:"shrink"`
	Basis     *float64  `toml:"basis"`
	Gap       *float64  `toml:"gap"`
	Padding   []float64 `toml:"padding"` // [all], [horizontal, vertical], or [left, top, right, bottom]

	Label string `toml:"label"` // rendering hint, not layout input

	Children []NodeDoc `toml:"children"`
}

// LoadDoc reads and decodes a TOML layout descriptor from path.
func LoadDoc(path string) (*Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}
	var doc Doc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding descriptor: %w", err)
	}
	if doc.Target.Width <= 0 || doc.Target.Height <= 0 {
		return nil, fmt.Errorf("descriptor target must be positive, got %gx%g", doc.Target.Width, doc.Target.Height)
	}
	return &doc, nil
}

// Build turns the descriptor into a layout tree ready to compute.
func (d *Doc) Build() (*flexbox.Layout, error) {
	root, err := buildNode(d.Root)
	if err != nil {
		return nil, err
	}
	return flexbox.New(d.Target.Width, d.Target.Height).SetRoot(root), nil
}

// Labels returns the rendering labels declared in the descriptor, keyed by
// node id. Nodes without a label are omitted.
func (d *Doc) Labels() map[string]string {
	labels := map[string]string{}
	var collect func(nd NodeDoc)
	collect = func(nd NodeDoc) {
		if nd.Label != "" && nd.ID != "" {
			labels[nd.ID] = nd.Label
		}
		for _, c := range nd.Children {
			collect(c)
		}
	}
	collect(d.Root)
	return labels
}

func buildNode(nd NodeDoc) (flexbox.Node, error) {
	opts, err := nodeOptions(nd)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", nd.ID, err)
	}

	switch nd.Kind {
	case "leaf":
		if len(nd.Children) > 0 {
			return nil, fmt.Errorf("node %q: leaf cannot have children", nd.ID)
		}
		return flexbox.NewLeaf(nd.ID, nd.IntrinsicWidth, nd.IntrinsicHeight, opts...), nil

	case "spacer":
		if len(nd.Children) > 0 {
			return nil, fmt.Errorf("node %q: spacer cannot have children", nd.ID)
		}
		return flexbox.Spacer(nd.ID, opts...), nil

	case "box":
		if len(nd.Children) != 1 {
			return nil, fmt.Errorf("node %q: box needs exactly one child, got %d", nd.ID, len(nd.Children))
		}
		child, err := buildNode(nd.Children[0])
		if err != nil {
			return nil, err
		}
		return flexbox.NewBox(nd.ID, child, opts...), nil

	case "row", "column", "flex":
		dir, err := nodeDirection(nd)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nd.ID, err)
		}
		children := make([]flexbox.Node, 0, len(nd.Children))
		for _, c := range nd.Children {
			built, err := buildNode(c)
			if err != nil {
				return nil, err
			}
			children = append(children, built)
		}
		return flexbox.NewFlex(nd.ID, dir, children...).With(opts...), nil

	case "":
		return nil, fmt.Errorf("node %q: missing kind", nd.ID)
	default:
		return nil, fmt.Errorf("node %q: unknown kind %q", nd.ID, nd.Kind)
	}
}

func nodeDirection(nd NodeDoc) (flexbox.Direction, error) {
	switch nd.Kind {
	case "row":
		return flexbox.Row, nil
	case "column":
		return flexbox.Column, nil
	}
	switch nd.Direction {
	case "row", "":
		return flexbox.Row, nil
	case "column":
		return flexbox.Column, nil
	case "row-reverse":
		return flexbox.RowReverse, nil
	case "column-reverse":
		return flexbox.ColumnReverse, nil
	default:
		return flexbox.Row, fmt.Errorf("unknown direction %q", nd.Direction)
	}
}

func nodeOptions(nd NodeDoc) ([]flexbox.Option, error) {
	var opts []flexbox.Option

	if nd.Width != nil {
		opts = append(opts, flexbox.WithWidth(*nd.Width))
	}
	if nd.Height != nil {
		opts = append(opts, flexbox.WithHeight(*nd.Height))
	}
	if nd.MinWidth != nil {
		opts = append(opts, flexbox.WithMinWidth(*nd.MinWidth))
	}
	if nd.MinHeight != nil {
		opts = append(opts, flexbox.WithMinHeight(*nd.MinHeight))
	}
	if nd.MaxWidth != nil {
		opts = append(opts, flexbox.WithMaxWidth(*nd.MaxWidth))
	}
	if nd.MaxHeight != nil {
		opts = append(opts, flexbox.WithMaxHeight(*nd.MaxHeight))
	}
	if nd.Grow != nil {
		opts = append(opts, flexbox.WithGrow(*nd.Grow))
	}
	if nd.Shrink != nil {
		opts = append(opts, flexbox.WithShrink(*nd.Shrink))
	}
	if nd.Basis != nil {
		opts = append(opts, flexbox.WithBasis(*nd.Basis))
	}
	if nd.Gap != nil {
		opts = append(opts, flexbox.WithGap(*nd.Gap))
	}

	switch len(nd.Padding) {
	case 0:
	case 1:
		opts = append(opts, flexbox.WithPadding(flexbox.PadAll(nd.Padding[0])))
	case 2:
		opts = append(opts, flexbox.WithPadding(flexbox.PadSymmetric(nd.Padding[0], nd.Padding[1])))
	case 4:
		opts = append(opts, flexbox.WithPadding(flexbox.PadLTRB(nd.Padding[0], nd.Padding[1], nd.Padding[2], nd.Padding[3])))
	default:
		return nil, fmt.Errorf("padding needs 1, 2, or 4 values, got %d", len(nd.Padding))
	}

	if nd.Justify != "" {
		j, err := parseJustify(nd.Justify)
		if err != nil {
			return nil, err
		}
		opts = append(opts, flexbox.WithJustify(j))
	}
	if nd.Align != "" {
		a, err := parseAlign(nd.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, flexbox.WithAlign(a))
	}

	return opts, nil
}

func parseJustify(s string) (flexbox.Justify, error) {
	switch s {
	case "start":
		return flexbox.JustifyStart, nil
	case "end":
		return flexbox.JustifyEnd, nil
	case "center":
		return flexbox.JustifyCenter, nil
	case "space-between":
		return flexbox.JustifySpaceBetween, nil
	case "space-around":
		return flexbox.JustifySpaceAround, nil
	case "space-evenly":
		return flexbox.JustifySpaceEvenly, nil
	default:
		return flexbox.JustifyStart, fmt.Errorf("unknown justify %q", s)
	}
}

func parseAlign(s string) (flexbox.Align, error) {
	switch s {
	case "start":
		return flexbox.AlignStart, nil
	case "end":
		return flexbox.AlignEnd, nil
	case "center":
		return flexbox.AlignCenter, nil
	case "stretch":
		return flexbox.AlignStretch, nil
	default:
		return flexbox.AlignStart, fmt.Errorf("unknown align %q", s)
	}
}
