package flexbox

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Layout owns a node tree and a target size, runs the two top-level phases
// (measure, then place), and exposes by-id lookup of computed geometry.
//
// A Layout is built fresh for every recomputation; a state change in the
// owning application constructs a new tree rather than mutating this one.
type Layout struct {
	target   Size
	root     Node
	nodes    map[string]Node
	computed bool
}

// New creates a Layout that will resolve its tree against the given target
// size. The root is attached with SetRoot.
func New(width, height float64) *Layout {
	return &Layout{
		target: Size{Width: width, Height: height},
		nodes:  make(map[string]Node),
	}
}

// SetRoot attaches the tree and registers every node by id. Panics with
// StructuralError if two nodes share an id.
func (l *Layout) SetRoot(root Node) *Layout {
	l.root = root
	l.nodes = make(map[string]Node)
	l.computed = false
	l.register(root)
	return l
}

// register indexes the subtree by id and returns every node to the
// unmeasured phase. Children appended after SetRoot are picked up because
// Compute re-registers the whole tree.
func (l *Layout) register(n Node) {
	if _, dup := l.nodes[n.ID()]; dup {
		panic(structuralf(n.ID(), "duplicate node id in tree"))
	}
	l.nodes[n.ID()] = n
	n.reset()
	for _, child := range n.Children() {
		l.register(child)
	}
}

// Target returns the declared target size.
func (l *Layout) Target() Size {
	return l.target
}

// Root returns the tree root, or nil if none is attached.
func (l *Layout) Root() Node {
	return l.root
}

// Compute resolves the whole tree: the root is measured with exact
// constraints (the tree always fills its declared target), then placed at
// the origin. Compute is pure and idempotent—node state is reset first, so
// repeated calls on an unmodified tree yield identical results.
func (l *Layout) Compute() {
	if l.root == nil {
		panic(usagef("", "Compute", "no root attached"))
	}
	l.nodes = make(map[string]Node)
	l.register(l.root)
	l.root.Measure(Tight(l.target))
	l.root.Place(Offset{})
	l.computed = true
}

// Result returns the computed geometry for id. The second return is false
// when the id was never declared in this tree; conditional UI regions probe
// ids routinely, so a miss is not an error. Panics with UsageOrderError if
// called before Compute.
func (l *Layout) Result(id string) (Result, bool) {
	l.requireComputed("Result", id)
	n, ok := l.nodes[id]
	if !ok {
		return Result{}, false
	}
	return n.Result(), true
}

// AbsolutePosition returns the node's position relative to the tree root,
// accumulated from each ancestor's local offset. Each container only records
// where it placed its direct children, so the sum over the parent chain is
// the only way to recover a root-relative position. The second return is
// false when the id is absent.
func (l *Layout) AbsolutePosition(id string) (Offset, bool) {
	l.requireComputed("AbsolutePosition", id)
	n, ok := l.nodes[id]
	if !ok {
		return Offset{}, false
	}
	abs := Offset{}
	for ; n != nil; n = n.Parent() {
		abs = abs.Add(n.Result().Offset)
	}
	return abs, true
}

// Walk visits every node depth-first in declaration order, reporting each
// node's depth below the root.
func (l *Layout) Walk(fn func(n Node, depth int)) {
	if l.root == nil {
		return
	}
	walk(l.root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int)) {
	fn(n, depth)
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}

// DebugPrint writes an indented id/size/offset dump of the computed tree,
// for diagnostics. Panics with UsageOrderError if called before Compute.
func (l *Layout) DebugPrint(w io.Writer) {
	l.requireComputed("DebugPrint", "")
	l.Walk(func(n Node, depth int) {
		r := n.Result()
		for i := 0; i < depth; i++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintf(w, "%s size=%.4gx%.4g offset=(%.4g,%.4g)\n",
			n.ID(), r.Size.Width, r.Size.Height, r.Offset.X, r.Offset.Y)
	})
}

func (l *Layout) requireComputed(op, id string) {
	if !l.computed {
		panic(usagef(id, op, "layout has not been computed"))
	}
}

// ensureID returns id, or a generated unique id when empty, so anonymous
// wrapper nodes never collide in the registry.
func ensureID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
