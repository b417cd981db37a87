package flexbox

// Result holds the computed geometry for one node: its size from Measure and
// its offset relative to the immediate parent from Place. A Result is only
// meaningful after both phases have run.
type Result struct {
	Offset Offset
	Size   Size
}

// phase tracks a node's progress through one compute pass.
// Re-measuring an already-measured node is legal (the flex algorithm measures
// children a second time with pinned constraints); placing before measuring
// is not.
type phase uint8

const (
	phaseUnmeasured phase = iota
	phaseMeasured
	phasePlaced
)

// Node is the contract every layout node implements. The three concrete
// kinds are [Leaf], [Box] and [Flex]; the interface is sealed so the engine
// can rely on their shared lifecycle.
type Node interface {
	// ID returns the node's unique handle within its tree.
	ID() string

	// Style returns the node's mutable layout properties.
	Style() *Style

	// Measure resolves the node's size within the given constraints and
	// records it. Children are measured recursively.
	Measure(Constraints) Size

	// Place records the node's offset relative to its parent and positions
	// any children. Panics with UsageOrderError if called before Measure.
	Place(Offset)

	// AppendChild links a child into the node. Panics with StructuralError
	// on node kinds that cannot take (more) children.
	AppendChild(Node)

	// Children returns the node's children in declaration order.
	Children() []Node

	// Parent returns the node's parent, or nil for the root. Parent
	// references are used only to accumulate absolute offsets.
	Parent() Node

	// Result returns the node's computed geometry.
	Result() Result

	setParent(Node)
	reset()
}

// node carries the state shared by all concrete kinds.
type node struct {
	id       string
	style    Style
	parent   Node
	children []Node
	res      Result
	phase    phase
}

func newNode(id string) node {
	return node{id: id, style: DefaultStyle()}
}

func (n *node) ID() string       { return n.id }
func (n *node) Style() *Style    { return &n.style }
func (n *node) Children() []Node { return n.children }
func (n *node) Parent() Node     { return n.parent }
func (n *node) Result() Result   { return n.res }
func (n *node) setParent(p Node) { n.parent = p }

// reset returns the node to the unmeasured phase. Compute calls this on
// every node first, which is what makes repeated computes idempotent.
func (n *node) reset() {
	n.phase = phaseUnmeasured
	n.res = Result{}
}

// finishMeasure records the measured size and advances the phase.
func (n *node) finishMeasure(s Size) Size {
	if n.phase == phasePlaced {
		panic(usagef(n.id, "Measure", "node already placed in this pass"))
	}
	n.res.Size = s
	n.phase = phaseMeasured
	return s
}

// finishPlace records the local offset. The node must have been measured.
func (n *node) finishPlace(o Offset) {
	if n.phase == phaseUnmeasured {
		panic(usagef(n.id, "Place", "node has not been measured"))
	}
	n.res.Offset = o
	n.phase = phasePlaced
}

// link attaches child to the given parent and appends it to the shared
// child list.
func (n *node) link(parent Node, child Node) {
	child.setParent(parent)
	n.children = append(n.children, child)
}

// applyOptions runs construction-time style options.
func (n *node) applyOptions(opts []Option) {
	for _, opt := range opts {
		opt(&n.style)
	}
}
