package flexbox

// Box is a single-child wrapper that adds padding around its child.
type Box struct {
	node
}

// NewBox creates a box around child. An empty id is replaced with a
// generated one; a nil child leaves the box empty.
func NewBox(id string, child Node, opts ...Option) *Box {
	b := &Box{node: newNode(ensureID(id))}
	if child != nil {
		b.link(b, child)
	}
	b.applyOptions(opts)
	return b
}

// With applies style options and returns the box for chaining.
func (b *Box) With(opts ...Option) *Box {
	b.applyOptions(opts)
	return b
}

// Measure shrinks the incoming constraints by the box's padding, measures
// the child against the reduced constraints, then sizes the box to the child
// plus padding, clamped to its own constraints.
func (b *Box) Measure(in Constraints) Size {
	c := b.style.selfConstraints(in)
	pad := b.style.Padding

	var child Size
	if len(b.children) > 0 {
		child = b.children[0].Measure(c.Deflate(pad))
	}

	size := c.Constrain(Size{
		Width:  child.Width + pad.Horizontal(),
		Height: child.Height + pad.Vertical(),
	})
	return b.finishMeasure(size)
}

// Place records the offset and places the child at the padding origin.
func (b *Box) Place(o Offset) {
	b.finishPlace(o)
	if len(b.children) > 0 {
		b.children[0].Place(Offset{X: b.style.Padding.Left, Y: b.style.Padding.Top})
	}
}

// AppendChild links the child; a box holds at most one.
func (b *Box) AppendChild(child Node) {
	if len(b.children) > 0 {
		panic(structuralf(b.id, "box already has a child"))
	}
	b.link(b, child)
}
