package flexbox

// Leaf is a terminal node with an intrinsic, content-driven size. It resolves
// to its intrinsic size when it has one, to a pinned size when the incoming
// constraint is fixed, fills the available space when the constraint is
// bounded, and otherwise collapses to its minimum.
type Leaf struct {
	node
	intrinsic Size
}

// NewLeaf creates a leaf with the given intrinsic size. An empty id is
// replaced with a generated one.
func NewLeaf(id string, intrinsicWidth, intrinsicHeight float64, opts ...Option) *Leaf {
	l := &Leaf{
		node:      newNode(ensureID(id)),
		intrinsic: Size{Width: intrinsicWidth, Height: intrinsicHeight},
	}
	l.applyOptions(opts)
	return l
}

// Spacer creates a zero-intrinsic leaf that exists purely to absorb flexible
// space. Its flex-grow weight defaults to 1.
func Spacer(id string, opts ...Option) *Leaf {
	l := NewLeaf(id, 0, 0)
	l.style.FlexGrow = 1
	l.applyOptions(opts)
	return l
}

// With applies style options and returns the leaf for chaining.
func (l *Leaf) With(opts ...Option) *Leaf {
	l.applyOptions(opts)
	return l
}

// IntrinsicSize returns the leaf's natural size absent constraints.
func (l *Leaf) IntrinsicSize() Size {
	return l.intrinsic
}

// Measure resolves the leaf's size per axis: intrinsic if present (clamped),
// else the fixed constraint, else the available bound, else the minimum.
func (l *Leaf) Measure(in Constraints) Size {
	c := l.style.selfConstraints(in)
	w := resolveLeafAxis(l.intrinsic.Width, c.MinWidth, c.MaxWidth)
	h := resolveLeafAxis(l.intrinsic.Height, c.MinHeight, c.MaxHeight)
	return l.finishMeasure(Size{Width: w, Height: h})
}

// Place records the offset; a leaf has nothing else to position.
func (l *Leaf) Place(o Offset) {
	l.finishPlace(o)
}

// AppendChild panics: leaves are terminal by definition.
func (l *Leaf) AppendChild(Node) {
	panic(structuralf(l.id, "cannot add a child to a leaf node"))
}

// resolveLeafAxis picks the effective extent for one axis of a leaf.
func resolveLeafAxis(intrinsic, minVal, maxVal float64) float64 {
	switch {
	case intrinsic > 0:
		return clamp(intrinsic, minVal, maxVal)
	case minVal == maxVal:
		// Fixed constraint pins the leaf even without content.
		return minVal
	case !IsUnbounded(maxVal):
		// Bounded but not fixed: fill the available space. This is what lets
		// a zero-intrinsic leaf stretch when its parent stretches it.
		return maxVal
	default:
		return clamp(0, minVal, maxVal)
	}
}
