package flexbox

// Size is a width/height pair. Both dimensions are non-negative.
type Size struct {
	Width, Height float64
}

// Offset is an (X, Y) position relative to a node's immediate parent.
type Offset struct {
	X, Y float64
}

// Add returns a new Offset translated by other. Summing local offsets up the
// parent chain yields a position relative to the tree root.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Padding is inner spacing on four sides of a box. All values are
// non-negative.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// PadAll creates Padding with the same value on all sides.
func PadAll(v float64) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal
// (left/right) values.
func PadSymmetric(v, h float64) Padding {
	return Padding{Left: h, Top: v, Right: h, Bottom: v}
}

// PadLTRB creates Padding from explicit left, top, right, bottom values.
func PadLTRB(l, t, r, b float64) Padding {
	return Padding{Left: l, Top: t, Right: r, Bottom: b}
}

// Horizontal returns the sum of Left and Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the sum of Top and Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// IsZero returns true if all four sides are zero.
func (p Padding) IsZero() bool {
	return p.Left == 0 && p.Top == 0 && p.Right == 0 && p.Bottom == 0
}
