package flexbox

import "math"

// Flex is a multi-child container that distributes space along its main axis
// (Row or Column, optionally reversed) and aligns children on the cross axis.
type Flex struct {
	node

	// items is per-child scratch state from the last Measure, consumed by
	// Place. Rebuilt on every measure; never shared across trees.
	items []flexItem
}

// flexItem holds intermediate calculation state for one child.
type flexItem struct {
	node      Node
	mainSize  float64
	crossSize float64
	flexible  bool
}

// NewFlex creates a flex container with the given main axis. An empty id is
// replaced with a generated one.
func NewFlex(id string, dir Direction, children ...Node) *Flex {
	f := &Flex{node: newNode(ensureID(id))}
	f.style.Direction = dir
	for _, child := range children {
		f.link(f, child)
	}
	return f
}

// NewRow creates a container that lays children out left-to-right.
func NewRow(id string, children ...Node) *Flex {
	return NewFlex(id, Row, children...)
}

// NewColumn creates a container that lays children out top-to-bottom.
func NewColumn(id string, children ...Node) *Flex {
	return NewFlex(id, Column, children...)
}

// With applies style options and returns the container for chaining.
func (f *Flex) With(opts ...Option) *Flex {
	f.applyOptions(opts)
	return f
}

// AppendChild links another child at the end of the declaration order.
func (f *Flex) AppendChild(child Node) {
	f.link(f, child)
}

// Measure runs the three-pass flex algorithm: main-axis sizing (fixed
// children measured, leftover distributed by grow, overflow reclaimed by
// shrink), a pinned cross-axis re-measure, and container sizing. Placement
// (pass three) runs in Place once the final size is known.
func (f *Flex) Measure(in Constraints) Size {
	c := f.style.selfConstraints(in)
	pad := f.style.Padding
	n := len(f.children)
	if n == 0 {
		f.items = nil
		return f.finishMeasure(c.Constrain(Size{Width: pad.Horizontal(), Height: pad.Vertical()}))
	}

	inner := c.Deflate(pad)
	horizontal := f.style.Direction.horizontal()
	availMain, availCross := inner.MaxWidth, inner.MaxHeight
	if !horizontal {
		availMain, availCross = availCross, availMain
	}
	mainBounded := !IsUnbounded(availMain)
	crossBounded := !IsUnbounded(availCross)
	totalGap := f.style.Gap * float64(n-1)
	items := make([]flexItem, n)

	// Pass 1: main-axis sizing. A child is flexible only when it wants to
	// grow, the main axis is bounded, and it declares no explicit basis;
	// everything else is measured at its natural extent.
	consumed := totalGap
	totalGrow := 0.0
	for i, child := range f.children {
		cs := child.Style()
		it := &items[i]
		it.node = child
		it.flexible = cs.FlexGrow > 0 && mainBounded && cs.FlexBasis.IsAuto()
		if it.flexible {
			totalGrow += cs.FlexGrow
			continue
		}
		maxMain := Unbounded
		if !cs.FlexBasis.IsAuto() {
			maxMain = cs.FlexBasis.Amount
		}
		maxCross := Unbounded
		if crossBounded {
			maxCross = availCross
		}
		sz := child.Measure(axisConstraints(horizontal, 0, maxMain, 0, maxCross))
		it.mainSize = mainAxis(sz, horizontal)
		consumed += it.mainSize
	}

	// Distribute the leftover to flexible children proportionally to grow.
	if totalGrow > 0 {
		remaining := math.Max(0, availMain-consumed)
		for i := range items {
			if items[i].flexible {
				items[i].mainSize = remaining * items[i].node.Style().FlexGrow / totalGrow
			}
		}
	}

	// Reclaim overflow proportionally to shrink weight (shrink × size),
	// flooring every child at zero.
	if mainBounded {
		total := totalGap
		for i := range items {
			total += items[i].mainSize
		}
		if total > availMain {
			overflow := total - availMain
			totalWeight := 0.0
			for i := range items {
				totalWeight += items[i].node.Style().FlexShrink * items[i].mainSize
			}
			if totalWeight > 0 {
				for i := range items {
					weight := items[i].node.Style().FlexShrink * items[i].mainSize
					items[i].mainSize = math.Max(0, items[i].mainSize-overflow*weight/totalWeight)
				}
			}
		}
	}

	// Pass 2: re-measure every child with its main extent pinned. A child's
	// own internal layout can only resolve once its final main allocation is
	// known, so sizing and stretching cannot be folded into one pass.
	stretch := f.style.AlignItems == AlignStretch && crossBounded
	for i := range items {
		minCross, maxCross := 0.0, Unbounded
		if stretch {
			minCross, maxCross = availCross, availCross
		}
		m := items[i].mainSize
		sz := items[i].node.Measure(axisConstraints(horizontal, m, m, minCross, maxCross))
		items[i].mainSize = mainAxis(sz, horizontal)
		items[i].crossSize = crossAxis(sz, horizontal)
	}

	// Container sizing: fill the available extent when bounded, otherwise
	// wrap the content.
	contentMain := totalGap
	maxChildCross := 0.0
	for i := range items {
		contentMain += items[i].mainSize
		maxChildCross = math.Max(maxChildCross, items[i].crossSize)
	}
	mainExtent := contentMain
	if mainBounded {
		mainExtent = availMain
	}
	crossExtent := maxChildCross
	if crossBounded {
		crossExtent = availCross
	}

	size := Size{Width: mainExtent + pad.Horizontal(), Height: crossExtent + pad.Vertical()}
	if !horizontal {
		size = Size{Width: crossExtent + pad.Horizontal(), Height: mainExtent + pad.Vertical()}
	}
	f.items = items
	return f.finishMeasure(c.Constrain(size))
}

// Place records the container's offset, then walks children in declaration
// order (reversed for RowReverse/ColumnReverse), positioning each from the
// justify and align rules. Pass three of the algorithm.
func (f *Flex) Place(o Offset) {
	f.finishPlace(o)
	n := len(f.items)
	if n == 0 {
		return
	}

	s := &f.style
	pad := s.Padding
	horizontal := s.Direction.horizontal()
	availMain := math.Max(0, f.res.Size.Width-pad.Horizontal())
	availCross := math.Max(0, f.res.Size.Height-pad.Vertical())
	if !horizontal {
		availMain, availCross = availCross, availMain
	}

	sizes := 0.0
	for i := range f.items {
		sizes += f.items[i].mainSize
	}
	content := sizes + s.Gap*float64(n-1)

	mainPos := justifyOffset(s.JustifyContent, availMain, content, sizes, n)
	spacing := justifySpacing(s.JustifyContent, s.Gap, availMain, sizes, n)

	for i := 0; i < n; i++ {
		idx := i
		if s.Direction.reversed() {
			idx = n - 1 - i
		}
		it := &f.items[idx]
		crossPos := alignOffset(s.AlignItems, availCross, it.crossSize)
		off := Offset{X: pad.Left + mainPos, Y: pad.Top + crossPos}
		if !horizontal {
			off = Offset{X: pad.Left + crossPos, Y: pad.Top + mainPos}
		}
		it.node.Place(off)
		mainPos += it.mainSize + spacing
	}
}

// justifyOffset returns the starting main-axis position for the first child.
func justifyOffset(j Justify, available, content, sizes float64, count int) float64 {
	switch j {
	case JustifyEnd:
		return available - content
	case JustifyCenter:
		return (available - content) / 2
	case JustifySpaceAround:
		return (available - sizes) / float64(2*count)
	case JustifySpaceEvenly:
		return (available - sizes) / float64(count+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the effective gap between consecutive children.
// With one or zero children the Space* modes degrade to the declared gap,
// so there is never a division by zero.
func justifySpacing(j Justify, gap, available, sizes float64, count int) float64 {
	if count <= 1 {
		return gap
	}
	switch j {
	case JustifySpaceBetween:
		return (available - sizes) / float64(count-1)
	case JustifySpaceAround:
		return (available - sizes) / float64(count)
	case JustifySpaceEvenly:
		return (available - sizes) / float64(count+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return gap
	}
}

// alignOffset returns a child's cross-axis position. Stretch resolves to the
// start because the child was already sized to fill in pass two.
func alignOffset(a Align, cross, item float64) float64 {
	switch a {
	case AlignEnd:
		return cross - item
	case AlignCenter:
		return (cross - item) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// axisConstraints assembles Constraints from main/cross bounds for the given
// orientation.
func axisConstraints(horizontal bool, minMain, maxMain, minCross, maxCross float64) Constraints {
	if horizontal {
		return Constraints{MinWidth: minMain, MaxWidth: maxMain, MinHeight: minCross, MaxHeight: maxCross}
	}
	return Constraints{MinWidth: minCross, MaxWidth: maxCross, MinHeight: minMain, MaxHeight: maxMain}
}

// mainAxis extracts the main-axis extent of s.
func mainAxis(s Size, horizontal bool) float64 {
	if horizontal {
		return s.Width
	}
	return s.Height
}

// crossAxis extracts the cross-axis extent of s.
func crossAxis(s Size, horizontal bool) float64 {
	if horizontal {
		return s.Height
	}
	return s.Width
}
