package flexbox

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	Column                         // Children laid out top-to-bottom
	RowReverse                     // Children laid out right-to-left
	ColumnReverse                  // Children laid out bottom-to-top
)

// horizontal reports whether the main axis is the x axis.
func (d Direction) horizontal() bool {
	return d == Row || d == RowReverse
}

// reversed reports whether children are placed in reverse declaration order.
func (d Direction) reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64 // Unbounded = no maximum
	MaxHeight float64 // Unbounded = no maximum

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            float64 // Space between consecutive children (main axis)

	// Flex item properties
	FlexGrow   float64 // Share of leftover main-axis space
	FlexShrink float64 // Share of an overflow reduction (default 1)
	FlexBasis  Value   // Explicit initial main-axis size (Auto = none)

	// Spacing
	Padding Padding
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MaxWidth:   Unbounded,
		MaxHeight:  Unbounded,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
		FlexBasis:  Auto(),
	}
}

// selfConstraints layers the node's own sizing overrides onto the incoming
// constraints: an explicit width/height pins min=max, then both bounds are
// clamped into the node's own min/max. The node's bounds win over incoming
// ones (a stretch-pinned child is still capped by its own max), and within
// the node's bounds min wins over max.
func (s *Style) selfConstraints(in Constraints) Constraints {
	c := in
	if !s.Width.IsAuto() {
		c.MinWidth, c.MaxWidth = s.Width.Amount, s.Width.Amount
	}
	if !s.Height.IsAuto() {
		c.MinHeight, c.MaxHeight = s.Height.Amount, s.Height.Amount
	}
	c.MinWidth = clamp(c.MinWidth, s.MinWidth, s.MaxWidth)
	c.MaxWidth = clamp(c.MaxWidth, s.MinWidth, s.MaxWidth)
	c.MinHeight = clamp(c.MinHeight, s.MinHeight, s.MaxHeight)
	c.MaxHeight = clamp(c.MaxHeight, s.MinHeight, s.MaxHeight)
	return c
}

// Option mutates a node's Style at construction time.
type Option func(*Style)

// WithWidth sets a fixed width.
func WithWidth(w float64) Option {
	return func(s *Style) { s.Width = Fixed(w) }
}

// WithHeight sets a fixed height.
func WithHeight(h float64) Option {
	return func(s *Style) { s.Height = Fixed(h) }
}

// WithSize sets both a fixed width and a fixed height.
func WithSize(w, h float64) Option {
	return func(s *Style) {
		s.Width = Fixed(w)
		s.Height = Fixed(h)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(w float64) Option {
	return func(s *Style) { s.MinWidth = w }
}

// WithMinHeight sets the minimum height.
func WithMinHeight(h float64) Option {
	return func(s *Style) { s.MinHeight = h }
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(w float64) Option {
	return func(s *Style) { s.MaxWidth = w }
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(h float64) Option {
	return func(s *Style) { s.MaxHeight = h }
}

// WithGrow sets the flex-grow weight.
func WithGrow(g float64) Option {
	return func(s *Style) { s.FlexGrow = g }
}

// WithShrink sets the flex-shrink weight.
func WithShrink(v float64) Option {
	return func(s *Style) { s.FlexShrink = v }
}

// WithBasis sets an explicit initial main-axis size used instead of the
// node's intrinsic size before grow/shrink distribution.
func WithBasis(b float64) Option {
	return func(s *Style) { s.FlexBasis = Fixed(b) }
}

// WithPadding sets the node's padding.
func WithPadding(p Padding) Option {
	return func(s *Style) { s.Padding = p }
}

// WithGap sets the fixed gap between consecutive children.
func WithGap(g float64) Option {
	return func(s *Style) { s.Gap = g }
}

// WithDirection sets the container's main axis.
func WithDirection(d Direction) Option {
	return func(s *Style) { s.Direction = d }
}

// WithJustify sets main-axis distribution.
func WithJustify(j Justify) Option {
	return func(s *Style) { s.JustifyContent = j }
}

// WithAlign sets cross-axis alignment.
func WithAlign(a Align) Option {
	return func(s *Style) { s.AlignItems = a }
}
