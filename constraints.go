package flexbox

import "math"

// Unbounded marks an axis with no upper limit. It is positive infinity
// rather than a large finite sentinel, so comparisons are exact and
// subtraction cannot silently overflow into a bogus bound.
var Unbounded = math.Inf(1)

// IsUnbounded reports whether v is the Unbounded marker.
func IsUnbounded(v float64) bool {
	return math.IsInf(v, 1)
}

// Constraints is the (min, max) box a node's resolved size must respect on
// each axis. A max equal to Unbounded means the axis has no upper limit.
//
// Invariant: if min > max on an axis, min wins—the node exceeds max rather
// than violate min.
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight creates Constraints that admit exactly one size.
func Tight(s Size) Constraints {
	return Constraints{
		MinWidth: s.Width, MaxWidth: s.Width,
		MinHeight: s.Height, MaxHeight: s.Height,
	}
}

// Loose creates Constraints from zero up to the given maximums.
func Loose(maxWidth, maxHeight float64) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// Unconstrained creates Constraints with no limits on either axis.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// ConstrainWidth clamps v into [MinWidth, MaxWidth], min winning over max.
func (c Constraints) ConstrainWidth(v float64) float64 {
	return clamp(v, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps v into [MinHeight, MaxHeight], min winning over max.
func (c Constraints) ConstrainHeight(v float64) float64 {
	return clamp(v, c.MinHeight, c.MaxHeight)
}

// Constrain clamps both dimensions of s.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  c.ConstrainWidth(s.Width),
		Height: c.ConstrainHeight(s.Height),
	}
}

// HasFixedWidth reports whether the width constraint admits exactly one value.
func (c Constraints) HasFixedWidth() bool {
	return c.MinWidth == c.MaxWidth
}

// HasFixedHeight reports whether the height constraint admits exactly one value.
func (c Constraints) HasFixedHeight() bool {
	return c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width constraint has a finite upper limit.
func (c Constraints) HasBoundedWidth() bool {
	return !IsUnbounded(c.MaxWidth)
}

// HasBoundedHeight reports whether the height constraint has a finite upper limit.
func (c Constraints) HasBoundedHeight() bool {
	return !IsUnbounded(c.MaxHeight)
}

// WithMaxWidth returns a copy with only the width upper bound replaced.
func (c Constraints) WithMaxWidth(v float64) Constraints {
	c.MaxWidth = v
	return c
}

// WithMaxHeight returns a copy with only the height upper bound replaced.
func (c Constraints) WithMaxHeight(v float64) Constraints {
	c.MaxHeight = v
	return c
}

// WithTightWidth returns a copy with the width pinned to exactly v.
func (c Constraints) WithTightWidth(v float64) Constraints {
	c.MinWidth, c.MaxWidth = v, v
	return c
}

// WithTightHeight returns a copy with the height pinned to exactly v.
func (c Constraints) WithTightHeight(v float64) Constraints {
	c.MinHeight, c.MaxHeight = v, v
	return c
}

// Deflate shrinks the constraints by the given padding, flooring every bound
// at zero. Unbounded maxes stay unbounded.
func (c Constraints) Deflate(p Padding) Constraints {
	h, v := p.Horizontal(), p.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  math.Max(0, c.MaxWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: math.Max(0, c.MaxHeight-v),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
