package flexbox

import "testing"

func TestConstrain_MinWinsOverMax(t *testing.T) {
	type tc struct {
		c    Constraints
		v    float64
		want float64
	}

	tests := map[string]tc{
		"inside range": {
			c: Constraints{MinWidth: 2, MaxWidth: 10}, v: 5, want: 5,
		},
		"below min": {
			c: Constraints{MinWidth: 2, MaxWidth: 10}, v: 1, want: 2,
		},
		"above max": {
			c: Constraints{MinWidth: 2, MaxWidth: 10}, v: 12, want: 10,
		},
		"min exceeds max, min wins": {
			c: Constraints{MinWidth: 8, MaxWidth: 4}, v: 5, want: 8,
		},
		"unbounded max": {
			c: Constraints{MinWidth: 0, MaxWidth: Unbounded}, v: 1e9, want: 1e9,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.ConstrainWidth(tt.v); got != tt.want {
				t.Errorf("ConstrainWidth(%g) = %g, want %g", tt.v, got, tt.want)
			}
		})
	}
}

func TestConstraints_Predicates(t *testing.T) {
	tight := Tight(Size{Width: 5, Height: 3})
	if !tight.HasFixedWidth() || !tight.HasFixedHeight() {
		t.Error("Tight constraints should be fixed on both axes")
	}
	if !tight.HasBoundedWidth() || !tight.HasBoundedHeight() {
		t.Error("Tight constraints should be bounded on both axes")
	}

	loose := Loose(5, 3)
	if loose.HasFixedWidth() || loose.HasFixedHeight() {
		t.Error("Loose constraints should not be fixed")
	}
	if !loose.HasBoundedWidth() {
		t.Error("Loose constraints should be bounded")
	}

	open := Unconstrained()
	if open.HasBoundedWidth() || open.HasBoundedHeight() {
		t.Error("Unconstrained constraints should be unbounded")
	}
	if !IsUnbounded(open.MaxWidth) {
		t.Error("Unconstrained MaxWidth should be the Unbounded marker")
	}
}

func TestConstraints_DeriveCopies(t *testing.T) {
	base := Loose(10, 8)

	derived := base.WithTightWidth(4)
	if derived.MinWidth != 4 || derived.MaxWidth != 4 {
		t.Errorf("WithTightWidth = [%g,%g], want [4,4]", derived.MinWidth, derived.MaxWidth)
	}
	// Original must be unmodified.
	if base.MinWidth != 0 || base.MaxWidth != 10 {
		t.Errorf("original mutated: [%g,%g]", base.MinWidth, base.MaxWidth)
	}

	capped := base.WithMaxHeight(2)
	if capped.MaxHeight != 2 || capped.MaxWidth != 10 {
		t.Errorf("WithMaxHeight changed the wrong bounds: %+v", capped)
	}
}

func TestConstraints_Deflate(t *testing.T) {
	type tc struct {
		c    Constraints
		p    Padding
		want Constraints
	}

	tests := map[string]tc{
		"shrinks all bounds": {
			c:    Constraints{MinWidth: 4, MaxWidth: 10, MinHeight: 2, MaxHeight: 8},
			p:    PadAll(1),
			want: Constraints{MinWidth: 2, MaxWidth: 8, MinHeight: 0, MaxHeight: 6},
		},
		"floors at zero": {
			c:    Loose(1, 1),
			p:    PadAll(2),
			want: Constraints{},
		},
		"unbounded stays unbounded": {
			c:    Unconstrained(),
			p:    PadAll(3),
			want: Unconstrained(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.Deflate(tt.p); got != tt.want {
				t.Errorf("Deflate = %+v, want %+v", got, tt.want)
			}
		})
	}
}
