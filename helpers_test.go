package flexbox

import (
	"math"
	"testing"
)

// epsilon for float comparisons; space-distribution formulas can produce
// sub-pixel drift, so equality checks are tolerant rather than exact.
const epsilon = 1e-4

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func wantSize(t *testing.T, got Size, w, h float64) {
	t.Helper()
	if !almostEqual(got.Width, w) || !almostEqual(got.Height, h) {
		t.Errorf("size = %gx%g, want %gx%g", got.Width, got.Height, w, h)
	}
}

func wantOffset(t *testing.T, got Offset, x, y float64) {
	t.Helper()
	if !almostEqual(got.X, x) || !almostEqual(got.Y, y) {
		t.Errorf("offset = (%g,%g), want (%g,%g)", got.X, got.Y, x, y)
	}
}

// mustResult fetches a result that the test expects to exist.
func mustResult(t *testing.T, l *Layout, id string) Result {
	t.Helper()
	r, ok := l.Result(id)
	if !ok {
		t.Fatalf("Result(%q) missing", id)
	}
	return r
}

func mustAbs(t *testing.T, l *Layout, id string) Offset {
	t.Helper()
	o, ok := l.AbsolutePosition(id)
	if !ok {
		t.Fatalf("AbsolutePosition(%q) missing", id)
	}
	return o
}
