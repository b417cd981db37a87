package flexbox

import "testing"

func TestOffset_Add(t *testing.T) {
	got := Offset{X: 1.5, Y: 2}.Add(Offset{X: 0.5, Y: -1})
	wantOffset(t, got, 2, 1)
}

func TestPadding_Sums(t *testing.T) {
	p := PadLTRB(1, 2, 3, 4)
	if p.Horizontal() != 4 {
		t.Errorf("Horizontal = %g, want 4", p.Horizontal())
	}
	if p.Vertical() != 6 {
		t.Errorf("Vertical = %g, want 6", p.Vertical())
	}
	if !PadAll(0).IsZero() {
		t.Error("PadAll(0) should be zero")
	}
	if PadSymmetric(0, 1).IsZero() {
		t.Error("PadSymmetric(0, 1) should not be zero")
	}
}
