package flexbox

import "testing"

func TestBox_Measure_AddsPadding(t *testing.T) {
	b := NewBox("wrap", NewLeaf("content", 3, 2), WithPadding(PadAll(1)))

	got := b.Measure(Loose(20, 20))
	wantSize(t, got, 5, 4)

	child := b.Children()[0].Result()
	wantSize(t, child.Size, 3, 2)
}

func TestBox_Measure_ShrinksChildConstraints(t *testing.T) {
	// Child has no intrinsic size, so it fills whatever the box hands down:
	// the bounds minus padding.
	b := NewBox("wrap", NewLeaf("fill", 0, 0), WithPadding(PadSymmetric(1, 2)))

	got := b.Measure(Tight(Size{Width: 10, Height: 8}))
	wantSize(t, got, 10, 8)
	wantSize(t, b.Children()[0].Result().Size, 6, 6)
}

func TestBox_Measure_ClampsToOwnConstraints(t *testing.T) {
	b := NewBox("wrap", NewLeaf("content", 9, 9), WithPadding(PadAll(1)), WithMaxWidth(6))

	got := b.Measure(Unconstrained())
	if got.Width != 6 {
		t.Errorf("width = %g, want 6 (clamped)", got.Width)
	}
	if got.Height != 11 {
		t.Errorf("height = %g, want 11", got.Height)
	}
}

func TestBox_Place_ChildAtPaddingOrigin(t *testing.T) {
	b := NewBox("wrap", NewLeaf("content", 3, 2), WithPadding(PadLTRB(1.5, 0.5, 0, 0)))
	b.Measure(Loose(20, 20))
	b.Place(Offset{X: 4, Y: 4})

	wantOffset(t, b.Result().Offset, 4, 4)
	wantOffset(t, b.Children()[0].Result().Offset, 1.5, 0.5)
}

func TestBox_Empty(t *testing.T) {
	b := NewBox("empty", nil, WithPadding(PadAll(2)))
	got := b.Measure(Unconstrained())
	wantSize(t, got, 4, 4)

	b.Place(Offset{})
}

func TestBox_AppendChild_SecondChildPanics(t *testing.T) {
	b := NewBox("wrap", NewLeaf("one", 1, 1))
	defer func() {
		if _, ok := recover().(*StructuralError); !ok {
			t.Fatal("expected *StructuralError panic")
		}
	}()
	b.AppendChild(NewLeaf("two", 1, 1))
}
