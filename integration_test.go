package flexbox

import "testing"

// TestIntegration_OverlayPanel lays out a small overlay panel the way the
// engine's consumers do: a padded column holding a header row (stretching
// title, fixed close button) above a flexible content region.
func TestIntegration_OverlayPanel(t *testing.T) {
	header := NewRow("header",
		NewLeaf("title", 0, 0.4, WithGrow(1)),
		NewLeaf("close", 0.3, 0.3),
	).With(WithHeight(0.4), WithAlign(AlignStart))

	root := NewColumn("panel",
		header,
		NewRow("content").With(WithGrow(1)),
	).With(WithPadding(PadAll(0.1)), WithGap(0.2))

	l := New(4, 3).SetRoot(root)
	l.Compute()

	// The panel fills its declared target exactly.
	wantSize(t, mustResult(t, l, "panel").Size, 4, 3)

	// Header spans the full inner width at its declared height.
	h := mustResult(t, l, "header")
	wantSize(t, h.Size, 3.8, 0.4)
	wantOffset(t, h.Offset, 0.1, 0.1)

	// Title absorbs the width the close button does not need.
	title := mustResult(t, l, "title")
	wantSize(t, title.Size, 3.5, 0.4)

	closeBtn := mustResult(t, l, "close")
	wantSize(t, closeBtn.Size, 0.3, 0.3)
	abs := mustAbs(t, l, "close")
	wantOffset(t, abs, 0.1+3.5, 0.1)

	// Content receives the remaining inner height: 3 - 0.2 padding
	// - 0.4 header - 0.2 gap.
	content := mustResult(t, l, "content")
	wantSize(t, content.Size, 3.8, 2.2)
	wantOffset(t, content.Offset, 0.1, 0.1+0.4+0.2)

	// A probe for an id that exists only in other configurations of this
	// panel must not abort the render.
	if _, ok := l.Result("tooltip"); ok {
		t.Error("tooltip should be absent from this tree")
	}
}

// TestIntegration_NestedStretchNeedsSecondPass covers the dependency that
// forces the two-pass measure: a nested row can only stretch its own
// children once its final main-axis allocation is known.
func TestIntegration_NestedStretchNeedsSecondPass(t *testing.T) {
	inner := NewRow("inner",
		NewLeaf("fill", 0, 0, WithGrow(1)),
	)
	root := NewRow("root",
		NewLeaf("side", 4, 2),
		inner.With(WithGrow(1)),
	)
	l := New(10, 6).SetRoot(root)
	l.Compute()

	// The inner row received 6 of the 10 units; its fill leaf, resolved
	// during the pinned re-measure, spans all of them and stretches to the
	// full cross extent.
	wantSize(t, mustResult(t, l, "inner").Size, 6, 6)
	wantSize(t, mustResult(t, l, "fill").Size, 6, 6)
}

func TestIntegration_ResizeRecompute(t *testing.T) {
	build := func(w, h float64) *Layout {
		return New(w, h).SetRoot(NewRow("root",
			NewLeaf("left", 0, 0, WithGrow(1)),
			NewLeaf("right", 0, 0, WithGrow(3)),
		))
	}

	small := build(40, 10)
	small.Compute()
	if got := mustResult(t, small, "right").Size.Width; !almostEqual(got, 30) {
		t.Errorf("right width = %g, want 30", got)
	}

	// The owning container resizes: a fresh tree, a fresh compute.
	large := build(80, 10)
	large.Compute()
	if got := mustResult(t, large, "right").Size.Width; !almostEqual(got, 60) {
		t.Errorf("right width = %g, want 60", got)
	}
	if got := mustAbs(t, large, "right"); !almostEqual(got.X, 20) {
		t.Errorf("right absolute x = %g, want 20", got.X)
	}
}
