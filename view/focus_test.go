package view

import "testing"

func focusableView(id string) *View {
	v := NewView()
	v.SetID(id)
	v.SetFocusable(true)
	return v
}

func TestDefaultFocusEmptyBox(t *testing.T) {
	box := NewBox(AxisRow)
	if f := box.DefaultFocus(); f != nil {
		t.Errorf("DefaultFocus on empty box = %v, want nil", f)
	}
}

func TestDefaultFocusPrefersSelf(t *testing.T) {
	box := NewBox(AxisRow)
	box.SetFocusable(true)
	box.AddView(focusableView("child"))

	if f := box.DefaultFocus(); f != box {
		t.Errorf("DefaultFocus = %v, want the box itself", f)
	}
}

func TestDefaultFocusFindsNestedDescendant(t *testing.T) {
	root := NewBox(AxisColumn)
	middle := NewBox(AxisRow)
	inner := NewBox(AxisColumn)
	target := focusableView("deep")
	inner.AddView(target)
	middle.AddView(inner)
	root.AddView(NewView()) // non-focusable leaf
	root.AddView(middle)

	if f := root.DefaultFocus(); f != target {
		t.Errorf("DefaultFocus = %v, want the nested focusable view", f)
	}
}

func TestDefaultFocusPrefersLastFocused(t *testing.T) {
	box := NewBox(AxisRow)
	first := focusableView("first")
	second := focusableView("second")
	box.AddView(first)
	box.AddView(second)

	box.SetLastFocusedView(second)

	if f := box.DefaultFocus(); f != second {
		t.Errorf("DefaultFocus = %v, want the remembered child", f)
	}
}

func TestDefaultFocusUsesDefaultIndex(t *testing.T) {
	box := NewBox(AxisRow)
	box.AddView(focusableView("a"))
	box.AddView(focusableView("b"))
	box.AddView(focusableView("c"))
	box.SetDefaultFocusedIndex(2)

	if f := box.DefaultFocus(); f == nil || f.ID() != "c" {
		t.Errorf("DefaultFocus = %v, want child c", f)
	}
}

func TestDefaultFocusSkipsInvisible(t *testing.T) {
	box := NewBox(AxisRow)
	hidden := focusableView("hidden")
	hidden.SetVisibility(VisibilityInvisible)
	visible := focusableView("visible")
	box.AddView(hidden)
	box.AddView(visible)

	if f := box.DefaultFocus(); f != visible {
		t.Errorf("DefaultFocus = %v, want the visible child", f)
	}
}

func TestNextFocusScansSiblings(t *testing.T) {
	row := NewBox(AxisRow)
	a := focusableView("a")
	b := focusableView("b")
	c := focusableView("c")
	row.AddView(a)
	row.AddView(b)
	row.AddView(c)

	if f := row.NextFocus(FocusRight, a); f != b {
		t.Errorf("right of a = %v, want b", f)
	}
	if f := row.NextFocus(FocusLeft, c); f != b {
		t.Errorf("left of c = %v, want b", f)
	}
	if f := row.NextFocus(FocusLeft, a); f != nil {
		t.Errorf("left of a = %v, want nil (exhausted)", f)
	}
	if f := row.NextFocus(FocusRight, c); f != nil {
		t.Errorf("right of c = %v, want nil (exhausted)", f)
	}
}

func TestNextFocusSkipsUnfocusableSiblings(t *testing.T) {
	row := NewBox(AxisRow)
	a := focusableView("a")
	gap := NewView() // resolves to no focus
	c := focusableView("c")
	row.AddView(a)
	row.AddView(gap)
	row.AddView(c)

	if f := row.NextFocus(FocusRight, a); f != c {
		t.Errorf("right of a = %v, want c (skipping the gap)", f)
	}
}

func TestNextFocusOffAxisEscalates(t *testing.T) {
	column := NewBox(AxisColumn)
	rowTop := NewBox(AxisRow)
	rowBottom := NewBox(AxisRow)
	top := focusableView("top")
	bottom := focusableView("bottom")
	rowTop.AddView(top)
	rowBottom.AddView(bottom)
	column.AddView(rowTop)
	column.AddView(rowBottom)

	// DOWN is off-axis for the row; the query escalates to the column,
	// which scans from the row's own index.
	if f := rowTop.NextFocus(FocusDown, top); f != bottom {
		t.Errorf("down from top = %v, want bottom", f)
	}
	if f := rowBottom.NextFocus(FocusUp, bottom); f != top {
		t.Errorf("up from bottom = %v, want top", f)
	}
	// LEFT exhausts the top row and every ancestor.
	if f := rowTop.NextFocus(FocusLeft, top); f != nil {
		t.Errorf("left from top = %v, want nil", f)
	}
}

func TestNextFocusDescendsIntoSiblingContainer(t *testing.T) {
	row := NewBox(AxisRow)
	a := focusableView("a")
	nested := NewBox(AxisColumn)
	inner := focusableView("inner")
	nested.AddView(inner)
	row.AddView(a)
	row.AddView(nested)

	if f := row.NextFocus(FocusRight, a); f != inner {
		t.Errorf("right of a = %v, want the nested container's default focus", f)
	}
}

func TestParentNavigationDecisionIntercepts(t *testing.T) {
	row := NewBox(AxisRow)
	a := focusableView("a")
	b := focusableView("b")
	redirect := focusableView("redirect")
	row.AddView(a)
	row.AddView(b)

	row.SetParentNavigationDecision(func(from, proposed *View, dir FocusDirection) *View {
		if dir == FocusRight {
			return redirect
		}
		return proposed
	})

	if f := row.NextFocus(FocusRight, a); f != redirect {
		t.Errorf("intercepted navigation = %v, want the redirect target", f)
	}
	if f := row.NextFocus(FocusLeft, b); f != a {
		t.Errorf("pass-through navigation = %v, want a", f)
	}
}

func TestFocusEventPropagation(t *testing.T) {
	root := NewBox(AxisColumn)
	row := NewBox(AxisRow)
	target := focusableView("target")
	sibling := focusableView("sibling")
	row.AddView(target)
	row.AddView(sibling)
	root.AddView(row)

	target.NotifyFocusGained()

	if !target.Focused() {
		t.Error("target not marked focused")
	}
	if row.LastFocusedView() != target {
		t.Error("row did not remember the focused child")
	}
	if root.LastFocusedView() != row {
		t.Error("root did not remember the path to the focused child")
	}
	if !root.IsChildFocused() || !row.IsChildFocused() {
		t.Error("IsChildFocused false on the focus path")
	}

	target.NotifyFocusLost()
	if target.Focused() {
		t.Error("target still focused after loss")
	}
	if root.IsChildFocused() {
		t.Error("IsChildFocused true after focus loss")
	}
	// The remembered path survives focus loss.
	if row.LastFocusedView() != target {
		t.Error("lastFocusedView cleared by focus loss")
	}
}

func TestBoxFocusPropagatesToAllChildren(t *testing.T) {
	row := NewBox(AxisRow)
	row.SetFocusable(true)
	a := focusableView("a")
	b := focusableView("b")
	nestedBox := NewBox(AxisColumn)
	nested := focusableView("nested")
	nestedBox.AddView(nested)
	row.AddView(a)
	row.AddView(b)
	row.AddView(nestedBox)

	var gained []*View
	for _, v := range []*View{a, b, nested} {
		v := v
		v.OnParentFocusGained = func(f *View) { gained = append(gained, v) }
	}

	// A Box gaining focus notifies every child, including children of
	// nested boxes.
	row.NotifyFocusGained()
	if len(gained) != 3 {
		t.Errorf("parent-focus events = %d, want 3 (all descendants)", len(gained))
	}

	var lost int
	for _, v := range []*View{a, b, nested} {
		v.OnParentFocusLost = func(f *View) { lost++ }
	}
	row.NotifyFocusLost()
	if lost != 3 {
		t.Errorf("parent-focus-lost events = %d, want 3", lost)
	}
}
