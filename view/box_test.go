package view

import (
	"strings"
	"testing"
)

// mustPanic runs fn and asserts it panics with a message containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Fatalf("panic = %v, want message containing %q", r, want)
		}
	}()
	fn()
}

func checkIndices(t *testing.T, box *View) {
	t.Helper()
	for i, c := range box.Children() {
		if c.ParentIndex() != i {
			t.Errorf("child %d has cached index %d", i, c.ParentIndex())
		}
		if c.Parent() != box {
			t.Errorf("child %d has wrong parent", i)
		}
	}
}

func TestAddViewOrderAndIndexCache(t *testing.T) {
	box := NewBox(AxisRow)
	a, b, c := NewView(), NewView(), NewView()

	box.AddView(a)
	box.AddView(c)
	box.AddViewAt(b, 1)

	children := box.Children()
	if len(children) != 3 {
		t.Fatalf("child count = %d, want 3", len(children))
	}
	if children[0] != a || children[1] != b || children[2] != c {
		t.Error("insertion order not preserved")
	}
	checkIndices(t, box)

	// The layout node tree mirrors the sequence.
	if box.Node().ChildCount() != 3 {
		t.Errorf("layout node children = %d, want 3", box.Node().ChildCount())
	}
}

func TestAddViewOutOfBoundsIsFatal(t *testing.T) {
	box := NewBox(AxisRow)
	box.AddView(NewView())
	box.AddView(NewView())

	mustPanic(t, "cannot insert view", func() {
		box.AddViewAt(NewView(), 5)
	})
	mustPanic(t, "cannot insert view", func() {
		box.AddViewAt(NewView(), -1)
	})
}

func TestAddViewOnLeafIsFatal(t *testing.T) {
	leaf := NewView()
	mustPanic(t, "not a container", func() {
		leaf.AddView(NewView())
	})
}

func TestRemoveViewReStampsIndices(t *testing.T) {
	box := NewBox(AxisRow)
	views := make([]*View, 4)
	for i := range views {
		views[i] = NewView()
		box.AddView(views[i])
	}

	box.RemoveView(views[1], false)

	if len(box.Children()) != 3 {
		t.Fatalf("child count = %d, want 3", len(box.Children()))
	}
	checkIndices(t, box)
	if views[1].Parent() != nil || views[1].ParentIndex() != -1 {
		t.Error("removed child still references its parent")
	}
	if box.Node().ChildCount() != 3 {
		t.Errorf("layout node children = %d, want 3", box.Node().ChildCount())
	}
}

func TestRemoveViewAbsentIsNoOp(t *testing.T) {
	box := NewBox(AxisRow)
	a := NewView()
	box.AddView(a)

	// Settle the dirty flag so we can observe that nothing changes.
	box.Node().ComputeLayout(100, 100)

	box.RemoveView(NewView(), true)

	if len(box.Children()) != 1 || box.Children()[0] != a {
		t.Error("child sequence changed")
	}
	if box.Node().ChildCount() != 1 {
		t.Error("layout node tree changed")
	}
	if box.Node().Dirty() {
		t.Error("layout marked dirty by a no-op removal")
	}
}

func TestClearViewsRemovesEverything(t *testing.T) {
	box := NewBox(AxisColumn)
	var disappeared []string
	for _, id := range []string{"a", "b", "c"} {
		v := NewView()
		v.SetID(id)
		id := id
		v.OnDisappear = func() { disappeared = append(disappeared, id) }
		box.AddView(v)
	}
	box.SetLastFocusedView(box.Children()[0])

	box.ClearViews(true)

	if len(box.Children()) != 0 {
		t.Errorf("child count = %d, want 0", len(box.Children()))
	}
	if box.Node().ChildCount() != 0 {
		t.Error("layout nodes not removed")
	}
	if box.LastFocusedView() != nil {
		t.Error("lastFocusedView not cleared")
	}
	// Reverse removal order.
	if len(disappeared) != 3 || disappeared[0] != "c" || disappeared[2] != "a" {
		t.Errorf("disappear order = %v, want [c b a]", disappeared)
	}
}

func TestDetachedChildSkipsLayoutTree(t *testing.T) {
	box := NewBox(AxisRow)
	attached := NewView()
	floating := NewView()
	floating.SetDetached(true)
	floating.SetDetachedPosition(7, 9)
	floating.SetSize(5, 5)

	box.AddView(floating)
	box.AddView(attached)

	if box.Node().ChildCount() != 1 {
		t.Errorf("layout node children = %d, want 1 (detached excluded)", box.Node().ChildCount())
	}
	checkIndices(t, box)

	box.Node().ComputeLayout(100, 100)
	if floating.X() != 7 || floating.Y() != 9 {
		t.Errorf("detached position = (%v, %v), want (7, 9)", floating.X(), floating.Y())
	}
	// Attached sibling occupies the first layout slot even though it is
	// second in the sequence.
	if attached.ParentIndex() != 1 {
		t.Errorf("attached sibling index = %d, want 1", attached.ParentIndex())
	}
}

func TestRemoveViewClearsLastFocused(t *testing.T) {
	box := NewBox(AxisRow)
	a := NewView()
	box.AddView(a)
	box.SetLastFocusedView(a)

	box.RemoveView(a, false)

	if box.LastFocusedView() != nil {
		t.Error("lastFocusedView survived removal of its target")
	}
}

func TestDestroySkipsExternallyOwnedChildren(t *testing.T) {
	box := NewBox(AxisRow)
	owned := NewBox(AxisRow)
	ownedInner := NewView()
	owned.AddView(ownedInner)

	locked := NewBox(AxisRow)
	lockedInner := NewView()
	locked.AddView(lockedInner)
	locked.SetExternallyOwned(true)

	box.AddView(owned)
	box.AddView(locked)

	box.Destroy()

	if owned.Parent() != nil || locked.Parent() != nil {
		t.Error("children still attached after destroy")
	}
	// The tree-owned subtree is released recursively.
	if len(owned.Children()) != 0 {
		t.Error("owned subtree not released")
	}
	// The externally owned subtree is only detached.
	if len(locked.Children()) != 1 || locked.Children()[0] != lockedInner {
		t.Error("externally owned subtree was destroyed")
	}
}

func TestGetViewFindsNestedDescendant(t *testing.T) {
	root := NewBox(AxisColumn)
	inner := NewBox(AxisRow)
	leaf := NewView()
	leaf.SetID("target")
	inner.AddView(leaf)
	root.AddView(inner)

	if got := root.GetView("target"); got != leaf {
		t.Errorf("GetView returned %v", got)
	}
	if got := root.GetView("missing"); got != nil {
		t.Errorf("GetView(missing) = %v, want nil", got)
	}
}

func TestForwardAttribute(t *testing.T) {
	box := NewBox(AxisRow)
	label := NewLabel("hello")
	box.AddView(label.View)

	box.ForwardAttributeAs("title", label.View, "text")

	if !box.ApplyAttribute("title", "renamed") {
		t.Fatal("forwarded attribute not handled")
	}
	if label.Text() != "renamed" {
		t.Errorf("label text = %q, want %q", label.Text(), "renamed")
	}
	if !box.IsAttributeValid("title") {
		t.Error("forwarded attribute not reported valid")
	}
}

func TestForwardAttributeInvalidTargetIsFatal(t *testing.T) {
	box := NewBox(AxisRow)
	child := NewView()
	box.AddView(child)

	mustPanic(t, "not a valid attribute", func() {
		box.ForwardAttributeAs("title", child, "noSuchAttribute")
	})
}

func TestForwardAttributeTwiceIsFatal(t *testing.T) {
	box := NewBox(AxisRow)
	label := NewLabel("x")
	box.AddView(label.View)
	box.ForwardAttributeAs("title", label.View, "text")

	mustPanic(t, "forwarded twice", func() {
		box.ForwardAttributeAs("title", label.View, "text")
	})
}

func TestApplyAttributeMalformedValueIsFatal(t *testing.T) {
	box := NewBox(AxisRow)
	mustPanic(t, "invalid value", func() {
		box.ApplyAttribute("padding", "lots")
	})
}

func TestApplyAttributeUnknownReturnsFalse(t *testing.T) {
	v := NewView()
	if v.ApplyAttribute("definitelyUnknown", "1") {
		t.Error("unknown attribute reported handled")
	}
}
