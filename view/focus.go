package view

// Focus resolution. Directional navigation is a two-phase bottom-up search:
// the focused view's container scans its own children along the requested
// axis first, then escalates to ancestors when the direction does not apply
// locally or the local children are exhausted. Candidates bubbling upward
// pass through each container's parent-navigation decision, which composite
// widgets may override to redirect traversal.

// axisServes reports whether a box axis handles the requested direction.
func axisServes(axis Axis, dir FocusDirection) bool {
	if axis == AxisRow {
		return dir == FocusLeft || dir == FocusRight
	}
	return dir == FocusUp || dir == FocusDown
}

// traversalOffset is +1 toward higher indices (RIGHT on a row, DOWN on a
// column) and -1 toward lower indices.
func traversalOffset(axis Axis, dir FocusDirection) int {
	if (axis == AxisRow && dir == FocusLeft) || (axis == AxisColumn && dir == FocusUp) {
		return -1
	}
	return 1
}

// DefaultFocus resolves which view should receive focus when focus first
// enters this subtree: the view itself if focusable, then the remembered
// last-focused child, then the child at the default focused index, then the
// first child that resolves. Returns nil when nothing in the subtree can
// take focus.
func (v *View) DefaultFocus() *View {
	if v.focusable && v.visibility == VisibilityVisible {
		return v
	}
	if v.box == nil {
		return nil
	}
	b := v.box

	if b.lastFocused != nil {
		if f := b.lastFocused.DefaultFocus(); f != nil {
			return f
		}
	}

	if b.defaultFocusedIndex < len(b.children) {
		if f := b.children[b.defaultFocusedIndex].DefaultFocus(); f != nil {
			return f
		}
	}

	for _, c := range b.children {
		if f := c.DefaultFocus(); f != nil {
			return f
		}
	}
	return nil
}

// SetDefaultFocusedIndex selects which child to prefer when this Box first
// receives focus. Negative indices are ignored.
func (v *View) SetDefaultFocusedIndex(index int) {
	b := v.mustBox("SetDefaultFocusedIndex")
	if index < 0 {
		return
	}
	b.defaultFocusedIndex = index
}

// DefaultFocusedIndex returns the preferred child index.
func (v *View) DefaultFocusedIndex() int {
	return v.mustBox("DefaultFocusedIndex").defaultFocusedIndex
}

// LastFocusedView returns the direct child that last held or contained
// focus, or nil.
func (v *View) LastFocusedView() *View {
	return v.mustBox("LastFocusedView").lastFocused
}

// SetLastFocusedView overrides the remembered focus child.
func (v *View) SetLastFocusedView(child *View) {
	v.mustBox("SetLastFocusedView").lastFocused = child
}

// NextFocus resolves the next focus target in the given direction, starting
// from current, which must be a direct child of this view (or the view
// itself when called on a leaf). Returns nil when the whole ancestor chain
// is exhausted.
func (v *View) NextFocus(dir FocusDirection, current *View) *View {
	if v.box == nil {
		// Leaves cannot navigate; hand the query to the parent.
		if v.parent != nil {
			return v.parent.NextFocus(dir, v)
		}
		return nil
	}
	b := v.box

	// A direction off this box's axis escalates immediately.
	if !axisServes(b.axis, dir) {
		next := v.ParentNavigationDecision(v, nil, dir)
		if next == nil && v.parent != nil {
			next = v.parent.NextFocus(dir, v)
		}
		return next
	}

	offset := traversalOffset(b.axis, dir)
	index := current.parentIndex + offset

	var found *View
	for found == nil && index >= 0 && index < len(b.children) {
		found = b.children[index].DefaultFocus()
		index += offset
	}

	found = v.ParentNavigationDecision(v, found, dir)
	if found == nil && v.parent != nil {
		found = v.parent.NextFocus(dir, v)
	}
	return found
}

// ParentNavigationDecision filters a navigation candidate on its way up the
// tree. The default implementation recurses to the root and passes the
// candidate through unchanged. A container override installed with
// SetParentNavigationDecision replaces the behavior for that container and
// everything above it.
func (v *View) ParentNavigationDecision(from, proposed *View, dir FocusDirection) *View {
	if v.box != nil && v.box.navDecision != nil {
		return v.box.navDecision(from, proposed, dir)
	}
	if v.parent == nil {
		return proposed
	}
	return v.parent.ParentNavigationDecision(from, proposed, dir)
}

// SetParentNavigationDecision installs a navigation interceptor on this Box.
// The callback receives the container the query came through, the candidate
// found so far (possibly nil) and the direction; whatever it returns becomes
// the decision. Pass nil to restore the default pass-through.
func (v *View) SetParentNavigationDecision(fn func(from, proposed *View, dir FocusDirection) *View) {
	v.mustBox("SetParentNavigationDecision").navDecision = fn
}

// ============================================================================
// Focus Event Propagation
// ============================================================================

// NotifyFocusGained marks the view focused, fires hooks down the subtree and
// walks the ancestor chain so every container updates its remembered focus
// child. Focus exclusivity across the tree is the caller's responsibility
// (the application clears the previous focus first).
func (v *View) NotifyFocusGained() {
	v.focused = true
	if v.OnFocusGained != nil {
		v.OnFocusGained()
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.notifyParentFocusGained(v)
		}
	}
	if v.parent != nil {
		v.parent.notifyChildFocusGained(v, v)
	}
}

// NotifyFocusLost clears the focused flag and propagates the loss to the
// subtree and the ancestor chain.
func (v *View) NotifyFocusLost() {
	v.focused = false
	if v.OnFocusLost != nil {
		v.OnFocusLost()
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.notifyParentFocusLost(v)
		}
	}
	if v.parent != nil {
		v.parent.notifyChildFocusLost(v, v)
	}
}

func (v *View) notifyParentFocusGained(focused *View) {
	if v.OnParentFocusGained != nil {
		v.OnParentFocusGained(focused)
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.notifyParentFocusGained(focused)
		}
	}
}

func (v *View) notifyParentFocusLost(focused *View) {
	if v.OnParentFocusLost != nil {
		v.OnParentFocusLost(focused)
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.notifyParentFocusLost(focused)
		}
	}
}

// notifyChildFocusGained runs up the ancestor chain; every container on the
// path remembers which direct child leads to the focused view.
func (v *View) notifyChildFocusGained(directChild, focused *View) {
	if v.box != nil {
		v.box.lastFocused = directChild
	}
	if v.parent != nil {
		v.parent.notifyChildFocusGained(v, focused)
	}
}

func (v *View) notifyChildFocusLost(directChild, focused *View) {
	if v.parent != nil {
		v.parent.notifyChildFocusLost(v, focused)
	}
}

// IsChildFocused reports whether any descendant, at any depth, holds focus.
func (v *View) IsChildFocused() bool {
	if v.box == nil {
		return false
	}
	for _, c := range v.box.children {
		if c.focused {
			return true
		}
		if c.box != nil && c.IsChildFocused() {
			return true
		}
	}
	return false
}
