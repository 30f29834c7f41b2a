package view

import "github.com/lattice-ui/lattice/layout"

// boxState is the container capability attached to a View by NewBox.
type boxState struct {
	axis                Axis
	children            []*View
	lastFocused         *View // direct child that last held (or contained) focus
	defaultFocusedIndex int
	forwarded           map[string]forwardedAttribute

	// navDecision, when set, intercepts focus results bubbling through this
	// container. See SetParentNavigationDecision.
	navDecision func(from, proposed *View, dir FocusDirection) *View
}

type forwardedAttribute struct {
	targetName string
	target     *View
}

// NewBox creates a container view laying children out along the given axis.
func NewBox(axis Axis) *View {
	v := NewView()
	v.box = &boxState{
		axis:      axis,
		forwarded: make(map[string]forwardedAttribute),
	}
	v.node.SetFlexDirection(flexDirectionFor(axis))
	v.registerBoxAttributes()
	return v
}

// NewPadding creates an empty spacer view that grows to absorb free space.
func NewPadding() *View {
	v := NewView()
	v.node.SetGrow(1)
	return v
}

func flexDirectionFor(axis Axis) layout.FlexDirection {
	if axis == AxisColumn {
		return layout.FlexColumn
	}
	return layout.FlexRow
}

func (v *View) registerBoxAttributes() {
	v.RegisterAttribute("axis", EnumAttribute(map[string]Axis{
		"row":    AxisRow,
		"column": AxisColumn,
	}, func(a Axis) { v.SetAxis(a) }))

	v.RegisterAttribute("direction", EnumAttribute(map[string]Direction{
		"inherit":     DirectionInherit,
		"leftToRight": DirectionLeftToRight,
		"rightToLeft": DirectionRightToLeft,
	}, func(d Direction) { v.SetDirection(d) }))

	v.RegisterAttribute("justifyContent", EnumAttribute(map[string]layout.Justify{
		"flexStart":    layout.JustifyFlexStart,
		"center":       layout.JustifyCenter,
		"flexEnd":      layout.JustifyFlexEnd,
		"spaceBetween": layout.JustifySpaceBetween,
		"spaceAround":  layout.JustifySpaceAround,
		"spaceEvenly":  layout.JustifySpaceEvenly,
	}, func(j layout.Justify) { v.SetJustifyContent(j) }))

	v.RegisterAttribute("alignItems", EnumAttribute(map[string]layout.Align{
		"auto":      layout.AlignAuto,
		"flexStart": layout.AlignFlexStart,
		"center":    layout.AlignCenter,
		"flexEnd":   layout.AlignFlexEnd,
		"stretch":   layout.AlignStretch,
	}, func(a layout.Align) { v.SetAlignItems(a) }))

	v.RegisterAttribute("padding", FloatAttribute(func(f float32) { v.SetPadding(f) }))
	v.RegisterAttribute("paddingTop", FloatAttribute(func(f float32) { v.SetPaddingTop(f) }))
	v.RegisterAttribute("paddingRight", FloatAttribute(func(f float32) { v.SetPaddingRight(f) }))
	v.RegisterAttribute("paddingBottom", FloatAttribute(func(f float32) { v.SetPaddingBottom(f) }))
	v.RegisterAttribute("paddingLeft", FloatAttribute(func(f float32) { v.SetPaddingLeft(f) }))
	v.RegisterAttribute("defaultFocusedIndex", IntAttribute(func(i int) { v.SetDefaultFocusedIndex(i) }))
}

// mustBox returns the container state or reports a contract violation.
func (v *View) mustBox(op string) *boxState {
	if v.box == nil {
		fatalf("%s: %s is not a container", op, v.Describe())
	}
	return v.box
}

// ============================================================================
// Child Management
// ============================================================================

// Children returns the child sequence. The returned slice is owned by the
// Box and must not be mutated.
func (v *View) Children() []*View {
	return v.mustBox("Children").children
}

// ChildCount returns the number of children.
func (v *View) ChildCount() int {
	return len(v.mustBox("ChildCount").children)
}

// AddView appends a child.
func (v *View) AddView(child *View) {
	v.AddViewAt(child, len(v.mustBox("AddView").children))
}

// AddViewAt inserts a child at position. Position must be within
// [0, ChildCount()]; violating the bound is fatal. Non-detached children are
// mirrored into the layout node tree at the matching position.
func (v *View) AddViewAt(child *View, position int) {
	b := v.mustBox("AddView")
	if position < 0 || position > len(b.children) {
		fatalf("cannot insert view at %s:%d/%d", v.Describe(), len(b.children), position)
	}

	b.children = append(b.children, nil)
	copy(b.children[position+1:], b.children[position:])
	b.children[position] = child

	if !child.detached {
		v.node.InsertChild(child.node, v.nodeIndexFor(position))
	}

	child.parent = v
	child.parentIndex = position
	for i := position + 1; i < len(b.children); i++ {
		b.children[i].parentIndex = i
	}

	v.Invalidate()
	child.willAppear()
}

// nodeIndexFor maps a child-sequence position onto the layout node tree,
// which only contains non-detached children.
func (v *View) nodeIndexFor(position int) int {
	idx := 0
	for _, c := range v.box.children[:position] {
		if !c.detached {
			idx++
		}
	}
	return idx
}

// RemoveView removes a child from the sequence and the layout node tree.
// Removing a view that is not a child is a no-op. When destroy is true the
// child's subtree is released.
func (v *View) RemoveView(child *View, destroy bool) {
	b := v.mustBox("RemoveView")

	index := -1
	for i, c := range b.children {
		if c == child {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	if !child.detached {
		v.node.RemoveChild(child.node)
	}
	b.children = append(b.children[:index], b.children[index+1:]...)

	child.parent = nil
	child.parentIndex = -1
	for i := index; i < len(b.children); i++ {
		b.children[i].parentIndex = i
	}

	if b.lastFocused == child {
		b.lastFocused = nil
	}

	child.willDisappear()
	if destroy {
		child.Destroy()
	}
	v.Invalidate()
}

// ClearViews removes every child in reverse order, optionally destroying
// each. The remembered focus child is forgotten first.
func (v *View) ClearViews(destroy bool) {
	b := v.mustBox("ClearViews")
	b.lastFocused = nil

	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if !child.detached {
			v.node.RemoveChild(child.node)
		}
		b.children = b.children[:i]

		child.parent = nil
		child.parentIndex = -1
		child.willDisappear()
		if destroy {
			child.Destroy()
		}
	}

	v.Invalidate()
}

// GetView finds a descendant (or this view) by id. Returns nil when no view
// in the subtree matches.
func (v *View) GetView(id string) *View {
	if v.id == id {
		return v
	}
	if v.box != nil {
		for _, c := range v.box.children {
			if r := c.GetView(id); r != nil {
				return r
			}
		}
	}
	return nil
}

// ============================================================================
// Box Style
// ============================================================================

// Axis returns the layout/navigation axis.
func (v *View) Axis() Axis {
	return v.mustBox("Axis").axis
}

// SetAxis switches the layout and focus-navigation axis.
func (v *View) SetAxis(axis Axis) {
	b := v.mustBox("SetAxis")
	b.axis = axis
	v.node.SetFlexDirection(flexDirectionFor(axis))
	v.Invalidate()
}

// SetDirection sets horizontal layout order for the subtree.
func (v *View) SetDirection(d Direction) {
	v.mustBox("SetDirection")
	switch d {
	case DirectionLeftToRight:
		v.node.SetDirection(layout.DirectionLTR)
	case DirectionRightToLeft:
		v.node.SetDirection(layout.DirectionRTL)
	default:
		v.node.SetDirection(layout.DirectionInherit)
	}
	v.Invalidate()
}

// SetJustifyContent sets main-axis child distribution.
func (v *View) SetJustifyContent(j layout.Justify) {
	v.mustBox("SetJustifyContent")
	v.node.SetJustifyContent(j)
	v.Invalidate()
}

// SetAlignItems sets cross-axis child alignment.
func (v *View) SetAlignItems(a layout.Align) {
	v.mustBox("SetAlignItems")
	v.node.SetAlignItems(a)
	v.Invalidate()
}

// SetPadding sets all four padding edges to the same value.
func (v *View) SetPadding(p float32) {
	v.SetPaddingAll(p, p, p, p)
}

// SetPaddingAll sets the four padding edges.
func (v *View) SetPaddingAll(top, right, bottom, left float32) {
	v.mustBox("SetPadding")
	v.node.SetPadding(layout.EdgeTop, top)
	v.node.SetPadding(layout.EdgeRight, right)
	v.node.SetPadding(layout.EdgeBottom, bottom)
	v.node.SetPadding(layout.EdgeLeft, left)
	v.Invalidate()
}

func (v *View) SetPaddingTop(p float32) {
	v.mustBox("SetPaddingTop")
	v.node.SetPadding(layout.EdgeTop, p)
	v.Invalidate()
}

func (v *View) SetPaddingRight(p float32) {
	v.mustBox("SetPaddingRight")
	v.node.SetPadding(layout.EdgeRight, p)
	v.Invalidate()
}

func (v *View) SetPaddingBottom(p float32) {
	v.mustBox("SetPaddingBottom")
	v.node.SetPadding(layout.EdgeBottom, p)
	v.Invalidate()
}

func (v *View) SetPaddingLeft(p float32) {
	v.mustBox("SetPaddingLeft")
	v.node.SetPadding(layout.EdgeLeft, p)
	v.Invalidate()
}

// PaddingTop returns the top padding.
func (v *View) PaddingTop() float32 { return v.node.Padding(layout.EdgeTop) }

// PaddingRight returns the right padding.
func (v *View) PaddingRight() float32 { return v.node.Padding(layout.EdgeRight) }

// PaddingBottom returns the bottom padding.
func (v *View) PaddingBottom() float32 { return v.node.Padding(layout.EdgeBottom) }

// PaddingLeft returns the left padding.
func (v *View) PaddingLeft() float32 { return v.node.Padding(layout.EdgeLeft) }

// ============================================================================
// Attribute Forwarding
// ============================================================================

// ForwardAttribute re-exposes an attribute of a descendant under the same
// name on this Box.
func (v *View) ForwardAttribute(name string, target *View) {
	v.ForwardAttributeAs(name, target, name)
}

// ForwardAttributeAs registers name so that applying it on this Box applies
// targetName on target instead. Forwarding to an attribute the target cannot
// apply, or forwarding the same name twice, is fatal at registration time.
func (v *View) ForwardAttributeAs(name string, target *View, targetName string) {
	b := v.mustBox("ForwardAttribute")
	if !target.IsAttributeValid(targetName) {
		fatalf("cannot forward %q of %s: %q is not a valid attribute for %s",
			name, v.Describe(), targetName, target.Describe())
	}
	if _, dup := b.forwarded[name]; dup {
		fatalf("cannot forward %q of %s: the same attribute cannot be forwarded twice",
			name, v.Describe())
	}
	b.forwarded[name] = forwardedAttribute{targetName: targetName, target: target}
}
