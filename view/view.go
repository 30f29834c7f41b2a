// Package view implements the retained view tree: the base View unit, the
// Box container capability (child management, flex style, attribute
// forwarding), directional focus resolution, culling and hit-testing.
//
// A single View type carries an optional container capability decided at
// construction (NewBox vs NewView); there is no run-time type inspection to
// tell leaves from containers.
//
// The tree is owned by the render thread. None of these types are safe for
// concurrent mutation; background work hands results back through the
// scheduler's sync queue.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lattice-ui/lattice/internal/logging"
	"github.com/lattice-ui/lattice/layout"
	"github.com/lattice-ui/lattice/render"
)

// Axis is the layout and focus-navigation axis of a Box.
// A ROW box lays children out horizontally and services LEFT/RIGHT focus
// moves; a COLUMN box is vertical and services UP/DOWN.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// Direction controls horizontal layout order.
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

// Visibility of a view. Invisible views keep their layout slot; Gone views
// are excluded from layout entirely.
type Visibility int

const (
	VisibilityVisible Visibility = iota
	VisibilityInvisible
	VisibilityGone
)

// FocusDirection is a directional focus move requested by input.
type FocusDirection int

const (
	FocusUp FocusDirection = iota
	FocusDown
	FocusLeft
	FocusRight
)

// Point is a position in absolute (window) coordinates.
type Point struct {
	X, Y float32
}

// Rect is an absolute bounding rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Y+r.H < o.Y || // too high
		r.X+r.W < o.X || // too far left
		r.X > o.X+o.W || // too far right
		r.Y > o.Y+o.H) // too low
}

// fatalf reports a programming-contract violation. These are developer
// errors, not runtime conditions: the message is logged and the process
// panics identifying the offending view and operation.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logging.Logger().Error(msg)
	panic("lattice: " + msg)
}

// View is the base unit of the UI tree. Leaf views draw content through
// OnDraw; container views (created with NewBox) additionally own children
// and mediate layout and focus.
type View struct {
	id string

	node *layout.Node

	// parent is a non-owning back-reference; it is always a container view.
	parent *View
	// parentIndex caches the view's position in its parent's child sequence.
	// -1 while orphaned. Maintained by AddViewAt/RemoveView.
	parentIndex int

	alpha      float32
	visibility Visibility

	// detached views do not participate in the layout node tree and are
	// positioned manually via SetDetachedPosition.
	detached             bool
	detachedX, detachedY float32

	// externallyOwned marks a child whose lifetime belongs to an outside
	// owner: the Box detaches it on teardown but never destroys it.
	externallyOwned bool

	focusable bool
	focused   bool
	cullable  bool

	background    uint32
	hasBackground bool

	attributes map[string]AttributeHandler

	// Per-frame draw callback for leaf content (the rendering contract).
	OnDraw func(fc *render.FrameContext, x, y, w, h float32)

	// Lifecycle hooks.
	OnAppear    func()
	OnDisappear func()

	// Focus hooks.
	OnFocusGained       func()
	OnFocusLost         func()
	OnParentFocusGained func(focused *View)
	OnParentFocusLost   func(focused *View)

	OnWindowSizeChanged func()

	// box is non-nil when the view is a container.
	box *boxState
}

// NewView creates a leaf view with default state: fully opaque, visible,
// cullable, not focusable.
func NewView() *View {
	v := &View{
		node:        layout.NewNode(),
		parentIndex: -1,
		alpha:       1,
		cullable:    true,
		attributes:  make(map[string]AttributeHandler),
	}
	v.registerBaseAttributes()
	return v
}

func (v *View) registerBaseAttributes() {
	v.RegisterAttribute("id", StringAttribute(func(s string) { v.SetID(s) }))
	v.RegisterAttribute("alpha", FloatAttribute(func(f float32) { v.SetAlpha(f) }))
	v.RegisterAttribute("focusable", BoolAttribute(func(b bool) { v.SetFocusable(b) }))
	v.RegisterAttribute("grow", FloatAttribute(func(f float32) { v.SetGrow(f) }))
	v.RegisterAttribute("width", DimensionAttribute(v.node.SetWidth, v.node.SetWidthPercent, v.node.SetWidthAuto))
	v.RegisterAttribute("height", DimensionAttribute(v.node.SetHeight, v.node.SetHeightPercent, v.node.SetHeightAuto))
	v.RegisterAttribute("visibility", EnumAttribute(map[string]Visibility{
		"visible":   VisibilityVisible,
		"invisible": VisibilityInvisible,
		"gone":      VisibilityGone,
	}, func(vis Visibility) { v.SetVisibility(vis) }))
	v.RegisterAttribute("backgroundColor", ColorAttribute(func(c uint32) { v.SetBackgroundColor(c) }))
}

// Describe identifies the view for diagnostics.
func (v *View) Describe() string {
	kind := "View"
	if v.box != nil {
		kind = "Box"
	}
	if v.id != "" {
		return fmt.Sprintf("%s(id=%s)", kind, v.id)
	}
	return kind
}

// ============================================================================
// Identity & State
// ============================================================================

// ID returns the view's identifier, or "" if unset.
func (v *View) ID() string { return v.id }

// SetID assigns the view's identifier.
func (v *View) SetID(id string) { v.id = id }

// Parent returns the owning container, or nil at the root.
func (v *View) Parent() *View { return v.parent }

// ParentIndex returns the cached position within the parent's child
// sequence, or -1 while orphaned.
func (v *View) ParentIndex() int { return v.parentIndex }

// IsContainer reports whether the view was constructed as a Box.
func (v *View) IsContainer() bool { return v.box != nil }

// Alpha returns the view's opacity in [0, 1].
func (v *View) Alpha() float32 { return v.alpha }

// SetAlpha sets the view's opacity. Views with alpha 0 are skipped by
// hit-testing.
func (v *View) SetAlpha(alpha float32) {
	v.alpha = alpha
}

// Visibility returns the view's visibility state.
func (v *View) Visibility() Visibility { return v.visibility }

// SetVisibility updates visibility; Gone additionally removes the view from
// layout flow.
func (v *View) SetVisibility(vis Visibility) {
	v.visibility = vis
	v.node.SetDisplay(vis != VisibilityGone)
	v.Invalidate()
}

// Focusable reports whether the view itself can receive focus.
func (v *View) Focusable() bool { return v.focusable }

// SetFocusable marks the view as a focus target.
func (v *View) SetFocusable(focusable bool) { v.focusable = focusable }

// Focused reports whether the view currently holds focus.
func (v *View) Focused() bool { return v.focused }

// Cullable reports whether the draw pass may skip the view when it is
// outside every ancestor's bounds. Containers cull their own children
// instead.
func (v *View) Cullable() bool { return v.cullable }

// SetCullable opts a leaf out of draw culling.
func (v *View) SetCullable(cullable bool) { v.cullable = cullable }

// Detached reports whether the view is excluded from the layout node tree.
func (v *View) Detached() bool { return v.detached }

// SetDetached must be called before the view is added to a parent.
// A detached view is positioned manually and sized from its style width and
// height.
func (v *View) SetDetached(detached bool) {
	if v.parent != nil {
		fatalf("SetDetached: %s is already attached to %s", v.Describe(), v.parent.Describe())
	}
	v.detached = detached
}

// SetDetachedPosition sets the manual position of a detached view, relative
// to its parent.
func (v *View) SetDetachedPosition(x, y float32) {
	v.detachedX, v.detachedY = x, y
}

// SetExternallyOwned marks the view as owned outside the tree
// ("pointer-locked"): its Box detaches it on teardown but does not destroy
// it.
func (v *View) SetExternallyOwned(owned bool) { v.externallyOwned = owned }

// ExternallyOwned reports the ownership mode.
func (v *View) ExternallyOwned() bool { return v.externallyOwned }

// SetBackgroundColor fills the view's frame with the given RGBA color
// before OnDraw runs.
func (v *View) SetBackgroundColor(rgba uint32) {
	v.background = rgba
	v.hasBackground = true
}

// ============================================================================
// Layout Style
// ============================================================================

// Node exposes the underlying layout node for advanced styling.
func (v *View) Node() *layout.Node { return v.node }

// Invalidate marks the view's layout as dirty so the next frame recomputes
// geometry.
func (v *View) Invalidate() {
	v.node.MarkDirty()
}

// SetWidth sets a fixed width in pixels.
func (v *View) SetWidth(w float32) {
	v.node.SetWidth(w)
}

// SetHeight sets a fixed height in pixels.
func (v *View) SetHeight(h float32) {
	v.node.SetHeight(h)
}

// SetSize sets fixed width and height.
func (v *View) SetSize(w, h float32) {
	v.node.SetWidth(w)
	v.node.SetHeight(h)
}

// SetWidthPercent sizes the width as a percentage of the parent.
func (v *View) SetWidthPercent(p float32) {
	v.node.SetWidthPercent(p)
}

// SetHeightPercent sizes the height as a percentage of the parent.
func (v *View) SetHeightPercent(p float32) {
	v.node.SetHeightPercent(p)
}

// SetGrow sets the flex-grow factor.
func (v *View) SetGrow(grow float32) {
	v.node.SetGrow(grow)
}

// SetShrink sets the flex-shrink factor.
func (v *View) SetShrink(shrink float32) {
	v.node.SetShrink(shrink)
}

// SetMargin sets all four margins at once.
func (v *View) SetMargin(m float32) {
	v.node.SetMargin(layout.EdgeTop, m)
	v.node.SetMargin(layout.EdgeRight, m)
	v.node.SetMargin(layout.EdgeBottom, m)
	v.node.SetMargin(layout.EdgeLeft, m)
}

// ============================================================================
// Geometry (absolute coordinates, valid after a layout pass)
// ============================================================================

// X returns the absolute horizontal position.
func (v *View) X() float32 {
	var base float32
	if v.parent != nil {
		base = v.parent.X()
	}
	if v.detached {
		return base + v.detachedX
	}
	return base + v.node.LayoutX()
}

// Y returns the absolute vertical position.
func (v *View) Y() float32 {
	var base float32
	if v.parent != nil {
		base = v.parent.Y()
	}
	if v.detached {
		return base + v.detachedY
	}
	return base + v.node.LayoutY()
}

// Width returns the computed width; detached views report their style width.
func (v *View) Width() float32 {
	if v.detached {
		return v.node.StyleWidth()
	}
	return v.node.LayoutWidth()
}

// Height returns the computed height.
func (v *View) Height() float32 {
	if v.detached {
		return v.node.StyleHeight()
	}
	return v.node.LayoutHeight()
}

// Frame returns the absolute bounding rectangle.
func (v *View) Frame() Rect {
	return Rect{X: v.X(), Y: v.Y(), W: v.Width(), H: v.Height()}
}

// ============================================================================
// Lifecycle
// ============================================================================

// willAppear fires the appear hook and recurses into children.
func (v *View) willAppear() {
	if v.OnAppear != nil {
		v.OnAppear()
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.willAppear()
		}
	}
}

// willDisappear fires the disappear hook and recurses into children.
func (v *View) willDisappear() {
	if v.OnDisappear != nil {
		v.OnDisappear()
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.willDisappear()
		}
	}
}

// WindowSizeChanged notifies the subtree that the window was resized.
func (v *View) WindowSizeChanged() {
	if v.OnWindowSizeChanged != nil {
		v.OnWindowSizeChanged()
	}
	if v.box != nil {
		for _, c := range v.box.children {
			c.WindowSizeChanged()
		}
	}
	v.Invalidate()
}

// Destroy releases the subtree. Children owned by the tree are destroyed
// recursively; externally owned children are only detached and their owner
// remains responsible for them.
func (v *View) Destroy() {
	if v.box == nil {
		return
	}
	for _, c := range v.box.children {
		c.parent = nil
		c.parentIndex = -1
		if !c.externallyOwned {
			c.Destroy()
		}
	}
	v.box.children = nil
	v.box.lastFocused = nil
}

// ============================================================================
// Attribute Registry
// ============================================================================

// AttributeHandler applies one declared attribute value to a view.
// A non-nil error means the value is malformed for this attribute.
type AttributeHandler func(value string) error

// RegisterAttribute installs a handler for a declarative attribute name.
// Registering the same name again replaces the previous handler.
func (v *View) RegisterAttribute(name string, handler AttributeHandler) {
	v.attributes[name] = handler
}

// IsAttributeValid reports whether the view can apply the named attribute,
// either directly or through forwarding.
func (v *View) IsAttributeValid(name string) bool {
	if _, ok := v.attributes[name]; ok {
		return true
	}
	if v.box != nil {
		_, ok := v.box.forwarded[name]
		return ok
	}
	return false
}

// ApplyAttribute applies a string-keyed property. Forwarded attributes are
// redirected to their target view. Returns false when the attribute is
// unknown to this view; a malformed value for a known attribute is fatal.
func (v *View) ApplyAttribute(name, value string) bool {
	if v.box != nil {
		if fwd, ok := v.box.forwarded[name]; ok {
			return fwd.target.ApplyAttribute(fwd.targetName, value)
		}
	}
	handler, ok := v.attributes[name]
	if !ok {
		return false
	}
	if err := handler(value); err != nil {
		fatalf("invalid value %q for attribute %q on %s: %v", value, name, v.Describe(), err)
	}
	return true
}

// StringAttribute adapts a plain string setter into a handler.
func StringAttribute(set func(string)) AttributeHandler {
	return func(value string) error {
		set(value)
		return nil
	}
}

// FloatAttribute parses a decimal number.
func FloatAttribute(set func(float32)) AttributeHandler {
	return func(value string) error {
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("expected a number: %w", err)
		}
		set(float32(f))
		return nil
	}
}

// IntAttribute parses a decimal integer.
func IntAttribute(set func(int)) AttributeHandler {
	return func(value string) error {
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer: %w", err)
		}
		set(i)
		return nil
	}
}

// BoolAttribute parses "true"/"false".
func BoolAttribute(set func(bool)) AttributeHandler {
	return func(value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true or false: %w", err)
		}
		set(b)
		return nil
	}
}

// EnumAttribute maps declared names onto enum values.
func EnumAttribute[T any](values map[string]T, set func(T)) AttributeHandler {
	return func(value string) error {
		v, ok := values[value]
		if !ok {
			return fmt.Errorf("unknown enum value %q", value)
		}
		set(v)
		return nil
	}
}

// DimensionAttribute parses "auto", a percentage ("50%"), or a pixel value.
func DimensionAttribute(setFixed func(float32), setPercent func(float32), setAuto func()) AttributeHandler {
	return func(value string) error {
		if value == "auto" {
			setAuto()
			return nil
		}
		if strings.HasSuffix(value, "%") {
			p, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 32)
			if err != nil {
				return fmt.Errorf("expected a percentage: %w", err)
			}
			setPercent(float32(p))
			return nil
		}
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("expected auto, a percentage or a number: %w", err)
		}
		setFixed(float32(f))
		return nil
	}
}

// ColorAttribute parses "#RRGGBB" or "#RRGGBBAA" into an RGBA value.
func ColorAttribute(set func(uint32)) AttributeHandler {
	return func(value string) error {
		raw := strings.TrimPrefix(value, "#")
		switch len(raw) {
		case 6:
			raw += "FF"
		case 8:
		default:
			return fmt.Errorf("expected #RRGGBB or #RRGGBBAA, got %q", value)
		}
		c, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", value, err)
		}
		set(uint32(c))
		return nil
	}
}
