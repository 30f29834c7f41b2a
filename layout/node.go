// Package layout implements the flexbox node tree that backs every view.
//
// A Node holds style inputs (direction, sizing, padding, flex factors) and,
// after ComputeLayout runs on the root, the resolved geometry of the subtree.
// Callers treat the solver as a black box: set style properties, compute,
// read geometry.
package layout

// FlexDirection selects the main axis for a node's children.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// Direction controls horizontal layout order (LTR vs RTL).
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// Justify controls child distribution along the main axis.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls child placement along the cross axis.
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
)

// Edge identifies one side of a node for padding and margin.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// dimMode specifies how one dimension (width or height) is resolved.
type dimMode int

const (
	dimAuto dimMode = iota // size to content (or to a measure func)
	dimFixed
	dimPercent // percentage of the parent's content box
)

// MeasureFunc lets leaf nodes report an intrinsic size (text, images).
// It receives the available content box and returns the desired size.
type MeasureFunc func(availWidth, availHeight float32) (width, height float32)

// Rect is resolved geometry. X and Y are relative to the parent node's
// origin (the parent's padding is folded into the offset).
type Rect struct {
	X, Y, W, H float32
}

// Node is a single flexbox node. Nodes form a tree mirroring the view tree
// restricted to non-detached views.
type Node struct {
	parent   *Node
	children []*Node

	flexDirection FlexDirection
	direction     Direction
	justify       Justify
	alignItems    Align
	alignSelf     Align

	grow      float32
	shrink    float32
	basis     float32
	basisAuto bool

	width, height   float32
	widthMode       dimMode
	heightMode      dimMode
	widthPercent    float32
	heightPercent   float32

	padding [4]float32
	margin  [4]float32

	measure MeasureFunc
	hidden  bool

	layout Rect
	dirty  bool
}

// NewNode creates a node with auto sizing, no flex growth and shrink 1,
// matching the common flexbox defaults.
func NewNode() *Node {
	return &Node{
		basisAuto: true,
		shrink:    1,
		dirty:     true,
	}
}

// ============================================================================
// Tree Structure
// ============================================================================

// ChildCount returns the number of children attached to this node.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// InsertChild inserts child at index, keeping sibling order.
// Index must be within [0, ChildCount()].
func (n *Node) InsertChild(child *Node, index int) {
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.MarkDirty()
}

// RemoveChild detaches child from this node. Unknown children are ignored.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return
		}
	}
}

// Parent returns the owning node, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// ============================================================================
// Style Setters
// ============================================================================

func (n *Node) SetFlexDirection(d FlexDirection) {
	n.flexDirection = d
	n.MarkDirty()
}

func (n *Node) SetDirection(d Direction) {
	n.direction = d
	n.MarkDirty()
}

func (n *Node) SetJustifyContent(j Justify) {
	n.justify = j
	n.MarkDirty()
}

func (n *Node) SetAlignItems(a Align) {
	n.alignItems = a
	n.MarkDirty()
}

func (n *Node) SetAlignSelf(a Align) {
	n.alignSelf = a
	n.MarkDirty()
}

func (n *Node) SetGrow(grow float32) {
	n.grow = grow
	n.MarkDirty()
}

func (n *Node) SetShrink(shrink float32) {
	n.shrink = shrink
	n.MarkDirty()
}

func (n *Node) SetBasis(basis float32) {
	n.basis = basis
	n.basisAuto = false
	n.MarkDirty()
}

func (n *Node) SetBasisAuto() {
	n.basisAuto = true
	n.MarkDirty()
}

func (n *Node) SetWidth(w float32) {
	n.width = w
	n.widthMode = dimFixed
	n.MarkDirty()
}

func (n *Node) SetWidthAuto() {
	n.widthMode = dimAuto
	n.MarkDirty()
}

func (n *Node) SetWidthPercent(p float32) {
	n.widthPercent = p
	n.widthMode = dimPercent
	n.MarkDirty()
}

func (n *Node) SetHeight(h float32) {
	n.height = h
	n.heightMode = dimFixed
	n.MarkDirty()
}

func (n *Node) SetHeightAuto() {
	n.heightMode = dimAuto
	n.MarkDirty()
}

func (n *Node) SetHeightPercent(p float32) {
	n.heightPercent = p
	n.heightMode = dimPercent
	n.MarkDirty()
}

func (n *Node) SetPadding(edge Edge, value float32) {
	n.padding[edge] = value
	n.MarkDirty()
}

func (n *Node) Padding(edge Edge) float32 {
	return n.padding[edge]
}

func (n *Node) SetMargin(edge Edge, value float32) {
	n.margin[edge] = value
	n.MarkDirty()
}

// SetMeasureFunc installs an intrinsic size callback. Only meaningful on
// leaf nodes; the solver consults it when a dimension is auto.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	n.measure = fn
	n.MarkDirty()
}

// SetDisplay controls whether the node participates in layout at all.
// A hidden node takes no space and its subtree is not computed
// (display: none).
func (n *Node) SetDisplay(visible bool) {
	n.hidden = !visible
	n.MarkDirty()
}

// StyleWidth returns the style width input (not the computed width).
// Used by detached views that size themselves without a parent.
func (n *Node) StyleWidth() float32 { return n.width }

// StyleHeight returns the style height input.
func (n *Node) StyleHeight() float32 { return n.height }

// ============================================================================
// Dirty Tracking
// ============================================================================

// MarkDirty flags this node and every ancestor so the next ComputeLayout on
// the root recomputes the subtree.
func (n *Node) MarkDirty() {
	for p := n; p != nil; p = p.parent {
		if p.dirty {
			return
		}
		p.dirty = true
	}
}

// Dirty reports whether the node needs a layout pass.
func (n *Node) Dirty() bool {
	return n.dirty
}

// ============================================================================
// Computed Geometry
// ============================================================================

// LayoutX returns the computed X position relative to the parent node.
func (n *Node) LayoutX() float32 { return n.layout.X }

// LayoutY returns the computed Y position relative to the parent node.
func (n *Node) LayoutY() float32 { return n.layout.Y }

// LayoutWidth returns the computed width.
func (n *Node) LayoutWidth() float32 { return n.layout.W }

// LayoutHeight returns the computed height.
func (n *Node) LayoutHeight() float32 { return n.layout.H }
