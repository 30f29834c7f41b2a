package layout

// Flexbox solver. ComputeLayout resolves the whole subtree top-down: the
// node's own size first, then one flex pass per container distributing the
// main axis (basis, grow, shrink, justify) and aligning the cross axis.

// ComputeLayout computes geometry for this node and its subtree within the
// given available space. Positions are relative to the parent node's origin;
// the root is placed at (0, 0).
func (n *Node) ComputeLayout(availWidth, availHeight float32) {
	w, okW := n.resolveWidth(availWidth)
	h, okH := n.resolveHeight(availHeight)

	if !okW || !okH {
		iw, ih := n.intrinsicSize(availWidth, availHeight)
		if !okW {
			// An auto root with no measurable content fills the window.
			if len(n.children) == 0 && n.measure == nil {
				iw = availWidth
			}
			w = iw
		}
		if !okH {
			if len(n.children) == 0 && n.measure == nil {
				ih = availHeight
			}
			h = ih
		}
	}

	n.layout = Rect{X: 0, Y: 0, W: w, H: h}
	n.layoutChildren()
	n.clearDirty()
}

func (n *Node) clearDirty() {
	n.dirty = false
	for _, c := range n.children {
		c.clearDirty()
	}
}

// resolveWidth resolves the style width against the available space.
// ok is false when the dimension is auto.
func (n *Node) resolveWidth(avail float32) (float32, bool) {
	switch n.widthMode {
	case dimFixed:
		return n.width, true
	case dimPercent:
		return avail * n.widthPercent / 100, true
	default:
		return 0, false
	}
}

func (n *Node) resolveHeight(avail float32) (float32, bool) {
	switch n.heightMode {
	case dimFixed:
		return n.height, true
	case dimPercent:
		return avail * n.heightPercent / 100, true
	default:
		return 0, false
	}
}

// resolvedDirection walks up the tree until a node declares LTR or RTL.
func (n *Node) resolvedDirection() Direction {
	for p := n; p != nil; p = p.parent {
		if p.direction != DirectionInherit {
			return p.direction
		}
	}
	return DirectionLTR
}

// intrinsicSize estimates the content size of a node: the measure callback
// for leaves, the stacked child sizes for containers. Explicit dimensions
// always win over measurement.
func (n *Node) intrinsicSize(availWidth, availHeight float32) (float32, float32) {
	var w, h float32

	if len(n.children) == 0 {
		if n.measure != nil {
			w, h = n.measure(availWidth, availHeight)
		}
	} else {
		innerW := availWidth - n.padding[EdgeLeft] - n.padding[EdgeRight]
		innerH := availHeight - n.padding[EdgeTop] - n.padding[EdgeBottom]

		var mainSum, crossMax float32
		for _, c := range n.children {
			if c.hidden {
				continue
			}
			cw, ch := c.outerIntrinsicSize(innerW, innerH)
			if n.flexDirection == FlexRow {
				mainSum += cw
				if ch > crossMax {
					crossMax = ch
				}
			} else {
				mainSum += ch
				if cw > crossMax {
					crossMax = cw
				}
			}
		}

		if n.flexDirection == FlexRow {
			w, h = mainSum, crossMax
		} else {
			w, h = crossMax, mainSum
		}
	}

	w += n.padding[EdgeLeft] + n.padding[EdgeRight]
	h += n.padding[EdgeTop] + n.padding[EdgeBottom]

	if ew, ok := n.resolveWidth(availWidth); ok {
		w = ew
	}
	if eh, ok := n.resolveHeight(availHeight); ok {
		h = eh
	}
	return w, h
}

// outerIntrinsicSize is intrinsicSize plus margins.
func (n *Node) outerIntrinsicSize(availWidth, availHeight float32) (float32, float32) {
	w, h := n.intrinsicSize(availWidth, availHeight)
	w += n.margin[EdgeLeft] + n.margin[EdgeRight]
	h += n.margin[EdgeTop] + n.margin[EdgeBottom]
	return w, h
}

// layoutChildren runs the flex pass for this node's children. The node's own
// layout rect must already be resolved.
func (n *Node) layoutChildren() {
	if len(n.children) == 0 {
		return
	}

	row := n.flexDirection == FlexRow
	innerW := n.layout.W - n.padding[EdgeLeft] - n.padding[EdgeRight]
	innerH := n.layout.H - n.padding[EdgeTop] - n.padding[EdgeBottom]

	mainAvail := innerH
	crossAvail := innerW
	if row {
		mainAvail = innerW
		crossAvail = innerH
	}

	count := len(n.children)
	mainSize := make([]float32, count)
	mainMargin := make([]float32, count)

	// Base main sizes: basis, then explicit dimension, then content.
	var total, growSum, shrinkScaledSum float32
	visible := 0
	for i, c := range n.children {
		if c.hidden {
			c.layout = Rect{}
			continue
		}
		visible++
		var size float32
		var ok bool
		if !c.basisAuto {
			size, ok = c.basis, true
		} else if row {
			size, ok = c.resolveWidth(mainAvail)
		} else {
			size, ok = c.resolveHeight(mainAvail)
		}
		if !ok {
			cw, ch := c.intrinsicSize(innerW, innerH)
			if row {
				size = cw
			} else {
				size = ch
			}
		}

		if row {
			mainMargin[i] = c.margin[EdgeLeft] + c.margin[EdgeRight]
		} else {
			mainMargin[i] = c.margin[EdgeTop] + c.margin[EdgeBottom]
		}

		mainSize[i] = size
		total += size + mainMargin[i]
		growSum += c.grow
		shrinkScaledSum += c.shrink * size
	}

	free := mainAvail - total
	switch {
	case free > 0 && growSum > 0:
		for i, c := range n.children {
			if c.hidden {
				continue
			}
			mainSize[i] += free * c.grow / growSum
		}
		free = 0
	case free < 0 && shrinkScaledSum > 0:
		deficit := -free
		for i, c := range n.children {
			if c.hidden {
				continue
			}
			mainSize[i] -= deficit * c.shrink * mainSize[i] / shrinkScaledSum
			if mainSize[i] < 0 {
				mainSize[i] = 0
			}
		}
		free = 0
	}

	lead, between := justifySpacing(n.justify, free, visible)

	// Main axis start offset inside the padding box.
	var mainStart, crossStart float32
	if row {
		mainStart = n.padding[EdgeLeft]
		crossStart = n.padding[EdgeTop]
	} else {
		mainStart = n.padding[EdgeTop]
		crossStart = n.padding[EdgeLeft]
	}

	rtl := row && n.resolvedDirection() == DirectionRTL

	pos := mainStart + lead
	for idx := 0; idx < count; idx++ {
		i := idx
		if rtl {
			i = count - 1 - idx
		}
		c := n.children[i]
		if c.hidden {
			continue
		}

		// Cross axis size: explicit wins, stretch fills, otherwise content.
		var crossMarginStart, crossMarginEnd float32
		if row {
			crossMarginStart = c.margin[EdgeTop]
			crossMarginEnd = c.margin[EdgeBottom]
		} else {
			crossMarginStart = c.margin[EdgeLeft]
			crossMarginEnd = c.margin[EdgeRight]
		}

		align := c.alignSelf
		if align == AlignAuto {
			align = n.alignItems
		}
		if align == AlignAuto {
			align = AlignStretch
		}

		var crossSize float32
		var ok bool
		if row {
			crossSize, ok = c.resolveHeight(crossAvail)
		} else {
			crossSize, ok = c.resolveWidth(crossAvail)
		}
		if !ok {
			if align == AlignStretch {
				crossSize = crossAvail - crossMarginStart - crossMarginEnd
			} else {
				cw, ch := c.intrinsicSize(innerW, innerH)
				if row {
					crossSize = ch
				} else {
					crossSize = cw
				}
			}
		}

		var crossPos float32
		switch align {
		case AlignCenter:
			crossPos = crossStart + (crossAvail-crossSize)/2
		case AlignFlexEnd:
			crossPos = crossStart + crossAvail - crossSize - crossMarginEnd
		default: // flex-start and stretch
			crossPos = crossStart + crossMarginStart
		}

		var mainMarginStart float32
		if row {
			mainMarginStart = c.margin[EdgeLeft]
		} else {
			mainMarginStart = c.margin[EdgeTop]
		}

		mainPos := pos + mainMarginStart
		if row {
			c.layout = Rect{X: mainPos, Y: crossPos, W: mainSize[i], H: crossSize}
		} else {
			c.layout = Rect{X: crossPos, Y: mainPos, W: crossSize, H: mainSize[i]}
		}

		pos += mainSize[i] + mainMargin[i] + between
		c.layoutChildren()
	}
}

// justifySpacing converts leftover main-axis space into a leading offset and
// per-gap spacing.
func justifySpacing(j Justify, free float32, count int) (lead, between float32) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch j {
	case JustifyCenter:
		return free / 2, 0
	case JustifyFlexEnd:
		return free, 0
	case JustifySpaceBetween:
		if count > 1 {
			return 0, free / float32(count-1)
		}
		return 0, 0
	case JustifySpaceAround:
		gap := free / float32(count)
		return gap / 2, gap
	case JustifySpaceEvenly:
		gap := free / float32(count+1)
		return gap, gap
	default:
		return 0, 0
	}
}
