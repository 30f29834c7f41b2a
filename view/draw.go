package view

import "github.com/lattice-ui/lattice/render"

// Draw renders the view and, for containers, its children. Invisible and
// fully transparent views are skipped along with their subtrees.
func (v *View) Draw(fc *render.FrameContext) {
	if v.visibility != VisibilityVisible || v.alpha == 0 {
		return
	}

	x, y, w, h := v.X(), v.Y(), v.Width(), v.Height()

	if v.hasBackground && fc.Canvas != nil {
		fc.Canvas.FillRect(x, y, w, h, v.background)
	}
	if v.OnDraw != nil {
		v.OnDraw(fc, x, y, w, h)
	}
	if v.box != nil {
		v.drawChildren(fc)
	}
}

// CullingBounds returns the rectangle this Box constrains descendants to
// during culling. It is the box's own computed frame.
func (v *View) CullingBounds() Rect {
	return v.Frame()
}

// drawChildren draws children in sequence order. Cullable leaves are tested
// against every ancestor box's bounds, walking upward, and skipped when any
// ancestor excludes them. Nested boxes always draw; they cull their own
// children.
func (v *View) drawChildren(fc *render.FrameContext) {
	for _, child := range v.box.children {
		if child.box == nil && child.cullable {
			frame := child.Frame()
			culled := false
			for bounds := v; bounds != nil; bounds = bounds.parent {
				if !frame.Intersects(bounds.CullingBounds()) {
					culled = true
					break
				}
			}
			if culled {
				continue
			}
		}
		child.Draw(fc)
	}
}

// HitTest returns the topmost view under the point, preferring later
// (higher z) children: children are tested in reverse sequence order.
// Fully transparent or non-visible views, and points outside the frame,
// return nil. A container hit with no child hit returns the container.
func (v *View) HitTest(p Point) *View {
	if v.alpha == 0 || v.visibility != VisibilityVisible {
		return nil
	}
	if !v.Frame().Contains(p) {
		return nil
	}
	if v.box != nil {
		for i := len(v.box.children) - 1; i >= 0; i-- {
			if hit := v.box.children[i].HitTest(p); hit != nil {
				return hit
			}
		}
	}
	return v
}
