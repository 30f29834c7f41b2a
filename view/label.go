package view

import "github.com/lattice-ui/lattice/render"

// TextMeasureFunc reports the rendered size of a single line of text.
// Backends install their own measurement; the default is a coarse
// approximation good enough for headless layout.
type TextMeasureFunc func(text string, size float32) (w, h float32)

var measureText TextMeasureFunc = func(text string, size float32) (float32, float32) {
	return float32(len(text)) * size * 0.6, size * 1.2
}

// SetTextMeasureFunc replaces the text measurement used by Label views.
// Call before building the tree; pass nil to restore the approximation.
func SetTextMeasureFunc(fn TextMeasureFunc) {
	if fn == nil {
		fn = func(text string, size float32) (float32, float32) {
			return float32(len(text)) * size * 0.6, size * 1.2
		}
	}
	measureText = fn
}

// Label is a single-line text leaf.
type Label struct {
	*View
	text     string
	fontSize float32
	color    uint32
	hasColor bool
}

// NewLabel creates a text view sized to its content.
func NewLabel(text string) *Label {
	l := &Label{
		View:     NewView(),
		text:     text,
		fontSize: 0, // 0 means "use the theme font size"
	}
	l.View.node.SetMeasureFunc(func(availW, availH float32) (float32, float32) {
		return measureText(l.text, l.effectiveFontSize(render.DefaultStyle()))
	})
	l.View.OnDraw = l.draw
	l.View.RegisterAttribute("text", StringAttribute(func(s string) { l.SetText(s) }))
	l.View.RegisterAttribute("fontSize", FloatAttribute(func(f float32) { l.SetFontSize(f) }))
	l.View.RegisterAttribute("textColor", ColorAttribute(func(c uint32) { l.SetTextColor(c) }))
	return l
}

// Text returns the label's content.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's content and invalidates layout.
func (l *Label) SetText(text string) {
	l.text = text
	l.View.Invalidate()
}

// SetFontSize overrides the theme font size for this label.
func (l *Label) SetFontSize(size float32) {
	l.fontSize = size
	l.View.Invalidate()
}

// SetTextColor overrides the theme foreground color for this label.
func (l *Label) SetTextColor(rgba uint32) {
	l.color = rgba
	l.hasColor = true
}

func (l *Label) effectiveFontSize(st render.Style) float32 {
	if l.fontSize > 0 {
		return l.fontSize
	}
	return st.FontSize
}

func (l *Label) draw(fc *render.FrameContext, x, y, w, h float32) {
	if fc.Canvas == nil {
		return
	}
	size := l.effectiveFontSize(fc.Style)
	color := fc.Style.Foreground
	if l.hasColor {
		color = l.color
	}
	// Baseline roughly at the bottom of the ascent box.
	fc.Canvas.DrawText(l.text, x, y+size, size, color)
}
