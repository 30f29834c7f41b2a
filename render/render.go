// Package render defines the drawing contract between the view tree and a
// vector-graphics backend. The tree only needs "draw within computed bounds";
// rasterization lives behind the Canvas interface.
package render

// Canvas is the vector drawing surface handed to views each frame.
// Implementations are not safe for concurrent use; all drawing happens on
// the render thread.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle with an RGBA color
	// (0xRRGGBBAA).
	FillRect(x, y, w, h float32, rgba uint32)

	// StrokeRect outlines a rectangle with the given line width.
	StrokeRect(x, y, w, h, lineWidth float32, rgba uint32)

	// DrawText draws a single line of text with its baseline origin at
	// (x, y).
	DrawText(text string, x, y, size float32, rgba uint32)

	// PushClip intersects the clip region with the given rectangle.
	PushClip(x, y, w, h float32)

	// PopClip restores the clip region saved by the matching PushClip.
	PopClip()
}

// Style carries the resolved theme values a view may consult while drawing.
type Style struct {
	Background uint32
	Foreground uint32
	FocusRing  uint32
	FontSize   float32
}

// DefaultStyle returns the style used when no theme has been loaded.
func DefaultStyle() Style {
	return Style{
		Background: 0x202020FF,
		Foreground: 0xE0E0E0FF,
		FocusRing:  0x4DA6FFFF,
		FontSize:   14,
	}
}

// FrameContext carries per-frame state through the draw pass.
type FrameContext struct {
	Canvas       Canvas
	Style        Style
	WindowWidth  float32
	WindowHeight float32
	DeltaSeconds float32
}
