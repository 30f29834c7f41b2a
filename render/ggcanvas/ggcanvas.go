// Package ggcanvas renders view trees to raster images.
package ggcanvas

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lattice-ui/lattice/view"
)

// Canvas implements render.Canvas on top of a gg drawing context.
type Canvas struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float32]font.Face
}

// New creates a raster canvas of the given pixel size using the bundled
// Go Regular typeface.
func New(width, height int) (*Canvas, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bundled font: %w", err)
	}
	return &Canvas{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float32]font.Face),
	}, nil
}

func (c *Canvas) face(size float32) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: float64(size)})
	c.faces[size] = f
	return f
}

func (c *Canvas) setColor(rgba uint32) {
	c.dc.SetRGBA(
		float64(rgba>>24&0xFF)/255,
		float64(rgba>>16&0xFF)/255,
		float64(rgba>>8&0xFF)/255,
		float64(rgba&0xFF)/255,
	)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float32, rgba uint32) {
	c.setColor(rgba)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// StrokeRect outlines an axis-aligned rectangle.
func (c *Canvas) StrokeRect(x, y, w, h, lw float32, rgba uint32) {
	c.setColor(rgba)
	c.dc.SetLineWidth(float64(lw))
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Stroke()
}

// DrawText draws a single line with its baseline at y.
func (c *Canvas) DrawText(text string, x, y, size float32, rgba uint32) {
	c.setColor(rgba)
	c.dc.SetFontFace(c.face(size))
	c.dc.DrawString(text, float64(x), float64(y))
}

// PushClip intersects the clip region with the given rectangle. Paired
// with PopClip.
func (c *Canvas) PushClip(x, y, w, h float32) {
	c.dc.Push()
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Clip()
}

// PopClip restores the clip region in effect before the matching PushClip.
func (c *Canvas) PopClip() {
	c.dc.Pop()
}

// MeasureText reports the rendered size of a single line of text.
func (c *Canvas) MeasureText(text string, size float32) (float32, float32) {
	c.dc.SetFontFace(c.face(size))
	w, h := c.dc.MeasureString(text)
	return float32(w), float32(h)
}

// InstallTextMeasure routes label measurement through this canvas's font
// metrics, replacing the headless approximation.
func (c *Canvas) InstallTextMeasure() {
	view.SetTextMeasureFunc(c.MeasureText)
}

// Image returns the rendered frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered frame to disk.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
