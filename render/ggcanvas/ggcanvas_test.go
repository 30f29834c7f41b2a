package ggcanvas

import (
	"image/color"
	"testing"
)

func TestFillRectPaintsPixels(t *testing.T) {
	c, err := New(32, 32)
	if err != nil {
		t.Fatal(err)
	}

	c.FillRect(0, 0, 16, 16, 0xFF0000FF)

	r, g, b, _ := c.Image().At(8, 8).(color.RGBA).RGBA()
	if r>>8 != 0xFF || g != 0 || b != 0 {
		t.Errorf("pixel inside fill = (%d, %d, %d), want pure red", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = c.Image().At(24, 24).(color.RGBA).RGBA()
	if r != 0 {
		t.Error("pixel outside fill was painted")
	}
}

func TestClipLimitsDrawing(t *testing.T) {
	c, err := New(32, 32)
	if err != nil {
		t.Fatal(err)
	}

	c.PushClip(0, 0, 8, 8)
	c.FillRect(0, 0, 32, 32, 0xFFFFFFFF)
	c.PopClip()

	if r, _, _, _ := c.Image().At(4, 4).(color.RGBA).RGBA(); r>>8 != 0xFF {
		t.Error("pixel inside clip not painted")
	}
	if r, _, _, _ := c.Image().At(16, 16).(color.RGBA).RGBA(); r != 0 {
		t.Error("pixel outside clip was painted")
	}

	// Clip restored; drawing reaches the whole surface again.
	c.FillRect(0, 0, 32, 32, 0xFFFFFFFF)
	if r, _, _, _ := c.Image().At(16, 16).(color.RGBA).RGBA(); r>>8 != 0xFF {
		t.Error("clip region not restored by PopClip")
	}
}

func TestMeasureTextGrowsWithContent(t *testing.T) {
	c, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}

	shortW, h := c.MeasureText("hi", 14)
	longW, _ := c.MeasureText("hello world", 14)

	if shortW <= 0 || h <= 0 {
		t.Fatalf("measure = (%v, %v), want positive", shortW, h)
	}
	if longW <= shortW {
		t.Errorf("longer text measured %v, shorter %v", longW, shortW)
	}
}
