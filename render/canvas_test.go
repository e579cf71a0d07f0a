package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/viewfinder/geom"
)

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(10, 10)

	// Must clip silently, not panic
	c.Set(-1, 0, RGBWhite, BlendReplace, 1)
	c.Set(0, -1, RGBWhite, BlendReplace, 1)
	c.Set(10, 0, RGBWhite, BlendReplace, 1)
	c.Set(0, 10, RGBWhite, BlendReplace, 1)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.At(x, y) != RGBBlack {
				t.Fatalf("Expected untouched canvas at (%d,%d), got %v", x, y, c.At(x, y))
			}
		}
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FillRect(-5, -5, 100, 3, RGBWhite, BlendReplace, 1)

	if c.At(0, 0) != RGBWhite || c.At(7, 2) != RGBWhite {
		t.Error("Expected clipped rect to cover rows 0-2")
	}
	if c.At(0, 3) != RGBBlack {
		t.Error("Expected row 3 untouched")
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(16, 16)
	gray := RGB{40, 40, 40}
	c.Fill(gray)
	if c.At(0, 0) != gray || c.At(15, 15) != gray || c.At(7, 9) != gray {
		t.Error("Expected fill to cover the whole canvas")
	}
}

func TestCanvasVGradientRamp(t *testing.T) {
	c := NewCanvas(4, 40)
	c.VGradient(0, 0, 4, 40, RGBWhite, 0, 1)

	// Opacity over black must ramp monotonically down the column
	prev := -1
	for y := 0; y < 40; y++ {
		v := int(c.At(0, y).R)
		if v < prev {
			t.Fatalf("Expected monotonic ramp, got %d after %d at y=%d", v, prev, y)
		}
		prev = v
	}
	if c.At(0, 0).R > 30 {
		t.Errorf("Expected near-transparent band start, got %v", c.At(0, 0))
	}
	if c.At(0, 39).R < 220 {
		t.Errorf("Expected near-opaque band end, got %v", c.At(0, 39))
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillCircle(10, 10, 4, RGBWhite, BlendReplace, 1)

	if c.At(10, 10) != RGBWhite {
		t.Error("Expected circle center set")
	}
	if c.At(10, 6) != RGBWhite || c.At(14, 10) != RGBWhite {
		t.Error("Expected cardinal extremes inside circle")
	}
	if c.At(14, 14) != RGBBlack {
		t.Error("Expected diagonal corner outside circle")
	}
}

func TestCanvasDrawImageScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, red)
		}
	}

	c := NewCanvas(10, 10)
	c.DrawImage(src, geom.Rect{Left: 2, Top: 2, Right: 8, Bottom: 8}, 1)

	if got := c.At(5, 5); got.R < 200 || got.G > 50 {
		t.Errorf("Expected scaled red pixel inside destination, got %v", got)
	}
	if c.At(0, 0) != RGBBlack {
		t.Error("Expected pixels outside destination untouched")
	}
}

func TestCanvasResizeKeepsCapacity(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Fill(RGBWhite)
	c.Resize(10, 10)

	if c.Width() != 10 || c.Height() != 10 {
		t.Errorf("Expected 10x10 after resize, got %dx%d", c.Width(), c.Height())
	}
	if c.At(5, 5) != RGBBlack {
		t.Error("Expected resize to clear the canvas")
	}
}
