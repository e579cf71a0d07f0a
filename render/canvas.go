package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/viewfinder/geom"
)

// Canvas is a W×H pixel compositor the overlay renderers draw into.
// One slot per pixel; the terminal presenter packs two vertical pixels
// per cell on flush
type Canvas struct {
	pixels []RGB
	width  int
	height int

	// Scratch RGBA reused by DrawImage to avoid per-frame allocation
	scratch *image.RGBA
}

// NewCanvas creates a canvas with the specified pixel dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		pixels: make([]RGB, width*height),
		width:  width,
		height: height,
	}
}

// Width returns canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// Resize adjusts canvas dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	size := width * height
	if cap(c.pixels) < size {
		c.pixels = make([]RGB, size)
	} else {
		c.pixels = c.pixels[:size]
	}
	c.width = width
	c.height = height
	c.Fill(RGBBlack)
}

// Fill sets every pixel to the given color using exponential copy
func (c *Canvas) Fill(color RGB) {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = color
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), black when out of bounds
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pixels[y*c.width+x]
}

// Set composites a single pixel with the specified blend mode
func (c *Canvas) Set(x, y int, color RGB, mode BlendMode, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	dst := &c.pixels[idx]
	switch mode {
	case BlendReplace:
		*dst = color
	case BlendAlpha:
		*dst = dst.Blend(color, alpha)
	case BlendAdd:
		*dst = dst.Add(color)
	case BlendMax:
		*dst = dst.Max(color)
	}
}

// FillRect composites every pixel in [x0,x1)×[y0,y1), clipped to bounds
func (c *Canvas) FillRect(x0, y0, x1, y1 int, color RGB, mode BlendMode, alpha float64) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.width {
		x1 = c.width
	}
	if y1 > c.height {
		y1 = c.height
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, color, mode, alpha)
		}
	}
}

// HLine draws a horizontal line of the given thickness centered on y
func (c *Canvas) HLine(x0, x1, y, thickness int, color RGB, mode BlendMode, alpha float64) {
	half := thickness / 2
	c.FillRect(x0, y-half, x1, y-half+thickness, color, mode, alpha)
}

// VLine draws a vertical line of the given thickness centered on x
func (c *Canvas) VLine(x, y0, y1, thickness int, color RGB, mode BlendMode, alpha float64) {
	half := thickness / 2
	c.FillRect(x-half, y0, x-half+thickness, y1, color, mode, alpha)
}

// FillCircle composites a filled circle at (cx, cy)
func (c *Canvas) FillCircle(cx, cy, radius int, color RGB, mode BlendMode, alpha float64) {
	if radius <= 0 {
		c.Set(cx, cy, color, mode, alpha)
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				c.Set(cx+dx, cy+dy, color, mode, alpha)
			}
		}
	}
}

// VGradient composites a vertical linear gradient band over [x0,x1)×[y0,y1).
// Opacity ramps from alphaTop at y0 to alphaBottom at y1
func (c *Canvas) VGradient(x0, y0, x1, y1 int, color RGB, alphaTop, alphaBottom float64) {
	if y1 <= y0 {
		return
	}
	span := float64(y1 - y0)
	for y := y0; y < y1; y++ {
		t := float64(y-y0) / span
		alpha := alphaTop + (alphaBottom-alphaTop)*t
		for x := x0; x < x1; x++ {
			c.Set(x, y, color, BlendAlpha, alpha)
		}
	}
}

// DrawImage blits img scaled into the destination rectangle at the given
// opacity. Scaling runs through x/image ApproxBiLinear into a reused
// scratch buffer
func (c *Canvas) DrawImage(img image.Image, dst geom.Rect, alpha float64) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 || img == nil {
		return
	}
	if c.scratch == nil || c.scratch.Rect.Dx() != w || c.scratch.Rect.Dy() != h {
		c.scratch = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	xdraw.ApproxBiLinear.Scale(c.scratch, c.scratch.Rect, img, img.Bounds(), xdraw.Src, nil)

	for y := 0; y < h; y++ {
		row := c.scratch.Pix[y*c.scratch.Stride : y*c.scratch.Stride+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			color := RGB{px[0], px[1], px[2]}
			c.Set(dst.Left+x, dst.Top+y, color, BlendAlpha, alpha)
		}
	}
}
