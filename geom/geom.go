package geom

// Point is a coordinate in preview-pixel space, typically a barcode
// feature candidate reported by the decoder
type Point struct {
	X, Y float64
}

// Size holds preview frame dimensions in pixels
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle in preview-pixel coordinates.
// Replaced wholesale on refresh, never partially mutated
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Contains reports whether (x, y) falls inside the rectangle (inclusive bounds)
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Centered returns a w×h rectangle centered inside an outer area
func Centered(outerW, outerH, w, h int) Rect {
	left := (outerW - w) / 2
	top := (outerH - h) / 2
	return Rect{Left: left, Top: top, Right: left + w, Bottom: top + h}
}

// Scale maps a preview-space point into view space using independent
// x/y scale factors
func (p Point) Scale(scaleX, scaleY float64) (int, int) {
	return int(p.X * scaleX), int(p.Y * scaleY)
}
