package component

import (
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/parameter"
)

// PointBuffer is a two-generation cache of candidate result points.
// The current generation collects points pushed by the decoder between
// draws; after each draw it rotates into the previous slot, which is
// rendered once at reduced opacity and then discarded. Both generations
// keep insertion order and are capped at MaxResultPoints
type PointBuffer struct {
	current  []geom.Point
	previous []geom.Point
}

// NewPointBuffer creates a buffer with both generations preallocated
func NewPointBuffer() *PointBuffer {
	return &PointBuffer{
		current:  make([]geom.Point, 0, parameter.MaxResultPoints),
		previous: make([]geom.Point, 0, parameter.MaxResultPoints),
	}
}

// Add appends a point to the current generation.
// Adds beyond capacity are silently dropped
func (b *PointBuffer) Add(p geom.Point) {
	if len(b.current) < parameter.MaxResultPoints {
		b.current = append(b.current, p)
	}
}

// Current returns the live generation. The slice is owned by the buffer
func (b *PointBuffer) Current() []geom.Point {
	return b.current
}

// Previous returns the faded generation. The slice is owned by the buffer
func (b *PointBuffer) Previous() []geom.Point {
	return b.previous
}

// Swap rotates current into previous and clears current.
// Slice headers are exchanged, no reallocation
func (b *PointBuffer) Swap() {
	b.current, b.previous = b.previous[:0], b.current
}

// DropPrevious discards the faded generation after it was drawn
func (b *PointBuffer) DropPrevious() {
	b.previous = b.previous[:0]
}
