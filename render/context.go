package render

import (
	"time"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	// Time state
	FrameTime time.Time
	DeltaTime float64

	// Canvas dimensions (view size in pixels)
	CanvasWidth  int
	CanvasHeight int
}

// NewContext creates a frame context for a canvas of the given size
func NewContext(now time.Time, delta time.Duration, width, height int) Context {
	return Context{
		FrameTime:    now,
		DeltaTime:    delta.Seconds(),
		CanvasWidth:  width,
		CanvasHeight: height,
	}
}
