package viewfinder

import (
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/render"
)

// drawBorder draws the four L-shaped corner brackets, offset outward
// from the framing rect by the configured distance. Static decoration
func (v *View) drawBorder(canvas *render.Canvas, frame geom.Rect) {
	color := v.cfg.BorderColor
	stroke := v.cfg.BorderStrokeWidth
	length := v.cfg.BorderLineLength
	dist := v.cfg.BorderDistance

	// Top-left
	canvas.VLine(frame.Left-dist, frame.Top-dist, frame.Top+length, stroke, color, render.BlendAlpha, 1)
	canvas.HLine(frame.Left-dist, frame.Left+length, frame.Top-dist, stroke, color, render.BlendAlpha, 1)

	// Top-right
	canvas.VLine(frame.Right+dist, frame.Top-dist, frame.Top+length, stroke, color, render.BlendAlpha, 1)
	canvas.HLine(frame.Right-length, frame.Right+dist, frame.Top-dist, stroke, color, render.BlendAlpha, 1)

	// Bottom-right
	canvas.VLine(frame.Right+dist, frame.Bottom-length, frame.Bottom+dist, stroke, color, render.BlendAlpha, 1)
	canvas.HLine(frame.Right-length, frame.Right+dist, frame.Bottom+dist, stroke, color, render.BlendAlpha, 1)

	// Bottom-left
	canvas.VLine(frame.Left-dist, frame.Bottom-length, frame.Bottom+dist, stroke, color, render.BlendAlpha, 1)
	canvas.HLine(frame.Left-dist, frame.Left+length, frame.Bottom+dist, stroke, color, render.BlendAlpha, 1)
}
