package viewfinder

import (
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/parameter"
	"github.com/lixenwraith/viewfinder/render"
)

// drawScanLine renders the shadow band and the solid sweep line, then
// advances the state machine. The band trails the line by extending
// GradientHeight pixels opposite the travel direction, ramping to peak
// opacity at the line
func (v *View) drawScanLine(canvas *render.Canvas, frame geom.Rect) {
	sl := &v.scanLine
	if !sl.Initialized {
		sl.Reset(frame.Top)
	}

	if sl.SlidingDown {
		canvas.VGradient(frame.Left, sl.GradientY-parameter.GradientHeight,
			frame.Right, sl.GradientY,
			v.cfg.LaserColor, 0, parameter.ScanGradientAlpha)
	} else {
		canvas.VGradient(frame.Left, sl.GradientY,
			frame.Right, sl.GradientY+parameter.GradientHeight,
			v.cfg.LaserColor, parameter.ScanGradientAlpha, 0)
	}

	canvas.HLine(frame.Left, frame.Right, sl.LineY, parameter.ScanLineThickness,
		v.cfg.LaserColor, render.BlendAlpha, 1)

	sl.Advance(frame.Top, frame.Bottom)
}
