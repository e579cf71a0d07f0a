package viewfinder

import (
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/parameter"
	"github.com/lixenwraith/viewfinder/parameter/visual"
	"github.com/lixenwraith/viewfinder/render"
)

// Render draws one overlay frame. Implements render.Renderer.
//
// Order per cycle: geometry refresh, exterior mask, then either the
// decoded snapshot or the two point generations, then corner brackets
// and the laser sweep, then an unconditional redraw request
func (v *View) Render(ctx render.Context, canvas *render.Canvas) {
	v.refreshSizes()
	if !v.hasGeometry {
		return
	}

	width := ctx.CanvasWidth
	height := ctx.CanvasHeight
	scaleX := float64(width) / float64(v.previewSize.Width)
	scaleY := float64(height) / float64(v.previewSize.Height)

	// Framing rect in view pixels
	frame := geom.Rect{
		Left:   int(float64(v.framingRect.Left) * scaleX),
		Top:    int(float64(v.framingRect.Top) * scaleY),
		Right:  int(float64(v.framingRect.Right) * scaleX),
		Bottom: int(float64(v.framingRect.Bottom) * scaleY),
	}

	v.drawMask(canvas, frame, width, height)

	if v.resultBitmap != nil {
		canvas.DrawImage(v.resultBitmap, frame, parameter.ResultBitmapAlpha)
	} else {
		v.drawResultPoints(canvas, scaleX, scaleY)
	}

	v.drawBorder(canvas, frame)

	if v.cfg.LaserVisible {
		v.drawScanLine(canvas, frame)
	}

	// Continuous animation: every frame requests the next one
	v.Invalidate()
}

// drawMask darkens the four exterior regions around the framing rect
func (v *View) drawMask(canvas *render.Canvas, frame geom.Rect, width, height int) {
	color := v.cfg.MaskColor
	alpha := visual.MaskAlpha
	if v.resultBitmap != nil {
		color = v.cfg.ResultColor
		alpha = visual.ResultViewAlpha
	}

	canvas.FillRect(0, 0, width, frame.Top, color, render.BlendAlpha, alpha)
	canvas.FillRect(0, frame.Top, frame.Left, frame.Bottom+1, color, render.BlendAlpha, alpha)
	canvas.FillRect(frame.Right+1, frame.Top, width, frame.Bottom+1, color, render.BlendAlpha, alpha)
	canvas.FillRect(0, frame.Bottom+1, width, height, color, render.BlendAlpha, alpha)
}

// drawResultPoints renders the faded previous generation, discards it,
// renders the current generation, then rotates current into previous
func (v *View) drawResultPoints(canvas *render.Canvas, scaleX, scaleY float64) {
	if previous := v.points.Previous(); len(previous) > 0 {
		for _, p := range previous {
			x, y := p.Scale(scaleX, scaleY)
			canvas.FillCircle(x, y, parameter.FadedPointRadius, v.cfg.PointColor,
				render.BlendAlpha, parameter.CurrentPointAlpha/2)
		}
		v.points.DropPrevious()
	}

	if current := v.points.Current(); len(current) > 0 {
		for _, p := range current {
			x, y := p.Scale(scaleX, scaleY)
			canvas.FillCircle(x, y, parameter.PointRadius, v.cfg.PointColor,
				render.BlendAlpha, parameter.CurrentPointAlpha)
		}
		v.points.Swap()
	}
}
