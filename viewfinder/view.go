package viewfinder

import (
	"image"
	"sync/atomic"

	"github.com/lixenwraith/viewfinder/component"
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/parameter"
	"github.com/lixenwraith/viewfinder/parameter/visual"
	"github.com/lixenwraith/viewfinder/preview"
	"github.com/lixenwraith/viewfinder/render"
)

// Releasable is implemented by result bitmaps backed by resources that
// must be freed before the overlay drops its reference
type Releasable interface {
	Release()
}

// Config is the overlay styling surface, applied at construction.
// Each zero-value field falls back to its default in parameter/visual;
// the mask and result defaults are black, so those two cannot be
// configured darker than the default
type Config struct {
	MaskColor   render.RGB
	ResultColor render.RGB
	LaserColor  render.RGB
	PointColor  render.RGB
	BorderColor render.RGB

	// LaserVisible enables the animated scan line
	LaserVisible bool

	// Corner bracket metrics in view pixels; zero selects the defaults
	BorderLineLength  int
	BorderDistance    int
	BorderStrokeWidth int
}

// DefaultConfig returns the stock overlay styling, laser hidden
func DefaultConfig() Config {
	return Config{
		MaskColor:         visual.RgbMask,
		ResultColor:       visual.RgbResultView,
		LaserColor:        visual.RgbLaser,
		PointColor:        visual.RgbResultPoint,
		BorderColor:       visual.RgbBorder,
		LaserVisible:      false,
		BorderLineLength:  parameter.BorderLineLength,
		BorderDistance:    parameter.BorderDistance,
		BorderStrokeWidth: parameter.BorderStrokeWidth,
	}
}

// View is the viewfinder overlay: it darkens the preview outside the
// framing rectangle and draws the corner brackets, the laser sweep,
// candidate point markers, and the decoded-result snapshot.
//
// All methods except Invalidate/ConsumeInvalidate must be called on the
// UI thread; the overlay holds no locks
type View struct {
	cfg Config

	// Non-owning reference to the geometry source
	preview preview.CameraPreview

	// Cached geometry, refreshed before each draw and kept across
	// preview stop/restart
	framingRect geom.Rect
	previewSize geom.Size
	hasGeometry bool

	points   *component.PointBuffer
	scanLine component.ScanLine

	resultBitmap image.Image

	// Redraw request flag, re-armed at the end of every Render
	invalidated atomic.Bool
}

// NewView creates an overlay with the given styling
func NewView(cfg Config) *View {
	def := DefaultConfig()
	zero := render.RGB{}
	if cfg.MaskColor == zero {
		cfg.MaskColor = def.MaskColor
	}
	if cfg.ResultColor == zero {
		cfg.ResultColor = def.ResultColor
	}
	if cfg.LaserColor == zero {
		cfg.LaserColor = def.LaserColor
	}
	if cfg.PointColor == zero {
		cfg.PointColor = def.PointColor
	}
	if cfg.BorderColor == zero {
		cfg.BorderColor = def.BorderColor
	}
	if cfg.BorderLineLength == 0 {
		cfg.BorderLineLength = def.BorderLineLength
	}
	if cfg.BorderDistance == 0 {
		cfg.BorderDistance = def.BorderDistance
	}
	if cfg.BorderStrokeWidth == 0 {
		cfg.BorderStrokeWidth = def.BorderStrokeWidth
	}

	v := &View{
		cfg:    cfg,
		points: component.NewPointBuffer(),
	}
	v.Invalidate()
	return v
}

// SetCameraPreview attaches the geometry source and registers the
// overlay's lifecycle listener with it
func (v *View) SetCameraPreview(p preview.CameraPreview) {
	v.preview = p
	p.AddStateListener(&previewListener{view: v})
}

// refreshSizes pulls current geometry from the preview. Both values
// must be present to replace the cache; a transient nil report keeps
// the previous geometry so the overlay never blanks
func (v *View) refreshSizes() {
	if v.preview == nil {
		return
	}
	rect, ok := v.preview.FramingRect()
	size, sizeOK := v.preview.PreviewSize()
	if ok && sizeOK {
		v.framingRect = rect
		v.previewSize = size
		v.hasGeometry = true
	}
}

// AddPossibleResultPoint buffers a candidate feature point, in
// preview-pixel coordinates. Points beyond the pending cap are dropped
func (v *View) AddPossibleResultPoint(p geom.Point) {
	v.points.Add(p)
}

// DrawResultBitmap replaces the live scanning display with a decoded
// snapshot. A previously held bitmap is released first
func (v *View) DrawResultBitmap(img image.Image) {
	v.releaseResultBitmap()
	v.resultBitmap = img
	v.Invalidate()
}

// DrawViewfinder clears any result bitmap and resumes live rendering
func (v *View) DrawViewfinder() {
	v.releaseResultBitmap()
	v.Invalidate()
}

func (v *View) releaseResultBitmap() {
	if old, ok := v.resultBitmap.(Releasable); ok {
		old.Release()
	}
	v.resultBitmap = nil
}

// SetMaskColor changes the exterior mask color
func (v *View) SetMaskColor(c render.RGB) {
	v.cfg.MaskColor = c
}

// SetLaserVisibility toggles the animated scan line
func (v *View) SetLaserVisibility(visible bool) {
	v.cfg.LaserVisible = visible
}

// ResultBitmap returns the held snapshot, nil in live mode
func (v *View) ResultBitmap() image.Image {
	return v.resultBitmap
}

// Invalidate requests a redraw. Safe from any goroutine
func (v *View) Invalidate() {
	v.invalidated.Store(true)
}

// ConsumeInvalidate reports and clears a pending redraw request.
// The host loop calls this once per frame
func (v *View) ConsumeInvalidate() bool {
	return v.invalidated.Swap(false)
}

// previewListener adapts preview lifecycle callbacks onto the view.
// Only PreviewSized matters; the rest are accepted and ignored
type previewListener struct {
	view *View
}

func (l *previewListener) PreviewSized() {
	l.view.refreshSizes()
	l.view.Invalidate()
}

func (l *previewListener) PreviewStarted()       {}
func (l *previewListener) PreviewStopped()       {}
func (l *previewListener) CameraError(err error) {}
func (l *previewListener) CameraClosed()         {}
