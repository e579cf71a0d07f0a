package viewfinder

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/preview"
	"github.com/lixenwraith/viewfinder/render"
)

// stubPreview is a scriptable geometry source
type stubPreview struct {
	rect      geom.Rect
	size      geom.Size
	ok        bool
	listeners []preview.StateListener
}

func (s *stubPreview) FramingRect() (geom.Rect, bool) {
	return s.rect, s.ok
}

func (s *stubPreview) PreviewSize() (geom.Size, bool) {
	return s.size, s.ok
}

func (s *stubPreview) AddStateListener(l preview.StateListener) {
	s.listeners = append(s.listeners, l)
}

func newTestSetup(ok bool) (*View, *stubPreview, *render.Canvas, render.Context) {
	stub := &stubPreview{
		rect: geom.Rect{Left: 25, Top: 25, Right: 75, Bottom: 75},
		size: geom.Size{Width: 100, Height: 100},
		ok:   ok,
	}
	view := NewView(DefaultConfig())
	view.SetCameraPreview(stub)

	canvas := render.NewCanvas(200, 200)
	ctx := render.NewContext(time.Now(), 16*time.Millisecond, 200, 200)
	return view, stub, canvas, ctx
}

func solidImage(c color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderSkipsWithoutGeometry(t *testing.T) {
	view, _, canvas, ctx := newTestSetup(false)
	canvas.Fill(render.RGBWhite)

	view.ConsumeInvalidate()
	view.Render(ctx, canvas)

	if canvas.At(0, 0) != render.RGBWhite {
		t.Error("Expected canvas untouched with no geometry")
	}
	if view.ConsumeInvalidate() {
		t.Error("Expected no redraw request from a skipped draw")
	}
}

func TestGeometryCachePersistsAcrossNilReports(t *testing.T) {
	view, stub, canvas, ctx := newTestSetup(true)

	canvas.Fill(render.RGBWhite)
	view.Render(ctx, canvas)
	if canvas.At(0, 0) == render.RGBWhite {
		t.Fatal("Expected exterior mask drawn with geometry available")
	}

	// Controller hiccup: nil reports must not blank the overlay
	stub.ok = false
	canvas.Fill(render.RGBWhite)
	view.Render(ctx, canvas)
	if canvas.At(0, 0) == render.RGBWhite {
		t.Error("Expected cached geometry to keep the overlay drawing")
	}
}

func TestDrawCycleRotatesGenerations(t *testing.T) {
	view, _, canvas, ctx := newTestSetup(true)

	for i := 0; i < 3; i++ {
		view.AddPossibleResultPoint(geom.Point{X: float64(40 + i), Y: 50})
	}

	view.Render(ctx, canvas)
	if got := len(view.points.Current()); got != 0 {
		t.Errorf("Expected current generation empty after draw, got %d", got)
	}
	if got := len(view.points.Previous()); got != 3 {
		t.Errorf("Expected previous generation to hold 3 points, got %d", got)
	}

	// Second draw renders the faded generation and discards it
	view.Render(ctx, canvas)
	if got := len(view.points.Previous()); got != 0 {
		t.Errorf("Expected previous generation discarded, got %d", got)
	}
}

func TestResultBitmapSuppressesPointConsumption(t *testing.T) {
	view, _, canvas, ctx := newTestSetup(true)

	view.DrawResultBitmap(solidImage(color.RGBA{B: 255, A: 255}, 50, 50))
	view.AddPossibleResultPoint(geom.Point{X: 40, Y: 40})
	view.AddPossibleResultPoint(geom.Point{X: 60, Y: 60})

	view.Render(ctx, canvas)

	if got := len(view.points.Current()); got != 2 {
		t.Errorf("Expected point buffer untouched in result mode, got %d current", got)
	}
	if got := len(view.points.Previous()); got != 0 {
		t.Errorf("Expected no generation rotation in result mode, got %d previous", got)
	}

	// Snapshot blitted into the framing rect (view coords 50..150)
	if px := canvas.At(100, 100); px.B <= px.R {
		t.Errorf("Expected blue snapshot inside framing rect, got %v", px)
	}
}

func TestDrawViewfinderRestoresLiveRendering(t *testing.T) {
	view, _, canvas, ctx := newTestSetup(true)

	view.DrawResultBitmap(solidImage(color.RGBA{B: 255, A: 255}, 50, 50))
	view.AddPossibleResultPoint(geom.Point{X: 40, Y: 40})
	view.DrawViewfinder()

	if view.ResultBitmap() != nil {
		t.Fatal("Expected result bitmap cleared")
	}

	view.Render(ctx, canvas)
	if got := len(view.points.Previous()); got != 1 {
		t.Errorf("Expected live draw to rotate the pending point, got %d previous", got)
	}
}

// releasableImage records resource release calls
type releasableImage struct {
	image.Image
	released bool
}

func (r *releasableImage) Release() {
	r.released = true
}

func TestResultBitmapReleasedBeforeReplace(t *testing.T) {
	view, _, _, _ := newTestSetup(true)

	first := &releasableImage{Image: solidImage(color.RGBA{A: 255}, 4, 4)}
	second := &releasableImage{Image: solidImage(color.RGBA{A: 255}, 4, 4)}

	view.DrawResultBitmap(first)
	view.DrawResultBitmap(second)
	if !first.released {
		t.Error("Expected replaced bitmap to be released")
	}
	if second.released {
		t.Error("Expected held bitmap not released yet")
	}

	view.DrawViewfinder()
	if !second.released {
		t.Error("Expected discarded bitmap to be released")
	}
}

func TestRenderRearmsInvalidation(t *testing.T) {
	view, _, canvas, ctx := newTestSetup(true)

	view.ConsumeInvalidate()
	view.Render(ctx, canvas)

	if !view.ConsumeInvalidate() {
		t.Error("Expected draw cycle to request another redraw")
	}
}

func TestPreviewSizedCallbackRefreshesGeometry(t *testing.T) {
	view, stub, _, _ := newTestSetup(false)
	view.ConsumeInvalidate()

	stub.ok = true
	for _, l := range stub.listeners {
		l.PreviewSized()
	}

	if !view.hasGeometry {
		t.Error("Expected PreviewSized to refresh cached geometry")
	}
	if !view.ConsumeInvalidate() {
		t.Error("Expected PreviewSized to request a redraw")
	}
}

func TestSetMaskColorAffectsExterior(t *testing.T) {
	view, _, canvas, ctx := newTestSetup(true)
	view.SetMaskColor(render.RGB{R: 255})

	canvas.Fill(render.RGBBlack)
	view.Render(ctx, canvas)

	if px := canvas.At(0, 0); px.R == 0 {
		t.Errorf("Expected red-tinted mask in exterior, got %v", px)
	}
}

func TestConfigFieldsDefaultIndependently(t *testing.T) {
	red := render.RGB{R: 200, G: 20, B: 20}
	view := NewView(Config{MaskColor: red})

	def := DefaultConfig()
	if view.cfg.MaskColor != red {
		t.Errorf("Expected configured mask color to survive, got %+v", view.cfg.MaskColor)
	}
	if view.cfg.LaserColor != def.LaserColor {
		t.Errorf("Expected default laser color, got %+v", view.cfg.LaserColor)
	}
	if view.cfg.PointColor != def.PointColor {
		t.Errorf("Expected default point color, got %+v", view.cfg.PointColor)
	}
	if view.cfg.BorderColor != def.BorderColor {
		t.Errorf("Expected default border color, got %+v", view.cfg.BorderColor)
	}
	if view.cfg.BorderLineLength != def.BorderLineLength {
		t.Errorf("Expected default bracket length, got %d", view.cfg.BorderLineLength)
	}
}
