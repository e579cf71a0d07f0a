package visual

import (
	"github.com/lixenwraith/viewfinder/render"
)

// Overlay palette defaults, overridable through viewfinder.Config
var (
	// RgbMask darkens the preview outside the framing rectangle
	RgbMask = render.RGB{R: 0, G: 0, B: 0}

	// RgbResultView darkens the exterior once a decode succeeded
	RgbResultView = render.RGB{R: 0, G: 0, B: 0}

	// RgbLaser colors the scan line and its shadow band
	RgbLaser = render.RGB{R: 255, G: 255, B: 255}

	// RgbResultPoint colors candidate feature markers
	RgbResultPoint = render.RGB{R: 255, G: 189, B: 33}

	// RgbBorder colors the corner brackets
	RgbBorder = render.RGB{R: 255, G: 255, B: 255}
)

// Exterior mask opacities; the mask colors blend over the live preview
// rather than carrying their own alpha channel
const (
	MaskAlpha       = 0x60 / 255.0
	ResultViewAlpha = 0xB0 / 255.0
)
