package parameter

import "time"

// Result point markers
const (
	// MaxResultPoints caps the pending candidate buffer; later adds are dropped
	MaxResultPoints = 20

	// PointRadius is the marker radius for current-generation points (px)
	PointRadius = 6

	// FadedPointRadius is the marker radius for previous-generation points (px)
	FadedPointRadius = 3

	// CurrentPointAlpha is the marker opacity; faded points use half
	CurrentPointAlpha = 0xA0 / 255.0
)

// Corner border brackets
const (
	BorderStrokeWidth = 5
	BorderLineLength  = 120
	BorderDistance    = 30
)

// Laser scan line
const (
	// ScanSpeedFast is the sweep speed away from the frame edges (px/frame)
	ScanSpeedFast = 3

	// ScanSpeedSlow applies inside ScanEdgeZone of either edge (px/frame)
	ScanSpeedSlow = 1

	// ScanEdgeZone is the distance from top/bottom where the sweep slows (px)
	ScanEdgeZone = 20

	// GradientHeight is the vertical extent of the trailing shadow band (px)
	GradientHeight = 40

	// ScanGradientAlpha is the peak opacity of the shadow band
	ScanGradientAlpha = 100 / 255.0

	// ScanLineThickness is the solid line height (px)
	ScanLineThickness = 2
)

// Result bitmap overlay
const (
	// ResultBitmapAlpha is the opacity of the decoded snapshot drawn
	// into the framing rectangle
	ResultBitmapAlpha = 0xA0 / 255.0
)

// FrameInterval paces the host redraw loop
const FrameInterval = 80 * time.Millisecond
