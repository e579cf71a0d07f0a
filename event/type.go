package event

import (
	"image"

	"github.com/lixenwraith/viewfinder/geom"
)

// Type identifies an overlay event
type Type int

const (
	// TypePreviewSized signals a framing rect / preview size change.
	// Consumer: viewfinder geometry refresh | Payload: nil
	TypePreviewSized Type = iota

	// TypePreviewStarted signals the preview began delivering frames.
	// Accepted but unused by the overlay | Payload: nil
	TypePreviewStarted

	// TypePreviewStopped signals the preview stopped.
	// Accepted but unused by the overlay | Payload: nil
	TypePreviewStopped

	// TypeCameraError carries a camera failure.
	// Accepted but unused by the overlay | Payload: Err
	TypeCameraError

	// TypeCameraClosed signals camera teardown | Payload: nil
	TypeCameraClosed

	// TypePointsDetected carries candidate feature points from the
	// decoder, in preview-pixel coordinates | Payload: Points
	TypePointsDetected

	// TypeDecodeComplete carries the decoded-result snapshot | Payload:
	// Bitmap, Content
	TypeDecodeComplete
)

// Event is a single queue entry. Payload fields are set per Type
type Event struct {
	Type    Type
	Err     error
	Points  []geom.Point
	Bitmap  image.Image
	Content string
}
