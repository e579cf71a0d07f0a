package preview

import (
	"github.com/lixenwraith/viewfinder/geom"
)

// CameraPreview is the geometry source the overlay refreshes from before
// each draw. Implementations report ok=false while geometry is not yet
// known; callers keep their cached values in that case
type CameraPreview interface {
	// FramingRect returns the barcode alignment region in preview-pixel
	// coordinates
	FramingRect() (geom.Rect, bool)

	// PreviewSize returns the camera frame dimensions
	PreviewSize() (geom.Size, bool)

	// AddStateListener registers for lifecycle notifications. The
	// preview holds the listener until teardown; callbacks run on the
	// UI thread
	AddStateListener(l StateListener)
}

// StateListener receives preview lifecycle notifications with named
// callbacks. Only PreviewSized matters to the overlay; the rest exist
// for symmetry with real camera controllers
type StateListener interface {
	PreviewSized()
	PreviewStarted()
	PreviewStopped()
	CameraError(err error)
	CameraClosed()
}
