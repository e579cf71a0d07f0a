package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
	"sync/atomic"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/skip2/go-qrcode"

	"github.com/lixenwraith/viewfinder/event"
	"github.com/lixenwraith/viewfinder/geom"
)

// framingFraction sizes the framing rect relative to the preview's
// shorter dimension
const framingFraction = 0.7

// qrFraction sizes the rendered QR code relative to the framing rect
const qrFraction = 0.6

// Simulator is a fake camera preview: it serves frames containing a QR
// test pattern drifting inside the framing rectangle and emits
// lifecycle events through a lock-free queue consumed on the UI thread
type Simulator struct {
	size    geom.Size
	framing geom.Rect
	qrImage image.Image

	// Latest produced frame, swapped atomically by the capture goroutine
	frame atomic.Pointer[image.RGBA]

	// Sized is latched after the first frame; geometry reports ok from
	// then on, surviving Stop (stale-but-valid contract)
	sized atomic.Bool

	queue *event.Queue

	mu        sync.Mutex
	listeners []StateListener

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSimulator creates a simulator producing width×height frames with
// the given QR content
func NewSimulator(width, height int, content string) (*Simulator, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("generating test pattern: %w", err)
	}

	size := geom.Size{Width: width, Height: height}
	short := min(width, height)
	frameExtent := int(float64(short) * framingFraction)
	framing := geom.Centered(width, height, frameExtent, frameExtent)

	qrExtent := int(float64(frameExtent) * qrFraction)

	return &Simulator{
		size:    size,
		framing: framing,
		qrImage: qr.Image(qrExtent),
		queue:   event.NewQueue(),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// FramingRect implements CameraPreview
func (s *Simulator) FramingRect() (geom.Rect, bool) {
	if !s.sized.Load() {
		return geom.Rect{}, false
	}
	return s.framing, true
}

// PreviewSize implements CameraPreview
func (s *Simulator) PreviewSize() (geom.Size, bool) {
	if !s.sized.Load() {
		return geom.Size{}, false
	}
	return s.size, true
}

// AddStateListener implements CameraPreview
func (s *Simulator) AddStateListener(l StateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Frame returns the latest captured frame, nil before the first one
func (s *Simulator) Frame() image.Image {
	f := s.frame.Load()
	if f == nil {
		return nil
	}
	return f
}

// Start launches the capture goroutine producing frames at interval.
// Subsequent calls are no-ops
func (s *Simulator) Start(interval time.Duration) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.done)

		s.queue.Push(event.Event{Type: event.TypePreviewStarted})

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		tick := 0
		for {
			s.produceFrame(tick)
			if s.sized.CompareAndSwap(false, true) {
				s.queue.Push(event.Event{Type: event.TypePreviewSized})
			}
			tick++

			select {
			case <-s.stop:
				s.queue.Push(event.Event{Type: event.TypePreviewStopped})
				s.queue.Push(event.Event{Type: event.TypeCameraClosed})
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop halts capture and waits for the goroutine to exit. Stopping a
// simulator that was never started, or stopping twice, is a no-op
func (s *Simulator) Stop() {
	if !s.started.Load() {
		return
	}
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// ProcessEvents drains pending lifecycle events and dispatches them to
// registered listeners. Must be called on the UI thread
func (s *Simulator) ProcessEvents() {
	events := s.queue.Consume()
	if len(events) == 0 {
		return
	}

	s.mu.Lock()
	listeners := make([]StateListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, ev := range events {
		for _, l := range listeners {
			switch ev.Type {
			case event.TypePreviewSized:
				l.PreviewSized()
			case event.TypePreviewStarted:
				l.PreviewStarted()
			case event.TypePreviewStopped:
				l.PreviewStopped()
			case event.TypeCameraError:
				l.CameraError(ev.Err)
			case event.TypeCameraClosed:
				l.CameraClosed()
			}
		}
	}
}

// produceFrame renders the QR pattern drifting inside the framing rect
// and publishes the frame
func (s *Simulator) produceFrame(tick int) {
	frame := image.NewRGBA(image.Rect(0, 0, s.size.Width, s.size.Height))

	// Neutral backdrop standing in for the camera image
	backdrop := color.RGBA{R: 190, G: 190, B: 186, A: 255}
	for i := 0; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = backdrop.R
		frame.Pix[i+1] = backdrop.G
		frame.Pix[i+2] = backdrop.B
		frame.Pix[i+3] = backdrop.A
	}

	// Drift the code around the frame center so the decoder sees motion
	qrW := s.qrImage.Bounds().Dx()
	qrH := s.qrImage.Bounds().Dy()
	driftX := float64(s.framing.Width()-qrW) / 4.0
	driftY := float64(s.framing.Height()-qrH) / 4.0
	phase := float64(tick) * 0.08
	cx := (s.framing.Left+s.framing.Right)/2 + int(driftX*math.Sin(phase))
	cy := (s.framing.Top+s.framing.Bottom)/2 + int(driftY*math.Cos(phase*0.7))

	dp := image.Pt(cx-qrW/2, cy-qrH/2)
	xdraw.Copy(frame, dp, s.qrImage, s.qrImage.Bounds(), xdraw.Src, nil)

	s.frame.Store(frame)
}
