package decode

import (
	"image"
	"sync/atomic"
	"time"

	"github.com/liyue201/goqr"

	"github.com/lixenwraith/viewfinder/event"
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/render"
)

// darkThreshold classifies a sampled pixel as barcode ink
const darkThreshold = 96

// sampleStep is the scan grid pitch for candidate detection (px)
const sampleStep = 8

// FrameSource supplies preview frames to the pipeline
type FrameSource interface {
	Frame() image.Image
}

// Pipeline runs QR recognition over preview frames on its own goroutine
// and reports through the event queue: candidate feature points while
// searching, a decoded snapshot on success. It never touches the overlay
// directly; the UI loop consumes the queue
type Pipeline struct {
	source FrameSource
	queue  *event.Queue

	// Paused is set after a successful decode until the host resumes
	// live scanning
	paused atomic.Bool

	stop chan struct{}
	done chan struct{}
}

// NewPipeline creates a pipeline reading from source and publishing to queue
func NewPipeline(source FrameSource, queue *event.Queue) *Pipeline {
	return &Pipeline{
		source: source,
		queue:  queue,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the decode loop at the given attempt interval
func (p *Pipeline) Start(interval time.Duration) {
	go func() {
		defer close(p.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
			}

			if p.paused.Load() {
				continue
			}

			frame := p.source.Frame()
			if frame == nil {
				continue
			}
			p.attempt(frame)
		}
	}()
}

// Stop halts the decode loop and waits for it to exit
func (p *Pipeline) Stop() {
	close(p.stop)
	<-p.done
}

// Resume restarts live scanning after a successful decode
func (p *Pipeline) Resume() {
	p.paused.Store(false)
}

// attempt runs one detection pass over a frame
func (p *Pipeline) attempt(frame image.Image) {
	if points := CandidatePoints(frame); len(points) > 0 {
		p.queue.Push(event.Event{Type: event.TypePointsDetected, Points: points})
	}

	codes, err := goqr.Recognize(frame)
	if err != nil || len(codes) == 0 {
		return
	}

	payload := make([]byte, 0, len(codes[0].Payload))
	for _, b := range codes[0].Payload {
		payload = append(payload, byte(b))
	}

	p.paused.Store(true)
	p.queue.Push(event.Event{
		Type:    event.TypeDecodeComplete,
		Bitmap:  frame,
		Content: string(payload),
	})
}

// CandidatePoints locates barcode-like ink in a frame and returns the
// corners and center of its bounding region in preview-pixel
// coordinates. A coarse luminance scan is enough for marker feedback;
// precise feature location stays inside the recognizer
func CandidatePoints(frame image.Image) []geom.Point {
	bounds := frame.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y += sampleStep {
		for x := bounds.Min.X; x < bounds.Max.X; x += sampleStep {
			r, g, b, _ := frame.At(x, y).RGBA()
			px := render.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			if px.Luma() >= darkThreshold {
				continue
			}
			found = true
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if !found {
		return nil
	}

	return []geom.Point{
		{X: float64(minX), Y: float64(minY)},
		{X: float64(maxX), Y: float64(minY)},
		{X: float64(minX), Y: float64(maxY)},
		{X: float64(maxX), Y: float64(maxY)},
		{X: float64(minX+maxX) / 2, Y: float64(minY+maxY) / 2},
	}
}
