package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Decode feedback tone
	beepFreq     = 1760.0
	beepDuration = 150 * time.Millisecond
	beepVolume   = 0.4
)

// Beeper plays the decode feedback tone, the scanner's audible "got it"
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeeper creates an uninitialized beeper
func NewBeeper() *Beeper {
	return &Beeper{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup stops all sounds. beep has no speaker Close; clearing the
// mixer ensures no trailing audio artifacts
func (b *Beeper) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.mixer.Clear()
	b.initialized = false
}

// PlayDecodeBeep sounds the success tone. No-op before Initialize
func (b *Beeper) PlayDecodeBeep() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	streamer := NewTone(beepFreq, beepDuration, beepVolume, sampleRate)
	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

// tone is a bounded sine oscillator with a linear fade-out envelope
type tone struct {
	freq     float64
	phase    float64
	volume   float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTone creates a sine streamer of fixed duration
func NewTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		volume:   volume,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		// Fade out over the final quarter to avoid a click
		envelope := 1.0
		fadeStart := t.duration * 3 / 4
		if t.position >= fadeStart {
			envelope = float64(t.duration-t.position) / float64(t.duration-fadeStart)
		}

		val := math.Sin(2*math.Pi*t.phase) * t.volume * envelope
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
