package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/viewfinder/audio"
	"github.com/lixenwraith/viewfinder/decode"
	"github.com/lixenwraith/viewfinder/event"
	"github.com/lixenwraith/viewfinder/geom"
	"github.com/lixenwraith/viewfinder/parameter"
	"github.com/lixenwraith/viewfinder/preview"
	"github.com/lixenwraith/viewfinder/render"
	"github.com/lixenwraith/viewfinder/viewfinder"
)

var (
	sizeFlag    = flag.Int("size", 480, "Simulated preview size in pixels")
	contentFlag = flag.String("content", "https://github.com/lixenwraith/viewfinder", "QR payload for the test pattern")
	laserFlag   = flag.Bool("laser", true, "Show the animated scan line")
	muteFlag    = flag.Bool("mute", false, "Disable the decode beep")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nVIEWFINDER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	presenter := render.NewTerminalPresenter(screen)
	cols, rows := presenter.Size()
	canvas := render.NewCanvas(cols, render.PixelHeight(rows))

	sim, err := preview.NewSimulator(*sizeFlag, *sizeFlag, *contentFlag)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build test pattern: %v\n", err)
		os.Exit(1)
	}

	decodeQueue := event.NewQueue()
	pipeline := decode.NewPipeline(sim, decodeQueue)

	// Bracket metrics sized for the terminal canvas rather than the
	// phone-pixel defaults
	cfg := viewfinder.DefaultConfig()
	cfg.LaserVisible = *laserFlag
	cfg.BorderLineLength = max(canvas.Height()/8, 4)
	cfg.BorderDistance = max(canvas.Height()/48, 2)
	cfg.BorderStrokeWidth = 2

	view := viewfinder.NewView(cfg)
	view.SetCameraPreview(sim)

	beeper := audio.NewBeeper()
	if !*muteFlag {
		if err := beeper.Initialize(); err != nil {
			// Headless terminals have no audio device; scan silently
			beeper = nil
		} else {
			defer beeper.Cleanup()
		}
	} else {
		beeper = nil
	}

	sim.Start(parameter.FrameInterval)
	defer sim.Stop()
	pipeline.Start(150 * time.Millisecond)
	defer pipeline.Stop()

	// Input events arrive on their own goroutine; the UI loop selects
	inputCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			inputCh <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	laserOn := *laserFlag
	lastFrame := time.Now()

	for {
		select {
		case ev := <-inputCh:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC || tev.Rune() == 'q':
					return
				case tev.Rune() == ' ':
					// Rescan: clear the snapshot, resume the decoder
					view.DrawViewfinder()
					pipeline.Resume()
				case tev.Rune() == 'l':
					laserOn = !laserOn
					view.SetLaserVisibility(laserOn)
				}
			case *tcell.EventResize:
				presenter.Sync()
				cols, rows = presenter.Size()
				canvas.Resize(cols, render.PixelHeight(rows))
				view.Invalidate()
			}

		case <-ticker.C:
			sim.ProcessEvents()

			for _, ev := range decodeQueue.Consume() {
				switch ev.Type {
				case event.TypePointsDetected:
					for _, p := range ev.Points {
						view.AddPossibleResultPoint(p)
					}
					view.Invalidate()
				case event.TypeDecodeComplete:
					view.DrawResultBitmap(ev.Bitmap)
					if beeper != nil {
						beeper.PlayDecodeBeep()
					}
				}
			}

			if !view.ConsumeInvalidate() {
				continue
			}

			now := time.Now()
			ctx := render.NewContext(now, now.Sub(lastFrame), canvas.Width(), canvas.Height())
			lastFrame = now

			drawBackdrop(canvas, sim)
			view.Render(ctx, canvas)
			presenter.Present(canvas)
		}
	}
}

// drawBackdrop paints the simulated camera frame under the overlay
func drawBackdrop(canvas *render.Canvas, sim *preview.Simulator) {
	canvas.Fill(render.RGBBlack)
	frame := sim.Frame()
	if frame == nil {
		return
	}
	canvas.DrawImage(frame, geom.Rect{Left: 0, Top: 0, Right: canvas.Width(), Bottom: canvas.Height()}, 1)
}
