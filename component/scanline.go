package component

import (
	"github.com/lixenwraith/viewfinder/parameter"
)

// ScanLine holds the laser sweep state machine.
//
// Two coordinates are tracked: LineY is the solid line position,
// GradientY anchors the shadow band. They advance in lockstep; the band
// extends GradientHeight pixels opposite the travel direction, which
// produces the trailing-shadow effect. Direction flips exactly at the
// framing rectangle's top and bottom edges
type ScanLine struct {
	LineY       int
	GradientY   int
	SlidingDown bool
	Speed       int

	// Initialized makes first-run detection explicit; a position
	// sentinel would misfire when the framing rect's top sits at y=0
	Initialized bool
}

// Reset anchors both coordinates at the top edge, sliding down.
// Called lazily on the first frame and whenever the sweep restarts
func (s *ScanLine) Reset(top int) {
	s.LineY = top
	s.GradientY = top
	s.SlidingDown = true
	s.Speed = parameter.ScanSpeedFast
	s.Initialized = true
}

// nearEdge reports whether y is within the slow zone around edge
func nearEdge(y, edge int) bool {
	return y > edge-parameter.ScanEdgeZone && y < edge+parameter.ScanEdgeZone
}

// Advance recomputes the speed from the current position and moves the
// sweep one frame within [top, bottom]. Callers draw first, then advance
func (s *ScanLine) Advance(top, bottom int) {
	if !s.Initialized {
		s.Reset(top)
	}

	// Slow down when approaching either edge
	if nearEdge(s.LineY, bottom) || nearEdge(s.LineY, top) {
		s.Speed = parameter.ScanSpeedSlow
	} else {
		s.Speed = parameter.ScanSpeedFast
	}

	switch {
	case s.SlidingDown && s.LineY != bottom:
		s.LineY += s.Speed
		s.GradientY += s.Speed
	case s.LineY == bottom:
		s.SlidingDown = false
		s.LineY -= s.Speed
		s.GradientY -= s.Speed
	case !s.SlidingDown && s.LineY != top:
		s.LineY -= s.Speed
		s.GradientY -= s.Speed
	case s.LineY == top:
		s.SlidingDown = true
		s.LineY += s.Speed
		s.GradientY += s.Speed
	}
}
