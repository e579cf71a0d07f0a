package geom

import (
	"testing"
)

func TestRectDimensions(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 220}
	if r.Width() != 100 {
		t.Errorf("Expected width 100, got %d", r.Width())
	}
	if r.Height() != 200 {
		t.Errorf("Expected height 200, got %d", r.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"Inside", 5, 5, true},
		{"Top-left corner", 0, 0, true},
		{"Bottom-right corner", 10, 10, true},
		{"Left of rect", -1, 5, false},
		{"Below rect", 5, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected Contains(%d,%d)=%v, got %v", tt.x, tt.y, tt.expected, got)
			}
		})
	}
}

func TestCentered(t *testing.T) {
	r := Centered(100, 200, 40, 60)
	if r.Left != 30 || r.Right != 70 {
		t.Errorf("Expected horizontal centering 30..70, got %d..%d", r.Left, r.Right)
	}
	if r.Top != 70 || r.Bottom != 130 {
		t.Errorf("Expected vertical centering 70..130, got %d..%d", r.Top, r.Bottom)
	}
}

func TestPointScale(t *testing.T) {
	x, y := Point{X: 50, Y: 25}.Scale(2, 4)
	if x != 100 || y != 100 {
		t.Errorf("Expected (100, 100), got (%d, %d)", x, y)
	}
}
