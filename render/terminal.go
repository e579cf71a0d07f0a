package render

import (
	"github.com/gdamore/tcell/v2"
)

// Each terminal cell carries two vertically stacked pixels rendered
// with the upper half block: fg = top pixel, bg = bottom pixel
const halfBlock = '▀'

// PixelHeight returns the canvas height backing a screen of rows cells
func PixelHeight(rows int) int {
	return rows * 2
}

// TerminalPresenter flushes a pixel canvas to a tcell screen
type TerminalPresenter struct {
	screen tcell.Screen
	cols   int
	rows   int
}

// NewTerminalPresenter creates a presenter for the given screen
func NewTerminalPresenter(screen tcell.Screen) *TerminalPresenter {
	cols, rows := screen.Size()
	return &TerminalPresenter{
		screen: screen,
		cols:   cols,
		rows:   rows,
	}
}

// Size returns the current presenter dimensions in cells
func (p *TerminalPresenter) Size() (int, int) {
	return p.cols, p.rows
}

// Sync re-reads the screen size after a resize event
func (p *TerminalPresenter) Sync() {
	p.screen.Sync()
	p.cols, p.rows = p.screen.Size()
}

// Present writes the canvas to the screen and shows the frame.
// The canvas is expected to be cols × rows*2 pixels; excess canvas is
// clipped, missing canvas leaves cells untouched
func (p *TerminalPresenter) Present(canvas *Canvas) {
	cols := min(p.cols, canvas.Width())
	rows := min(p.rows, (canvas.Height()+1)/2)

	for row := 0; row < rows; row++ {
		topY := row * 2
		for col := 0; col < cols; col++ {
			top := canvas.At(col, topY)
			bottom := canvas.At(col, topY+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			p.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}
