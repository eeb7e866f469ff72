// Package term runs the game in a terminal: the panel is drawn with
// half-block characters and the arrow keys drive the stick.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"joysnake/lcd"
)

// Terminal cells needed for the panel, two pixel rows per cell.
const (
	Cols = lcd.Width
	Rows = lcd.Height / 2
)

var (
	pixelStyle = tcell.StyleDefault.Foreground(tcell.ColorWhiteSmoke).Background(tcell.ColorBlack)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
)

// Display buffers a frame and presents it on a tcell screen on Flush.
type Display struct {
	lcd.Framebuffer
	screen tcell.Screen
}

// NewDisplay creates a display presenting on screen.
func NewDisplay(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

// Open initialises the terminal. The caller must Fini the screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Flush draws the buffered frame. A terminal smaller than the panel still
// gets the clipped frame but reports an error.
func (d *Display) Flush() error {
	for row := 0; row < Rows; row++ {
		for x := 0; x < Cols; x++ {
			d.screen.SetContent(x, row, halfBlock(d.Lit(x, 2*row), d.Lit(x, 2*row+1)), nil, pixelStyle)
		}
	}
	for _, t := range d.Texts() {
		col := t.X
		for _, r := range t.Text {
			d.screen.SetContent(col, t.Y/2, r, nil, textStyle)
			col++
		}
	}
	d.screen.Show()

	if w, h := d.screen.Size(); w < Cols || h < Rows {
		return fmt.Errorf("terminal %dx%d is smaller than %dx%d", w, h, Cols, Rows)
	}
	return nil
}

// halfBlock picks the glyph for a cell covering two pixel rows.
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
