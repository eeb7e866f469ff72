// Package window runs the game in a desktop window with ebiten. The arrow
// keys or a gamepad's left stick drive the stick.
package window

import (
	"sync"

	"joysnake/lcd"
)

var (
	lit  = [4]byte{0xf5, 0xf5, 0xf5, 0xff}
	dark = [4]byte{0x00, 0x00, 0x00, 0xff}
)

// Display buffers frames drawn by the controller and hands the last flushed
// one to the ebiten draw loop.
type Display struct {
	lcd.Framebuffer

	mu    sync.Mutex // protects front and texts
	front []byte     // RGBA, lcd.Width*lcd.Height*4
	texts []lcd.Text
}

// NewDisplay creates a display whose first frame is blank.
func NewDisplay() *Display {
	return &Display{front: make([]byte, lcd.Width*lcd.Height*4)}
}

// Flush publishes the buffered frame.
func (d *Display) Flush() error {
	pix := make([]byte, lcd.Width*lcd.Height*4)
	for y := 0; y < lcd.Height; y++ {
		for x := 0; x < lcd.Width; x++ {
			c := dark
			if d.Lit(x, y) {
				c = lit
			}
			copy(pix[(y*lcd.Width+x)*4:], c[:])
		}
	}
	texts := append([]lcd.Text(nil), d.Texts()...)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.front = pix
	d.texts = texts
	return nil
}

// Frame returns the last flushed frame. The slices must not be modified.
func (d *Display) Frame() ([]byte, []lcd.Text) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.front, d.texts
}
