//go:build tinygo

// Package pico drives the real hardware: a 128x128 ST7735 panel on SPI and
// a two-axis analog joystick on the RP2040 ADC.
package pico

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"joysnake/lcd"
)

// Panel wiring.
const (
	PinSCK   = machine.GP18
	PinSDO   = machine.GP19
	PinCS    = machine.GP17
	PinDC    = machine.GP16
	PinReset = machine.GP20
	PinLight = machine.GP21
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{245, 245, 245, 255}
	font  = &proggy.TinySZ8pt7b
)

// Display draws straight to the panel. It is not reentrant; use it through
// an lcd.Gate.
type Display struct {
	dev st7735.Device
}

// NewDisplay configures SPI0 and the panel.
func NewDisplay() (*Display, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 16000000,
		SCK:       PinSCK,
		SDO:       PinSDO,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}

	dev := st7735.New(machine.SPI0, PinReset, PinDC, PinCS, PinLight)
	dev.Configure(st7735.Config{
		Width:  lcd.Width,
		Height: lcd.Height,
		Model:  st7735.GREENTAB,
	})
	dev.FillScreen(black)
	return &Display{dev: dev}, nil
}

// Clear fills the panel with black.
func (d *Display) Clear() {
	d.dev.FillScreen(black)
}

// FillCircle draws a filled circle as one rectangle per row.
func (d *Display) FillCircle(x, y, r int) {
	lcd.CircleSpans(x, y, r, func(x0, x1, y int) {
		d.dev.FillRectangle(int16(x0), int16(y), int16(x1-x0+1), 1, white)
	})
}

// DrawText places text with its top-left corner at (x, y).
func (d *Display) DrawText(x, y int, text string) {
	tinyfont.WriteLine(&d.dev, font, int16(x), int16(y)+int16(font.YAdvance), text, white)
}
