package window

import (
	"context"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"joysnake/lcd"
	"joysnake/sensor"
)

// deadZone is the gamepad deflection ignored around center.
const deadZone = 0.25

// Game is the ebiten.Game that shows a Display and feeds input to a Stick.
type Game struct {
	ctx     context.Context
	display *Display
	stick   *sensor.Stick
	img     *ebiten.Image
	gamepad []ebiten.GamepadID
}

// NewGame creates a game that stops when ctx is done.
func NewGame(ctx context.Context, d *Display, stick *sensor.Stick) *Game {
	return &Game{ctx: ctx, display: d, stick: stick}
}

// Update latches the current input into the stick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.stick.Set(g.input())
	return nil
}

// input reads the arrow keys, falling back to the first gamepad stick that
// is deflected.
func (g *Game) input() (x, y float64) {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		return 0, 1
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		return 0, -1
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		return -1, 0
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		return 1, 0
	}

	g.gamepad = ebiten.AppendGamepadIDs(g.gamepad[:0])
	for _, id := range g.gamepad {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Standard layout reports up as negative.
		y = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if x, y = applyDeadZone(x, y); x != 0 || y != 0 {
			return x, y
		}
	}
	return 0, 0
}

// applyDeadZone zeroes each axis inside deadZone.
func applyDeadZone(x, y float64) (float64, float64) {
	if math.Abs(x) < deadZone {
		x = 0
	}
	if math.Abs(y) < deadZone {
		y = 0
	}
	return x, y
}

// Draw shows the last flushed frame and its text.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(lcd.Width, lcd.Height)
	}
	pix, texts := g.display.Frame()
	g.img.WritePixels(pix)
	screen.DrawImage(g.img, nil)
	for _, t := range texts {
		ebitenutil.DebugPrintAt(screen, t.Text, t.X, t.Y)
	}
}

// Layout keeps the logical screen at panel size; ebiten scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return lcd.Width, lcd.Height
}

// Run opens the window and blocks until it is closed or ctx is done. It must
// be called from the main goroutine.
func Run(ctx context.Context, d *Display, stick *sensor.Stick, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(lcd.Width*scale, lcd.Height*scale)
	ebiten.SetWindowTitle("joysnake")
	if err := ebiten.RunGame(NewGame(ctx, d, stick)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
