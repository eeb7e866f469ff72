package window

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joysnake/lcd"
	"joysnake/sensor"
)

func TestDisplayFlushPublishesFrame(t *testing.T) {
	d := NewDisplay()
	d.FillCircle(3, 2, 0)
	d.DrawText(10, 20, "score")

	pix, texts := d.Frame()
	assert.Len(t, pix, lcd.Width*lcd.Height*4)
	assert.Empty(t, texts, "nothing is visible before a flush")

	require.NoError(t, d.Flush())
	d.Clear()

	pix, texts = d.Frame()
	i := (2*lcd.Width + 3) * 4
	assert.Equal(t, lit[:], pix[i:i+4])
	assert.Equal(t, dark[:], pix[0:4])
	assert.Equal(t, []lcd.Text{{X: 10, Y: 20, Text: "score"}}, texts, "flushed text survives Clear")
}

func TestApplyDeadZone(t *testing.T) {
	x, y := applyDeadZone(0.1, -0.9)
	assert.Zero(t, x)
	assert.Equal(t, -0.9, y)

	x, y = applyDeadZone(-0.5, 0.2)
	assert.Equal(t, -0.5, x)
	assert.Zero(t, y)
}

func TestGameStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGame(ctx, NewDisplay(), sensor.NewStick(0))
	cancel()

	assert.ErrorIs(t, g.Update(), ebiten.Termination)

	w, h := g.Layout(1024, 768)
	assert.Equal(t, lcd.Width, w)
	assert.Equal(t, lcd.Height, h)
}
