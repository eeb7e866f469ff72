package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joysnake/lcd"
	"joysnake/sensor"
)

// MockScreen records cells and replays queued events.
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shows         int
	events        []tcell.Event
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Show()            { m.shows++ }

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockScreen) PollEvent() tcell.Event {
	if len(m.events) == 0 {
		return nil
	}
	ev := m.events[0]
	m.events = m.events[1:]
	return ev
}

func TestDisplayFlush(t *testing.T) {
	screen := newMockScreen(Cols, Rows)
	d := NewDisplay(screen)

	d.FillCircle(10, 10, 0)
	d.FillCircle(20, 21, 0)
	d.FillCircle(30, 30, 0)
	d.FillCircle(30, 31, 0)
	d.DrawText(2, 40, "hi")

	require.NoError(t, d.Flush())

	assert.Equal(t, 1, screen.shows)
	assert.Equal(t, '▀', screen.cells[[2]int{10, 5}])
	assert.Equal(t, '▄', screen.cells[[2]int{20, 10}])
	assert.Equal(t, '█', screen.cells[[2]int{30, 15}])
	assert.Equal(t, ' ', screen.cells[[2]int{0, 0}])
	assert.Equal(t, 'h', screen.cells[[2]int{2, 20}])
	assert.Equal(t, 'i', screen.cells[[2]int{3, 20}])
	assert.Len(t, screen.cells, Cols*Rows)
}

func TestDisplayFlushSmallTerminal(t *testing.T) {
	screen := newMockScreen(80, 24)
	d := NewDisplay(screen)

	assert.Error(t, d.Flush())
	assert.Equal(t, 1, screen.shows, "frame is still shown")
}

func TestDisplayThroughGate(t *testing.T) {
	screen := newMockScreen(Cols, Rows)
	g := lcd.NewGate(NewDisplay(screen))

	require.NoError(t, g.Display(0, "ok"))
	assert.Equal(t, 'o', screen.cells[[2]int{10, 5}])
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
		x, y float64
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false, 0, 1},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), false, 0, -1},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), false, -1, 0},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), false, 1, 0},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, 0, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true, 0, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true, 0, 0},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stick := sensor.NewStick(0)
			assert.Equal(t, tt.quit, HandleKey(tt.ev, stick))
			x, y := stick.Position()
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestKeys(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		screen := newMockScreen(Cols, Rows)
		screen.events = []tcell.Event{
			tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
			tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
		}
		stick := sensor.NewStick(0)

		assert.True(t, Keys(screen, stick))
		x, _ := stick.Position()
		assert.Equal(t, -1.0, x, "events after quit are not read")
	})

	t.Run("screen closed", func(t *testing.T) {
		screen := newMockScreen(Cols, Rows)
		screen.events = []tcell.Event{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)}
		stick := sensor.NewStick(0)

		assert.False(t, Keys(screen, stick))
		_, y := stick.Position()
		assert.Equal(t, -1.0, y)
	})
}
