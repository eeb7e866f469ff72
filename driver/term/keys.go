package term

import (
	"github.com/gdamore/tcell/v2"

	"joysnake/sensor"
)

// HandleKey moves the stick for arrow keys and reports whether the key asks
// to quit.
func HandleKey(ev *tcell.EventKey, stick *sensor.Stick) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		stick.Set(0, 1)
	case tcell.KeyDown:
		stick.Set(0, -1)
	case tcell.KeyLeft:
		stick.Set(-1, 0)
	case tcell.KeyRight:
		stick.Set(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			stick.Center()
		}
	}
	return false
}

// Keys feeds key events into stick until the user quits or the screen is
// finalised. It returns true only when the user asked to quit.
func Keys(screen tcell.Screen, stick *sensor.Stick) bool {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return false
		}
		if k, ok := ev.(*tcell.EventKey); ok && HandleKey(k, stick) {
			return true
		}
	}
}
