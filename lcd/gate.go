// Package lcd guards the display surface. The drivers behind Surface are not
// reentrant, so every drawing call goes through a Gate.
package lcd

import "sync"

// Panel geometry.
const (
	Width  = 128
	Height = 128
)

// Surface is the drawing API of a display driver.
type Surface interface {
	Clear()
	FillCircle(x, y, r int)
	DrawText(x, y int, text string)
}

// Flusher is implemented by surfaces that buffer a frame before showing it.
type Flusher interface {
	Flush() error
}

// Gate serialises access to a Surface.
type Gate struct {
	mu      sync.Mutex
	surface Surface
}

// NewGate wraps s in a Gate.
func NewGate(s Surface) *Gate {
	return &Gate{surface: s}
}

// Clear blanks the display.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surface.Clear()
}

// FillCircle draws one filled circle.
func (g *Gate) FillCircle(x, y, r int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surface.FillCircle(x, y, r)
}

// DrawText draws a string with its top-left corner at (x, y).
func (g *Gate) DrawText(x, y int, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.surface.DrawText(x, y, text)
}

// Display writes text on a numbered line, ten pixels per line.
func (g *Gate) Display(line int, text string) error {
	return g.Frame(func(s Surface) {
		s.DrawText(10, line*10+10, text)
	})
}

// Frame runs a whole drawing burst under the lock and flushes it if the
// surface buffers. draw must not call back into the Gate.
func (g *Gate) Frame(draw func(Surface)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	draw(g.surface)
	if f, ok := g.surface.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
