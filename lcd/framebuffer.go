package lcd

// Text is a string placed on the panel.
type Text struct {
	X, Y int
	Text string
}

// Framebuffer is a monochrome in-memory panel. Desktop drivers draw into it
// and present it on Flush. Pixels outside the panel are clipped.
type Framebuffer struct {
	pix   [Width * Height]bool
	texts []Text
}

// Clear turns every pixel off and drops all text.
func (f *Framebuffer) Clear() {
	f.pix = [Width * Height]bool{}
	f.texts = f.texts[:0]
}

// FillCircle lights a filled circle centred on (cx, cy).
func (f *Framebuffer) FillCircle(cx, cy, r int) {
	CircleSpans(cx, cy, r, func(x0, x1, y int) {
		for x := x0; x <= x1; x++ {
			f.pix[y*Width+x] = true
		}
	})
}

// DrawText records text at (x, y); drivers render it on Flush.
func (f *Framebuffer) DrawText(x, y int, text string) {
	f.texts = append(f.texts, Text{X: x, Y: y, Text: text})
}

// Lit reports whether a pixel is set; out-of-range pixels are never lit.
func (f *Framebuffer) Lit(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.pix[y*Width+x]
}

// Texts returns the strings drawn since the last Clear.
func (f *Framebuffer) Texts() []Text {
	return f.texts
}
