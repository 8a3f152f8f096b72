package render

import (
	"github.com/lixenwraith/folio-fx/terminal"
)

// HalfBlock is the glyph used to show two stacked display pixels in one cell
const HalfBlock = '▀'

// Rect is a cell-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// textCell is a glyph overriding the two pixels of its cell
type textCell struct {
	r     rune
	fg    RGB
	bg    RGB
	attrs terminal.Attr
	set   bool
	clear bool // background taken from the pixels underneath
}

// RenderBuffer is the display compositor: a pixel plane at two pixels per cell plus a text plane
// Canvases are pooled down to display pixels, text cells win over pixels at flush
type RenderBuffer struct {
	pixels []RGB // width × height*2
	text   []textCell
	cells  []terminal.Cell // Persistent output buffer reused across flushes
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions in cells
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.text) < size {
		b.text = make([]textCell, size)
		b.cells = make([]terminal.Cell, size)
		b.pixels = make([]RGB, size*2)
	} else {
		b.text = b.text[:size]
		b.cells = b.cells[:size]
		b.pixels = b.pixels[:size*2]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

// Bounds returns the buffer size in cells
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Clear resets pixels to bg and drops all text
func (b *RenderBuffer) Clear(bg RGB) {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = bg
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
	clear(b.text)
}

// Pixel returns a display pixel, y in half-cell rows
func (b *RenderBuffer) Pixel(x, y int) RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height*2 {
		return RGBBlack
	}
	return b.pixels[y*b.width+x]
}

// FillRect paints cell-space rect pixels with the given blend mode
func (b *RenderBuffer) FillRect(r Rect, col RGB, mode BlendMode, alpha float64) {
	for y := max(r.Y, 0) * 2; y < min(r.Y+r.H, b.height)*2; y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, b.width); x++ {
			idx := y*b.width + x
			b.pixels[idx] = mode.Apply(b.pixels[idx], col, alpha)
		}
	}
}

// Composite pools the whole canvas into dst
func (b *RenderBuffer) Composite(c *Canvas, dst Rect, mode BlendMode) {
	if c == nil {
		return
	}
	b.CompositeRegion(c, 0, 0, c.Width(), c.Height(), dst, mode)
}

// CompositeRegion pools a backing-pixel region of a canvas into a cell rect
// Each display pixel takes the per-channel max of its source block so hairlines survive downscaling
func (b *RenderBuffer) CompositeRegion(c *Canvas, sx, sy, sw, sh int, dst Rect, mode BlendMode) {
	if c == nil || dst.Empty() || sw <= 0 || sh <= 0 {
		return
	}
	dispH := dst.H * 2
	fx := float64(sw) / float64(dst.W)
	fy := float64(sh) / float64(dispH)

	for dy := 0; dy < dispH; dy++ {
		py := dst.Y*2 + dy
		if py < 0 || py >= b.height*2 {
			continue
		}
		y0 := sy + int(float64(dy)*fy)
		y1 := sy + int(float64(dy+1)*fy)
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for dx := 0; dx < dst.W; dx++ {
			px := dst.X + dx
			if px < 0 || px >= b.width {
				continue
			}
			x0 := sx + int(float64(dx)*fx)
			x1 := sx + int(float64(dx+1)*fx)
			if x1 <= x0 {
				x1 = x0 + 1
			}
			pooled := RGBBlack
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					pooled = Max(pooled, c.At(x, y))
				}
			}
			idx := py*b.width + px
			b.pixels[idx] = mode.Apply(b.pixels[idx], pooled, 1.0)
		}
	}
}

// SetText writes a string starting at cell (x, y), clipped to the buffer
func (b *RenderBuffer) SetText(x, y int, s string, fg, bg RGB, attrs terminal.Attr) int {
	if y < 0 || y >= b.height {
		return 0
	}
	n := 0
	for _, r := range s {
		cx := x + n
		n++
		if cx < 0 || cx >= b.width {
			continue
		}
		b.text[y*b.width+cx] = textCell{r: r, fg: fg, bg: bg, attrs: attrs, set: true}
	}
	return n
}

// SetLabel writes text whose background is the mean of the pixels under each cell
func (b *RenderBuffer) SetLabel(x, y int, s string, fg RGB, attrs terminal.Attr) int {
	n := b.SetText(x, y, s, fg, RGBBlack, attrs)
	for i := 0; i < n; i++ {
		cx := x + i
		if cx >= 0 && cx < b.width && y >= 0 && y < b.height {
			b.text[y*b.width+cx].clear = true
		}
	}
	return n
}

// TextAt returns the glyph set at a cell, 0 if the cell shows pixels
func (b *RenderBuffer) TextAt(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	t := b.text[y*b.width+x]
	if !t.set {
		return 0
	}
	return t.r
}

// ===== OUTPUT =====

// finalize converts pixel pairs and text into terminal cells
func (b *RenderBuffer) finalize() {
	for y := 0; y < b.height; y++ {
		top := (y * 2) * b.width
		bottom := (y*2 + 1) * b.width
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if t := b.text[i]; t.set {
				bg := t.bg
				if t.clear {
					bg = Lerp(b.pixels[top+x], b.pixels[bottom+x], 0.5)
				}
				b.cells[i] = terminal.Cell{Rune: t.r, Fg: t.fg, Bg: bg, Attrs: t.attrs}
				continue
			}
			b.cells[i] = terminal.Cell{
				Rune: HalfBlock,
				Fg:   b.pixels[top+x],
				Bg:   b.pixels[bottom+x],
			}
		}
	}
}

// FlushToTerminal writes render buffer to terminal
func (b *RenderBuffer) FlushToTerminal(term terminal.Terminal) {
	b.finalize()
	term.Flush(b.cells, b.width, b.height)
}
