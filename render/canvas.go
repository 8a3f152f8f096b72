package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// MaxCanvasPixels bounds a single backing allocation
const MaxCanvasPixels = 16 << 20

// ErrCanvasSize is returned when a canvas cannot be allocated at the requested size
var ErrCanvasSize = errors.New("render: invalid canvas size")

// Canvas is a software RGB drawing surface with a 2D-context style API
// Drawing coordinates are logical units, multiplied by the transform scale into backing pixels
// Shapes are antialiased by per-pixel coverage and composited with the current BlendMode
type Canvas struct {
	pix    []RGB
	width  int
	height int
	scale  float64
	op     BlendMode
}

// NewCanvas allocates a canvas with the given backing resolution
func NewCanvas(width, height int) (*Canvas, error) {
	c := &Canvas{}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize sets the backing resolution, clearing pixels and resetting transform and composite mode
// Content does not survive a resize, same as assigning a new width to an HTML canvas
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 || width*height > MaxCanvasPixels {
		return fmt.Errorf("%w: %dx%d", ErrCanvasSize, width, height)
	}
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
		clear(c.pix)
	}
	c.width = width
	c.height = height
	c.scale = 1
	c.op = BlendAlpha
	return nil
}

// Width returns backing width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns backing height in pixels
func (c *Canvas) Height() int { return c.height }

// SetTransform sets the uniform logical-to-backing scale (device pixel ratio)
func (c *Canvas) SetTransform(scale float64) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	c.scale = scale
}

// Scale returns the current logical-to-backing scale
func (c *Canvas) Scale() float64 { return c.scale }

// SetComposite selects the blend mode used by subsequent draw calls
func (c *Canvas) SetComposite(op BlendMode) { c.op = op }

// Composite returns the active blend mode
func (c *Canvas) Composite() BlendMode { return c.op }

// At returns the backing pixel, black outside bounds
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

// Clear fills every pixel with bg regardless of composite mode
func (c *Canvas) Clear(bg RGB) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = bg
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

// plot composites one pixel, coverage already folded into alpha
func (c *Canvas) plot(x, y int, col RGB, alpha float64) {
	idx := y*c.width + x
	c.pix[idx] = c.op.Apply(c.pix[idx], col, alpha)
}

// span clips a backing-space interval to [0, limit)
func span(lo, hi float64, limit int) (int, int) {
	a := int(math.Floor(lo))
	b := int(math.Ceil(hi))
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

// FillRect paints a rectangle in logical coordinates with uniform alpha
func (c *Canvas) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	s := c.scale
	x0, x1 := span(x*s, (x+w)*s, c.width)
	y0, y1 := span(y*s, (y+h)*s, c.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.plot(px, py, col, alpha)
		}
	}
}

// FillCircle paints a disc centered at (cx, cy) with radius r in logical units
func (c *Canvas) FillCircle(cx, cy, r float64, col RGB, alpha float64) {
	if alpha <= 0 || r <= 0 {
		return
	}
	s := c.scale
	bx, by, br := cx*s, cy*s, r*s
	x0, x1 := span(bx-br-1, bx+br+1, c.width)
	y0, y1 := span(by-br-1, by+br+1, c.height)
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - by
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - bx
			cov := coverage(br + 0.5 - math.Sqrt(dx*dx+dy*dy))
			if cov > 0 {
				c.plot(px, py, col, alpha*cov)
			}
		}
	}
}

// StrokeCircle paints a ring of the given line width centered on radius r
func (c *Canvas) StrokeCircle(cx, cy, r, lineWidth float64, col RGB, alpha float64) {
	if alpha <= 0 || r <= 0 || lineWidth <= 0 {
		return
	}
	s := c.scale
	bx, by, br := cx*s, cy*s, r*s
	hw := lineWidth * s / 2
	reach := br + hw + 1
	x0, x1 := span(bx-reach, bx+reach, c.width)
	y0, y1 := span(by-reach, by+reach, c.height)
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - by
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - bx
			d := math.Abs(math.Sqrt(dx*dx+dy*dy) - br)
			cov := strokeCoverage(hw, d)
			if cov > 0 {
				c.plot(px, py, col, alpha*cov)
			}
		}
	}
}

// StrokeLine paints a segment of the given line width with butt caps
func (c *Canvas) StrokeLine(x0, y0, x1, y1, lineWidth float64, col RGB, alpha float64) {
	if alpha <= 0 || lineWidth <= 0 {
		return
	}
	s := c.scale
	ax, ay, bx, by := x0*s, y0*s, x1*s, y1*s
	hw := lineWidth * s / 2
	reach := hw + 1
	minX, maxX := span(math.Min(ax, bx)-reach, math.Max(ax, bx)+reach, c.width)
	minY, maxY := span(math.Min(ay, by)-reach, math.Max(ay, by)+reach, c.height)

	vx, vy := bx-ax, by-ay
	lenSq := vx*vx + vy*vy
	for py := minY; py < maxY; py++ {
		cy := float64(py) + 0.5
		for px := minX; px < maxX; px++ {
			cx := float64(px) + 0.5
			t := 0.0
			if lenSq > 0 {
				t = ((cx-ax)*vx + (cy-ay)*vy) / lenSq
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}
			dx := cx - (ax + t*vx)
			dy := cy - (ay + t*vy)
			cov := strokeCoverage(hw, math.Sqrt(dx*dx+dy*dy))
			if cov > 0 {
				c.plot(px, py, col, alpha*cov)
			}
		}
	}
}

// strokeCoverage approximates pixel coverage of a band of half width hw at distance d
// Hairlines keep their total intensity by capping coverage at the band width
func strokeCoverage(hw, d float64) float64 {
	cov := coverage(hw + 0.5 - d)
	if w := 2 * hw; w < 1 && cov > w {
		cov = w
	}
	return cov
}

func coverage(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// Blit composites src backing pixels at (dx, dy) with mode, ignoring transform and the current composite
func (c *Canvas) Blit(src *Canvas, dx, dy int, mode BlendMode) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.height; sy++ {
		y := dy + sy
		if y < 0 || y >= c.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			x := dx + sx
			if x < 0 || x >= c.width {
				continue
			}
			idx := y*c.width + x
			c.pix[idx] = mode.Apply(c.pix[idx], src.pix[sy*src.width+sx], 1.0)
		}
	}
}

// Image copies the backing pixels into an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
