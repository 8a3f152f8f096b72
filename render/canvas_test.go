package render

import (
	"errors"
	"testing"
)

// TestNewCanvasRejectsInvalidSize verifies size errors wrap ErrCanvasSize
func TestNewCanvasRejectsInvalidSize(t *testing.T) {
	sizes := [][2]int{{0, 10}, {10, 0}, {-1, 5}, {MaxCanvasPixels, 2}}
	for _, s := range sizes {
		_, err := NewCanvas(s[0], s[1])
		if !errors.Is(err, ErrCanvasSize) {
			t.Errorf("NewCanvas(%d, %d) error = %v, want ErrCanvasSize", s[0], s[1], err)
		}
	}
}

// TestCanvasResizeResets verifies resize clears pixels, transform and composite mode
func TestCanvasResizeResets(t *testing.T) {
	c, err := NewCanvas(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(RGBWhite)
	c.SetTransform(2)
	c.SetComposite(BlendAdd)

	if err := c.Resize(8, 6); err != nil {
		t.Fatal(err)
	}
	if c.Width() != 8 || c.Height() != 6 {
		t.Errorf("Expected 8x6, got %dx%d", c.Width(), c.Height())
	}
	if c.At(0, 0) != RGBBlack {
		t.Errorf("Expected cleared pixel, got %v", c.At(0, 0))
	}
	if c.Scale() != 1 {
		t.Errorf("Expected transform reset to 1, got %v", c.Scale())
	}
	if c.Composite() != BlendAlpha {
		t.Errorf("Expected composite reset to source-over, got %v", c.Composite())
	}
}

// TestSetTransformRejectsInvalid verifies non-positive scales fall back to 1
func TestSetTransformRejectsInvalid(t *testing.T) {
	c, _ := NewCanvas(2, 2)
	for _, s := range []float64{0, -2} {
		c.SetTransform(s)
		if c.Scale() != 1 {
			t.Errorf("SetTransform(%v) left scale %v, want 1", s, c.Scale())
		}
	}
}

// TestFillRectScaled verifies logical coordinates are scaled into backing pixels
func TestFillRectScaled(t *testing.T) {
	c, _ := NewCanvas(10, 10)
	c.SetTransform(2)
	c.FillRect(1, 1, 2, 2, RGBWhite, 1.0)

	if c.At(2, 2) != RGBWhite || c.At(5, 5) != RGBWhite {
		t.Error("Expected backing pixels 2..5 filled")
	}
	if c.At(1, 1) != RGBBlack || c.At(6, 6) != RGBBlack {
		t.Error("Expected pixels outside the scaled rect untouched")
	}
}

// TestFillRectClipped verifies out-of-bounds rects do not panic
func TestFillRectClipped(t *testing.T) {
	c, _ := NewCanvas(4, 4)
	c.FillRect(-10, -10, 100, 100, RGBWhite, 1.0)
	if c.At(3, 3) != RGBWhite {
		t.Error("Expected full coverage")
	}
	c.FillRect(50, 50, 5, 5, RGBBlack, 1.0)
}

// TestFillCircleCoverage verifies center is painted and far corners are not
func TestFillCircleCoverage(t *testing.T) {
	c, _ := NewCanvas(20, 20)
	c.FillCircle(10, 10, 3, RGBWhite, 1.0)

	if c.At(10, 10) != RGBWhite {
		t.Errorf("Expected center fully covered, got %v", c.At(10, 10))
	}
	if c.At(0, 0) != RGBBlack || c.At(19, 19) != RGBBlack {
		t.Error("Expected corners untouched")
	}
	if c.At(10, 15) != RGBBlack {
		t.Errorf("Expected pixel beyond radius untouched, got %v", c.At(10, 15))
	}
}

// TestAdditiveComposite verifies overlapping draws accumulate under BlendAdd
func TestAdditiveComposite(t *testing.T) {
	c, _ := NewCanvas(4, 4)
	c.SetComposite(BlendAdd)
	gray := RGB{R: 100, G: 100, B: 100}
	c.FillRect(0, 0, 4, 4, gray, 1.0)
	c.FillRect(0, 0, 4, 4, gray, 1.0)

	if got := c.At(1, 1); got != (RGB{R: 200, G: 200, B: 200}) {
		t.Errorf("Expected accumulated (200,200,200), got %v", got)
	}

	c.SetComposite(BlendAlpha)
	c.FillRect(0, 0, 4, 4, gray, 1.0)
	if got := c.At(1, 1); got != gray {
		t.Errorf("Expected source-over to replace at alpha 1, got %v", got)
	}
}

// TestStrokeLineHairline verifies sub-pixel lines still leave a visible trace
func TestStrokeLineHairline(t *testing.T) {
	c, _ := NewCanvas(20, 10)
	c.StrokeLine(2, 5, 18, 5, 0.6, RGBWhite, 1.0)

	lit := 0
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			if c.At(x, y) != RGBBlack {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("Expected hairline to light pixels")
	}
	if p := c.At(10, 5); p.R == 0 || p.R == 255 {
		t.Errorf("Expected partial coverage for a 0.6 wide line, got %v", p)
	}
	if c.At(10, 0) != RGBBlack {
		t.Error("Expected pixels far from the line untouched")
	}
}

// TestStrokeCircleRing verifies the ring leaves the center empty
func TestStrokeCircleRing(t *testing.T) {
	c, _ := NewCanvas(30, 30)
	c.StrokeCircle(15, 15, 8, 2, RGBWhite, 1.0)

	if c.At(15, 15) != RGBBlack {
		t.Errorf("Expected empty center, got %v", c.At(15, 15))
	}
	if c.At(15, 7) == RGBBlack {
		t.Error("Expected ring pixel lit at radius")
	}
}

// TestCanvasImage verifies image export copies pixels as opaque RGBA
func TestCanvasImage(t *testing.T) {
	c, _ := NewCanvas(3, 2)
	c.FillRect(1, 0, 1, 1, RGB{R: 10, G: 20, B: 30}, 1.0)

	img := c.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	px := img.RGBAAt(1, 0)
	if px.R != 10 || px.G != 20 || px.B != 30 || px.A != 255 {
		t.Errorf("Expected (10,20,30,255), got %v", px)
	}
}

// TestCanvasBlit verifies offset clipping and screen compositing
func TestCanvasBlit(t *testing.T) {
	dst, _ := NewCanvas(4, 4)
	dst.Clear(RGB{R: 100, G: 100, B: 100})
	src, _ := NewCanvas(2, 2)
	src.Clear(RGB{R: 100, G: 0, B: 255})

	dst.Blit(src, 3, 3, BlendReplace)
	if dst.At(3, 3) != (RGB{R: 100, G: 0, B: 255}) || dst.At(2, 2) != (RGB{R: 100, G: 100, B: 100}) {
		t.Error("Expected replace limited to the overlapping corner")
	}

	dst.Blit(src, 0, 0, BlendScreen)
	got := dst.At(0, 0)
	if got.R <= 100 || got.G != 100 || got.B != 255 {
		t.Errorf("Expected screen blend to brighten, got %v", got)
	}
	dst.Blit(nil, 0, 0, BlendReplace)
}
