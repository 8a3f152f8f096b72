package trail

import (
	"math"

	"github.com/lixenwraith/folio-fx/render"
)

// Draw fades the previous frame toward black then paints links and particles
// A nil canvas is a no-op
func Draw(cfg *Config, c *render.Canvas, s *State, col render.RGB) {
	if c == nil {
		return
	}

	scale := c.Scale()
	w := float64(c.Width()) / scale
	h := float64(c.Height()) / scale
	c.SetComposite(render.BlendAlpha)
	c.FillRect(0, 0, w, h, render.RGBBlack, cfg.FadeAlpha)

	ps := s.Particles
	for i := 0; i < len(ps); i++ {
		a := &ps[i]
		for j := i + 1; j < len(ps); j++ {
			b := &ps[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 >= cfg.LinkDistanceSq {
				continue
			}
			alpha := (1 - math.Sqrt(d2)/cfg.LinkFalloff) * math.Min(a.Life, b.Life) * cfg.LinkAlpha
			if alpha <= cfg.LinkMinAlpha {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.LinkWidth, col, alpha)
		}
	}

	for i := range ps {
		p := &ps[i]
		alpha := math.Max(0, math.Min(1, p.Life)) * cfg.NodeAlpha
		c.FillCircle(p.X, p.Y, p.Size, col, alpha)
	}
}
