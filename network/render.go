package network

import (
	"math"

	"github.com/lixenwraith/folio-fx/palette"
	"github.com/lixenwraith/folio-fx/parameter"
	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
)

// Wobble is the render-only vertical offset of node idx at time t
func Wobble(t float64, idx int) float64 {
	return math.Sin(t*parameter.NetworkWobbleSpeed+float64(idx)*parameter.NetworkWobblePhase) * parameter.NetworkWobbleAmp
}

// shade brightens a category color, unknown or malformed colors resolve to the fallback
func shade(table *palette.Table, category string, delta float64) render.RGB {
	return render.ColorOf(render.BrightenString(table.Color(category), delta))
}

// Draw clears to bg and paints edges with source-over then nodes and halos additively
// A nil canvas is a no-op
func Draw(c *render.Canvas, s *State, table *palette.Table, bg render.RGB) {
	if c == nil {
		return
	}
	c.Clear(bg)

	grey := render.ColorOf(visual.HSLNeutral)
	active := s.ActiveCategory()
	var activeEdge render.RGB
	if active != "" {
		activeEdge = shade(table, active, parameter.NetworkActiveEdgeLift)
	}

	c.SetComposite(render.BlendAlpha)
	for _, e := range s.Edges {
		from, to := &s.Nodes[e.From], &s.Nodes[e.To]
		col, alpha, width := grey, parameter.NetworkEdgeAlpha, parameter.NetworkEdgeWidth

		if active != "" && (from.Category == active || to.Category == active) {
			col = activeEdge
			alpha, width = parameter.NetworkActiveEdgeAlpha, parameter.NetworkActiveEdgeWidth
			if s.Hovered != NoNode && (e.From == s.Hovered || e.To == s.Hovered) {
				alpha, width = parameter.NetworkHoverEdgeAlpha, parameter.NetworkHoverEdgeWidth
			}
		}
		c.StrokeLine(from.X, from.Y, to.X, to.Y, width, col, alpha)
	}

	c.SetComposite(render.BlendAdd)
	for i := range s.Nodes {
		n := &s.Nodes[i]
		x, y := n.X, n.Y+Wobble(s.Time, i)
		hovered := i == s.Hovered
		inActive := active != "" && n.Category == active

		fill := grey
		switch {
		case hovered:
			fill = shade(table, n.Category, parameter.NetworkHoverLift)
		case inActive:
			fill = table.Style(n.Category).RGB
		}
		r := math.Max(parameter.NetworkMinRadius, n.Size)
		c.FillCircle(x, y, r, fill, n.Opacity)

		if hovered || inActive {
			lift, width, pad := parameter.NetworkHaloActiveLift, parameter.NetworkHaloActiveWidth, parameter.NetworkHaloActivePad
			if hovered {
				lift, width, pad = parameter.NetworkHaloHoverLift, parameter.NetworkHaloHoverWidth, parameter.NetworkHaloHoverPad
			}
			c.StrokeCircle(x, y, r+pad, width, shade(table, n.Category, lift), parameter.NetworkHaloAlpha)
		}
	}
	c.SetComposite(render.BlendAlpha)
}
