package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/network"
	"github.com/lixenwraith/folio-fx/palette"
	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
	"github.com/lixenwraith/folio-fx/terminal"
)

// view draws the panel frame, the category legend and the status line
// All fields are owned by the host loop goroutine
type view struct {
	cats   []content.SkillCategory
	counts map[string]int
	total  int
	table  *palette.Table

	panel  render.Rect
	legend render.Rect
	status int
	width  int

	// Interaction mirrored from the widget callbacks and legend input
	hoverSkill    string
	hoverCategory string
	selected      string
	focus         string // Keyboard legend focus
	legendHover   string // Mouse legend hover
	trailOn       bool
}

func newView(cats []content.SkillCategory) *view {
	return &view{
		cats:   cats,
		counts: content.Counts(cats),
		total:  content.Total(cats),
	}
}

// legendRow returns the cell row of category i
func (v *view) legendRow(i int) int {
	return v.legend.Y + 1 + i
}

// legendAt returns the category whose legend row contains the cell, "" otherwise
func (v *view) legendAt(x, y int) string {
	if v.legend.Empty() || x <= v.legend.X || x >= v.legend.X+v.legend.W-1 {
		return ""
	}
	i := y - v.legendRow(0)
	if i < 0 || i >= len(v.cats) || v.legendRow(i) >= v.legend.Y+v.legend.H-1 {
		return ""
	}
	return v.cats[i].Category
}

// highlighted is the category the legend emphasizes, same precedence as the widget
func (v *view) highlighted() string {
	switch {
	case v.hoverCategory != "":
		return v.hoverCategory
	case v.legendHover != "":
		return v.legendHover
	case v.focus != "":
		return v.focus
	default:
		return v.selected
	}
}

// Render implements render.SystemRenderer
func (v *view) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !v.panel.Empty() {
		buf.Box(v.panel, render.LineRounded, visual.RgbPanelBorder)
		buf.Title(v.panel, " Skill Network ", visual.RgbTextDim)
	}
	v.renderLegend(buf)
	v.renderStatus(buf)
}

func (v *view) renderLegend(buf *render.RenderBuffer) {
	if v.legend.Empty() {
		return
	}
	buf.FillRect(v.legend, visual.RgbPanelBackground, render.BlendReplace, 1)
	buf.Box(v.legend, render.LineRounded, visual.RgbPanelBorder)
	buf.Title(v.legend, " Categories ", visual.RgbTextDim)

	active := v.highlighted()
	inner := v.legend.W - 2
	for i, cat := range v.cats {
		y := v.legendRow(i)
		if y >= v.legend.Y+v.legend.H-1 {
			break
		}

		swatch := visual.RgbTextDim
		if v.table != nil {
			swatch = v.table.Style(cat.Category).RGB
		}
		fg, attrs := visual.RgbTextNormal, terminal.AttrNone
		if cat.Category == active {
			fg, attrs = visual.RgbTextBright, terminal.AttrBold
		}
		marker := ' '
		if cat.Category == v.selected {
			marker = '▸'
		}

		key := ' '
		if i < 9 {
			key = rune('1' + i)
		}
		count := fmt.Sprintf("%d", v.counts[cat.Category])
		name := fitText(cat.Category, inner-7-len(count))
		pad := max(inner-7-len([]rune(name))-len(count), 0)

		x := v.legend.X + 1
		x += buf.SetLabel(x, y, fmt.Sprintf("%c%c ", marker, key), visual.RgbTextDim, terminal.AttrNone)
		x += buf.SetLabel(x, y, "●", swatch, terminal.AttrNone)
		x += buf.SetLabel(x, y, " "+name+strings.Repeat(" ", pad+1), fg, attrs)
		buf.SetLabel(x, y, count+" ", visual.RgbTextDim, terminal.AttrNone)
	}

	if y := v.legendRow(len(v.cats)); y < v.legend.Y+v.legend.H-1 {
		buf.SetLabel(v.legend.X+2, y, fitText(fmt.Sprintf("%d skills", v.total), inner-2), visual.RgbTextDim, terminal.AttrNone)
	}
}

func (v *view) renderStatus(buf *render.RenderBuffer) {
	if v.status < 0 {
		return
	}
	trail := "off"
	if v.trailOn {
		trail = "on"
	}
	parts := []string{" trail " + trail}
	if v.hoverSkill != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", v.hoverSkill, v.hoverCategory))
	}
	if v.selected != "" {
		parts = append(parts, "selected "+v.selected)
	}
	parts = append(parts, "t trail  1-9 focus  enter select  esc clear  q quit")

	line := fitText(strings.Join(parts, " · "), v.width)
	line += strings.Repeat(" ", max(v.width-len([]rune(line)), 0))
	buf.SetText(0, v.status, line, visual.RgbTextNormal, visual.RgbStatusBg, terminal.AttrNone)
}

// fitText clips s to n runes, marking the cut with an ellipsis
func fitText(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// tooltipRenderer draws the hovered skill label next to the pointer
type tooltipRenderer struct {
	widget *network.Widget
}

func (t *tooltipRenderer) IsVisible() bool {
	return t.widget.Tooltip().Visible
}

func (t *tooltipRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	tip := t.widget.Tooltip()
	ox, oy, _, _ := t.widget.DisplayRect()
	col, row := ctx.ClientToCell(ox+tip.X, oy+tip.Y)

	label := " " + tip.Text + " "
	if over := col + len([]rune(label)) - ctx.ScreenWidth; over > 0 {
		col -= over
	}
	buf.SetText(max(col, 0), row, label, visual.RgbTooltipFg, visual.RgbTooltipBg, terminal.AttrNone)
}

// statsRenderer draws the frame counters on the top row
type statsRenderer struct {
	app *App
}

func (s *statsRenderer) IsVisible() bool {
	return s.app.showStats
}

func (s *statsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	line := fitText(" "+s.app.stats.Line()+" ", ctx.ScreenWidth)
	buf.SetText(0, 0, line, visual.RgbTextBright, visual.RgbStatusBg, terminal.AttrNone)
}
