package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lixenwraith/folio-fx/config"
	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/engine"
	"github.com/lixenwraith/folio-fx/event"
	"github.com/lixenwraith/folio-fx/network"
	"github.com/lixenwraith/folio-fx/palette"
	"github.com/lixenwraith/folio-fx/parameter"
	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
	"github.com/lixenwraith/folio-fx/trail"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	snapshotLegendWidth = 220.0
	snapshotFontSize    = 12.0
	snapshotLineHeight  = 20.0
)

type snapshotOptions struct {
	out           string
	frames        int
	viewportWidth float64
	hover         string
	selected      string
}

func newSnapshotCmd(opts *options) *cobra.Command {
	so := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the skill network headless and save a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cats, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := renderSnapshot(cfg, cats, so, opts.rng()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", so.out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&so.out, "out", "o", parameter.SnapshotFileName, "output PNG path")
	f.IntVar(&so.frames, "frames", parameter.SnapshotFrames, "frames simulated before capture")
	f.Float64Var(&so.viewportWidth, "viewport-width", 1024, "simulated viewport width in client px, below the breakpoint uses the compact canvas")
	f.StringVar(&so.hover, "hover", "", "skill to hover during capture")
	f.StringVar(&so.selected, "select", "", "category to select during capture")
	return cmd
}

// renderSnapshot simulates frames on a mock clock, then draws the network, legend and tooltip with gg
func renderSnapshot(cfg *config.Config, cats []content.SkillCategory, so *snapshotOptions, rng *rand.Rand) error {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	host := engine.NewBaseHost(clock, engine.Viewport{
		Width:      so.viewportWidth,
		Height:     so.viewportWidth * 0.75,
		PixelRatio: 1,
	})

	widget := network.New(host, cats, cfg.Network, cfg.Theme, network.Callbacks{}, rng)
	widget.Mount()
	defer widget.Unmount()
	if widget.Canvas() == nil {
		return fmt.Errorf("snapshot: network canvas unavailable")
	}
	widget.SetSelectedCategory(so.selected)

	var hoverX, hoverY float64
	hovering := false
	if so.hover != "" {
		for _, n := range widget.State().Nodes {
			if n.Name == so.hover {
				hoverX, hoverY, hovering = n.X, n.Y, true
				break
			}
		}
		if !hovering {
			return fmt.Errorf("snapshot: no skill named %q", so.hover)
		}
	}

	var effect *trail.Effect
	if cfg.Trail.Enabled {
		effect = trail.New(host, cfg.Trail, rng)
		effect.Mount()
		defer effect.Unmount()
	}

	cw, ch := float64(widget.Canvas().Width()), float64(widget.Canvas().Height())
	for i := 0; i < so.frames; i++ {
		now := clock.Advance(parameter.FrameInterval)
		if effect != nil {
			// Lissajous sweep across the network area
			t := float64(i) / float64(max(so.frames, 1))
			px := cw/2 + math.Sin(t*2*math.Pi)*cw*0.4
			py := ch/2 + math.Sin(t*4*math.Pi)*ch*0.35
			host.Bus().Push(event.Event{Type: event.PointerMove, X: px, Y: py, Time: now})
		}
		if hovering {
			host.Bus().Push(event.Event{Type: event.PointerMove, X: hoverX, Y: hoverY, Time: now})
		}
		host.Frame()
	}

	canvas, err := widget.Snapshot()
	if err != nil {
		return err
	}
	composed, err := render.NewCanvas(canvas.Width(), canvas.Height())
	if err != nil {
		return err
	}
	composed.Blit(canvas, 0, 0, render.BlendReplace)
	if effect != nil {
		composed.Blit(effect.Canvas(), 0, 0, render.BlendScreen)
	}

	face, err := monoFace(snapshotFontSize)
	if err != nil {
		return err
	}

	dc := gg.NewContext(composed.Width()+int(snapshotLegendWidth), composed.Height())
	dc.SetColor(rgbColor(visual.RgbBackground))
	dc.Clear()
	dc.DrawImage(composed.Image(), 0, 0)
	dc.SetFontFace(face)

	drawSnapshotLegend(dc, cats, widget.Table(), so.selected, float64(composed.Width()))
	if tip := widget.Tooltip(); tip.Visible {
		drawSnapshotTooltip(dc, tip)
	}

	if err := dc.SavePNG(so.out); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

func monoFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func rgbColor(c render.RGB) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func drawSnapshotLegend(dc *gg.Context, cats []content.SkillCategory, table *palette.Table, selected string, left float64) {
	counts := content.Counts(cats)
	x := left + 16
	y := 32.0

	dc.SetColor(rgbColor(visual.RgbTextDim))
	dc.DrawString("Categories", x, y)
	y += snapshotLineHeight

	for _, cat := range cats {
		dc.SetColor(rgbColor(table.Style(cat.Category).RGB))
		dc.DrawCircle(x+5, y-4, 5)
		dc.Fill()

		fg := visual.RgbTextNormal
		if cat.Category == selected {
			fg = visual.RgbTextBright
		}
		dc.SetColor(rgbColor(fg))
		dc.DrawString(cat.Category, x+18, y)
		dc.SetColor(rgbColor(visual.RgbTextDim))
		dc.DrawStringAnchored(fmt.Sprintf("%d", counts[cat.Category]), left+snapshotLegendWidth-16, y, 1, 0)
		y += snapshotLineHeight
	}
}

func drawSnapshotTooltip(dc *gg.Context, tip network.Tooltip) {
	w, h := dc.MeasureString(tip.Text)
	dc.SetColor(rgbColor(visual.RgbTooltipBg))
	dc.DrawRoundedRectangle(tip.X, tip.Y, w+12, h+10, 4)
	dc.Fill()
	dc.SetColor(rgbColor(visual.RgbTooltipFg))
	dc.DrawStringAnchored(tip.Text, tip.X+6, tip.Y+(h+10)/2, 0, 0.35)
}
