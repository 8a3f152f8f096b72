package network

import (
	"math/rand"

	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/parameter"
)

// LayoutOptions controls placement; a nil Rand disables jitter and fixes proficiency at its midpoint
type LayoutOptions struct {
	Width, Height    float64
	MarginX, MarginY float64
	JitterX, JitterY float64 // Maximum offset each side
	EdgesPerNode     int
	Rand             *rand.Rand
	NoJitter         bool
}

// LayoutOptionsFrom builds options from config for a canvas size
func LayoutOptionsFrom(cfg *Config, width, height int, rng *rand.Rand) LayoutOptions {
	return LayoutOptions{
		Width:        float64(width),
		Height:       float64(height),
		MarginX:      cfg.MarginX,
		MarginY:      cfg.MarginY,
		JitterX:      cfg.JitterX,
		JitterY:      cfg.JitterY,
		EdgesPerNode: cfg.EdgesPerNode,
		Rand:         rng,
	}
}

// Layout places skills in one column per category and links each node into the next category
// Column count includes empty categories; an empty category gets no nodes and no outgoing edges,
// and a category followed by an empty one gets no outgoing edges either
func Layout(cats []content.SkillCategory, opts LayoutOptions) ([]Node, []Edge) {
	if len(cats) == 0 {
		return nil, nil
	}

	innerW := opts.Width - opts.MarginX*2
	innerH := opts.Height - opts.MarginY*2
	columns := float64(len(cats))

	jitter := func(amp float64) float64 {
		if opts.NoJitter || opts.Rand == nil || amp <= 0 {
			return 0
		}
		return (opts.Rand.Float64() - 0.5) * 2 * amp
	}
	proficiency := func() float64 {
		if opts.Rand == nil {
			return parameter.NetworkProficiencyMin + parameter.NetworkProficiencyRange/2
		}
		return parameter.NetworkProficiencyMin + opts.Rand.Float64()*parameter.NetworkProficiencyRange
	}

	nodes := make([]Node, 0, content.Total(cats))
	columnsNodes := make([][]int, len(cats))

	for ci, cat := range cats {
		n := len(cat.Skills)
		if n == 0 {
			continue
		}
		columnX := opts.MarginX + (float64(ci)+0.5)*innerW/columns
		stepY := 0.0
		if n > 1 {
			stepY = innerH / float64(n-1)
		}

		for si, name := range cat.Skills {
			baseY := stepY * float64(si)
			if n == 1 {
				baseY = innerH / 2
			}
			p := proficiency()
			x := columnX + jitter(opts.JitterX)
			y := opts.MarginY + baseY + jitter(opts.JitterY)
			base := parameter.NetworkBaseSize + p*parameter.NetworkSizePerLevel

			columnsNodes[ci] = append(columnsNodes[ci], len(nodes))
			nodes = append(nodes, Node{
				Name:          name,
				Category:      cat.Category,
				CategoryIndex: ci,
				Proficiency:   p,
				X:             x,
				Y:             y,
				BaseSize:      base,
				Size:          base,
				Opacity:       parameter.NetworkInitialOpacity,
			})
		}
	}

	var edges []Edge
	for ci := 0; ci+1 < len(cats); ci++ {
		targets := columnsNodes[ci+1]
		if len(targets) == 0 {
			continue
		}
		count := min(opts.EdgesPerNode, len(targets))
		for _, src := range columnsNodes[ci] {
			for k := 0; k < count; k++ {
				pick := 0
				if opts.Rand != nil {
					pick = opts.Rand.Intn(len(targets))
				} else {
					pick = k % len(targets)
				}
				edges = append(edges, Edge{From: src, To: targets[pick]})
			}
		}
	}

	return nodes, edges
}
